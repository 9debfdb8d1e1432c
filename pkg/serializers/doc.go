/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

// Package serializers renders resolution outcomes and installation
// inventories in JSON, YAML, or a flattened tabular view for the launcher's
// inspection subcommands (resolve, list).
package serializers
