/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

// Package pinfile reads the small marker files the launcher's probes depend
// on: version pin files like .python-version and .maya-version, and
// key-value markers like a virtualenv's pyvenv.cfg. Files are size-capped
// and must be valid UTF-8; malformed content surfaces as an error so probes
// can treat it as "no answer" and move on.
package pinfile
