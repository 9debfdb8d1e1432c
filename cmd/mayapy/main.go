/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

package main

import "github.com/Muream/mayapy-launcher/pkg/cli"

func main() {
	cli.Execute()
}
