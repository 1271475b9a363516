// SPDX-License-Identifier: MPL-2.0

// Command toolbelt bundles small file, text, and host utilities.
package main

import cmd "github.com/toolbelt/toolbelt/cmd/toolbelt"

func main() {
	cmd.Execute()
}
