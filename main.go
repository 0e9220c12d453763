// SPDX-License-Identifier: MPL-2.0

package main

import cmd "moddev/cmd/moddev"

func main() {
	cmd.Execute()
}
