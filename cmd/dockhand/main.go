// SPDX-License-Identifier: MPL-2.0

package main

import "dockhand-cli/internal/cli"

func main() {
	cli.Execute()
}
