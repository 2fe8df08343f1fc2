// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"robdd/repl"
)

func main() {
	fmt.Println("robdd interactive shell. One formula per line, Ctrl-D to exit.")
	repl.Start(os.Stdin, os.Stdout)
}
