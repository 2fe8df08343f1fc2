// SPDX-License-Identifier: Apache-2.0
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"robdd/internal/dot"
	cerrors "robdd/internal/errors"
	"robdd/internal/parser"
	"robdd/internal/rename"
	"robdd/internal/robdd"
)

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		fmt.Println("Error no input")
		os.Exit(1)
	}
	line := scanner.Text()

	output, err := run(line)
	if err != nil {
		fmt.Printf("Error %s\n", err)
		color.Red("❌ failed to build diagram")
		os.Exit(1)
	}

	fmt.Println(output)
	fmt.Println()
	fmt.Println("To visualize the diagram, paste the output to http://viz-js.com/")
	color.Green("✅ built diagram")
}

// run parses one formula line and returns the Graphviz DOT document for
// its ROBDD, or an error describing why it could not be built.
func run(line string) (string, error) {
	expr, perr := parser.ParseSource("stdin", line)
	if perr != nil {
		reporter := cerrors.NewErrorReporter("stdin", line)
		return "", errors.New(reporter.FormatError(*perr))
	}

	vars := rename.Rename(expr)
	store := robdd.NewStore(robdd.DefaultMaxNodes)
	driver := robdd.NewDriver(store, vars)

	root, err := driver.Build(expr)
	if err != nil {
		var exhausted *robdd.ResourceExhaustedError
		if errors.As(err, &exhausted) {
			ce := cerrors.ResourceExhausted(exhausted.Limit)
			reporter := cerrors.NewErrorReporter("stdin", line)
			return "", errors.New(reporter.FormatError(ce))
		}
		return "", err
	}

	return dot.Render(root, store, vars), nil
}
