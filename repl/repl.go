// Package repl SPDX-License-Identifier: Apache-2.0
//
// Package repl provides an interactive loop for building and inspecting
// ROBDDs one formula line at a time, sharing one robdd.Store and rename
// table across the whole session so variables keep their identifiers and
// shared sub-diagrams keep being reused between lines.
package repl

import (
	"bufio"
	"fmt"
	"io"

	"robdd/internal/dot"
	cerrors "robdd/internal/errors"
	"robdd/internal/parser"
	"robdd/internal/rename"
	"robdd/internal/robdd"
)

const PROMPT = ">> "

// Start runs the REPL, reading formula lines from in and writing DOT
// output (or diagnostics) to out until in is exhausted.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	vars := rename.NewVarTable()
	store := robdd.NewStore(robdd.DefaultMaxNodes)
	driver := robdd.NewDriver(store, vars)

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			return
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		expr, perr := parser.ParseSource("repl", line)
		if perr != nil {
			reporter := cerrors.NewErrorReporter("repl", line)
			fmt.Fprint(out, reporter.FormatError(*perr))
			continue
		}

		root, err := driver.Build(expr)
		if err != nil {
			fmt.Fprintf(out, "Error %s\n", err)
			continue
		}

		fmt.Fprintln(out, dot.Render(root, store, vars))
	}
}
