// Package dot renders a ROBDD as a Graphviz DOT document. Numbering and
// labeling follow spec.md §6 exactly: terminals keep the fixed ids 0/1 and
// appear only if reachable, internal nodes are numbered from 2 up in
// first-visit (DFS) order and labeled with the pre-rename variable name.
package dot

import (
	"fmt"
	"strings"

	"robdd/internal/rename"
	"robdd/internal/robdd"
)

// Render returns the DOT document for the diagram rooted at h.
func Render(h robdd.Handle, store *robdd.Store, vars *rename.VarTable) string {
	var b strings.Builder
	b.WriteString("digraph {\n")

	if h.IsLeaf() {
		b.WriteString(leafLine(h))
		b.WriteString("}\n")
		return b.String()
	}

	ids := map[robdd.Handle]int{}
	leaves := map[robdd.Handle]bool{}
	var nodeLines, edgeLines strings.Builder
	next := 2

	var visit func(n robdd.Handle)
	visit = func(n robdd.Handle) {
		if n.IsLeaf() {
			leaves[n] = true
			return
		}
		if _, seen := ids[n]; seen {
			return
		}
		id := next
		next++
		ids[n] = id
		nodeLines.WriteString(fmt.Sprintf("  %d [label=%q];\n", id, vars.Name(store.Variable(n))))

		low, high := store.Low(n), store.High(n)
		visit(low)
		visit(high)
		edgeLines.WriteString(fmt.Sprintf("  %d -> %s [label=\"0\"];\n", id, childRef(low, ids)))
		edgeLines.WriteString(fmt.Sprintf("  %d -> %s [label=\"1\"];\n", id, childRef(high, ids)))
	}
	visit(h)

	for _, leaf := range []robdd.Handle{robdd.False, robdd.True} {
		if leaves[leaf] {
			b.WriteString(leafLine(leaf))
		}
	}
	b.WriteString(nodeLines.String())
	b.WriteString(edgeLines.String())

	b.WriteString("}\n")
	return b.String()
}

func leafLine(h robdd.Handle) string {
	if h.LeafValue() {
		return "  1 [label=\"true\"];\n"
	}
	return "  0 [label=\"false\"];\n"
}

func childRef(h robdd.Handle, ids map[robdd.Handle]int) string {
	if h.IsLeaf() {
		if h.LeafValue() {
			return "1"
		}
		return "0"
	}
	return fmt.Sprintf("%d", ids[h])
}
