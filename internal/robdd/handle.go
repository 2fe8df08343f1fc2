// Package robdd implements the Reduced Ordered Binary Decision Diagram
// engine: the node store, its reduction rules, the Apply and Negate
// algorithms, and the driver that walks a parsed formula tree into a
// diagram. See dalzilio-rudd's hudd.go/operations.go for the hash-consing
// and apply/not shape this package follows, adapted to a plain arena plus
// a Go map instead of a manual byte-hashed unique table.
package robdd

import (
	"fmt"

	cerrors "robdd/internal/errors"
)

type handleKind uint8

const (
	leafFalseKind handleKind = iota
	leafTrueKind
	nodeKind
)

// Handle is a lightweight, non-owning reference to either a terminal leaf
// or an internal node held by a Store. Handles compare by value: two
// handles are equal iff they denote the same canonicalized function.
type Handle struct {
	kind  handleKind
	index int
}

// False and True are the two terminal leaves, shared by every Store.
var (
	False = Handle{kind: leafFalseKind}
	True  = Handle{kind: leafTrueKind}
)

func nodeHandle(index int) Handle {
	return Handle{kind: nodeKind, index: index}
}

// IsLeaf reports whether h is one of the two terminals.
func (h Handle) IsLeaf() bool {
	return h.kind != nodeKind
}

// LeafValue returns the Boolean value of a terminal handle. Calling it on
// an internal-node handle is a programmer error.
func (h Handle) LeafValue() bool {
	switch h.kind {
	case leafFalseKind:
		return false
	case leafTrueKind:
		return true
	default:
		invariantViolation("LeafValue called on internal node handle %s", h)
		return false
	}
}

// Equals is handle identity, decidable in O(1) once canonicalized.
func (h Handle) Equals(other Handle) bool {
	return h == other
}

func (h Handle) String() string {
	switch h.kind {
	case leafFalseKind:
		return "false"
	case leafTrueKind:
		return "true"
	default:
		return fmt.Sprintf("node#%d", h.index)
	}
}

func invariantViolation(format string, args ...interface{}) {
	panic(cerrors.InvariantViolation(format, args...))
}
