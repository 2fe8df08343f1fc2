package robdd

// Op names the four Boolean connectives Apply supports.
type Op int

const (
	OpAnd Op = iota
	OpOr
	OpImplies
	OpIff
)

func (op Op) String() string {
	switch op {
	case OpAnd:
		return "AND"
	case OpOr:
		return "OR"
	case OpImplies:
		return "IMPLIES"
	case OpIff:
		return "IFF"
	default:
		return "UNKNOWN"
	}
}

type applyKey struct {
	op   Op
	a, b Handle
}

// Apply lifts op over two diagrams, returning the handle for op(a, b)
// pointwise. The recursion is memoized per top-level call, keyed by
// (op, a, b); AND/OR/IFF normalize the pair under a fixed handle order
// since they're commutative, IMPLIES never is, matching dalzilio-rudd's
// applycache/apply in operations.go.
func (s *Store) Apply(op Op, a, b Handle) (Handle, error) {
	return s.apply(op, a, b, make(map[applyKey]Handle))
}

func (s *Store) apply(op Op, a, b Handle, memo map[applyKey]Handle) (Handle, error) {
	key := normalizeApplyKey(op, a, b)
	if cached, ok := memo[key]; ok {
		return cached, nil
	}

	if res, matched, err := s.applyShortCircuit(op, a, b); matched {
		if err != nil {
			return Handle{}, err
		}
		memo[key] = res
		return res, nil
	}

	// Neither operand is a leaf past this point: every leaf matches one of
	// the four shortcut checks above for any op.
	vA := s.Variable(a)
	vB := s.Variable(b)

	var branch int
	var loA, hiA, loB, hiB Handle
	switch {
	case vA == vB:
		branch = vA
		loA, hiA = s.Low(a), s.High(a)
		loB, hiB = s.Low(b), s.High(b)
	case vA < vB:
		branch = vA
		loA, hiA = s.Low(a), s.High(a)
		loB, hiB = b, b
	default:
		branch = vB
		loA, hiA = a, a
		loB, hiB = s.Low(b), s.High(b)
	}

	c0, err := s.apply(op, loA, loB, memo)
	if err != nil {
		return Handle{}, err
	}
	c1, err := s.apply(op, hiA, hiB, memo)
	if err != nil {
		return Handle{}, err
	}

	res, err := s.Intern(branch, c0, c1)
	if err != nil {
		return Handle{}, err
	}
	memo[key] = res
	return res, nil
}

// applyShortCircuit implements the bit-exact shortcut table: columns in
// the order A=⊥, A=⊤, B=⊥, B=⊤, checked in that order for each op. Since
// every leaf is either False or True, reaching the end with matched=false
// means both a and b are internal nodes.
func (s *Store) applyShortCircuit(op Op, a, b Handle) (res Handle, matched bool, err error) {
	switch op {
	case OpAnd:
		switch {
		case a.Equals(False):
			return False, true, nil
		case a.Equals(True):
			return b, true, nil
		case b.Equals(False):
			return False, true, nil
		case b.Equals(True):
			return a, true, nil
		}
	case OpOr:
		switch {
		case a.Equals(False):
			return b, true, nil
		case a.Equals(True):
			return True, true, nil
		case b.Equals(False):
			return a, true, nil
		case b.Equals(True):
			return True, true, nil
		}
	case OpImplies:
		switch {
		case a.Equals(False):
			return True, true, nil
		case a.Equals(True):
			return b, true, nil
		case b.Equals(False):
			na, err := s.Negate(a)
			return na, true, err
		case b.Equals(True):
			return True, true, nil
		}
	case OpIff:
		switch {
		case a.Equals(False):
			nb, err := s.Negate(b)
			return nb, true, err
		case a.Equals(True):
			return b, true, nil
		case b.Equals(False):
			na, err := s.Negate(a)
			return na, true, err
		case b.Equals(True):
			return a, true, nil
		}
	}
	return Handle{}, false, nil
}

func normalizeApplyKey(op Op, a, b Handle) applyKey {
	if op != OpImplies && handleLess(b, a) {
		a, b = b, a
	}
	return applyKey{op: op, a: a, b: b}
}

func handleLess(x, y Handle) bool {
	if x.kind != y.kind {
		return x.kind < y.kind
	}
	return x.index < y.index
}
