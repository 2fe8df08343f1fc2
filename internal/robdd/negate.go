package robdd

// Negate returns the pointwise negation of h. The recursion is memoized
// per top-level call, keyed on node arena index alone (the hash for a
// negation is just the node itself), mirroring dalzilio-rudd's
// not/matchnot/setnot cache in operations.go.
func (s *Store) Negate(h Handle) (Handle, error) {
	return s.negate(h, make(map[int]Handle))
}

func (s *Store) negate(h Handle, memo map[int]Handle) (Handle, error) {
	if h.IsLeaf() {
		if h.LeafValue() {
			return False, nil
		}
		return True, nil
	}

	if cached, ok := memo[h.index]; ok {
		return cached, nil
	}

	n := s.nodes[h.index]
	low, err := s.negate(n.low, memo)
	if err != nil {
		return Handle{}, err
	}
	high, err := s.negate(n.high, memo)
	if err != nil {
		return Handle{}, err
	}

	res, err := s.Intern(n.variable, low, high)
	if err != nil {
		return Handle{}, err
	}
	memo[h.index] = res
	return res, nil
}
