// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

// Apply is the binary Boolean algebra: it combines two set families
// with OR (union) or AND (the ZBDD product expansion), under a residual
// limit_order budget that bounds the cardinality of any cut set the result
// can contain. Inputs are borrowed (Apply does not consume a or b's
// reference); the return value is a new, owned reference the caller must
// eventually release with unref.
//
// Grounded on rudd's Apply (operations.go) for the general recursive-descent
// shape (terminal cases, compute-table memoisation, recurse-then-fetch), but
// the recursive cases themselves follow the ZBDD product rule's own
// expansion, which has no BDD analogue.
func (s *store) Apply(op Operator, a, b Vertex, limit int32) Vertex {
	switch op {
	case OR:
		switch {
		case a == Empty:
			return s.ref(b)
		case b == Empty:
			return s.ref(a)
		case a == Base || b == Base:
			return s.ref(Base)
		}
	case AND:
		switch {
		case a == Empty || b == Empty:
			return s.ref(Empty)
		case a == Base:
			if !b.Terminal() && limit <= 0 {
				return s.ref(Empty)
			}
			return s.ref(b)
		case b == Base:
			if !a.Terminal() && limit <= 0 {
				return s.ref(Empty)
			}
			return s.ref(a)
		}
	}
	if a == b {
		return s.ref(a)
	}
	if limit < 0 {
		return s.ref(Empty)
	}

	a, b = s.canonicalPair(a, b)
	key := orderedKey(a, b, limit)
	table := s.andTable
	if op == OR {
		table = s.orTable
	}
	if cached, ok := table[key]; ok {
		return s.ref(cached)
	}

	// Snapshot the fields we need up front: recursive Apply calls below can
	// grow the arena (see store.alloc), which may relocate the backing
	// slice, so we never hold a *setNode across a recursive call.
	aIndex, aOrder, aIsModule, aHigh, aLow := s.node(a).index, s.node(a).order, s.node(a).isModule, s.node(a).high, s.node(a).low

	// The high branch is charged one unit of budget exactly when it adds a
	// genuine, non-module positive literal; complements and module proxies
	// are treated as zero-cost. The AND identity shortcuts above (a == Base,
	// b == Base) respect this same ledger: they refuse to splice in a
	// non-terminal operand once the residual budget reaches zero, so a chain
	// of single-literal merges cannot smuggle in one literal for free at the
	// exact point the budget is exhausted.
	lhx := limit
	if aIndex > 0 && !aIsModule {
		lhx = limit - 1
	}

	var high, low Vertex
	switch {
	case s.sameLevel(a, b):
		bHigh, bLow := s.node(b).high, s.node(b).low
		switch op {
		case OR:
			high = s.Apply(OR, aHigh, bHigh, lhx)
			low = s.Apply(OR, aLow, bLow, limit)
		case AND:
			// (x.f1+f0)(x.g1+g0) = x.(f1.(g1+g0) + f0.g1) + f0.g0
			gPlus := s.Apply(OR, bHigh, bLow, lhx)
			t1 := s.Apply(AND, aHigh, gPlus, lhx)
			s.unref(gPlus)
			t2 := s.Apply(AND, aLow, bHigh, lhx)
			high = s.Apply(OR, t1, t2, lhx)
			s.unref(t1)
			s.unref(t2)
			low = s.Apply(AND, aLow, bLow, limit)
		}
	case op == OR && s.sameOrder(a, b) && aHigh.Terminal() && s.node(b).high.Terminal():
		// Shortcut: a complement pair whose high branches are both
		// terminal unions to Base, regardless of which terminal each is.
		result := s.ref(Base)
		table[key] = s.ref(result)
		return result
	case op == OR:
		high = s.ref(aHigh)
		low = s.Apply(OR, aLow, b, limit)
	default: // AND, distinct level
		if s.sameOrder(a, b) {
			high = s.Apply(AND, aHigh, s.node(b).low, lhx)
		} else {
			high = s.Apply(AND, aHigh, b, lhx)
		}
		low = s.Apply(AND, aLow, b, limit)
	}

	// If the high branch rose to a SetNode sitting at a's own order but
	// below it (its complement), absorb it into its low branch: a.high
	// cannot itself carry the complement of a's own variable forward.
	if !high.Terminal() {
		hn := s.node(high)
		if hn.order == aOrder && hn.index < aIndex {
			replacement := s.ref(hn.low)
			s.unref(high)
			high = replacement
		}
	}

	raw := s.fetch(aIndex, high, low, aOrder, aIsModule)
	result := s.Minimize(raw)
	s.unref(raw)
	table[key] = s.ref(result)
	return result
}
