// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

import "math"

// termOrder is the order level assigned to terminals for comparison
// purposes: terminals sit below every SetNode, so they compare as having the
// largest possible order.
const termOrder = int32(math.MaxInt32)

// orderOf returns the order level of v, termOrder for a terminal.
func (s *store) orderOf(v Vertex) int32 {
	if v.Terminal() {
		return termOrder
	}
	return s.nodes[v].order
}

// indexOf returns the literal index of v. Undefined for terminals.
func (s *store) indexOf(v Vertex) int32 {
	return s.nodes[v].index
}

// shallower reports whether a's level is strictly above b's level, using the
// ordering contract: smaller order first, and at equal order the
// larger (more positive) index first - the positive literal sits immediately
// above its own complement.
func (s *store) shallower(a, b Vertex) bool {
	oa, ob := s.orderOf(a), s.orderOf(b)
	if oa != ob {
		return oa < ob
	}
	return s.indexOf(a) > s.indexOf(b)
}

// sameLevel reports whether a and b denote the same literal: identical order
// and identical index. Two SetNodes can share an order without sharing an
// index only when one is the complement of the other (same order, different
// index); sameLevel is false in that case.
func (s *store) sameLevel(a, b Vertex) bool {
	return s.orderOf(a) == s.orderOf(b) && s.indexOf(a) == s.indexOf(b)
}

// sameOrder reports whether a and b sit at the same order level, which is
// the signature of a complement pair (same order, opposite-sign index) when
// sameLevel is false.
func (s *store) sameOrder(a, b Vertex) bool {
	return s.orderOf(a) == s.orderOf(b)
}

// canonicalPair reorders (a, b) so that the shallower vertex comes first,
// per the canonicalisation rule ("canonicalise operand order so that
// a has the smaller level").
func (s *store) canonicalPair(a, b Vertex) (Vertex, Vertex) {
	if s.shallower(b, a) {
		return b, a
	}
	return a, b
}

// orderedKey builds the symmetric (min,max) id pair used to key the AND/OR
// compute tables, so that Apply(op, a, b, n) and Apply(op, b, a, n) share one
// entry: the order of input argument vertices does not matter.
func orderedKey(a, b Vertex, limit int32) applyKey {
	if a > b {
		a, b = b, a
	}
	return applyKey{lo: a, hi: b, limit: limit}
}
