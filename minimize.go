// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

// Minimize returns the antichain of minimal sets of v's family: no returned
// vertex has a descendant carrying a superset of a set found elsewhere in
// the same family. v is borrowed; the return value is owned by the caller.
//
// Grounded on the original SCRAM Zbdd::Subsume(vertex) (zbdd.cc), which
// performs the same recursive descent under the name "Subsume" - we split
// the two responsibilities kept separately here, Minimize and
// Subsume, the way the corpus's rudd package keeps single-purpose
// recursive helpers (Ite, Apply, Restrict...) instead of one overloaded
// method.
func (s *store) Minimize(v Vertex) Vertex {
	if v.Terminal() {
		return s.ref(v)
	}
	if s.nodes[v].isMinimal {
		return s.ref(v)
	}
	if cached, ok := s.minimalCache[v]; ok {
		return s.ref(cached)
	}

	index, order, isModule, high, low := s.nodes[v].index, s.nodes[v].order, s.nodes[v].isModule, s.nodes[v].high, s.nodes[v].low

	hPrime := s.Minimize(high)
	lPrime := s.Minimize(low)
	hDoublePrime := s.Subsume(hPrime, lPrime)
	s.unref(hPrime)

	result := s.fetch(index, hDoublePrime, lPrime, order, isModule)
	if !result.Terminal() {
		s.nodes[result].isMinimal = true
	}
	s.minimalCache[v] = s.ref(result)
	return result
}

// Subsume computes high ∖↑ low: the sets of high that are not supersets of
// any set of low. Both arguments are borrowed; the result is owned.
func (s *store) Subsume(high, low Vertex) Vertex {
	if low == Empty {
		return s.ref(high) // high cannot be a superset of the empty family.
	}
	if low == Base {
		return s.ref(Empty) // every set is a superset of ∅.
	}
	if high.Terminal() {
		return s.ref(high) // Empty or Base, neither needs reducing further.
	}

	key := subsumeKey{high, low}
	if cached, ok := s.subsumeTable[key]; ok {
		return s.ref(cached)
	}

	index, order, isModule, hHigh, hLow := s.nodes[high].index, s.nodes[high].order, s.nodes[high].isModule, s.nodes[high].high, s.nodes[high].low

	var subhigh, sublow Vertex
	switch {
	case s.shallower(low, high):
		// high sits below low's level: low's constraint only reaches
		// through low's own low branch at this depth.
		result := s.Subsume(high, s.nodes[low].low)
		s.subsumeTable[key] = s.ref(result)
		return result
	case s.orderOf(high) == s.orderOf(low):
		assertf(s.indexOf(high) == s.indexOf(low),
			"Subsume: same order but different index (%d vs %d) - non-coherent input reached Subsume before EliminateComplements",
			s.indexOf(high), s.indexOf(low))
		lHigh, lLow := s.nodes[low].high, s.nodes[low].low
		subhigh = s.Subsume(hHigh, lHigh)
		sublow = s.Subsume(hLow, lLow)
	default:
		subhigh = s.Subsume(hHigh, low)
		sublow = s.Subsume(hLow, low)
	}

	result := s.fetch(index, subhigh, sublow, order, isModule)
	s.subsumeTable[key] = s.ref(result)
	return result
}
