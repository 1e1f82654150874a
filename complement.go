// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

// EliminateComplements removes every negative-literal SetNode from root's
// diagram, folding each one into an OR of its own branches, and returns an
// owned reference to the resulting, fully positive diagram. root is
// borrowed.
//
// Every registered module is processed the same way, once, before root
// itself: a module's sub-diagram can be shared by several proxies, so
// rewriting it in place up front means root's own pass never has to special
// case a module index.
//
// Grounded on the combined Subsume(vertex)/ConvertBdd machinery of the
// original SCRAM Zbdd class (zbdd.cc): SCRAM resolves non-coherence while
// converting from the BDD, folding a negative branch into its sibling via
// Or(); we keep the same fold but run it as its own top-level pass so it
// composes with any of the three construction paths, not just the BDD one.
func (z *Zbdd) EliminateComplements(root Vertex) Vertex {
	for index, modRoot := range z.modules {
		memo := make(map[Vertex]Vertex)
		rewritten := z.eliminateComplementsRec(modRoot, memo)
		z.unref(modRoot)
		z.modules[index] = rewritten
	}
	memo := make(map[Vertex]Vertex)
	return z.eliminateComplementsRec(root, memo)
}

func (z *Zbdd) eliminateComplementsRec(v Vertex, memo map[Vertex]Vertex) Vertex {
	if v.Terminal() {
		return z.ref(v)
	}
	if cached, ok := memo[v]; ok {
		return z.ref(cached)
	}

	index, order, isModule, high, low := z.nodes[v].index, z.nodes[v].order, z.nodes[v].isModule, z.nodes[v].high, z.nodes[v].low

	eHigh := z.eliminateComplementsRec(high, memo)
	eLow := z.eliminateComplementsRec(low, memo)

	var result Vertex
	if !isModule && index < 0 {
		// x' is present in a cut set exactly when x is absent: folding the
		// negative branch into an OR with its sibling removes x' from the
		// diagram while preserving the family of sets it described.
		result = z.Apply(OR, eHigh, eLow, z.limitOrder)
		z.unref(eHigh)
		z.unref(eLow)
	} else {
		raw := z.fetch(index, eHigh, eLow, order, isModule)
		result = z.Minimize(raw)
		z.unref(raw)
	}

	memo[v] = z.ref(result)
	return result
}
