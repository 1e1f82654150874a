// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

// Sanitize folds away any module proxy whose registered sub-diagram has
// degenerated to a terminal, restoring invariant 5 ("no module maps to a
// terminal after Minimize"): a module mapped to Empty contributes nothing,
// so every proxy node referencing it collapses into its own low branch; a
// module mapped to Base contributes only the empty set, so every proxy node
// referencing it collapses into OR(high, low), the same fold the BDD builder
// already applies inline when a module's own sub-diagram is converted
// straight to a terminal (see convertBdd). root is borrowed; the return
// value is owned by the caller.
//
// A module can itself reference another module, so one pass is not always
// enough: folding module B's degenerate proxy can make module A, which
// embeds a proxy to B, degenerate in turn. Sanitize repeats the pass until
// no module changes, bounded by one pass per registered module - the
// longest possible chain of module-references-module nesting.
//
// Grounded on the original SCRAM CutSetContainer::Sanitize precondition/
// postcondition pair (zbdd.h) and on the fold rule ConvertBdd already
// applies inline (builder_bdd.go).
func (z *Zbdd) Sanitize(root Vertex) Vertex {
	current := z.ref(root)
	for pass := 0; pass <= len(z.modules); pass++ {
		memo := make(map[Vertex]Vertex)
		changed := false
		for index, sub := range z.modules {
			rewritten := z.sanitizeRec(sub, memo)
			if rewritten != sub {
				changed = true
			}
			z.unref(sub)
			z.modules[index] = rewritten
		}
		next := z.sanitizeRec(current, memo)
		if next != current {
			changed = true
		}
		z.unref(current)
		current = next
		if !changed {
			break
		}
	}
	return current
}

func (z *Zbdd) sanitizeRec(v Vertex, memo map[Vertex]Vertex) Vertex {
	if v.Terminal() {
		return z.ref(v)
	}
	if cached, ok := memo[v]; ok {
		return z.ref(cached)
	}

	index, order, isModule, high, low := z.nodes[v].index, z.nodes[v].order, z.nodes[v].isModule, z.nodes[v].high, z.nodes[v].low

	sHigh := z.sanitizeRec(high, memo)
	sLow := z.sanitizeRec(low, memo)

	var result Vertex
	if sub, ok := z.modules[index]; isModule && ok && sub.Terminal() {
		if sub == Empty {
			z.unref(sHigh)
			result = sLow
		} else {
			result = z.Apply(OR, sHigh, sLow, z.limitOrder)
			z.unref(sHigh)
			z.unref(sLow)
		}
	} else {
		raw := z.fetch(index, sHigh, sLow, order, isModule)
		result = z.Minimize(raw)
		z.unref(raw)
	}

	memo[v] = z.ref(result)
	return result
}
