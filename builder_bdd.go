// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

// BddNode is the read-only view a caller's own reduced-ordered binary
// decision diagram must present to be converted into a ZBDD of its
// satisfying assignments. Modeled on rudd's BDD interface (bdd.go): a
// handful of accessors hide the caller's node representation instead of
// requiring it to match ours.
//
// Var, High and Low are meaningless on a terminal node. HighComplemented and
// LowComplemented report whether the corresponding child edge inverts the
// meaning of the node it points to, the complemented-edge convention several
// BDD packages use to halve node counts; a package with no complemented
// edges can return false unconditionally from both.
//
// Variable order is taken directly from Var, ignoring its sign: node a is
// assumed shallower than node b whenever |a.Var()| < |b.Var()|, matching the
// total order any reduced BDD already imposes on its variables.
type BddNode interface {
	IsTerminal() bool
	Value() bool
	Var() int32
	High() BddNode
	LowComplemented() bool
	HighComplemented() bool
	Low() BddNode
}

// NewFromBDD builds an engine whose diagram encodes exactly the satisfying
// assignments of root (or its complement, when complement is true), plus one
// module sub-diagram per entry of modules, keyed by the proxy index a
// caller's own graph already uses to reference that module.
func NewFromBDD(root BddNode, complement bool, modules map[int32]BddNode, opts ...Option) (*Zbdd, error) {
	z, err := newZbdd(opts...)
	if err != nil {
		return nil, err
	}
	z.log.phase("converting BDD", "modules", len(modules))

	moduleIndex := make(map[int32]bool, len(modules))
	for index := range modules {
		moduleIndex[index] = true
	}

	memo := make(map[bddMemoKey]Vertex)
	for index, m := range modules {
		v := z.convertBdd(m, false, z.limitOrder, moduleIndex, memo)
		z.joinModule(index, v)
	}
	z.root = z.convertBdd(root, complement, z.limitOrder, moduleIndex, memo)
	return z, nil
}

type bddMemoKey struct {
	node       BddNode
	complement bool
	limit      int32
}

// convertBdd walks n's diagram, folding complement into the terminal test
// the way rudd's own complemented-edge BDDs do. moduleIndex marks which
// variable indices are module proxies - supplied up front as the keys of
// NewFromBDD's modules map, since a module may be referenced by a variable
// node before its own sub-diagram has been converted and joined.
//
// limit is the residual cut-set cardinality budget, threaded down the walk
// rather than left to Apply: unlike the graph and cut-set builders, a BDD's
// low branch is walked with the very same node the high branch would have
// used, so there is no separate Apply call to charge the cost against. A
// genuine positive, non-module variable costs one unit descending into the
// high branch; if the budget is already exhausted, the high branch is never
// even built, and the whole node collapses to its low branch (or EMPTY, if
// that low branch is not itself a terminal).
func (z *Zbdd) convertBdd(n BddNode, complement bool, limit int32, moduleIndex map[int32]bool, memo map[bddMemoKey]Vertex) Vertex {
	if n.IsTerminal() {
		if n.Value() != complement {
			return z.ref(Base)
		}
		return z.ref(Empty)
	}

	key := bddMemoKey{n, complement, limit}
	if cached, ok := memo[key]; ok {
		return z.ref(cached)
	}

	index := n.Var()
	order := index
	if index < 0 {
		z.nonCoherent = true
		order = -index
	}
	isModule := moduleIndex[order]

	low := z.convertBdd(n.Low(), complement != n.LowComplemented(), limit, moduleIndex, memo)
	if limit <= 0 {
		var result Vertex
		if low.Terminal() {
			result = z.ref(low)
		} else {
			z.unref(low)
			result = z.ref(Empty)
		}
		memo[key] = z.ref(result)
		return result
	}

	highLimit := limit
	if index > 0 && !isModule {
		highLimit = limit - 1
	}
	high := z.convertBdd(n.High(), complement != n.HighComplemented(), highLimit, moduleIndex, memo)

	if sub, ok := z.modules[order]; isModule && ok && sub.Terminal() {
		// Module already converted to a terminal: Empty -> low, Base -> OR(high, low).
		var result Vertex
		if sub == Empty {
			z.unref(high)
			result = low
		} else {
			result = z.Apply(OR, high, low, limit)
			z.unref(high)
			z.unref(low)
		}
		memo[key] = z.ref(result)
		return result
	}

	raw := z.fetch(index, high, low, order, isModule)
	result := z.Minimize(raw)
	z.unref(raw)
	memo[key] = z.ref(result)
	return result
}
