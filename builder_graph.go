// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

// GateKind distinguishes the two gate types a Boolean graph mixes together;
// the graph itself, and the sub-diagrams it produces, only ever combine
// arguments with union or intersection.
type GateKind int

const (
	// GateOR folds its arguments with set union.
	GateOR GateKind = iota
	// GateAND folds its arguments with the ZBDD product expansion.
	GateAND
)

// GraphNode is one node of a caller-supplied Boolean graph: either a basic
// event (a leaf variable) or a gate combining other GraphNodes. Index is
// signed: a negative value denotes the complement of the variable or module
// named by its absolute value, which marks the whole analysis as
// non-coherent; complement elimination runs after conversion in that case. Order is the
// preprocessing-assigned variable order, independent of Index's sign.
//
// A module node reports IsModule true; its Args are converted into a
// separate, independently-minimized sub-diagram registered under Index, and
// the node itself contributes only a proxy literal to its parent.
type GraphNode interface {
	IsBasicEvent() bool
	IsModule() bool
	Index() int32
	Order() int32
	Kind() GateKind
	Args() []GraphNode
}

// NewFromGraph builds an engine whose diagram encodes exactly the minimal
// cut sets of root's Boolean formula, expanding every module into its own
// sub-diagram along the way.
func NewFromGraph(root GraphNode, opts ...Option) (*Zbdd, error) {
	z, err := newZbdd(opts...)
	if err != nil {
		return nil, err
	}
	z.log.phase("converting boolean graph")
	useCount := make(map[GraphNode]int32)
	countGateUses(root, useCount, make(map[GraphNode]bool))
	memo := make(map[GraphNode]Vertex)
	z.root = z.convertGraph(root, memo, useCount)
	return z, nil
}

// countGateUses walks root once and counts, for every non-leaf node, how
// many distinct parent gates list it among their Args: its in-degree. A gate
// reachable from more than one place is the one convertGraph's memo must
// hold onto across the separate visits; a gate reachable from nowhere else
// is converted exactly once regardless, so memoising it would only be a
// reference the memo can never usefully evict.
func countGateUses(n GraphNode, useCount map[GraphNode]int32, visited map[GraphNode]bool) {
	if visited[n] {
		return
	}
	visited[n] = true
	for _, arg := range n.Args() {
		if !arg.IsBasicEvent() {
			useCount[arg]++
		}
		countGateUses(arg, useCount, visited)
	}
}

func (z *Zbdd) convertGraph(n GraphNode, memo map[GraphNode]Vertex, useCount map[GraphNode]int32) Vertex {
	if n.IsBasicEvent() {
		// A bare literal reached directly as an OR argument (or as the
		// whole root) never passes through Apply's AND budget check, so it
		// must be rejected here when the overall budget is already
		// exhausted. A negative (complemented) literal is exempt, like
		// everywhere else in the budget model: it costs nothing.
		if n.Index() > 0 && z.limitOrder <= 0 {
			return z.ref(Empty)
		}
		return z.literalVertex(n.Index(), n.Order(), false)
	}

	if cached, ok := memo[n]; ok {
		result := z.ref(cached)
		useCount[n]--
		if useCount[n] <= 0 {
			// Last expected reuse: the memo's own reference has done its
			// job, nobody will look this gate up again.
			z.unref(cached)
			delete(memo, n)
			delete(useCount, n)
		}
		return result
	}

	if n.IsModule() {
		sub := z.foldArgs(n.Kind(), n.Args(), memo, useCount)
		z.joinModule(n.Index(), sub)
		result := z.literalVertex(n.Index(), n.Order(), true)
		z.memoizeGate(n, result, memo, useCount)
		return result
	}

	result := z.foldArgs(n.Kind(), n.Args(), memo, useCount)
	z.memoizeGate(n, result, memo, useCount)
	return result
}

// memoizeGate records result under n only if useCount (populated up front by
// countGateUses) says convertGraph will be asked to convert n again; a gate
// with no further uses is dropped from the bookkeeping instead, since there
// would be no later cache hit to evict it on.
func (z *Zbdd) memoizeGate(n GraphNode, result Vertex, memo map[GraphNode]Vertex, useCount map[GraphNode]int32) {
	if useCount[n] <= 1 {
		delete(useCount, n)
		return
	}
	memo[n] = z.ref(result)
	useCount[n]--
}

// literalVertex builds the ZBDD encoding the singleton family {index}: a
// single SetNode whose high edge leads to Base and whose low edge leads to
// Empty. isModule marks index as a proxy referring to a separately
// registered sub-diagram rather than a plain basic event, so that
// GenerateCutSets and friends know to expand through z.modules instead of
// treating index as an ordinary literal.
func (z *Zbdd) literalVertex(index, order int32, isModule bool) Vertex {
	if index < 0 {
		z.nonCoherent = true
	}
	raw := z.fetch(index, z.ref(Base), z.ref(Empty), order, isModule)
	result := z.Minimize(raw)
	z.unref(raw)
	return result
}

func (z *Zbdd) foldArgs(kind GateKind, args []GraphNode, memo map[GraphNode]Vertex, useCount map[GraphNode]int32) Vertex {
	op := OR
	acc := z.ref(Empty)
	if kind == GateAND {
		op = AND
		z.unref(acc)
		acc = z.ref(Base)
	}
	for _, arg := range args {
		av := z.convertGraph(arg, memo, useCount)
		next := z.Apply(op, acc, av, z.limitOrder)
		z.unref(acc)
		z.unref(av)
		acc = next
		// Compute tables are cleared between successive gate foldings so
		// that a cached AND/OR/Subsume/Minimize result from folding one
		// argument does not keep an otherwise-dead sub-diagram alive while
		// the next argument is converted.
		z.clearComputeTables()
	}
	return acc
}
