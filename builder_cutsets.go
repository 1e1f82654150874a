// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

// ModuleCutSets pairs a module (or the top formula, when Index is zero) with
// the list of already-computed cut sets that define it. Each cut set is a
// slice of non-zero signed literal indices; Order supplies the preprocessing
// variable order for an index, independent of its sign, the same convention
// GraphNode uses.
type ModuleCutSets struct {
	Index   int32
	Order   func(index int32) int32
	CutSets [][]int32
}

// NewFromCutSets builds an engine directly from raw, already-generated cut
// sets rather than from a diagram: the MOCUS-style entry point for a
// caller whose own gate-substitution pass already produced flat cut sets and
// only needs the ZBDD machinery for deduplication and subsumption. modules
// must be given in dependency order, innermost first, so that a module
// referenced by CutSets[i] is registered before it is needed; the top-level
// formula is the last entry and becomes the engine's root.
func NewFromCutSets(modules []ModuleCutSets, opts ...Option) (*Zbdd, error) {
	z, err := newZbdd(opts...)
	if err != nil {
		return nil, err
	}
	if len(modules) == 0 {
		return nil, configError("NewFromCutSets requires at least one entry")
	}
	z.log.phase("converting cut sets", "modules", len(modules))

	for i, m := range modules {
		v := z.cutSetsVertex(m)
		if i == len(modules)-1 {
			z.root = v
			continue
		}
		z.joinModule(m.Index, v)
	}
	return z, nil
}

func (z *Zbdd) cutSetsVertex(m ModuleCutSets) Vertex {
	acc := z.ref(Empty)
	for _, cs := range m.CutSets {
		term := z.cutSetTerm(cs, m.Order)
		next := z.Apply(OR, acc, term, z.limitOrder)
		z.unref(acc)
		z.unref(term)
		acc = next
	}
	return acc
}

func (z *Zbdd) cutSetTerm(literals []int32, order func(int32) int32) Vertex {
	term := z.ref(Base)
	for _, lit := range literals {
		absLit := lit
		if absLit < 0 {
			absLit = -absLit
		}
		_, isMod := z.modules[absLit]
		singleton := z.literalVertex(lit, order(lit), isMod)
		next := z.Apply(AND, term, singleton, z.limitOrder)
		z.unref(term)
		z.unref(singleton)
		term = next
	}
	return term
}

// EmplaceCutSet unions one more cut set of the top-level formula into the
// engine's root, adopting no references from the caller (literals is only
// read). It is meant for a driver that discovers cut sets incrementally,
// such as a MOCUS gate-substitution loop, rather than all at once.
func (z *Zbdd) EmplaceCutSet(literals []int32, order func(index int32) int32) {
	term := z.cutSetTerm(literals, order)
	next := z.Apply(OR, z.root, term, z.limitOrder)
	z.unref(z.root)
	z.unref(term)
	z.root = next
}

// EmplaceModuleCutSet is EmplaceCutSet for a named module's sub-diagram
// instead of the top-level root.
func (z *Zbdd) EmplaceModuleCutSet(moduleIndex int32, literals []int32, order func(index int32) int32) {
	term := z.cutSetTerm(literals, order)
	current, ok := z.modules[moduleIndex]
	if !ok {
		current = z.ref(Empty)
	}
	next := z.Apply(OR, current, term, z.limitOrder)
	z.unref(current)
	z.unref(term)
	z.modules[moduleIndex] = next
}
