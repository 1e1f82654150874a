// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

// CutSetContainer extends Zbdd with the operations a MOCUS-style driver
// needs to substitute gates into intermediate cut sets one at a time,
// rather than converting a whole Boolean graph or BDD in one call. Any
// literal index above gateIndexBound names a gate still to be substituted;
// at or below it names a basic event.
//
// Grounded on the original SCRAM zbdd::CutSetContainer (zbdd.h), which
// extends Zbdd the same way, with gate_index_bound_ as the single added
// field.
type CutSetContainer struct {
	*Zbdd

	gateIndexBound int32
}

// NewCutSetContainer builds an empty container whose root starts at Empty,
// ready for a driver to Merge in cut sets as it substitutes gates.
func NewCutSetContainer(gateIndexBound int32, opts ...Option) (*CutSetContainer, error) {
	z, err := newZbdd(opts...)
	if err != nil {
		return nil, err
	}
	return &CutSetContainer{Zbdd: z, gateIndexBound: gateIndexBound}, nil
}

func (c *CutSetContainer) isGate(index int32) bool {
	return index > c.gateIndexBound
}

// ConvertGate folds gate's direct arguments into the ZBDD representing
// gate's own intermediate cut sets. Each argument is converted to a bare
// literal vertex - a basic event, a still-unsubstituted gate proxy, or a
// module proxy - never recursed into: substituting a gate argument's own
// arguments is the driver's job, performed later via GetNextGate,
// ExtractIntermediateCutSets, ExpandGate and Merge.
//
// Grounded on CutSetContainer::ConvertGate (zbdd.h).
func (c *CutSetContainer) ConvertGate(gate GraphNode) Vertex {
	op := OR
	acc := c.ref(Empty)
	if gate.Kind() == GateAND {
		op = AND
		c.unref(acc)
		acc = c.ref(Base)
	}
	for _, arg := range gate.Args() {
		av := c.literalVertex(arg.Index(), arg.Order(), arg.IsModule())
		next := c.Apply(op, acc, av, c.limitOrder)
		c.unref(acc)
		c.unref(av)
		acc = next
	}
	return acc
}

// GetNextGate returns the index of some non-module gate literal reachable
// from v, or 0 if none remains. It marks every SetNode it visits, so a
// caller must ClearMarks (which ExtractIntermediateCutSets does for v's own
// use) before running any other marked traversal over the same diagram.
//
// Grounded on CutSetContainer::GetNextGate (zbdd.h).
func (c *CutSetContainer) GetNextGate(v Vertex) int32 {
	return c.nextGateRec(v)
}

func (c *CutSetContainer) nextGateRec(v Vertex) int32 {
	if v.Terminal() || c.nodes[v].mark {
		return 0
	}
	c.nodes[v].mark = true
	n := c.nodes[v]

	found := int32(0)
	if c.isGate(n.index) && !n.isModule {
		found = n.index
	}
	if h := c.nextGateRec(n.high); found == 0 {
		found = h
	}
	if l := c.nextGateRec(n.low); found == 0 {
		found = l
	}
	return found
}

// ExtractIntermediateCutSets removes, from the container's root, every cut
// set containing a literal of index, and returns the root of a new ZBDD
// holding exactly those cut sets with that literal stripped out. The
// container's own root is left holding only the cut sets that never
// mentioned index.
//
// Precondition: GetNextGate(root) has just run, marking the paths that
// could lead to a gate literal. Postcondition: those marks are cleared.
//
// Grounded on CutSetContainer::ExtractIntermediateCutSets (zbdd.h).
func (c *CutSetContainer) ExtractIntermediateCutSets(index int32) Vertex {
	extracted, remainder := c.extractRec(c.root, index)
	c.ClearMarks(c.root)
	c.unref(c.root)
	c.root = remainder
	return extracted
}

func (c *CutSetContainer) extractRec(v Vertex, index int32) (Vertex, Vertex) {
	if v.Terminal() || !c.nodes[v].mark {
		// Unreached by GetNextGate's search: definitely no occurrence of
		// any gate literal here, let alone this one.
		return c.ref(Empty), c.ref(v)
	}

	n := c.nodes[v]
	if n.index == index {
		// high already excludes index itself; that is exactly the cut
		// sets containing it, with the literal removed, per §4.6.
		return c.ref(n.high), c.ref(n.low)
	}

	exHigh, remHigh := c.extractRec(n.high, index)
	exLow, remLow := c.extractRec(n.low, index)

	rawExtracted := c.fetch(n.index, exHigh, exLow, n.order, n.isModule)
	extracted := c.Minimize(rawExtracted)
	c.unref(rawExtracted)

	rawRemainder := c.fetch(n.index, remHigh, remLow, n.order, n.isModule)
	remainder := c.Minimize(rawRemainder)
	c.unref(rawRemainder)

	return extracted, remainder
}

// ExpandGate substitutes a gate's own cut sets (gateZbdd) into every cut
// set of cutSets that used to reference it, via the ZBDD product expansion.
//
// Grounded on CutSetContainer::ExpandGate (zbdd.h).
func (c *CutSetContainer) ExpandGate(gateZbdd, cutSets Vertex) Vertex {
	return c.Apply(AND, gateZbdd, cutSets, c.limitOrder)
}

// Merge unions v into the container's root and flushes the compute tables,
// the phase boundary a MOCUS driver crosses once per substituted gate.
//
// Grounded on CutSetContainer::Merge (zbdd.h).
func (c *CutSetContainer) Merge(v Vertex) {
	next := c.Apply(OR, c.root, v, c.limitOrder)
	c.unref(c.root)
	c.unref(v)
	c.root = next
	c.clearComputeTables()
}

// JoinModule registers a finished module sub-container's root as the module
// sub-diagram for index, adopting its reference; sub must not be used again
// afterwards.
//
// Grounded on CutSetContainer::JoinModule (zbdd.h).
func (c *CutSetContainer) JoinModule(index int32, sub *CutSetContainer) {
	c.joinModule(index, sub.root)
	sub.root = Empty
}

// Sanitize folds away any module proxy in the container whose sub-diagram
// has degenerated to a terminal, in place - the no-argument form Zbdd.Sanitize
// takes for a driver that only ever operates on its own root.
//
// Grounded on CutSetContainer::Sanitize (zbdd.h).
func (c *CutSetContainer) Sanitize() {
	sanitized := c.Zbdd.Sanitize(c.root)
	c.unref(c.root)
	c.root = sanitized
}
