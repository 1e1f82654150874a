// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

// Zbdd is the top-level handle on one ZBDD-based minimal-cut-set analysis.
// It owns a private store (vertex arena plus compute tables) and a module
// table, mirroring the "each analysis gets its own isolated set of tables"
// property: two Zbdd values never share state, so running several
// analyses concurrently only requires giving each its own Zbdd.
//
// The zero value is not usable; construct one with NewFromBDD, NewFromGraph
// or NewFromCutSets.
type Zbdd struct {
	*store

	root        Vertex
	modules     map[int32]Vertex
	limitOrder  int32
	nonCoherent bool

	cutSets  [][]int32
	analyzed bool
	released bool
}

func newZbdd(opts ...Option) (*Zbdd, error) {
	cfg := defaultConfigs()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.limitOrder < 0 {
		return nil, configError("LimitOrder must not be negative, got %d", cfg.limitOrder)
	}
	if cfg.nodeCapacity < 0 {
		return nil, configError("NodeCapacity must not be negative, got %d", cfg.nodeCapacity)
	}
	z := &Zbdd{
		store:      newStore(cfg),
		modules:    make(map[int32]Vertex),
		limitOrder: int32(cfg.limitOrder),
		root:       Empty,
	}
	return z, nil
}

// joinModule installs (and takes ownership of) a module's root vertex. A
// second registration of the same index is a caller precondition violation
// and panics: every builder path registers each module index exactly
// once.
func (z *Zbdd) joinModule(index int32, root Vertex) {
	if old, ok := z.modules[index]; ok {
		assertf(false, "module %d redefined (had vertex %d, got %d)", index, old, root)
	}
	z.modules[index] = root
}

func (z *Zbdd) moduleRoot(index int32) Vertex {
	root, ok := z.modules[index]
	assertf(ok, "module %d has no registered sub-diagram", index)
	return root
}

// Analyze runs Minimize, complement elimination (only when the diagram was
// built from a non-coherent formula), Sanitize, and destructive cut-set
// extraction, in that order. It is not safe
// to call Analyze twice: cut-set generation destroys the graph.
func (z *Zbdd) Analyze() {
	assertf(!z.analyzed, "Analyze called twice on the same Zbdd")
	z.log.phase("minimizing root")
	minimized := z.Minimize(z.root)
	z.unref(z.root)
	z.root = minimized

	if z.nonCoherent {
		z.log.phase("eliminating complements")
		eliminated := z.EliminateComplements(z.root)
		z.unref(z.root)
		z.root = eliminated
	}

	sanitized := z.Sanitize(z.root)
	z.unref(z.root)
	z.root = sanitized

	z.TestStructure(z.root)

	z.clearComputeTables()

	z.log.phase("generating cut sets")
	z.cutSets = z.GenerateCutSets(z.root)
	z.ClearMarks(z.root)
	z.analyzed = true
	z.log.phase("analysis complete", "cutsets", len(z.cutSets))

	// GenerateCutSets is destructive: by the time it returns, the diagram
	// has released most of its internal edges (CutBranches). Drop our own
	// root reference too and mark the engine released: subsequent calls
	// return whatever CutSets already captured, nothing more.
	z.unref(z.root)
	z.root = Empty
	z.released = true
}

// CutSets returns the minimal cut sets found by Analyze, each a slice of
// non-zero literal indices in order of decreasing variable order (the
// deepest literal in the diagram first).
// It returns nil until Analyze has run, and continues to return the same
// slice afterwards even though the underlying diagram has been released.
func (z *Zbdd) CutSets() [][]int32 {
	return z.cutSets
}
