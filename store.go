// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

// store owns the vertex arena, the unique table, and the compute tables for
// one Zbdd instance. Grounded on rudd's hudd backend (hudd.go, hkernel.go): a
// slice of nodes threaded into a free list, and a map keyed on the triplet
// that defines hash-consing. Unlike hudd, which hashes (level, low, high)
// into a fixed-size byte array to index a map[[huddsize]byte]int, we key the
// map directly on a small comparable struct (uniqueKey) - idiomatic now that
// we are not trying to stay byte-compatible with a C unique-table layout.
type store struct {
	nodes   []setNode
	unique  map[uniqueKey]Vertex
	freePos Vertex
	freeNum int
	produced int

	andTable     map[applyKey]Vertex
	orTable      map[applyKey]Vertex
	subsumeTable map[subsumeKey]Vertex
	minimalCache map[Vertex]Vertex

	cfg *configs
	log *engineLog
}

func newStore(cfg *configs) *store {
	s := &store{
		cfg: cfg,
		log: newEngineLog(cfg.debug),
	}
	s.nodes = make([]setNode, 2, cfg.nodeCapacity)
	s.unique = make(map[uniqueKey]Vertex, cfg.nodeCapacity)
	s.resetComputeTables()
	// Slots 0 and 1 are reserved for the Empty/Base terminals and are never
	// linked into the free list or the unique table.
	return s
}

// resetComputeTables allocates fresh, empty compute-table maps. It releases
// nothing itself: it is called at construction, when there is nothing yet to
// release, and by clearComputeTables after the old entries are released.
func (s *store) resetComputeTables() {
	hint := 0
	if s.cfg.cacheRatio > 0 {
		hint = len(s.nodes) * s.cfg.cacheRatio / 100
	}
	s.andTable = make(map[applyKey]Vertex, hint)
	s.orTable = make(map[applyKey]Vertex, hint)
	s.subsumeTable = make(map[subsumeKey]Vertex, hint)
	s.minimalCache = make(map[Vertex]Vertex, hint)
}

// clearComputeTables flushes the AND/OR/SUBSUME/MINIMAL compute tables,
// releasing the strong reference each cached entry holds before dropping the
// maps. This must happen at phase boundaries - after each top-level gate
// conversion and before final extraction - so that cached results of a
// finished phase do not keep an otherwise-dead diagram alive.
func (s *store) clearComputeTables() {
	for _, v := range s.andTable {
		s.unref(v)
	}
	for _, v := range s.orTable {
		s.unref(v)
	}
	for _, v := range s.subsumeTable {
		s.unref(v)
	}
	for _, v := range s.minimalCache {
		s.unref(v)
	}
	s.resetComputeTables()
	s.log.phase("compute tables cleared")
}

// alloc reserves an arena slot, growing the arena when the free list is
// empty. rudd resizes its node table by doubling subject to Maxnodesize and
// Maxnodeincrease (see noderesize in hkernel.go); since our arena is a plain
// Go slice we let append grow it geometrically and only keep the
// MinFreeNodes ratio as an observability signal, logged rather than enforced.
func (s *store) alloc() Vertex {
	if s.freeNum == 0 {
		s.nodes = append(s.nodes, setNode{})
		id := Vertex(len(s.nodes) - 1)
		s.produced++
		return id
	}
	id := s.freePos
	s.freePos = s.nodes[id].next
	s.freeNum--
	s.nodes[id] = setNode{}
	s.produced++
	ratio := s.freeNum * 100 / len(s.nodes)
	if ratio < s.cfg.minFreeNodes {
		s.log.warn("free node ratio %d%% below MinFreeNodes (%d%%)", ratio, s.cfg.minFreeNodes)
	}
	return id
}

func (s *store) node(v Vertex) *setNode {
	assertf(!v.Terminal(), "node() called on terminal vertex %d", v)
	return &s.nodes[v]
}

// ref increments the strong reference count of v and returns v unchanged, so
// calls can be chained the way a caller would chain AddRef in rudd's (now
// removed) reference-counting API.
func (s *store) ref(v Vertex) Vertex {
	if !v.Terminal() {
		s.nodes[v].refcount++
	}
	return v
}

// unref releases one strong reference to v. When the count reaches zero the
// GC hook fires: the unique-table key is evicted before the slot is
// reclaimed, and the children are recursively released, the same
// shared_ptr-style custom-deleter discipline SCRAM's C++ zbdd.cc relies on.
func (s *store) unref(v Vertex) {
	if v.Terminal() {
		return
	}
	n := &s.nodes[v]
	assertf(n.refcount > 0, "unref() underflow on vertex %d", v)
	n.refcount--
	if n.refcount > 0 {
		return
	}
	s.release(v)
}

func (s *store) release(v Vertex) {
	n := s.nodes[v]
	delete(s.unique, uniqueKey{n.index, n.high, n.low})
	s.unref(n.high)
	s.unref(n.low)
	s.nodes[v] = setNode{next: s.freePos}
	s.freePos = v
	s.freeNum++
}

// fetch is the unique-table lookup/insertion. It adopts one
// reference each to high and low (the caller must already own those
// references) and returns ownership of one reference to the result; this
// "adopt inputs, return an owned output" convention is what lets Apply,
// Minimize, Subsume and the builders compose fetch calls without leaking or
// double-releasing vertices.
func (s *store) fetch(index int32, high, low Vertex, order int32, isModule bool) Vertex {
	if high == Empty {
		// Zero-suppression rule: the high branch contributes nothing.
		return low
	}
	if high == low {
		// Redundancy rule.
		s.unref(high)
		return low
	}
	key := uniqueKey{index, high, low}
	if id, ok := s.unique[key]; ok {
		s.unref(high)
		s.unref(low)
		return s.ref(id)
	}
	id := s.alloc()
	n := &s.nodes[id]
	n.index = index
	n.order = order
	n.high = high
	n.low = low
	n.isModule = isModule
	n.refcount = 1
	s.unique[key] = id
	return id
}
