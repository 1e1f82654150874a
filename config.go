// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

// configs stores the tunable parameters of a Zbdd instance. Most fields
// mirror the knobs rudd exposes for its BDD node table (Nodesize, Cachesize,
// Cacheratio, Maxnodesize, Maxnodeincrease, Minfreenodes), adapted to an
// arena that grows by append rather than by doubling a fixed-size slice.
type configs struct {
	limitOrder   int  // cutoff on cut-set cardinality (may be 0, never negative; defaults to _MAXVAR)
	nodeCapacity int  // initial capacity of the vertex arena
	cacheRatio   int  // compute-table size as a percentage of the arena size (0 means "unbounded map")
	minFreeNodes int  // percentage of free arena slots to keep before log-warning about growth
	debug        bool // gate verbose phase/GC logging
}

func defaultConfigs() *configs {
	return &configs{
		limitOrder:   int(_MAXVAR),
		nodeCapacity: 1024,
		cacheRatio:   0,
		minFreeNodes: _MINFREENODES,
	}
}

// Option configures a Zbdd instance. Options are applied in order, the same
// functional-options pattern rudd uses for its own New constructor.
type Option func(*configs)

// LimitOrder sets the upper bound on the cardinality of cut sets the engine
// will produce. A limit of 0 is legal: it simply yields an empty cut-set
// family. Unset, the limit defaults to _MAXVAR, effectively unbounded.
func LimitOrder(n int) Option {
	return func(c *configs) {
		c.limitOrder = n
	}
}

// NodeCapacity is a configuration option setting a preferred initial capacity
// for the vertex arena. The arena grows automatically past this size; this
// only avoids repeated reallocation for diagrams of a known rough size.
func NodeCapacity(n int) Option {
	return func(c *configs) {
		if n > 0 {
			c.nodeCapacity = n
		}
	}
}

// CacheRatio sets the compute-table size, as a percentage of the arena size,
// used as a hint when pre-sizing the underlying Go maps. The default (0)
// leaves maps unsized and lets them grow on demand.
func CacheRatio(ratio int) Option {
	return func(c *configs) {
		c.cacheRatio = ratio
	}
}

// MinFreeNodes sets the percentage of free arena slots below which the engine
// logs a growth warning, checked each time an allocation reuses a free slot.
// The default is 20%, matching rudd's _MINFREENODES.
func MinFreeNodes(ratio int) Option {
	return func(c *configs) {
		if ratio > 0 {
			c.minFreeNodes = ratio
		}
	}
}

// Debug turns on verbose, leveled logging of phase transitions and
// compute-table clears. The free-slot warning is logged whether or not Debug
// is set.
func Debug(on bool) Option {
	return func(c *configs) {
		c.debug = on
	}
}
