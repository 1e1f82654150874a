// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

// _MAXVAR bounds the number of distinct order levels representable in a
// diagram. Adapted from rudd's _MAXVAR (kernel.go): we keep an int32-sized
// ceiling so indices and orders never need more than one machine word.
const _MAXVAR int32 = 0x1FFFFF

// _MINFREENODES is the default percentage of free arena slots below which an
// allocation that reuses a free slot logs about growth. Mirrors rudd's
// _MINFREENODES.
const _MINFREENODES int = 20

// Vertex is an opaque handle into a Zbdd's vertex arena. The zero value,
// Empty, and the value Base are the two terminals shared by every diagram
// built from the same Zbdd; every other value denotes a SetNode.
//
// A Vertex is a plain integer, not a pointer: ownership is tracked separately
// via explicit reference counts (see ref/unref in store.go), a systems-
// language stand-in for rudd's finalizer-driven node reclamation.
type Vertex int32

const (
	// Empty is the terminal vertex representing the family containing no
	// sets (the Boolean constant false).
	Empty Vertex = 0
	// Base is the terminal vertex representing the family {∅} containing
	// only the empty set (the Boolean constant true).
	Base Vertex = 1
)

// Terminal reports whether v is one of the two distinguished terminals.
func (v Vertex) Terminal() bool {
	return v == Empty || v == Base
}

// Value returns the Boolean value of a terminal vertex. It must not be
// called on a SetNode.
func (v Vertex) Value() bool {
	assertf(v.Terminal(), "Value() called on non-terminal vertex %d", v)
	return v == Base
}

// setNode is the representation of a non-terminal vertex, a proper node in
// the unique table. Compare with SetNode in the original SCRAM zbdd.h: index,
// order, high/low children, the module and minimal flags, and a transient
// mark are all present here; "payload" is represented by the cutSets/cached
// pair used by GenerateCutSets and by count, used by the node-
// counting helpers in cutsets.go.
type setNode struct {
	index     int32 // literal index: positive variable, negative complement
	order     int32 // order level; ties at equal order break by index
	high, low Vertex
	isModule  bool
	isMinimal bool
	mark      bool
	refcount  int32

	cached  bool
	cutSets [][]int32
	count   int64

	next Vertex // free-list link when this slot is not in use
}

// uniqueKey is the hash-consing key: (index, high.id, low.id).
type uniqueKey struct {
	index     int32
	high, low Vertex
}

// applyKey memoises Apply results in both the AND and the OR compute table,
// keyed by the operand ids (ordered so
// lookup is insensitive to argument order) and the residual
// limit_order budget.
type applyKey struct {
	lo, hi Vertex
	limit  int32
}

// subsumeKey memoises Subsume results, which carry no limit_order
// component.
type subsumeKey struct {
	high, low Vertex
}
