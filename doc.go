// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package zbdd implements Zero-Suppressed Binary Decision Diagrams (ZBDD), a data
structure used to represent families of finite sets compactly, and the
algorithms needed to turn such a family into the minimal cut sets (the prime
implicants) of a Boolean fault-tree function.

Basics

A ZBDD is a rooted DAG of SetNode vertices, each tagged with a literal index
(positive for a variable, negative for its complement) and an order that fixes
the variable ordering used throughout the diagram. Unlike a BDD, a ZBDD uses
the zero-suppression reduction rule: a node whose "high" (then) branch is the
empty family collapses into its "low" (else) branch. This makes ZBDD the
natural representation for sparse families of small sets, which is exactly
what a fault tree's cut sets are.

Most operations in this package work over a Vertex, an opaque handle into an
arena owned by a Zbdd value. Two distinguished vertices, Base (the family
containing only the empty set) and Empty (the family containing no sets), are
shared by every diagram.

Construction

A Zbdd is built from one of three sources: a reduced, ordered BDD (see
NewFromBDD), a preprocessed Boolean graph of AND/OR gates (see NewFromGraph),
or a topologically ordered bag of already-computed cut sets (see
NewFromCutSets). A fourth type, CutSetContainer, supports a MOCUS-style driver
that substitutes one gate's cut sets into another's at a time rather than
converting a whole graph or BDD in one call. Every construction path shares
the same unique table and compute tables, so that structural sharing (hash-
consing) holds across the whole diagram, including across module boundaries.

Automatic memory management

Like the BuDDy-derived rudd library this package is descended from, we take
care of hash-consing and compute-table memoisation inside the package, but
unlike rudd we do not rely on the Go runtime's finalizers: because a single
Zbdd is used cooperatively within one analysis (see the concurrency notes on
type Zbdd), reference counts on vertices are maintained explicitly wherever a
vertex is stored - in a parent's high/low edge, in the module table, or in a
compute-table entry - and released explicitly when no longer needed. A
vertex's reference count reaching zero evicts its key from the unique table
before its arena slot is reclaimed.
*/
package zbdd
