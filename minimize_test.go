// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

import "testing"

func TestSubsumeEmptyLowIsIdentity(t *testing.T) {
	s := newStore(defaultConfigs())
	high := s.fetch(1, s.ref(Base), s.ref(Empty), 1, false)
	got := s.Subsume(high, Empty)
	if got != high {
		t.Errorf("Subsume(high, Empty) = %d, want %d (high cannot be a superset of the empty family)", got, high)
	}
	s.unref(got)
	s.unref(high)
}

func TestSubsumeBaseLowRemovesEverything(t *testing.T) {
	s := newStore(defaultConfigs())
	high := s.fetch(1, s.ref(Base), s.ref(Empty), 1, false)
	got := s.Subsume(high, Base)
	if got != Empty {
		t.Errorf("Subsume(high, Base) = %d, want Empty (every set is a superset of the empty set)", got)
	}
	s.unref(high)
}

func TestMinimizeAbsorbsSuperset(t *testing.T) {
	// Build the family {{1}, {1,2}} directly: {1,2} is a superset of {1} and
	// Minimize must absorb it, leaving only {{1}}.
	z, err := newZbdd()
	if err != nil {
		t.Fatal(err)
	}
	lit1 := z.literalVertex(1, 1, false)
	lit2 := z.literalVertex(2, 2, false)
	lit12 := z.Apply(AND, lit1, lit2, z.limitOrder)
	union := z.Apply(OR, lit1, lit12, z.limitOrder)
	z.unref(lit1)
	z.unref(lit2)
	z.unref(lit12)

	got := cutSetsOf(t, z, union)
	if len(got) != 1 || len(got[0]) != 1 || got[0][0] != 1 {
		t.Errorf("Minimize({1} union {1,2}) cut sets = %v, want [[1]]", got)
	}
}

func TestMinimizeIsIdempotent(t *testing.T) {
	z, err := newZbdd()
	if err != nil {
		t.Fatal(err)
	}
	lit1 := z.literalVertex(1, 1, false)
	lit2 := z.literalVertex(2, 2, false)
	union := z.Apply(OR, lit1, lit2, z.limitOrder)
	z.unref(lit1)
	z.unref(lit2)

	if !z.nodes[union].isMinimal {
		t.Fatalf("OR({1},{2}) result not marked minimal after construction")
	}
	again := z.Minimize(union)
	if again != union {
		t.Errorf("Minimize(already-minimal node) = %d, want %d unchanged", again, union)
	}
	z.unref(union)
	z.unref(again)
}
