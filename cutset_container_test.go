// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCutSetContainer_IsGate(t *testing.T) {
	c, err := NewCutSetContainer(10)
	if err != nil {
		t.Fatal(err)
	}
	if c.isGate(5) {
		t.Errorf("isGate(5) = true, want false (5 is at or below gateIndexBound 10)")
	}
	if !c.isGate(11) {
		t.Errorf("isGate(11) = false, want true (11 is above gateIndexBound 10)")
	}
}

func TestCutSetContainer_ConvertGateOR(t *testing.T) {
	c, err := NewCutSetContainer(10)
	if err != nil {
		t.Fatal(err)
	}
	g := gate(GateOR, event(1, 1), event(2, 2))

	got := cutSetsOf(t, c.Zbdd, c.ConvertGate(g))
	want := [][]int32{{1}, {2}}
	sortCutSets(want)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ConvertGate(OR(1,2)) cut sets (-want +got):\n%s", diff)
	}
}

func TestCutSetContainer_ConvertGateAND(t *testing.T) {
	c, err := NewCutSetContainer(10)
	if err != nil {
		t.Fatal(err)
	}
	g := gate(GateAND, event(1, 1), event(2, 2))

	got := cutSetsOf(t, c.Zbdd, c.ConvertGate(g))
	want := [][]int32{{2, 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ConvertGate(AND(1,2)) cut sets (-want +got):\n%s", diff)
	}
}

// TestCutSetContainer_GateSubstitutionRoundTrip drives the full MOCUS-style
// cycle: convert a top gate whose own formula references a not-yet-expanded
// gate (index 101, above the container's bound of 10), merge it in, find and
// extract the cut sets mentioning gate 101, expand gate 101's own formula in
// their place, and merge the result back - ending with the cut sets of
// OR(event 1, OR(event 3, event 4)).
func TestCutSetContainer_GateSubstitutionRoundTrip(t *testing.T) {
	c, err := NewCutSetContainer(10)
	if err != nil {
		t.Fatal(err)
	}

	top := gate(GateOR, event(1, 1), event(101, 5))
	c.Merge(c.ConvertGate(top))

	gateIndex := c.GetNextGate(c.root)
	if gateIndex != 101 {
		t.Fatalf("GetNextGate(root) = %d, want 101", gateIndex)
	}

	extracted := c.ExtractIntermediateCutSets(gateIndex)

	gate101 := gate(GateOR, event(3, 3), event(4, 4))
	gate101V := c.ConvertGate(gate101)

	expanded := c.ExpandGate(gate101V, extracted)
	c.Merge(expanded)

	got := cutSetsOf(t, c.Zbdd, c.root)
	want := [][]int32{{1}, {3}, {4}}
	sortCutSets(want)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("gate-substitution round trip cut sets (-want +got):\n%s", diff)
	}
}

func TestCutSetContainer_JoinModuleAdoptsSubRoot(t *testing.T) {
	main, err := NewCutSetContainer(10)
	if err != nil {
		t.Fatal(err)
	}
	sub, err := NewCutSetContainer(10)
	if err != nil {
		t.Fatal(err)
	}
	lit := sub.literalVertex(5, 1, false)
	sub.root = lit

	main.JoinModule(20, sub)

	if sub.root != Empty {
		t.Errorf("JoinModule left sub.root = %d, want Empty after adoption", sub.root)
	}
	if got := main.moduleRoot(20); got != lit {
		t.Errorf("main.moduleRoot(20) = %d, want %d", got, lit)
	}
}

func TestCutSetContainer_SanitizeDelegatesToZbdd(t *testing.T) {
	c, err := NewCutSetContainer(10)
	if err != nil {
		t.Fatal(err)
	}
	c.modules[30] = Empty

	a := c.literalVertex(3, 3, false)
	proxy := c.literalVertex(30, 1, true)
	top := c.Apply(OR, a, proxy, c.limitOrder)
	c.unref(a)
	c.unref(proxy)
	c.root = top

	c.Sanitize()

	got := cutSetsOf(t, c.Zbdd, c.root)
	want := [][]int32{{3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CutSetContainer.Sanitize() cut sets (-want +got):\n%s", diff)
	}
}
