// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

import "testing"

func unitOrder(index int32) int32 {
	if index < 0 {
		index = -index
	}
	return index
}

func TestNewFromCutSets_DeduplicatesAndAbsorbs(t *testing.T) {
	modules := []ModuleCutSets{
		{
			Index: 0,
			Order: unitOrder,
			CutSets: [][]int32{
				{1, 2},
				{1, 2}, // duplicate, must not produce a second branch
				{1},    // subset of {1, 2}: {1, 2} is absorbed
				{3},
			},
		},
	}

	z, err := NewFromCutSets(modules)
	if err != nil {
		t.Fatal(err)
	}
	z.Analyze()
	got := z.CutSets()
	sortCutSets(got)
	want := [][]int32{{1}, {3}}
	sortCutSets(want)

	if len(got) != len(want) {
		t.Fatalf("cut sets = %v, want %v", got, want)
	}
	for i := range want {
		if len(got[i]) != len(want[i]) {
			t.Fatalf("cut sets = %v, want %v", got, want)
		}
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Fatalf("cut sets = %v, want %v", got, want)
			}
		}
	}
}

func TestNewFromCutSets_RequiresAtLeastOneModule(t *testing.T) {
	_, err := NewFromCutSets(nil)
	if err == nil {
		t.Fatal("NewFromCutSets(nil) returned no error, want a ConfigError")
	}
	if _, ok := err.(*ConfigError); !ok {
		t.Errorf("NewFromCutSets(nil) error type = %T, want *ConfigError", err)
	}
}

func TestNewFromCutSets_ExpandsModule(t *testing.T) {
	// Module 10 is OR(A, B); the top formula is AND(module 10, C).
	modules := []ModuleCutSets{
		{Index: 10, Order: unitOrder, CutSets: [][]int32{{1}, {2}}},
		{Index: 0, Order: unitOrder, CutSets: [][]int32{{10, 5}}},
	}

	z, err := NewFromCutSets(modules)
	if err != nil {
		t.Fatal(err)
	}
	z.Analyze()
	got := z.CutSets()
	sortCutSets(got)
	want := [][]int32{{1, 5}, {2, 5}}
	sortCutSets(want)

	if len(got) != len(want) {
		t.Fatalf("cut sets = %v, want %v", got, want)
	}
}

func TestEmplaceCutSet_UnionsIntoRoot(t *testing.T) {
	z, err := NewFromCutSets([]ModuleCutSets{
		{Index: 0, Order: unitOrder, CutSets: [][]int32{{1}}},
	})
	if err != nil {
		t.Fatal(err)
	}
	z.EmplaceCutSet([]int32{2}, unitOrder)

	z.Analyze()
	got := z.CutSets()
	sortCutSets(got)
	want := [][]int32{{1}, {2}}
	sortCutSets(want)

	if len(got) != len(want) {
		t.Fatalf("cut sets after EmplaceCutSet = %v, want %v", got, want)
	}
}
