// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

import (
	"strings"
	"testing"
)

func TestStatsReportsLiveNodes(t *testing.T) {
	z, err := newZbdd()
	if err != nil {
		t.Fatal(err)
	}
	a := z.literalVertex(1, 1, false)
	b := z.literalVertex(2, 2, false)
	union := z.Apply(OR, a, b, z.limitOrder)
	z.unref(a)
	z.unref(b)

	stats := z.Stats()
	if stats.Live == 0 {
		t.Errorf("Stats().Live = 0 after building a diagram, want > 0")
	}
	if stats.Analyzed {
		t.Errorf("Stats().Analyzed = true before Analyze was called")
	}
	if stats.Modules != 0 {
		t.Errorf("Stats().Modules = %d, want 0 (no module registered)", stats.Modules)
	}
	z.unref(union)
}

func TestPrintDotRendersReachableNodes(t *testing.T) {
	z, err := newZbdd()
	if err != nil {
		t.Fatal(err)
	}
	a := z.literalVertex(1, 1, false)
	b := z.literalVertex(2, 2, false)
	union := z.Apply(OR, a, b, z.limitOrder)
	z.unref(a)
	z.unref(b)

	var buf strings.Builder
	if err := z.PrintDot(&buf, union); err != nil {
		t.Fatalf("PrintDot returned an error: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "digraph zbdd {") {
		t.Errorf("PrintDot output does not start with the digraph header: %q", out)
	}
	if !strings.Contains(out, `label="0"`) || !strings.Contains(out, `label="1"`) {
		t.Errorf("PrintDot output missing a terminal label: %q", out)
	}
	z.unref(union)
}
