// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

import (
	"fmt"
	"strings"
	"testing"
)

func TestTestStructureAcceptsWellFormedDiagram(t *testing.T) {
	z, err := newZbdd()
	if err != nil {
		t.Fatal(err)
	}
	a := z.literalVertex(1, 1, false)
	b := z.literalVertex(2, 2, false)
	union := z.Apply(OR, a, b, z.limitOrder)
	z.unref(a)
	z.unref(b)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("TestStructure panicked on a well-formed diagram: %v", r)
		}
	}()
	z.TestStructure(union)
	z.unref(union)
}

func mustPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a panic containing %q, got none", want)
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, want) {
			t.Errorf("panic message %q does not contain %q", msg, want)
		}
	}()
	fn()
}

func TestTestStructureDetectsZeroSuppressionViolation(t *testing.T) {
	z, err := newZbdd()
	if err != nil {
		t.Fatal(err)
	}
	v := z.literalVertex(1, 1, false)
	// Corrupt the node directly: a real high == Empty edge should never
	// survive fetch's own zero-suppression check.
	z.nodes[v].high = Empty

	mustPanic(t, "zero-suppression", func() { z.TestStructure(v) })
}

func TestTestStructureDetectsRedundancyViolation(t *testing.T) {
	z, err := newZbdd()
	if err != nil {
		t.Fatal(err)
	}
	v := z.literalVertex(1, 1, false)
	// Make low agree with high (both Base) without touching high, so this
	// trips only the redundancy check and not zero-suppression.
	z.nodes[v].low = z.nodes[v].high

	mustPanic(t, "redundancy", func() { z.TestStructure(v) })
}

func TestTestStructureDetectsUnregisteredModule(t *testing.T) {
	z, err := newZbdd()
	if err != nil {
		t.Fatal(err)
	}
	v := z.literalVertex(10, 1, true) // marked as a module proxy, never joined

	mustPanic(t, "no registered sub-diagram", func() { z.TestStructure(v) })
}

func TestTestStructureDetectsDegenerateModule(t *testing.T) {
	z, err := newZbdd()
	if err != nil {
		t.Fatal(err)
	}
	z.joinModule(10, Empty) // a module that has collapsed to a terminal, unsanitized
	v := z.literalVertex(10, 1, true)

	mustPanic(t, "degenerated to a terminal", func() { z.TestStructure(v) })
}
