package qamask

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewMask(t *testing.T) {
	m, err := NewMask([]int{2, 2}, []bool{true, false, false, true})
	if err != nil {
		t.Fatalf("NewMask failed: %v", err)
	}
	if m.CountSet() != 2 {
		t.Errorf("expected 2 set flags, got %d", m.CountSet())
	}
	if m.NumElements() != 4 {
		t.Errorf("expected 4 elements, got %d", m.NumElements())
	}

	if _, err := NewMask([]int{2, 2}, []bool{true}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for length mismatch, got %v", err)
	}
}

func TestMaskBits(t *testing.T) {
	bits := []bool{true, false}
	m, err := NewMask([]int{2}, bits)
	if err != nil {
		t.Fatalf("NewMask failed: %v", err)
	}

	got := m.Bits()
	got[1] = true
	if m.CountSet() != 1 {
		t.Error("Bits() should return a copy")
	}
}

func TestBinaryMask(t *testing.T) {
	r := mustRaster(t, []int{2, 3}, []int{1, 0, 1, 0, 0, 1})

	m, err := BinaryMask(r)
	if err != nil {
		t.Fatalf("BinaryMask failed: %v", err)
	}
	want := []bool{true, false, true, false, false, true}
	if diff := cmp.Diff(want, m.Bits()); diff != "" {
		t.Errorf("mask bits mismatch (-want +got):\n%s", diff)
	}
}

func TestBinaryMaskRejectsQALayer(t *testing.T) {
	qa := mustRaster(t, []int{2, 2}, []int{66, 130, 0, 1})
	if _, err := BinaryMask(qa); !errors.Is(err, ErrNotBinaryMask) {
		t.Errorf("expected ErrNotBinaryMask, got %v", err)
	}
}

func TestBinaryMaskFloat(t *testing.T) {
	r := mustRaster(t, []int{3}, []float64{0, 1, 0})
	m, err := BinaryMask(r)
	if err != nil {
		t.Fatalf("BinaryMask failed: %v", err)
	}
	if m.CountSet() != 1 {
		t.Errorf("expected 1 set flag, got %d", m.CountSet())
	}

	frac := mustRaster(t, []int{2}, []float64{0.5, 1})
	if _, err := BinaryMask(frac); !errors.Is(err, ErrNotBinaryMask) {
		t.Errorf("expected ErrNotBinaryMask for fractional values, got %v", err)
	}
}

func TestMaskUnion(t *testing.T) {
	a, _ := NewMask([]int{4}, []bool{true, false, true, false})
	b, _ := NewMask([]int{4}, []bool{false, false, true, true})

	u, err := a.Union(b)
	if err != nil {
		t.Fatalf("Union failed: %v", err)
	}
	want := []bool{true, false, true, true}
	if diff := cmp.Diff(want, u.Bits()); diff != "" {
		t.Errorf("union mismatch (-want +got):\n%s", diff)
	}

	// Inputs untouched
	if a.CountSet() != 2 || b.CountSet() != 2 {
		t.Error("Union modified an input mask")
	}
}

func TestMaskUnionShapeMismatch(t *testing.T) {
	a, _ := NewMask([]int{4}, []bool{true, false, true, false})
	c, _ := NewMask([]int{2, 2}, []bool{true, false, true, false})
	if _, err := a.Union(c); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for shape mismatch, got %v", err)
	}
}
