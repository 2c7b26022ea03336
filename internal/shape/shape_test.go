package shape

import "testing"

func TestValidate(t *testing.T) {
	if err := Validate([]int{3, 4}); err != nil {
		t.Errorf("valid shape rejected: %v", err)
	}
	if err := Validate(nil); err != nil {
		t.Errorf("scalar shape rejected: %v", err)
	}
	if err := Validate([]int{2, -1}); err == nil {
		t.Error("expected error for negative dimension")
	}
}

func TestElements(t *testing.T) {
	tests := []struct {
		dims []int
		want int
	}{
		{nil, 1},
		{[]int{5}, 5},
		{[]int{3, 4}, 12},
		{[]int{2, 3, 4}, 24},
		{[]int{3, 0, 4}, 0},
	}
	for _, tt := range tests {
		if got := Elements(tt.dims); got != tt.want {
			t.Errorf("Elements(%v) = %d, want %d", tt.dims, got, tt.want)
		}
	}
}

func TestEqual(t *testing.T) {
	if !Equal([]int{3, 4}, []int{3, 4}) {
		t.Error("equal shapes reported unequal")
	}
	if Equal([]int{3, 4}, []int{4, 3}) {
		t.Error("different shapes reported equal")
	}
	if Equal([]int{3, 4}, []int{3, 4, 1}) {
		t.Error("different ranks reported equal")
	}
	if !Equal(nil, []int{}) {
		t.Error("scalar shapes reported unequal")
	}
}

func TestStrides(t *testing.T) {
	tests := []struct {
		dims []int
		want []int
	}{
		{[]int{3, 4}, []int{4, 1}},
		{[]int{2, 3, 4}, []int{12, 4, 1}},
		{[]int{7}, []int{1}},
	}
	for _, tt := range tests {
		got := Strides(tt.dims)
		if !Equal(got, tt.want) {
			t.Errorf("Strides(%v) = %v, want %v", tt.dims, got, tt.want)
		}
	}
	if Strides(nil) != nil {
		t.Error("scalar strides should be nil")
	}
}

func TestOffset(t *testing.T) {
	off, err := Offset([]int{3, 4}, []int{2, 1})
	if err != nil {
		t.Fatalf("Offset failed: %v", err)
	}
	if off != 9 {
		t.Errorf("expected offset 9, got %d", off)
	}

	if _, err := Offset([]int{3, 4}, []int{2}); err == nil {
		t.Error("expected error for wrong coordinate count")
	}
	if _, err := Offset([]int{3, 4}, []int{3, 0}); err == nil {
		t.Error("expected error for out-of-range coordinate")
	}
}
