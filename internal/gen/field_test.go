package gen

import "testing"

func TestFieldRoundTrip(t *testing.T) {
	f := NewField(4, 3)
	f.Set(2, 1, 0.5)
	if got := f.At(2, 1); got != 0.5 {
		t.Fatalf("At(2,1) = %v, want 0.5", got)
	}
	if got := f.Values()[f.Index(2, 1)]; got != 0.5 {
		t.Fatalf("Values()[Index(2,1)] = %v, want 0.5", got)
	}
}

func TestFieldMinimumSize(t *testing.T) {
	f := NewField(0, -2)
	if f.W != 1 || f.H != 1 {
		t.Fatalf("degenerate field sized %dx%d, want 1x1", f.W, f.H)
	}
}
