package rng

import "testing"

func TestSameSeedSameSequence(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("draw %d diverged for identical seeds", i)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := true
	for i := 0; i < 20; i++ {
		if a.Float64() != b.Float64() {
			same = false
			break
		}
	}
	if same {
		t.Fatal("seeds 1 and 2 produced identical sequences")
	}
}

func TestDeriveIsDeterministic(t *testing.T) {
	a := New(7).Derive()
	b := New(7).Derive()
	for i := 0; i < 50; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("derived draw %d diverged for identical roots", i)
		}
	}
}

func TestDerivedStreamsAreIndependent(t *testing.T) {
	root := New(7)
	first := root.Derive()
	second := root.Derive()
	same := true
	for i := 0; i < 20; i++ {
		if first.Float64() != second.Float64() {
			same = false
			break
		}
	}
	if same {
		t.Fatal("sibling derived generators produced identical sequences")
	}
}

func TestIntNBounds(t *testing.T) {
	r := New(3)
	if got := r.IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d, want 0", got)
	}
	if got := r.IntN(-5); got != 0 {
		t.Fatalf("IntN(-5) = %d, want 0", got)
	}
	for i := 0; i < 1000; i++ {
		v := r.IntN(10)
		if v < 0 || v >= 10 {
			t.Fatalf("IntN(10) = %d out of range", v)
		}
	}
}

func TestIntRangeInclusive(t *testing.T) {
	r := New(3)
	if got := r.IntRange(5, 5); got != 5 {
		t.Fatalf("IntRange(5,5) = %d, want 5", got)
	}
	if got := r.IntRange(5, 2); got != 5 {
		t.Fatalf("IntRange(5,2) = %d, want 5", got)
	}
	sawMin, sawMax := false, false
	for i := 0; i < 1000; i++ {
		v := r.IntRange(2, 4)
		if v < 2 || v > 4 {
			t.Fatalf("IntRange(2,4) = %d out of range", v)
		}
		if v == 2 {
			sawMin = true
		}
		if v == 4 {
			sawMax = true
		}
	}
	if !sawMin || !sawMax {
		t.Fatal("IntRange(2,4) never produced an endpoint across 1000 draws")
	}
}

func TestFloatRangeBounds(t *testing.T) {
	r := New(3)
	if got := r.FloatRange(1.5, 1.5); got != 1.5 {
		t.Fatalf("FloatRange(1.5,1.5) = %v, want 1.5", got)
	}
	for i := 0; i < 1000; i++ {
		v := r.FloatRange(-0.05, 0.05)
		if v < -0.05 || v >= 0.05 {
			t.Fatalf("FloatRange(-0.05,0.05) = %v out of range", v)
		}
	}
}
