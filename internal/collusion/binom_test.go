package collusion

import (
	"math"
	"testing"
)

func TestBinomSF_Exact(t *testing.T) {
	cases := []struct {
		k, n int
		p    float64
		want float64
	}{
		{1, 1, 0.5, 0.5},
		{1, 2, 0.5, 0.75},
		{2, 2, 0.5, 0.25},
		{2, 2, 2.0 / 3.0, 4.0 / 9.0},
		{2, 3, 5.0 / 9.0, 425.0 / 729.0},
	}
	for _, c := range cases {
		got := binomSF(c.k, c.n, c.p)
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("binomSF(%d, %d, %g) = %g, want %g", c.k, c.n, c.p, got, c.want)
		}
	}
}

func TestBinomSF_Edges(t *testing.T) {
	if got := binomSF(0, 10, 0.5); got != 1.0 {
		t.Errorf("k=0: got %g, want 1", got)
	}
	if got := binomSF(11, 10, 0.5); got != 0.0 {
		t.Errorf("k>n: got %g, want 0", got)
	}
	if got := binomSF(1, 10, 0); got != 0.0 {
		t.Errorf("p=0: got %g, want 0", got)
	}
	if got := binomSF(3, 10, 1); got != 1.0 {
		t.Errorf("p=1: got %g, want 1", got)
	}
	if got := binomSF(1, 0, 0.5); got != 1.0 {
		t.Errorf("n=0: got %g, want 1", got)
	}
}

func TestBinomSF_LargeN(t *testing.T) {
	// Exact coefficients overflow float64 well below n=300; the
	// log-space sum must stay finite and inside [0, 1].
	got := binomSF(150, 300, 0.5)
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("binomSF(150, 300, 0.5) = %g", got)
	}
	if got <= 0 || got >= 1 {
		t.Errorf("binomSF(150, 300, 0.5) = %g, want in (0, 1)", got)
	}
	// Deep tail stays positive, not a silent underflow to garbage.
	tail := binomSF(290, 300, 0.5)
	if tail <= 0 || tail > 1e-10 {
		t.Errorf("binomSF(290, 300, 0.5) = %g, want tiny positive", tail)
	}
}

func TestBinomSF_MonotonicInK(t *testing.T) {
	prev := 1.0
	for k := 1; k <= 20; k++ {
		got := binomSF(k, 20, 0.3)
		if got > prev {
			t.Fatalf("binomSF not monotonic at k=%d: %g > %g", k, got, prev)
		}
		prev = got
	}
}
