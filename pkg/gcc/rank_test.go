package gcc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildBoundsOrdering(t *testing.T) {
	views := []IntView{
		NewVar(0, 10, "a"), // {1..10}
		NewVar(0, 10, "b"),
	}
	views[0].(*Var).SetDomain(NewBitsetFromValues(0, 10, []int{3, 4, 5}))
	views[1].(*Var).SetDomain(NewBitsetFromValues(0, 10, []int{1, 2}))

	b := BuildBounds(views)
	if len(b.Mu) != 2 || len(b.Nu) != 2 {
		t.Fatalf("Mu/Nu length = %d/%d, want 2/2", len(b.Mu), len(b.Nu))
	}
	// b (max 2) sorts before a (max 5) in ascending-max order.
	if b.Mu[0] != 1 || b.Mu[1] != 0 {
		t.Fatalf("Mu = %v, want [1 0]", b.Mu)
	}
	// b (min 1) sorts before a (min 3) in ascending-min order.
	if b.Nu[0] != 1 || b.Nu[1] != 0 {
		t.Fatalf("Nu = %v, want [1 0]", b.Nu)
	}
	if len(b.Rank) != 2 {
		t.Fatalf("Rank length = %d, want 2", len(b.Rank))
	}
}

func TestBuildBoundsCompressedPositions(t *testing.T) {
	views := []IntView{
		NewVar(0, 10, "a"),
		NewVar(0, 10, "b"),
	}
	views[0].(*Var).SetDomain(NewBitsetFromValues(0, 10, []int{1, 2}))
	views[1].(*Var).SetDomain(NewBitsetFromValues(0, 10, []int{1, 2}))

	b := BuildBounds(views)
	// Both variables share min=1, max=2: positions {1, 3} (max+1).
	if cmp.Diff(b.B, []int{1, 3}) != "" {
		t.Fatalf("B = %v, want [1 3]", b.B)
	}
	for _, r := range b.Rank {
		if r.MinIdx != 0 || r.MaxIdx != 1 {
			t.Fatalf("Rank = %+v, want MinIdx=0 MaxIdx=1", r)
		}
	}
}
