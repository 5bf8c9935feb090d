package gcc

// Arena is a minimal Space reference implementation: a slice-backed
// allocator with no cloning or trailing support of its own. Only this
// package's own tests use it; the propagators and cmd/gccdemo do not
// allocate through a Space.
type Arena struct {
	allocated int
}

// NewArena returns an empty arena.
func NewArena() *Arena { return &Arena{} }

// AllocInts returns a fresh zeroed slice of length n and tracks the total
// allocated so Allocated() can report usage.
func (a *Arena) AllocInts(n int) []int {
	a.allocated += n
	return make([]int, n)
}

// Allocated reports the cumulative number of ints allocated through this
// arena since construction.
func (a *Arena) Allocated() int { return a.allocated }
