package gcc

// IntView is the contract this package's propagators consume from the
// surrounding constraint framework. A view exposes the current
// bounds/domain of one integer decision variable and a set of mutators that
// narrow it, each returning a ModEvent describing what changed.
//
// Implementations are expected to be in-place mutators: the surrounding
// engine (not this package) is responsible for trailing changes so they can
// be undone on backtracking, and for cloning view state when the search
// space is cloned. Var, in var.go, is a minimal reference implementation
// used by this package's own tests and by cmd/gccdemo.
type IntView interface {
	// Min returns the smallest value currently in the domain.
	Min() int
	// Max returns the largest value currently in the domain.
	Max() int
	// Size returns the number of values currently in the domain.
	Size() int
	// Assigned reports whether the domain is a singleton.
	Assigned() bool
	// Contains reports whether v is currently in the domain.
	Contains(v int) bool
	// Each calls f with every value currently in the domain, ascending.
	Each(f func(v int))

	// Gq narrows the domain to values >= v.
	Gq(v int) ModEvent
	// Lq narrows the domain to values <= v.
	Lq(v int) ModEvent
	// Nq removes v from the domain.
	Nq(v int) ModEvent
	// Eq narrows the domain to the singleton {v}.
	Eq(v int) ModEvent
}

// Space is the minimal contract of the surrounding search-space
// abstraction: an arena allocator for scratch of size n, and nothing else
// — scheduling, cloning, and propagator bookkeeping are the engine's
// concern, not the core's. The propagators in this package do not take a
// Space; Arena (space.go) implements it.
//
// AllocInts must return a slice of length n whose backing storage the
// caller owns until the Space itself is cloned or disposed.
type Space interface {
	AllocInts(n int) []int
}
