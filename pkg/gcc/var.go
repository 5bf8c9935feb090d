package gcc

import "fmt"

// Var is a minimal, mutable IntView implementation: a single finite-domain
// variable backed by a Bitset, mutated in place. The surrounding framework
// (out of scope here) is responsible for trailing and restoring domain
// snapshots across backtracking; Var itself only guarantees that every
// mutator is monotone (narrowing) and reports the right ModEvent.
type Var struct {
	name   string
	domain Bitset
}

// NewVar creates a variable with the full domain [base+1 .. base+n].
func NewVar(base, n int, name string) *Var {
	return &Var{name: name, domain: NewBitset(base, n)}
}

// NewVarFromValues creates a variable whose domain is exactly values.
func NewVarFromValues(base, n int, values []int, name string) *Var {
	return &Var{name: name, domain: NewBitsetFromValues(base, n, values)}
}

// Name returns the variable's debug name.
func (v *Var) Name() string { return v.name }

// Domain returns the current domain (read-only snapshot).
func (v *Var) Domain() Bitset { return v.domain }

// SetDomain replaces the domain outright; used by Var's own constructors
// and by tests constructing exact scenarios. Propagators must go through
// Gq/Lq/Nq/Eq instead, so every change produces a well-formed ModEvent.
func (v *Var) SetDomain(d Bitset) { v.domain = d }

func (v *Var) Min() int         { return v.domain.Min() }
func (v *Var) Max() int         { return v.domain.Max() }
func (v *Var) Size() int        { return v.domain.Count() }
func (v *Var) Assigned() bool   { return v.domain.IsSingleton() }
func (v *Var) Contains(x int) bool { return v.domain.Has(x) }
func (v *Var) Each(f func(int))    { v.domain.IterateValues(f) }

func (v *Var) event(before Bitset) ModEvent {
	after := v.domain
	if after.IsEmpty() {
		return EventFailed
	}
	if after.Count() == before.Count() {
		return EventNone
	}
	if after.IsSingleton() {
		return EventAssigned
	}
	if after.Min() != before.Min() || after.Max() != before.Max() {
		return EventBounds
	}
	return EventDomain
}

// Gq narrows the domain to values >= x.
func (v *Var) Gq(x int) ModEvent {
	before := v.domain
	v.domain = v.domain.RemoveBelow(x)
	return v.event(before)
}

// Lq narrows the domain to values <= x.
func (v *Var) Lq(x int) ModEvent {
	before := v.domain
	v.domain = v.domain.RemoveAbove(x)
	return v.event(before)
}

// Nq removes x from the domain.
func (v *Var) Nq(x int) ModEvent {
	before := v.domain
	v.domain = v.domain.Remove(x)
	return v.event(before)
}

// Eq narrows the domain to the singleton {x}.
func (v *Var) Eq(x int) ModEvent {
	before := v.domain
	if !before.Has(x) {
		v.domain = NewEmptyBitset(before.base, before.n)
		return EventFailed
	}
	v.domain = NewBitsetFromValues(before.base, before.n, []int{x})
	return v.event(before)
}

// String renders the variable for diagnostics, e.g. "x3={1,2,3}".
func (v *Var) String() string {
	return fmt.Sprintf("%s=%s", v.name, v.domain.String())
}
