package gcc

import "fmt"

// Card is an occurrence specification: a value paired with a required
// count range [lo, hi] and a counter used by the propagators to track how
// many variables are currently forced to it. When backed by a variable
// (isView), lo/hi mirror that variable's bounds and tightening a bound
// here also tightens the backing view; otherwise lo and hi are fixed at
// construction (lo == hi for an exact count).
//
// Post (post.go) checks 0 <= lo <= hi at construction time; it does not
// check hi <= n. Every tightening operation re-checks lo <= hi, failing
// with ErrCardInfeasible if violated.
type Card struct {
	value   int
	lo, hi  int
	counter int
	view    IntView // non-nil iff isView
}

// NewCard returns a fixed cardinality entry: value must occur exactly
// between lo and hi times (lo == hi for an exact count).
func NewCard(value, lo, hi int) Card {
	return Card{value: value, lo: lo, hi: hi}
}

// NewCardView returns a cardinality entry whose bounds are mirrored from
// an underlying integer variable, so Bnd/Dom propagation can tighten the
// cardinality's own domain as candidates for its value are eliminated.
func NewCardView(value int, view IntView) Card {
	return Card{value: value, lo: view.Min(), hi: view.Max(), view: view}
}

// Value returns the value this entry constrains.
func (c *Card) Value() int { return c.value }

// Min returns the current lower occurrence bound.
func (c *Card) Min() int { return c.lo }

// Max returns the current upper occurrence bound.
func (c *Card) Max() int { return c.hi }

// Counter returns the number of variables currently forced to Value().
func (c *Card) Counter() int { return c.counter }

// IsView reports whether this entry's bounds are backed by a variable.
func (c *Card) IsView() bool { return c.view != nil }

// ResetCounter zeroes the occurrence counter; called at the start of each
// propagation pass before recounting forced variables.
func (c *Card) ResetCounter() { c.counter = 0 }

// IncCounter records one more variable forced to Value(), failing with
// ErrCapacityOverflow if that exceeds the upper bound.
func (c *Card) IncCounter() error {
	c.counter++
	if c.counter > c.hi {
		return fmt.Errorf("%w: value %d forced %d times, max %d", ErrCapacityOverflow, c.value, c.counter, c.hi)
	}
	return nil
}

// Refresh re-reads lo/hi from the backing view (a no-op for fixed
// cardinalities) and reports whether either bound moved, so callers know
// whether dependent structures (PartialSum) need rebuilding.
func (c *Card) Refresh() bool {
	if c.view == nil {
		return false
	}
	lo, hi := c.view.Min(), c.view.Max()
	changed := lo != c.lo || hi != c.hi
	c.lo, c.hi = lo, hi
	return changed
}

// TightenMin raises the lower bound to at least newLo, propagating into
// the backing view when isView. Returns the resulting ModEvent (EventNone
// if newLo <= current lo).
func (c *Card) TightenMin(newLo int) (ModEvent, error) {
	if newLo <= c.lo {
		return EventNone, nil
	}
	if c.view != nil {
		ev := c.view.Gq(newLo)
		if ev.Failed() {
			return ev, fmt.Errorf("%w: value %d", ErrCardInfeasible, c.value)
		}
		c.lo = c.view.Min()
		return ev, nil
	}
	c.lo = newLo
	if c.lo > c.hi {
		return EventFailed, fmt.Errorf("%w: value %d lo=%d hi=%d", ErrCardInfeasible, c.value, c.lo, c.hi)
	}
	return EventBounds, nil
}

// TightenMax lowers the upper bound to at most newHi, propagating into
// the backing view when isView. Returns the resulting ModEvent (EventNone
// if newHi >= current hi).
func (c *Card) TightenMax(newHi int) (ModEvent, error) {
	if newHi >= c.hi {
		return EventNone, nil
	}
	if c.view != nil {
		ev := c.view.Lq(newHi)
		if ev.Failed() {
			return ev, fmt.Errorf("%w: value %d", ErrCardInfeasible, c.value)
		}
		c.hi = c.view.Max()
		return ev, nil
	}
	c.hi = newHi
	if c.lo > c.hi {
		return EventFailed, fmt.Errorf("%w: value %d lo=%d hi=%d", ErrCardInfeasible, c.value, c.lo, c.hi)
	}
	return EventBounds, nil
}

// Feasible reports whether lo <= hi still holds.
func (c *Card) Feasible() bool { return c.lo <= c.hi }

// String renders the entry for diagnostics, e.g. "3:1..2(#1)".
func (c *Card) String() string {
	return fmt.Sprintf("%d:%d..%d(#%d)", c.value, c.lo, c.hi, c.counter)
}
