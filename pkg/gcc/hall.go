package gcc

import (
	"fmt"
	"sort"
)

// HallEngine implements the bounds-consistency filtering for Bnd: detecting
// Hall intervals over the compressed variable bounds and tightening domains
// so no interval's demand can exceed (UBC, upper-bound check, driven by hi)
// or fall short of (LBC, lower-bound check, driven by lo) its capacity.
//
// Grounded on Quimper et al.'s generalization of AllDifferent's bounds
// consistency to GCC. This implementation detects Hall intervals by
// scanning candidate interval endpoints drawn from the variables' own
// bounds and answering demand/capacity queries in O(1) via PartialSum,
// rather than the union-find "critical capacity tree" the original paper
// uses for an asymptotically tighter sweep; the internal step order, and
// by extension the concrete sweep technique, only needs to produce the
// same fixpoint, not follow the same asymptotics — see DESIGN.md for the
// tradeoff.
type HallEngine struct{}

// Ubc raises variable minimums past any Hall interval saturated from below
// by the upper (hi) cardinality bounds, in ascending-max sweep order.
// Returns the join of every mutator's ModEvent and an error if a value's
// hi bound is provably unreachable.
func (HallEngine) Ubc(views []IntView, ups *PartialSum, bounds *Bounds) (ModEvent, error) {
	n := len(views)
	event := EventNone

	// Process candidate right endpoints b in ascending order (mu order),
	// accumulating the set T of variables with Max() <= b-1 and tracking
	// their Min() values (sorted) so "how many of T have min >= a" is a
	// binary search away.
	minsInWindow := make([]int, 0, n)
	tIdx := 0
	for _, vi := range bounds.Mu {
		b := views[vi].Max() + 1
		// Add every variable whose Max()+1 == b (there may be ties).
		for tIdx < n && views[bounds.Mu[tIdx]].Max()+1 <= b {
			m := views[bounds.Mu[tIdx]].Min()
			pos := sort.SearchInts(minsInWindow, m)
			minsInWindow = append(minsInWindow, 0)
			copy(minsInWindow[pos+1:], minsInWindow[pos:])
			minsInWindow[pos] = m
			tIdx++
		}

		// Candidate left endpoints a: every distinct min in T that is <= b-1.
		for _, a := range distinctAsc(minsInWindow) {
			if a > b-1 {
				continue
			}
			demand := len(minsInWindow) - sort.SearchInts(minsInWindow, a)
			capacity := ups.Sum(a, b-1)
			if demand > capacity {
				return EventFailed, fmt.Errorf("%w: interval [%d,%d] demands %d, capacity %d", ErrCapacityOverflow, a, b-1, demand, capacity)
			}
			if demand == capacity && demand > 0 {
				logHallPrune("ubc", a, b-1, demand, capacity)
				skip := ups.SkipNonNullElementsRight(b)
				for _, v := range views {
					if v.Min() >= a && v.Min() <= b-1 && v.Max() > b-1 && v.Min() < skip {
						ev := v.Gq(skip)
						if ev.Failed() {
							return EventFailed, fmt.Errorf("%w: raising min past Hall interval [%d,%d]", ErrDomainEmpty, a, b-1)
						}
						event = Join(event, ev)
					}
				}
			}
		}
	}
	return event, nil
}

// Lbc lowers variable maximums past any Hall interval saturated from above
// by the lower (lo) cardinality bounds, in descending-min sweep order.
// Callers should skip Lbc entirely when every Card's lo is zero (skip_lbc).
func (HallEngine) Lbc(views []IntView, lps *PartialSum, bounds *Bounds) (ModEvent, error) {
	n := len(views)
	event := EventNone

	activeMins := make([]int, 0, n) // maxes of variables currently in T, kept sorted
	tIdx := n - 1
	for k := n - 1; k >= 0; k-- {
		vi := bounds.Nu[k]
		a := views[vi].Min()
		for tIdx >= 0 && views[bounds.Nu[tIdx]].Min() >= a {
			mx := views[bounds.Nu[tIdx]].Max()
			pos := sort.SearchInts(activeMins, mx)
			activeMins = append(activeMins, 0)
			copy(activeMins[pos+1:], activeMins[pos:])
			activeMins[pos] = mx
			tIdx--
		}

		for _, b := range distinctAsc(activeMins) {
			if b < a {
				continue
			}
			demandLo := lps.Sum(a, b)
			count := 0
			for _, v := range views {
				if v.Min() <= b && v.Max() >= a {
					count++
				}
			}
			if count < demandLo {
				return EventFailed, fmt.Errorf("%w: interval [%d,%d] requires %d occurrences, only %d variables reach it", ErrCapacityUnderflow, a, b, demandLo, count)
			}
			if count == demandLo && demandLo > 0 {
				logHallPrune("lbc", a, b, demandLo, count)
				for _, v := range views {
					if v.Min() <= b && v.Min() >= a && v.Max() > b {
						ev := v.Lq(b)
						if ev.Failed() {
							return EventFailed, fmt.Errorf("%w: lowering max past Hall interval [%d,%d]", ErrDomainEmpty, a, b)
						}
						event = Join(event, ev)
					}
				}
			}
		}
	}
	return event, nil
}

// PruneCards recomputes, for every Card, how many variables are forced to
// and how many can still reach its value, tightening the Card's own bounds
// to [forced, possible] (fixed, non-view cards are left unchanged and are
// not checked against that range) and removing values whose upper
// bound has hit zero from every variable. Used both before and after the
// Ubc/Lbc sweep.
func (HallEngine) PruneCards(views []IntView, cards []*Card) (ModEvent, error) {
	event := EventNone
	for _, c := range cards {
		forced, possible := 0, 0
		for _, v := range views {
			if !v.Contains(c.value) {
				continue
			}
			possible++
			if v.Assigned() {
				forced++
			}
		}
		if c.IsView() {
			ev, err := c.TightenMin(forced)
			if err != nil {
				return EventFailed, err
			}
			event = Join(event, ev)
			ev, err = c.TightenMax(possible)
			if err != nil {
				return EventFailed, err
			}
			event = Join(event, ev)
		}
		if c.Max() == 0 {
			for _, v := range views {
				if v.Contains(c.value) {
					ev := v.Nq(c.value)
					if ev.Failed() {
						return EventFailed, fmt.Errorf("%w: value %d removed from all views", ErrDomainEmpty, c.value)
					}
					event = Join(event, ev)
				}
			}
		}
	}
	return event, nil
}

// distinctAsc returns the distinct values of a sorted slice, in ascending order.
func distinctAsc(sorted []int) []int {
	out := sorted[:0:0]
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			out = append(out, v)
		}
	}
	return out
}
