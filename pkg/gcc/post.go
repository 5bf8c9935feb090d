package gcc

import "fmt"

// CostClass reports a propagator's worst-case time class for one
// propagate() call, for a scheduler that orders ready propagators
// cheapest-first.
type CostClass int

const (
	CostLowLinear CostClass = iota
	CostDynamicLowLinear
	CostHighLinear
	CostLowQuadratic
	CostHighCubic
)

func (c CostClass) String() string {
	switch c {
	case CostLowLinear:
		return "low-linear"
	case CostDynamicLowLinear:
		return "dynamic-low-linear"
	case CostHighLinear:
		return "high-linear"
	case CostLowQuadratic:
		return "low-quadratic"
	case CostHighCubic:
		return "high-cubic"
	default:
		return "unknown"
	}
}

// validate checks the invariants Post must reject a GCC constraint for
// regardless of variant: values must be distinct, counts non-negative and
// consistent (lo <= hi), and total capacity must be able to cover every
// variable (Σlo <= n <= Σhi).
func validate(views []IntView, cards []*Card) error {
	n := len(views)
	seen := make(map[int]bool, len(cards))
	sumLo, sumHi := 0, 0
	for _, c := range cards {
		if seen[c.Value()] {
			return fmt.Errorf("%w: value %d appears more than once", ErrInvalidArgument, c.Value())
		}
		seen[c.Value()] = true
		if c.Min() < 0 || c.Max() < c.Min() {
			return fmt.Errorf("%w: value %d has lo=%d hi=%d", ErrInvalidArgument, c.Value(), c.Min(), c.Max())
		}
		sumLo += c.Min()
		sumHi += c.Max()
	}
	if sumLo > n {
		return fmt.Errorf("%w: cardinality lower bounds sum to %d, exceeding %d variables", ErrCapacityUnderflow, sumLo, n)
	}
	if sumHi < n {
		return fmt.Errorf("%w: cardinality upper bounds sum to %d, short of %d variables", ErrCapacityOverflow, sumHi, n)
	}
	return nil
}

// pruneToKnownValues removes, from every variable, any value with no
// matching Card entry — the "all" flag Post performs when the caller
// asserts cards enumerates every value any variable may take.
func pruneToKnownValues(views []IntView, cards []*Card) (ModEvent, error) {
	known := make(map[int]bool, len(cards))
	for _, c := range cards {
		known[c.Value()] = true
	}
	event := EventNone
	for _, v := range views {
		var drop []int
		v.Each(func(val int) {
			if !known[val] {
				drop = append(drop, val)
			}
		})
		for _, val := range drop {
			ev := v.Nq(val)
			if ev.Failed() {
				return EventFailed, fmt.Errorf("%w: removing unconstrained value %d left a variable's domain empty", ErrDomainEmpty, val)
			}
			event = Join(event, ev)
		}
	}
	return event, nil
}

// PostVal validates and constructs a ValPropagator. all, when true, first
// removes from every variable any value absent from cards.
func PostVal(views []IntView, cards []*Card, all bool) (*ValPropagator, error) {
	if err := validate(views, cards); err != nil {
		return nil, err
	}
	if all {
		if _, err := pruneToKnownValues(views, cards); err != nil {
			return nil, err
		}
	}
	return NewValPropagator(views, cards), nil
}

// PostBnd validates and constructs a BndPropagator, choosing the
// skip-LBC and card-fixed fast paths from the posted cardinalities.
func PostBnd(views []IntView, cards []*Card, all bool) (*BndPropagator, error) {
	if err := validate(views, cards); err != nil {
		return nil, err
	}
	if all {
		if _, err := pruneToKnownValues(views, cards); err != nil {
			return nil, err
		}
	}
	skipLbc, cardFixed := true, true
	for _, c := range cards {
		if c.Min() != 0 {
			skipLbc = false
		}
		if c.Min() != c.Max() {
			cardFixed = false
		}
	}
	return NewBndPropagator(views, cards, skipLbc, cardFixed), nil
}

// PostDom validates and constructs a DomPropagator.
func PostDom(views []IntView, cards []*Card, all bool) (*DomPropagator, error) {
	if err := validate(views, cards); err != nil {
		return nil, err
	}
	if all {
		if _, err := pruneToKnownValues(views, cards); err != nil {
			return nil, err
		}
	}
	return NewDomPropagator(views, cards), nil
}

// Cost reports ValPropagator's worst-case time class: a single linear
// scan over variables per Card, so high-linear in n*len(cards).
func (p *ValPropagator) Cost() CostClass { return CostHighLinear }

// Cost reports BndPropagator's worst-case time class as dynamic low-linear:
// dynamic because the number of passes to fixpoint depends on how many Hall
// intervals are found. Each pass of this implementation scans candidate
// intervals against every view, so it takes more than linear time in n.
func (p *BndPropagator) Cost() CostClass { return CostDynamicLowLinear }

// Cost reports DomPropagator's worst-case time class, tiered by the
// largest current domain size d among its variables: matching repair and
// SCC pruning both scale with the number of edges, which scales with d.
func (p *DomPropagator) Cost() CostClass {
	n := len(p.views)
	d := 0
	for _, v := range p.views {
		if v.Size() > d {
			d = v.Size()
		}
	}
	switch {
	case d < 6:
		return CostLowLinear
	case d < n/2:
		return CostHighLinear
	case d < n*n:
		return CostLowQuadratic
	default:
		return CostHighCubic
	}
}
