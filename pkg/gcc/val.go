package gcc

import "fmt"

// ValPropagator is the value-consistent GCC filter: the cheapest of the
// three variants. It forces variables onto a value once exactly as many
// unforced candidates remain as that value's lower bound still needs, and
// removes a value from every variable once its upper bound is reached. It
// does not reason about Hall intervals or matchings, so it can miss
// prunings Bnd and Dom would find; it runs every pass to a local fixpoint
// before returning.
type ValPropagator struct {
	views []IntView
	cards []*Card
}

// NewValPropagator returns a ValPropagator over views, filtered by cards.
func NewValPropagator(views []IntView, cards []*Card) *ValPropagator {
	return &ValPropagator{views: views, cards: cards}
}

// Propagate runs the single-pass forcing/saturation loop to a local
// fixpoint, returning the join of every mutation's ModEvent.
func (p *ValPropagator) Propagate() (ModEvent, error) {
	event := EventNone
	for {
		changed, ev, err := p.pass()
		if err != nil {
			return EventFailed, err
		}
		event = Join(event, ev)
		if !changed {
			return event, nil
		}
	}
}

func (p *ValPropagator) pass() (bool, ModEvent, error) {
	event := EventNone
	changed := false

	for _, c := range p.cards {
		c.ResetCounter()
	}
	for _, c := range p.cards {
		for _, v := range p.views {
			if v.Assigned() && v.Contains(c.Value()) {
				if err := c.IncCounter(); err != nil {
					return false, EventFailed, err
				}
			}
		}
	}

	for _, c := range p.cards {
		if c.Counter() > c.Max() {
			return false, EventFailed, fmt.Errorf("%w: value %d forced %d times, max %d", ErrCapacityOverflow, c.Value(), c.Counter(), c.Max())
		}
		if c.Counter() == c.Max() {
			for _, v := range p.views {
				if v.Assigned() {
					continue
				}
				if v.Contains(c.Value()) {
					ev := v.Nq(c.Value())
					if ev.Failed() {
						return false, EventFailed, fmt.Errorf("%w: value %d saturated, removing left variable empty", ErrDomainEmpty, c.Value())
					}
					if ev != EventNone {
						changed = true
					}
					event = Join(event, ev)
				}
			}
		}

		if c.Min() == 0 {
			continue
		}
		candidates := 0
		for _, v := range p.views {
			if !v.Assigned() && v.Contains(c.Value()) {
				candidates++
			}
		}
		remaining := c.Min() - c.Counter()
		if remaining <= 0 {
			continue
		}
		if candidates < remaining {
			return false, EventFailed, fmt.Errorf("%w: value %d needs %d more occurrences, only %d candidates remain", ErrCapacityUnderflow, c.Value(), remaining, candidates)
		}
		if candidates == remaining {
			for _, v := range p.views {
				if v.Assigned() || !v.Contains(c.Value()) {
					continue
				}
				ev := v.Eq(c.Value())
				if ev.Failed() {
					return false, EventFailed, fmt.Errorf("%w: forcing value %d onto a variable emptied its domain", ErrDomainEmpty, c.Value())
				}
				if ev != EventNone {
					changed = true
				}
				event = Join(event, ev)
			}
		}
	}

	return changed, event, nil
}
