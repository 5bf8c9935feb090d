package gcc

// BndPropagator is the bounds-consistent GCC filter: it detects Hall
// intervals over the variables' current min/max and tightens bounds past
// them, without reasoning about individual domain holes. Strictly
// stronger than ValPropagator. It can remove values DomPropagator keeps,
// since DomPropagator prunes nothing through its matching while some
// value has free capacity.
type BndPropagator struct {
	views   []IntView
	cards   []*Card
	hall    HallEngine
	skipLbc bool
	cardFix bool
	sums    partialSumCache
}

// NewBndPropagator returns a BndPropagator over views, filtered by cards.
// skipLbc should be true when every Card's Min is zero (the lower-bound
// sweep cannot prune anything); cardFixed should be true when every
// Card's Min equals its Max, in which case the lower-bound sweep is
// redundant with the upper-bound one and is skipped outright.
func NewBndPropagator(views []IntView, cards []*Card, skipLbc, cardFixed bool) *BndPropagator {
	return &BndPropagator{views: views, cards: cards, skipLbc: skipLbc, cardFix: cardFixed}
}

// Propagate runs one pruneCards -> build partial sums -> UBC -> LBC ->
// pruneCards cycle, repeating until a cycle changes nothing. Returns
// StatusSubsumed once every variable is assigned and each Card's value
// occurs among them a number of times within the Card's bounds,
// StatusFix when the call changed nothing, and StatusNoFix when it
// changed some view or Card.
func (p *BndPropagator) Propagate() (ExecStatus, ModEvent, error) {
	if len(p.cards) == 0 {
		return StatusFix, EventNone, nil
	}

	total := EventNone

	for {
		event := EventNone

		ev, err := p.hall.PruneCards(p.views, p.cards)
		if err != nil {
			return StatusFailed, EventFailed, err
		}
		event = Join(event, ev)

		lps, ups, hit := p.sums.get(p.cards)
		if !hit {
			lps, ups = p.buildPartialSums()
			p.sums.set(p.cards, lps, ups)
		}
		bounds := BuildBounds(p.views)

		ev, err = p.hall.Ubc(p.views, ups, bounds)
		if err != nil {
			return StatusFailed, EventFailed, err
		}
		event = Join(event, ev)

		if !p.skipLbc && !p.cardFix {
			ev, err = p.hall.Lbc(p.views, lps, bounds)
			if err != nil {
				return StatusFailed, EventFailed, err
			}
			event = Join(event, ev)
		}

		ev, err = p.hall.PruneCards(p.views, p.cards)
		if err != nil {
			return StatusFailed, EventFailed, err
		}
		event = Join(event, ev)

		total = Join(total, event)
		if event == EventNone {
			break
		}
	}

	if p.subsumed() {
		logSubsumed("bnd")
		return StatusSubsumed, total, nil
	}
	if total == EventNone {
		return StatusFix, total, nil
	}
	return StatusNoFix, total, nil
}

func (p *BndPropagator) buildPartialSums() (lps, ups *PartialSum) {
	n := len(p.cards)
	values := make([]int, n)
	los := make([]int, n)
	his := make([]int, n)
	minVal, maxVal := 0, -1
	for i, c := range p.cards {
		values[i] = c.Value()
		los[i] = c.Min()
		his[i] = c.Max()
		if i == 0 || c.Value() < minVal {
			minVal = c.Value()
		}
		if i == 0 || c.Value() > maxVal {
			maxVal = c.Value()
		}
	}
	if n == 0 {
		minVal, maxVal = 0, 0
	}
	return BuildPartialSum(minVal, maxVal, values, los), BuildPartialSum(minVal, maxVal, values, his)
}

func (p *BndPropagator) subsumed() bool {
	for _, v := range p.views {
		if !v.Assigned() {
			return false
		}
	}
	counts := make(map[int]int, len(p.cards))
	for _, v := range p.views {
		counts[v.Min()]++
	}
	for _, c := range p.cards {
		n := counts[c.Value()]
		if n < c.Min() || n > c.Max() {
			return false
		}
	}
	return true
}
