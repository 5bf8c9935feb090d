package gcc

// DomPropagator is the domain-consistent (generalized arc-consistent) GCC
// filter: it maintains an incremental bipartite b-matching between
// variables and values via VarValGraph and removes domain edges that
// cannot lie on any maximum matching. That removal is complete only while
// every value is saturated by the matching: when some value has free
// capacity, VarValGraph.Prune removes nothing, so a call can then keep
// values that BndPropagator would remove. The most expensive of the three
// variants per call.
type DomPropagator struct {
	views []IntView
	cards []*Card
	graph *VarValGraph
	hall  HallEngine
}

// NewDomPropagator returns a DomPropagator over views, filtered by cards.
// The underlying VarValGraph is created once and persists across calls;
// callers that clone a search space must Clone the propagator (which
// deep-clones the graph) so branches do not share matching state.
func NewDomPropagator(views []IntView, cards []*Card) *DomPropagator {
	return &DomPropagator{views: views, cards: cards, graph: NewVarValGraph(views, cards)}
}

// Clone returns an independent DomPropagator sharing views/cards but with
// its own deep-cloned matching state.
func (p *DomPropagator) Clone() *DomPropagator {
	return &DomPropagator{views: p.views, cards: p.cards, graph: p.graph.Clone()}
}

// Propagate syncs the graph to the current domains, repairs the matching,
// runs VarValGraph.Prune (see there for which edges it removes), and tightens any isView
// Card to the [forced, possible] range those just-pruned domains now
// support, to a local fixpoint.
func (p *DomPropagator) Propagate() (ExecStatus, ModEvent, error) {
	if len(p.cards) == 0 {
		return StatusFix, EventNone, nil
	}

	total := EventNone

	for {
		p.graph.Sync()
		if err := p.graph.Repair(); err != nil {
			return StatusFailed, EventFailed, err
		}

		event, err := p.graph.Prune()
		if err != nil {
			return StatusFailed, EventFailed, err
		}

		ev, err := p.hall.PruneCards(p.views, p.cards)
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
		logSubsumed("dom")
		return StatusSubsumed, total, nil
	}
	if total == EventNone {
		return StatusFix, total, nil
	}
	return StatusNoFix, total, nil
}

func (p *DomPropagator) subsumed() bool {
	for _, v := range p.views {
		if !v.Assigned() {
			return false
		}
	}
	for j, c := range p.cards {
		count := p.graph.MatchedCount(j)
		if count < c.Min() || count > c.Max() {
			return false
		}
	}
	return true
}
