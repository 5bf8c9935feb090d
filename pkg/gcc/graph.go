package gcc

import "fmt"

// VarValGraph is the bipartite (X, V, E) graph DomPropagator maintains
// between variable nodes and value nodes, together with a persistent
// b-matching: each variable is matched to exactly one value, and each
// value may hold between its Card's lo and hi matched variables.
//
// Unlike a 1-1 matching (as AllDifferent needs), a value node here is a
// node with capacity: MatchedCount below returns how many variables currently
// hold it, and a value stays available for new matches so long as that
// count is under its Card's Max(). The matching and node numbering persist
// across propagation calls; Sync removes edges for values that left a
// domain and leaves only the affected endpoints needing repair, rather
// than rebuilding the graph from scratch.
//
// Node numbering: variable i is node i (0 <= i < n); the value of cards[j]
// is node n+j. Grounded on propagation.go's AllDifferent (maxMatching,
// augment, buildValueGraph, computeSCCs), generalized from single-slot
// matching to per-value [lo,hi] capacity.
type VarValGraph struct {
	views []IntView
	cards []*Card

	valIndex map[int]int // card value -> index into cards/matchedAt

	matchVar  []int   // matchVar[i] = card index variable i is matched to, or -1
	matchedAt [][]int // matchedAt[j] = variable indices currently matched to cards[j]
}

// NewVarValGraph builds a graph over views and cards with no matching yet;
// call Repair before relying on it for pruning.
func NewVarValGraph(views []IntView, cards []*Card) *VarValGraph {
	g := &VarValGraph{
		views:     views,
		cards:     cards,
		valIndex:  make(map[int]int, len(cards)),
		matchVar:  make([]int, len(views)),
		matchedAt: make([][]int, len(cards)),
	}
	for i := range g.matchVar {
		g.matchVar[i] = -1
	}
	for j, c := range cards {
		g.valIndex[c.Value()] = j
	}
	return g
}

// Clone returns a deep copy suitable for an independently mutable search
// branch; views and cards are shared (the caller owns their lifetime) but
// all matching state is copied.
func (g *VarValGraph) Clone() *VarValGraph {
	ng := &VarValGraph{
		views:     g.views,
		cards:     g.cards,
		valIndex:  g.valIndex,
		matchVar:  append([]int(nil), g.matchVar...),
		matchedAt: make([][]int, len(g.matchedAt)),
	}
	for j, vs := range g.matchedAt {
		ng.matchedAt[j] = append([]int(nil), vs...)
	}
	return ng
}

// Sync removes any matched edge whose value left the matched variable's
// domain, leaving both endpoints unmatched so Repair can re-augment them.
// Call before Repair on every propagation entry.
func (g *VarValGraph) Sync() {
	for i, j := range g.matchVar {
		if j < 0 {
			continue
		}
		if !g.views[i].Contains(g.cards[j].Value()) {
			g.unmatch(i, j)
		}
	}
}

func (g *VarValGraph) unmatch(i, j int) {
	g.matchVar[i] = -1
	vs := g.matchedAt[j]
	for k, vi := range vs {
		if vi == i {
			g.matchedAt[j] = append(vs[:k], vs[k+1:]...)
			break
		}
	}
}

func (g *VarValGraph) match(i, j int) {
	if old := g.matchVar[i]; old >= 0 {
		g.unmatch(i, old)
	}
	g.matchVar[i] = j
	g.matchedAt[j] = append(g.matchedAt[j], i)
	logMatchRepair(i, g.cards[j].Value())
}

// Repair restores a maximum b-matching respecting every Card's [lo,hi]:
// first saturates every variable without exceeding any Card's Max (the
// maximum_matching step), then, for any Card still short of its Min,
// searches for augmenting chains that move a variable onto it without
// dropping another Card below its own Min (maximum_matching_cards).
// Returns ErrNoCompleteMatching if either phase cannot fully succeed.
func (g *VarValGraph) Repair() error {
	for i, j := range g.matchVar {
		if j >= 0 {
			continue
		}
		visitedVar := make([]bool, len(g.views))
		visitedVal := make([]bool, len(g.cards))
		if !g.augmentVar(i, visitedVar, visitedVal) {
			return fmt.Errorf("%w: variable %d has no reachable value with free capacity", ErrNoCompleteMatching, i)
		}
	}
	for j, c := range g.cards {
		for len(g.matchedAt[j]) < c.Min() {
			visitedVar := make([]bool, len(g.views))
			visitedVal := make([]bool, len(g.cards))
			visitedVal[j] = true
			if !g.augmentValLo(j, visitedVar, visitedVal) {
				return fmt.Errorf("%w: value %d cannot reach its lower occurrence bound %d", ErrNoCompleteMatching, c.Value(), c.Min())
			}
		}
	}
	return nil
}

// augmentVar tries to give variable i a matched value, using an augmenting
// search that may bump a variable already holding a saturated value onto
// a different one.
func (g *VarValGraph) augmentVar(i int, visitedVar, visitedVal []bool) bool {
	if visitedVar[i] {
		return false
	}
	visitedVar[i] = true
	found := false
	g.views[i].Each(func(val int) {
		if found {
			return
		}
		j, ok := g.valIndex[val]
		if !ok || visitedVal[j] {
			return
		}
		visitedVal[j] = true
		if len(g.matchedAt[j]) < g.cards[j].Max() {
			g.match(i, j)
			found = true
			return
		}
		for _, holder := range g.matchedAt[j] {
			if g.augmentVar(holder, visitedVar, visitedVal) {
				g.match(i, j)
				found = true
				return
			}
		}
	})
	return found
}

// augmentValLo tries to raise value j's matched count by one without
// dropping any other value below its own Min, by either claiming an
// unmatched candidate variable or displacing one from a value with slack
// above its Min (recursively finding that value a replacement first).
func (g *VarValGraph) augmentValLo(j int, visitedVar, visitedVal []bool) bool {
	found := false
	for i, v := range g.views {
		if found || visitedVar[i] || !v.Contains(g.cards[j].Value()) {
			continue
		}
		visitedVar[i] = true
		cur := g.matchVar[i]
		switch {
		case cur < 0:
			g.match(i, j)
			found = true
		case len(g.matchedAt[cur])-1 >= g.cards[cur].Min():
			g.match(i, j)
			found = true
		default:
			if visitedVal[cur] {
				continue
			}
			visitedVal[cur] = true
			if g.replaceAt(cur, i, visitedVar, visitedVal) {
				g.match(i, j)
				found = true
			}
		}
	}
	return found
}

// replaceAt looks for a variable other than exclude that can take over
// one of cur's matched slots, so exclude is free to move elsewhere
// without cur dropping below its Min.
func (g *VarValGraph) replaceAt(cur, exclude int, visitedVar, visitedVal []bool) bool {
	found := false
	for i, v := range g.views {
		if found || i == exclude || visitedVar[i] || !v.Contains(g.cards[cur].Value()) {
			continue
		}
		visitedVar[i] = true
		if g.matchVar[i] < 0 {
			g.match(i, cur)
			found = true
			continue
		}
		// i may leave its own value w for cur if w keeps its Min without
		// it, or if another variable can first take over one of w's slots.
		w := g.matchVar[i]
		if w == cur {
			continue
		}
		if len(g.matchedAt[w])-1 < g.cards[w].Min() {
			if visitedVal[w] {
				continue
			}
			visitedVal[w] = true
			if !g.replaceAt(w, i, visitedVar, visitedVal) {
				continue
			}
		}
		g.match(i, cur)
		found = true
	}
	return found
}

// sccNode maps a variable or value index to a single node space: variables
// occupy [0,n), values occupy [n,n+m).
func (g *VarValGraph) varNode(i int) int { return i }
func (g *VarValGraph) valNode(j int) int { return len(g.views) + j }

// adjacency builds the directed alternating graph Tarjan's algorithm runs
// on: a matched (variable,value) pair is oriented value->variable, and
// every other domain edge is oriented variable->value.
func (g *VarValGraph) adjacency() [][]int {
	n, m := len(g.views), len(g.cards)
	adj := make([][]int, n+m)
	for i, v := range g.views {
		matched := g.matchVar[i]
		v.Each(func(val int) {
			j, ok := g.valIndex[val]
			if !ok {
				return
			}
			if j == matched {
				adj[g.valNode(j)] = append(adj[g.valNode(j)], g.varNode(i))
			} else {
				adj[g.varNode(i)] = append(adj[g.varNode(i)], g.valNode(j))
			}
		})
	}
	return adj
}

// sccs runs Tarjan's algorithm over adjacency, returning a component id
// per node. Grounded directly on propagation.go's computeSCCs.
func sccs(adj [][]int) []int {
	size := len(adj)
	comp := make([]int, size)
	for i := range comp {
		comp[i] = -1
	}
	indices := make([]int, size)
	lowlink := make([]int, size)
	for i := range indices {
		indices[i] = -1
	}
	onStack := make([]bool, size)
	stack := make([]int, 0, size)
	index := 0
	count := 0

	var strongconnect func(int)
	strongconnect = func(v int) {
		indices[v] = index
		lowlink[v] = index
		index++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range adj[v] {
			if indices[w] == -1 {
				strongconnect(w)
				if lowlink[w] < lowlink[v] {
					lowlink[v] = lowlink[w]
				}
			} else if onStack[w] && indices[w] < lowlink[v] {
				lowlink[v] = indices[w]
			}
		}

		if lowlink[v] == indices[v] {
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				comp[w] = count
				if w == v {
					break
				}
			}
			count++
		}
	}
	for v := range adj {
		if indices[v] == -1 {
			strongconnect(v)
		}
	}
	return comp
}

// Prune removes domain edges that cannot lie on any maximum b-matching,
// after Repair has found one. A variable's current match always survives.
// When no value has free capacity (every Card's matched count equals its
// Max), an edge survives only if its variable and value share a strongly
// connected component, and every other edge is removed. When at least one
// value has free capacity, no edge is removed: an edge is dropped only if
// its variable is reachable from a free value and its value is not, and
// every unmatched edge carries reachability from its variable to its
// value, so that never happens. In that case the pruning is sound but not
// complete.
func (g *VarValGraph) Prune() (ModEvent, error) {
	adj := g.adjacency()
	comp := sccs(adj)

	free := make([]int, 0)
	for j, c := range g.cards {
		if len(g.matchedAt[j]) < c.Max() {
			free = append(free, g.valNode(j))
		}
	}
	var reachable []bool
	if len(free) > 0 {
		reachable = make([]bool, len(adj))
		stack := append([]int(nil), free...)
		for _, f := range free {
			reachable[f] = true
		}
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, w := range adj[v] {
				if !reachable[w] {
					reachable[w] = true
					stack = append(stack, w)
				}
			}
		}
	}

	event := EventNone
	for i, v := range g.views {
		matched := g.matchVar[i]
		var toRemove []int
		v.Each(func(val int) {
			j, ok := g.valIndex[val]
			if !ok || j == matched {
				return
			}
			keep := false
			if len(free) > 0 {
				keep = !(reachable[g.varNode(i)] && !reachable[g.valNode(j)])
			} else {
				keep = comp[g.varNode(i)] == comp[g.valNode(j)]
			}
			if !keep {
				toRemove = append(toRemove, val)
			}
		})
		for _, val := range toRemove {
			ev := v.Nq(val)
			if ev.Failed() {
				return EventFailed, fmt.Errorf("%w: value %d removed from variable %d left its domain empty", ErrDomainEmpty, val, i)
			}
			event = Join(event, ev)
		}
	}
	return event, nil
}

// MatchedValue reports the value variable i currently holds in the
// b-matching, or -1 if Repair has not yet matched it.
func (g *VarValGraph) MatchedValue(i int) int {
	j := g.matchVar[i]
	if j < 0 {
		return -1
	}
	return g.cards[j].Value()
}

// MatchedCount reports how many variables are currently matched to the
// value at cards[j].
func (g *VarValGraph) MatchedCount(j int) int { return len(g.matchedAt[j]) }
