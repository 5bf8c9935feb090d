package gcc

import "testing"

// Three variables over {1,2,3}, each value capped to exactly one
// occurrence: the AllDifferent embedding. Every edge should survive
// arc-consistency since any permutation is a valid complete matching.
func TestVarValGraphAllDifferentNoPrune(t *testing.T) {
	views := makeViewsFromValues([][]int{{1, 2, 3}, {1, 2, 3}, {1, 2, 3}})
	cards := []*Card{cardPtr(NewCard(1, 1, 1)), cardPtr(NewCard(2, 1, 1)), cardPtr(NewCard(3, 1, 1))}

	g := NewVarValGraph(views, cards)
	if err := g.Repair(); err != nil {
		t.Fatalf("Repair error = %v", err)
	}
	ev, err := g.Prune()
	if err != nil {
		t.Fatalf("Prune error = %v", err)
	}
	if ev.Any() {
		t.Fatalf("Prune removed an edge from a fully-symmetric AllDifferent embedding: %v", ev)
	}
	for i, v := range views {
		if v.Size() != 3 {
			t.Fatalf("views[%d].Size() = %d, want 3 (no pruning expected)", i, v.Size())
		}
	}
}

// Scenario 2 from the end-to-end table: x = [{1,2},{1,2},{1,2,3}], each of
// 1,2,3 capped to exactly one occurrence. Values 1 and 2 can only be
// covered by the first two variables, so the third is forced to 3.
func TestVarValGraphForcesRemainingValue(t *testing.T) {
	views := makeViewsFromValues([][]int{{1, 2}, {1, 2}, {1, 2, 3}})
	cards := []*Card{cardPtr(NewCard(1, 1, 1)), cardPtr(NewCard(2, 1, 1)), cardPtr(NewCard(3, 1, 1))}

	g := NewVarValGraph(views, cards)
	if err := g.Repair(); err != nil {
		t.Fatalf("Repair error = %v", err)
	}
	if _, err := g.Prune(); err != nil {
		t.Fatalf("Prune error = %v", err)
	}
	if views[2].Size() != 1 || !views[2].Contains(3) {
		t.Fatalf("views[2] = %v, want singleton {3}", views[2].(*Var).Domain())
	}
}

// Scenario 4: two variables over {1,2}, value 1 needs 0..1 and value 2
// needs 0..1: only 2 units of capacity exist for 2 variables that must
// each take a value, which is fine (exactly saturating); but if both
// values are capped to hi=1 and both variables can only reach 1 and 2 via
// their full domain, a feasible matching still exists. Flip to an actual
// overflow: three variables, two values each capped to 1, violates
// feasibility.
func TestVarValGraphRepairFailsOnOverflow(t *testing.T) {
	views := makeViewsFromValues([][]int{{1, 2}, {1, 2}, {1, 2}})
	cards := []*Card{cardPtr(NewCard(1, 0, 1)), cardPtr(NewCard(2, 0, 1))}

	g := NewVarValGraph(views, cards)
	if err := g.Repair(); err == nil {
		t.Fatalf("Repair() succeeded despite 3 variables and only 2 units of capacity")
	}
}

func TestVarValGraphRepairSatisfiesLowerBound(t *testing.T) {
	views := makeViewsFromValues([][]int{{1, 3}, {1, 3}, {1, 2, 3}})
	cards := []*Card{cardPtr(NewCard(1, 2, 2)), cardPtr(NewCard(2, 0, 1)), cardPtr(NewCard(3, 1, 1))}

	g := NewVarValGraph(views, cards)
	if err := g.Repair(); err != nil {
		t.Fatalf("Repair error = %v", err)
	}
	if g.MatchedCount(0) != 2 {
		t.Fatalf("MatchedCount(value 1) = %d, want 2", g.MatchedCount(0))
	}
}

func TestVarValGraphSyncUnmatchesShrunkEdge(t *testing.T) {
	views := makeViewsFromValues([][]int{{1, 2}, {1, 2}})
	cards := []*Card{cardPtr(NewCard(1, 0, 2)), cardPtr(NewCard(2, 0, 2))}

	g := NewVarValGraph(views, cards)
	if err := g.Repair(); err != nil {
		t.Fatalf("Repair error = %v", err)
	}
	matchedValue := g.MatchedValue(0)
	if matchedValue < 0 {
		t.Fatalf("views[0] was not matched")
	}

	views[0].Nq(matchedValue)
	g.Sync()
	if g.MatchedValue(0) != -1 {
		t.Fatalf("Sync() did not unmatch views[0] after its matched value left the domain")
	}
	if err := g.Repair(); err != nil {
		t.Fatalf("Repair after Sync error = %v", err)
	}
}

func TestVarValGraphClone(t *testing.T) {
	views := makeViewsFromValues([][]int{{1, 2}, {1, 2}})
	cards := []*Card{cardPtr(NewCard(1, 0, 2)), cardPtr(NewCard(2, 0, 2))}

	g := NewVarValGraph(views, cards)
	if err := g.Repair(); err != nil {
		t.Fatalf("Repair error = %v", err)
	}
	clone := g.Clone()
	clone.unmatch(0, cardIndexOf(cards, g.MatchedValue(0)))
	if g.MatchedValue(0) == -1 {
		t.Fatalf("mutating the clone affected the original graph's matching")
	}
}

func cardIndexOf(cards []*Card, value int) int {
	for i, c := range cards {
		if c.Value() == value {
			return i
		}
	}
	return -1
}
