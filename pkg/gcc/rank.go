package gcc

import "sort"

// Rank records, for one variable, its min/max bound positions in the
// compressed bounds vector Bounds.B.
type Rank struct {
	MinIdx int
	MaxIdx int
}

// Bounds is the per-propagation scratch HallEngine needs: the permutations
// mu/nu (variables sorted by ascending max and ascending min respectively)
// and a compressed vector of the critical bound positions (each
// variable's min, and one past its max) with each variable's Rank in it.
// HallEngine's sweeps read only Mu and Nu; they query PartialSum by value
// directly, not through B or Rank.
//
// Grounded on the same sort.Slice-over-an-index-permutation technique a
// maximum-matching augmenting-path search uses to fix an iteration order
// before sweeping; here the same technique produces two orderings instead
// of one.
type Bounds struct {
	B    []int  // sorted, deduplicated critical bound positions
	Rank []Rank // len(views)
	Mu   []int  // permutation of [0,n) by ascending Max
	Nu   []int  // permutation of [0,n) by ascending Min
}

// BuildBounds computes the compressed-bounds scratch for one propagation
// call over views. Re-run at the start of every HallEngine pass since
// bounds may have moved since the previous call.
func BuildBounds(views []IntView) *Bounds {
	n := len(views)

	mu := make([]int, n)
	nu := make([]int, n)
	for i := range mu {
		mu[i] = i
		nu[i] = i
	}
	sort.Slice(mu, func(i, j int) bool { return views[mu[i]].Max() < views[mu[j]].Max() })
	sort.Slice(nu, func(i, j int) bool { return views[nu[i]].Min() < views[nu[j]].Min() })

	pts := make([]int, 0, 2*n)
	for _, v := range views {
		pts = append(pts, v.Min(), v.Max()+1)
	}
	sort.Ints(pts)
	b := pts[:0:0]
	for i, p := range pts {
		if i == 0 || p != pts[i-1] {
			b = append(b, p)
		}
	}

	ranks := make([]Rank, n)
	for i, v := range views {
		ranks[i].MinIdx = lowerBound(b, v.Min())
		ranks[i].MaxIdx = lowerBound(b, v.Max()+1)
	}

	return &Bounds{B: b, Rank: ranks, Mu: mu, Nu: nu}
}

// lowerBound returns the index of x in the sorted, deduplicated slice b.
// x is always present by construction (BuildBounds seeds b from the exact
// values it later looks up).
func lowerBound(b []int, x int) int {
	return sort.SearchInts(b, x)
}
