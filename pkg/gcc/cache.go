package gcc

import "github.com/mitchellh/hashstructure"

// cardSnapshot is the hashable projection of a Card's mutable state;
// hashing this instead of the Card pointer lets partialSumCache.get detect
// whether any bound actually moved since the last check.
type cardSnapshot struct {
	Value, Lo, Hi int
}

// partialSumCache memoizes the lps/ups pair BndPropagator rebuilds every
// pass, skipping the rebuild when no Card's bounds moved since the last
// call. Hashing the snapshot is cheaper than rebuilding two PartialSum
// structures whenever a propagation pass made no cardinality progress.
type partialSumCache struct {
	hash     uint64
	lps, ups *PartialSum
}

func snapshotCards(cards []*Card) []cardSnapshot {
	snaps := make([]cardSnapshot, len(cards))
	for i, c := range cards {
		snaps[i] = cardSnapshot{Value: c.Value(), Lo: c.Min(), Hi: c.Max()}
	}
	return snaps
}

// hashCards returns a content hash of cards' current bounds. If
// hashstructure reports an error (it does so only for unhashable types,
// which cardSnapshot, plain ints, never is), hashCards returns 0.
func hashCards(cards []*Card) uint64 {
	h, err := hashstructure.Hash(snapshotCards(cards), nil)
	if err != nil {
		return 0
	}
	return h
}

// get returns the cached partial sums if cards' bounds match the hash
// recorded at the last set, and whether the cache hit.
func (c *partialSumCache) get(cards []*Card) (lps, ups *PartialSum, hit bool) {
	if c.lps == nil || c.ups == nil {
		return nil, nil, false
	}
	if hashCards(cards) != c.hash {
		return nil, nil, false
	}
	return c.lps, c.ups, true
}

func (c *partialSumCache) set(cards []*Card, lps, ups *PartialSum) {
	c.hash = hashCards(cards)
	c.lps, c.ups = lps, ups
}
