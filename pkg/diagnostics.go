package evaluation

import (
	"slices"

	"golang.org/x/exp/maps"
)

type BcoCount struct {
	Bco   uint64
	Count uint64
}

// BcoHistogram counts waveforms per lvl1 BCO over a whole run.
type BcoHistogram struct {
	counts map[uint64]uint64
}

func NewBcoHistogram() *BcoHistogram {
	return &BcoHistogram{counts: make(map[uint64]uint64)}
}

func (h *BcoHistogram) Increment(bco uint64) {
	h.counts[bco]++
}

func (h *BcoHistogram) Count(bco uint64) uint64 {
	return h.counts[bco]
}

func (h *BcoHistogram) Len() int {
	return len(h.counts)
}

// Drain returns the histogram entries sorted by BCO and empties the
// histogram.
func (h *BcoHistogram) Drain() []BcoCount {
	bcos := maps.Keys(h.counts)
	slices.Sort(bcos)
	entries := make([]BcoCount, len(bcos))
	for i, bco := range bcos {
		entries[i] = BcoCount{Bco: bco, Count: h.counts[bco]}
	}
	clear(h.counts)
	return entries
}

type orphanKey struct {
	feeID  uint16
	feeBco uint32
}

// OrphanTracker remembers the FEE BCOs that could not be matched.
type OrphanTracker struct {
	seen map[orphanKey]struct{}
}

func NewOrphanTracker() *OrphanTracker {
	return &OrphanTracker{seen: make(map[orphanKey]struct{})}
}

// Report records an unmatched (fee, FEE BCO) pair and returns true the first
// time the pair is seen.
func (o *OrphanTracker) Report(feeID uint16, feeBco uint32) bool {
	key := orphanKey{feeID: feeID, feeBco: feeBco}
	if _, ok := o.seen[key]; ok {
		return false
	}
	o.seen[key] = struct{}{}
	return true
}

func (o *OrphanTracker) Len() int {
	return len(o.seen)
}
