package evaluation

import (
	"testing"
)

func TestOrphanTrackerReportsOnce(t *testing.T) {
	o := NewOrphanTracker()
	if !o.Report(1, 55) {
		t.Fatal("expected first report to be new")
	}
	if o.Report(1, 55) {
		t.Fatal("expected duplicate report to be suppressed")
	}
	if !o.Report(2, 55) {
		t.Fatal("expected same bco on another fee to be new")
	}
	if !o.Report(1, 56) {
		t.Fatal("expected another bco on the same fee to be new")
	}
	if o.Len() != 3 {
		t.Fatalf("expected 3 distinct orphans, got %d", o.Len())
	}
}

func TestBcoHistogramDrainIsSorted(t *testing.T) {
	h := NewBcoHistogram()
	for _, bco := range []uint64{3000, 1000, 3000, 0, 2000, 3000} {
		h.Increment(bco)
	}
	if h.Count(3000) != 3 {
		t.Fatalf("expected 3 entries for bco 3000, got %d", h.Count(3000))
	}

	entries := h.Drain()
	expected := []BcoCount{{0, 1}, {1000, 1}, {2000, 1}, {3000, 3}}
	if len(entries) != len(expected) {
		t.Fatalf("expected %d entries, got %d", len(expected), len(entries))
	}
	for i := range expected {
		if entries[i] != expected[i] {
			t.Fatalf("entry %d: expected %+v, got %+v", i, expected[i], entries[i])
		}
	}
	if h.Len() != 0 {
		t.Fatalf("expected drained histogram to be empty, got %d entries", h.Len())
	}
}
