package evaluation

// MatchState is the last FEE BCO that was matched to a lvl1 BCO.
type MatchState struct {
	LastFeeBco  uint32
	LastLvl1Bco uint64
}

// BcoMatcher assigns lvl1 BCOs to FEE BCOs.
//
// Each FEE keeps the pair from its last successful match. A FEE BCO within
// tolerance of the cached one reuses the cached lvl1 BCO. Otherwise the FEE
// takes the first unused candidate of the current packet, in tagger order.
// Candidates are never handed back, and there is no attempt to recover a
// lvl1 BCO once the FEE queue is empty.
//
// FEE BCO differences are plain unsigned distances: counter rollover is not
// handled.
//
// BcoMatcher is not safe for concurrent use.
type BcoMatcher struct {
	tolerance  uint32
	states     map[uint16]MatchState
	candidates []uint64
	queues     map[uint16][]uint64
}

func NewBcoMatcher(tolerance uint32) *BcoMatcher {
	return &BcoMatcher{
		tolerance: tolerance,
		states:    make(map[uint16]MatchState),
		queues:    make(map[uint16][]uint64),
	}
}

func (m *BcoMatcher) Tolerance() uint32 {
	return m.tolerance
}

// SetCandidates starts a new matching window. Every FEE queue is dropped and
// will be seeded again from bcos on first use. Cached match states are kept.
func (m *BcoMatcher) SetCandidates(bcos []uint64) {
	m.candidates = append(m.candidates[:0], bcos...)
	clear(m.queues)
}

// Match returns the lvl1 BCO for a sample of feeID with the given FEE BCO,
// or false if the FEE has no candidate left.
func (m *BcoMatcher) Match(feeID uint16, feeBco uint32) (uint64, bool) {
	state, cached := m.states[feeID]
	if cached && bcoDiff(feeBco, state.LastFeeBco) < m.tolerance {
		return state.LastLvl1Bco, true
	}

	queue, ok := m.queues[feeID]
	if !ok {
		queue = append([]uint64(nil), m.candidates...)
	}
	if len(queue) == 0 {
		m.queues[feeID] = queue
		return 0, false
	}

	lvl1Bco := queue[0]
	m.queues[feeID] = queue[1:]
	m.states[feeID] = MatchState{LastFeeBco: feeBco, LastLvl1Bco: lvl1Bco}
	return lvl1Bco, true
}

// State returns the cached match of feeID.
func (m *BcoMatcher) State(feeID uint16) (MatchState, bool) {
	state, ok := m.states[feeID]
	return state, ok
}

// Remaining returns the candidates feeID has not consumed yet in the current
// window.
func (m *BcoMatcher) Remaining(feeID uint16) []uint64 {
	queue, ok := m.queues[feeID]
	if !ok {
		queue = m.candidates
	}
	return append([]uint64(nil), queue...)
}

func bcoDiff(first uint32, second uint32) uint32 {
	if first < second {
		return second - first
	}
	return first - second
}
