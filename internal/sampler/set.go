// Package sampler provides a set over a fixed integer universe that can
// remove a uniformly random member in expected O(1).
package sampler

const (
	tombstone = -1

	// Slot arrays smaller than this are never compacted.
	minCompactSlots = 8
)

// Intn is the randomness RemoveRandom draws from. *rand.Rand from
// math/rand/v2 and chromagrow/pkg/core.RNG both satisfy it.
type Intn interface {
	IntN(n int) int
}

// Set holds keys from [0, universe). Members live in a slot array; removal
// leaves a tombstone so slot indices stay stable until the next compaction.
type Set struct {
	pos   []int32 // key -> slot, or tombstone
	slots []int32 // slot -> key, or tombstone
	n     int
}

// NewSet returns an empty set over [0, universe).
func NewSet(universe int) *Set {
	pos := make([]int32, universe)
	for i := range pos {
		pos[i] = tombstone
	}
	return &Set{pos: pos}
}

// NewFullSet returns a set holding every key of [0, universe), with slots in
// key order.
func NewFullSet(universe int) *Set {
	s := &Set{pos: make([]int32, universe), slots: make([]int32, universe), n: universe}
	for i := range s.pos {
		s.pos[i] = int32(i)
		s.slots[i] = int32(i)
	}
	return s
}

// Len returns the number of members.
func (s *Set) Len() int { return s.n }

// Slots returns the size of the backing slot array, live or not.
func (s *Set) Slots() int { return len(s.slots) }

// Contains reports whether key is a member. Out-of-universe keys never are.
func (s *Set) Contains(key int) bool {
	return key >= 0 && key < len(s.pos) && s.pos[key] != tombstone
}

// Insert adds key and reports whether it was newly added.
func (s *Set) Insert(key int) bool {
	if key < 0 || key >= len(s.pos) || s.pos[key] != tombstone {
		return false
	}
	s.pos[key] = int32(len(s.slots))
	s.slots = append(s.slots, int32(key))
	s.n++
	return true
}

// Remove deletes key and reports whether it was present.
func (s *Set) Remove(key int) bool {
	if !s.Contains(key) {
		return false
	}
	s.free(int(s.pos[key]))
	s.maybeCompact()
	return true
}

// RemoveRandom removes and returns a member chosen uniformly at random. It
// reports false when the set is empty.
//
// Slots are drawn uniformly until an occupied one is hit. The slot count
// does not change between draws, so every member is equally likely. Sparse
// slot arrays are compacted first, which keeps the expected number of
// draws at most four.
func (s *Set) RemoveRandom(r Intn) (int, bool) {
	if s.n == 0 {
		return 0, false
	}
	s.maybeCompact()
	for {
		slot := r.IntN(len(s.slots))
		key := s.slots[slot]
		if key == tombstone {
			continue
		}
		s.free(slot)
		return int(key), true
	}
}

// Each calls fn for every member in slot order.
func (s *Set) Each(fn func(key int)) {
	for _, key := range s.slots {
		if key != tombstone {
			fn(int(key))
		}
	}
}

// Compact rewrites the slot array densely, keeping slot order.
func (s *Set) Compact() {
	live := make([]int32, 0, s.n)
	for _, key := range s.slots {
		if key == tombstone {
			continue
		}
		s.pos[key] = int32(len(live))
		live = append(live, key)
	}
	s.slots = live
}

func (s *Set) free(slot int) {
	key := s.slots[slot]
	s.pos[key] = tombstone
	s.slots[slot] = tombstone
	s.n--
}

func (s *Set) maybeCompact() {
	if len(s.slots) >= minCompactSlots && s.n < len(s.slots)/4 {
		s.Compact()
	}
}
