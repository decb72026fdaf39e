package scores

import (
	"slices"
	"time"
)

// DefaultCapacity is the size of the high score table.
const DefaultCapacity = 10

// Board is a bounded collection of entries. It has a single owner and no
// locking; it is only touched from the game loop.
type Board struct {
	capacity int
	entries  []Entry // insertion order
}

// NewBoard creates an empty board. A non-positive capacity means the default.
func NewBoard(capacity int) *Board {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Board{
		capacity: capacity,
		entries:  make([]Entry, 0, capacity+1),
	}
}

// Capacity returns the maximum number of entries kept.
func (b *Board) Capacity() int {
	return b.capacity
}

// Len returns the number of entries.
func (b *Board) Len() int {
	return len(b.entries)
}

// Min returns the lowest entry. Among ties it is the oldest one.
func (b *Board) Min() (Entry, bool) {
	idx := b.minIndex()
	if idx < 0 {
		return Entry{}, false
	}
	return b.entries[idx], true
}

func (b *Board) minIndex() int {
	idx := -1
	for i, e := range b.entries {
		if idx < 0 || e.Score < b.entries[idx].Score {
			idx = i
		}
	}
	return idx
}

// Qualifies reports whether a run with this score earns a place. A tie with
// the current minimum of a full board does not.
func (b *Board) Qualifies(score int) bool {
	if len(b.entries) < b.capacity {
		return true
	}
	lowest, _ := b.Min()
	return lowest.Score < score
}

// Admit adds an entry without checking Qualifies. If the board overflows the
// lowest entry is evicted.
func (b *Board) Admit(name string, score int) Entry {
	e := Entry{Name: name, Score: score, At: time.Now()}
	b.insert(e)
	return e
}

// Load admits previously recorded entries, keeping their timestamps.
func (b *Board) Load(entries ...Entry) {
	for _, e := range entries {
		b.insert(e)
	}
}

func (b *Board) insert(e Entry) {
	b.entries = append(b.entries, e)
	for len(b.entries) > b.capacity {
		idx := b.minIndex()
		b.entries = slices.Delete(b.entries, idx, idx+1)
	}
}

// Ascending returns the entries sorted by score, lowest first. Ties keep
// insertion order.
func (b *Board) Ascending() []Entry {
	out := slices.Clone(b.entries)
	slices.SortStableFunc(out, Compare)
	return out
}

// RankedDescending returns the table highest first: the ascending order read
// backwards, so among ties the most recent entry ranks higher.
func (b *Board) RankedDescending() []Entry {
	out := b.Ascending()
	slices.Reverse(out)
	if len(out) > b.capacity {
		out = out[:b.capacity]
	}
	return out
}

// Render feeds the ranked table to r.
func (b *Board) Render(r Renderer) {
	if r == nil {
		return
	}
	for rank, e := range b.RankedDescending() {
		r.Render(rank, e.Name, e.Score)
	}
}
