package scores

import (
	"context"
	"log"
	"strings"
	"time"
)

// MaxNameLength caps the number of runes kept from a submitted name.
const MaxNameLength = 16

// FlowState is the state of the name entry flow.
type FlowState int

const (
	Idle FlowState = iota
	AwaitingName
)

func (s FlowState) String() string {
	switch s {
	case AwaitingName:
		return "awaiting-name"
	default:
		return "idle"
	}
}

// Archive persists admitted entries beyond the life of the process.
type Archive interface {
	Record(ctx context.Context, e Entry) error
}

// EntryFlow collects a name after a qualifying run and admits it to the
// board exactly once.
type EntryFlow struct {
	board    *Board
	state    FlowState
	score    int
	renderer Renderer
	archive  Archive
	now      func() time.Time
}

// FlowOption configures an EntryFlow.
type FlowOption func(*EntryFlow)

// WithRenderer refreshes r with the ranking after every admitted name.
func WithRenderer(r Renderer) FlowOption {
	return func(f *EntryFlow) { f.renderer = r }
}

// WithArchive records every admitted entry to a.
func WithArchive(a Archive) FlowOption {
	return func(f *EntryFlow) { f.archive = a }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) FlowOption {
	return func(f *EntryFlow) { f.now = now }
}

// NewEntryFlow creates an idle flow admitting into board.
func NewEntryFlow(board *Board, opts ...FlowOption) *EntryFlow {
	f := &EntryFlow{
		board: board,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Open arms the flow for a finished run.
func (f *EntryFlow) Open(score int) {
	f.state = AwaitingName
	f.score = score
}

// Cancel drops a pending entry.
func (f *EntryFlow) Cancel() {
	f.state = Idle
}

// State returns the current state.
func (f *EntryFlow) State() FlowState {
	return f.state
}

// Awaiting reports whether a name is expected.
func (f *EntryFlow) Awaiting() bool {
	return f.state == AwaitingName
}

// Score returns the score waiting for a name.
func (f *EntryFlow) Score() int {
	return f.score
}

// Submit admits the pending score under name. Blank names are ignored and
// leave the flow armed.
func (f *EntryFlow) Submit(name string) (Entry, bool) {
	if f.state != AwaitingName {
		return Entry{}, false
	}
	name = normalizeName(name)
	if name == "" {
		return Entry{}, false
	}

	e := Entry{Name: name, Score: f.score, At: f.now()}
	f.board.insert(e)
	f.state = Idle

	if f.archive != nil {
		if err := f.archive.Record(context.Background(), e); err != nil {
			log.Printf("failed to archive score for %s: %v", e.Name, err)
		}
	}
	f.board.Render(f.renderer)
	return e, true
}

func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	runes := []rune(name)
	if len(runes) > MaxNameLength {
		name = strings.TrimSpace(string(runes[:MaxNameLength]))
	}
	return name
}
