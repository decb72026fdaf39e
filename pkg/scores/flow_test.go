package scores

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type recordingArchive struct {
	entries []Entry
	err     error
}

func (a *recordingArchive) Record(_ context.Context, e Entry) error {
	a.entries = append(a.entries, e)
	return a.err
}

func TestFlowStartsIdle(t *testing.T) {
	f := NewEntryFlow(NewBoard(0))
	if f.Awaiting() || f.State() != Idle {
		t.Fatalf("expected idle flow, got %s", f.State())
	}
	if _, ok := f.Submit("ann"); ok {
		t.Fatalf("expected submit on idle flow to be ignored")
	}
}

func TestFlowSubmitAdmitsOnce(t *testing.T) {
	board := NewBoard(0)
	stamp := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	var rows []string
	archive := &recordingArchive{}
	f := NewEntryFlow(board,
		WithClock(func() time.Time { return stamp }),
		WithArchive(archive),
		WithRenderer(RendererFunc(func(_ int, name string, _ int) {
			rows = append(rows, name)
		})),
	)

	f.Open(321)
	if !f.Awaiting() || f.Score() != 321 {
		t.Fatalf("expected flow armed with 321, got %s/%d", f.State(), f.Score())
	}

	e, ok := f.Submit("  ann  ")
	if !ok {
		t.Fatalf("expected submit to succeed")
	}
	if e.Name != "ann" || e.Score != 321 || !e.At.Equal(stamp) {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if f.Awaiting() {
		t.Fatalf("expected flow to be idle after submit")
	}
	if board.Len() != 1 {
		t.Fatalf("expected 1 entry on the board, got %d", board.Len())
	}
	if len(archive.entries) != 1 {
		t.Fatalf("expected entry archived")
	}
	if len(rows) != 1 || rows[0] != "ann" {
		t.Fatalf("expected renderer refreshed, got %v", rows)
	}

	if _, ok := f.Submit("bob"); ok {
		t.Fatalf("expected second submit to be ignored")
	}
	if board.Len() != 1 {
		t.Fatalf("expected board unchanged, got %d", board.Len())
	}
}

func TestFlowIgnoresBlankNames(t *testing.T) {
	board := NewBoard(0)
	f := NewEntryFlow(board)
	f.Open(10)
	for _, name := range []string{"", "   ", "\t"} {
		if _, ok := f.Submit(name); ok {
			t.Fatalf("expected %q to be rejected", name)
		}
	}
	if !f.Awaiting() {
		t.Fatalf("expected flow to stay armed")
	}
	if board.Len() != 0 {
		t.Fatalf("expected empty board, got %d", board.Len())
	}
}

func TestFlowTruncatesLongNames(t *testing.T) {
	f := NewEntryFlow(NewBoard(0))
	f.Open(10)
	e, ok := f.Submit(strings.Repeat("é", 40))
	if !ok {
		t.Fatalf("expected submit to succeed")
	}
	if got := len([]rune(e.Name)); got != MaxNameLength {
		t.Fatalf("expected %d runes, got %d", MaxNameLength, got)
	}
}

func TestFlowArchiveErrorDoesNotBlock(t *testing.T) {
	board := NewBoard(0)
	f := NewEntryFlow(board, WithArchive(&recordingArchive{err: errors.New("disk full")}))
	f.Open(10)
	if _, ok := f.Submit("ann"); !ok {
		t.Fatalf("expected submit to succeed despite archive failure")
	}
	if board.Len() != 1 {
		t.Fatalf("expected entry admitted, got %d", board.Len())
	}
}

func TestFlowCancel(t *testing.T) {
	f := NewEntryFlow(NewBoard(0))
	f.Open(10)
	f.Cancel()
	if f.Awaiting() {
		t.Fatalf("expected cancel to return to idle")
	}
}
