package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/golangdaddy/racer/pkg/scores"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "racer.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRecordAndTop(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, e := range []scores.Entry{
		{Name: "ann", Score: 120},
		{Name: "bob", Score: 300},
		{Name: "cy", Score: 50},
		{Name: "dee", Score: 300},
	} {
		e.At = base.Add(time.Duration(i) * time.Minute)
		if err := s.Record(ctx, e); err != nil {
			t.Fatalf("record %s: %v", e.Name, err)
		}
	}

	top, err := s.Top(ctx, 3)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	want := []string{"dee", "bob", "ann"}
	if len(top) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(top))
	}
	for i, name := range want {
		if top[i].Name != name {
			t.Fatalf("rank %d: expected %s, got %s", i, name, top[i].Name)
		}
	}
	if !top[2].At.Equal(base) {
		t.Fatalf("expected timestamp preserved, got %v", top[2].At)
	}

	n, err := s.Count(ctx)
	if err != nil || n != 4 {
		t.Fatalf("expected 4 archived entries, got %d (%v)", n, err)
	}
}

func TestTopNonPositive(t *testing.T) {
	s := openTemp(t)
	top, err := s.Top(context.Background(), 0)
	if err != nil || top != nil {
		t.Fatalf("expected nothing for n=0, got %v %v", top, err)
	}
}

func TestRestoreMatchesRanking(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	live := scores.NewBoard(3)
	for _, e := range []struct {
		name  string
		score int
	}{{"a", 10}, {"b", 20}, {"c", 10}, {"d", 5}, {"e", 20}} {
		if !live.Qualifies(e.score) {
			continue
		}
		if err := s.Record(ctx, live.Admit(e.name, e.score)); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	restored := scores.NewBoard(3)
	n, err := s.Restore(ctx, restored)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 restored entries, got %d", n)
	}
	got := restored.RankedDescending()
	want := live.RankedDescending()
	for i := range want {
		if got[i].Name != want[i].Name || got[i].Score != want[i].Score {
			t.Fatalf("rank %d: expected %s/%d, got %s/%d", i,
				want[i].Name, want[i].Score, got[i].Name, got[i].Score)
		}
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "racer.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Record(context.Background(), scores.Entry{Name: "zed", Score: 9}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	top, err := s.Top(context.Background(), 10)
	if err != nil || len(top) != 1 || top[0].Name != "zed" {
		t.Fatalf("expected archived entry after reopen, got %v %v", top, err)
	}
}

var _ scores.Archive = (*Store)(nil)
