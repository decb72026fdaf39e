package scores

import (
	"fmt"
	"testing"
)

func fullBoard() *Board {
	b := NewBoard(DefaultCapacity)
	for s := 10; s <= 100; s += 10 {
		b.Admit(fmt.Sprintf("p%d", s), s)
	}
	return b
}

func TestNewBoardDefaultsCapacity(t *testing.T) {
	if got := NewBoard(0).Capacity(); got != DefaultCapacity {
		t.Fatalf("expected capacity %d, got %d", DefaultCapacity, got)
	}
	if got := NewBoard(3).Capacity(); got != 3 {
		t.Fatalf("expected capacity 3, got %d", got)
	}
}

func TestQualifiesWhenNotFull(t *testing.T) {
	b := NewBoard(DefaultCapacity)
	for i := 0; i < 9; i++ {
		b.Admit("x", 1000)
	}
	for _, score := range []int{0, 1, 999, 1000, 5000} {
		if !b.Qualifies(score) {
			t.Fatalf("expected %d to qualify on a board of 9", score)
		}
	}
}

func TestQualifiesStrictAtMinimum(t *testing.T) {
	b := fullBoard()
	if b.Qualifies(10) {
		t.Fatalf("expected a tie with the minimum not to qualify")
	}
	if b.Qualifies(5) {
		t.Fatalf("expected a score below the minimum not to qualify")
	}
	if !b.Qualifies(11) {
		t.Fatalf("expected 11 to qualify")
	}
}

func TestAdmitEvictsMinimumOnOverflow(t *testing.T) {
	b := fullBoard()
	b.Admit("new", 55)
	if b.Len() != DefaultCapacity {
		t.Fatalf("expected %d entries, got %d", DefaultCapacity, b.Len())
	}
	lowest, ok := b.Min()
	if !ok || lowest.Score != 20 {
		t.Fatalf("expected new minimum 20, got %+v", lowest)
	}
}

func TestAdmitDoesNotDedupe(t *testing.T) {
	b := NewBoard(DefaultCapacity)
	b.Admit("ann", 50)
	b.Admit("ann", 50)
	if b.Len() != 2 {
		t.Fatalf("expected duplicate entries to be kept, got %d", b.Len())
	}
}

func TestAscendingIsStable(t *testing.T) {
	b := NewBoard(DefaultCapacity)
	b.Admit("first", 50)
	b.Admit("low", 10)
	b.Admit("second", 50)
	got := b.Ascending()
	want := []string{"low", "first", "second"}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("unexpected order: %+v", got)
		}
	}
}

func TestRankedDescending(t *testing.T) {
	b := NewBoard(DefaultCapacity)
	b.Admit("first", 50)
	b.Admit("top", 90)
	b.Admit("second", 50)
	got := b.RankedDescending()
	want := []string{"top", "second", "first"}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("unexpected ranking: %+v", got)
		}
	}
}

func TestRender(t *testing.T) {
	b := fullBoard()
	var rows []string
	b.Render(RendererFunc(func(rank int, name string, score int) {
		rows = append(rows, fmt.Sprintf("%d:%s:%d", rank+1, name, score))
	}))
	if len(rows) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(rows))
	}
	if rows[0] != "1:p100:100" || rows[9] != "10:p10:10" {
		t.Fatalf("unexpected rows: %v", rows)
	}
	b.Render(nil)
}

func TestLoadKeepsCapacity(t *testing.T) {
	b := NewBoard(3)
	b.Load(
		Entry{Name: "a", Score: 1},
		Entry{Name: "b", Score: 5},
		Entry{Name: "c", Score: 3},
		Entry{Name: "d", Score: 4},
	)
	if b.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", b.Len())
	}
	if lowest, _ := b.Min(); lowest.Name != "c" {
		t.Fatalf("expected c to be the minimum, got %+v", lowest)
	}
}

func TestMinOnEmptyBoard(t *testing.T) {
	if _, ok := NewBoard(0).Min(); ok {
		t.Fatalf("expected no minimum on an empty board")
	}
}

func TestCompare(t *testing.T) {
	if Compare(Entry{Score: 1}, Entry{Score: 2}) >= 0 {
		t.Fatalf("expected 1 < 2")
	}
	if Compare(Entry{Name: "a", Score: 2}, Entry{Name: "b", Score: 2}) != 0 {
		t.Fatalf("expected names to be ignored")
	}
}
