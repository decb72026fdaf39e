package road

import (
	"math"
	"math/rand"
	"testing"
)

func TestSegmentMove(t *testing.T) {
	s := NewSegment(400, 0, DefaultSegmentWidth, DefaultSegmentHeight, 2)
	s.Move()
	s.Move()
	if s.Y != 4 {
		t.Fatalf("expected y 4 after two moves, got %v", s.Y)
	}
	if s.X != 400 {
		t.Fatalf("expected x unchanged, got %v", s.X)
	}
}

func TestSegmentDrivable(t *testing.T) {
	s := NewSegment(400, 20, 160, 10, 2)
	d := s.Drivable()
	if d.Left() != 320 || d.Right() != 480 {
		t.Fatalf("unexpected drivable span %v..%v", d.Left(), d.Right())
	}
	if s.Bottom() != 30 {
		t.Fatalf("expected bottom 30, got %v", s.Bottom())
	}
}

func TestSegmentOffscreen(t *testing.T) {
	s := NewSegment(400, 600, 160, 10, 2)
	if s.Offscreen(600) {
		t.Fatalf("segment at the bottom edge should still be on screen")
	}
	s.Move()
	if !s.Offscreen(600) {
		t.Fatalf("expected segment past the bottom to be offscreen")
	}
}

func TestSegmentCount(t *testing.T) {
	if got := SegmentCount(600, 10); got != 61 {
		t.Fatalf("expected 61 segments, got %d", got)
	}
	if got := SegmentCount(600, 0); got != 0 {
		t.Fatalf("expected 0 for zero height, got %d", got)
	}
}

func TestGeneratorDriftBounded(t *testing.T) {
	g := NewGenerator(400, 5, 160, 10, 2, rand.New(rand.NewSource(42)))
	prev := g.CenterX()
	for i := 0; i < 1000; i++ {
		s := g.Next()
		if math.Abs(s.X-prev) > 5 {
			t.Fatalf("drift %v exceeds curve speed", s.X-prev)
		}
		if s.Y != -10 {
			t.Fatalf("expected new segment above the screen, got y %v", s.Y)
		}
		if s.YSpeed != 2 {
			t.Fatalf("expected y speed 2, got %v", s.YSpeed)
		}
		prev = s.X
	}
}

func TestGeneratorWithoutCurveIsStraight(t *testing.T) {
	g := NewGenerator(400, 0, 160, 10, 2, rand.New(rand.NewSource(7)))
	for i := 0; i < 100; i++ {
		if s := g.Next(); s.X != 400 {
			t.Fatalf("expected straight road, got x %v", s.X)
		}
	}
}

func TestGeneratorIsDeterministicForSeed(t *testing.T) {
	a := NewGenerator(400, 5, 160, 10, 2, rand.New(rand.NewSource(3)))
	b := NewGenerator(400, 5, 160, 10, 2, rand.New(rand.NewSource(3)))
	for i := 0; i < 50; i++ {
		if a.Next().X != b.Next().X {
			t.Fatalf("expected identical walks for identical seeds")
		}
	}
}

func TestGeneratorLimit(t *testing.T) {
	g := NewGenerator(400, 5, 160, 10, 2, rand.New(rand.NewSource(99)))
	g.Limit(380, 420)
	prev := g.CenterX()
	for i := 0; i < 5000; i++ {
		s := g.Next()
		if s.X < 380 || s.X > 420 {
			t.Fatalf("center %v escaped the limits", s.X)
		}
		if math.Abs(s.X-prev) > 5 {
			t.Fatalf("drift %v exceeds curve speed", s.X-prev)
		}
		prev = s.X
	}
}
