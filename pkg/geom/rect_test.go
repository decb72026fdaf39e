package geom

import "testing"

func TestNewCentered(t *testing.T) {
	r := NewCentered(400, 10, 160, 10)
	if r.Left() != 320 || r.Right() != 480 {
		t.Fatalf("unexpected horizontal span: %v..%v", r.Left(), r.Right())
	}
	if r.Top() != 10 || r.Bottom() != 20 {
		t.Fatalf("unexpected vertical span: %v..%v", r.Top(), r.Bottom())
	}
	if r.CenterX() != 400 {
		t.Fatalf("expected center 400, got %v", r.CenterX())
	}
}

func TestOverlapsVertically(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"same", Rect{X: 50, Y: 0, W: 10, H: 10}, true},
		{"partial", Rect{X: 0, Y: 5, W: 10, H: 10}, true},
		{"touching below", Rect{X: 0, Y: 10, W: 10, H: 10}, false},
		{"touching above", Rect{X: 0, Y: -10, W: 10, H: 10}, false},
		{"far", Rect{X: 0, Y: 100, W: 10, H: 10}, false},
	}
	for _, tc := range cases {
		if got := a.OverlapsVertically(tc.other); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestWithinHorizontally(t *testing.T) {
	lane := Rect{X: 100, Y: 0, W: 100, H: 10}
	if !(Rect{X: 100, Y: 0, W: 100, H: 5}).WithinHorizontally(lane) {
		t.Fatalf("expected equal edges to be within")
	}
	if !(Rect{X: 120, Y: 0, W: 20, H: 5}).WithinHorizontally(lane) {
		t.Fatalf("expected inner rect to be within")
	}
	if (Rect{X: 190, Y: 0, W: 20, H: 5}).WithinHorizontally(lane) {
		t.Fatalf("expected rect crossing right edge to be outside")
	}
	if (Rect{X: 95, Y: 0, W: 20, H: 5}).WithinHorizontally(lane) {
		t.Fatalf("expected rect crossing left edge to be outside")
	}
}

func TestIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	if !a.Intersects(Rect{X: 5, Y: 5, W: 10, H: 10}) {
		t.Fatalf("expected overlap")
	}
	if a.Intersects(Rect{X: 10, Y: 0, W: 10, H: 10}) {
		t.Fatalf("expected touching rects not to intersect")
	}
	if a.Translate(100, 0).Intersects(a) {
		t.Fatalf("expected translated rect not to intersect")
	}
}

func TestContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 40}
	cases := []struct {
		x, y float64
		want bool
	}{
		{10, 20, true},
		{60, 40, true},
		{110, 40, false},
		{60, 60, false},
		{9, 40, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.x, c.y); got != c.want {
			t.Fatalf("Contains(%v, %v) = %v, expected %v", c.x, c.y, got, c.want)
		}
	}
}
