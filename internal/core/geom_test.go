package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 5)

	if r.Right() != 12 {
		t.Errorf("Right = %d, want 12", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom = %d, want 8", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 7 || cy != 5 {
		t.Errorf("Center = (%d,%d), want (7,5)", cx, cy)
	}
}

func TestRectInner(t *testing.T) {
	r := NewRect(0, 1, 80, 23)
	inner := r.Inner(1)

	if inner.X != 1 || inner.Y != 2 {
		t.Errorf("Inner origin = (%d,%d), want (1,2)", inner.X, inner.Y)
	}
	if inner.W != 78 || inner.H != 21 {
		t.Errorf("Inner size = %dx%d, want 78x21", inner.W, inner.H)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 10, 5)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside", 5, 5, true},
		{"top-left corner", 2, 3, true},
		{"right edge is exclusive", 12, 5, false},
		{"bottom edge is exclusive", 5, 8, false},
		{"outside left", 1, 5, false},
		{"outside above", 5, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlapping", NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(2, 2, 3, 3), true},
		{"touching edges", NewRect(10, 0, 5, 5), false},
		{"disjoint", NewRect(20, 20, 5, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(a); got != tt.want {
				t.Errorf("Intersects should be symmetric")
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%d,%d,%d) = %d, want %d", tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min failed")
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max failed")
	}
	if Abs(-4) != 4 || Abs(4) != 4 || Abs(0) != 0 {
		t.Error("Abs failed")
	}
}
