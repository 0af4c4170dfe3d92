package geom

import "testing"

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{X: 1.5, Y: -2}
	b := Vec2{X: 0.5, Y: 3}

	sum := a.Add(b)
	if sum.X != 2 || sum.Y != 1 {
		t.Errorf("Add() = %+v, expected {2 1}", sum)
	}

	diff := a.Sub(b)
	if diff.X != 1 || diff.Y != -5 {
		t.Errorf("Sub() = %+v, expected {1 -5}", diff)
	}

	// Operands must be unchanged
	if a.X != 1.5 || a.Y != -2 {
		t.Errorf("Add/Sub mutated operand: %+v", a)
	}
}

func TestVec2Projection(t *testing.T) {
	v := Vec2{X: 4, Y: -7}

	px := v.ProjectX()
	if px.X != 4 || px.Y != 0 {
		t.Errorf("ProjectX() = %+v, expected {4 0}", px)
	}

	py := v.ProjectY()
	if py.X != 0 || py.Y != -7 {
		t.Errorf("ProjectY() = %+v, expected {0 -7}", py)
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent edges (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "sub-pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
		{
			name:     "zero-width rect never intersects",
			a:        NewRect(5, 5, 0, 10),
			b:        NewRect(0, 0, 20, 20),
			expected: false,
		},
		{
			name:     "zero-height rect never intersects",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 10, 0),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17.5 {
		t.Errorf("Center() = (%v, %v), expected (15, 17.5)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %v", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3, 0, 10) = %v", got)
	}
	if got := Clamp(12, 0, 10); got != 10 {
		t.Errorf("Clamp(12, 0, 10) = %v", got)
	}
}
