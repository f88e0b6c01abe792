package core

import "testing"

func TestRectIntersects(t *testing.T) {
	enemy := NewRect(80, 50, 40, 30)
	paddle := NewRect(20, 250, 10, 100)
	ship := NewRect(375, 550, 50, 30)

	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"bullet inside enemy", NewRect(100, 70, 3, 10), enemy, true},
		{"bullet beside enemy", NewRect(125, 60, 3, 10), enemy, false},
		{"bullet touching enemy bottom edge", NewRect(100, 80, 3, 10), enemy, false},
		{"bullet touching enemy left edge", NewRect(77, 60, 3, 10), enemy, false},
		{"ball touching paddle face", NewRect(30, 300, 20, 20), paddle, false},
		{"ball one unit into paddle", NewRect(29, 300, 20, 20), paddle, true},
		{"ball passing above paddle", NewRect(25, 225, 20, 20), paddle, false},
		{"enemy bullet clipping ship corner", NewRect(373, 541, 3, 10), ship, true},
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
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestRectTranslateAndCenteredAt(t *testing.T) {
	r := NewRect(10, 20, 40, 30)

	moved := r.Translate(5, -5)
	if moved.X != 15 || moved.Y != 15 || moved.W != 40 || moved.H != 30 {
		t.Errorf("Translate(5, -5) = %+v", moved)
	}
	if r.X != 10 || r.Y != 20 {
		t.Error("Translate should not modify the receiver")
	}

	centered := r.CenteredAt(400, 300)
	cx, cy := centered.Center()
	if cx != 400 || cy != 300 {
		t.Errorf("CenteredAt(400, 300) center = (%d, %d)", cx, cy)
	}
	if centered.X != 380 || centered.Y != 285 {
		t.Errorf("CenteredAt(400, 300) = %+v, expected X=380 Y=285", centered)
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		val, expected int
	}{
		{-6, -1},
		{0, 0},
		{6, 1},
	}

	for _, tc := range tests {
		if got := Sign(tc.val); got != tc.expected {
			t.Errorf("Sign(%d) = %d, expected %d", tc.val, got, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}
