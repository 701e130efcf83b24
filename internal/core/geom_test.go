package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		margin   float64
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "sub-cell overlap",
			a:        NewBox(0, 0, 3, 3),
			b:        NewBox(2.9, 2.9, 1, 1),
			expected: true,
		},
		{
			name:     "overlap smaller than margin",
			a:        NewBox(0, 0, 3, 3),
			b:        NewBox(2.8, 0, 2, 3),
			margin:   0.3,
			expected: false,
		},
		{
			name:     "overlap exactly equal to margin",
			a:        NewBox(0, 0, 3, 3),
			b:        NewBox(2.5, 0, 2, 3),
			margin:   0.5,
			expected: false,
		},
		{
			name:     "overlap larger than margin",
			a:        NewBox(0, 0, 3, 3),
			b:        NewBox(2, 0, 2, 3),
			margin:   0.5,
			expected: true,
		},
		{
			name:     "negative margin reaches a gap",
			a:        NewBox(0, 0, 3, 3),
			b:        NewBox(3.5, 0, 1, 1),
			margin:   -1,
			expected: true,
		},
		{
			name:     "negative margin still misses a wide gap",
			a:        NewBox(0, 0, 3, 3),
			b:        NewBox(5, 0, 1, 1),
			margin:   -1,
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Overlaps(tc.b, tc.margin)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(1.5, 2, 3, 4.5)

	if b.Right() != 4.5 {
		t.Errorf("Right() = %f, expected 4.5", b.Right())
	}
	if b.Bottom() != 6.5 {
		t.Errorf("Bottom() = %f, expected 6.5", b.Bottom())
	}

	r := b.Cell()
	if r.X != 2 || r.Y != 2 || r.W != 3 || r.H != 5 {
		t.Errorf("Cell() = %+v, expected {2 2 3 5}", r)
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
