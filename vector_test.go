package spin3d

import (
	"math"
	"testing"
)

const float64EqualityThreshold = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

func vectorAlmostEqual(a, b Vector3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func TestSubtract(t *testing.T) {
	got := Subtract(Vector3{5, 7, 9}, Vector3{1, 2, 3})
	if got != (Vector3{4, 5, 6}) {
		t.Errorf("Subtract = %v, want {4 5 6}", got)
	}
}

func TestCross(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     Vector3
		expected Vector3
	}{
		{"x cross y", Vector3{1, 0, 0}, Vector3{0, 1, 0}, Vector3{0, 0, 1}},
		{"y cross x", Vector3{0, 1, 0}, Vector3{1, 0, 0}, Vector3{0, 0, -1}},
		{"y cross z", Vector3{0, 1, 0}, Vector3{0, 0, 1}, Vector3{1, 0, 0}},
		{"general", Vector3{1, 2, 3}, Vector3{4, 5, 6}, Vector3{-3, 6, -3}},
		{"parallel", Vector3{1, 2, 3}, Vector3{2, 4, 6}, Vector3{}},
		{"zero", Vector3{}, Vector3{1, 2, 3}, Vector3{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Cross(tc.a, tc.b); !vectorAlmostEqual(got, tc.expected) {
				t.Errorf("Cross(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestDot(t *testing.T) {
	testCases := []struct {
		a, b     Vector3
		expected float64
	}{
		{Vector3{1, 2, 3}, Vector3{4, 5, 6}, 32},
		{Vector3{1, 0, 0}, Vector3{0, 1, 0}, 0},
		{Vector3{}, Vector3{}, 0},
		{Vector3{-1, -1, -1}, Vector3{1, 1, 1}, -3},
	}
	for _, tc := range testCases {
		if got := Dot(tc.a, tc.b); !almostEqual(got, tc.expected) {
			t.Errorf("Dot(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestVectorHelpers(t *testing.T) {
	v := NewVector3(3, 4, 12)
	if !almostEqual(v.Length(), 13) {
		t.Errorf("Length = %v, want 13", v.Length())
	}
	if got := v.Add(Vector3{1, 1, 1}).Scale(2); got != (Vector3{8, 10, 26}) {
		t.Errorf("Add/Scale = %v", got)
	}
	if d := v.DistanceTo(Vector3{3, 4, 0}); !almostEqual(d, 12) {
		t.Errorf("DistanceTo = %v, want 12", d)
	}
}
