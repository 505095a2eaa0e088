package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func nearVec(a, b Vec3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Right() != 40 {
		t.Errorf("Right() = %d, expected 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %d, expected 60", r.Bottom())
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -1, 0.5)

	if got := a.Add(b); !nearVec(got, V3(5, 1, 3.5)) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); !nearVec(got, V3(-3, 3, 2.5)) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Scale(2); !nearVec(got, V3(2, 4, 6)) {
		t.Errorf("Scale = %+v", got)
	}
	if got := a.LenSq(); !near(got, 14) {
		t.Errorf("LenSq = %v, expected 14", got)
	}
}

func TestVec3RotateY(t *testing.T) {
	tests := []struct {
		name  string
		v     Vec3
		angle float64
		want  Vec3
	}{
		{"zero", V3(0, 3, 5), 0, V3(0, 3, 5)},
		{"quarter", V3(0, 3, 5), math.Pi / 2, V3(5, 3, 0)},
		{"half", V3(0, 3, 5), math.Pi, V3(0, 3, -5)},
		{"x axis quarter", V3(5, 0, 0), math.Pi / 2, V3(0, 0, -5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.RotateY(tt.angle); !nearVec(got, tt.want) {
				t.Errorf("RotateY(%v) = %+v, expected %+v", tt.angle, got, tt.want)
			}
		})
	}
}

func TestRotateYAddsToAzimuth(t *testing.T) {
	// Azimuth measured as atan2(x, z) grows by the rotation angle.
	v := V3(5, 0, 5)
	before := math.Atan2(v.X, v.Z)
	after := v.RotateY(0.3)
	if got := math.Atan2(after.X, after.Z); !near(got, before+0.3) {
		t.Errorf("azimuth after rotation = %v, expected %v", got, before+0.3)
	}
}

func TestBoxBasics(t *testing.T) {
	b := BoxAround(V3(1, 2, 3), V3(1, 1, 2))

	if !nearVec(b.Min, V3(0, 1, 1)) || !nearVec(b.Max, V3(2, 3, 5)) {
		t.Fatalf("BoxAround = %+v", b)
	}
	if !nearVec(b.Center(), V3(1, 2, 3)) {
		t.Errorf("Center = %+v", b.Center())
	}
	if !nearVec(b.HalfExtents(), V3(1, 1, 2)) {
		t.Errorf("HalfExtents = %+v", b.HalfExtents())
	}
}

func TestBoxIntersects(t *testing.T) {
	a := BoxAround(V3(0, 0, 0), V3(1, 1, 1))

	tests := []struct {
		name     string
		b        Box
		expected bool
	}{
		{"overlap", BoxAround(V3(1, 1, 1), V3(1, 1, 1)), true},
		{"touching face", BoxAround(V3(2, 0, 0), V3(1, 1, 1)), true},
		{"apart on x", BoxAround(V3(3, 0, 0), V3(1, 1, 1)), false},
		{"apart on y", BoxAround(V3(0, -3, 0), V3(1, 1, 1)), false},
		{"contained", BoxAround(V3(0, 0, 0), V3(0.5, 0.5, 0.5)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.expected {
				t.Errorf("Intersects = %v, expected %v", got, tt.expected)
			}
			if got := tt.b.Intersects(a); got != tt.expected {
				t.Errorf("Intersects should be symmetric")
			}
		})
	}
}

func TestBoxRotatedY(t *testing.T) {
	b := BoxAround(V3(0, -12, 5), V3(1, 1, 1))

	quarter := b.RotatedY(math.Pi / 2)
	if !nearVec(quarter.Center(), V3(5, -12, 0)) {
		t.Errorf("rotated center = %+v, expected (5,-12,0)", quarter.Center())
	}
	if !nearVec(quarter.HalfExtents(), V3(1, 1, 1)) {
		t.Errorf("quarter turn should keep half extents, got %+v", quarter.HalfExtents())
	}

	diag := b.RotatedY(math.Pi / 4)
	h := diag.HalfExtents()
	if !near(h.X, math.Sqrt2) || !near(h.Z, math.Sqrt2) || !near(h.Y, 1) {
		t.Errorf("45 degree turn should widen to sqrt2, got %+v", h)
	}
}

func TestSphereIntersectsBox(t *testing.T) {
	box := BoxAround(V3(0, 0, 5), V3(1, 1, 1))

	tests := []struct {
		name     string
		center   Vec3
		expected bool
	}{
		{"resting on top", V3(0, 2, 5), true},
		{"just above", V3(0, 2.01, 5), false},
		{"inside", V3(0, 0, 5), true},
		{"corner miss", V3(1.8, 1.8, 5), false},
		{"side touch", V3(2, 0, 5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Sphere{Center: tt.center, Radius: 1}
			if got := s.IntersectsBox(box); got != tt.expected {
				t.Errorf("IntersectsBox = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		result := Clamp(tt.val, tt.min, tt.max)
		if result != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.min, tt.max, result, tt.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0, 10, 5.5},
		{-5.5, 0, 10, 0},
		{15.5, 0, 10, 10},
	}

	for _, tt := range tests {
		result := ClampF(tt.val, tt.min, tt.max)
		if result != tt.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tt.val, tt.min, tt.max, result, tt.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 5) != 3 || Min(5, 3) != 3 {
		t.Error("Min failed")
	}
	if Max(3, 5) != 5 || Max(5, 3) != 5 {
		t.Error("Max failed")
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
	}

	for _, tt := range tests {
		if got := WrapAngle(tt.in); !near(got, tt.want) {
			t.Errorf("WrapAngle(%v) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}
