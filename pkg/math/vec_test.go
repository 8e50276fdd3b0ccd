package math

import (
	"testing"
)

func TestVec3Add(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	got := a.Add(b)
	want := Vec3{5, 7, 9}
	if got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{2, 3, 6}
	got := v.Length()
	want := float32(7)
	if got != want {
		t.Errorf("Vec3.Length() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 12}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}

	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("zero vector Normalize() = %v, want zero", z)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}

	// Swapping operands flips the result.
	if got := y.Cross(x); got != want.Scale(-1) {
		t.Errorf("y.Cross(x) = %v, want %v", got, want.Scale(-1))
	}
}

func TestVec3ApproxEqual(t *testing.T) {
	a := Vec3{1, 2, 3}
	if !a.ApproxEqual(Vec3{1.0005, 1.9995, 3}, 0.001) {
		t.Error("expected vectors within tolerance to be equal")
	}
	if a.ApproxEqual(Vec3{1.1, 2, 3}, 0.001) {
		t.Error("expected vectors outside tolerance to differ")
	}
}

func TestRadians(t *testing.T) {
	tests := []struct {
		deg, rad float32
	}{
		{0, 0},
		{90, 1.5707964},
		{180, 3.1415927},
		{-90, -1.5707964},
	}

	for _, tt := range tests {
		if got := Radians(tt.deg); abs(got-tt.rad) > 1e-6 {
			t.Errorf("Radians(%f) = %f, want %f", tt.deg, got, tt.rad)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float32
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{95, -89, 89, 89},
		{49, 1, 45, 45},
	}

	for _, tt := range tests {
		got := Clamp(tt.v, tt.lo, tt.hi)
		if got != tt.want {
			t.Errorf("Clamp(%f, %f, %f) = %f, want %f", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
