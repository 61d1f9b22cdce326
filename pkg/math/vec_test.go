package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
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
}

func TestVec3Length(t *testing.T) {
	v := Vec3{3, 4, 0}
	got := v.Length()
	want := float32(5)
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
}

func TestVec3NormalizeZero(t *testing.T) {
	got := (Vec3{}).Normalize()
	if got != (Vec3{}) {
		t.Errorf("Normalize of zero vector = %v, want zero", got)
	}
}

func TestVec3Neg(t *testing.T) {
	v := Vec3{1, -2, 3}
	got := v.Neg()
	want := Vec3{-1, 2, -3}
	if got != want {
		t.Errorf("Vec3.Neg() = %v, want %v", got, want)
	}
}

func TestMat4InverseRoundTrip(t *testing.T) {
	m := Perspective(1.0, 1.5, 10, 50000).Mul(LookAt(Vec3{X: 5000, Y: 3000, Z: 4000}, Vec3{}, Vec3{Y: 1}))
	inv := m.Inverse()
	id := m.Mul(inv)
	want := Identity()
	for i := 0; i < 16; i++ {
		d := id[i] - want[i]
		if d < -0.001 || d > 0.001 {
			t.Fatalf("m * m^-1 element %d = %v, want %v", i, id[i], want[i])
		}
	}
}
