package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	got := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})
	if want := (Vec3{0, 0, 1}); got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	l := Vec3{3, 4, 12}.Normalize().Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero vector should stay zero, got %v", got)
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(180); got < 3.14159 || got > 3.14160 {
		t.Errorf("Radians(180) = %v, want pi", got)
	}
}
