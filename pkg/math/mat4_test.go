package math

import (
	"testing"
)

const eps = 1e-5

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(Vec3{1, 2, 3})
	result := m.Mul(Identity())

	if result != m {
		t.Errorf("M * I should equal M: got %v, want %v", result, m)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(Vec3{5, 10, 15})

	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestScale(t *testing.T) {
	m := Scale(Vec3{2, 3, 4})

	if m[0] != 2 || m[5] != 3 || m[10] != 4 {
		t.Errorf("Scale diagonal: got (%f, %f, %f), want (2, 3, 4)", m[0], m[5], m[10])
	}
}

func TestTransformPoint(t *testing.T) {
	got := Translate(Vec3{10, 20, 30}).TransformPoint(Vec3{1, 2, 3})
	if want := (Vec3{11, 22, 33}); got != want {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}

	got = Scale(Splat(2)).TransformPoint(Vec3{1, 2, 3})
	if want := (Vec3{2, 4, 6}); got != want {
		t.Errorf("TransformPoint with scale: got %v, want %v", got, want)
	}
}

func TestRotations(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"x 90 maps Y to Z", RotateX(Radians(90)), Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"y 90 maps X to -Z", RotateY(Radians(90)), Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{"z 90 maps X to Y", RotateZ(Radians(90)), Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{"y 180 maps X to -X", RotateY(Radians(180)), Vec3{1, 0, 0}, Vec3{-1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformDirection(tt.in)
			if !got.ApproxEqual(tt.want, eps) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(Radians(45), 1, 0.1, 100)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestOrtho(t *testing.T) {
	m := Ortho(-10, 10, -8, 8, 0.1, 100)

	if m[0] != 0.1 {
		t.Errorf("Ortho [0] = %f, want 0.1", m[0])
	}
	if m[5] != 0.125 {
		t.Errorf("Ortho [5] = %f, want 0.125", m[5])
	}
	if m[15] != 1 {
		t.Errorf("Ortho [15] = %f, want 1", m[15])
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	m := LookAt(eye, Vec3{}, Vec3{0, 1, 0})

	// The eye lands on the origin of view space.
	if got := m.TransformPoint(eye); !got.ApproxEqual(Vec3{}, eps) {
		t.Errorf("LookAt eye: got %v, want origin", got)
	}
	// The target lies straight ahead on -Z.
	if got := m.TransformPoint(Vec3{}); !got.ApproxEqual(Vec3{0, 0, -5}, eps) {
		t.Errorf("LookAt target: got %v, want (0,0,-5)", got)
	}
}
