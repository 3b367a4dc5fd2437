package vmath

import (
	"math"
	"testing"
)

func TestV3Toward_GeometricConvergence(t *testing.T) {
	pos := Vec3{X: 100, Y: -50, Z: 25}
	target := Vec3{X: 3, Y: 7, Z: -2}
	initial := V3Dist(pos, target)

	for k := 1; k <= 200; k++ {
		pos = V3Toward(pos, target, 0.08)
		expected := initial * math.Pow(0.92, float64(k))
		got := V3Dist(pos, target)
		if math.Abs(got-expected) > 1e-9*initial {
			t.Fatalf("after %d calls: distance %g, expected %g", k, got, expected)
		}
	}

	if V3Dist(pos, target) > initial*1e-7 {
		t.Errorf("expected convergence toward target, remaining distance %g", V3Dist(pos, target))
	}
}

func TestV3Toward_NeverOvershoots(t *testing.T) {
	pos := Vec3{X: 10}
	target := Vec3{}
	for i := 0; i < 1000; i++ {
		pos = V3Toward(pos, target, 0.08)
		if pos.X < 0 {
			t.Fatalf("overshot target at iteration %d: %v", i, pos)
		}
	}
}

func TestV3Scale(t *testing.T) {
	got := V3Scale(Vec3{X: 3, Y: -4, Z: 12}, 2.5)
	want := Vec3{X: 7.5, Y: -10, Z: 30}
	if got != want {
		t.Errorf("V3Scale = %v, want %v", got, want)
	}
	if V3Scale(Vec3{X: 1, Y: 1, Z: 1}, 0) != (Vec3{}) {
		t.Error("scaling by zero should yield the zero vector")
	}
}

func TestEDamp_LeavesYaw(t *testing.T) {
	e := Euler{Pitch: 1.0, Yaw: 2.5, Roll: -0.75}
	d := EDamp(e, 0.92)
	if d.Yaw != e.Yaw {
		t.Errorf("yaw must be untouched, got %g", d.Yaw)
	}
	if d.Pitch != e.Pitch*0.92 || d.Roll != e.Roll*0.92 {
		t.Errorf("expected pitch/roll damped by 0.92, got %+v", d)
	}
}

func TestRotate_YawQuarterTurn(t *testing.T) {
	v := Rotate(Vec3{X: 1}, Euler{Yaw: math.Pi / 2})
	if math.Abs(v.X) > 1e-12 || math.Abs(v.Z+1) > 1e-12 {
		t.Errorf("quarter yaw of +X should land near -Z, got %v", v)
	}
}

func TestRotate_Identity(t *testing.T) {
	v := Vec3{X: 1.5, Y: -2, Z: 0.25}
	if got := Rotate(v, Euler{}); got != v {
		t.Errorf("identity rotation changed vector: %v -> %v", v, got)
	}
}
