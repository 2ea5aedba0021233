package vmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestV3NormalizeZero(t *testing.T) {
	if got := V3Normalize(mgl64.Vec3{}); got != (mgl64.Vec3{}) {
		t.Errorf("V3Normalize(0) = %v, want zero", got)
	}
	got := V3Normalize(mgl64.Vec3{3, 0, 4})
	if math.Abs(got.Len()-1) > 1e-9 {
		t.Errorf("len = %f, want 1", got.Len())
	}
}

func TestV3LerpClamps(t *testing.T) {
	a := mgl64.Vec3{0, 0, 0}
	b := mgl64.Vec3{10, 0, 0}

	tests := []struct {
		t    float64
		want float64
	}{
		{-1, 0},
		{0.25, 2.5},
		{1, 10},
		{3, 10},
	}
	for _, tt := range tests {
		if got := V3Lerp(a, b, tt.t).X(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("V3Lerp t=%v X = %f, want %f", tt.t, got, tt.want)
		}
	}
}

func TestAngleAxisYaw(t *testing.T) {
	// Positive yaw about up turns +Z toward +X
	v := AngleAxis(90, Up).Rotate(mgl64.Vec3{0, 0, 1})
	if !v.ApproxEqualThreshold(mgl64.Vec3{1, 0, 0}, 1e-9) {
		t.Errorf("yaw 90 = %v, want (1,0,0)", v)
	}
}

func TestAngleAxisPitchUp(t *testing.T) {
	// Negative rotation about +X lifts +Z upward
	v := AngleAxis(-30, mgl64.Vec3{1, 0, 0}).Rotate(mgl64.Vec3{0, 0, 1})
	if math.Abs(v.Y()-0.5) > 1e-9 {
		t.Errorf("pitch -30 Y = %f, want 0.5", v.Y())
	}
}
