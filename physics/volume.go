package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// VolumeKind selects collision response
type VolumeKind uint8

const (
	// VolumeSolid blocks bodies and reports collision-enter
	VolumeSolid VolumeKind = iota
	// VolumeTrigger lets bodies pass and reports trigger-enter
	VolumeTrigger
)

// VolumeID identifies a volume within its simulation
type VolumeID uint32

// Cutout is a vertical circular opening through a solid volume
type Cutout struct {
	CenterX, CenterZ float64
	Radius           float64
}

// Volume is an axis-aligned box collider
type Volume struct {
	ID   VolumeID
	Name string
	Kind VolumeKind

	Min, Max mgl64.Vec3
	Cutout   *Cutout

	Restitution float64
	Friction    float64
}

// NewSolid creates a solid box volume
func NewSolid(name string, min, max mgl64.Vec3, restitution, friction float64) *Volume {
	return &Volume{
		Name:        name,
		Kind:        VolumeSolid,
		Min:         min,
		Max:         max,
		Restitution: restitution,
		Friction:    friction,
	}
}

// NewTrigger creates a trigger box volume
func NewTrigger(name string, min, max mgl64.Vec3) *Volume {
	return &Volume{
		Name: name,
		Kind: VolumeTrigger,
		Min:  min,
		Max:  max,
	}
}

// ClosestPoint clamps p into the box
func (v *Volume) ClosestPoint(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		math.Max(v.Min.X(), math.Min(v.Max.X(), p.X())),
		math.Max(v.Min.Y(), math.Min(v.Max.Y(), p.Y())),
		math.Max(v.Min.Z(), math.Min(v.Max.Z(), p.Z())),
	}
}

// InCutout reports whether p lies inside the vertical opening
func (v *Volume) InCutout(p mgl64.Vec3) bool {
	if v.Cutout == nil {
		return false
	}
	dx := p.X() - v.Cutout.CenterX
	dz := p.Z() - v.Cutout.CenterZ
	return dx*dx+dz*dz < v.Cutout.Radius*v.Cutout.Radius
}

// InShaft reports whether a sphere at center has dropped into the opening below the top face
func (v *Volume) InShaft(center mgl64.Vec3, radius float64) bool {
	if v.Cutout == nil || center.Y() >= v.Max.Y() || center.Y() <= v.Min.Y() {
		return false
	}
	dx := center.X() - v.Cutout.CenterX
	dz := center.Z() - v.Cutout.CenterZ
	reach := v.Cutout.Radius + radius
	return dx*dx+dz*dz < reach*reach
}

// RimContact returns the inward wall normal and penetration depth of a sphere in the opening
// Depth is negative while the sphere is clear of the wall
func (v *Volume) RimContact(center mgl64.Vec3, radius float64) (mgl64.Vec3, float64) {
	dx := center.X() - v.Cutout.CenterX
	dz := center.Z() - v.Cutout.CenterZ
	inner := v.Cutout.Radius - radius
	rh := math.Hypot(dx, dz)
	if rh == 0 {
		return mgl64.Vec3{}, -inner
	}
	return mgl64.Vec3{-dx / rh, 0, -dz / rh}, rh - inner
}

// Overlaps tests a sphere against the box, skin widens the contact band
// A sphere over or down in the opening does not touch the box faces
func (v *Volume) Overlaps(center mgl64.Vec3, radius, skin float64) bool {
	if v.InCutout(center) || v.InShaft(center, radius) {
		return false
	}
	d := center.Sub(v.ClosestPoint(center))
	r := radius + skin
	return d.Dot(d) <= r*r
}
