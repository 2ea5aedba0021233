package physics

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Actor is anything a volume can report contact with
// Replaces tag comparison with a typed capability check
type Actor interface {
	IsProjectile() bool
}

// BodyID identifies a body within its simulation
type BodyID uint32

// Body is a rigid sphere driven by impulses and gravity
type Body struct {
	ID   BodyID
	Name string

	Position        mgl64.Vec3
	Rotation        mgl64.Quat
	Velocity        mgl64.Vec3 // m/s
	AngularVelocity mgl64.Vec3 // rad/s

	Mass       float64
	Radius     float64
	UseGravity bool

	projectile bool
}

// NewBall creates a throwable sphere at rest with gravity disabled
func NewBall(name string, mass, radius float64) *Body {
	return &Body{
		Name:       name,
		Rotation:   mgl64.QuatIdent(),
		Mass:       mass,
		Radius:     radius,
		projectile: true,
	}
}

// NewProp creates a non-throwable sphere, ignored by scoring volumes
func NewProp(name string, mass, radius float64) *Body {
	b := NewBall(name, mass, radius)
	b.projectile = false
	return b
}

// IsProjectile reports whether the body is the thrown ball
func (b *Body) IsProjectile() bool {
	return b.projectile
}

// ApplyImpulse adds an instantaneous momentum change: v += J/m
func (b *Body) ApplyImpulse(j mgl64.Vec3) {
	if b.Mass <= 0 {
		return
	}
	b.Velocity = b.Velocity.Add(j.Mul(1.0 / b.Mass))
}

// Rest places the body at pose with zero motion and gravity disabled
func (b *Body) Rest(position mgl64.Vec3, rotation mgl64.Quat) {
	b.Position = position
	b.Rotation = rotation
	b.Velocity = mgl64.Vec3{}
	b.AngularVelocity = mgl64.Vec3{}
	b.UseGravity = false
}

// Speed returns linear speed
func (b *Body) Speed() float64 {
	return b.Velocity.Len()
}
