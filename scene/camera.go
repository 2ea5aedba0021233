package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/cornhole/vmath"
)

// Pose is a position and orientation pair
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// Camera is a perspective camera; screen origin is bottom-left in pixels
type Camera struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	FOV      float64 // Vertical field of view, degrees
	NearClip float64

	width, height float64
}

// NewCamera creates a camera at position pitched down by pitch degrees
func NewCamera(position mgl64.Vec3, pitch, fov, near float64) *Camera {
	return &Camera{
		Position: position,
		Rotation: vmath.AngleAxis(pitch, mgl64.Vec3{1, 0, 0}),
		FOV:      fov,
		NearClip: near,
		width:    1,
		height:   1,
	}
}

// SetViewport sets the screen size in pixels
func (c *Camera) SetViewport(width, height float64) {
	if width > 0 {
		c.width = width
	}
	if height > 0 {
		c.height = height
	}
}

// Viewport returns the screen size in pixels
func (c *Camera) Viewport() (float64, float64) {
	return c.width, c.height
}

func (c *Camera) Forward() mgl64.Vec3 { return c.Rotation.Rotate(mgl64.Vec3{0, 0, 1}) }
func (c *Camera) Right() mgl64.Vec3   { return c.Rotation.Rotate(mgl64.Vec3{1, 0, 0}) }
func (c *Camera) Up() mgl64.Vec3      { return c.Rotation.Rotate(mgl64.Vec3{0, 1, 0}) }

// ScreenToWorld projects a screen point to the plane depth meters along forward
func (c *Camera) ScreenToWorld(screen mgl64.Vec2, depth float64) mgl64.Vec3 {
	ndcX := 2*screen.X()/c.width - 1
	ndcY := 2*screen.Y()/c.height - 1

	tanHalf := math.Tan(mgl64.DegToRad(c.FOV) / 2)
	aspect := c.width / c.height

	offsetRight := ndcX * tanHalf * aspect * depth
	offsetUp := ndcY * tanHalf * depth

	return c.Position.
		Add(c.Forward().Mul(depth)).
		Add(c.Right().Mul(offsetRight)).
		Add(c.Up().Mul(offsetUp))
}

// WorldToScreen projects p to screen pixels and its depth along forward
// Returns false for points at or behind the near plane
func (c *Camera) WorldToScreen(p mgl64.Vec3) (mgl64.Vec2, float64, bool) {
	rel := p.Sub(c.Position)
	depth := rel.Dot(c.Forward())
	if depth < c.NearClip {
		return mgl64.Vec2{}, depth, false
	}

	tanHalf := math.Tan(mgl64.DegToRad(c.FOV) / 2)
	aspect := c.width / c.height

	ndcX := rel.Dot(c.Right()) / (depth * tanHalf * aspect)
	ndcY := rel.Dot(c.Up()) / (depth * tanHalf)

	return mgl64.Vec2{(ndcX + 1) / 2 * c.width, (ndcY + 1) / 2 * c.height}, depth, true
}

// Ray returns the unit direction from the camera through a screen point
func (c *Camera) Ray(screen mgl64.Vec2) mgl64.Vec3 {
	return vmath.V3Normalize(c.ScreenToWorld(screen, 1).Sub(c.Position))
}
