package render

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/cornhole/physics"
)

// hitPlaneY intersects a ray with the horizontal plane at height y
func hitPlaneY(origin, dir mgl64.Vec3, y float64) (mgl64.Vec3, bool) {
	if dir.Y() >= 0 {
		return mgl64.Vec3{}, false
	}
	t := (y - origin.Y()) / dir.Y()
	if t <= 0 {
		return mgl64.Vec3{}, false
	}
	return origin.Add(dir.Mul(t)), true
}

// hitPlaneZ intersects a ray with the vertical plane at depth z
func hitPlaneZ(origin, dir mgl64.Vec3, z float64) (mgl64.Vec3, bool) {
	if dir.Z() <= 0 {
		return mgl64.Vec3{}, false
	}
	t := (z - origin.Z()) / dir.Z()
	if t <= 0 {
		return mgl64.Vec3{}, false
	}
	return origin.Add(dir.Mul(t)), true
}

func onBoardTop(p mgl64.Vec3, board *physics.Volume) bool {
	return p.X() >= board.Min.X() && p.X() <= board.Max.X() &&
		p.Z() >= board.Min.Z() && p.Z() <= board.Max.Z()
}

func onBoardFront(p mgl64.Vec3, board *physics.Volume) bool {
	return p.X() >= board.Min.X() && p.X() <= board.Max.X() &&
		p.Y() >= board.Min.Y() && p.Y() <= board.Max.Y()
}

func inCutout(p mgl64.Vec3, c *physics.Cutout) bool {
	if c == nil {
		return false
	}
	dx, dz := p.X()-c.CenterX, p.Z()-c.CenterZ
	return dx*dx+dz*dz <= c.Radius*c.Radius
}
