package input

import "github.com/go-gl/mathgl/mgl64"

// Phase is the lifecycle stage of a pointer contact
type Phase uint8

const (
	PhaseBegan Phase = iota
	PhaseMoved
	PhaseStationary
	PhaseEnded
	PhaseCanceled
)

func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "Began"
	case PhaseMoved:
		return "Moved"
	case PhaseStationary:
		return "Stationary"
	case PhaseEnded:
		return "Ended"
	case PhaseCanceled:
		return "Canceled"
	default:
		return "Unknown"
	}
}

// Released reports whether the phase ends a contact
func (p Phase) Released() bool {
	return p == PhaseEnded || p == PhaseCanceled
}

// PointerEvent is a single pointer sample in screen pixels, origin bottom-left
type PointerEvent struct {
	Phase Phase
	Pos   mgl64.Vec2
}

// Variant selects how a held pointer drives the ball
type Variant uint8

const (
	// VariantMouse drags the ball toward the pointer while held
	VariantMouse Variant = iota
	// VariantTouch leaves the ball in place until the flick is released
	VariantTouch
)

func (v Variant) String() string {
	if v == VariantTouch {
		return "touch"
	}
	return "mouse"
}

// ParseVariant maps a config name to a Variant, accepting exactly "mouse" and "touch"
func ParseVariant(name string) (Variant, bool) {
	switch name {
	case "mouse":
		return VariantMouse, true
	case "touch":
		return VariantTouch, true
	}
	return VariantMouse, false
}
