package physics

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/cornhole/event"
	"github.com/lixenwraith/cornhole/parameter"
)

// Contact is the payload of collision-enter and trigger-enter events
type Contact struct {
	Volume *Volume
	Body   *Body
}

// IsProjectile reports whether the touching body is the thrown ball
func (c *Contact) IsProjectile() bool {
	return c != nil && c.Body != nil && c.Body.IsProjectile()
}

type pairKey struct {
	body   BodyID
	volume VolumeID
}

// Simulation steps sphere bodies against box volumes and reports enter edges
// Frames are split into fixed substeps; within a substep enters follow volume registration order
type Simulation struct {
	Gravity mgl64.Vec3

	queue *event.EventQueue
	frame func() uint64

	bodies   []*Body
	volumes  []*Volume
	touching map[pairKey]bool

	nextBody   BodyID
	nextVolume VolumeID
}

// NewSimulation creates a simulation that reports contacts on queue
func NewSimulation(queue *event.EventQueue, gravity float64) *Simulation {
	return &Simulation{
		Gravity:  mgl64.Vec3{0, gravity, 0},
		queue:    queue,
		touching: make(map[pairKey]bool),
	}
}

// SetFrameSource stamps pushed events with the caller's frame counter
func (s *Simulation) SetFrameSource(fn func() uint64) {
	s.frame = fn
}

// AddBody registers a body and assigns its ID
func (s *Simulation) AddBody(b *Body) *Body {
	s.nextBody++
	b.ID = s.nextBody
	s.bodies = append(s.bodies, b)
	return b
}

// AddVolume registers a volume and assigns its ID
func (s *Simulation) AddVolume(v *Volume) *Volume {
	s.nextVolume++
	v.ID = s.nextVolume
	s.volumes = append(s.volumes, v)
	return v
}

// Volumes returns registered volumes in registration order
func (s *Simulation) Volumes() []*Volume {
	return s.volumes
}

// ForgetContacts clears overlap memory for b so the next touch reports enter again
func (s *Simulation) ForgetContacts(b *Body) {
	for key := range s.touching {
		if key.body == b.ID {
			delete(s.touching, key)
		}
	}
}

// Touching reports whether b currently overlaps v
func (s *Simulation) Touching(b *Body, v *Volume) bool {
	return s.touching[pairKey{b.ID, v.ID}]
}

// Step advances all bodies by dt in substeps of at most parameter.PhysicsSubstep
func (s *Simulation) Step(dt time.Duration) {
	for dt > 0 {
		h := min(dt, parameter.PhysicsSubstep)
		s.substep(h.Seconds())
		dt -= h
	}
}

func (s *Simulation) substep(sec float64) {
	for _, b := range s.bodies {
		s.integrate(b, sec)

		grounded := false
		for _, v := range s.volumes {
			over := false
			switch {
			case v.Kind == VolumeTrigger:
				over = v.Overlaps(b.Position, b.Radius, 0)
			case v.InShaft(b.Position, b.Radius):
				// The opening wall deflects without counting as a face contact
				s.resolveRim(b, v)
			default:
				over = v.Overlaps(b.Position, b.Radius, parameter.ContactSkin)
				if over && s.resolve(b, v) {
					grounded = true
				}
			}

			key := pairKey{b.ID, v.ID}
			if over && !s.touching[key] {
				s.emitEnter(b, v)
			}
			s.touching[key] = over
		}

		if grounded && b.Speed() < parameter.SleepSpeed {
			b.Velocity = mgl64.Vec3{}
			b.AngularVelocity = mgl64.Vec3{}
		}
	}
}

func (s *Simulation) integrate(b *Body, sec float64) {
	if b.UseGravity {
		b.Velocity = b.Velocity.Add(s.Gravity.Mul(sec))
	}
	b.Position = b.Position.Add(b.Velocity.Mul(sec))

	// q' = q + 0.5 * (0, w) * q * dt
	if b.AngularVelocity.Len() > 0 {
		spin := mgl64.Quat{W: 0, V: b.AngularVelocity}
		b.Rotation = b.Rotation.Add(spin.Mul(b.Rotation).Scale(0.5 * sec)).Normalize()
	}
}

// resolve pushes the sphere out of v and applies restitution and friction
// Friction is an impulse bounded by the normal speed removed, so a resting ball decelerates at Friction*g
// Returns true when the contact normal points up (resting support)
func (s *Simulation) resolve(b *Body, v *Volume) bool {
	closest := v.ClosestPoint(b.Position)
	d := b.Position.Sub(closest)
	dist := d.Len()

	var normal mgl64.Vec3
	var penetration float64
	if dist > 0 {
		normal = d.Mul(1.0 / dist)
		penetration = b.Radius - dist
	} else {
		normal, penetration = exitAxis(b.Position, v)
		penetration += b.Radius
	}
	if penetration > 0 {
		b.Position = b.Position.Add(normal.Mul(penetration))
	}

	vn := b.Velocity.Dot(normal)
	if vn < 0 {
		bounce := -vn * v.Restitution
		if bounce < restBounce {
			bounce = 0
		}
		tangent := b.Velocity.Sub(normal.Mul(vn))
		if ts := tangent.Len(); ts > 0 {
			cut := math.Min(ts, v.Friction*(bounce-vn))
			tangent = tangent.Mul((ts - cut) / ts)
			// Roll without slipping
			if b.Radius > 0 {
				b.AngularVelocity = normal.Cross(tangent).Mul(1.0 / b.Radius)
			}
		}
		b.Velocity = tangent.Add(normal.Mul(bounce))
	}

	return normal.Y() > 0.5
}

// resolveRim keeps a sphere inside the opening wall and reflects its radial velocity
func (s *Simulation) resolveRim(b *Body, v *Volume) {
	normal, depth := v.RimContact(b.Position, b.Radius)
	if depth <= 0 {
		return
	}
	b.Position = b.Position.Add(normal.Mul(depth))
	if vn := b.Velocity.Dot(normal); vn < 0 {
		b.Velocity = b.Velocity.Sub(normal.Mul(vn * (1 + v.Restitution)))
	}
}

// restBounce is the smallest rebound speed kept after restitution
const restBounce = 0.2

// exitAxis finds the shallowest face for a center already inside the box
func exitAxis(p mgl64.Vec3, v *Volume) (mgl64.Vec3, float64) {
	best := math.Inf(1)
	var normal mgl64.Vec3
	for axis := 0; axis < 3; axis++ {
		if d := v.Max[axis] - p[axis]; d < best {
			best = d
			normal = mgl64.Vec3{}
			normal[axis] = 1
		}
		if d := p[axis] - v.Min[axis]; d < best {
			best = d
			normal = mgl64.Vec3{}
			normal[axis] = -1
		}
	}
	return normal, best
}

func (s *Simulation) emitEnter(b *Body, v *Volume) {
	if s.queue == nil {
		return
	}
	et := event.EventCollisionEnter
	if v.Kind == VolumeTrigger {
		et = event.EventTriggerEnter
	}
	var frame uint64
	if s.frame != nil {
		frame = s.frame()
	}
	s.queue.Push(event.GameEvent{
		Type:    et,
		Payload: &Contact{Volume: v, Body: b},
		Frame:   frame,
	})
}
