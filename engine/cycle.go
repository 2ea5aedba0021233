package engine

import "log"

// Contact identifies one of the per-cycle contact latches
type Contact uint8

const (
	ContactBoard Contact = iota
	ContactGround
	ContactHole
	contactCount
)

func (c Contact) String() string {
	switch c {
	case ContactBoard:
		return "board"
	case ContactGround:
		return "ground"
	case ContactHole:
		return "hole"
	default:
		return "unknown"
	}
}

// ScoreState holds running totals, kept across cycles
type ScoreState struct {
	Score int
	Coins int
}

// ContactFlags records which surfaces the ball touched this cycle
type ContactFlags struct {
	Board  bool
	Ground bool
	Hole   bool
}

// Cycle is the per-throw-cycle context shared by the throw and contact systems
// Owns contact latches and score; Reset starts a new cycle and invalidates outstanding stamps
type Cycle struct {
	generation uint64
	flags      [contactCount]bool
	score      ScoreState
}

// NewCycle creates the first cycle with zero score
func NewCycle() *Cycle {
	return &Cycle{generation: 1}
}

// Generation returns the current cycle identifier
func (c *Cycle) Generation() uint64 {
	return c.generation
}

// Touched reports whether contact already latched this cycle
func (c *Cycle) Touched(contact Contact) bool {
	return c.flags[contact]
}

// Latch sets the flag, returns true only on the false->true transition
func (c *Cycle) Latch(contact Contact) bool {
	if c.flags[contact] {
		return false
	}
	c.flags[contact] = true
	return true
}

// Flags returns a snapshot of the contact latches
func (c *Cycle) Flags() ContactFlags {
	return ContactFlags{
		Board:  c.flags[ContactBoard],
		Ground: c.flags[ContactGround],
		Hole:   c.flags[ContactHole],
	}
}

// Score returns current totals
func (c *Cycle) Score() ScoreState {
	return c.score
}

// Award applies a delta to the totals, no clamping
func (c *Cycle) Award(score, coins int) ScoreState {
	c.score.Score += score
	c.score.Coins += coins
	return c.score
}

// Reset clears all contact latches and advances the generation
func (c *Cycle) Reset() {
	c.flags = [contactCount]bool{}
	c.generation++
}

// Stamp captures the current generation for deferred work
func (c *Cycle) Stamp() Stamp {
	return Stamp{cycle: c, generation: c.generation}
}

// Stamp binds deferred work to the cycle it was scheduled in
type Stamp struct {
	cycle      *Cycle
	generation uint64
}

// Current reports whether the stamped cycle is still live
func (s Stamp) Current() bool {
	return s.cycle != nil && s.cycle.generation == s.generation
}

// Guard wraps fn so it becomes a no-op once the cycle has been reset
func (s Stamp) Guard(name string, fn func()) func() {
	return func() {
		if !s.Current() {
			log.Printf("Dropped stale %s from cycle %d", name, s.generation)
			return
		}
		fn()
	}
}
