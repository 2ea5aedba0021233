package event

// EventType represents the type of game event
type EventType int

const (
	// EventTick is reserved for the frame tick, never queued
	EventTick EventType = iota

	// EventCollisionEnter signals first solid contact between a body and a volume
	// Trigger: physics.Simulation on overlap start
	// Consumer: BoardContactSystem, GroundContactSystem | Payload: *physics.Contact
	EventCollisionEnter

	// EventTriggerEnter signals a body entering a trigger volume
	// Trigger: physics.Simulation on overlap start
	// Consumer: HoleScoringSystem | Payload: *physics.Contact
	EventTriggerEnter

	// EventBallThrown signals the launch impulse was applied
	// Trigger: ThrowSystem deferred launch
	// Consumer: SoundSystem | Payload: *BallThrownPayload
	EventBallThrown

	// EventBallReset signals a new throw cycle
	// Trigger: ThrowSystem.ResetBall | Payload: nil
	EventBallReset

	// EventScoreChanged signals a payout or penalty
	// Trigger: contact systems
	// Consumer: ScoreBoardSystem (outcome label), SoundSystem | Payload: *ScoreChangedPayload
	EventScoreChanged

	// EventSoundRequest requests audio playback
	// Trigger: Systems requiring audio feedback
	// Consumer: SoundSystem | Payload: *SoundRequestPayload
	EventSoundRequest
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   uint64 // Scheduler tick the event was pushed on
}
