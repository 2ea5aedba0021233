package event

var typeToName = map[EventType]string{
	EventTick:           "Tick",
	EventCollisionEnter: "CollisionEnter",
	EventTriggerEnter:   "TriggerEnter",
	EventBallThrown:     "BallThrown",
	EventBallReset:      "BallReset",
	EventScoreChanged:   "ScoreChanged",
	EventSoundRequest:   "SoundRequest",
}

// String returns the registered name, used in debug logs
func (et EventType) String() string {
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "Unknown"
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	for et, n := range typeToName {
		if n == name {
			return et, true
		}
	}
	return 0, false
}
