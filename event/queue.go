package event

import (
	"log"

	"github.com/lixenwraith/cornhole/parameter"
)

// EventQueue is a fixed ring of pending game events
// Owned by the game loop goroutine: physics, systems and scheduled tasks push, the router consumes
// Overflow overwrites the oldest pending event and counts it as dropped
type EventQueue struct {
	events  [parameter.EventQueueSize]GameEvent
	head    int // Oldest pending slot
	count   int
	dropped int
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends event, evicting the oldest pending one when full
func (eq *EventQueue) Push(event GameEvent) {
	if eq.count == parameter.EventQueueSize {
		log.Printf("Event queue full, dropping %s", eq.events[eq.head].Type)
		eq.head = (eq.head + 1) & parameter.EventBufferMask
		eq.count--
		eq.dropped++
	}
	eq.events[(eq.head+eq.count)&parameter.EventBufferMask] = event
	eq.count++
}

// Consume drains pending events in FIFO order, nil when empty
// The returned slice is owned by the caller; events pushed meanwhile wait for the next call
func (eq *EventQueue) Consume() []GameEvent {
	if eq.count == 0 {
		return nil
	}
	result := make([]GameEvent, eq.count)
	for i := range result {
		idx := (eq.head + i) & parameter.EventBufferMask
		result[i] = eq.events[idx]
		eq.events[idx] = GameEvent{}
	}
	eq.head = (eq.head + eq.count) & parameter.EventBufferMask
	eq.count = 0
	return result
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	return eq.count
}

// Dropped returns how many events were evicted by overflow
func (eq *EventQueue) Dropped() int {
	return eq.dropped
}
