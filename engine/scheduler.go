package engine

import (
	"container/heap"
	"time"
)

// TaskID identifies a scheduled task for cancellation
type TaskID uint64

type task struct {
	id    TaskID
	due   time.Duration
	seq   uint64
	fn    func()
	index int // Heap slot, -1 for end-of-frame tasks
}

// taskHeap orders by due time, then insertion order
type taskHeap []*task

func (h taskHeap) Len() int { return len(h) }
func (h taskHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].seq < h[j].seq
}
func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *taskHeap) Push(x any) {
	t := x.(*task)
	t.index = len(*h)
	*h = append(*h, t)
}
func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	t.index = -1
	return t
}

// Scheduler is a deterministic per-tick task scheduler driven by explicit game time
// Replaces engine-timed suspensions: After() for "wait N seconds", AtEndOfFrame() for "wait one frame"
// Not safe for concurrent use; owned by the game loop
type Scheduler struct {
	now  time.Duration
	tick uint64
	seq  uint64

	timed    taskHeap
	endFrame []*task
	byID     map[TaskID]*task
}

// NewScheduler creates a scheduler at game time zero
func NewScheduler() *Scheduler {
	return &Scheduler{
		byID: make(map[TaskID]*task),
	}
}

// Now returns elapsed game time
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Tick returns the number of Advance calls so far
func (s *Scheduler) Tick() uint64 {
	return s.tick
}

func (s *Scheduler) newTask(due time.Duration, fn func()) *task {
	s.seq++
	t := &task{id: TaskID(s.seq), due: due, seq: s.seq, fn: fn, index: -1}
	s.byID[t.id] = t
	return t
}

// After schedules fn to run once game time has advanced by d
// Non-positive d runs on the next RunDue
func (s *Scheduler) After(d time.Duration, fn func()) TaskID {
	if d < 0 {
		d = 0
	}
	t := s.newTask(s.now+d, fn)
	heap.Push(&s.timed, t)
	return t.id
}

// AtEndOfFrame schedules fn for the next FlushEndOfFrame
func (s *Scheduler) AtEndOfFrame(fn func()) TaskID {
	t := s.newTask(s.now, fn)
	s.endFrame = append(s.endFrame, t)
	return t.id
}

// Cancel removes a pending task, returns false if it already ran or is unknown
func (s *Scheduler) Cancel(id TaskID) bool {
	t, ok := s.byID[id]
	if !ok {
		return false
	}
	delete(s.byID, id)
	if t.index >= 0 {
		heap.Remove(&s.timed, t.index)
	}
	t.fn = nil
	return true
}

// Advance moves game time forward by one frame
func (s *Scheduler) Advance(dt time.Duration) {
	if dt > 0 {
		s.now += dt
	}
	s.tick++
}

// RunDue runs every timed task whose due time has been reached
// Tasks scheduled by running tasks with a due time inside the window also run
func (s *Scheduler) RunDue() int {
	ran := 0
	for len(s.timed) > 0 && s.timed[0].due <= s.now {
		t := heap.Pop(&s.timed).(*task)
		delete(s.byID, t.id)
		if t.fn != nil {
			t.fn()
			ran++
		}
	}
	return ran
}

// FlushEndOfFrame runs end-of-frame tasks queued before the call
// Tasks queued during the flush wait for the next frame
func (s *Scheduler) FlushEndOfFrame() int {
	pending := s.endFrame
	s.endFrame = nil

	ran := 0
	for _, t := range pending {
		if t.fn == nil {
			continue
		}
		delete(s.byID, t.id)
		t.fn()
		ran++
	}
	return ran
}

// Pending returns the number of tasks still waiting to run
func (s *Scheduler) Pending() int {
	return len(s.byID)
}
