package scheduler

import (
	"container/heap"
	"time"
)

// Timer is a callback scheduled on a Scheduler.
type Timer struct {
	due   time.Time
	seq   uint64
	fn    func()
	index int
	s     *Scheduler
}

// Stop cancels the timer. It returns false if the timer already fired or was stopped.
func (t *Timer) Stop() bool {
	if t == nil || t.index < 0 {
		return false
	}
	heap.Remove(&t.s.timers, t.index)
	return true
}

// Pending reports whether the timer is still waiting to fire.
func (t *Timer) Pending() bool {
	return t != nil && t.index >= 0
}

// Scheduler runs callbacks at or after their due time, one at a time, on the
// goroutine that calls RunPending. It is not safe for concurrent use.
type Scheduler struct {
	clock   Clock
	timers  timerHeap
	seq     uint64
	now     time.Time
	running bool
	// runAt is the clock time of the RunPending call in progress.
	runAt  time.Time
	maxLag time.Duration
}

func New(clock Clock) *Scheduler {
	if clock == nil {
		clock = RealClock{}
	}
	return &Scheduler{
		clock: clock,
		now:   clock.Now(),
	}
}

// Now returns the scheduler's notion of the current time. Inside a callback
// this is the callback's due time.
func (s *Scheduler) Now() time.Time {
	if s.running {
		return s.now
	}
	return s.clock.Now()
}

// SetMaxLag bounds how far behind the clock a callback may be when it
// schedules follow-up timers. A callback running later than that anchors
// them to the clock instead of its own due time, so a stalled host fires
// one timer per chain on the next RunPending rather than every missed one.
// Zero, the default, means no bound.
func (s *Scheduler) SetMaxLag(d time.Duration) {
	s.maxLag = d
}

// After schedules fn to run d after Now. Timers created from inside a
// callback are relative to that callback's due time, which keeps chained
// timers on a fixed cadence regardless of how late RunPending is called.
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	base := s.Now()
	if s.running && s.maxLag > 0 && s.runAt.Sub(base) > s.maxLag {
		base = s.runAt
	}

	s.seq++
	t := &Timer{
		due: base.Add(d),
		seq: s.seq,
		fn:  fn,
		s:   s,
	}
	heap.Push(&s.timers, t)
	return t
}

// RunPending fires every timer that is due at the clock's current time, in
// due order, and returns how many fired.
func (s *Scheduler) RunPending() int {
	now := s.clock.Now()
	s.runAt = now
	s.running = true
	defer func() {
		s.running = false
		s.now = now
	}()

	fired := 0
	for len(s.timers) > 0 && !s.timers[0].due.After(now) {
		t := heap.Pop(&s.timers).(*Timer)
		s.now = t.due
		t.fn()
		fired++
	}
	return fired
}

// Pending returns the number of timers waiting to fire.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

type timerHeap []*Timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].due.Equal(h[j].due) {
		return h[i].seq < h[j].seq
	}
	return h[i].due.Before(h[j].due)
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x interface{}) {
	t := x.(*Timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
