package fireworks

import (
	"sort"
	"time"
)

type task struct {
	due time.Duration
	seq uint64
	fn  func()
}

// Scheduler runs deferred callbacks on the loop goroutine. Callbacks become
// due at a point on the show clock and run from Run, in due order.
// It is not safe for concurrent use.
type Scheduler struct {
	now    time.Duration
	seq    uint64
	tasks  []task
	closed bool
}

// NewScheduler creates an empty scheduler at clock zero
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the clock value of the last Run
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run d after the current clock. Scheduled callbacks
// cannot be cancelled; after Close they are dropped.
func (s *Scheduler) After(d time.Duration, fn func()) {
	if s.closed || fn == nil {
		return
	}
	s.seq++
	s.tasks = append(s.tasks, task{due: s.now + d, seq: s.seq, fn: fn})
}

// Every runs fn repeatedly, waiting next() before each firing. The interval
// is drawn again for every firing.
func (s *Scheduler) Every(next func() time.Duration, fn func()) {
	var tick func()
	tick = func() {
		fn()
		s.After(next(), tick)
	}
	s.After(next(), tick)
}

// Run advances the clock to now and runs every callback due by then,
// including ones scheduled by callbacks that are themselves already due.
func (s *Scheduler) Run(now time.Duration) int {
	if now > s.now {
		s.now = now
	}
	ran := 0
	for !s.closed {
		due := s.popDue()
		if due == nil {
			break
		}
		due()
		ran++
	}
	return ran
}

func (s *Scheduler) popDue() func() {
	if len(s.tasks) == 0 {
		return nil
	}
	sort.Slice(s.tasks, func(i, j int) bool {
		if s.tasks[i].due != s.tasks[j].due {
			return s.tasks[i].due < s.tasks[j].due
		}
		return s.tasks[i].seq < s.tasks[j].seq
	})
	if s.tasks[0].due > s.now {
		return nil
	}
	fn := s.tasks[0].fn
	s.tasks = s.tasks[1:]
	return fn
}

// Pending returns the number of callbacks not yet run
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Close drops every pending callback and ignores future ones
func (s *Scheduler) Close() {
	s.closed = true
	s.tasks = nil
}
