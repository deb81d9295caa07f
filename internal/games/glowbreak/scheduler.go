package glowbreak

import "sort"

// task is a deferred action due at a point on the session clock.
type task struct {
	at  float64 // Session time in ms
	seq uint64  // Tie-breaker keeping insertion order for equal times
	run func()
}

// Scheduler holds deferred actions polled once per playing tick.
// Dropping the scheduler (Clear) discards every pending action, so nothing
// scheduled for a torn-down level or session can ever run.
type Scheduler struct {
	tasks []task
	seq   uint64
}

// After schedules fn to run once the clock reaches now+delay.
func (s *Scheduler) After(now, delay float64, fn func()) {
	s.seq++
	s.tasks = append(s.tasks, task{at: now + delay, seq: s.seq, run: fn})
}

// Poll runs every task due at or before now, earliest first. Tasks scheduled
// by a running task with a due time <= now run in the same poll.
func (s *Scheduler) Poll(now float64) int {
	ran := 0
	for {
		due := -1
		for i, t := range s.tasks {
			if t.at > now {
				continue
			}
			if due < 0 || t.at < s.tasks[due].at || (t.at == s.tasks[due].at && t.seq < s.tasks[due].seq) {
				due = i
			}
		}
		if due < 0 {
			return ran
		}
		t := s.tasks[due]
		s.tasks = append(s.tasks[:due], s.tasks[due+1:]...)
		t.run()
		ran++
	}
}

// Pending returns the number of tasks not yet run.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Clear drops every pending task.
func (s *Scheduler) Clear() {
	s.tasks = s.tasks[:0]
}

// DueTimes returns the due times of pending tasks in ascending order.
func (s *Scheduler) DueTimes() []float64 {
	out := make([]float64, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.at
	}
	sort.Float64s(out)
	return out
}
