// Package anim provides the per-frame tick source shared by the hero effects.
//
// Everything runs on the caller's goroutine: the host calls Tick once per frame
// and each scheduled task gets one Step. A task that is cancelled, even from
// inside another task's Step during the same Tick, never runs again.
package anim

// TaskID identifies a scheduled task. The zero value is never issued.
type TaskID uint64

// Task is a unit of frame-driven work. Step returns false when the task is
// finished and should be dropped.
type Task interface {
	Step(dt float64) bool
}

// TaskFunc adapts a function to Task
type TaskFunc func(dt float64) bool

func (f TaskFunc) Step(dt float64) bool { return f(dt) }

type scheduled struct {
	id   TaskID
	task Task
	live bool
}

// Scheduler runs tasks in the order they were scheduled
type Scheduler struct {
	tasks []*scheduled
	index map[TaskID]*scheduled
	next  TaskID
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{index: make(map[TaskID]*scheduled)}
}

// Schedule registers t to run from the next Tick on
func (s *Scheduler) Schedule(t Task) TaskID {
	s.next++
	st := &scheduled{id: s.next, task: t, live: true}
	s.tasks = append(s.tasks, st)
	s.index[st.id] = st
	return st.id
}

// Cancel stops a task. It reports whether the task was still pending.
func (s *Scheduler) Cancel(id TaskID) bool {
	st, ok := s.index[id]
	if !ok {
		return false
	}
	st.live = false
	delete(s.index, id)
	return true
}

// Scheduled reports whether id is still pending
func (s *Scheduler) Scheduled(id TaskID) bool {
	_, ok := s.index[id]
	return ok
}

// Pending returns the number of live tasks
func (s *Scheduler) Pending() int {
	return len(s.index)
}

// Tick advances every live task by dt seconds. Tasks scheduled during the
// tick first run on the following one.
func (s *Scheduler) Tick(dt float64) {
	n := len(s.tasks)
	for i := 0; i < n; i++ {
		st := s.tasks[i]
		if !st.live {
			continue
		}
		if !st.task.Step(dt) && st.live {
			st.live = false
			delete(s.index, st.id)
		}
	}

	// Compact in place, keeping order
	kept := s.tasks[:0]
	for _, st := range s.tasks {
		if st.live {
			kept = append(kept, st)
		}
	}
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = kept
}

// Clear cancels every task
func (s *Scheduler) Clear() {
	for _, st := range s.tasks {
		st.live = false
	}
	s.tasks = nil
	s.index = make(map[TaskID]*scheduled)
}
