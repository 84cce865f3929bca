// Package tasks is a cooperative scheduler for delayed world mutations. A task is a
// flat list of steps, each either a side effect or a wait. Waits only ever end on a
// later Update, so a tick never sees half of a transition.
package tasks

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Step is one element of a task body.
type Step struct {
	wait time.Duration
	do   func()
}

// Do wraps a side effect.
func Do(fn func()) Step {
	return Step{do: fn}
}

// Wait suspends the task for d of game time. Non-positive waits do not suspend.
func Wait(d time.Duration) Step {
	return Step{wait: d}
}

// Handle identifies a scheduled task. The zero Handle is never pending.
type Handle uint64

type task struct {
	id    Handle
	steps []Step
	next  int
	timer *gween.Tween
	done  bool
}

// Scheduler owns the pending tasks of one world. It is not safe for concurrent use.
type Scheduler struct {
	now     time.Duration
	nextID  Handle
	pending []*task
	byID    map[Handle]*task
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		byID: make(map[Handle]*task),
	}
}

// Now returns the game time accumulated through Update.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Run starts a task. Leading side effects run before Run returns, up to the first wait.
func (s *Scheduler) Run(steps ...Step) Handle {
	s.nextID++
	t := &task{id: s.nextID, steps: steps}
	s.advance(t)
	if !t.done {
		s.pending = append(s.pending, t)
		s.byID[t.id] = t
	}
	return t.id
}

// Cancel stops a task before its next step. Cancelling a finished or unknown task is a no-op.
func (s *Scheduler) Cancel(h Handle) {
	t, ok := s.byID[h]
	if !ok {
		return
	}
	t.done = true
	delete(s.byID, h)
}

// Pending reports whether the task still has steps left to run.
func (s *Scheduler) Pending(h Handle) bool {
	_, ok := s.byID[h]
	return ok
}

// Len returns the number of pending tasks.
func (s *Scheduler) Len() int {
	return len(s.byID)
}

// Update advances game time by dt and resumes every task whose wait has elapsed.
// Tasks started during Update are first resumed on the next call.
func (s *Scheduler) Update(dt time.Duration) {
	s.now += dt
	ms := float32(dt) / float32(time.Millisecond)

	current := s.pending
	s.pending = nil
	for _, t := range current {
		if t.done {
			continue
		}
		if _, finished := t.timer.Update(ms); finished {
			t.timer = nil
			s.advance(t)
		}
	}

	kept := current[:0]
	for _, t := range current {
		if !t.done {
			kept = append(kept, t)
		}
	}
	s.pending = append(kept, s.pending...)
}

// advance runs steps until the task suspends, finishes or is cancelled by one of its
// own side effects.
func (s *Scheduler) advance(t *task) {
	for t.next < len(t.steps) && !t.done {
		step := t.steps[t.next]
		t.next++
		if step.do != nil {
			step.do()
			continue
		}
		if step.wait > 0 {
			d := float32(step.wait) / float32(time.Millisecond)
			t.timer = gween.New(0, d, d, ease.Linear)
			return
		}
	}
	if !t.done {
		t.done = true
		delete(s.byID, t.id)
	}
}
