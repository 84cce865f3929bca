package tasks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLeadingStepsRunImmediately(t *testing.T) {
	s := NewScheduler()
	var log []string

	h := s.Run(
		Do(func() { log = append(log, "first") }),
		Wait(0),
		Do(func() { log = append(log, "second") }),
		Wait(500*time.Millisecond),
		Do(func() { log = append(log, "third") }),
	)

	assert.Equal(t, []string{"first", "second"}, log)
	assert.True(t, s.Pending(h))

	s.Update(499 * time.Millisecond)
	assert.Equal(t, []string{"first", "second"}, log)

	s.Update(2 * time.Millisecond)
	assert.Equal(t, []string{"first", "second", "third"}, log)
	assert.False(t, s.Pending(h))
	assert.Zero(t, s.Len())
}

func TestTaskWithoutWaitsNeverPends(t *testing.T) {
	s := NewScheduler()
	ran := false
	h := s.Run(Do(func() { ran = true }))
	assert.True(t, ran)
	assert.False(t, s.Pending(h))
}

func TestCancelStopsFurtherSideEffects(t *testing.T) {
	s := NewScheduler()
	fired := 0
	h := s.Run(Wait(time.Second), Do(func() { fired++ }))

	s.Update(600 * time.Millisecond)
	s.Cancel(h)
	s.Update(time.Second)

	assert.Zero(t, fired)
	assert.False(t, s.Pending(h))

	// Cancelling again, or cancelling the zero handle, is harmless.
	s.Cancel(h)
	s.Cancel(Handle(0))
}

func TestTasksStartedDuringUpdateWaitForNextTick(t *testing.T) {
	s := NewScheduler()
	var order []int

	s.Run(
		Wait(100*time.Millisecond),
		Do(func() {
			order = append(order, 1)
			s.Run(Wait(100*time.Millisecond), Do(func() { order = append(order, 2) }))
		}),
	)

	s.Update(150 * time.Millisecond)
	assert.Equal(t, []int{1}, order)

	s.Update(50 * time.Millisecond)
	assert.Equal(t, []int{1}, order)

	s.Update(60 * time.Millisecond)
	assert.Equal(t, []int{1, 2}, order)
}

func TestSideEffectCanCancelAnotherTask(t *testing.T) {
	s := NewScheduler()
	victimRan := false

	victim := s.Run(Wait(200*time.Millisecond), Do(func() { victimRan = true }))
	s.Run(Wait(100*time.Millisecond), Do(func() { s.Cancel(victim) }))

	s.Update(150 * time.Millisecond)
	s.Update(100 * time.Millisecond)
	assert.False(t, victimRan)
}

func TestNowAccumulates(t *testing.T) {
	s := NewScheduler()
	s.Update(16 * time.Millisecond)
	s.Update(17 * time.Millisecond)
	assert.Equal(t, 33*time.Millisecond, s.Now())
}
