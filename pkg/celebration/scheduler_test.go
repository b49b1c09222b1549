package celebration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerFiresOnceWhenDue(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.After(0.5, func() { calls++ })

	s.Update(0.25)
	assert.Equal(t, 0, calls)

	s.Update(0.25)
	assert.Equal(t, 1, calls)

	s.Update(1)
	assert.Equal(t, 1, calls, "任务只能执行一次")
	assert.Equal(t, 0, s.Pending())
}

func TestSchedulerAbsorbsFrameRounding(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.After(0.5, func() { fired = true })

	tick(s, 0.5)

	assert.True(t, fired, "30 帧 1/60 秒应视为 0.5 秒")
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	fired := false
	id := s.After(0.1, func() { fired = true })

	require.True(t, s.Cancel(id))
	require.False(t, s.Cancel(id), "重复取消返回 false")
	require.False(t, s.Cancel(0))

	s.Update(1)
	assert.False(t, fired)
}

func TestSchedulerOrdering(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.After(0.3, func() { order = append(order, "c") })
	s.After(0.1, func() { order = append(order, "a") })
	s.After(0.1, func() { order = append(order, "b") })

	s.Update(1)

	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestSchedulerCallbackCanCancelSiblingInSameTick(t *testing.T) {
	s := NewScheduler()
	var second TaskID
	secondFired := false
	s.After(0.1, func() { s.Cancel(second) })
	second = s.After(0.2, func() { secondFired = true })

	s.Update(1)

	assert.False(t, secondFired)
}

func TestSchedulerTasksCreatedInCallbackWaitForNextUpdate(t *testing.T) {
	s := NewScheduler()
	inner := 0
	s.After(0, func() {
		s.After(0, func() { inner++ })
	})

	s.Update(0)
	assert.Equal(t, 0, inner)
	assert.Equal(t, 1, s.Pending())

	s.Update(0)
	assert.Equal(t, 1, inner)
}

func TestSchedulerIgnoresNilAndNegative(t *testing.T) {
	s := NewScheduler()
	assert.Equal(t, TaskID(0), s.After(1, nil))

	fired := false
	s.After(-5, func() { fired = true })
	s.Update(0)
	assert.True(t, fired)

	s.Update(-1)
	assert.InDelta(t, 0, s.Now(), 1e-12, "负 dt 不能让时间倒退")
}

func TestSchedulerCancelAll(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.After(0.1, func() { fired++ })
	s.After(0.2, func() { fired++ })

	s.CancelAll()
	s.Update(1)

	assert.Equal(t, 0, fired)
	assert.Equal(t, 0, s.Pending())
}

func TestLatch(t *testing.T) {
	var l Latch
	assert.False(t, l.Tripped())
	assert.True(t, l.Trip())
	assert.False(t, l.Trip())
	assert.True(t, l.Tripped())
}
