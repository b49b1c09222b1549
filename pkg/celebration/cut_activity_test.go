package celebration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCake() (*CutActivity, *Scheduler, *burstRecorder, *int) {
	s := NewScheduler()
	rec := &burstRecorder{}
	completions := 0
	a := NewCutActivity(s, rec, DefaultCutOptions(), func() { completions++ })
	return a, s, rec, &completions
}

func TestCutThreeSequentialCuts(t *testing.T) {
	a, s, rec, completions := newTestCake()

	for i := 1; i <= MaxSlices; i++ {
		require.True(t, a.Cut())
		assert.True(t, a.Cutting())
		tick(s, 0.5)
		assert.False(t, a.Cutting())
		assert.Equal(t, i, a.Slices())
	}

	assert.True(t, a.Completed())
	assert.Equal(t, 1, *completions)
	require.Len(t, rec.bursts, 1)
	assert.InDelta(t, 0.7, rec.bursts[0].OriginY, 1e-9)
	assert.InDelta(t, 240, a.KnifeX(), 1e-9)
}

func TestCutIgnoredWhileCutting(t *testing.T) {
	a, s, _, completions := newTestCake()

	a.Cut()
	tick(s, 0.5)

	require.True(t, a.Cut())
	tick(s, 0.2)
	assert.False(t, a.Cut(), "切割中再次点击被忽略")
	assert.Equal(t, 1, a.Slices(), "刀数不能提前增加")

	tick(s, 0.3)
	assert.Equal(t, 2, a.Slices())
	assert.Equal(t, 0, *completions)
}

func TestCutAfterCompletionIsNoOp(t *testing.T) {
	a, s, rec, completions := newTestCake()

	for i := 0; i < MaxSlices; i++ {
		a.Cut()
		tick(s, 0.5)
	}

	assert.False(t, a.Cut())
	tick(s, 1)
	assert.Equal(t, MaxSlices, a.Slices())
	assert.Equal(t, 0, a.Remaining())
	assert.Equal(t, 1, *completions)
	assert.Len(t, rec.bursts, 1)
}

func TestCutSlicesNeverDecrease(t *testing.T) {
	a, s, _, _ := newTestCake()

	last := 0
	for i := 0; i < 40; i++ {
		a.Cut()
		s.Update(0.1)
		require.GreaterOrEqual(t, a.Slices(), last)
		require.LessOrEqual(t, a.Slices(), MaxSlices)
		last = a.Slices()
	}
	assert.Equal(t, MaxSlices, last)
}

func TestCutDiscardDuringCutting(t *testing.T) {
	a, s, _, completions := newTestCake()

	a.Cut()
	a.Discard()
	tick(s, 1)

	assert.Equal(t, 0, a.Slices())
	assert.False(t, a.Cutting())
	assert.False(t, a.Cut())
	assert.Equal(t, 0, *completions)
}

func TestLetterActivity(t *testing.T) {
	s := NewScheduler()
	l := NewLetterActivity(s)

	assert.False(t, l.IsOpen())
	assert.Zero(t, l.Elapsed())

	s.Update(3)
	require.True(t, l.Open())
	assert.False(t, l.Open())

	s.Update(1.5)
	assert.InDelta(t, 1.5, l.Elapsed(), 1e-9)
}
