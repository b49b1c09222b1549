package celebration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCandles() (*CandleActivity, *Scheduler, *burstRecorder, *int) {
	s := NewScheduler()
	rec := &burstRecorder{}
	completions := 0
	a := NewCandleActivity(s, rec, DefaultCandleOptions(), func() { completions++ })
	return a, s, rec, &completions
}

func TestCandleActivityStartsLit(t *testing.T) {
	a, _, _, _ := newTestCandles()

	assert.Equal(t, CandleCount, a.LitCount())
	for i := 0; i < CandleCount; i++ {
		assert.True(t, a.IsLit(i))
	}
	assert.False(t, a.AllOut())
	assert.False(t, a.Completed())
}

func TestCandleBlowIsIdempotent(t *testing.T) {
	for i := 0; i < CandleCount; i++ {
		a, s, _, _ := newTestCandles()

		require.True(t, a.Blow(i))
		once := a.Candles()
		pending := s.Pending()

		assert.False(t, a.Blow(i), "重复吹同一根蜡烛为空操作")
		assert.Equal(t, once, a.Candles())
		assert.Equal(t, pending, s.Pending())
	}
}

func TestCandleBlowOutOfRange(t *testing.T) {
	a, _, _, _ := newTestCandles()

	assert.False(t, a.Blow(-1))
	assert.False(t, a.Blow(CandleCount))
	assert.False(t, a.IsLit(CandleCount))
	assert.Equal(t, CandleCount, a.LitCount())
}

func TestCandleCompletionAfterDelay(t *testing.T) {
	a, s, rec, completions := newTestCandles()

	for i := 0; i < 4; i++ {
		require.True(t, a.Blow(i))
	}
	tick(s, 1)
	assert.False(t, a.Completed())
	assert.Equal(t, 0, *completions)

	require.True(t, a.Blow(4))
	assert.True(t, a.AllOut())
	assert.False(t, a.Completed(), "完成信号需要等待展示延迟")

	tick(s, 0.25)
	assert.False(t, a.Completed())

	tick(s, 0.25)
	assert.True(t, a.Completed())
	assert.Equal(t, 1, *completions)
	require.Len(t, rec.bursts, 1)
	assert.Equal(t, 150, rec.bursts[0].Count)

	tick(s, 2)
	assert.Equal(t, 1, *completions)
}

func TestCandleBlowAllFiresOnce(t *testing.T) {
	a, s, rec, completions := newTestCandles()

	a.Blow(2)
	require.True(t, a.BlowAll())
	assert.Equal(t, 0, a.LitCount())

	assert.False(t, a.BlowAll(), "全部熄灭后再吹为空操作")
	assert.False(t, a.Blow(0))

	tick(s, 1)
	assert.Equal(t, 1, *completions)
	require.Len(t, rec.bursts, 1)
	assert.Equal(t, 200, rec.bursts[0].Count)
}

func TestCandleNearSimultaneousEventsCompleteOnce(t *testing.T) {
	a, s, _, completions := newTestCandles()

	// 同一帧内吹灭全部蜡烛后紧接着再触发"一口气吹灭"
	for i := 0; i < CandleCount; i++ {
		a.Blow(i)
	}
	a.BlowAll()
	a.Blow(3)

	tick(s, 2)
	assert.Equal(t, 1, *completions)
}

func TestCandleBlowingWobble(t *testing.T) {
	a, s, _, _ := newTestCandles()

	a.Blow(0)
	assert.True(t, a.IsBlowing())

	tick(s, 0.2)
	a.Blow(1)
	tick(s, 0.2)
	assert.True(t, a.IsBlowing(), "新的吹气重新计时")

	tick(s, 0.2)
	assert.False(t, a.IsBlowing())
}

func TestCandleDiscardCancelsCompletion(t *testing.T) {
	a, s, rec, completions := newTestCandles()

	a.BlowAll()
	a.Discard()
	tick(s, 1)

	assert.Equal(t, 0, *completions)
	assert.Empty(t, rec.bursts)
	assert.False(t, a.Completed())
	assert.Equal(t, 0, s.Pending())
}
