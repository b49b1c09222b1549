package celebration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlowControllerStartsAtIntro(t *testing.T) {
	f := NewFlowController(nil, DefaultStartBurst())

	assert.Equal(t, SceneIntro, f.Scene())
	assert.False(t, f.NavVisible())
	assert.False(t, f.CandlesBlown())
	assert.False(t, f.CakeCut())
}

func TestFlowControllerStartOnlyOnce(t *testing.T) {
	rec := &burstRecorder{}
	f := NewFlowController(rec, DefaultStartBurst())

	var changes [][2]Scene
	f.OnSceneChange(func(from, to Scene) { changes = append(changes, [2]Scene{from, to}) })

	require.True(t, f.Start())
	assert.Equal(t, SceneCandleBlowing, f.Scene())
	assert.True(t, f.NavVisible())

	assert.False(t, f.Start(), "离开 Intro 后 Start 为空操作")
	assert.Equal(t, SceneCandleBlowing, f.Scene())

	assert.Len(t, rec.bursts, 1)
	assert.Equal(t, 100, rec.bursts[0].Count)
	assert.Equal(t, [][2]Scene{{SceneIntro, SceneCandleBlowing}}, changes)
}

func TestFlowControllerNavigateLocked(t *testing.T) {
	f := NewFlowController(nil, Burst{})
	f.Start()

	assert.False(t, f.Navigate(SceneCakeCutting))
	assert.Equal(t, SceneCandleBlowing, f.Scene())

	assert.False(t, f.Navigate(SceneLetterReveal))
	assert.Equal(t, SceneCandleBlowing, f.Scene())
}

func TestFlowControllerNavigateUnlocked(t *testing.T) {
	f := NewFlowController(nil, Burst{})
	f.Start()

	require.True(t, f.MarkCandlesBlown())
	require.True(t, f.Navigate(SceneCakeCutting))
	assert.Equal(t, SceneCakeCutting, f.Scene())

	assert.False(t, f.Navigate(SceneLetterReveal), "cakeCut 仍为 false")

	require.True(t, f.MarkCakeCut())
	require.True(t, f.Navigate(SceneLetterReveal))

	// 已解锁的场景可以来回切换
	require.True(t, f.Navigate(SceneCandleBlowing))
	require.True(t, f.Navigate(SceneLetterReveal))
	assert.True(t, f.NavVisible(), "导航栏离开 Intro 后一直可见")
}

func TestFlowControllerNavigateNoOps(t *testing.T) {
	f := NewFlowController(nil, Burst{})

	assert.False(t, f.Navigate(SceneCandleBlowing), "Intro 只能通过 Start 离开")
	assert.Equal(t, SceneIntro, f.Scene())

	f.Start()
	assert.False(t, f.Navigate(SceneCandleBlowing), "已在目标场景")
	assert.False(t, f.Navigate(SceneIntro))
	assert.False(t, f.Navigate(Scene(42)))
	assert.Equal(t, SceneCandleBlowing, f.Scene())
}

func TestFlowControllerFlagsAreOneWay(t *testing.T) {
	f := NewFlowController(nil, Burst{})

	assert.True(t, f.MarkCandlesBlown())
	assert.False(t, f.MarkCandlesBlown())
	assert.True(t, f.CandlesBlown())

	assert.True(t, f.MarkCakeCut())
	assert.False(t, f.MarkCakeCut())
	assert.True(t, f.CakeCut())
}

func TestSceneParseAndString(t *testing.T) {
	for _, s := range []Scene{SceneIntro, SceneCandleBlowing, SceneCakeCutting, SceneLetterReveal} {
		parsed, ok := ParseScene(s.String())
		require.True(t, ok)
		assert.Equal(t, s, parsed)
	}

	_, ok := ParseScene("garden")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Scene(-1).String())
	assert.False(t, Scene(-1).Valid())
}
