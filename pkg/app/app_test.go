package app

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/birthday/pkg/celebration"
	"github.com/decker502/birthday/pkg/components"
	"github.com/decker502/birthday/pkg/config"
	"github.com/decker502/birthday/pkg/ecs"
	"github.com/decker502/birthday/pkg/embedded"
	"github.com/decker502/birthday/pkg/systems"
	"github.com/decker502/birthday/pkg/utils"
)

const frame = 1.0 / 60.0

// newTestApp 使用仓库中的 data/ 作为内嵌资源，并替换为静止的指针
func newTestApp(t *testing.T) *App {
	t.Helper()
	embedded.Init(os.DirFS("../.."))
	t.Cleanup(func() { embedded.Init(nil) })

	a, err := NewApp(Config{Seed: 7})
	require.NoError(t, err)
	t.Cleanup(a.Close)

	a.input = systems.NewInputSystem(a.ui, func() utils.InputState {
		return utils.InputState{X: -100, Y: -100}
	})
	return a
}

func TestNewAppUsesEmbeddedConfig(t *testing.T) {
	a := newTestApp(t)

	assert.Equal(t, celebration.SceneIntro, a.Session().Flow().Scene())
	assert.Equal(t, celebration.SceneIntro, a.sceneManager.CurrentID())
	assert.Equal(t, config.GameWindowWidth, a.WindowConfig().Width)
	assert.NotEmpty(t, a.WindowConfig().Title)

	floating := ecs.GetEntitiesWith1[*components.FloatingComponent](a.world)
	assert.Len(t, floating, len(a.config.Floating))
}

func TestNewAppErrors(t *testing.T) {
	t.Run("未初始化内嵌资源", func(t *testing.T) {
		embedded.Init(nil)
		_, err := NewApp(Config{})
		require.ErrorIs(t, err, embedded.ErrNotInitialized)
	})

	t.Run("配置文件不存在", func(t *testing.T) {
		_, err := NewApp(Config{ConfigPath: "testdata/missing.yaml"})
		require.Error(t, err)
	})

	t.Run("未知日志级别", func(t *testing.T) {
		_, err := NewApp(Config{Verbose: true, LogLevel: "loud"})
		require.Error(t, err)
	})
}

func TestTickFollowsSceneChanges(t *testing.T) {
	a := newTestApp(t)

	require.True(t, a.Session().Start())
	a.tick(frame)

	assert.Equal(t, celebration.SceneCandleBlowing, a.sceneManager.CurrentID())
	assert.Positive(t, a.confetti.ActiveCount(), "start burst should spawn confetti")

	require.True(t, a.Session().BlowAll())
	for i := 0; i < 60; i++ {
		a.tick(frame)
	}
	require.True(t, a.Session().Flow().CandlesBlown())

	require.True(t, a.Session().Navigate(celebration.SceneCakeCutting))
	a.tick(frame)
	assert.Equal(t, celebration.SceneCakeCutting, a.sceneManager.CurrentID())
}

func TestLayout(t *testing.T) {
	a := newTestApp(t)

	w, h := a.Layout(1920, 1080)
	assert.Equal(t, config.GameWindowWidth, w)
	assert.Equal(t, config.GameWindowHeight, h)
}

func TestCloseEndsSession(t *testing.T) {
	a := newTestApp(t)

	a.Close()
	assert.True(t, a.Session().Closed())
	assert.False(t, a.Session().Start())
}
