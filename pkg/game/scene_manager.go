package game

import (
	"github.com/decker502/birthday/internal/logger"
	"github.com/decker502/birthday/pkg/celebration"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 根据场景标识创建展示层场景，避免 game 包依赖 scenes 包
type SceneFactory func(id celebration.Scene) Scene

// SceneManager manages which presentation scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	currentID    celebration.Scene
	sceneFactory SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or Load to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The previous scene receives OnExit and the new one OnEnter when they implement the hooks.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if exitable, ok := sm.currentScene.(Exitable); ok {
		exitable.OnExit()
	}

	sm.currentScene = scene

	if enterable, ok := scene.(Enterable); ok {
		enterable.OnEnter()
	}
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentID 返回最近一次通过 Load 加载的场景标识
func (sm *SceneManager) CurrentID() celebration.Scene {
	return sm.currentID
}

// Load 通过工厂创建并切换到指定场景
// 返回是否切换成功
func (sm *SceneManager) Load(id celebration.Scene) bool {
	log := logger.Logger()

	if sm.sceneFactory == nil {
		log.Errorf("[SceneManager] 错误: SceneFactory 未设置")
		return false
	}

	newScene := sm.sceneFactory(id)
	if newScene == nil {
		log.Errorf("[SceneManager] 错误: 无法创建场景: %s", id)
		return false
	}

	sm.SwitchTo(newScene)
	sm.currentID = id
	log.Infof("[SceneManager] 切换到场景: %s", id)
	return true
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
