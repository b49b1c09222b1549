package celebration

import "github.com/decker502/birthday/internal/logger"

// SceneChangeListener 场景切换回调
type SceneChangeListener func(from, to Scene)

// FlowController 庆祝流程控制器
//
// 负责：
//   - 持有当前场景（同一时间只有一个场景处于活动状态）
//   - 持有两个完成标志 candlesBlown / cakeCut（只能 false→true）
//   - 按完成标志判断导航是否解锁
//
// 控制器只读取完成标志，不接触任何互动的内部状态。
// 场景切换全部由用户操作触发，不存在定时自动跳转。
type FlowController struct {
	scene        Scene
	navVisible   bool
	candlesBlown Latch
	cakeCut      Latch

	effects    Effects
	startBurst Burst
	listeners  []SceneChangeListener
}

// NewFlowController 创建处于 Intro 场景的控制器
func NewFlowController(effects Effects, startBurst Burst) *FlowController {
	if effects == nil {
		effects = NopEffects{}
	}
	return &FlowController{
		scene:      SceneIntro,
		effects:    effects,
		startBurst: startBurst,
	}
}

// OnSceneChange 注册场景切换回调
func (f *FlowController) OnSceneChange(listener SceneChangeListener) {
	if listener != nil {
		f.listeners = append(f.listeners, listener)
	}
}

// Scene 返回当前场景
func (f *FlowController) Scene() Scene {
	return f.scene
}

// NavVisible 返回导航栏是否可见
// 离开 Intro 之后一直可见
func (f *FlowController) NavVisible() bool {
	return f.navVisible
}

// CandlesBlown 返回蜡烛是否已全部吹灭（完成信号已发出）
func (f *FlowController) CandlesBlown() bool {
	return f.candlesBlown.Tripped()
}

// CakeCut 返回蛋糕是否已切完
func (f *FlowController) CakeCut() bool {
	return f.cakeCut.Tripped()
}

// Start 从 Intro 进入吹蜡烛场景，并放出开场彩纸
// 不在 Intro 时调用是空操作
func (f *FlowController) Start() bool {
	if f.scene != SceneIntro {
		logger.Logger().Debugf("[FlowController] Start 忽略: 当前场景 %s", f.scene)
		return false
	}

	f.effects.Burst(f.startBurst)
	f.transition(SceneCandleBlowing)
	return true
}

// Unlocked 判断目标场景的前置条件是否满足
func (f *FlowController) Unlocked(target Scene) bool {
	switch target {
	case SceneCandleBlowing:
		return true
	case SceneCakeCutting:
		return f.CandlesBlown()
	case SceneLetterReveal:
		return f.CakeCut()
	default:
		return false
	}
}

// Navigate 切换到目标场景
//
// 以下情况为空操作（返回 false，不报错）：
//   - 仍在 Intro（只能通过 Start 离开）
//   - 目标是 Intro、未知场景或当前场景
//   - 目标场景尚未解锁
func (f *FlowController) Navigate(target Scene) bool {
	if f.scene == SceneIntro || !target.Valid() || target == SceneIntro || target == f.scene {
		return false
	}
	if !f.Unlocked(target) {
		logger.Logger().Debugf("[FlowController] 场景 %s 尚未解锁", target)
		return false
	}

	f.transition(target)
	return true
}

// MarkCandlesBlown 设置 candlesBlown，仅首次调用返回 true
func (f *FlowController) MarkCandlesBlown() bool {
	if !f.candlesBlown.Trip() {
		return false
	}
	logger.Logger().Infof("[FlowController] 蜡烛已全部吹灭，切蛋糕已解锁")
	return true
}

// MarkCakeCut 设置 cakeCut，仅首次调用返回 true
func (f *FlowController) MarkCakeCut() bool {
	if !f.cakeCut.Trip() {
		return false
	}
	logger.Logger().Infof("[FlowController] 蛋糕已切好，信件已解锁")
	return true
}

func (f *FlowController) transition(to Scene) {
	from := f.scene
	f.scene = to
	if to != SceneIntro {
		f.navVisible = true
	}

	logger.Logger().Infof("[FlowController] 场景切换: %s -> %s", from, to)

	for _, listener := range f.listeners {
		listener(from, to)
	}
}
