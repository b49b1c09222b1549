package celebration

import (
	"image/color"

	"github.com/decker502/birthday/internal/logger"
)

// CandleCount 蛋糕上的蜡烛数量
const CandleCount = 5

// CandleOptions 吹蜡烛互动参数
type CandleOptions struct {
	// CompletionDelay 最后一根蜡烛熄灭到发出完成信号的间隔（秒），留给熄灭动画播放
	CompletionDelay float64
	// BlowDuration 每次吹气时蛋糕晃动的时长（秒）
	BlowDuration float64
	// SingleBurst 逐根吹灭时的完成彩纸
	SingleBurst Burst
	// BlowAllBurst "一口气吹灭"时的完成彩纸
	BlowAllBurst Burst
}

// DefaultCandleOptions 返回默认参数
func DefaultCandleOptions() CandleOptions {
	palette := []color.RGBA{ColorPink, ColorLightPink, ColorGold, ColorPurple, ColorCyan}
	return CandleOptions{
		CompletionDelay: 0.5,
		BlowDuration:    0.3,
		SingleBurst:     Burst{Count: 150, Spread: 100, OriginX: 0.5, OriginY: 0.6, Palette: palette},
		BlowAllBurst:    Burst{Count: 200, Spread: 120, OriginX: 0.5, OriginY: 0.6, Palette: palette},
	}
}

// CandleActivity 吹蜡烛互动
//
// 每根蜡烛：点燃 → 熄灭（单向，重复吹同一根为空操作）。
// 所有蜡烛熄灭的那一刻触发一次（闩锁保证只触发一次）延迟任务，
// 延迟结束后放出彩纸并调用 onComplete。
type CandleActivity struct {
	lit     [CandleCount]bool
	blowing bool

	allOut    Latch
	completed Latch
	discarded bool

	blowTask     TaskID
	completeTask TaskID

	scheduler  *Scheduler
	effects    Effects
	opts       CandleOptions
	onComplete func()
}

// NewCandleActivity 创建全部点燃的蜡烛组
func NewCandleActivity(scheduler *Scheduler, effects Effects, opts CandleOptions, onComplete func()) *CandleActivity {
	if effects == nil {
		effects = NopEffects{}
	}
	a := &CandleActivity{
		scheduler:  scheduler,
		effects:    effects,
		opts:       opts,
		onComplete: onComplete,
	}
	for i := range a.lit {
		a.lit[i] = true
	}
	return a
}

// Blow 吹灭第 index 根蜡烛
// 越界、已熄灭、已全部熄灭或已丢弃时为空操作
func (a *CandleActivity) Blow(index int) bool {
	if a.discarded || a.allOut.Tripped() {
		return false
	}
	if index < 0 || index >= CandleCount || !a.lit[index] {
		return false
	}

	a.lit[index] = false
	a.startBlowing()
	logger.Logger().Debugf("[CandleActivity] 吹灭蜡烛 %d，剩余 %d 根", index, a.LitCount())

	if a.LitCount() == 0 {
		a.scheduleCompletion(a.opts.SingleBurst)
	}
	return true
}

// BlowAll 一次吹灭剩余的所有蜡烛
func (a *CandleActivity) BlowAll() bool {
	if a.discarded || a.allOut.Tripped() {
		return false
	}

	for i := range a.lit {
		a.lit[i] = false
	}
	a.startBlowing()
	logger.Logger().Debugf("[CandleActivity] 一口气吹灭全部蜡烛")

	a.scheduleCompletion(a.opts.BlowAllBurst)
	return true
}

// IsLit 返回第 index 根蜡烛是否点燃，越界返回 false
func (a *CandleActivity) IsLit(index int) bool {
	if index < 0 || index >= CandleCount {
		return false
	}
	return a.lit[index]
}

// Candles 返回所有蜡烛的点燃状态副本
func (a *CandleActivity) Candles() [CandleCount]bool {
	return a.lit
}

// LitCount 返回仍在燃烧的蜡烛数量
func (a *CandleActivity) LitCount() int {
	n := 0
	for _, lit := range a.lit {
		if lit {
			n++
		}
	}
	return n
}

// AllOut 返回蜡烛是否已全部熄灭（完成信号可能仍在延迟中）
func (a *CandleActivity) AllOut() bool {
	return a.allOut.Tripped()
}

// IsBlowing 返回蛋糕是否处于吹气晃动状态
func (a *CandleActivity) IsBlowing() bool {
	return a.blowing
}

// Completed 返回完成信号是否已发出
func (a *CandleActivity) Completed() bool {
	return a.completed.Tripped()
}

// Discard 丢弃互动，取消所有未执行的回调
func (a *CandleActivity) Discard() {
	if a.discarded {
		return
	}
	a.discarded = true
	a.blowing = false
	a.scheduler.Cancel(a.blowTask)
	a.scheduler.Cancel(a.completeTask)
	a.blowTask, a.completeTask = 0, 0
}

func (a *CandleActivity) startBlowing() {
	a.blowing = true
	a.scheduler.Cancel(a.blowTask)
	a.blowTask = a.scheduler.After(a.opts.BlowDuration, func() {
		a.blowTask = 0
		if a.discarded {
			return
		}
		a.blowing = false
	})
}

// scheduleCompletion 只在"全部熄灭"的边沿安排一次完成回调
func (a *CandleActivity) scheduleCompletion(burst Burst) {
	if !a.allOut.Trip() {
		return
	}

	a.completeTask = a.scheduler.After(a.opts.CompletionDelay, func() {
		a.completeTask = 0
		if a.discarded || !a.completed.Trip() {
			return
		}
		logger.Logger().Infof("[CandleActivity] 全部蜡烛熄灭，发出完成信号")
		a.effects.Burst(burst)
		if a.onComplete != nil {
			a.onComplete()
		}
	})
}
