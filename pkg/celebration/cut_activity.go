package celebration

import (
	"image/color"

	"github.com/decker502/birthday/internal/logger"
)

// MaxSlices 切完蛋糕需要的刀数
const MaxSlices = 3

// CutOptions 切蛋糕互动参数
type CutOptions struct {
	// CutDuration 每一刀的"切割中"锁定时长（秒），期间再次点击被忽略
	CutDuration float64
	// KnifeStartX 刀的初始横向偏移（像素）
	KnifeStartX float64
	// KnifeStep 每切一刀刀向右移动的距离（像素）
	KnifeStep float64
	// Burst 切完最后一刀时的彩纸
	Burst Burst
}

// DefaultCutOptions 返回默认参数
func DefaultCutOptions() CutOptions {
	return CutOptions{
		CutDuration: 0.5,
		KnifeStartX: 120,
		KnifeStep:   40,
		Burst: Burst{
			Count:   100,
			Spread:  70,
			OriginX: 0.5,
			OriginY: 0.7,
			Palette: []color.RGBA{ColorPink, ColorGold, ColorPurple},
		},
	}
}

// CutActivity 切蛋糕互动
//
// 状态：空闲 →（Cut）切割中 →（CutDuration 后）空闲且刀数 +1。
// 刀数只增不减，达到 MaxSlices 时发出一次完成信号。
type CutActivity struct {
	slices    int
	cutting   bool
	knifeX    float64
	completed Latch
	discarded bool
	cutTask   TaskID

	scheduler  *Scheduler
	effects    Effects
	opts       CutOptions
	onComplete func()
}

// NewCutActivity 创建尚未切过的蛋糕
func NewCutActivity(scheduler *Scheduler, effects Effects, opts CutOptions, onComplete func()) *CutActivity {
	if effects == nil {
		effects = NopEffects{}
	}
	return &CutActivity{
		knifeX:     opts.KnifeStartX,
		scheduler:  scheduler,
		effects:    effects,
		opts:       opts,
		onComplete: onComplete,
	}
}

// Cut 开始切一刀
// 切割中、已切完或已丢弃时为空操作
func (a *CutActivity) Cut() bool {
	if a.discarded || a.cutting || a.slices >= MaxSlices {
		return false
	}

	a.cutting = true
	a.cutTask = a.scheduler.After(a.opts.CutDuration, a.finishCut)
	return true
}

// Slices 返回已完成的刀数
func (a *CutActivity) Slices() int {
	return a.slices
}

// Remaining 返回还需要切的刀数
func (a *CutActivity) Remaining() int {
	return MaxSlices - a.slices
}

// Cutting 返回是否处于切割中
func (a *CutActivity) Cutting() bool {
	return a.cutting
}

// KnifeX 返回刀的横向偏移
func (a *CutActivity) KnifeX() float64 {
	return a.knifeX
}

// Completed 返回完成信号是否已发出
func (a *CutActivity) Completed() bool {
	return a.completed.Tripped()
}

// Discard 丢弃互动，取消正在进行的一刀
func (a *CutActivity) Discard() {
	if a.discarded {
		return
	}
	a.discarded = true
	a.cutting = false
	a.scheduler.Cancel(a.cutTask)
	a.cutTask = 0
}

func (a *CutActivity) finishCut() {
	a.cutTask = 0
	if a.discarded || !a.cutting {
		return
	}

	a.cutting = false
	a.slices++
	a.knifeX += a.opts.KnifeStep
	logger.Logger().Debugf("[CutActivity] 第 %d 刀完成", a.slices)

	if a.slices >= MaxSlices && a.completed.Trip() {
		logger.Logger().Infof("[CutActivity] 蛋糕切好，发出完成信号")
		a.effects.Burst(a.opts.Burst)
		if a.onComplete != nil {
			a.onComplete()
		}
	}
}
