package celebration

import (
	"github.com/google/uuid"

	"github.com/decker502/birthday/internal/logger"
)

// SessionOptions 一次庆祝会话的全部参数
type SessionOptions struct {
	StartBurst Burst
	Candles    CandleOptions
	Cut        CutOptions
}

// DefaultSessionOptions 返回默认参数
func DefaultSessionOptions() SessionOptions {
	return SessionOptions{
		StartBurst: DefaultStartBurst(),
		Candles:    DefaultCandleOptions(),
		Cut:        DefaultCutOptions(),
	}
}

// Session 一次完整的庆祝会话
//
// 会话在启动时以默认状态创建全部互动（蜡烛全亮、零刀、标志为 false），
// 关闭时丢弃，不做任何持久化。
//
// 渲染层只通过事件方法上报交互：事件只在其所属场景中生效，
// 其它场景收到的事件一律视为空操作。
type Session struct {
	id        string
	scheduler *Scheduler
	flow      *FlowController
	candles   *CandleActivity
	cut       *CutActivity
	letter    *LetterActivity
	closed    bool
}

// NewSession 创建新会话
func NewSession(opts SessionOptions, effects Effects) *Session {
	if effects == nil {
		effects = NopEffects{}
	}

	scheduler := NewScheduler()
	flow := NewFlowController(effects, opts.StartBurst)

	s := &Session{
		id:        uuid.NewString(),
		scheduler: scheduler,
		flow:      flow,
		letter:    NewLetterActivity(scheduler),
	}
	s.candles = NewCandleActivity(scheduler, effects, opts.Candles, func() { flow.MarkCandlesBlown() })
	s.cut = NewCutActivity(scheduler, effects, opts.Cut, func() { flow.MarkCakeCut() })

	logger.Logger().Infow("[Session] 会话已创建", "session", s.id)
	return s
}

// ID 返回会话标识
func (s *Session) ID() string {
	return s.id
}

// Flow 返回流程控制器
func (s *Session) Flow() *FlowController {
	return s.flow
}

// Candles 返回吹蜡烛互动
func (s *Session) Candles() *CandleActivity {
	return s.candles
}

// Cake 返回切蛋糕互动
func (s *Session) Cake() *CutActivity {
	return s.cut
}

// Letter 返回信封互动
func (s *Session) Letter() *LetterActivity {
	return s.letter
}

// Scheduler 返回会话的调度器
func (s *Session) Scheduler() *Scheduler {
	return s.scheduler
}

// Update 推进会话时间（秒）
func (s *Session) Update(dt float64) {
	if s.closed {
		return
	}
	s.scheduler.Update(dt)
}

// Start 开始庆祝
func (s *Session) Start() bool {
	if s.closed {
		return false
	}
	return s.flow.Start()
}

// Navigate 导航到目标场景
func (s *Session) Navigate(target Scene) bool {
	if s.closed {
		return false
	}
	return s.flow.Navigate(target)
}

// BlowCandle 吹灭第 index 根蜡烛
func (s *Session) BlowCandle(index int) bool {
	if !s.in(SceneCandleBlowing) {
		return false
	}
	return s.candles.Blow(index)
}

// BlowAll 一口气吹灭所有蜡烛
func (s *Session) BlowAll() bool {
	if !s.in(SceneCandleBlowing) {
		return false
	}
	return s.candles.BlowAll()
}

// Cut 切一刀
func (s *Session) Cut() bool {
	if !s.in(SceneCakeCutting) {
		return false
	}
	return s.cut.Cut()
}

// OpenLetter 拆开信封
func (s *Session) OpenLetter() bool {
	if !s.in(SceneLetterReveal) {
		return false
	}
	return s.letter.Open()
}

// Close 结束会话，丢弃所有互动并取消未执行的回调
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.candles.Discard()
	s.cut.Discard()
	s.letter.Discard()
	s.scheduler.CancelAll()
	logger.Logger().Infow("[Session] 会话已关闭", "session", s.id)
}

// Closed 返回会话是否已关闭
func (s *Session) Closed() bool {
	return s.closed
}

func (s *Session) in(scene Scene) bool {
	return !s.closed && s.flow.Scene() == scene
}
