package celebration

// LetterActivity 信封互动
// 信封只能从关闭变为打开，打开后记录时间供渲染层逐段显示信件内容
type LetterActivity struct {
	scheduler *Scheduler
	opened    Latch
	openedAt  float64
	discarded bool
}

// NewLetterActivity 创建未拆开的信封
func NewLetterActivity(scheduler *Scheduler) *LetterActivity {
	return &LetterActivity{scheduler: scheduler}
}

// Open 拆开信封，仅首次调用返回 true
func (a *LetterActivity) Open() bool {
	if a.discarded || !a.opened.Trip() {
		return false
	}
	a.openedAt = a.scheduler.Now()
	return true
}

// IsOpen 返回信封是否已拆开
func (a *LetterActivity) IsOpen() bool {
	return a.opened.Tripped()
}

// Elapsed 返回拆开后经过的秒数，未拆开时为 0
func (a *LetterActivity) Elapsed() float64 {
	if !a.IsOpen() {
		return 0
	}
	return a.scheduler.Now() - a.openedAt
}

// Discard 丢弃互动
func (a *LetterActivity) Discard() {
	a.discarded = true
}
