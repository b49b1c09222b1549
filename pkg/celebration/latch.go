package celebration

// Latch 一次性闩锁
// 只在 false→true 的边沿返回 true，之后永远保持触发状态
type Latch struct {
	tripped bool
}

// Trip 触发闩锁，仅首次调用返回 true
func (l *Latch) Trip() bool {
	if l.tripped {
		return false
	}
	l.tripped = true
	return true
}

// Tripped 返回闩锁是否已触发
func (l *Latch) Tripped() bool {
	return l.tripped
}
