package celebration

// burstRecorder 记录收到的所有彩纸请求
type burstRecorder struct {
	bursts []Burst
}

func (r *burstRecorder) Burst(b Burst) {
	r.bursts = append(r.bursts, b)
}

// tick 以 60 FPS 的步长推进 seconds 秒
func tick(s *Scheduler, seconds float64) {
	const dt = 1.0 / 60.0
	frames := int(seconds/dt + 0.5)
	for i := 0; i < frames; i++ {
		s.Update(dt)
	}
}
