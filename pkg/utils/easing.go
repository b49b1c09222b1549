package utils

import "math"

// Easing Functions (缓动函数)
//
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值。
// 参考：https://easings.net/

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（用于刀的下压、信纸滑入）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutSine 正弦缓入缓出
// 特点：两端平缓，适合呼吸式的透明度脉动
// 公式：f(t) = -(cos(πt) - 1) / 2
func EaseInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// EaseOutBack 回弹缓出
// 特点：略微越过终点再回落（用于按钮出现）
func EaseOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	return 1 + c3*math.Pow(t-1, 3) + c1*math.Pow(t-1, 2)
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将值限制在 [0, 1]
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// Pulse 在 [low, high] 之间往返的周期脉动
// period 为一次完整往返的秒数，elapsed 从 low 开始
func Pulse(elapsed, period, low, high float64) float64 {
	if period <= 0 {
		return high
	}
	phase := math.Mod(elapsed, period) / period
	// 0 → 1 → 0
	tri := 1 - math.Abs(2*phase-1)
	return Lerp(low, high, EaseInOutSine(tri))
}

// Progress 返回从 start 开始、持续 duration 秒的动画进度 [0, 1]
func Progress(elapsed, start, duration float64) float64 {
	if duration <= 0 {
		if elapsed >= start {
			return 1
		}
		return 0
	}
	return Clamp01((elapsed - start) / duration)
}
