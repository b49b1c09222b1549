package utils

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.001
}

// TestEasingEndpoints 测试缓动函数的端点
func TestEasingEndpoints(t *testing.T) {
	funcs := map[string]func(float64) float64{
		"EaseLinear":    EaseLinear,
		"EaseOutCubic":  EaseOutCubic,
		"EaseInOutSine": EaseInOutSine,
		"EaseOutBack":   EaseOutBack,
	}

	for name, fn := range funcs {
		t.Run(name, func(t *testing.T) {
			if !almostEqual(fn(0), 0) {
				t.Errorf("%s(0) = %v, 期望 0", name, fn(0))
			}
			if !almostEqual(fn(1), 1) {
				t.Errorf("%s(1) = %v, 期望 1", name, fn(1))
			}
		})
	}
}

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	// 1 - (1-0.5)^3 = 0.875
	if got := EaseOutCubic(0.5); !almostEqual(got, 0.875) {
		t.Errorf("EaseOutCubic(0.5) = %v, 期望 0.875", got)
	}

	// 验证"开始快，结束慢"的特性
	for p := 0.1; p < 0.5; p += 0.1 {
		if EaseOutCubic(p) <= EaseLinear(p) {
			t.Errorf("EaseOutCubic(%v) 应该大于线性值（开始快）", p)
		}
	}
}

// TestPulse 测试脉动函数
func TestPulse(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  float64
		expected float64
	}{
		{"起点", 0, 0.6},
		{"半周期", 1, 1.0},
		{"整周期", 2, 0.6},
		{"第二周期半程", 3, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pulse(tt.elapsed, 2, 0.6, 1.0)
			if !almostEqual(got, tt.expected) {
				t.Errorf("Pulse(%v) = %v, 期望 %v", tt.elapsed, got, tt.expected)
			}
		})
	}

	if got := Pulse(5, 0, 0.2, 0.9); got != 0.9 {
		t.Errorf("周期为 0 时应返回 high, 实际 %v", got)
	}
}

// TestProgress 测试动画进度
func TestProgress(t *testing.T) {
	tests := []struct {
		name                     string
		elapsed, start, duration float64
		expected                 float64
	}{
		{"未开始", 0.2, 0.5, 1, 0},
		{"进行中", 1.0, 0.5, 1, 0.5},
		{"已结束", 3.0, 0.5, 1, 1},
		{"零时长已开始", 1.0, 0.5, 0, 1},
		{"零时长未开始", 0.1, 0.5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Progress(tt.elapsed, tt.start, tt.duration)
			if !almostEqual(got, tt.expected) {
				t.Errorf("Progress(%v, %v, %v) = %v, 期望 %v", tt.elapsed, tt.start, tt.duration, got, tt.expected)
			}
		})
	}
}

func TestLerpAndClamp(t *testing.T) {
	if got := Lerp(10, 20, 0.25); !almostEqual(got, 12.5) {
		t.Errorf("Lerp = %v, 期望 12.5", got)
	}
	if Clamp01(-1) != 0 || Clamp01(2) != 1 || Clamp01(0.3) != 0.3 {
		t.Error("Clamp01 结果不正确")
	}
}
