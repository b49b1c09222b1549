//go:build !mobile

package utils

import "testing"

// TestIsMobile_Desktop 测试桌面端编译时 IsMobile() 的行为
func TestIsMobile_Desktop(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		expected bool
	}{
		{"未设置环境变量", "", false},
		{"模拟移动端", "1", true},
		{"其他值", "yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BIRTHDAY_MOBILE_EMULATE", tt.env)
			if got := IsMobile(); got != tt.expected {
				t.Errorf("IsMobile() = %v, 期望 %v", got, tt.expected)
			}
		})
	}
}
