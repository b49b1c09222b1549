//go:build mobile

package utils

// IsMobile 移动端构建恒为 true
// 触摸设备没有悬停光标，调用方据此跳过光标形状切换
func IsMobile() bool {
	return true
}
