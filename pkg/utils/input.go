// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的输入状态
// 用于统一处理鼠标和触摸输入
type InputState struct {
	// 是否有点击/触摸事件刚刚发生
	JustPressed bool
	// 点击/触摸位置
	X, Y int
	// 是否有活动的触摸
	IsTouching bool
}

// PointerSource 返回当前帧的指针状态
// 运行时使用 GetInputState，测试中可替换为脚本化的输入
type PointerSource func() InputState

// GetInputState 获取当前帧的输入状态
// 同时支持鼠标点击和触摸输入，优先检测触摸
func GetInputState() InputState {
	state := InputState{}

	// 首先检查触摸输入（移动设备）
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		state.JustPressed = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.IsTouching = true
		return state
	}

	// 检查是否有活动的触摸（用于悬停检测）
	allTouchIDs := ebiten.AppendTouchIDs(nil)
	if len(allTouchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(allTouchIDs[0])
		state.IsTouching = true
		return state
	}

	// 其次检查鼠标输入（桌面设备）
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		state.JustPressed = true
		state.X, state.Y = ebiten.CursorPosition()
		return state
	}

	state.X, state.Y = ebiten.CursorPosition()
	return state
}

// Rect 屏幕坐标系中的矩形区域
type Rect struct {
	X, Y, Width, Height float64
}

// Contains 判断点 (px, py) 是否落在矩形内（含左上边界，不含右下边界）
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px < r.X+r.Width &&
		py >= r.Y && py < r.Y+r.Height
}

// CenterX 矩形中心 X
func (r Rect) CenterX() float64 {
	return r.X + r.Width/2
}

// CenterY 矩形中心 Y
func (r Rect) CenterY() float64 {
	return r.Y + r.Height/2
}

// CenteredRect 以 (cx, cy) 为中心创建矩形
func CenteredRect(cx, cy, width, height float64) Rect {
	return Rect{X: cx - width/2, Y: cy - height/2, Width: width, Height: height}
}
