package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonStyle 按钮的渲染风格
type ButtonStyle int

const (
	// ButtonStylePrimary 粉紫渐变的主按钮
	ButtonStylePrimary ButtonStyle = iota
	// ButtonStyleGhost 透明背景的次要按钮（导航栏未选中项）
	ButtonStyleGhost
	// ButtonStyleHidden 不绘制任何内容，只保留点击区域（蜡烛、刀、信封）
	ButtonStyleHidden
)

// ButtonComponent 按钮组件（ECS 架构）
// 包含按钮的外观与状态，点击区域与回调由 ClickableComponent 提供
//
// 设计原则：
//   - 纯数据组件，不包含任何方法
//   - 文字自动居中
type ButtonComponent struct {
	Style ButtonStyle
	// Label 按钮上显示的文字
	Label string
	// Font 文字字体
	Font *text.GoTextFace

	FillFrom  color.RGBA // 渐变起始色
	FillTo    color.RGBA // 渐变结束色
	TextColor color.RGBA

	// Width/Height 按钮尺寸（像素）
	Width  float64
	Height float64

	// Active 导航栏中表示当前场景
	Active bool
	// Hidden 为 true 时既不绘制也不响应点击
	Hidden bool

	State UIState
}
