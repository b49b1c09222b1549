package components

import "image/color"

// ConfettiShape 彩纸形状
type ConfettiShape int

const (
	// ConfettiSquare 方形纸片
	ConfettiSquare ConfettiShape = iota
	// ConfettiStrip 细长纸条
	ConfettiStrip
	// ConfettiCircle 圆点
	ConfettiCircle
)

// ConfettiComponent 单个彩纸粒子的运行时状态
//
// 位置与速度分别存放在 PositionComponent / VelocityComponent，
// 生命周期由 LifetimeComponent 管理，本组件只保存外观与运动参数。
type ConfettiComponent struct {
	Shape  ConfettiShape
	Width  float64 // 纸片宽度（像素）
	Height float64 // 纸片高度（像素）
	Color  color.RGBA

	// Rotation (旋转, 弧度)
	Rotation      float64
	RotationSpeed float64 // 弧度/秒

	// Tilt 模拟纸片翻转：宽度按 cos(Tilt) 缩放
	Tilt      float64
	TiltSpeed float64

	Gravity float64 // 重力加速度（像素/秒²）
	Drag    float64 // 每秒保留的速度比例 (0, 1]

	Alpha float64 // 0 = 完全透明, 1 = 不透明
}
