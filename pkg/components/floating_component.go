package components

import "image/color"

// FloatingKind 漂浮装饰的种类
type FloatingKind int

const (
	FloatingHeart FloatingKind = iota
	FloatingStar
	FloatingSparkle
	FloatingBalloon
)

// FloatingComponent 背景中缓慢上升的装饰（爱心、星星、闪光、气球）
// 位置由 FloatingSystem 根据年龄计算，循环播放
type FloatingComponent struct {
	Kind     FloatingKind
	Color    color.RGBA
	BaseX    float64 // 横向基准位置（像素）
	Sway     float64 // 左右摆动幅度（像素）
	Size     float64
	Delay    float64 // 首次出现前的等待时间（秒）
	Duration float64 // 一次上升的时长（秒）

	Age      float64
	Rotation float64 // 弧度
	Alpha    float64
}
