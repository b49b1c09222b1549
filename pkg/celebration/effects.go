package celebration

import "image/color"

// Burst 一次粒子爆发（彩纸）请求
// 由领域逻辑在完成节点发出，渲染层负责实际播放，不回传任何结果
type Burst struct {
	// Count 粒子数量
	Count int
	// Spread 以"正上方"为中心的扩散角度（度）
	Spread float64
	// OriginX 发射点横坐标，占屏幕宽度的比例 [0, 1]
	OriginX float64
	// OriginY 发射点纵坐标，占屏幕高度的比例 [0, 1]
	OriginY float64
	// Palette 随机选取的粒子颜色
	Palette []color.RGBA
}

// Effects 粒子特效协作者
type Effects interface {
	Burst(b Burst)
}

// EffectsFunc 将普通函数适配为 Effects
type EffectsFunc func(b Burst)

// Burst 调用函数本身
func (f EffectsFunc) Burst(b Burst) {
	f(b)
}

// NopEffects 丢弃所有特效请求
type NopEffects struct{}

// Burst 不做任何事
func (NopEffects) Burst(Burst) {}

// 默认调色板（粉、浅粉、金、紫、青）
var (
	ColorPink      = color.RGBA{R: 0xec, G: 0x48, B: 0x99, A: 0xff}
	ColorLightPink = color.RGBA{R: 0xf4, G: 0x72, B: 0xb6, A: 0xff}
	ColorGold      = color.RGBA{R: 0xfb, G: 0xbf, B: 0x24, A: 0xff}
	ColorPurple    = color.RGBA{R: 0xa8, G: 0x55, B: 0xf7, A: 0xff}
	ColorCyan      = color.RGBA{R: 0x22, G: 0xd3, B: 0xee, A: 0xff}
)

// DefaultStartBurst 开场"开始庆祝"时的彩纸
func DefaultStartBurst() Burst {
	return Burst{
		Count:   100,
		Spread:  70,
		OriginX: 0.5,
		OriginY: 0.6,
		Palette: []color.RGBA{ColorPink, ColorLightPink, ColorGold, ColorPurple},
	}
}
