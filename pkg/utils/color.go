package utils

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// 本包中的 color.RGBA 一律按非预乘（straight alpha）解释，
// 与 DrawTriangles 顶点颜色的默认模式一致。

// WithAlpha 返回按 alpha (0-1) 缩放透明度后的颜色（非预乘）
func WithAlpha(c color.RGBA, alpha float64) color.RGBA {
	c.A = uint8(float64(c.A) * Clamp01(alpha))
	return c
}

// BlendColors 在 Lab 空间中混合两个颜色，t=0 返回 a，t=1 返回 b
// 用于渐变背景和按钮悬停色
func BlendColors(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	alpha := Lerp(float64(a.A), float64(b.A), t)
	return color.RGBA{R: r, G: g, B: bl, A: uint8(alpha + 0.5)}
}

// Lighten 提高颜色亮度（HCL 空间），amount ∈ [0, 1]
func Lighten(c color.RGBA, amount float64) color.RGBA {
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	h, chroma, l := cf.Hcl()
	l = l + (1-l)*Clamp01(amount)
	r, g, b := colorful.Hcl(h, chroma, l).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: c.A}
}

// colorToScale 转换为 DrawTriangles 顶点使用的 [0,1] 浮点分量
func colorToScale(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}

// Straight 将本包使用的非预乘 RGBA 转换为 color.NRGBA
// color.RGBA 在标准库中约定为预乘 alpha，传给 vector / text 前需要转换
func Straight(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
