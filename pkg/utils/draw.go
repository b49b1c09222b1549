package utils

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// WhiteImage 返回用于纯色三角形绘制的 1x1 白色贴图
// 取 3x3 图片的中心像素，避免采样到边缘
func WhiteImage() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// TriangleBatch 累积纯色三角形，一次 DrawTriangles 全部提交
// 顶点数组在 Reset 后保留容量，避免每帧分配
type TriangleBatch struct {
	Vertices []ebiten.Vertex
	Indices  []uint16
}

// Reset 清空批次（保留容量）
func (b *TriangleBatch) Reset() {
	b.Vertices = b.Vertices[:0]
	b.Indices = b.Indices[:0]
}

// Len 返回当前顶点数
func (b *TriangleBatch) Len() int {
	return len(b.Vertices)
}

func (b *TriangleBatch) vertex(x, y float64, clr color.RGBA) ebiten.Vertex {
	r, g, bl, a := colorToScale(clr)
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1,
		SrcY:   1,
		ColorR: r,
		ColorG: g,
		ColorB: bl,
		ColorA: a,
	}
}

// AddQuad 添加以 (cx, cy) 为中心、旋转 rotation 弧度的矩形
func (b *TriangleBatch) AddQuad(cx, cy, width, height, rotation float64, clr color.RGBA) {
	hw, hh := width/2, height/2
	sin, cos := math.Sincos(rotation)

	corners := [4][2]float64{{-hw, -hh}, {hw, -hh}, {-hw, hh}, {hw, hh}}
	base := uint16(len(b.Vertices))
	for _, c := range corners {
		x := cx + c[0]*cos - c[1]*sin
		y := cy + c[0]*sin + c[1]*cos
		b.Vertices = append(b.Vertices, b.vertex(x, y, clr))
	}

	// 两个三角形：0-1-2, 1-3-2
	b.Indices = append(b.Indices,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
}

// AddRect 添加轴对齐矩形（左上角坐标）
func (b *TriangleBatch) AddRect(x, y, width, height float64, clr color.RGBA) {
	b.AddQuad(x+width/2, y+height/2, width, height, 0, clr)
}

// AddGradientRect 添加上下渐变的矩形
func (b *TriangleBatch) AddGradientRect(x, y, width, height float64, top, bottom color.RGBA) {
	base := uint16(len(b.Vertices))
	b.Vertices = append(b.Vertices,
		b.vertex(x, y, top),
		b.vertex(x+width, y, top),
		b.vertex(x, y+height, bottom),
		b.vertex(x+width, y+height, bottom),
	)
	b.Indices = append(b.Indices,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
}

// AddPolygon 以扇形三角剖分添加凸多边形
// 少于 3 个点时忽略
func (b *TriangleBatch) AddPolygon(points [][2]float64, clr color.RGBA) {
	if len(points) < 3 {
		return
	}
	base := uint16(len(b.Vertices))
	for _, p := range points {
		b.Vertices = append(b.Vertices, b.vertex(p[0], p[1], clr))
	}
	for i := 1; i < len(points)-1; i++ {
		b.Indices = append(b.Indices, base, base+uint16(i), base+uint16(i+1))
	}
}

// AddCircle 添加近似圆形（segments 边形）
func (b *TriangleBatch) AddCircle(cx, cy, radius float64, segments int, clr color.RGBA) {
	if segments < 3 {
		segments = 3
	}
	points := make([][2]float64, segments)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		points[i] = [2]float64{cx + radius*math.Cos(angle), cy + radius*math.Sin(angle)}
	}
	b.AddPolygon(points, clr)
}

// AddStar 添加五角星（外半径 outer，内半径 inner）
// 五角星是凹多边形，从中心扇形剖分
func (b *TriangleBatch) AddStar(cx, cy, outer, inner, rotation float64, clr color.RGBA) {
	base := uint16(len(b.Vertices))
	b.Vertices = append(b.Vertices, b.vertex(cx, cy, clr))
	for i := 0; i < 10; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := rotation - math.Pi/2 + float64(i)*math.Pi/5
		b.Vertices = append(b.Vertices, b.vertex(cx+r*math.Cos(angle), cy+r*math.Sin(angle), clr))
	}
	for i := 0; i < 10; i++ {
		next := (i+1)%10 + 1
		b.Indices = append(b.Indices, base, base+uint16(i+1), base+uint16(next))
	}
}

// AddHeart 添加心形（size 为宽度）
// 心形由两个圆和一个倒三角拼成
func (b *TriangleBatch) AddHeart(cx, cy, size float64, clr color.RGBA) {
	r := size / 4
	b.AddCircle(cx-r, cy-r/2, r, 16, clr)
	b.AddCircle(cx+r, cy-r/2, r, 16, clr)
	b.AddPolygon([][2]float64{
		{cx - 2*r, cy - r/3},
		{cx + 2*r, cy - r/3},
		{cx, cy + 1.6*r},
	}, clr)
}

// Flush 将批次绘制到 screen 并清空
func (b *TriangleBatch) Flush(screen *ebiten.Image) {
	if len(b.Indices) == 0 {
		b.Reset()
		return
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	screen.DrawTriangles(b.Vertices, b.Indices, WhiteImage(), op)
	b.Reset()
}
