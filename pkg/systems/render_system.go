package systems

import (
	"image/color"
	"math"

	"github.com/decker502/birthday/pkg/components"
	"github.com/decker502/birthday/pkg/ecs"
	"github.com/decker502/birthday/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem 绘制 ECS 世界中的实体
//
// 职责范围：
//   - 背景漂浮装饰（FloatingComponent）
//   - 彩纸粒子（ConfettiComponent），批量提交一次 DrawTriangles
//   - 按钮（ButtonComponent + ClickableComponent）
//
// 场景自身的静态图形（蛋糕、蜡烛、信封）由各场景直接绘制。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	batch         utils.TriangleBatch
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		batch: utils.TriangleBatch{
			Vertices: make([]ebiten.Vertex, 0, 4800), // 预分配：约 1200 个粒子（每粒子 4 顶点）
			Indices:  make([]uint16, 0, 7200),
		},
	}
}

// DrawFloating 绘制背景漂浮装饰
func (s *RenderSystem) DrawFloating(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.FloatingComponent, *components.PositionComponent](s.entityManager)

	for _, id := range entities {
		f, _ := ecs.GetComponent[*components.FloatingComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if f.Alpha <= 0 {
			continue
		}

		clr := utils.WithAlpha(f.Color, f.Alpha)
		switch f.Kind {
		case components.FloatingHeart:
			s.batch.AddHeart(pos.X, pos.Y, f.Size, clr)
		case components.FloatingStar:
			s.batch.AddStar(pos.X, pos.Y, f.Size/2, f.Size/5, f.Rotation, clr)
		case components.FloatingSparkle:
			// 十字闪光：两条交叉的细条
			s.batch.AddQuad(pos.X, pos.Y, f.Size, f.Size/5, f.Rotation, clr)
			s.batch.AddQuad(pos.X, pos.Y, f.Size, f.Size/5, f.Rotation+math.Pi/2, clr)
		case components.FloatingBalloon:
			s.drawBalloon(screen, pos.X, pos.Y, f.Size, clr)
		}
	}

	s.batch.Flush(screen)
}

func (s *RenderSystem) drawBalloon(screen *ebiten.Image, x, y, size float64, clr color.RGBA) {
	rx, ry := size*0.4, size*0.5
	points := make([][2]float64, 20)
	for i := range points {
		a := 2 * math.Pi * float64(i) / float64(len(points))
		points[i] = [2]float64{x + rx*math.Cos(a), y + ry*math.Sin(a)}
	}
	s.batch.AddPolygon(points, clr)

	// 绳子直接画线，不进入批次
	vector.StrokeLine(screen,
		float32(x), float32(y+ry),
		float32(x), float32(y+ry+size*0.6),
		1, utils.Straight(utils.WithAlpha(clr, 0.8)), true)
}

// DrawConfetti 绘制所有彩纸粒子
func (s *RenderSystem) DrawConfetti(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ConfettiComponent, *components.PositionComponent](s.entityManager)

	for _, id := range entities {
		c, _ := ecs.GetComponent[*components.ConfettiComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if c.Alpha <= 0 {
			continue
		}

		clr := utils.WithAlpha(c.Color, c.Alpha)
		// 翻转效果：宽度随 Tilt 周期性收缩
		width := c.Width * math.Max(0.15, math.Abs(math.Cos(c.Tilt)))

		if c.Shape == components.ConfettiCircle {
			s.batch.AddCircle(pos.X, pos.Y, width/2, 8, clr)
			continue
		}
		s.batch.AddQuad(pos.X, pos.Y, width, c.Height, c.Rotation, clr)
	}

	s.batch.Flush(screen)
}

// DrawButtons 绘制所有可见按钮
func (s *RenderSystem) DrawButtons(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, id := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if button.Hidden || button.Style == components.ButtonStyleHidden {
			continue
		}
		s.drawButton(screen, button, pos.X, pos.Y)
	}
}

func (s *RenderSystem) drawButton(screen *ebiten.Image, b *components.ButtonComponent, x, y float64) {
	from, to := b.FillFrom, b.FillTo
	switch b.State {
	case components.UIHovered:
		from, to = utils.Lighten(from, 0.15), utils.Lighten(to, 0.15)
	case components.UIClicked:
		from, to = utils.BlendColors(from, to, 0.5), from
	case components.UIDisabled:
		from, to = utils.WithAlpha(from, 0.4), utils.WithAlpha(to, 0.4)
	}

	switch b.Style {
	case components.ButtonStylePrimary:
		s.batch.AddGradientRect(x, y, b.Width, b.Height, from, to)
		s.batch.Flush(screen)
	case components.ButtonStyleGhost:
		if b.Active {
			s.batch.AddGradientRect(x, y, b.Width, b.Height, from, to)
			s.batch.Flush(screen)
		} else {
			vector.StrokeRect(screen, float32(x), float32(y), float32(b.Width), float32(b.Height), 1.5, utils.Straight(from), true)
		}
	}

	textColor := b.TextColor
	if b.State == components.UIDisabled {
		textColor = utils.WithAlpha(textColor, 0.5)
	}
	utils.DrawTextInBox(screen, b.Label, b.Font, utils.Rect{X: x, Y: y, Width: b.Width, Height: b.Height}, utils.Straight(textColor))
}
