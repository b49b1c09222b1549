package scenes

import (
	"math"

	"github.com/decker502/birthday/pkg/celebration"
	"github.com/decker502/birthday/pkg/config"
	"github.com/decker502/birthday/pkg/ecs"
	"github.com/decker502/birthday/pkg/entities"
	"github.com/decker502/birthday/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 吹蜡烛场景的动画参数
const (
	wobbleAmplitude = 4.0  // 晃动幅度（像素）
	wobbleFrequency = 38.0 // 弧度/秒
	flickerPeriod   = 0.35
	smokeDuration   = 1.2 // 熄灭后烟雾持续时间
	smokeRise       = 36.0
)

// CandleScene 吹蜡烛场景
//
// 点击单根蜡烛吹灭它，或点击"一起吹"按钮全部吹灭。
// 完成信号发出后显示"许愿成功"和继续按钮。
type CandleScene struct {
	sceneBase

	candleAreas [celebration.CandleCount]ecs.EntityID
	blowAll     ecs.EntityID
	continueBtn ecs.EntityID

	// 每根蜡烛熄灭的时刻（场景时间），用于烟雾动画
	outAt [celebration.CandleCount]float64
	seen  [celebration.CandleCount]bool
}

// NewCandleScene 创建吹蜡烛场景
func NewCandleScene(ctx *Context) *CandleScene {
	return &CandleScene{sceneBase: sceneBase{ctx: ctx}}
}

// CandleHitArea 第 i 根蜡烛（含火焰）的点击区域
func CandleHitArea(i int) utils.Rect {
	x := config.CandleX(i, celebration.CandleCount)
	top := config.CandleTopY() - config.FlameHeight
	return utils.Rect{
		X:      x - config.CandleWidth/2 - config.CandleHitPadding,
		Y:      top - config.CandleHitPadding,
		Width:  config.CandleWidth + 2*config.CandleHitPadding,
		Height: config.CandleHeight + config.FlameHeight + 2*config.CandleHitPadding,
	}
}

// OnEnter 创建蜡烛点击区域和按钮
func (s *CandleScene) OnEnter() {
	ui := s.ctx.UI
	session := s.ctx.Session
	texts := s.ctx.Config.Texts

	for i := range s.candleAreas {
		index := i
		s.candleAreas[i] = s.track(entities.NewHitArea(ui, CandleHitArea(i), func() { session.BlowCandle(index) }))
	}

	s.blowAll = s.track(entities.NewPrimaryButton(ui, s.ctx.Fonts.Bold, texts.BlowAllButton,
		config.GameWindowWidth/2, config.PrimaryButtonY, func() { session.BlowAll() }))

	s.continueBtn = s.track(entities.NewPrimaryButton(ui, s.ctx.Fonts.Bold, texts.ContinueToCutting,
		config.GameWindowWidth/2, config.ContinueButtonY,
		func() { session.Navigate(celebration.SceneCakeCutting) }))

	// 从其他场景返回时，已熄灭的蜡烛不再播放烟雾
	view := session.View()
	for i, lit := range view.Candles {
		s.seen[i] = !lit
		s.outAt[i] = -smokeDuration
	}
	s.sync(view)
}

// Update 同步点击区域与按钮状态
func (s *CandleScene) Update(deltaTime float64) {
	s.sceneBase.Update(deltaTime)
	s.sync(s.ctx.Session.View())
}

func (s *CandleScene) sync(view celebration.View) {
	ui := s.ctx.UI
	for i, lit := range view.Candles {
		entities.SetClickEnabled(ui, s.candleAreas[i], lit)
		if !lit && !s.seen[i] {
			s.seen[i] = true
			s.outAt[i] = s.elapsed
		}
	}
	entities.SetButtonVisible(ui, s.blowAll, !view.CandlesOut)
	entities.SetClickEnabled(ui, s.blowAll, !view.CandlesOut)
	entities.SetButtonVisible(ui, s.continueBtn, view.CandlesBlown)
	entities.SetClickEnabled(ui, s.continueBtn, view.CandlesBlown)
}

// Draw 绘制蛋糕、蜡烛与提示
func (s *CandleScene) Draw(screen *ebiten.Image) {
	texts := s.ctx.Config.Texts
	view := s.ctx.Session.View()

	s.drawHeader(screen, texts.CandleTitle, texts.CandleDescription)

	offset := 0.0
	if view.Blowing {
		offset = math.Sin(s.elapsed*wobbleFrequency) * wobbleAmplitude
	}

	s.drawCake(offset)
	for i, lit := range view.Candles {
		s.drawCandle(i, lit, offset)
	}
	s.batch.Flush(screen)

	switch {
	case view.CandlesBlown:
		utils.DrawCenteredText(screen, texts.WishGranted, s.ctx.Fonts.Title,
			config.GameWindowWidth/2, config.InstructionTextY-8, TitleColor)
	case !view.CandlesOut:
		s.drawHint(screen, texts.BlowInstruction, config.InstructionTextY, utils.Pulse(s.elapsed, 2, 0.55, 1))
	}
}

func (s *CandleScene) drawCake(offset float64) {
	cx := config.CakeCenterX + offset
	y := config.CakeTopY

	// 顶层、中层、底层依次变宽
	s.batch.AddGradientRect(cx-config.CakeTopWidth/2, y, config.CakeTopWidth, config.CakeTopHeight, CakeCream, CakeSponge)
	y += config.CakeTopHeight
	s.batch.AddGradientRect(cx-config.CakeMiddleWidth/2, y, config.CakeMiddleWidth, config.CakeMiddleHeight, CakeSponge, CakeCream)
	y += config.CakeMiddleHeight
	s.batch.AddGradientRect(cx-config.CakeBottomWidth/2, y, config.CakeBottomWidth, config.CakeBottomHeight, CakeCream, CakeSponge)
	y += config.CakeBottomHeight
	s.batch.AddRect(cx-config.CakePlateWidth/2, y, config.CakePlateWidth, config.CakePlateHeight, CakePlate)

	// 奶油点缀
	for i := 0; i < 7; i++ {
		dx := (float64(i) - 3) * config.CakeTopWidth / 7
		s.batch.AddCircle(cx+dx, config.CakeTopY+4, 7, 12, CakeCream)
	}
}

func (s *CandleScene) drawCandle(i int, lit bool, offset float64) {
	x := config.CandleX(i, celebration.CandleCount) + offset
	top := config.CandleTopY()

	s.batch.AddRect(x-config.CandleWidth/2, top, config.CandleWidth, config.CandleHeight, CandleWax)
	for stripe := 0; stripe < 3; stripe++ {
		sy := top + 8 + float64(stripe)*14
		s.batch.AddQuad(x, sy, config.CandleWidth, 4, -0.35, CandleStripe)
	}

	if lit {
		flicker := utils.Pulse(s.elapsed+float64(i)*0.07, flickerPeriod, 0.85, 1.08)
		fh := config.FlameHeight * flicker
		fw := config.FlameWidth
		base := top - 2
		s.batch.AddPolygon(flamePoints(x, base, fw, fh), FlameOuter)
		s.batch.AddPolygon(flamePoints(x, base, fw*0.5, fh*0.6), FlameInner)
		return
	}

	// 熄灭后的一缕烟
	since := s.elapsed - s.outAt[i]
	if since >= 0 && since < smokeDuration {
		p := since / smokeDuration
		alpha := 0.6 * (1 - p)
		for k := 0; k < 3; k++ {
			ky := top - 6 - p*smokeRise - float64(k)*8
			kx := x + math.Sin(p*6+float64(k))*4
			s.batch.AddCircle(kx, ky, 3+float64(k), 10, utils.WithAlpha(SmokeColor, alpha))
		}
	}
}

// flamePoints 水滴形火焰轮廓：底部半圆加顶端尖角
func flamePoints(cx, baseY, width, height float64) [][2]float64 {
	r := width / 2
	points := make([][2]float64, 0, 12)
	points = append(points, [2]float64{cx, baseY - height})
	for k := 0; k <= 10; k++ {
		a := math.Pi * float64(k) / 10
		points = append(points, [2]float64{cx + r*math.Cos(a), baseY - r + r*math.Sin(a)})
	}
	return points
}
