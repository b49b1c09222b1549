package scenes

import (
	"fmt"

	"github.com/decker502/birthday/pkg/celebration"
	"github.com/decker502/birthday/pkg/config"
	"github.com/decker502/birthday/pkg/ecs"
	"github.com/decker502/birthday/pkg/entities"
	"github.com/decker502/birthday/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CuttingScene 切蛋糕场景
//
// 每次点击蛋糕切一刀：刀下压再抬起，期间的点击被忽略（由 CutActivity 保证）。
// 三刀之后显示"蛋糕切好了"和继续按钮。
type CuttingScene struct {
	sceneBase

	cakeArea    ecs.EntityID
	continueBtn ecs.EntityID

	// 当前这一刀已进行的时间，不在切割中时为 0
	cutElapsed float64
}

// NewCuttingScene 创建切蛋糕场景
func NewCuttingScene(ctx *Context) *CuttingScene {
	return &CuttingScene{sceneBase: sceneBase{ctx: ctx}}
}

// CakeHitArea 切蛋糕场景中蛋糕（含刀）的点击区域
func CakeHitArea() utils.Rect {
	top := config.KnifeBaseY
	return utils.Rect{
		X:      config.CuttingCakeX,
		Y:      top,
		Width:  config.CuttingCakeWidth,
		Height: config.CuttingCakeY + config.CuttingCakeHeight - top,
	}
}

// OnEnter 创建蛋糕点击区域和继续按钮
func (s *CuttingScene) OnEnter() {
	session := s.ctx.Session

	s.cakeArea = s.track(entities.NewHitArea(s.ctx.UI, CakeHitArea(), func() { session.Cut() }))
	s.continueBtn = s.track(entities.NewPrimaryButton(s.ctx.UI, s.ctx.Fonts.Bold, s.ctx.Config.Texts.ContinueToLetter,
		config.GameWindowWidth/2, config.ContinueButtonY,
		func() { session.Navigate(celebration.SceneLetterReveal) }))

	s.sync(session.View())
}

// Update 推进刀的动画并同步按钮
func (s *CuttingScene) Update(deltaTime float64) {
	s.sceneBase.Update(deltaTime)

	view := s.ctx.Session.View()
	if view.Cutting {
		s.cutElapsed += deltaTime
	} else {
		s.cutElapsed = 0
	}
	s.sync(view)
}

func (s *CuttingScene) sync(view celebration.View) {
	entities.SetClickEnabled(s.ctx.UI, s.cakeArea, !view.CakeCut)
	entities.SetButtonVisible(s.ctx.UI, s.continueBtn, view.CakeCut)
	entities.SetClickEnabled(s.ctx.UI, s.continueBtn, view.CakeCut)
}

// knifeDepth 刀的下压深度：前半段按 EaseOutCubic 压下，后半段抬起
func (s *CuttingScene) knifeDepth(cutting bool) float64 {
	if !cutting {
		return 0
	}
	duration := s.ctx.Config.Timing.CutDuration
	p := utils.Progress(s.cutElapsed, 0, duration)
	if p < 0.5 {
		return config.KnifeCutDepth * utils.EaseOutCubic(p*2)
	}
	return config.KnifeCutDepth * (1 - utils.EaseInOutSine((p-0.5)*2))
}

// Draw 绘制蛋糕、切痕、刀和提示
func (s *CuttingScene) Draw(screen *ebiten.Image) {
	texts := s.ctx.Config.Texts
	view := s.ctx.Session.View()

	s.drawHeader(screen, texts.CuttingTitle, texts.CuttingDescription)

	x, y := config.CuttingCakeX, config.CuttingCakeY
	w, h := config.CuttingCakeWidth, config.CuttingCakeHeight

	s.batch.AddRect(x-16, y+h, w+32, config.CakePlateHeight, CakePlate)
	s.batch.AddGradientRect(x, y, w, h*0.35, CakeCream, CakeSponge)
	s.batch.AddGradientRect(x, y+h*0.35, w, h*0.65, CakeChocolate, utils.BlendColors(CakeChocolate, CakeSponge, 0.3))
	for i := 0; i < 8; i++ {
		s.batch.AddCircle(x+w*(float64(i)+0.5)/8, y+4, 8, 12, CakeCream)
	}
	s.batch.Flush(screen)

	// 已完成的切痕
	knife := s.ctx.Config.Knife
	for i := 0; i < view.Slices; i++ {
		lx := float32(x + knife.StartX + float64(i)*knife.Step)
		vector.StrokeLine(screen, lx, float32(y), lx, float32(y+h), 2, utils.Straight(KnifeHandle), true)
	}

	if !view.CakeCut {
		s.drawKnife(screen, x+view.KnifeX, s.knifeDepth(view.Cutting))
	}

	if view.CakeCut {
		utils.DrawCenteredText(screen, texts.CakeReady, s.ctx.Fonts.Title,
			config.GameWindowWidth/2, config.InstructionTextY-8, TitleColor)
		return
	}
	s.drawHint(screen, fmt.Sprintf(texts.CutInstruction, view.CutsRemaining), config.InstructionTextY, utils.Pulse(s.elapsed, 2, 0.55, 1))
}

func (s *CuttingScene) drawKnife(screen *ebiten.Image, x, depth float64) {
	handleY := config.KnifeBaseY + depth
	s.batch.AddRect(x-config.KnifeHandleWidth/2, handleY, config.KnifeHandleWidth, config.KnifeHandleHeight, KnifeHandle)

	bladeTop := handleY + config.KnifeHandleHeight
	hw := config.KnifeBladeWidth / 2
	s.batch.AddPolygon([][2]float64{
		{x - hw, bladeTop},
		{x + hw, bladeTop},
		{x + hw, bladeTop + config.KnifeBladeHeight - 10},
		{x, bladeTop + config.KnifeBladeHeight},
		{x - hw, bladeTop + config.KnifeBladeHeight - 10},
	}, KnifeBlade)

	// 刀刃反光
	glint := utils.Pulse(s.elapsed, 1.6, 0.2, 0.7)
	s.batch.AddQuad(x, bladeTop+config.KnifeBladeHeight*0.3, 2, config.KnifeBladeHeight*0.4, 0,
		utils.WithAlpha(CandleWax, glint))
	s.batch.Flush(screen)
}
