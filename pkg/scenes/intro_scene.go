package scenes

import (
	"github.com/decker502/birthday/pkg/config"
	"github.com/decker502/birthday/pkg/entities"
	"github.com/decker502/birthday/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 开场动画参数
const (
	introTitleFadeIn  = 0.8 // 标题淡入时长（秒）
	introSubtitleAt   = 0.5 // 副标题开始出现的时间
	introPulsePeriod  = 2.0
	introHeroY        = 190.0
	introSubtitleY    = 290.0
	introHeartsY      = 380.0
	introHeartSpacing = 44.0
)

// IntroScene 开场页：标题、副标题和"开始庆祝"按钮
type IntroScene struct {
	sceneBase
}

// NewIntroScene 创建开场场景
func NewIntroScene(ctx *Context) *IntroScene {
	return &IntroScene{sceneBase: sceneBase{ctx: ctx}}
}

// OnEnter 创建开始按钮
func (s *IntroScene) OnEnter() {
	s.track(entities.NewPrimaryButton(s.ctx.UI, s.ctx.Fonts.Bold, s.ctx.Config.Texts.StartButton,
		config.GameWindowWidth/2, config.PrimaryButtonY,
		func() { s.ctx.Session.Start() }))
}

// Draw 绘制开场页
func (s *IntroScene) Draw(screen *ebiten.Image) {
	texts := s.ctx.Config.Texts
	fonts := s.ctx.Fonts
	cx := float64(config.GameWindowWidth) / 2

	titleAlpha := utils.EaseOutCubic(utils.Progress(s.elapsed, 0, introTitleFadeIn))
	utils.DrawCenteredText(screen, texts.IntroTitle, fonts.Hero, cx, introHeroY,
		utils.Straight(utils.WithAlpha(TitleColor, titleAlpha)))

	subAlpha := utils.Progress(s.elapsed, introSubtitleAt, introTitleFadeIn)
	utils.DrawWrappedText(screen, texts.IntroSubtitle, fonts.Body, cx, introSubtitleY,
		config.GameWindowWidth-160, config.FontSizeBody*1.5,
		utils.Straight(utils.WithAlpha(BodyColor, subAlpha)))

	// 三颗心跳动
	for i := -1; i <= 1; i++ {
		scale := utils.Pulse(s.elapsed+float64(i+1)*0.3, introPulsePeriod/2, 0.85, 1.1)
		s.batch.AddHeart(cx+float64(i)*introHeartSpacing, introHeartsY, 26*scale, utils.WithAlpha(TitleColor, subAlpha))
	}
	s.batch.Flush(screen)

	s.drawHint(screen, texts.StartHint, config.ContinueButtonY+20, subAlpha*utils.Pulse(s.elapsed, introPulsePeriod, 0.5, 1))
}
