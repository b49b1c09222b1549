package scenes

import (
	"github.com/decker502/birthday/pkg/config"
	"github.com/decker502/birthday/pkg/ecs"
	"github.com/decker502/birthday/pkg/entities"
	"github.com/decker502/birthday/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 信件展开动画参数（秒）
const (
	paperSlideDuration = 0.6
	paragraphDelay     = 0.45 // 相邻段落出现的间隔
	paragraphFade      = 0.5
	paperSlideOffset   = 80.0 // 信纸从下方滑入的距离
)

// LetterScene 信件场景
//
// 关闭状态显示信封，点击后打开；打开后信纸滑入，段落依次淡入。
type LetterScene struct {
	sceneBase

	envelopeArea ecs.EntityID
}

// NewLetterScene 创建信件场景
func NewLetterScene(ctx *Context) *LetterScene {
	return &LetterScene{sceneBase: sceneBase{ctx: ctx}}
}

// EnvelopeHitArea 信封的点击区域
func EnvelopeHitArea() utils.Rect {
	return utils.Rect{
		X:      (config.GameWindowWidth - config.EnvelopeWidth) / 2,
		Y:      config.EnvelopeY,
		Width:  config.EnvelopeWidth,
		Height: config.EnvelopeHeight,
	}
}

// OnEnter 创建信封点击区域
func (s *LetterScene) OnEnter() {
	session := s.ctx.Session
	s.envelopeArea = s.track(entities.NewHitArea(s.ctx.UI, EnvelopeHitArea(), func() { session.OpenLetter() }))
	s.sync()
}

// Update 同步信封点击区域
func (s *LetterScene) Update(deltaTime float64) {
	s.sceneBase.Update(deltaTime)
	s.sync()
}

func (s *LetterScene) sync() {
	entities.SetClickEnabled(s.ctx.UI, s.envelopeArea, !s.ctx.Session.View().LetterOpen)
}

// Draw 绘制信封或展开的信纸
func (s *LetterScene) Draw(screen *ebiten.Image) {
	texts := s.ctx.Config.Texts
	view := s.ctx.Session.View()

	if !view.LetterOpen {
		s.drawHeader(screen, texts.LetterTitle, texts.LetterDescription)
		s.drawEnvelope(screen)
		s.drawHint(screen, texts.OpenInstruction, config.EnvelopeY+config.EnvelopeHeight+36,
			utils.Pulse(s.elapsed, 2, 0.55, 1))
		return
	}

	s.drawLetter(screen, view.LetterElapsed)
}

func (s *LetterScene) drawEnvelope(screen *ebiten.Image) {
	area := EnvelopeHitArea()

	// 轻微上下浮动
	bob := utils.Pulse(s.elapsed, 2.4, -4, 4)
	x, y, w, h := area.X, area.Y+bob, area.Width, area.Height

	s.batch.AddRect(x, y, w, h, EnvelopeBody)
	// 两侧折痕
	s.batch.AddPolygon([][2]float64{{x, y + h}, {x + w/2, y + h*0.45}, {x + w, y + h}}, utils.BlendColors(EnvelopeBody, EnvelopeFlap, 0.35))
	// 封口
	s.batch.AddPolygon([][2]float64{{x, y}, {x + w, y}, {x + w/2, y + h*0.55}}, EnvelopeFlap)
	// 爱心火漆
	s.batch.AddHeart(x+w/2, y+h*0.5, 36, TitleColor)
	s.batch.Flush(screen)
}

func (s *LetterScene) drawLetter(screen *ebiten.Image, opened float64) {
	letter := s.ctx.Config.Letter
	fonts := s.ctx.Fonts

	slide := utils.EaseOutCubic(utils.Progress(opened, 0, paperSlideDuration))
	px := float64(config.LetterPaperX)
	py := config.LetterPaperY + (1-slide)*paperSlideOffset
	s.batch.AddRect(px, py, config.LetterPaperW, config.LetterPaperH, utils.WithAlpha(PaperColor, slide))
	s.batch.AddRect(px, py, config.LetterPaperW, 4, utils.WithAlpha(CakeSponge, slide))
	s.batch.Flush(screen)

	cx := px + config.LetterPaperW/2
	maxWidth := config.LetterPaperW - 2*config.LetterPadding
	lineHeight := config.FontSizeBody * 1.35
	y := py + config.LetterPadding

	// 问候语、各段落、结尾、署名依次淡入
	blocks := make([]string, 0, len(letter.Paragraphs)+3)
	blocks = append(blocks, letter.Greeting)
	blocks = append(blocks, letter.Paragraphs...)
	blocks = append(blocks, letter.Closing, letter.Signature)

	for i, block := range blocks {
		alpha := utils.Progress(opened, paperSlideDuration+float64(i)*paragraphDelay, paragraphFade)
		font := fonts.Body
		clr := BodyColor
		if i == 0 || i == len(blocks)-1 {
			font = fonts.Bold
			clr = TitleColor
		}
		y = utils.DrawWrappedText(screen, block, font, cx, y, maxWidth, lineHeight,
			utils.Straight(utils.WithAlpha(clr, alpha)))
		y += lineHeight * 0.25
	}

	finalAt := paperSlideDuration + float64(len(blocks))*paragraphDelay
	finalAlpha := utils.Progress(opened, finalAt, paragraphFade)
	utils.DrawCenteredText(screen, s.ctx.Config.Texts.FinalMessage, fonts.Title,
		config.GameWindowWidth/2, config.LetterPaperY+config.LetterPaperH+12,
		utils.Straight(utils.WithAlpha(TitleColor, finalAlpha)))
}
