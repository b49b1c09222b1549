package scenes

import (
	"image/color"

	"github.com/decker502/birthday/pkg/celebration"
	"github.com/decker502/birthday/pkg/config"
	"github.com/decker502/birthday/pkg/ecs"
	"github.com/decker502/birthday/pkg/entities"
	"github.com/decker502/birthday/pkg/game"
	"github.com/decker502/birthday/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// Context 场景共享的依赖
//
// 场景只把点击转换成 Session 事件并根据 Session.View() 绘制，
// 不持有任何流程规则。
type Context struct {
	Session *celebration.Session
	Config  *config.CelebrationConfig
	// UI 存放可点击实体（按钮、点击区域），由 InputSystem 派发点击
	UI    *ecs.EntityManager
	Fonts *utils.FontSet
}

// 配色
var (
	TitleColor     = color.RGBA{R: 0xbe, G: 0x18, B: 0x5d, A: 0xff}
	BodyColor      = color.RGBA{R: 0x58, G: 0x1c, B: 0x87, A: 0xff}
	HintColor      = color.RGBA{R: 0x9d, G: 0x6b, B: 0xb0, A: 0xff}
	BackgroundTop  = color.RGBA{R: 0xfd, G: 0xf2, B: 0xf8, A: 0xff}
	BackgroundDown = color.RGBA{R: 0xf3, G: 0xe8, B: 0xff, A: 0xff}

	CakeCream     = color.RGBA{R: 0xfe, G: 0xf3, B: 0xc7, A: 0xff}
	CakeSponge    = color.RGBA{R: 0xf9, G: 0xa8, B: 0xd4, A: 0xff}
	CakeChocolate = color.RGBA{R: 0x92, G: 0x40, B: 0x0e, A: 0xff}
	CakePlate     = color.RGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff}
	CandleStripe  = color.RGBA{R: 0x93, G: 0xc5, B: 0xfd, A: 0xff}
	CandleWax     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	FlameOuter    = color.RGBA{R: 0xf9, G: 0x73, B: 0x16, A: 0xff}
	FlameInner    = color.RGBA{R: 0xfd, G: 0xe0, B: 0x47, A: 0xff}
	SmokeColor    = color.RGBA{R: 0x9c, G: 0xa3, B: 0xaf, A: 0xff}
	KnifeBlade    = color.RGBA{R: 0xcb, G: 0xd5, B: 0xe1, A: 0xff}
	KnifeHandle   = color.RGBA{R: 0x78, G: 0x35, B: 0x0f, A: 0xff}
	EnvelopeBody  = color.RGBA{R: 0xfc, G: 0xe7, B: 0xf3, A: 0xff}
	EnvelopeFlap  = color.RGBA{R: 0xf9, G: 0xa8, B: 0xd4, A: 0xff}
	PaperColor    = color.RGBA{R: 0xff, G: 0xfb, B: 0xf0, A: 0xff}
)

// sceneBase 场景公共部分：共享依赖、本场景创建的实体、进入后经过的时间
type sceneBase struct {
	ctx      *Context
	entities []ecs.EntityID
	elapsed  float64
	batch    utils.TriangleBatch
}

func (b *sceneBase) track(id ecs.EntityID) ecs.EntityID {
	b.entities = append(b.entities, id)
	return id
}

// OnExit 删除本场景创建的所有实体
func (b *sceneBase) OnExit() {
	entities.DestroyAll(b.ctx.UI, b.entities)
	b.entities = nil
}

// Update 推进场景计时
func (b *sceneBase) Update(deltaTime float64) {
	b.elapsed += deltaTime
}

// drawHeader 绘制场景标题与描述
func (b *sceneBase) drawHeader(screen *ebiten.Image, title, description string) {
	fonts := b.ctx.Fonts
	utils.DrawCenteredText(screen, title, fonts.Title, config.GameWindowWidth/2, config.SceneTitleY, TitleColor)
	utils.DrawCenteredText(screen, description, fonts.Body, config.GameWindowWidth/2, config.SceneDescriptionY, BodyColor)
}

// drawHint 绘制一行提示文字，alpha 为 0-1
func (b *sceneBase) drawHint(screen *ebiten.Image, hint string, y, alpha float64) {
	utils.DrawCenteredText(screen, hint, b.ctx.Fonts.Body, config.GameWindowWidth/2, y,
		utils.Straight(utils.WithAlpha(HintColor, alpha)))
}
