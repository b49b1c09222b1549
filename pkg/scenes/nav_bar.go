package scenes

import (
	"github.com/decker502/birthday/pkg/celebration"
	"github.com/decker502/birthday/pkg/components"
	"github.com/decker502/birthday/pkg/config"
	"github.com/decker502/birthday/pkg/ecs"
	"github.com/decker502/birthday/pkg/entities"
	"github.com/decker502/birthday/pkg/utils"
)

// 未解锁项的文字透明度
const navLockedAlpha = 0.45

// NavBar 顶部导航栏（蜡烛 / 蛋糕 / 信件）
//
// 导航栏实体在启动时创建一次，跨场景保留。
// 按钮总是把点击转发给 Session.Navigate，是否允许跳转由流程控制器决定；
// 未解锁的项只是显示为半透明。
type NavBar struct {
	ctx     *Context
	buttons map[celebration.Scene]ecs.EntityID
}

// NewNavBar 创建导航栏实体（初始隐藏）
func NewNavBar(ctx *Context) *NavBar {
	nb := &NavBar{
		ctx:     ctx,
		buttons: make(map[celebration.Scene]ecs.EntityID, len(celebration.NavigableScenes)),
	}

	count := len(celebration.NavigableScenes)
	for i, scene := range celebration.NavigableScenes {
		target := scene
		id := entities.NewNavButton(ctx.UI, ctx.Fonts.Small, nb.label(scene),
			config.NavButtonX(i, count), config.NavBarY,
			func() { ctx.Session.Navigate(target) })
		entities.SetButtonVisible(ctx.UI, id, false)
		nb.buttons[scene] = id
	}

	return nb
}

func (nb *NavBar) label(scene celebration.Scene) string {
	texts := nb.ctx.Config.Texts
	switch scene {
	case celebration.SceneCandleBlowing:
		return texts.NavCandles
	case celebration.SceneCakeCutting:
		return texts.NavCutting
	case celebration.SceneLetterReveal:
		return texts.NavLetter
	default:
		return scene.String()
	}
}

// Update 根据会话快照同步导航栏的可见性、选中项与锁定状态
func (nb *NavBar) Update(view celebration.View) {
	for _, item := range view.Nav {
		id, ok := nb.buttons[item.Scene]
		if !ok {
			continue
		}
		entities.SetButtonVisible(nb.ctx.UI, id, view.NavVisible)

		button, ok := ecs.GetComponent[*components.ButtonComponent](nb.ctx.UI, id)
		if !ok {
			continue
		}
		button.Active = item.Active
		switch {
		case item.Active:
			button.TextColor = entities.ButtonTextColor
		case item.Unlocked:
			button.TextColor = entities.NavInactiveColor
		default:
			button.TextColor = utils.WithAlpha(entities.NavInactiveColor, navLockedAlpha)
		}
	}
}

// ButtonFor 返回指定场景对应的导航按钮实体
func (nb *NavBar) ButtonFor(scene celebration.Scene) (ecs.EntityID, bool) {
	id, ok := nb.buttons[scene]
	return id, ok
}
