package entities

import (
	"image/color"
	"math"

	"github.com/decker502/birthday/pkg/celebration"
	"github.com/decker502/birthday/pkg/components"
	"github.com/decker502/birthday/pkg/config"
	"github.com/decker502/birthday/pkg/ecs"
	"github.com/decker502/birthday/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 按钮配色
var (
	ButtonTextColor  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	NavInactiveColor = color.RGBA{R: 0x9d, G: 0x17, B: 0x4d, A: 0xff}
)

// NewPrimaryButton 创建粉紫渐变的主按钮实体（水平居中于 centerX）
//
// 参数：
//   - em: 实体管理器
//   - font: 按钮文字字体（nil 时按最小宽度布局）
//   - label: 按钮文字
//   - centerX, y: 按钮水平中心与上沿（屏幕坐标）
//   - onClick: 点击回调函数
//
// 返回：
//   - 按钮实体ID
func NewPrimaryButton(em *ecs.EntityManager, font *text.GoTextFace, label string, centerX, y float64, onClick func()) ecs.EntityID {
	width := ButtonWidth(font, label)

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: centerX - width/2, Y: y})
	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Style:     components.ButtonStylePrimary,
		Label:     label,
		Font:      font,
		FillFrom:  celebration.ColorPink,
		FillTo:    celebration.ColorPurple,
		TextColor: ButtonTextColor,
		Width:     width,
		Height:    config.ButtonHeight,
		State:     components.UINormal,
	})
	ecs.AddComponent(em, entity, &components.ClickableComponent{
		Width:     width,
		Height:    config.ButtonHeight,
		IsEnabled: true,
		OnClick:   onClick,
	})

	return entity
}

// NewNavButton 创建导航栏按钮实体（左上角位于 x, y）
func NewNavButton(em *ecs.EntityManager, font *text.GoTextFace, label string, x, y float64, onClick func()) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Style:     components.ButtonStyleGhost,
		Label:     label,
		Font:      font,
		FillFrom:  celebration.ColorPink,
		FillTo:    celebration.ColorPurple,
		TextColor: NavInactiveColor,
		Width:     config.NavButtonWidth,
		Height:    config.NavBarHeight,
		State:     components.UINormal,
	})
	ecs.AddComponent(em, entity, &components.ClickableComponent{
		Width:     config.NavButtonWidth,
		Height:    config.NavBarHeight,
		IsEnabled: true,
		OnClick:   onClick,
	})

	return entity
}

// NewHitArea 创建不可见的点击区域（蜡烛、蛋糕、信封）
func NewHitArea(em *ecs.EntityManager, area utils.Rect, onClick func()) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: area.X, Y: area.Y})
	ecs.AddComponent(em, entity, &components.ClickableComponent{
		Width:     area.Width,
		Height:    area.Height,
		IsEnabled: true,
		OnClick:   onClick,
	})
	return entity
}

// ButtonWidth 计算主按钮宽度：文字宽度加左右内边距，不小于最小宽度
func ButtonWidth(font *text.GoTextFace, label string) float64 {
	if font == nil {
		return config.ButtonMinWidth
	}
	w, _ := text.Measure(label, font, 0)
	return math.Max(config.ButtonMinWidth, w+2*config.ButtonPaddingX)
}

// SetButtonVisible 显示或隐藏按钮；隐藏的按钮不绘制也不响应点击
func SetButtonVisible(em *ecs.EntityManager, id ecs.EntityID, visible bool) {
	if button, ok := ecs.GetComponent[*components.ButtonComponent](em, id); ok {
		button.Hidden = !visible
	}
}

// SetClickEnabled 启用或禁用实体的点击
func SetClickEnabled(em *ecs.EntityManager, id ecs.EntityID, enabled bool) {
	if clickable, ok := ecs.GetComponent[*components.ClickableComponent](em, id); ok {
		clickable.IsEnabled = enabled
	}
}

// DestroyAll 标记一组实体待删除
func DestroyAll(em *ecs.EntityManager, ids []ecs.EntityID) {
	for _, id := range ids {
		em.DestroyEntity(id)
	}
}
