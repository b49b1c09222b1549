package systems

import (
	"github.com/decker502/birthday/internal/logger"
	"github.com/decker502/birthday/pkg/components"
	"github.com/decker502/birthday/pkg/ecs"
	"github.com/decker502/birthday/pkg/utils"
)

// InputSystem 处理指针（鼠标/触摸）与可点击实体的交互
//
// 职责：
//   - 更新每个可点击实体的悬停状态（按钮同步 UIState）
//   - 指针按下时，只把点击派发给最上层的命中实体（实体 ID 最大者）
//   - 隐藏或禁用的实体既不悬停也不响应点击
//
// 点击回调在遍历结束后调用，回调中可以安全地增删实体（例如切换场景）。
type InputSystem struct {
	entityManager *ecs.EntityManager
	pointer       utils.PointerSource

	hovering bool
}

// NewInputSystem 创建输入系统
// pointer 为 nil 时使用真实的鼠标/触摸输入
func NewInputSystem(em *ecs.EntityManager, pointer utils.PointerSource) *InputSystem {
	if pointer == nil {
		pointer = utils.GetInputState
	}
	return &InputSystem{
		entityManager: em,
		pointer:       pointer,
	}
}

// Update 处理本帧输入，返回是否有实体被点击
func (s *InputSystem) Update(deltaTime float64) bool {
	state := s.pointer()
	px, py := float64(state.X), float64(state.Y)

	entities := ecs.GetEntitiesWith2[*components.ClickableComponent, *components.PositionComponent](s.entityManager)

	var target *components.ClickableComponent
	var targetID ecs.EntityID
	s.hovering = false

	for _, id := range entities {
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		button, isButton := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)

		if isButton && button.Hidden {
			clickable.Hovered = false
			continue
		}

		if !clickable.IsEnabled {
			clickable.Hovered = false
			if isButton {
				button.State = components.UIDisabled
			}
			continue
		}

		rect := utils.Rect{X: pos.X, Y: pos.Y, Width: clickable.Width, Height: clickable.Height}
		clickable.Hovered = rect.Contains(px, py)

		if isButton {
			switch {
			case clickable.Hovered && state.JustPressed:
				button.State = components.UIClicked
			case clickable.Hovered:
				button.State = components.UIHovered
			default:
				button.State = components.UINormal
			}
		}

		if clickable.Hovered {
			s.hovering = true
			// 升序遍历，后命中的实体位于更上层
			target = clickable
			targetID = id
		}
	}

	if !state.JustPressed || target == nil || target.OnClick == nil {
		return false
	}

	logger.Logger().Debugf("[InputSystem] 点击实体 %d (%d, %d)", targetID, state.X, state.Y)
	target.OnClick()
	return true
}

// Hovering 返回上一帧指针是否悬停在可点击实体上（用于切换光标形状）
func (s *InputSystem) Hovering() bool {
	return s.hovering
}
