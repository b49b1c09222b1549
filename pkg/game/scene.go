package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the celebration (intro, candles, cake, letter).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Enterable 是一个可选接口，场景成为当前场景时被调用
//
// 场景在这里创建自己的可点击实体（按钮、蜡烛、刀、信封）
type Enterable interface {
	OnEnter()
}

// Exitable 是一个可选接口，场景被替换时被调用
//
// 场景在这里删除 OnEnter 中创建的实体，保证世界中只保留当前场景的交互元素
type Exitable interface {
	OnExit()
}
