package scenes

import (
	"github.com/decker502/birthday/pkg/celebration"
	"github.com/decker502/birthday/pkg/game"
)

// NewFactory 返回按场景标识创建展示层场景的工厂
func NewFactory(ctx *Context) game.SceneFactory {
	return func(id celebration.Scene) game.Scene {
		switch id {
		case celebration.SceneIntro:
			return NewIntroScene(ctx)
		case celebration.SceneCandleBlowing:
			return NewCandleScene(ctx)
		case celebration.SceneCakeCutting:
			return NewCuttingScene(ctx)
		case celebration.SceneLetterReveal:
			return NewLetterScene(ctx)
		default:
			return nil
		}
	}
}
