package celebration

// Scene 顶层场景
type Scene int

const (
	// SceneIntro 开场页
	SceneIntro Scene = iota
	// SceneCandleBlowing 吹蜡烛
	SceneCandleBlowing
	// SceneCakeCutting 切蛋糕
	SceneCakeCutting
	// SceneLetterReveal 拆信
	SceneLetterReveal
)

// NavigableScenes 导航栏中出现的场景（按显示顺序）
// Intro 只能通过 Start 离开，不出现在导航栏中
var NavigableScenes = []Scene{SceneCandleBlowing, SceneCakeCutting, SceneLetterReveal}

// String 返回场景的名称
func (s Scene) String() string {
	switch s {
	case SceneIntro:
		return "intro"
	case SceneCandleBlowing:
		return "candle-blowing"
	case SceneCakeCutting:
		return "cake-cutting"
	case SceneLetterReveal:
		return "letter-reveal"
	default:
		return "unknown"
	}
}

// Valid 判断是否为已定义的场景
func (s Scene) Valid() bool {
	return s >= SceneIntro && s <= SceneLetterReveal
}

// ParseScene 根据名称解析场景
func ParseScene(name string) (Scene, bool) {
	for s := SceneIntro; s <= SceneLetterReveal; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return SceneIntro, false
}
