package systems

import (
	"fmt"
	"math"

	"github.com/decker502/birthday/internal/logger"
	"github.com/decker502/birthday/pkg/components"
	"github.com/decker502/birthday/pkg/config"
	"github.com/decker502/birthday/pkg/ecs"
	"github.com/decker502/birthday/pkg/utils"
)

// 漂浮装饰动画参数
const (
	floatingSwayRatio = 0.6  // 摆动幅度相对尺寸的比例
	floatingMaxAlpha  = 0.7  // 装饰始终半透明，不抢前景
	floatingFadeIn    = 0.1  // 进度 [0, 0.1) 淡入
	floatingFadeOut   = 0.85 // 进度 [0.85, 1) 淡出
)

// FloatingSystem 背景漂浮装饰系统
// 装饰从屏幕底部升到顶部后循环，首次出现前有各自的延迟
type FloatingSystem struct {
	entityManager *ecs.EntityManager
	screenWidth   float64
	screenHeight  float64
}

// NewFloatingSystem 创建漂浮装饰系统
func NewFloatingSystem(em *ecs.EntityManager, screenWidth, screenHeight float64) *FloatingSystem {
	return &FloatingSystem{
		entityManager: em,
		screenWidth:   screenWidth,
		screenHeight:  screenHeight,
	}
}

// ParseFloatingKind 将配置中的种类名转换为组件枚举
func ParseFloatingKind(kind string) (components.FloatingKind, error) {
	switch kind {
	case config.FloatingHeart:
		return components.FloatingHeart, nil
	case config.FloatingStar:
		return components.FloatingStar, nil
	case config.FloatingSparkle:
		return components.FloatingSparkle, nil
	case config.FloatingBalloon:
		return components.FloatingBalloon, nil
	default:
		return 0, fmt.Errorf("unknown floating kind %q", kind)
	}
}

// Spawn 按配置创建所有漂浮装饰，返回创建的实体
func (s *FloatingSystem) Spawn(items []config.FloatingConfig) ([]ecs.EntityID, error) {
	ids := make([]ecs.EntityID, 0, len(items))

	for i, item := range items {
		kind, err := ParseFloatingKind(item.Kind)
		if err != nil {
			return ids, fmt.Errorf("floating[%d]: %w", i, err)
		}
		clr, err := config.ParseColor(item.Color)
		if err != nil {
			return ids, fmt.Errorf("floating[%d]: %w", i, err)
		}

		id := s.entityManager.CreateEntity()
		baseX := item.X * s.screenWidth
		ecs.AddComponent(s.entityManager, id, &components.PositionComponent{X: baseX, Y: s.screenHeight + item.Size})
		ecs.AddComponent(s.entityManager, id, &components.FloatingComponent{
			Kind:     kind,
			Color:    clr,
			BaseX:    baseX,
			Sway:     item.Size * floatingSwayRatio,
			Size:     item.Size,
			Delay:    item.Delay,
			Duration: item.Duration,
		})
		ids = append(ids, id)
	}

	logger.Logger().Debugf("[FloatingSystem] 创建 %d 个漂浮装饰", len(ids))
	return ids, nil
}

// Update 推进所有漂浮装饰
func (s *FloatingSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.FloatingComponent, *components.PositionComponent](s.entityManager)

	for _, id := range entities {
		f, _ := ecs.GetComponent[*components.FloatingComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		f.Age += deltaTime
		if f.Age < f.Delay || f.Duration <= 0 {
			f.Alpha = 0
			continue
		}

		t := math.Mod(f.Age-f.Delay, f.Duration) / f.Duration

		// 从屏幕下方一个尺寸处升到屏幕上方一个尺寸处
		travel := s.screenHeight + 2*f.Size
		pos.Y = s.screenHeight + f.Size - t*travel
		pos.X = f.BaseX + math.Sin(t*2*math.Pi)*f.Sway
		f.Rotation = t * 2 * math.Pi

		switch {
		case t < floatingFadeIn:
			f.Alpha = floatingMaxAlpha * t / floatingFadeIn
		case t > floatingFadeOut:
			f.Alpha = floatingMaxAlpha * (1 - t) / (1 - floatingFadeOut)
		default:
			f.Alpha = floatingMaxAlpha
		}
		f.Alpha = utils.Clamp01(f.Alpha)
	}
}
