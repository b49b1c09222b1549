package systems

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/decker502/birthday/internal/logger"
	"github.com/decker502/birthday/pkg/celebration"
	"github.com/decker502/birthday/pkg/components"
	"github.com/decker502/birthday/pkg/ecs"
)

// 彩纸物理参数
const (
	confettiMinSpeed      = 420.0 // 像素/秒
	confettiMaxSpeed      = 720.0
	confettiGravity       = 520.0 // 像素/秒²
	confettiDrag          = 0.45  // 每秒保留的速度比例
	confettiMinLifetime   = 2.2   // 秒
	confettiMaxLifetime   = 3.4
	confettiFadeStart     = 0.7 // 生命周期进度超过该值后开始淡出
	confettiOffscreenPad  = 40.0
	defaultMaxConfetti    = 1200
	confettiMaxSpin       = 8.0 // 弧度/秒
	confettiMaxTiltSpeed  = 10.0
	confettiBaseSize      = 8.0
	confettiSizeVariation = 5.0
)

// ConfettiSystem 彩纸粒子系统
//
// 实现 celebration.Effects：Burst 在给定原点一次性生成 Count 个粒子，
// 初速度方向以"正上方"为中心、在 Spread 角度内对称分布。
// Update 负责重力、阻力、旋转与淡出；过期由 LifetimeSystem 处理，
// 落出屏幕底部的粒子在这里直接标记删除。
type ConfettiSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand

	screenWidth  float64
	screenHeight float64

	// MaxParticles 同时存在的粒子上限，超出的部分直接丢弃
	MaxParticles int
}

// NewConfettiSystem 创建彩纸系统
// seed 决定粒子的随机分布，测试中使用固定值以获得可复现的结果
func NewConfettiSystem(em *ecs.EntityManager, screenWidth, screenHeight float64, seed uint64) *ConfettiSystem {
	return &ConfettiSystem{
		entityManager: em,
		rng:           rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		screenWidth:   screenWidth,
		screenHeight:  screenHeight,
		MaxParticles:  defaultMaxConfetti,
	}
}

var _ celebration.Effects = (*ConfettiSystem)(nil)

// Burst 生成一次彩纸爆发
func (s *ConfettiSystem) Burst(b celebration.Burst) {
	if b.Count <= 0 {
		return
	}

	palette := b.Palette
	if len(palette) == 0 {
		palette = celebration.DefaultStartBurst().Palette
	}

	count := b.Count
	if room := s.MaxParticles - s.ActiveCount(); count > room {
		count = max(room, 0)
	}

	originX := b.OriginX * s.screenWidth
	originY := b.OriginY * s.screenHeight

	for i := 0; i < count; i++ {
		s.spawn(originX, originY, b.Spread, palette[s.rng.IntN(len(palette))])
	}

	logger.Logger().Debugf("[ConfettiSystem] 爆发 %d/%d 个粒子 (spread=%.0f°, origin=%.0f,%.0f)",
		count, b.Count, b.Spread, originX, originY)
}

func (s *ConfettiSystem) spawn(x, y, spread float64, clr color.RGBA) ecs.EntityID {
	// 以正上方 (-90°) 为中心对称散开
	offset := (s.rng.Float64() - 0.5) * spread
	angle := (-90 + offset) * math.Pi / 180
	speed := confettiMinSpeed + s.rng.Float64()*(confettiMaxSpeed-confettiMinSpeed)

	shape := components.ConfettiShape(s.rng.IntN(3))
	size := confettiBaseSize + s.rng.Float64()*confettiSizeVariation
	width, height := size, size
	switch shape {
	case components.ConfettiStrip:
		width, height = size*0.5, size*1.6
	case components.ConfettiCircle:
		width, height = size*0.8, size*0.8
	}

	id := s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(s.entityManager, id, &components.VelocityComponent{
		VX: math.Cos(angle) * speed,
		VY: math.Sin(angle) * speed,
	})
	ecs.AddComponent(s.entityManager, id, &components.ConfettiComponent{
		Shape:         shape,
		Width:         width,
		Height:        height,
		Color:         clr,
		Rotation:      s.rng.Float64() * 2 * math.Pi,
		RotationSpeed: (s.rng.Float64()*2 - 1) * confettiMaxSpin,
		Tilt:          s.rng.Float64() * 2 * math.Pi,
		TiltSpeed:     (s.rng.Float64()*2 - 1) * confettiMaxTiltSpeed,
		Gravity:       confettiGravity,
		Drag:          confettiDrag,
		Alpha:         1,
	})
	ecs.AddComponent(s.entityManager, id, &components.LifetimeComponent{
		MaxLifetime: confettiMinLifetime + s.rng.Float64()*(confettiMaxLifetime-confettiMinLifetime),
	})
	return id
}

// Update 推进所有彩纸粒子
func (s *ConfettiSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith3[
		*components.ConfettiComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](s.entityManager)

	for _, id := range entities {
		confetti, _ := ecs.GetComponent[*components.ConfettiComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		// 阻力按时间指数衰减，与帧率无关
		keep := math.Pow(confetti.Drag, deltaTime)
		vel.VX *= keep
		vel.VY = vel.VY*keep + confetti.Gravity*deltaTime

		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime

		confetti.Rotation += confetti.RotationSpeed * deltaTime
		confetti.Tilt += confetti.TiltSpeed * deltaTime

		if lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id); ok {
			p := lifetime.Progress()
			if p > confettiFadeStart {
				confetti.Alpha = 1 - (p-confettiFadeStart)/(1-confettiFadeStart)
			}
		}

		if pos.Y > s.screenHeight+confettiOffscreenPad {
			s.entityManager.DestroyEntity(id)
		}
	}
}

// ActiveCount 返回当前存在的彩纸粒子数量
func (s *ConfettiSystem) ActiveCount() int {
	return len(ecs.GetEntitiesWith1[*components.ConfettiComponent](s.entityManager))
}
