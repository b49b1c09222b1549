package systems

import (
	"image/color"
	"math"
	"testing"

	"github.com/decker502/birthday/pkg/celebration"
	"github.com/decker502/birthday/pkg/components"
	"github.com/decker502/birthday/pkg/ecs"
)

func newTestConfetti() (*ecs.EntityManager, *ConfettiSystem) {
	em := ecs.NewEntityManager()
	return em, NewConfettiSystem(em, 800, 600, 42)
}

// TestConfettiBurstSpawnsCount 测试爆发生成的粒子数量
func TestConfettiBurstSpawnsCount(t *testing.T) {
	tests := []struct {
		name   string
		burst  celebration.Burst
		expect int
	}{
		{"开场爆发", celebration.DefaultStartBurst(), 100},
		{"空调色板使用默认颜色", celebration.Burst{Count: 10, Spread: 60, OriginX: 0.5, OriginY: 0.5}, 10},
		{"数量为零", celebration.Burst{Count: 0, Spread: 60}, 0},
		{"负数量", celebration.Burst{Count: -5, Spread: 60}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, system := newTestConfetti()
			system.Burst(tt.burst)
			if got := system.ActiveCount(); got != tt.expect {
				t.Errorf("ActiveCount() = %d, 期望 %d", got, tt.expect)
			}
		})
	}
}

// TestConfettiBurstRespectsCap 测试粒子上限
func TestConfettiBurstRespectsCap(t *testing.T) {
	_, system := newTestConfetti()
	system.MaxParticles = 150

	system.Burst(celebration.Burst{Count: 100, Spread: 70, OriginX: 0.5, OriginY: 0.5})
	system.Burst(celebration.Burst{Count: 100, Spread: 70, OriginX: 0.5, OriginY: 0.5})

	if got := system.ActiveCount(); got != 150 {
		t.Errorf("ActiveCount() = %d, 期望上限 150", got)
	}
}

// TestConfettiInitialState 测试粒子初始位置、方向与颜色
func TestConfettiInitialState(t *testing.T) {
	em, system := newTestConfetti()
	palette := []color.RGBA{celebration.ColorPink, celebration.ColorGold}
	system.Burst(celebration.Burst{Count: 200, Spread: 70, OriginX: 0.5, OriginY: 0.7, Palette: palette})

	maxOffset := 35 * math.Pi / 180
	for _, id := range ecs.GetEntitiesWith1[*components.ConfettiComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
		c, _ := ecs.GetComponent[*components.ConfettiComponent](em, id)

		if pos.X != 400 || math.Abs(pos.Y-420) > 1e-9 {
			t.Fatalf("粒子原点 = (%v, %v), 期望 (400, 420)", pos.X, pos.Y)
		}
		if vel.VY >= 0 {
			t.Fatalf("粒子初速度应向上, VY=%v", vel.VY)
		}

		// 与正上方的夹角不超过 spread/2
		offset := math.Atan2(vel.VX, -vel.VY)
		if math.Abs(offset) > maxOffset+1e-9 {
			t.Fatalf("粒子方向偏离正上方 %.1f°, 超过 35°", offset*180/math.Pi)
		}

		if c.Color != celebration.ColorPink && c.Color != celebration.ColorGold {
			t.Fatalf("粒子颜色 %v 不在调色板中", c.Color)
		}
		if c.Alpha != 1 {
			t.Fatalf("初始 Alpha = %v, 期望 1", c.Alpha)
		}
	}
}

// TestConfettiFallsAndExpires 测试粒子在重力作用下下落并最终被清理
func TestConfettiFallsAndExpires(t *testing.T) {
	em, system := newTestConfetti()
	lifetime := NewLifetimeSystem(em)
	system.Burst(celebration.Burst{Count: 20, Spread: 0, OriginX: 0.5, OriginY: 0.5})

	ids := ecs.GetEntitiesWith1[*components.ConfettiComponent](em)
	first := ids[0]
	initial, _ := ecs.GetComponent[*components.VelocityComponent](em, first)
	startVY := initial.VY

	const dt = 1.0 / 60
	for i := 0; i < 30; i++ {
		system.Update(dt)
		lifetime.Update(dt)
		em.RemoveMarkedEntities()
	}

	vel, ok := ecs.GetComponent[*components.VelocityComponent](em, first)
	if !ok {
		t.Fatal("0.5 秒后粒子不应被清理")
	}
	if vel.VY <= startVY {
		t.Errorf("重力应使 VY 增大: %v -> %v", startVY, vel.VY)
	}

	// 超过最长生命周期后全部清理
	for i := 0; i < 60*4; i++ {
		system.Update(dt)
		lifetime.Update(dt)
		em.RemoveMarkedEntities()
	}
	if got := system.ActiveCount(); got != 0 {
		t.Errorf("4 秒后仍有 %d 个粒子", got)
	}
}

// TestConfettiFadesOut 测试生命周期后段透明度下降
func TestConfettiFadesOut(t *testing.T) {
	em, system := newTestConfetti()
	system.Burst(celebration.Burst{Count: 1, Spread: 0, OriginX: 0.5, OriginY: 0.0})

	id := ecs.GetEntitiesWith1[*components.ConfettiComponent](em)[0]
	lt, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	lt.CurrentLifetime = lt.MaxLifetime * 0.85

	system.Update(0)

	c, _ := ecs.GetComponent[*components.ConfettiComponent](em, id)
	if math.Abs(c.Alpha-0.5) > 1e-6 {
		t.Errorf("进度 85%% 时 Alpha = %v, 期望 0.5", c.Alpha)
	}
}

// TestConfettiImplementsEffects 彩纸系统可以直接作为会话的特效协作者
func TestConfettiImplementsEffects(t *testing.T) {
	_, system := newTestConfetti()
	session := celebration.NewSession(celebration.DefaultSessionOptions(), system)
	defer session.Close()

	session.Start()
	if system.ActiveCount() == 0 {
		t.Error("开始庆祝后应产生彩纸")
	}
}
