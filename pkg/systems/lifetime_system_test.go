package systems

import (
	"testing"

	"github.com/decker502/birthday/pkg/components"
	"github.com/decker502/birthday/pkg/ecs"
)

func TestLifetimeUpdate(t *testing.T) {
	tests := []struct {
		name          string
		maxLifetime   float64
		steps         []float64
		expectElapsed float64
		expectExpired bool
	}{
		{"单次更新未过期", 10, []float64{5}, 5, false},
		{"单次更新超过上限", 10, []float64{12}, 12, true},
		{"多次小步累积", 10, []float64{3, 3, 3}, 9, false},
		{"多次小步累积后过期", 10, []float64{3, 3, 3, 2}, 11, true},
		{"恰好到达上限", 2, []float64{1, 1}, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			system := NewLifetimeSystem(em)

			id := em.CreateEntity()
			ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: tt.maxLifetime})

			for _, dt := range tt.steps {
				system.Update(dt)
			}

			lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](em, id)
			if !ok {
				t.Fatal("清理前组件应仍然存在")
			}
			if lifetime.CurrentLifetime != tt.expectElapsed {
				t.Errorf("CurrentLifetime = %v, 期望 %v", lifetime.CurrentLifetime, tt.expectElapsed)
			}
			if lifetime.IsExpired != tt.expectExpired {
				t.Errorf("IsExpired = %v, 期望 %v", lifetime.IsExpired, tt.expectExpired)
			}

			em.RemoveMarkedEntities()
			if got := ecs.HasComponent[*components.LifetimeComponent](em, id); got == tt.expectExpired {
				t.Errorf("清理后实体存在 = %v, 期望 %v", got, !tt.expectExpired)
			}
		})
	}
}

func TestMultipleEntitiesWithDifferentLifetimes(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id1 := em.CreateEntity()
	ecs.AddComponent(em, id1, &components.LifetimeComponent{MaxLifetime: 5})
	id2 := em.CreateEntity()
	ecs.AddComponent(em, id2, &components.LifetimeComponent{MaxLifetime: 10})

	system.Update(7.0)
	em.RemoveMarkedEntities()

	if ecs.HasComponent[*components.LifetimeComponent](em, id1) {
		t.Error("实体 1 已过期，应被删除")
	}

	lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](em, id2)
	if !ok {
		t.Fatal("实体 2 应仍然存在")
	}
	if lifetime.IsExpired {
		t.Error("实体 2 不应过期")
	}
}
