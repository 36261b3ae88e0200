package game

import (
	"math/rand"
	"testing"

	"github.com/gonewx/bowshot/pkg/components"
	"github.com/gonewx/bowshot/pkg/config"
)

func newTestState(t *testing.T) *GameState {
	t.Helper()
	return NewGameState(config.DefaultGameConfig(), rand.New(rand.NewSource(7)))
}

// TestNewGameState 测试初始状态
func TestNewGameState(t *testing.T) {
	gs := newTestState(t)

	if gs.Score != 0 || gs.GameOver {
		t.Errorf("expected score 0 and not game over, got score=%d gameOver=%v", gs.Score, gs.GameOver)
	}
	if gs.Projectile != nil {
		t.Error("expected no projectile at start")
	}
	if gs.Wall.Health != 100 || gs.Wall.MaxHealth != 100 {
		t.Errorf("expected wall health 100/100, got %d/%d", gs.Wall.Health, gs.Wall.MaxHealth)
	}
	if gs.Wall.X != 680 || gs.Wall.Y != 359 || gs.Wall.Width != 18 || gs.Wall.Height != 300 {
		t.Errorf("unexpected wall rect: %+v", gs.Wall)
	}
	if len(gs.Explosions) != 0 || len(gs.Debris) != 0 {
		t.Error("expected no effects at start")
	}

	if len(gs.Targets) != 3 {
		t.Fatalf("expected 3 targets, got %d", len(gs.Targets))
	}
	for i, tgt := range gs.Targets {
		wantX := -30 - float64(i)*120
		if tgt.X != wantX {
			t.Errorf("target %d: X = %.1f, want %.1f", i, tgt.X, wantX)
		}
		if tgt.Y < 100 || tgt.Y >= 500 {
			t.Errorf("target %d: Y = %.1f outside [100, 500)", i, tgt.Y)
		}
		if !tgt.Alive || tgt.Radius != 30 {
			t.Errorf("target %d: expected alive with radius 30, got %+v", i, tgt)
		}
	}
}

// TestNewGameStateNilRand 测试 rng 为 nil 时使用固定种子
func TestNewGameStateNilRand(t *testing.T) {
	a := NewGameState(config.DefaultGameConfig(), nil)
	b := NewGameState(config.DefaultGameConfig(), nil)

	for i := range a.Targets {
		if a.Targets[i].Y != b.Targets[i].Y {
			t.Errorf("target %d: expected identical spawn Y with default seed", i)
		}
	}
}

// TestRespawnTarget 测试靶子重生
func TestRespawnTarget(t *testing.T) {
	gs := newTestState(t)
	tgt := &gs.Targets[1]
	tgt.X = 400
	tgt.Alive = false

	for i := 0; i < 100; i++ {
		gs.RespawnTarget(tgt)
		if tgt.X != -30 {
			t.Fatalf("expected X = -30 after respawn, got %.1f", tgt.X)
		}
		if tgt.Y < 100 || tgt.Y >= 500 {
			t.Fatalf("respawn Y %.1f outside [100, 500)", tgt.Y)
		}
		if !tgt.Alive {
			t.Fatal("expected target alive after respawn")
		}
	}
}

// TestDamageWall 测试墙体伤害与游戏结束
func TestDamageWall(t *testing.T) {
	tests := []struct {
		name          string
		health        int
		damage        int
		wantHealth    int
		wantDestroyed bool
	}{
		{"普通伤害", 100, 10, 90, false},
		{"降到零", 10, 10, 0, true},
		{"伤害溢出按零处理", 5, 10, 0, true},
		{"已摧毁不再处理", 0, 10, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := newTestState(t)
			gs.Wall.Health = tt.health

			destroyed := gs.DamageWall(tt.damage)
			if destroyed != tt.wantDestroyed {
				t.Errorf("DamageWall() = %v, want %v", destroyed, tt.wantDestroyed)
			}
			if gs.Wall.Health != tt.wantHealth {
				t.Errorf("health = %d, want %d", gs.Wall.Health, tt.wantHealth)
			}
			if tt.wantDestroyed && !gs.GameOver {
				t.Error("expected game over after wall destroyed")
			}
		})
	}
}

// TestWallStateTransitions 测试墙体外观随伤害变化
func TestWallStateTransitions(t *testing.T) {
	gs := newTestState(t)

	expected := []components.WallState{
		components.WallHealthy,  // 90
		components.WallHealthy,  // 80
		components.WallHealthy,  // 70
		components.WallDamaged,  // 60
		components.WallDamaged,  // 50
		components.WallDamaged,  // 40
		components.WallCritical, // 30
		components.WallCritical, // 20
		components.WallCritical, // 10
		components.WallDestroyed,
	}

	for i, want := range expected {
		gs.DamageWall(10)
		if got := gs.WallState(); got != want {
			t.Errorf("after %d hits: state = %v, want %v", i+1, got, want)
		}
	}
}

// TestReset 测试重新开始
func TestReset(t *testing.T) {
	gs := newTestState(t)

	gs.AddScore(30)
	gs.DamageWall(100)
	gs.Projectile = &components.ProjectileComponent{X: 10, Y: 10, Flying: true}
	gs.Aim = components.AimComponent{Aiming: true, X: 820, Y: 310}
	gs.Targets[0].Alive = false
	gs.Targets[0].X = 650
	gs.Explosions = append(gs.Explosions, components.ExplosionComponent{
		Particles: []components.ParticleComponent{{Alpha: 1}},
	})
	gs.Debris = append(gs.Debris, components.DebrisComponent{Landed: true})

	gs.Reset()

	if gs.Score != 0 || gs.GameOver {
		t.Errorf("expected score 0 and not game over, got %d/%v", gs.Score, gs.GameOver)
	}
	if gs.Wall.Health != gs.Wall.MaxHealth {
		t.Errorf("expected full health, got %d", gs.Wall.Health)
	}
	if gs.Projectile != nil {
		t.Error("expected projectile cleared")
	}
	if gs.Aim.Aiming {
		t.Error("expected aim cleared")
	}
	if len(gs.Targets) != 3 || !gs.Targets[0].Alive || gs.Targets[0].X != -30 {
		t.Errorf("expected fresh target pool, got %+v", gs.Targets)
	}

	// 视觉效果跨局保留
	if gs.LiveExplosionCount() != 1 || len(gs.Debris) != 1 {
		t.Errorf("expected effects to survive restart, got %d explosions %d debris",
			gs.LiveExplosionCount(), len(gs.Debris))
	}
}
