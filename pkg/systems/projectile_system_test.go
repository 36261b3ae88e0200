package systems

import (
	"math"
	"testing"

	"github.com/gonewx/bowshot/pkg/components"
)

// TestProjectileHitsTarget 测试箭命中靶子
func TestProjectileHitsTarget(t *testing.T) {
	gs := newTestState(t)
	parkTargets(gs)
	gs.Targets[0] = components.TargetComponent{X: 50, Y: 150, Radius: 30, Alive: true}
	gs.Projectile = &components.ProjectileComponent{X: 52, Y: 151, Flying: true}

	NewProjectileSystem().Update(gs)

	if gs.Projectile != nil {
		t.Error("projectile should be removed after a hit")
	}
	if gs.Score != 10 {
		t.Errorf("score = %d, want 10", gs.Score)
	}

	tgt := gs.Targets[0]
	if !tgt.Alive || tgt.X != -30 {
		t.Errorf("target should respawn at x=-30, got %+v", tgt)
	}
	if tgt.Y < 100 || tgt.Y >= 500 {
		t.Errorf("respawn Y %.1f outside [100, 500)", tgt.Y)
	}

	if len(gs.Explosions) != 1 || len(gs.Explosions[0].Particles) != 18 {
		t.Errorf("expected one explosion with 18 particles, got %d", len(gs.Explosions))
	}
	if len(gs.Debris) != 6 {
		t.Errorf("expected 6 debris fragments, got %d", len(gs.Debris))
	}
	for _, d := range gs.Debris {
		if d.Color != gs.Config.DebrisColor() {
			t.Errorf("debris color = %+v, want %+v", d.Color, gs.Config.DebrisColor())
		}
	}
}

// TestProjectileHitsFirstTargetOnly 测试一支箭最多命中一个靶子
func TestProjectileHitsFirstTargetOnly(t *testing.T) {
	gs := newTestState(t)
	parkTargets(gs)
	gs.Targets[0] = components.TargetComponent{X: 200, Y: 200, Radius: 30, Alive: true}
	gs.Targets[1] = components.TargetComponent{X: 210, Y: 200, Radius: 30, Alive: true}
	gs.Projectile = &components.ProjectileComponent{X: 205, Y: 200, Flying: true}

	NewProjectileSystem().Update(gs)

	if gs.Score != 10 {
		t.Errorf("score = %d, want 10", gs.Score)
	}
	if gs.Targets[1].X != 210 {
		t.Errorf("second target should be untouched, got %+v", gs.Targets[1])
	}
}

// TestProjectileIgnoresDeadTarget 测试死亡靶子不参与命中判定
func TestProjectileIgnoresDeadTarget(t *testing.T) {
	gs := newTestState(t)
	parkTargets(gs)
	gs.Targets[0] = components.TargetComponent{X: 200, Y: 200, Radius: 30, Alive: false}
	gs.Projectile = &components.ProjectileComponent{X: 200, Y: 200, Flying: true}

	NewProjectileSystem().Update(gs)

	if gs.Projectile == nil || gs.Score != 0 {
		t.Error("dead target must not be hit")
	}
}

// TestProjectileRemoval 测试越界与撞墙移除
func TestProjectileRemoval(t *testing.T) {
	tests := []struct {
		name        string
		projectile  components.ProjectileComponent
		wantRemoved bool
	}{
		{"左侧越界", components.ProjectileComponent{X: -1, Y: 300}, true},
		{"下方越界", components.ProjectileComponent{X: 400, Y: 599.9, VY: 1}, true},
		{"上方越界", components.ProjectileComponent{X: 400, Y: 2, VY: -3}, true},
		{"撞墙", components.ProjectileComponent{X: 689, Y: 400}, true},
		{"墙体边缘不算", components.ProjectileComponent{X: 680, Y: 400}, false},
		{"自由飞行", components.ProjectileComponent{X: 400, Y: 300, VX: -5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := newTestState(t)
			parkTargets(gs)
			p := tt.projectile
			p.Flying = true
			gs.Projectile = &p

			NewProjectileSystem().Update(gs)

			if (gs.Projectile == nil) != tt.wantRemoved {
				t.Errorf("removed = %v, want %v", gs.Projectile == nil, tt.wantRemoved)
			}
			if gs.Score != 0 {
				t.Errorf("score should not change, got %d", gs.Score)
			}
		})
	}
}

// TestProjectileGravity 测试先位移后加重力
func TestProjectileGravity(t *testing.T) {
	gs := newTestState(t)
	parkTargets(gs)
	gs.Projectile = &components.ProjectileComponent{X: 400, Y: 200, VX: -2, VY: 1, Flying: true}

	NewProjectileSystem().Update(gs)

	p := gs.Projectile
	if p.X != 398 || p.Y != 201 {
		t.Errorf("position = (%.2f, %.2f), want (398, 201)", p.X, p.Y)
	}
	if math.Abs(p.VY-1.15) > 1e-9 {
		t.Errorf("vy = %.4f, want 1.15", p.VY)
	}
}
