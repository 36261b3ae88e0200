package systems

import (
	"testing"

	"github.com/gonewx/bowshot/pkg/components"
)

// TestTargetMovesRight 测试靶子匀速右移
func TestTargetMovesRight(t *testing.T) {
	gs := newTestState(t)
	before := make([]float64, len(gs.Targets))
	for i, tgt := range gs.Targets {
		before[i] = tgt.X
	}

	if NewTargetSystem().Update(gs) {
		t.Fatal("unexpected game over")
	}

	for i, tgt := range gs.Targets {
		if tgt.X != before[i]+2 {
			t.Errorf("target %d: X = %.1f, want %.1f", i, tgt.X, before[i]+2)
		}
	}
}

// TestTargetWrapsAround 测试靶子离开右边缘后回到左侧
func TestTargetWrapsAround(t *testing.T) {
	gs := newTestState(t)
	parkTargets(gs)
	gs.Targets[0] = components.TargetComponent{X: 929, Y: 100, Radius: 30, Alive: true}

	NewTargetSystem().Update(gs)

	tgt := gs.Targets[0]
	if tgt.X != -30 || !tgt.Alive {
		t.Errorf("target should wrap to x=-30, got %+v", tgt)
	}
	if gs.Wall.Health != 100 || gs.Score != 0 {
		t.Error("wrapping must not touch wall or score")
	}
}

// TestTargetStaysUntilFullyOffscreen 测试靶子完全离开画面前不重生
func TestTargetStaysUntilFullyOffscreen(t *testing.T) {
	gs := newTestState(t)
	parkTargets(gs)
	gs.Targets[0] = components.TargetComponent{X: 927, Y: 100, Radius: 30, Alive: true}

	NewTargetSystem().Update(gs)

	if gs.Targets[0].X != 929 {
		t.Errorf("target should still be at x=929, got %.1f", gs.Targets[0].X)
	}
}

// TestTargetHitsWall 测试靶子撞墙扣血
func TestTargetHitsWall(t *testing.T) {
	gs := newTestState(t)
	parkTargets(gs)
	gs.Targets[0] = components.TargetComponent{X: 650, Y: 400, Radius: 30, Alive: true}

	if NewTargetSystem().Update(gs) {
		t.Fatal("one hit must not end the game")
	}

	if gs.Wall.Health != 90 {
		t.Errorf("wall health = %d, want 90", gs.Wall.Health)
	}
	tgt := gs.Targets[0]
	if !tgt.Alive || tgt.X != -30 {
		t.Errorf("target should respawn after hitting the wall, got %+v", tgt)
	}
	if len(gs.Explosions) != 1 || len(gs.Debris) != 6 {
		t.Errorf("expected destruction effects, got %d explosions %d debris", len(gs.Explosions), len(gs.Debris))
	}
	if gs.Score != 0 {
		t.Errorf("wall hits should not score, got %d", gs.Score)
	}
}

// TestTargetDestroysWall 测试最后一次撞墙结束游戏
func TestTargetDestroysWall(t *testing.T) {
	gs := newTestState(t)
	parkTargets(gs)
	gs.Wall.Health = 10
	gs.Targets[0] = components.TargetComponent{X: 650, Y: 400, Radius: 30, Alive: true}
	secondX := gs.Targets[1].X

	if !NewTargetSystem().Update(gs) {
		t.Fatal("expected game over")
	}

	if gs.Wall.Health != 0 || !gs.GameOver {
		t.Errorf("wall = %d gameOver = %v, want 0/true", gs.Wall.Health, gs.GameOver)
	}
	// 被撞的靶子保持死亡，其余靶子本帧不再移动
	if gs.Targets[0].Alive {
		t.Error("the target that destroyed the wall stays dead")
	}
	if gs.Targets[1].X != secondX {
		t.Errorf("later targets must not move after game over, got %.1f want %.1f", gs.Targets[1].X, secondX)
	}
}

// TestTargetAboveWallPasses 测试从墙上方经过的靶子不扣血
func TestTargetAboveWallPasses(t *testing.T) {
	gs := newTestState(t)
	parkTargets(gs)
	gs.Targets[0] = components.TargetComponent{X: 650, Y: 200, Radius: 30, Alive: true}

	for i := 0; i < 40; i++ {
		NewTargetSystem().Update(gs)
	}

	if gs.Wall.Health != 100 {
		t.Errorf("wall health = %d, want 100", gs.Wall.Health)
	}
	if gs.Targets[0].X != 730 {
		t.Errorf("target X = %.1f, want 730", gs.Targets[0].X)
	}
}
