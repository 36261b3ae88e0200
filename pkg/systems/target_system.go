package systems

import (
	"github.com/gonewx/bowshot/pkg/game"
	"github.com/gonewx/bowshot/pkg/utils"
)

// TargetSystem 处理靶子移动、撞墙与循环重生
type TargetSystem struct{}

// NewTargetSystem 创建靶子系统
func NewTargetSystem() *TargetSystem {
	return &TargetSystem{}
}

// Update 推进所有存活靶子一帧
//
// 靶子撞墙时：爆炸、碎片、墙体扣血，然后重生到左边缘。
// 若这次扣血摧毁了墙，立即停止处理（被撞的靶子保持死亡状态，
// 等待下一局重置）。飞出右边缘的靶子直接回到左边缘。
//
// 返回:
//   - bool: 本帧是否导致游戏结束
func (s *TargetSystem) Update(gs *game.GameState) bool {
	w := gs.Wall
	speed := gs.Config.Targets.Speed
	width := gs.Config.Width()

	for i := range gs.Targets {
		t := &gs.Targets[i]
		if !t.Alive {
			continue
		}

		t.X += speed

		if utils.CircleOverlapsRect(t.X, t.Y, t.Radius, w.X, w.Y, w.Width, w.Height) {
			t.Alive = false
			spawnDestructionEffects(gs, t.X, t.Y)
			if gs.DamageWall(gs.Config.Wall.Damage) {
				return true
			}
			gs.RespawnTarget(t)
		}

		if t.X-t.Radius > width {
			gs.RespawnTarget(t)
		}
	}

	return false
}
