package systems

import (
	"github.com/gonewx/bowshot/pkg/game"
	"github.com/gonewx/bowshot/pkg/utils"
)

// ProjectileSystem 处理箭的飞行与命中判定
//
// 每帧顺序：
//  1. 位置 += 速度，垂直速度 += 重力
//  2. 越出画布 → 移除
//  3. 进入墙的矩形 → 移除
//  4. 与存活靶子重叠 → 计分、爆炸、碎片、靶子重生、移除箭
//
// 一支箭每帧最多命中一个靶子，按靶子池顺序取第一个。
type ProjectileSystem struct{}

// NewProjectileSystem 创建箭系统
func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

// Update 推进箭一帧
func (s *ProjectileSystem) Update(gs *game.GameState) {
	p := gs.Projectile
	if p == nil {
		return
	}

	p.X += p.VX
	p.Y += p.VY
	p.VY += gs.Config.Shooting.Gravity

	if utils.OutOfBounds(p.X, p.Y, gs.Config.Width(), gs.Config.Height()) {
		gs.Projectile = nil
		return
	}

	w := gs.Wall
	if utils.PointInRect(p.X, p.Y, w.X, w.Y, w.Width, w.Height) {
		gs.Projectile = nil
		return
	}

	for i := range gs.Targets {
		t := &gs.Targets[i]
		if !t.Alive || !utils.PointInCircle(p.X, p.Y, t.X, t.Y, t.Radius) {
			continue
		}

		t.Alive = false
		gs.AddScore(gs.Config.Scoring.HitReward)
		spawnDestructionEffects(gs, t.X, t.Y)
		gs.RespawnTarget(t)
		gs.Projectile = nil
		return
	}
}

// spawnDestructionEffects 靶子被摧毁时生成爆炸与碎片
func spawnDestructionEffects(gs *game.GameState, x, y float64) {
	SpawnExplosion(gs, x, y)
	SpawnDebris(gs, x, y, gs.Config.DebrisColor())
}
