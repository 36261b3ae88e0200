package game

import (
	"github.com/gonewx/bowshot/pkg/components"
	"github.com/gonewx/bowshot/pkg/config"
)

// Snapshot 一帧更新结束后的只读状态副本
//
// 渲染层只读取 Snapshot，不直接访问 GameState，
// 切片均为深拷贝，修改 Snapshot 不会影响游戏状态。
type Snapshot struct {
	Canvas    config.CanvasConfig
	Bow       config.Point
	BowRadius float64

	Projectile *components.ProjectileComponent // nil 表示没有飞行中的箭
	Aim        components.AimComponent
	Targets    []components.TargetComponent
	Wall       components.WallComponent
	WallState  components.WallState
	Explosions []components.ExplosionComponent
	Debris     []components.DebrisComponent

	Score    int
	GameOver bool
}

// Snapshot 生成当前状态的只读副本
func (gs *GameState) Snapshot() Snapshot {
	snap := Snapshot{
		Canvas:    gs.Config.Canvas,
		Bow:       gs.Config.BowAnchor(),
		BowRadius: gs.Config.Bow.Radius,
		Aim:       gs.Aim,
		Targets:   append([]components.TargetComponent(nil), gs.Targets...),
		Wall:      gs.Wall,
		WallState: gs.WallState(),
		Debris:    append([]components.DebrisComponent(nil), gs.Debris...),
		Score:     gs.Score,
		GameOver:  gs.GameOver,
	}

	if gs.Projectile != nil {
		p := *gs.Projectile
		snap.Projectile = &p
	}

	snap.Explosions = make([]components.ExplosionComponent, len(gs.Explosions))
	for i, exp := range gs.Explosions {
		snap.Explosions[i] = components.ExplosionComponent{
			Particles: append([]components.ParticleComponent(nil), exp.Particles...),
		}
	}

	return snap
}
