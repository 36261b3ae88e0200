package systems

import (
	"image/color"

	"github.com/gonewx/bowshot/pkg/components"
	"github.com/gonewx/bowshot/pkg/game"
)

// DebrisSystem 碎片下落物理
//
// 碎片在重力作用下下落，底边触及地面线后固定在地面，永久静止。
// 默认不清理落地碎片；配置 Debris.MaxFragments > 0 时，
// 超出上限的最早落地碎片会被移除。
type DebrisSystem struct{}

// NewDebrisSystem 创建碎片系统
func NewDebrisSystem() *DebrisSystem {
	return &DebrisSystem{}
}

// SpawnDebris 在指定位置生成一组碎片
//
// 参数:
//   - gs: 游戏状态
//   - x, y: 破碎中心
//   - clr: 碎片颜色
func SpawnDebris(gs *game.GameState, x, y float64, clr color.RGBA) {
	cfg := gs.Config.Debris
	half := cfg.Spread / 2

	for i := 0; i < cfg.FragmentCount; i++ {
		gs.Debris = append(gs.Debris, components.DebrisComponent{
			X:      x - half + gs.Rand.Float64()*cfg.Spread,
			Y:      y - half + gs.Rand.Float64()*cfg.Spread,
			Width:  cfg.MinWidth + gs.Rand.Float64()*cfg.WidthJitter,
			Height: cfg.MinHeight + gs.Rand.Float64()*cfg.HeightJitter,
			Color:  clr,
			VY:     cfg.MinFallSpeed + gs.Rand.Float64()*cfg.FallSpeedJitter,
		})
	}
}

// Update 推进所有未落地碎片一帧
func (s *DebrisSystem) Update(gs *game.GameState) {
	cfg := gs.Config.Debris
	floor := gs.Config.FloorY()

	for i := range gs.Debris {
		d := &gs.Debris[i]
		if d.Landed {
			continue
		}

		d.Y += d.VY
		d.VY += cfg.Gravity

		if d.Y+d.Height >= floor {
			d.Y = floor - d.Height
			d.VY = 0
			d.Landed = true
		}
	}

	if cfg.MaxFragments > 0 {
		s.pruneLanded(gs, cfg.MaxFragments)
	}
}

// pruneLanded 按生成顺序移除最早的落地碎片，直到总数不超过上限
// 仍在下落的碎片不会被移除
func (s *DebrisSystem) pruneLanded(gs *game.GameState, limit int) {
	excess := len(gs.Debris) - limit
	if excess <= 0 {
		return
	}

	kept := gs.Debris[:0]
	for _, d := range gs.Debris {
		if excess > 0 && d.Landed {
			excess--
			continue
		}
		kept = append(kept, d)
	}
	gs.Debris = kept
}
