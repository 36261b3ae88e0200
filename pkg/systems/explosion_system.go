package systems

import (
	"math"

	"github.com/gonewx/bowshot/pkg/components"
	"github.com/gonewx/bowshot/pkg/game"
)

// ExplosionSystem 更新爆炸粒子
//
// 纯视觉效果，不影响得分和碰撞。
type ExplosionSystem struct{}

// NewExplosionSystem 创建爆炸粒子系统
func NewExplosionSystem() *ExplosionSystem {
	return &ExplosionSystem{}
}

// SpawnExplosion 在指定位置生成一次爆炸
//
// 粒子沿完整圆周等角度分布，每个粒子的速度与半径带随机抖动。
//
// 参数:
//   - gs: 游戏状态
//   - x, y: 爆炸中心
func SpawnExplosion(gs *game.GameState, x, y float64) {
	cfg := gs.Config.Explosion
	particles := make([]components.ParticleComponent, cfg.ParticleCount)

	for i := range particles {
		angle := math.Pi * 2 * float64(i) / float64(cfg.ParticleCount)
		speed := cfg.MinSpeed + gs.Rand.Float64()*cfg.SpeedJitter
		particles[i] = components.ParticleComponent{
			X:      x,
			Y:      y,
			VX:     math.Cos(angle) * speed,
			VY:     math.Sin(angle) * speed,
			Alpha:  1,
			Radius: cfg.MinRadius + gs.Rand.Float64()*cfg.RadiusJitter,
		}
	}

	gs.Explosions = append(gs.Explosions, components.ExplosionComponent{Particles: particles})
}

// Update 推进所有爆炸一帧，并移除已完全透明的爆炸
//
// 每个粒子：位置 += 速度，速度 *= 阻尼，透明度 -= 衰减率。
func (s *ExplosionSystem) Update(gs *game.GameState) {
	cfg := gs.Config.Explosion

	kept := gs.Explosions[:0]
	for _, exp := range gs.Explosions {
		for i := range exp.Particles {
			p := &exp.Particles[i]
			p.X += p.VX
			p.Y += p.VY
			p.VX *= cfg.Damping
			p.VY *= cfg.Damping
			p.Alpha -= cfg.FadeRate
		}

		if hasVisibleParticle(exp) {
			kept = append(kept, exp)
		}
	}

	// 清空尾部引用，避免已移除的粒子切片被底层数组持有
	for i := len(kept); i < len(gs.Explosions); i++ {
		gs.Explosions[i] = components.ExplosionComponent{}
	}
	gs.Explosions = kept
}

// hasVisibleParticle 检查爆炸中是否还有可见粒子
func hasVisibleParticle(exp components.ExplosionComponent) bool {
	for _, p := range exp.Particles {
		if p.Alpha > 0 {
			return true
		}
	}
	return false
}
