package game

import (
	"log"
	"math/rand"

	"github.com/gonewx/bowshot/pkg/components"
	"github.com/gonewx/bowshot/pkg/config"
)

// GameState 存储一局游戏的全部可变状态
//
// 与全局单例不同，GameState 由场景创建并显式传入各个系统，
// 所有状态修改都发生在单线程的帧更新中，无需加锁。
//
// 不变量：
//   - Projectile 为 nil 或唯一一支飞行中的箭
//   - len(Targets) 恒等于 Config.Targets.Count
//   - Wall.Health 在一局内单调不增，且不小于 0
//   - GameOver 为 true 后不再进行物理更新
type GameState struct {
	Config *config.GameConfig

	Score    int  // 当前得分
	GameOver bool // 墙被摧毁后为 true

	Projectile *components.ProjectileComponent
	Aim        components.AimComponent
	Targets    []components.TargetComponent
	Wall       components.WallComponent
	Explosions []components.ExplosionComponent
	Debris     []components.DebrisComponent

	// Rand 随机源，重生位置、粒子速度、碎片尺寸都从这里取值
	// 测试中使用固定种子保证可复现
	Rand *rand.Rand
}

// NewGameState 创建并初始化一局新游戏
//
// 参数:
//   - cfg: 已验证的游戏配置
//   - rng: 随机源，为 nil 时使用固定种子 1
//
// 返回:
//   - *GameState: 初始化完毕的游戏状态
func NewGameState(cfg *config.GameConfig, rng *rand.Rand) *GameState {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	wall := cfg.WallRect()
	gs := &GameState{
		Config: cfg,
		Rand:   rng,
		Wall: components.WallComponent{
			X:         wall.X,
			Y:         wall.Y,
			Width:     wall.Width,
			Height:    wall.Height,
			MaxHealth: cfg.Wall.MaxHealth,
		},
	}
	gs.Reset()
	return gs
}

// Reset 重新开始一局
//
// 清零得分、解除游戏结束、移除飞行中的箭、重建靶子池、恢复墙体生命值。
// 爆炸与碎片不在清理范围内：残留的视觉效果会延续到新的一局。
func (gs *GameState) Reset() {
	gs.Score = 0
	gs.GameOver = false
	gs.Projectile = nil
	gs.Aim = components.AimComponent{}
	gs.Wall.Health = gs.Wall.MaxHealth
	gs.resetTargets()
}

// resetTargets 重建靶子池
// 靶子从左边缘外依次排开，间隔 Spacing，逐个进入画面
func (gs *GameState) resetTargets() {
	count := gs.Config.Targets.Count
	radius := gs.Config.Targets.Radius

	gs.Targets = make([]components.TargetComponent, count)
	for i := range gs.Targets {
		gs.Targets[i] = components.TargetComponent{
			X:      -radius - float64(i)*gs.Config.Targets.Spacing,
			Y:      gs.randomSpawnY(),
			Radius: radius,
			Alive:  true,
		}
	}
}

// RespawnTarget 将靶子放回左边缘并随机新的 Y 坐标
//
// 参数:
//   - t: 需要重生的靶子（池中槽位的指针）
func (gs *GameState) RespawnTarget(t *components.TargetComponent) {
	t.X = -t.Radius
	t.Y = gs.randomSpawnY()
	t.Alive = true
}

func (gs *GameState) randomSpawnY() float64 {
	minY, maxY := gs.Config.SpawnYRange()
	return minY + gs.Rand.Float64()*(maxY-minY)
}

// AddScore 增加得分
func (gs *GameState) AddScore(amount int) {
	gs.Score += amount
}

// DamageWall 对墙造成伤害，生命值不低于 0
//
// 生命值首次降到 0 时进入游戏结束状态。
//
// 参数:
//   - amount: 伤害值
//
// 返回:
//   - bool: 本次伤害是否摧毁了墙
func (gs *GameState) DamageWall(amount int) bool {
	if gs.Wall.Health <= 0 {
		return false
	}

	gs.Wall.Health -= amount
	if gs.Wall.Health < 0 {
		gs.Wall.Health = 0
	}

	if gs.Wall.Health == 0 {
		gs.GameOver = true
		log.Printf("[GameState] Wall destroyed, game over (score=%d)", gs.Score)
		return true
	}
	return false
}

// WallState 返回墙当前的外观状态
func (gs *GameState) WallState() components.WallState {
	return components.WallStateFor(gs.Wall.Health)
}

// LiveExplosionCount 返回仍在播放的爆炸数量
func (gs *GameState) LiveExplosionCount() int {
	return len(gs.Explosions)
}
