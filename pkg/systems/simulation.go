package systems

import (
	"log"

	"github.com/gonewx/bowshot/pkg/game"
)

// Simulation 模拟核心：每帧调用一次 Step 推进整局游戏
//
// 更新顺序固定为：输入 → 箭 → 靶子 → 爆炸 → 碎片。
// 游戏结束后 Step 不再修改任何物理状态，直到调用 Restart。
type Simulation struct {
	inputSystem      *InputSystem
	projectileSystem *ProjectileSystem
	targetSystem     *TargetSystem
	explosionSystem  *ExplosionSystem
	debrisSystem     *DebrisSystem

	frame uint64 // 已推进的帧数（跨局累计）
}

// NewSimulation 创建模拟核心
func NewSimulation() *Simulation {
	return &Simulation{
		inputSystem:      NewInputSystem(),
		projectileSystem: NewProjectileSystem(),
		targetSystem:     NewTargetSystem(),
		explosionSystem:  NewExplosionSystem(),
		debrisSystem:     NewDebrisSystem(),
	}
}

// Input 返回输入系统，采集层通过它推送指针事件
func (sim *Simulation) Input() *InputSystem {
	return sim.inputSystem
}

// Frame 返回已推进的帧数
func (sim *Simulation) Frame() uint64 {
	return sim.frame
}

// Step 推进一帧
//
// 返回:
//   - bool: 本帧是否进入了游戏结束状态
func (sim *Simulation) Step(gs *game.GameState) bool {
	if gs.GameOver {
		sim.inputSystem.Clear()
		return false
	}

	sim.frame++
	sim.inputSystem.Update(gs)
	sim.projectileSystem.Update(gs)

	// 墙被摧毁后本帧不再处理其他效果
	if sim.targetSystem.Update(gs) {
		log.Printf("[Simulation] Game over at frame %d, score=%d", sim.frame, gs.Score)
		return true
	}

	sim.explosionSystem.Update(gs)
	sim.debrisSystem.Update(gs)
	return false
}

// Restart 重新开始一局
func (sim *Simulation) Restart(gs *game.GameState) {
	sim.inputSystem.Clear()
	gs.Reset()
	log.Printf("[Simulation] Restarted at frame %d", sim.frame)
}
