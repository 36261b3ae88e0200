package systems

import (
	"math/rand"
	"testing"

	"github.com/gonewx/bowshot/pkg/components"
	"github.com/gonewx/bowshot/pkg/config"
	"github.com/gonewx/bowshot/pkg/game"
)

// newTestState 创建使用默认配置和固定种子的游戏状态
func newTestState(t *testing.T) *game.GameState {
	t.Helper()
	return game.NewGameState(config.DefaultGameConfig(), rand.New(rand.NewSource(42)))
}

// parkTargets 把所有靶子移到远离画面的左侧，避免干扰单项测试
func parkTargets(gs *game.GameState) {
	for i := range gs.Targets {
		gs.Targets[i].X = -1000 - float64(i)*100
		gs.Targets[i].Y = 300
	}
}

// release 推送一次完整的拉弓与释放（相对弓锚点的位移）
func release(sim *Simulation, gs *game.GameState, dx, dy float64) {
	bow := gs.Config.BowAnchor()
	sim.Input().Push(components.PointerEvent{Type: components.PointerDown, X: bow.X + dx, Y: bow.Y + dy})
	sim.Input().Push(components.PointerEvent{Type: components.PointerUp, X: bow.X + dx, Y: bow.Y + dy})
}
