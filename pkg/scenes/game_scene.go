package scenes

import (
	"log"
	"math/rand"

	"github.com/gonewx/bowshot/pkg/components"
	"github.com/gonewx/bowshot/pkg/config"
	"github.com/gonewx/bowshot/pkg/game"
	"github.com/gonewx/bowshot/pkg/systems"
	"github.com/gonewx/bowshot/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerSource 指针事件来源
// 运行时由 utils.PointerTracker 提供，测试中可替换为脚本化输入
type PointerSource interface {
	Poll(dst []components.PointerEvent) []components.PointerEvent
}

var _ Scene = (*GameScene)(nil)

// GameScene 游戏主场景
//
// 每帧流程：采集指针事件 → 推进模拟 → 处理游戏结束 → 生成快照供绘制。
// 游戏结束后模拟停止推进，画面保持静止，直到玩家点击重新开始按钮或按 R。
type GameScene struct {
	cfg   *config.GameConfig
	state *game.GameState

	simulation   *systems.Simulation
	renderSystem *systems.RenderSystem
	pointer      PointerSource
	records      *game.RecordsManager

	// restartKey 返回本帧是否请求重新开始（默认读取键盘）
	restartKey func() bool

	events   []components.PointerEvent // 复用的事件缓冲
	snapshot game.Snapshot             // 最近一次更新后的快照
}

// NewGameScene 创建游戏场景
//
// 参数:
//   - cfg: 已验证的游戏配置
//   - rng: 随机源
//   - records: 成绩记录管理器（可为 nil）
//
// 返回:
//   - *GameScene: 场景实例
func NewGameScene(cfg *config.GameConfig, rng *rand.Rand, records *game.RecordsManager) *GameScene {
	if records == nil {
		records = game.NewRecordsManager(nil)
	}

	s := &GameScene{
		cfg:          cfg,
		state:        game.NewGameState(cfg, rng),
		simulation:   systems.NewSimulation(),
		renderSystem: systems.NewRenderSystem(cfg),
		pointer:      utils.NewPointerTracker(),
		records:      records,
		restartKey:   utils.IsRestartRequested,
		events:       make([]components.PointerEvent, 0, 4),
	}
	s.snapshot = s.state.Snapshot()

	log.Printf("[GameScene] Created: canvas=%dx%d targets=%d wall=%d",
		cfg.Canvas.Width, cfg.Canvas.Height, cfg.Targets.Count, cfg.Wall.MaxHealth)
	return s
}

// SetPointerSource 替换指针事件来源
func (s *GameScene) SetPointerSource(src PointerSource) {
	s.pointer = src
}

// SetRestartKey 替换重新开始键检测函数
func (s *GameScene) SetRestartKey(fn func() bool) {
	s.restartKey = fn
}

// Update 推进一帧
// deltaTime 未使用：物理按固定帧步长积分
func (s *GameScene) Update(deltaTime float64) {
	s.events = s.pointer.Poll(s.events[:0])

	if s.state.GameOver {
		if s.restartRequested() {
			s.Restart()
		}
		return
	}

	input := s.simulation.Input()
	for _, ev := range s.events {
		input.Push(ev)
	}

	if s.simulation.Step(s.state) {
		s.onGameOver()
	}
	s.snapshot = s.state.Snapshot()
}

// restartRequested 检查重新开始按钮点击或按键
func (s *GameScene) restartRequested() bool {
	if s.restartKey != nil && s.restartKey() {
		return true
	}

	btn := systems.RestartButtonRect(s.cfg.Canvas)
	for _, ev := range s.events {
		if ev.Type != components.PointerDown {
			continue
		}
		if ev.X >= btn.X && ev.X <= btn.X+btn.Width && ev.Y >= btn.Y && ev.Y <= btn.Y+btn.Height {
			return true
		}
	}
	return false
}

// onGameOver 游戏结束时提交成绩
func (s *GameScene) onGameOver() {
	improved, err := s.records.Submit(s.state.Score)
	if err != nil {
		log.Printf("[GameScene] Warning: Failed to save records: %v", err)
	}
	if improved {
		log.Printf("[GameScene] New best score: %d", s.state.Score)
	}
}

// Restart 重新开始一局并恢复帧循环
func (s *GameScene) Restart() {
	s.simulation.Restart(s.state)
	s.snapshot = s.state.Snapshot()
}

// Draw 绘制最近一次更新后的快照
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen, s.snapshot, s.records.BestScore())
}

// State 返回游戏状态（用于调试与测试）
func (s *GameScene) State() *game.GameState {
	return s.state
}

// Snapshot 返回最近一次更新后的快照
func (s *GameScene) Snapshot() game.Snapshot {
	return s.snapshot
}
