package systems

import (
	"github.com/gonewx/bowshot/pkg/components"
	"github.com/gonewx/bowshot/pkg/game"
)

// InputSystem 消费指针事件队列，驱动拉弓与发射
//
// 事件由采集层（GameScene）按发生顺序 Push，在每帧更新开始时统一处理：
//   - PointerDown: 在弓锚点右侧按下才开始瞄准
//   - PointerMove: 瞄准中更新瞄准点，X 不允许越过弓锚点向左
//   - PointerUp:   没有飞行中的箭时发射；在弓锚点左侧释放则取消
type InputSystem struct {
	queue []components.PointerEvent
}

// NewInputSystem 创建输入系统
func NewInputSystem() *InputSystem {
	return &InputSystem{
		queue: make([]components.PointerEvent, 0, 8),
	}
}

// Push 追加一个指针事件
func (s *InputSystem) Push(event components.PointerEvent) {
	s.queue = append(s.queue, event)
}

// Pending 返回尚未处理的事件数
func (s *InputSystem) Pending() int {
	return len(s.queue)
}

// Clear 丢弃所有待处理事件
func (s *InputSystem) Clear() {
	s.queue = s.queue[:0]
}

// Update 按顺序处理并清空事件队列
//
// 游戏结束后的事件全部丢弃。
func (s *InputSystem) Update(gs *game.GameState) {
	defer s.Clear()

	if gs.GameOver {
		return
	}

	for _, ev := range s.queue {
		switch ev.Type {
		case components.PointerDown:
			s.handleDown(gs, ev)
		case components.PointerMove:
			s.handleMove(gs, ev)
		case components.PointerUp:
			s.handleUp(gs, ev)
		}
	}
}

func (s *InputSystem) handleDown(gs *game.GameState, ev components.PointerEvent) {
	bow := gs.Config.BowAnchor()
	// 弓锚点左侧不能开始拉弓
	if ev.X < bow.X {
		return
	}
	gs.Aim = components.AimComponent{Aiming: true, X: ev.X, Y: ev.Y}
}

func (s *InputSystem) handleMove(gs *game.GameState, ev components.PointerEvent) {
	if !gs.Aim.Aiming {
		return
	}

	bow := gs.Config.BowAnchor()
	if ev.X < bow.X {
		gs.Aim.X = bow.X
	} else {
		gs.Aim.X = ev.X
	}
	gs.Aim.Y = ev.Y
}

func (s *InputSystem) handleUp(gs *game.GameState, ev components.PointerEvent) {
	defer func() { gs.Aim.Aiming = false }()

	if !gs.Aim.Aiming || gs.Projectile != nil {
		return
	}

	bow := gs.Config.BowAnchor()
	// 在弓锚点左侧释放视为取消
	if ev.X < bow.X {
		return
	}

	vx, vy := LaunchVelocity(gs.Config.Shooting, ev.X-bow.X, ev.Y-bow.Y)
	gs.Projectile = &components.ProjectileComponent{
		X:      bow.X,
		Y:      bow.Y,
		VX:     vx,
		VY:     vy,
		Flying: true,
	}
}
