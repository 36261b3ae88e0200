// Package utils 提供通用工具函数
package utils

import (
	"github.com/gonewx/bowshot/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerTracker 将鼠标/触摸轮询结果转换为指针事件
//
// ebiten 是轮询式输入，这里记住上一帧的指针位置与按下状态，
// 在每帧产生与浏览器事件等价的 down / move / up 序列。
// 触摸优先于鼠标，只跟踪第一个触点；移动平台上只读取触摸。
type PointerTracker struct {
	lastX, lastY int
	touchID      ebiten.TouchID
	touching     bool
}

// NewPointerTracker 创建指针跟踪器
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{touchID: -1}
}

// Poll 采集本帧的指针事件，按 down → move → up 的顺序追加到 dst
//
// 参数:
//   - dst: 事件切片（可为 nil）
//
// 返回:
//   - []components.PointerEvent: 追加后的切片
func (pt *PointerTracker) Poll(dst []components.PointerEvent) []components.PointerEvent {
	if IsMobile() || pt.touching || len(ebiten.AppendTouchIDs(nil)) > 0 {
		return pt.pollTouch(dst)
	}
	return pt.pollMouse(dst)
}

func (pt *PointerTracker) pollMouse(dst []components.PointerEvent) []components.PointerEvent {
	x, y := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		dst = append(dst, pointerEvent(components.PointerDown, x, y))
	} else if x != pt.lastX || y != pt.lastY {
		dst = append(dst, pointerEvent(components.PointerMove, x, y))
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		dst = append(dst, pointerEvent(components.PointerUp, x, y))
	}

	pt.lastX, pt.lastY = x, y
	return dst
}

func (pt *PointerTracker) pollTouch(dst []components.PointerEvent) []components.PointerEvent {
	if !pt.touching {
		ids := inpututil.AppendJustPressedTouchIDs(nil)
		if len(ids) == 0 {
			return dst
		}
		pt.touchID = ids[0]
		pt.touching = true
		pt.lastX, pt.lastY = ebiten.TouchPosition(pt.touchID)
		return append(dst, pointerEvent(components.PointerDown, pt.lastX, pt.lastY))
	}

	// 触点释放时使用最后记录的位置
	if inpututil.IsTouchJustReleased(pt.touchID) {
		pt.touching = false
		pt.touchID = -1
		return append(dst, pointerEvent(components.PointerUp, pt.lastX, pt.lastY))
	}

	x, y := ebiten.TouchPosition(pt.touchID)
	if x != pt.lastX || y != pt.lastY {
		dst = append(dst, pointerEvent(components.PointerMove, x, y))
		pt.lastX, pt.lastY = x, y
	}
	return dst
}

func pointerEvent(t components.PointerEventType, x, y int) components.PointerEvent {
	return components.PointerEvent{Type: t, X: float64(x), Y: float64(y)}
}

// IsRestartRequested 检查本帧是否按下了重新开始键（R 或回车）
func IsRestartRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}
