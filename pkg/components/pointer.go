package components

// PointerEventType 指针事件类型
type PointerEventType int

const (
	// PointerDown 按下：开始瞄准
	PointerDown PointerEventType = iota
	// PointerMove 移动：瞄准中更新瞄准点
	PointerMove
	// PointerUp 释放：发射或取消
	PointerUp
)

// PointerEvent 画布坐标系下的一次指针输入
// 由输入采集层产生，在每帧更新开始时按顺序消费
type PointerEvent struct {
	Type PointerEventType
	X, Y float64
}

// AimComponent 拉弓瞄准状态
type AimComponent struct {
	Aiming bool    // 是否正在拉弓
	X, Y   float64 // 当前瞄准点（X 不小于弓锚点 X）
}
