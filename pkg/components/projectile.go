package components

// ProjectileComponent 存储飞行中的箭的状态
// 场上同一时刻最多只有一支箭；箭被销毁时由持有者置为 nil
type ProjectileComponent struct {
	X, Y   float64 // 箭头位置（像素）
	VX, VY float64 // 速度（像素/帧）
	Flying bool    // 是否仍在飞行
}
