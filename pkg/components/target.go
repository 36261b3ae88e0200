package components

// TargetComponent 存储一个移动靶子的状态
//
// 靶子池大小固定，靶子死亡后原地复用（重生到左边缘），
// 因此槽位在池中的下标在整局游戏中保持不变。
type TargetComponent struct {
	X, Y   float64 // 圆心（像素）
	Radius float64 // 半径（像素）
	Alive  bool    // false 表示等待重生
}
