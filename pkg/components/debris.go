package components

import "image/color"

// DebrisComponent 靶子破碎后下落的碎片
//
// 碎片只在垂直方向运动，落地后永久静止（Landed = true）。
type DebrisComponent struct {
	X, Y          float64 // 左上角（像素）
	Width, Height float64
	Color         color.RGBA
	VY            float64 // 垂直速度（像素/帧），向下为正
	Landed        bool
}
