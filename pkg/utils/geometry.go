package utils

import "math"

// 碰撞几何工具
//
// 所有矩形均以左上角 + 宽高表示（与画布坐标一致，Y 轴向下）。
// 边界判定为严格不等式：刚好接触边缘不算重叠。

// Distance 返回两点之间的欧氏距离
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}

// PointInRect 检查点是否严格位于矩形内部
func PointInRect(px, py, rx, ry, rw, rh float64) bool {
	return px > rx && px < rx+rw &&
		py > ry && py < ry+rh
}

// CircleOverlapsRect 检查圆与矩形是否重叠
//
// 使用半径扩展包围盒近似：将圆视为边长 2r 的正方形做 AABB 检测。
// 矩形角落附近会比精确圆形检测更早判定为碰撞。
//
// 参数:
//   - cx, cy: 圆心
//   - r: 半径
//   - rx, ry, rw, rh: 矩形左上角与宽高
//
// 返回:
//   - bool: 重叠返回 true
func CircleOverlapsRect(cx, cy, r, rx, ry, rw, rh float64) bool {
	return cx-r < rx+rw && cx+r > rx &&
		cy+r > ry && cy-r < ry+rh
}

// PointInCircle 检查点是否严格位于圆内
func PointInCircle(px, py, cx, cy, r float64) bool {
	return Distance(px, py, cx, cy) < r
}

// OutOfBounds 检查点是否离开 [0, w] x [0, h] 画布
func OutOfBounds(x, y, w, h float64) bool {
	return x > w || y > h || x < 0 || y < 0
}

// Clamp 将值限制在 [min, max] 范围内
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
