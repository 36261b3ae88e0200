package systems

import (
	"math"

	"github.com/gonewx/bowshot/pkg/config"
	"github.com/gonewx/bowshot/pkg/utils"
)

// LaunchVelocity 根据拉弓向量计算箭的初速度
//
// 拉弓距离被限制在 MaxPull 以内，力度 = 距离 / PowerDiv，
// 再乘以负的 SpeedMult：向后拉得越远，向前射得越快（弹弓式反向）。
//
// 参数:
//   - cfg: 射击参数
//   - dx, dy: 瞄准点相对弓锚点的位移
//
// 返回:
//   - vx, vy: 初速度（像素/帧）
func LaunchVelocity(cfg config.ShootingConfig, dx, dy float64) (vx, vy float64) {
	pull := math.Min(math.Hypot(dx, dy), cfg.MaxPull)
	angle := math.Atan2(dy, dx)
	power := pull / cfg.PowerDiv

	vx = math.Cos(angle) * power * cfg.SpeedMult
	vy = math.Sin(angle) * power * cfg.SpeedMult
	return vx, vy
}

// PredictTrajectory 预测从弓锚点射出的箭的飞行轨迹
//
// 与 ProjectileSystem 使用相同的积分方式（先位移、再加重力），
// 第一个越出画布的点也会被包含在结果中，随后停止。
//
// 参数:
//   - cfg: 游戏配置
//   - aimX, aimY: 瞄准点
//
// 返回:
//   - []config.Point: 轨迹点，首元素为弓锚点
func PredictTrajectory(cfg *config.GameConfig, aimX, aimY float64) []config.Point {
	bow := cfg.BowAnchor()
	vx, vy := LaunchVelocity(cfg.Shooting, aimX-bow.X, aimY-bow.Y)

	points := make([]config.Point, 0, cfg.Preview.Steps+1)
	x, y := bow.X, bow.Y
	points = append(points, config.Point{X: x, Y: y})

	for i := 0; i < cfg.Preview.Steps; i++ {
		x += vx
		y += vy
		vy += cfg.Shooting.Gravity
		points = append(points, config.Point{X: x, Y: y})
		if utils.OutOfBounds(x, y, cfg.Width(), cfg.Height()) {
			break
		}
	}

	return points
}
