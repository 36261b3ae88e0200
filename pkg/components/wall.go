package components

// WallState 墙的外观状态
// 仅是对生命值的阈值划分，不参与碰撞逻辑
type WallState int

const (
	// WallHealthy 完好：生命值 >= 70
	WallHealthy WallState = iota
	// WallDamaged 受损：生命值 40-69
	WallDamaged
	// WallCritical 危急：生命值 1-39
	WallCritical
	// WallDestroyed 被摧毁：生命值 0，触发游戏结束
	WallDestroyed
)

// WallComponent 存储墙的矩形区域与生命值
type WallComponent struct {
	X, Y          float64 // 左上角（像素）
	Width, Height float64
	Health        int // 当前生命值，范围 [0, MaxHealth]
	MaxHealth     int
}

// WallStateFor 根据生命值返回墙的外观状态
func WallStateFor(health int) WallState {
	switch {
	case health <= 0:
		return WallDestroyed
	case health < 40:
		return WallCritical
	case health < 70:
		return WallDamaged
	default:
		return WallHealthy
	}
}

// String 返回状态名称（用于日志）
func (s WallState) String() string {
	switch s {
	case WallHealthy:
		return "healthy"
	case WallDamaged:
		return "damaged"
	case WallCritical:
		return "critical"
	case WallDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}
