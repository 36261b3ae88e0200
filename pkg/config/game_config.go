package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/gonewx/bowshot/pkg/utils"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 表示配置值不合法
// 调用者可使用 errors.Is 判断
var ErrInvalidConfig = errors.New("invalid game config")

// GameConfig 游戏全局配置
//
// 包含画布尺寸、弓与墙的几何参数、射击物理常量、靶子池参数、
// 爆炸粒子与碎片参数。所有距离单位为像素，速度单位为 像素/帧。
//
// 配置文件位置: data/bowshot.yaml
type GameConfig struct {
	Canvas    CanvasConfig    `yaml:"canvas"`
	Bow       BowConfig       `yaml:"bow"`
	Shooting  ShootingConfig  `yaml:"shooting"`
	Targets   TargetsConfig   `yaml:"targets"`
	Wall      WallConfig      `yaml:"wall"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Explosion ExplosionConfig `yaml:"explosion"`
	Debris    DebrisConfig    `yaml:"debris"`
	Preview   PreviewConfig   `yaml:"preview"`
}

// CanvasConfig 画布尺寸
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BowConfig 弓的位置参数
// 弓锚点固定在画布垂直中线上，距右边缘 OffsetFromRight
type BowConfig struct {
	OffsetFromRight float64 `yaml:"offsetFromRight"`
	Radius          float64 `yaml:"radius"`
}

// ShootingConfig 射击参数
type ShootingConfig struct {
	MaxPull   float64 `yaml:"maxPull"`   // 最大拉弓距离
	PowerDiv  float64 `yaml:"powerDiv"`  // 力度除数，越大越弱
	SpeedMult float64 `yaml:"speedMult"` // 速度乘数，负值表示反向发射
	Gravity   float64 `yaml:"gravity"`   // 箭的重力加速度
}

// TargetsConfig 靶子池参数
type TargetsConfig struct {
	Count       int     `yaml:"count"`
	Radius      float64 `yaml:"radius"`
	Speed       float64 `yaml:"speed"`
	Spacing     float64 `yaml:"spacing"`     // 开局时相邻靶子的水平间距
	SpawnMargin float64 `yaml:"spawnMargin"` // 重生 Y 坐标距上下边缘的留白
}

// WallConfig 墙的几何与生命值参数
type WallConfig struct {
	OffsetFromBow float64 `yaml:"offsetFromBow"`
	Width         float64 `yaml:"width"`
	HeightRatio   float64 `yaml:"heightRatio"` // 墙高 = floor(画布高 * HeightRatio)
	TopRatio      float64 `yaml:"topRatio"`    // 墙顶 = floor(画布高 / TopRatio)
	MaxHealth     int     `yaml:"maxHealth"`
	Damage        int     `yaml:"damage"`
}

// ScoringConfig 计分参数
type ScoringConfig struct {
	HitReward int `yaml:"hitReward"`
}

// ExplosionConfig 爆炸粒子参数
type ExplosionConfig struct {
	ParticleCount int     `yaml:"particleCount"`
	MinSpeed      float64 `yaml:"minSpeed"`
	SpeedJitter   float64 `yaml:"speedJitter"`
	MinRadius     float64 `yaml:"minRadius"`
	RadiusJitter  float64 `yaml:"radiusJitter"`
	Damping       float64 `yaml:"damping"`
	FadeRate      float64 `yaml:"fadeRate"`
	Color         string  `yaml:"color"`
}

// DebrisConfig 碎片参数
type DebrisConfig struct {
	FragmentCount   int     `yaml:"fragmentCount"`
	Spread          float64 `yaml:"spread"`
	MinWidth        float64 `yaml:"minWidth"`
	WidthJitter     float64 `yaml:"widthJitter"`
	MinHeight       float64 `yaml:"minHeight"`
	HeightJitter    float64 `yaml:"heightJitter"`
	MinFallSpeed    float64 `yaml:"minFallSpeed"`
	FallSpeedJitter float64 `yaml:"fallSpeedJitter"`
	Gravity         float64 `yaml:"gravity"`
	FloorInset      float64 `yaml:"floorInset"`
	Color           string  `yaml:"color"`

	// MaxFragments 碎片数量上限，只裁剪已落地的碎片
	// 0 表示不限制
	MaxFragments int `yaml:"maxFragments"`
}

// PreviewConfig 弹道预览参数
type PreviewConfig struct {
	Steps int `yaml:"steps"`
}

// Rect 轴对齐矩形（左上角 + 宽高）
type Rect struct {
	X, Y, Width, Height float64
}

// Point 二维坐标点
type Point struct {
	X, Y float64
}

// DefaultGameConfig 返回默认配置
// 画布 900x600，弓在右侧，城墙在弓左侧 120 像素处
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Canvas: CanvasConfig{Width: 900, Height: 600},
		Bow:    BowConfig{OffsetFromRight: 100, Radius: 40},
		Shooting: ShootingConfig{
			MaxPull:   50,
			PowerDiv:  10,
			SpeedMult: -5.0 / 3.0,
			Gravity:   0.15,
		},
		Targets: TargetsConfig{
			Count:       3,
			Radius:      30,
			Speed:       2,
			Spacing:     120,
			SpawnMargin: 100,
		},
		Wall: WallConfig{
			OffsetFromBow: 120,
			Width:         18,
			HeightRatio:   0.5,
			TopRatio:      1.67,
			MaxHealth:     100,
			Damage:        10,
		},
		Scoring: ScoringConfig{HitReward: 10},
		Explosion: ExplosionConfig{
			ParticleCount: 18,
			MinSpeed:      2,
			SpeedJitter:   2,
			MinRadius:     3,
			RadiusJitter:  2,
			Damping:       0.95,
			FadeRate:      0.03,
			Color:         "#ffeb3b",
		},
		Debris: DebrisConfig{
			FragmentCount:   6,
			Spread:          20,
			MinWidth:        6,
			WidthJitter:     8,
			MinHeight:       4,
			HeightJitter:    4,
			MinFallSpeed:    2,
			FallSpeedJitter: 2,
			Gravity:         0.4,
			FloorInset:      2,
			Color:           "#f44336",
		},
		Preview: PreviewConfig{Steps: 80},
	}
}

// ParseGameConfig 解析 YAML 配置
//
// YAML 中未出现的字段保留默认值。
//
// 参数:
//   - data: YAML 文本
//
// 返回:
//   - *GameConfig: 解析并验证后的配置
//   - error: 解析或验证失败时返回错误
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadGameConfig 从文件加载配置
//
// 参数:
//   - path: 配置文件路径（如 "data/bowshot.yaml"）
//
// 返回:
//   - *GameConfig: 加载成功后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	return ParseGameConfig(data)
}

// Validate 验证配置有效性
//
// 返回:
//   - error: 验证失败时返回包装了 ErrInvalidConfig 的错误
func (c *GameConfig) Validate() error {
	invalid := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return invalid("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}

	// 射击参数
	if c.Shooting.MaxPull <= 0 {
		return invalid("shooting.maxPull must be > 0, got %.2f", c.Shooting.MaxPull)
	}
	if c.Shooting.PowerDiv == 0 {
		return invalid("shooting.powerDiv must not be 0")
	}
	if c.Shooting.SpeedMult == 0 {
		return invalid("shooting.speedMult must not be 0")
	}

	// 靶子池
	if c.Targets.Count <= 0 {
		return invalid("targets.count must be > 0, got %d", c.Targets.Count)
	}
	if c.Targets.Radius <= 0 {
		return invalid("targets.radius must be > 0, got %.2f", c.Targets.Radius)
	}
	if minY, maxY := c.SpawnYRange(); minY > maxY {
		return invalid("targets.spawnMargin %.1f leaves no spawn range on a %d px canvas",
			c.Targets.SpawnMargin, c.Canvas.Height)
	}

	// 墙
	if c.Wall.Width <= 0 || c.Wall.HeightRatio <= 0 || c.Wall.TopRatio <= 0 {
		return invalid("wall width, heightRatio and topRatio must be > 0")
	}
	if c.Wall.MaxHealth <= 0 || c.Wall.Damage <= 0 {
		return invalid("wall maxHealth and damage must be > 0")
	}
	wall := c.Wall.rect(c)
	if wall.X < 0 || wall.X+wall.Width > float64(c.Canvas.Width) || wall.Y >= float64(c.Canvas.Height) {
		return invalid("wall (%.1f, %.1f) lies outside the canvas", wall.X, wall.Y)
	}

	if c.Scoring.HitReward <= 0 {
		return invalid("scoring.hitReward must be > 0, got %d", c.Scoring.HitReward)
	}

	// 爆炸
	if c.Explosion.ParticleCount <= 0 {
		return invalid("explosion.particleCount must be > 0")
	}
	if c.Explosion.Damping <= 0 || c.Explosion.Damping >= 1 {
		return invalid("explosion.damping must be in (0, 1), got %.3f", c.Explosion.Damping)
	}
	if c.Explosion.FadeRate <= 0 {
		return invalid("explosion.fadeRate must be > 0, got %.3f", c.Explosion.FadeRate)
	}
	if _, err := utils.ParseHexColor(c.Explosion.Color); err != nil {
		return invalid("explosion.color: %v", err)
	}

	// 碎片
	if c.Debris.FragmentCount < 0 || c.Debris.MaxFragments < 0 {
		return invalid("debris.fragmentCount and debris.maxFragments must be >= 0")
	}
	if _, err := utils.ParseHexColor(c.Debris.Color); err != nil {
		return invalid("debris.color: %v", err)
	}

	if c.Preview.Steps < 0 {
		return invalid("preview.steps must be >= 0, got %d", c.Preview.Steps)
	}

	return nil
}

// Width 画布宽度（浮点）
func (c *GameConfig) Width() float64 {
	return float64(c.Canvas.Width)
}

// Height 画布高度（浮点）
func (c *GameConfig) Height() float64 {
	return float64(c.Canvas.Height)
}

// BowAnchor 返回弓锚点坐标
func (c *GameConfig) BowAnchor() Point {
	return Point{
		X: c.Width() - c.Bow.OffsetFromRight,
		Y: c.Height() / 2,
	}
}

// WallRect 返回墙的矩形区域
func (c *GameConfig) WallRect() Rect {
	return c.Wall.rect(c)
}

func (w WallConfig) rect(c *GameConfig) Rect {
	return Rect{
		X:      c.Width() - c.Bow.OffsetFromRight - w.OffsetFromBow,
		Y:      math.Floor(c.Height() / w.TopRatio),
		Width:  w.Width,
		Height: math.Floor(c.Height() * w.HeightRatio),
	}
}

// FloorY 返回碎片落地的地面线
func (c *GameConfig) FloorY() float64 {
	return c.Height() - c.Debris.FloorInset
}

// SpawnYRange 返回靶子重生的 Y 坐标范围 [min, max)
func (c *GameConfig) SpawnYRange() (min, max float64) {
	return c.Targets.SpawnMargin, c.Height() - c.Targets.SpawnMargin
}

// ExplosionColor 返回爆炸粒子颜色
// 配置已通过 Validate 时不会失败，解析失败则退回白色
func (c *GameConfig) ExplosionColor() color.RGBA {
	return mustColor(c.Explosion.Color)
}

// DebrisColor 返回碎片颜色
func (c *GameConfig) DebrisColor() color.RGBA {
	return mustColor(c.Debris.Color)
}

func mustColor(hex string) color.RGBA {
	clr, err := utils.ParseHexColor(hex)
	if err != nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return clr
}
