// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/bowshot/pkg/config"
	"github.com/gonewx/bowshot/pkg/game"
	"github.com/gonewx/bowshot/pkg/scenes"
	"github.com/gonewx/bowshot/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "bowshot"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// GameConfig 游戏配置，为 nil 时使用默认配置
	GameConfig *config.GameConfig
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// DisableStorage 不打开 gdata 存储（最高分只保存在内存中）
	DisableStorage bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	scene   *scenes.GameScene
	cfg     *config.GameConfig
	verbose bool
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	ConfigureLogging(cfg.Verbose)

	gameConfig := cfg.GameConfig
	if gameConfig == nil {
		gameConfig = config.DefaultGameConfig()
	}
	if err := gameConfig.Validate(); err != nil {
		return nil, fmt.Errorf("游戏配置无效: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)

	records := game.NewRecordsManager(openStorage(cfg.DisableStorage))
	scene := scenes.NewGameScene(gameConfig, rand.New(rand.NewSource(seed)), records)

	return &App{
		scene:   scene,
		cfg:     gameConfig,
		verbose: cfg.Verbose,
	}, nil
}

// ConfigureLogging 配置日志输出
// 非 verbose 模式下丢弃所有日志
func ConfigureLogging(verbose bool) {
	if !verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
}

// openStorage 打开 gdata 存储
// 失败时返回 nil，记录管理器进入降级模式
func openStorage(disabled bool) *gdata.Manager {
	if disabled {
		return nil
	}

	if err := utils.EnsureStorageDir(AppName); err != nil {
		log.Printf("[App] Warning: %v (records kept in memory)", err)
		return nil
	}

	manager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: Failed to open storage: %v (records kept in memory)", err)
		return nil
	}
	return manager
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.scene.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.scene.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Canvas.Width, a.cfg.Canvas.Height
}

// Restart 重新开始一局
func (a *App) Restart() {
	a.scene.Restart()
}

// GameConfig 返回当前游戏配置
func (a *App) GameConfig() *config.GameConfig {
	return a.cfg
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
