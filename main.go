package main

import (
	"log"
	"os"

	"github.com/gonewx/bowshot/pkg/app"
	"github.com/gonewx/bowshot/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

// 命令行参数
var (
	verboseFlag    bool
	configFlag     string
	seedFlag       int64
	fullscreenFlag bool
	noStorageFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "bowshot",
	Short: "Bowshot - 拉弓射击漂移靶子，守住城墙",
	Long: `Bowshot 是一个弓箭小游戏：
在弓的右侧按下并拖动鼠标拉弓，松开发射。
靶子从左向右飘过，撞上城墙会扣除城墙生命值，城墙被摧毁则游戏结束。`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Path to a game config YAML (default: built-in data/bowshot.yaml)")
	rootCmd.Flags().Int64Var(&seedFlag, "seed", 0, "Random seed (0 = time based)")
	rootCmd.Flags().BoolVar(&fullscreenFlag, "fullscreen", false, "Start in fullscreen mode")
	rootCmd.Flags().BoolVar(&noStorageFlag, "no-storage", false, "Do not persist the best score")
}

func run() error {
	app.ConfigureLogging(verboseFlag)

	// 初始化嵌入资源
	embedded.Init(dataFS)

	gameConfig, err := app.LoadGameConfig(configFlag)
	if err != nil {
		return err
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:        verboseFlag,
		GameConfig:     gameConfig,
		Seed:           seedFlag,
		DisableStorage: noStorageFlag,
	})
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(gameConfig.Canvas.Width, gameConfig.Canvas.Height)
	ebiten.SetWindowTitle("Bowshot")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(fullscreenFlag)

	// 启动帧循环，直到窗口关闭
	return ebiten.RunGame(gameApp)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
