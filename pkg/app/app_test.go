package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/gonewx/bowshot/pkg/config"
	"github.com/gonewx/bowshot/pkg/embedded"
)

// TestLoadGameConfig 测试配置加载优先级
func TestLoadGameConfig(t *testing.T) {
	t.Run("指定文件优先", func(t *testing.T) {
		embedded.Init(fstest.MapFS{
			"data/bowshot.yaml": {Data: []byte("targets:\n  count: 4\n")},
		})
		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("targets:\n  count: 6\n"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := LoadGameConfig(path)
		if err != nil {
			t.Fatalf("LoadGameConfig() error: %v", err)
		}
		if cfg.Targets.Count != 6 {
			t.Errorf("targets.count = %d, want 6", cfg.Targets.Count)
		}
	})

	t.Run("内置配置", func(t *testing.T) {
		embedded.Init(fstest.MapFS{
			"data/bowshot.yaml": {Data: []byte("targets:\n  count: 4\n")},
		})

		cfg, err := LoadGameConfig("")
		if err != nil {
			t.Fatalf("LoadGameConfig() error: %v", err)
		}
		if cfg.Targets.Count != 4 {
			t.Errorf("targets.count = %d, want 4", cfg.Targets.Count)
		}
	})

	t.Run("没有内置配置时使用默认值", func(t *testing.T) {
		embedded.Init(fstest.MapFS{})

		cfg, err := LoadGameConfig("")
		if err != nil {
			t.Fatalf("LoadGameConfig() error: %v", err)
		}
		if *cfg != *config.DefaultGameConfig() {
			t.Error("expected default config")
		}
	})

	t.Run("内置配置无效", func(t *testing.T) {
		embedded.Init(fstest.MapFS{
			"data/bowshot.yaml": {Data: []byte("wall:\n  damage: 0\n")},
		})

		_, err := LoadGameConfig("")
		if !errors.Is(err, config.ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("指定文件不存在", func(t *testing.T) {
		_, err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected os.ErrNotExist, got %v", err)
		}
	})
}

// TestNewApp 测试应用初始化
func TestNewApp(t *testing.T) {
	a, err := NewApp(Config{Seed: 5, DisableStorage: true})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}

	w, h := a.Layout(1920, 1080)
	if w != 900 || h != 600 {
		t.Errorf("Layout() = %dx%d, want 900x600", w, h)
	}
	if a.IsVerbose() {
		t.Error("expected non-verbose app")
	}
	if a.GameConfig().Targets.Count != 3 {
		t.Errorf("expected default config, got %+v", a.GameConfig().Targets)
	}

	a.scene.State().Score = 20
	a.Restart()
	if a.scene.State().Score != 0 {
		t.Error("Restart() should reset the score")
	}
}

// TestNewAppInvalidConfig 测试无效配置被拒绝
func TestNewAppInvalidConfig(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Canvas.Width = 0

	if _, err := NewApp(Config{GameConfig: cfg, DisableStorage: true}); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
