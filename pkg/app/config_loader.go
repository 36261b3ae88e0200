package app

import (
	"fmt"
	"log"

	"github.com/gonewx/bowshot/pkg/config"
	"github.com/gonewx/bowshot/pkg/embedded"
)

// LoadGameConfig 加载游戏配置
//
// 优先级：指定的配置文件 > 内置配置 (data/bowshot.yaml) > 代码默认值。
//
// 参数:
//   - path: 配置文件路径，为空时使用内置配置
//
// 返回:
//   - *config.GameConfig: 已验证的配置
//   - error: 指定文件或内置配置无法解析时返回错误
func LoadGameConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		cfg, err := config.LoadGameConfig(path)
		if err != nil {
			return nil, fmt.Errorf("配置文件加载失败: %w", err)
		}
		log.Printf("[Config] 加载配置文件: %s", path)
		return cfg, nil
	}

	if !embedded.Exists(embedded.DefaultConfigPath) {
		log.Printf("[Config] 未找到内置配置，使用默认值")
		return config.DefaultGameConfig(), nil
	}

	data, err := embedded.ReadFile(embedded.DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("内置配置读取失败: %w", err)
	}

	cfg, err := config.ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("内置配置解析失败: %w", err)
	}
	log.Printf("[Config] 加载内置配置: %s", embedded.DefaultConfigPath)
	return cfg, nil
}
