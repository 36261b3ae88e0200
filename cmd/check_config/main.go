// Package main validates a Bowshot config file and prints the derived layout.
//
// Usage:
//
//	go run ./cmd/check_config [path]
//
// The path defaults to data/bowshot.yaml.
package main

import (
	"crypto/md5"
	"fmt"
	"os"

	"github.com/gonewx/bowshot/pkg/config"
)

func main() {
	path := "data/bowshot.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.ParseGameConfig(data)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s MD5: %x (%d bytes)\n", path, md5.Sum(data), len(data))
	describe(cfg)
}

func describe(cfg *config.GameConfig) {
	bow := cfg.BowAnchor()
	wall := cfg.WallRect()
	minY, maxY := cfg.SpawnYRange()

	fmt.Printf("Canvas:  %dx%d\n", cfg.Canvas.Width, cfg.Canvas.Height)
	fmt.Printf("Bow:     (%.0f, %.0f) r=%.0f\n", bow.X, bow.Y, cfg.Bow.Radius)
	fmt.Printf("Wall:    (%.0f, %.0f) %.0fx%.0f health=%d damage=%d\n",
		wall.X, wall.Y, wall.Width, wall.Height, cfg.Wall.MaxHealth, cfg.Wall.Damage)
	fmt.Printf("Targets: %d x r=%.0f speed=%.1f spawnY=[%.0f, %.0f)\n",
		cfg.Targets.Count, cfg.Targets.Radius, cfg.Targets.Speed, minY, maxY)
	fmt.Printf("Floor:   y=%.0f\n", cfg.FloorY())
	fmt.Printf("Hits to destroy wall: %d\n", (cfg.Wall.MaxHealth+cfg.Wall.Damage-1)/cfg.Wall.Damage)
}
