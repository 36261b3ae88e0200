// Package main provides a headless simulation runner for Bowshot.
//
// It drives the simulation core without a window, feeding scripted
// pull-and-release shots, and prints a summary of every finished game.
//
// Usage:
//
//	go run ./cmd/simulate [flags]
//
// Flags:
//
//	--frames <n>     Number of frames to simulate (default 3600)
//	--seed <n>       Random seed (default 1)
//	--shots <list>   Scripted shots "frame:dx:dy,..." (pull vector relative to the bow)
//	--every <n>      Without --shots, release a straight shot every n frames (default 45)
//	--restart        Restart automatically after game over
//	--config <path>  Game config YAML (default: built-in defaults)
//	--verbose        Enable verbose logging
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/gonewx/bowshot/pkg/components"
	"github.com/gonewx/bowshot/pkg/config"
	"github.com/gonewx/bowshot/pkg/game"
	"github.com/gonewx/bowshot/pkg/systems"
)

var (
	framesFlag  = flag.Int("frames", 3600, "Number of frames to simulate")
	seedFlag    = flag.Int64("seed", 1, "Random seed")
	shotsFlag   = flag.String("shots", "", `Scripted shots "frame:dx:dy,..."`)
	everyFlag   = flag.Int("every", 45, "Release a straight shot every n frames when --shots is empty")
	restartFlag = flag.Bool("restart", false, "Restart automatically after game over")
	configFlag  = flag.String("config", "", "Game config YAML")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

// shot 一次脚本化射击：在 Frame 帧按下并释放，拉弓向量为 (DX, DY)
type shot struct {
	Frame  int
	DX, DY float64
}

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultGameConfig()
	if *configFlag != "" {
		loaded, err := config.LoadGameConfig(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	shots, err := parseShots(*shotsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --shots: %v\n", err)
		os.Exit(2)
	}
	if len(shots) == 0 {
		shots = volley(*framesFlag, *everyFlag, cfg.Shooting.MaxPull)
	}

	gs := game.NewGameState(cfg, rand.New(rand.NewSource(*seedFlag)))
	sim := systems.NewSimulation()

	results := run(gs, sim, shots, *framesFlag, *restartFlag)
	for i, r := range results {
		fmt.Printf("game %d: frames=%d score=%d wall=%d hits=%d gameOver=%v\n",
			i+1, r.Frames, r.Score, r.WallHealth, r.Score/cfg.Scoring.HitReward, r.GameOver)
	}
	fmt.Printf("debris fragments on the floor: %d\n", countLanded(gs.Debris))
}

// result 一局的统计
type result struct {
	Frames     int
	Score      int
	WallHealth int
	GameOver   bool
}

// run 推进模拟 frames 帧，返回每局的统计
func run(gs *game.GameState, sim *systems.Simulation, shots []shot, frames int, restart bool) []result {
	bow := gs.Config.BowAnchor()
	next := 0
	start := 0
	var results []result

	for frame := 0; frame < frames; frame++ {
		for next < len(shots) && shots[next].Frame <= frame {
			s := shots[next]
			x, y := bow.X+s.DX, bow.Y+s.DY
			sim.Input().Push(components.PointerEvent{Type: components.PointerDown, X: x, Y: y})
			sim.Input().Push(components.PointerEvent{Type: components.PointerUp, X: x, Y: y})
			next++
		}

		if sim.Step(gs) {
			results = append(results, result{
				Frames:     frame - start + 1,
				Score:      gs.Score,
				WallHealth: gs.Wall.Health,
				GameOver:   true,
			})
			if !restart {
				return results
			}
			sim.Restart(gs)
			start = frame + 1
		}
	}

	return append(results, result{
		Frames:     frames - start,
		Score:      gs.Score,
		WallHealth: gs.Wall.Health,
		GameOver:   gs.GameOver,
	})
}

// parseShots 解析 "frame:dx:dy,..." 格式的射击脚本，按帧排序
func parseShots(script string) ([]shot, error) {
	script = strings.TrimSpace(script)
	if script == "" {
		return nil, nil
	}

	var shots []shot
	for _, item := range strings.Split(script, ",") {
		parts := strings.Split(strings.TrimSpace(item), ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("shot %q: want frame:dx:dy", item)
		}

		frame, err := strconv.Atoi(parts[0])
		if err != nil || frame < 0 {
			return nil, fmt.Errorf("shot %q: invalid frame", item)
		}
		dx, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("shot %q: invalid dx: %w", item, err)
		}
		dy, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("shot %q: invalid dy: %w", item, err)
		}

		shots = append(shots, shot{Frame: frame, DX: dx, DY: dy})
	}

	sort.SliceStable(shots, func(i, j int) bool { return shots[i].Frame < shots[j].Frame })
	return shots, nil
}

// volley 生成水平满弓的定时射击
func volley(frames, every int, pull float64) []shot {
	if every <= 0 {
		return nil
	}
	shots := make([]shot, 0, frames/every+1)
	for f := every; f < frames; f += every {
		shots = append(shots, shot{Frame: f, DX: pull, DY: 0})
	}
	return shots
}

func countLanded(debris []components.DebrisComponent) int {
	n := 0
	for _, d := range debris {
		if d.Landed {
			n++
		}
	}
	return n
}
