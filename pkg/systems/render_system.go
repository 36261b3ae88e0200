package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gonewx/bowshot/pkg/components"
	"github.com/gonewx/bowshot/pkg/config"
	"github.com/gonewx/bowshot/pkg/game"
	"github.com/gonewx/bowshot/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// 渲染配色
var (
	backgroundColor   = color.RGBA{R: 0xf4, G: 0xf1, B: 0xe8, A: 0xff}
	bowColor          = color.RGBA{R: 0x79, G: 0x55, B: 0x48, A: 0xff}
	stringColor       = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	drawnStringColor  = color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}
	arrowColor        = color.RGBA{R: 0x60, G: 0x7d, B: 0x8b, A: 0xff}
	targetColor       = color.RGBA{R: 0x21, G: 0x96, B: 0xf3, A: 0xff}
	targetRimColor    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	trajectoryColor   = color.RGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0x66}
	hudColor          = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	gameOverColor     = color.RGBA{R: 0xd3, G: 0x2f, B: 0x2f, A: 0xff}
	buttonColor       = color.RGBA{R: 0x37, G: 0x47, B: 0x4f, A: 0xff}
	buttonLabelColor  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	wallHealthyColor  = color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff}
	wallDamagedColor  = color.RGBA{R: 0xff, G: 0xeb, B: 0x3b, A: 0xff}
	wallCriticalColor = color.RGBA{R: 0xf4, G: 0x43, B: 0x36, A: 0xff}
)

const (
	arrowLength      = 30
	bowStrokeWidth   = 8
	bowArcSegments   = 24
	trajectoryDashes = 2 // 每隔几个轨迹点画一段虚线
	restartButtonW   = 140
	restartButtonH   = 36
	gameOverFadeIn   = 30 // 结束遮罩淡入帧数
	gameOverVeilMax  = 0.45
)

// RenderSystem 将帧快照绘制到屏幕
//
// 只读取 game.Snapshot，不修改任何游戏状态。
type RenderSystem struct {
	cfg  *config.GameConfig
	face text.Face

	explosionColor color.RGBA

	// gameOverFrames 游戏结束后已绘制的帧数，用于遮罩淡入
	gameOverFrames int
}

// NewRenderSystem 创建渲染系统
//
// 参数:
//   - cfg: 游戏配置（用于弹道预览与颜色）
func NewRenderSystem(cfg *config.GameConfig) *RenderSystem {
	return &RenderSystem{
		cfg:            cfg,
		face:           text.NewGoXFace(basicfont.Face7x13),
		explosionColor: cfg.ExplosionColor(),
	}
}

// RestartButtonRect 返回游戏结束时“重新开始”按钮的区域
func RestartButtonRect(canvas config.CanvasConfig) config.Rect {
	return config.Rect{
		X:      float64(canvas.Width)/2 - restartButtonW/2,
		Y:      float64(canvas.Height)/2 + 40,
		Width:  restartButtonW,
		Height: restartButtonH,
	}
}

// Draw 绘制一帧
//
// 参数:
//   - screen: 目标图像
//   - snap: 本帧快照
//   - bestScore: 历史最高分
func (rs *RenderSystem) Draw(screen *ebiten.Image, snap game.Snapshot, bestScore int) {
	screen.Fill(backgroundColor)

	rs.drawTrajectory(screen, snap)
	rs.drawWall(screen, snap)
	rs.drawBow(screen, snap)
	rs.drawArrow(screen, snap)
	rs.drawTargets(screen, snap)
	rs.drawExplosions(screen, snap)
	rs.drawDebris(screen, snap)
	rs.drawHUD(screen, snap, bestScore)

	if snap.GameOver {
		rs.gameOverFrames++
		rs.drawGameOver(screen, snap)
	} else {
		rs.gameOverFrames = 0
	}
}

func (rs *RenderSystem) drawTrajectory(screen *ebiten.Image, snap game.Snapshot) {
	if !snap.Aim.Aiming {
		return
	}

	points := PredictTrajectory(rs.cfg, snap.Aim.X, snap.Aim.Y)
	n := float64(len(points))
	for i := 0; i+1 < len(points); i += trajectoryDashes {
		a, b := points[i], points[i+1]
		// 越远越淡
		fade := 1 - utils.EaseInQuad(float64(i)/n)
		clr := utils.WithAlpha(trajectoryColor, fade)
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, clr, true)
	}
}

func (rs *RenderSystem) drawWall(screen *ebiten.Image, snap game.Snapshot) {
	var clr color.RGBA
	switch snap.WallState {
	case components.WallHealthy:
		clr = wallHealthyColor
	case components.WallDamaged:
		clr = wallDamagedColor
	default:
		clr = wallCriticalColor
	}

	w := snap.Wall
	vector.DrawFilledRect(screen, float32(w.X), float32(w.Y), float32(w.Width), float32(w.Height), clr, false)
}

// drawBow 绘制朝左的弓：左半圆弓身 + 竖直弓弦
func (rs *RenderSystem) drawBow(screen *ebiten.Image, snap game.Snapshot) {
	bx, by, r := snap.Bow.X, snap.Bow.Y, snap.BowRadius

	// 弓身：从正上方逆时针经左侧到正下方
	for i := 0; i < bowArcSegments; i++ {
		a0 := math.Pi*1.5 - math.Pi*float64(i)/bowArcSegments
		a1 := math.Pi*1.5 - math.Pi*float64(i+1)/bowArcSegments
		vector.StrokeLine(screen,
			float32(bx+r*math.Cos(a0)), float32(by+r*math.Sin(a0)),
			float32(bx+r*math.Cos(a1)), float32(by+r*math.Sin(a1)),
			bowStrokeWidth, bowColor, true)
	}

	top, bottom := float32(by-r), float32(by+r)
	vector.StrokeLine(screen, float32(bx), top, float32(bx), bottom, 2, stringColor, true)

	if snap.Aim.Aiming {
		ax, ay := float32(snap.Aim.X), float32(snap.Aim.Y)
		vector.StrokeLine(screen, float32(bx), top, ax, ay, 2, drawnStringColor, true)
		vector.StrokeLine(screen, ax, ay, float32(bx), bottom, 2, drawnStringColor, true)
	}
}

func (rs *RenderSystem) drawArrow(screen *ebiten.Image, snap game.Snapshot) {
	if p := snap.Projectile; p != nil {
		angle := math.Atan2(p.VY, p.VX)
		vector.StrokeLine(screen,
			float32(p.X), float32(p.Y),
			float32(p.X+arrowLength*math.Cos(angle)), float32(p.Y+arrowLength*math.Sin(angle)),
			4, arrowColor, true)
		return
	}

	// 拉弓时显示搭在弦上的箭
	if snap.Aim.Aiming {
		vector.StrokeLine(screen,
			float32(snap.Bow.X), float32(snap.Bow.Y),
			float32(snap.Aim.X), float32(snap.Aim.Y),
			4, arrowColor, true)
	}
}

func (rs *RenderSystem) drawTargets(screen *ebiten.Image, snap game.Snapshot) {
	for _, t := range snap.Targets {
		if !t.Alive {
			continue
		}
		vector.DrawFilledCircle(screen, float32(t.X), float32(t.Y), float32(t.Radius), targetColor, true)
		vector.StrokeCircle(screen, float32(t.X), float32(t.Y), float32(t.Radius), 4, targetRimColor, true)
	}
}

func (rs *RenderSystem) drawExplosions(screen *ebiten.Image, snap game.Snapshot) {
	for _, exp := range snap.Explosions {
		for _, p := range exp.Particles {
			if p.Alpha <= 0 {
				continue
			}
			clr := utils.WithAlpha(rs.explosionColor, p.Alpha)
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), clr, true)
		}
	}
}

func (rs *RenderSystem) drawDebris(screen *ebiten.Image, snap game.Snapshot) {
	for _, d := range snap.Debris {
		vector.DrawFilledRect(screen, float32(d.X), float32(d.Y), float32(d.Width), float32(d.Height), d.Color, false)
	}
}

func (rs *RenderSystem) drawHUD(screen *ebiten.Image, snap game.Snapshot, bestScore int) {
	rs.drawText(screen, fmt.Sprintf("Wall: %d", snap.Wall.Health), 20, 20, hudColor, text.AlignStart)
	rs.drawText(screen, fmt.Sprintf("Score: %d", snap.Score), 20, 40, hudColor, text.AlignStart)
	rs.drawText(screen, fmt.Sprintf("Best: %d", bestScore), 20, 60, hudColor, text.AlignStart)
}

func (rs *RenderSystem) drawGameOver(screen *ebiten.Image, snap game.Snapshot) {
	cx := float64(snap.Canvas.Width) / 2
	cy := float64(snap.Canvas.Height) / 2

	progress := math.Min(float64(rs.gameOverFrames)/gameOverFadeIn, 1)
	veil := utils.WithAlpha(color.RGBA{A: 0xff}, gameOverVeilMax*utils.EaseOutCubic(progress))
	vector.DrawFilledRect(screen, 0, 0, float32(snap.Canvas.Width), float32(snap.Canvas.Height), veil, false)

	rs.drawText(screen, "GAME OVER", cx, cy-10, gameOverColor, text.AlignCenter)
	rs.drawText(screen, fmt.Sprintf("Final score: %d", snap.Score), cx, cy+12, hudColor, text.AlignCenter)

	btn := RestartButtonRect(snap.Canvas)
	vector.DrawFilledRect(screen, float32(btn.X), float32(btn.Y), float32(btn.Width), float32(btn.Height), buttonColor, false)
	rs.drawText(screen, "Restart (R)", btn.X+btn.Width/2, btn.Y+btn.Height/2-6, buttonLabelColor, text.AlignCenter)
}

func (rs *RenderSystem) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(screen, s, rs.face, op)
}
