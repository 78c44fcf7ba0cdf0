package client

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"bomberman-classic/internal/hud"
	"bomberman-classic/pkg/core"
)

var overlayFont = text.NewGoXFace(basicfont.Face7x13)

const lineHeight = 16

// styleColor 叠加文字的颜色和缩放
func styleColor(s hud.Style) (color.Color, float64) {
	switch s {
	case hud.StyleTitle:
		return color.RGBA{255, 60, 60, 255}, 4
	case hud.StyleGood:
		return color.RGBA{128, 255, 128, 255}, 2
	case hud.StyleBad:
		return color.RGBA{255, 128, 128, 255}, 2
	case hud.StyleHint:
		return color.RGBA{255, 220, 120, 255}, 2
	}
	return color.White, 2
}

// drawOverlay 绘制欢迎、暂停和结算界面
func drawOverlay(screen *ebiten.Image, snap core.Snapshot, keys hud.Keys) {
	lines := hud.Overlay(snap, keys)
	if len(lines) == 0 {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, core.WindowWidth, core.WindowHeight, colorShade, false)

	total := 0.0
	for _, l := range lines {
		_, scale := styleColor(l.Style)
		total += lineHeight * scale
	}

	y := (core.WindowHeight - total) / 2
	for _, l := range lines {
		clr, scale := styleColor(l.Style)
		drawCentered(screen, core.WindowWidth/2, y, scale, l.Text, clr)
		y += lineHeight * scale
	}
}

// drawStatus 绘制顶部状态栏
func drawStatus(screen *ebiten.Image, snap core.Snapshot) {
	line := hud.Status(snap)
	if line == "" {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, core.WindowWidth, lineHeight+6, color.RGBA{0, 0, 0, 140}, false)
	drawText(screen, 8, 4, line, color.White)
}

func drawCentered(screen *ebiten.Image, cx, y, scale float64, msg string, clr color.Color) {
	options := &text.DrawOptions{}
	options.GeoM.Scale(scale, scale)
	options.GeoM.Translate(cx, y)
	options.ColorScale.ScaleWithColor(clr)
	options.PrimaryAlign = text.AlignCenter
	text.Draw(screen, msg, overlayFont, options)
}

func drawText(screen *ebiten.Image, x, y int, msg string, clr color.Color) {
	options := &text.DrawOptions{}
	options.GeoM.Translate(float64(x), float64(y))
	options.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, msg, overlayFont, options)
}
