package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bomberman-classic/internal/hud"
	"bomberman-classic/pkg/core"
)

// cellWidth 每个格子占两列，终端字符大约是高宽比 2:1
const cellWidth = 2

// 棋盘配色
var (
	styleWall      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleBrick     = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	styleFire      = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	styleEnemy     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	stylePlayer    = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	styleStatus    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	styleBombFrame = [core.BombFrames]lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
	bombGlyphs = [core.BombFrames]string{"()", "{}", "<>"}

	styleOverlayBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Align(lipgloss.Center)
	overlayStyles = map[hud.Style]lipgloss.Style{
		hud.StyleNormal: lipgloss.NewStyle(),
		hud.StyleTitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		hud.StyleGood:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		hud.StyleBad:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		hud.StyleHint:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	}
)

// glyph 精灵在终端中的两字符外观
func glyph(sp core.Sprite) string {
	switch sp.Kind {
	case core.KindWall:
		return styleWall.Render("██")
	case core.KindBreakableWall:
		return styleBrick.Render("▓▓")
	case core.KindBomb:
		f := min(max(sp.Frame, 0), core.BombFrames-1)
		return styleBombFrame[f].Render(bombGlyphs[f])
	case core.KindExplosion:
		return styleFire.Render("**")
	case core.KindEnemy:
		return styleEnemy.Render("&&")
	case core.KindPlayer:
		return stylePlayer.Render("@@")
	}
	return strings.Repeat(" ", cellWidth)
}

// Board 按格子绘制棋盘，同一格只显示层级最高的精灵
func Board(snap core.Snapshot) string {
	var cells [core.GridSize][core.GridSize]string

	// 快照已按 Z、ID 排序，后写入的覆盖先写入的
	for _, sp := range snap.Sprites {
		if !core.InBounds(sp.Grid) {
			continue
		}
		cells[sp.Grid.Y][sp.Grid.X] = glyph(sp)
	}

	var sb strings.Builder
	for y := range core.GridSize {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := range core.GridSize {
			if cells[y][x] == "" {
				sb.WriteString(strings.Repeat(" ", cellWidth))
				continue
			}
			sb.WriteString(cells[y][x])
		}
	}
	return sb.String()
}

// Overlay 欢迎、暂停和结算界面的文字框，正常游戏中返回空串
func Overlay(snap core.Snapshot, keys hud.Keys) string {
	lines := hud.Overlay(snap, keys)
	if len(lines) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(lines))
	for _, l := range lines {
		rendered = append(rendered, overlayStyles[l.Style].Render(l.Text))
	}
	return styleOverlayBox.Render(lipgloss.JoinVertical(lipgloss.Center, rendered...))
}

// Render 完整画面：棋盘（或叠加框）加状态栏
func Render(snap core.Snapshot, keys hud.Keys) string {
	view := Board(snap)
	if box := Overlay(snap, keys); box != "" {
		view = lipgloss.Place(core.GridSize*cellWidth, core.GridSize, lipgloss.Center, lipgloss.Center, box)
	}
	if status := hud.Status(snap); status != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, view, styleStatus.Render(status))
	}
	return view
}
