package client

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"bomberman-classic/pkg/core"
)

// toScreen 世界坐标转屏幕坐标（世界原点在窗口中心，Y 轴向上）
func toScreen(v core.Vec2) (float32, float32) {
	return float32(v.X + core.WindowWidth/2), float32(core.WindowHeight/2 - v.Y)
}

// cellOrigin 以 (cx, cy) 为中心、边长 size 的方块左上角
func cellOrigin(cx, cy, size float32) (float32, float32) {
	return cx - size/2, cy - size/2
}

// drawGround 绘制草地背景
func drawGround(screen *ebiten.Image) {
	screen.Fill(colorGrass)
	for y := 0; y < core.GridSize; y++ {
		for x := 0; x < core.GridSize; x++ {
			px := float32(x) * core.CellSize
			py := float32(y) * core.CellSize
			vector.StrokeRect(screen, px, py, core.CellSize, core.CellSize, 1, colorTileBorder, false)
		}
	}
}

// drawWall 绘制不可破坏墙
func drawWall(screen *ebiten.Image, sp core.Sprite) {
	cx, cy := toScreen(sp.World)
	px, py := cellOrigin(cx, cy, core.WallSize)
	size := float32(core.WallSize)

	vector.DrawFilledRect(screen, px, py, size, size, colorWall, false)
	vector.StrokeRect(screen, px, py, size, size, 1, colorTileBorder, false)

	// 十字纹理
	vector.StrokeLine(screen, px+size/2, py+5, px+size/2, py+size-5, 2, colorWallCross, false)
	vector.StrokeLine(screen, px+5, py+size/2, px+size-5, py+size/2, 2, colorWallCross, false)
}

// drawBrick 绘制可破坏墙
func drawBrick(screen *ebiten.Image, sp core.Sprite) {
	cx, cy := toScreen(sp.World)
	px, py := cellOrigin(cx, cy, core.WallSize)
	size := float32(core.WallSize)

	vector.DrawFilledRect(screen, px, py, size, size, colorBrick, false)
	vector.StrokeRect(screen, px, py, size, size, 1, colorTileBorder, false)

	// 横线模拟砖块纹理，隔行错开竖缝
	for i := 0; i < 4; i++ {
		lineY := py + float32(i*15+7)
		vector.StrokeLine(screen, px+2, lineY, px+size-2, lineY, 1, colorBrickLine, false)
		seam := px + size/2
		if i%2 == 1 {
			seam = px + size/4
		}
		vector.StrokeLine(screen, seam, lineY, seam, lineY+15, 1, colorBrickLine, false)
	}
}
