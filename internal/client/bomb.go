package client

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"bomberman-classic/pkg/core"
)

// fuseRatio 引信已燃烧的比例 0~1
func fuseRatio(sp core.Sprite) float64 {
	ratio := 1 - sp.Remaining.Seconds()/core.BombTimer.Seconds()
	return math.Max(0, math.Min(1, ratio))
}

// drawBomb 绘制炸弹，Frame 越大炸弹越膨胀
func drawBomb(screen *ebiten.Image, sp core.Sprite) {
	cx, cy := toScreen(sp.World)
	ratio := fuseRatio(sp)

	// 炸弹半径随帧变大
	radius := float32(core.BombSize/2-8) + float32(sp.Frame)*2

	// 根据时间闪烁
	elapsed := (core.BombTimer - sp.Remaining).Seconds()
	blink := math.Sin(elapsed * 6 * (1 + 3*ratio))
	alpha := uint8(200 + 55*blink)

	// 炸弹主体
	vector.DrawFilledCircle(screen, cx, cy, radius, color.RGBA{0, 0, 0, alpha}, false)
	vector.StrokeCircle(screen, cx, cy, radius, 2, color.RGBA{50, 50, 50, 255}, false)

	// 引线（根据时间变短）
	fuseLength := float32(15 * (1 - ratio))
	if fuseLength > 0 {
		fuseX := cx - radius*0.5
		fuseY := cy - radius

		vector.StrokeLine(screen, fuseX, fuseY, fuseX-fuseLength*0.5, fuseY-fuseLength,
			2, color.RGBA{139, 69, 19, 255}, false)

		// 引线火花
		if blink > 0 {
			sparkColor := color.RGBA{255, uint8(100 + 155*blink), 0, 255}
			vector.DrawFilledCircle(screen, fuseX-fuseLength*0.5, fuseY-fuseLength, 3, sparkColor, false)
		}
	}

	// 接近爆炸时的警告圈
	if ratio > 0.7 {
		warningAlpha := uint8((ratio - 0.7) / 0.3 * 100)
		warningRadius := radius + float32(10*(ratio-0.7)/0.3)
		vector.StrokeCircle(screen, cx, cy, warningRadius, 2, color.RGBA{255, 0, 0, warningAlpha}, false)
	}
}

// drawExplosion 绘制一格火焰，随寿命从黄变红并淡出
func drawExplosion(screen *ebiten.Image, sp core.Sprite) {
	ratio := 1 - sp.Remaining.Seconds()/core.ExplosionDuration.Seconds()
	ratio = math.Max(0, math.Min(1, ratio))

	alpha := uint8(255 * (1 - ratio))
	cx, cy := toScreen(sp.World)

	// 从中心扩散
	scale := float32(0.3 + 0.7*math.Min(ratio*2, 1.0))
	size := float32(core.FireSize) * scale
	px, py := cellOrigin(cx, cy, size)

	var fire color.RGBA
	switch {
	case ratio < 0.3:
		fire = color.RGBA{255, 255, 0, alpha}
	case ratio < 0.6:
		fire = color.RGBA{255, 165, 0, alpha}
	default:
		fire = color.RGBA{255, 0, 0, alpha}
	}
	vector.DrawFilledRect(screen, px, py, size, size, fire, false)

	// 白色中心
	if ratio < 0.5 {
		innerAlpha := uint8(200 * (1 - ratio*2))
		inner := size * 0.6
		ix, iy := cellOrigin(cx, cy, inner)
		vector.DrawFilledRect(screen, ix, iy, inner, inner, color.RGBA{255, 255, 255, innerAlpha}, false)
	}

	vector.StrokeRect(screen, px, py, size, size, 2, color.RGBA{255, 100, 0, alpha}, false)
}
