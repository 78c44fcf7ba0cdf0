package client

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"bomberman-classic/pkg/core"
)

// drawActor 绘制玩家或敌人，位置和朝向取自插值器
func drawActor(screen *ebiten.Image, sp core.Sprite, tr *actorTrack) {
	look, ok := LookOf(sp.Kind)
	if !ok {
		return
	}

	pos, facing, animFrame := sp.World, core.DirDown, 0
	if tr != nil {
		pos, facing, animFrame = tr.pos, tr.facing, tr.animFrame
	}

	size := float32(core.PlayerSize)
	if sp.Kind == core.KindEnemy {
		size = core.EnemySize
	}
	cx, cy := toScreen(pos)
	px, py := cellOrigin(cx, cy, size)

	// 身体（略小于显示尺寸）
	bodyWidth := size * 0.7
	bodyHeight := size * 0.7
	drawX := px + (size-bodyWidth)/2
	drawY := py + (size-bodyHeight)/2

	if sp.Kind == core.KindEnemy {
		// 敌人是圆形
		vector.DrawFilledCircle(screen, cx, cy, bodyWidth/2, look.BodyColor, false)
		vector.StrokeCircle(screen, cx, cy, bodyWidth/2, 2, look.OutlineColor, false)
	} else {
		vector.DrawFilledRect(screen, drawX, drawY, bodyWidth, bodyHeight, look.BodyColor, false)
		vector.StrokeRect(screen, drawX, drawY, bodyWidth, bodyHeight, 2, look.OutlineColor, false)
	}

	// 手和脚随动画帧摆动
	swing := float32(0)
	if animFrame == 1 {
		swing = 2
	}

	handSize := bodyWidth * 0.2
	vector.DrawFilledCircle(screen, drawX-swing-2, drawY+bodyHeight*0.6, handSize, look.HandColor, false)
	vector.DrawFilledCircle(screen, drawX+bodyWidth+swing+2, drawY+bodyHeight*0.6, handSize, look.HandColor, false)

	footSize := bodyWidth * 0.3
	vector.DrawFilledRect(screen, drawX+bodyWidth*0.2-swing, drawY+bodyHeight, footSize, footSize*0.6, look.ShoeColor, false)
	vector.DrawFilledRect(screen, drawX+bodyWidth*0.6+swing, drawY+bodyHeight, footSize, footSize*0.6, look.ShoeColor, false)

	drawEyes(screen, drawX, drawY, bodyWidth, bodyHeight, facing)
}

// drawEyes 根据朝向绘制眼睛
func drawEyes(screen *ebiten.Image, x, y, w, h float32, facing core.GridPos) {
	eyeSize := w * 0.15
	eyeY := y + h*0.3
	spacing := w * 0.2

	var lx, ly, rx, ry float32
	switch facing {
	case core.DirUp:
		lx, ly = x+w*0.3, eyeY-2
		rx, ry = x+w*0.7, eyeY-2
	case core.DirLeft:
		lx, ly = x+w*0.3-spacing/2, eyeY
		rx, ry = x+w*0.5-spacing/2, eyeY
	case core.DirRight:
		lx, ly = x+w*0.5+spacing/2, eyeY
		rx, ry = x+w*0.7+spacing/2, eyeY
	default:
		lx, ly = x+w*0.3, eyeY+2
		rx, ry = x+w*0.7, eyeY+2
	}

	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{0, 0, 0, 255}
	vector.DrawFilledCircle(screen, lx, ly, eyeSize, white, false)
	vector.DrawFilledCircle(screen, rx, ry, eyeSize, white, false)
	vector.DrawFilledCircle(screen, lx, ly, eyeSize*0.5, black, false)
	vector.DrawFilledCircle(screen, rx, ry, eyeSize*0.5, black, false)
}
