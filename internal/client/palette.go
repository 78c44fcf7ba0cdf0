package client

import (
	"image/color"

	"bomberman-classic/pkg/core"
)

// ActorLook 角色外观（渲染相关）
type ActorLook struct {
	Name         string
	BodyColor    color.RGBA
	OutlineColor color.RGBA
	HandColor    color.RGBA
	ShoeColor    color.RGBA
}

// LookOf 获取玩家或敌人的外观，其它实体返回 false
func LookOf(kind core.Kind) (ActorLook, bool) {
	switch kind {
	case core.KindPlayer:
		return ActorLook{
			Name:         "经典白",
			BodyColor:    color.RGBA{255, 255, 255, 255},
			OutlineColor: color.RGBA{0, 0, 0, 255},
			HandColor:    color.RGBA{255, 150, 150, 255},
			ShoeColor:    color.RGBA{50, 50, 50, 255},
		}, true
	case core.KindEnemy:
		return ActorLook{
			Name:         "烈焰红",
			BodyColor:    color.RGBA{255, 80, 80, 255},
			OutlineColor: color.RGBA{150, 0, 0, 255},
			HandColor:    color.RGBA{255, 200, 100, 255},
			ShoeColor:    color.RGBA{100, 0, 0, 255},
		}, true
	}
	return ActorLook{}, false
}

// 地图配色
var (
	colorGrass      = color.RGBA{34, 139, 34, 255}  // 草地绿
	colorWall       = color.RGBA{80, 80, 80, 255}   // 灰色墙
	colorWallCross  = color.RGBA{60, 60, 60, 255}   // 墙壁十字纹理
	colorBrick      = color.RGBA{205, 133, 63, 255} // 砖块棕色
	colorBrickLine  = color.RGBA{180, 118, 53, 255}
	colorTileBorder = color.RGBA{0, 0, 0, 100}
	colorShade      = color.RGBA{0, 0, 0, 160} // 叠加界面的遮罩
)
