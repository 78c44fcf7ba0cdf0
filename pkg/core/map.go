package core

// TileType 地图块类型
type TileType int

const (
	TileEmpty TileType = iota
	TileWall           // 不可破坏墙
	TileBrick          // 可破坏墙
)

func (t TileType) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TileBrick:
		return "brick"
	}
	return "unknown"
}

// mapTemplate 地图模板：W=墙壁, B=砖块, .=空地
var mapTemplate = [GridSize]string{
	"WWWWWWWWWWWWW",
	"W..B.B..B...W",
	"W.W.W.WBW.W.W",
	"W.B......B..W",
	"W.W.W.W.WBW.W",
	"WB..B.....B.W",
	"W.W.W.WBW.WBW",
	"W..B...B....W",
	"WBWBW.W.W.W.W",
	"W....B...BB.W",
	"W.W.W.W.WBW.W",
	"W...B..B....W",
	"WWWWWWWWWWWWW",
}

// Layout 返回静态地图布局，按 [y][x] 索引
func Layout() [GridSize][GridSize]TileType {
	var tiles [GridSize][GridSize]TileType
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			switch mapTemplate[y][x] {
			case 'W':
				tiles[y][x] = TileWall
			case 'B':
				tiles[y][x] = TileBrick
			default:
				tiles[y][x] = TileEmpty
			}
		}
	}
	return tiles
}

// spawnMap 按布局生成墙体实体
func (g *Game) spawnMap() {
	tiles := Layout()
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			pos := GridPos{X: x, Y: y}
			switch tiles[y][x] {
			case TileWall:
				g.store.Insert(&Entity{Kind: KindWall, Pos: pos, World: GridToWorld(pos)})
			case TileBrick:
				g.store.Insert(&Entity{Kind: KindBreakableWall, Pos: pos, World: GridToWorld(pos)})
			}
		}
	}
}

// TileAt 根据当前实体推算格子类型（已被炸毁的砖块视为空地）
func (g *Game) TileAt(p GridPos) TileType {
	if !InBounds(p) {
		return TileWall
	}
	if g.store.Any(p, KindWall) {
		return TileWall
	}
	if g.store.Any(p, KindBreakableWall) {
		return TileBrick
	}
	return TileEmpty
}
