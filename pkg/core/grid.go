package core

import (
	"fmt"
	"math"
)

// GridPos 格子坐标
// x 轴向右，y 轴向下，(0,0) 为左上角
type GridPos struct {
	X, Y int
}

// Add 返回两个格子坐标之和
func (p GridPos) Add(o GridPos) GridPos {
	return GridPos{X: p.X + o.X, Y: p.Y + o.Y}
}

// Scale 返回按 n 缩放后的偏移
func (p GridPos) Scale(n int) GridPos {
	return GridPos{X: p.X * n, Y: p.Y * n}
}

func (p GridPos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// InBounds 检查格子是否在地图范围内
func InBounds(p GridPos) bool {
	return p.X >= 0 && p.X < GridSize && p.Y >= 0 && p.Y < GridSize
}

// Vec2 世界坐标（原点在地图中心，y 轴向上）
type Vec2 struct {
	X, Y float64
}

// Add 向量相加
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Mul 向量数乘
func (v Vec2) Mul(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// gridOffset 格子 0 的中心到世界原点的距离（取负）
const gridOffset = -(GridSize*CellSize)/2 + CellSize/2

// GridToWorld 格子坐标转世界坐标（格子中心）
func GridToWorld(p GridPos) Vec2 {
	return Vec2{
		X: float64(p.X)*CellSize + gridOffset,
		Y: -(float64(p.Y)*CellSize + gridOffset), // Y 轴反转
	}
}

// WorldToGrid 世界坐标转格子坐标，四舍五入到最近的格子
func WorldToGrid(v Vec2) GridPos {
	return GridPos{
		X: int(math.Round((v.X - gridOffset) / CellSize)),
		Y: int(math.Round((-v.Y - gridOffset) / CellSize)),
	}
}

// 四个基本方向（格子坐标系）
var (
	DirUp    = GridPos{X: 0, Y: -1}
	DirDown  = GridPos{X: 0, Y: 1}
	DirLeft  = GridPos{X: -1, Y: 0}
	DirRight = GridPos{X: 1, Y: 0}
)

// Cardinals 敌人随机选择方向时使用的候选顺序
var Cardinals = [4]GridPos{DirDown, DirUp, DirRight, DirLeft}
