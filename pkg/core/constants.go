package core

import "time"

// 窗口与网格配置
const (
	WindowWidth  = 780
	WindowHeight = 780
	GridSize     = 13   // 网格边长（格子数）
	CellSize     = 60.0 // 每个格子的世界坐标宽度
)

// 实体显示尺寸（世界坐标），供渲染层参考
const (
	PlayerSize = 50.0
	WallSize   = 60.0
	BombSize   = 50.0
	EnemySize  = 50.0
	FireSize   = 55.0
)

// 炸弹配置
const (
	BombTimer         = 3 * time.Second
	ExplosionDuration = 500 * time.Millisecond
	ExplosionRange    = 2 // 爆炸范围（格子数）
)

// 移动配置
const (
	PlayerSpeed       = 3.0 // 格子/秒（乘以 CellSize 换算为世界坐标）
	EnemyMoveInterval = 500 * time.Millisecond
)

// EndDelay 玩家死亡或敌人全灭后，切换到结算界面前的延迟
const EndDelay = time.Second

// 出生点
var (
	PlayerStart = GridPos{X: 1, Y: 1}
	EnemyStarts = [...]GridPos{
		{X: 11, Y: 1},
		{X: 11, Y: 11},
		{X: 1, Y: 11},
	}
)

// 精灵帧索引（对应精灵图集）
const (
	FramePlayer        = 43
	FrameEnemy         = 0
	FrameWall          = 5
	FrameBreakableWall = 3
	FrameFire          = 8
	BombFrames         = 3 // 炸弹动画帧数，按引信进度切换
)

// 绘制层级
const (
	ZWall      = 0
	ZBomb      = 5
	ZExplosion = 8
	ZActor     = 10
)
