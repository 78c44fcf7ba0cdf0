package core

// EntityID 实体唯一标识，由 Store 分配，不会复用
type EntityID uint64

// Kind 实体类型
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindWall
	KindBreakableWall
	KindBomb
	KindExplosion
)

// String 返回实体类型的字符串表示
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindWall:
		return "wall"
	case KindBreakableWall:
		return "breakable_wall"
	case KindBomb:
		return "bomb"
	case KindExplosion:
		return "explosion"
	}
	return "unknown"
}

// Entity 游戏对象，按 Kind 使用不同字段
type Entity struct {
	ID    EntityID
	Kind  Kind
	Pos   GridPos // 所在格子
	World Vec2    // 世界坐标（玩家连续移动，其余为格子中心）

	Speed float64 // 玩家移动速度
	Dir   GridPos // 敌人移动方向
	Timer *Timer  // 敌人移动计时 / 炸弹引信 / 爆炸持续时间
	Range int     // 炸弹爆炸范围
}

// blocksPlayer 玩家只会被墙体阻挡，炸弹不阻挡玩家
var blocksPlayer = []Kind{KindWall, KindBreakableWall}

// blocksEnemy 敌人会被墙体和炸弹阻挡
var blocksEnemy = []Kind{KindWall, KindBreakableWall, KindBomb}
