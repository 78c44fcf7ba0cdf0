package core

// EventKind 事件类型，供音效等外部协作者使用
type EventKind int

const (
	EventBombPlaced EventKind = iota
	EventBombExploded
	EventEnemyKilled
	EventPlayerKilled
	EventVictory
	EventGameOver
	EventStateChanged
)

// String 返回事件名
func (k EventKind) String() string {
	switch k {
	case EventBombPlaced:
		return "bomb_placed"
	case EventBombExploded:
		return "bomb_exploded"
	case EventEnemyKilled:
		return "enemy_killed"
	case EventPlayerKilled:
		return "player_killed"
	case EventVictory:
		return "victory"
	case EventGameOver:
		return "game_over"
	case EventStateChanged:
		return "state_changed"
	}
	return "unknown"
}

// Event 一次 tick 内发生的离散事件
type Event struct {
	Kind EventKind
	Pos  GridPos // 发生位置（状态事件为零值）

	// 仅 EventStateChanged 使用
	From GameState
	To   GameState
}

// StepResult 一次 Step 的输出
type StepResult struct {
	Events []Event
}

// Has 本次 tick 是否发生过指定类型的事件
func (r StepResult) Has(kind EventKind) bool {
	return r.Count(kind) > 0
}

// Count 统计指定类型事件的数量
func (r StepResult) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
	g.logger.Debug("event", "kind", e.Kind, "pos", e.Pos)
}
