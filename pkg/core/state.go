package core

import "time"

// GameState 顶层游戏状态
type GameState int

const (
	StateWelcome GameState = iota
	StateInGame
	// StatePaused 仅为完整性保留，暂停由 Game.paused 标记表示，不会进入该状态
	StatePaused
	StateVictory
	StateGameOver
)

// String 返回状态名
func (s GameState) String() string {
	switch s {
	case StateWelcome:
		return "welcome"
	case StateInGame:
		return "in_game"
	case StatePaused:
		return "paused"
	case StateVictory:
		return "victory"
	case StateGameOver:
		return "game_over"
	}
	return "unknown"
}

// endDelay 延迟切换（死亡或胜利后等待一段时间再切换界面）
type endDelay struct {
	remaining time.Duration
	target    GameState
}

// PendingEnd 对外暴露的延迟切换信息
type PendingEnd struct {
	Remaining time.Duration
	Target    GameState
}
