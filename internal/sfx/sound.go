// Package sfx 合成游戏音效
//
// 音效由 beep 流合成，再渲染成 16 位小端双声道 PCM，交给播放端（ebiten audio）播放。
package sfx

import "bomberman-classic/pkg/core"

// Sound 音效类型
type Sound int

const (
	SoundBombPlace Sound = iota
	SoundExplosion
	SoundEnemyDeath
	SoundPlayerDeath
	SoundVictory
	SoundGameOver
	soundCount
)

// String 返回音效名
func (s Sound) String() string {
	switch s {
	case SoundBombPlace:
		return "bomb_place"
	case SoundExplosion:
		return "explosion"
	case SoundEnemyDeath:
		return "enemy_death"
	case SoundPlayerDeath:
		return "player_death"
	case SoundVictory:
		return "victory"
	case SoundGameOver:
		return "game_over"
	}
	return "unknown"
}

// Sounds 全部音效
func Sounds() []Sound {
	all := make([]Sound, 0, soundCount)
	for s := Sound(0); s < soundCount; s++ {
		all = append(all, s)
	}
	return all
}

// Volume 每个音效的固定音量
func (s Sound) Volume() float64 {
	switch s {
	case SoundPlayerDeath:
		return 0.1
	case SoundBombPlace, SoundExplosion, SoundEnemyDeath, SoundVictory, SoundGameOver:
		return 0.2
	}
	return 0
}

// ForEvent 游戏事件对应的音效，状态切换事件没有音效
func ForEvent(kind core.EventKind) (Sound, bool) {
	switch kind {
	case core.EventBombPlaced:
		return SoundBombPlace, true
	case core.EventBombExploded:
		return SoundExplosion, true
	case core.EventEnemyKilled:
		return SoundEnemyDeath, true
	case core.EventPlayerKilled:
		return SoundPlayerDeath, true
	case core.EventVictory:
		return SoundVictory, true
	case core.EventGameOver:
		return SoundGameOver, true
	}
	return 0, false
}
