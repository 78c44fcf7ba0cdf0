package core

import "time"

// TimerMode 计时器模式
type TimerMode int

const (
	TimerOnce      TimerMode = iota // 单次：到点后保持完成状态
	TimerRepeating                  // 重复：到点后从头计时
)

// Timer 单调倒计时，只随 Tick 传入的时长推进，与墙钟无关
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
	mode     TimerMode
	finished bool
}

// NewTimer 创建计时器
func NewTimer(d time.Duration, mode TimerMode) *Timer {
	return &Timer{duration: d, mode: mode}
}

// Tick 推进计时器，返回本次推进中到点的次数
func (t *Timer) Tick(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	if t.duration <= 0 {
		if t.mode == TimerOnce && t.finished {
			return 0
		}
		t.finished = true
		return 1
	}

	switch t.mode {
	case TimerRepeating:
		t.elapsed += d
		n := int(t.elapsed / t.duration)
		t.elapsed %= t.duration
		t.finished = n > 0
		return n
	default:
		if t.finished {
			return 0
		}
		t.elapsed += d
		if t.elapsed >= t.duration {
			t.elapsed = t.duration
			t.finished = true
			return 1
		}
		return 0
	}
}

// Finished 单次计时器是否已到点；重复计时器表示最近一次 Tick 是否到点
func (t *Timer) Finished() bool {
	return t.finished
}

// Remaining 距离下一次到点的剩余时长
func (t *Timer) Remaining() time.Duration {
	return t.duration - t.elapsed
}

// Elapsed 当前周期已经过的时长
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Duration 计时周期
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Progress 当前周期的进度，范围 [0,1]
func (t *Timer) Progress() float64 {
	if t.duration <= 0 {
		return 1
	}
	return float64(t.elapsed) / float64(t.duration)
}
