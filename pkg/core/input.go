package core

import "strings"

// Action 离散输入（按下的那一帧触发一次）
type Action uint8

const (
	ActionConfirm Action = 1 << iota
	ActionPlaceBomb
	ActionPause // 切换暂停
	ActionResume
	ActionCancel // 暂停中返回欢迎界面
)

var actionNames = []struct {
	action Action
	name   string
}{
	{ActionConfirm, "confirm"},
	{ActionPlaceBomb, "bomb"},
	{ActionPause, "pause"},
	{ActionResume, "resume"},
	{ActionCancel, "cancel"},
}

// String 返回动作名
func (a Action) String() string {
	for _, n := range actionNames {
		if n.action == a {
			return n.name
		}
	}
	return "unknown"
}

// ParseAction 根据名字解析动作
func ParseAction(name string) (Action, bool) {
	for _, n := range actionNames {
		if n.name == name {
			return n.action, true
		}
	}
	return 0, false
}

// ActionSet 一帧内触发的离散动作集合
type ActionSet uint8

// NewActionSet 创建动作集合
func NewActionSet(actions ...Action) ActionSet {
	var s ActionSet
	for _, a := range actions {
		s = s.With(a)
	}
	return s
}

// With 返回加入 a 之后的集合
func (s ActionSet) With(a Action) ActionSet {
	return s | ActionSet(a)
}

// Union 两个集合的并集
func (s ActionSet) Union(o ActionSet) ActionSet {
	return s | o
}

// Has 是否包含动作 a
func (s ActionSet) Has(a Action) bool {
	return s&ActionSet(a) != 0
}

// Empty 集合是否为空
func (s ActionSet) Empty() bool {
	return s == 0
}

func (s ActionSet) String() string {
	var names []string
	for _, n := range actionNames {
		if s.Has(n.action) {
			names = append(names, n.name)
		}
	}
	return "[" + strings.Join(names, " ") + "]"
}

// Input 一个 tick 的输入：方向键为持续按住状态，Actions 为边沿事件
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	Actions ActionSet
}

// Direction 解析移动方向
// 垂直方向优先于水平方向，上优先于下，左优先于右；同一 tick 最多一个轴有分量
func (in Input) Direction() (GridPos, bool) {
	switch {
	case in.Up:
		return DirUp, true
	case in.Down:
		return DirDown, true
	case in.Left:
		return DirLeft, true
	case in.Right:
		return DirRight, true
	}
	return GridPos{}, false
}
