package ai

import "time"

// Config 机器人行为参数
type Config struct {
	// ThinkInterval 思考间隔，两次思考之间沿用上一次的输入
	ThinkInterval time.Duration

	// WanderSteps 游荡时保持同一方向的思考次数
	WanderSteps int

	// BombChance 每次思考时放置炸弹的概率 (0.0-1.0)
	BombChance float64

	// MistakeRate 随机失误率 (0.0-1.0)
	MistakeRate float64

	// AutoConfirm 在欢迎和结算界面自动确认
	AutoConfirm bool
}

// ConfigCalm 预设配置：很少放炸弹，几乎不失误
var ConfigCalm = Config{
	ThinkInterval: 150 * time.Millisecond,
	WanderSteps:   4,
	BombChance:    0.05,
	MistakeRate:   0.0,
	AutoConfirm:   true,
}

// ConfigReckless 预设配置：频繁放炸弹，偶尔失误
var ConfigReckless = Config{
	ThinkInterval: 100 * time.Millisecond,
	WanderSteps:   3,
	BombChance:    0.25,
	MistakeRate:   0.05,
	AutoConfirm:   true,
}

// Preset 按名称返回预设配置
func Preset(name string) (Config, bool) {
	switch name {
	case "calm":
		return ConfigCalm, true
	case "reckless":
		return ConfigReckless, true
	}
	return Config{}, false
}
