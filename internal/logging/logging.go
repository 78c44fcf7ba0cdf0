// Package logging 统一创建带前缀和时间戳的日志器
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"bomberman-classic/internal/config"
)

// Prefix 日志前缀
const Prefix = "bomberman"

// New 根据配置创建日志器，w 为 nil 时写到 stderr
func New(cfg config.LogConfig, w io.Writer) (*log.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           level,
	}), nil
}

// Discard 不输出任何内容的日志器
func Discard() *log.Logger {
	return log.New(io.Discard)
}
