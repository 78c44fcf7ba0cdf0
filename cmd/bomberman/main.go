// bomberman 经典单人炸弹人
//
// Usage:
//
//	bomberman play            - 打开游戏窗口（默认命令）
//	bomberman term            - 在终端中游玩
//	bomberman sim             - 无界面运行，机器人控制玩家
//	bomberman map             - 打印静态地图
//
// Global flags:
//
//	--config <path>      - 配置文件（.yaml 或 .toml）
//	--seed <value>       - 随机种子（0 = 按时间生成）
//	--log-level <level>  - 覆盖配置中的日志级别
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"bomberman-classic/internal/config"
	"bomberman-classic/internal/logging"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     uint64
	flagLogLevel string

	// 由 PersistentPreRunE 填充
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bomberman",
	Short: "Bomberman - classic single player bomb game",
	Long: `Bomberman on a fixed 13x13 arena: blow up the three enemies
before they catch you.

Available commands:
  play     - Open the game window (default)
  term     - Play inside the terminal
  sim      - Headless run driven by the bot
  map      - Print the static map

Examples:
  bomberman
  bomberman play --autopilot
  bomberman term --seed 42
  bomberman sim --rounds 20 --preset reckless
  bomberman --config ./configs/bomberman.example.toml`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (.yaml or .toml)")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override: debug, info, warn, error")

	rootCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the bot control the player")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(mapCmd)
}

// setup 加载配置、应用全局参数并创建日志器
func setup(cmd *cobra.Command, args []string) error {
	loaded, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		loaded.Log.Level = flagLogLevel
	}
	if cmd.Flags().Changed("seed") {
		loaded.Seed = flagSeed
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid config from %s: %w", source, err)
	}
	cfg = loaded

	logger, err = logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "source", source)
	return nil
}

// seed 配置中的种子，0 表示按当前时间生成
func seed() uint64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return uint64(time.Now().UnixNano())
}
