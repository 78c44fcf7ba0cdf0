package main

import (
	"github.com/spf13/cobra"

	"bomberman-classic/internal/client"
)

var flagAutopilot bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the game window.

Controls (configurable):
  WASD / Arrow Keys  - Move
  Space              - Place bomb
  Enter              - Start / play again
  P                  - Pause
  R                  - Resume
  Esc                - Back to menu (while paused), quit (on the menu)`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the bot control the player")
}

func runPlay(cmd *cobra.Command, args []string) error {
	s := seed()
	logger.Info("starting window", "seed", s, "tps", cfg.TPS)

	game, err := client.NewGame(client.Options{
		Config:    cfg,
		Seed:      s,
		Logger:    logger,
		Autopilot: flagAutopilot,
	})
	if err != nil {
		return err
	}
	return client.Run(game, cfg)
}
