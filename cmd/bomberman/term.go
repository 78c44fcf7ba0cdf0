package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bomberman-classic/internal/logging"
	"bomberman-classic/internal/term"
)

var flagLogFile string

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play inside the terminal",
	Long: `Play inside the terminal. Terminals report key presses but not
releases, so a movement key keeps the player walking for a short moment;
keep the key held down and keyboard repeat does the rest.

Logs would corrupt the screen, so they are discarded unless --log-file is set.`,
	Args: cobra.NoArgs,
	RunE: runTerm,
}

func init() {
	termCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the bot control the player")
	termCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runTerm(cmd *cobra.Command, args []string) error {
	termLogger := logging.Discard()
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()

		termLogger, err = logging.New(cfg.Log, f)
		if err != nil {
			return err
		}
	}

	return term.Run(term.Options{
		Config:    cfg,
		Seed:      seed(),
		Logger:    termLogger,
		Autopilot: flagAutopilot,
	})
}
