package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"bomberman-classic/internal/sim"
	"bomberman-classic/pkg/ai"
	"bomberman-classic/pkg/core"
)

var (
	flagRounds   int
	flagPreset   string
	flagMaxRound time.Duration
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Headless run driven by the bot",
	Long: `Play rounds without a window: the bot controls the player and the
simulation advances at the configured tick rate as fast as possible.

Examples:
  bomberman sim
  bomberman sim --rounds 50 --preset reckless --seed 7`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRounds, "rounds", 10, "Number of rounds to play")
	simCmd.Flags().StringVar(&flagPreset, "preset", "", "Bot preset: calm, reckless (default from config)")
	simCmd.Flags().DurationVar(&flagMaxRound, "max-round", sim.DefaultMaxRound, "Simulated time limit per round")
}

func runSim(cmd *cobra.Command, args []string) error {
	presetName := cfg.Bot.Preset
	if flagPreset != "" {
		presetName = flagPreset
	}
	preset, ok := ai.Preset(presetName)
	if !ok {
		return fmt.Errorf("unknown bot preset %q", presetName)
	}

	s := seed()
	report, err := sim.Run(sim.Options{
		Seed:     s,
		Rounds:   flagRounds,
		TPS:      cfg.TPS,
		MaxRound: flagMaxRound,
		Bot:      preset,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed %d, preset %s\n\n", s, presetName)
	fmt.Fprintf(out, "  %-4s  %-27s  %-9s  %8s  %5s  %5s\n", "#", "Round", "Outcome", "Time", "Bombs", "Kills")
	for i, r := range report.Rounds {
		outcome := r.Outcome.String()
		if r.Outcome == core.StateInGame {
			outcome = "timeout"
		}
		fmt.Fprintf(out, "  %-4d  %-27s  %-9s  %8s  %5d  %5d\n",
			i+1, r.Round, outcome, r.Duration.Round(time.Millisecond), r.Bombs, r.Kills)
	}
	fmt.Fprintf(out, "\nvictories %d, defeats %d, timeouts %d\n", report.Victories, report.Defeats, report.Timeouts)
	return nil
}
