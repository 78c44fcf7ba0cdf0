package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bomberman-classic/internal/term"
	"bomberman-classic/pkg/core"
)

var flagStyled bool

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Print the static map",
	Long: `Print the 13x13 arena.

Legend:
  W  solid wall
  B  breakable wall
  P  player start
  E  enemy start`,
	Args: cobra.NoArgs,
	RunE: runMap,
}

func init() {
	mapCmd.Flags().BoolVar(&flagStyled, "styled", false, "Render the arena the way the terminal frontend does")
}

func runMap(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if flagStyled {
		g := core.NewGame(core.Options{Seed: seed()})
		g.Step(core.Input{Actions: core.NewActionSet(core.ActionConfirm)}, 0)
		fmt.Fprintln(out, term.Board(g.Snapshot()))
		return nil
	}
	fmt.Fprint(out, plainMap())
	return nil
}

// plainMap 用字母表示的地图，每行一个网格行
func plainMap() string {
	layout := core.Layout()
	var rows [core.GridSize][core.GridSize]byte
	for y := range core.GridSize {
		for x := range core.GridSize {
			switch layout[y][x] {
			case core.TileWall:
				rows[y][x] = 'W'
			case core.TileBrick:
				rows[y][x] = 'B'
			default:
				rows[y][x] = '.'
			}
		}
	}
	rows[core.PlayerStart.Y][core.PlayerStart.X] = 'P'
	for _, e := range core.EnemyStarts {
		rows[e.Y][e.X] = 'E'
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.Write(row[:])
		sb.WriteByte('\n')
	}
	return sb.String()
}
