package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/MansourDch/jezzball-clone/engine"
)

var (
	simTicks      int
	simSplitEvery int
)

var (
	metricKeyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(20)
	metricValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

func runSim(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Engine.Seed == 0 {
		cfg.Engine.Seed = 1
	}
	rt := newApp(cfg, engine.NewMockTimeProvider(time.Unix(0, 0)), logger)
	simulate(rt, simTicks, simSplitEvery)
	printResult(cmd.OutOrStdout(), rt)
	return nil
}

// simulate steps the scheduler ticks times. Wall games start a split toward
// the nearer edge at the board center every splitEvery ticks
func simulate(rt *app, ticks, splitEvery int) {
	wall, _ := rt.game.(*wallGame)
	for i := 0; i < ticks; i++ {
		if wall != nil && splitEvery > 0 && i%splitEvery == 0 {
			wall.BeginSplitAuto(wall.Board().Bounds().Center())
		}
		rt.sched.Step()
	}
}

func printResult(w io.Writer, rt *app) {
	fmt.Fprintln(w, rt.game.Summary().Card())
	for _, kv := range rt.reg.Snapshot() {
		fmt.Fprintln(w, metricKeyStyle.Render(kv[0])+metricValueStyle.Render(kv[1]))
	}
	fmt.Fprintf(w, "%d metrics\n", rt.reg.TotalCount())
}
