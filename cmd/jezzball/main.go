// Command jezzball plays the wall-splitting arcade game in a terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MansourDch/jezzball-clone/config"
)

var (
	configPath string
	debug      bool
	variant    string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "jezzball",
	Short: "JezzBall in the terminal",
	Long: `Trap the bouncing balls by growing walls across the field.
Claim the threshold share of the board to clear a level. A ball touching a
growing wall costs a life.

Run without arguments to play.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = setupLogging(debug)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runPlay,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively (default)",
	RunE:  runPlay,
}

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless and print the result",
	Long: `Advances the game a fixed number of ticks with no terminal, optionally
starting a split at the board center every N ticks, then prints the standing
and the metric registry.`,
	RunE: runSim,
}

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Print the share text and compose URL for a score",
	RunE:  runShare,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "jezzball.yaml", "Config file (missing file uses defaults)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Write debug logs to "+logDir+"/"+logFileName)
	rootCmd.PersistentFlags().StringVar(&variant, "variant", "", "Game variant override: wall, paddle")

	simCmd.Flags().IntVar(&simTicks, "ticks", 3600, "Ticks to simulate")
	simCmd.Flags().IntVar(&simSplitEvery, "split-every", 120, "Start a center split every N ticks, 0 disables")

	shareCmd.Flags().IntVar(&shareScore, "score", 0, "Score to report")
	shareCmd.Flags().IntVar(&shareLevel, "level", 1, "Level to report")
	shareCmd.Flags().IntVar(&shareLives, "lives", 3, "Lives to report")
	shareCmd.Flags().IntVar(&shareFilled, "filled", 0, "Percent of the board claimed (wall games)")
	shareCmd.Flags().StringVar(&shareMessage, "message", "", "Custom message")

	rootCmd.AddCommand(playCmd, simCmd, shareCmd)
}

// loadConfig reads the config file and applies the command line overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags sets values given on the command line. Reloads reapply it
func applyFlags(cfg *config.Config) {
	if variant != "" {
		cfg.Variant = variant
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
