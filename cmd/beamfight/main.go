// beamfight is a small arcade game: dodge the bouncing bombs and shoot them
// down with beams.
//
// Usage:
//
//	beamfight play                  - Play in a desktop window
//	beamfight play -f terminal      - Play in the terminal
//	beamfight frontends             - List available frontends
//	beamfight config                - Print the effective configuration
//
// Global flags:
//
//	--tps <rate>          - Override the tick rate (default: from config)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom config YAML
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/beamfight/internal/config"
)

var (
	// Global flags
	flagTPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "beamfight",
	Short: "Beam Fight - dodge the bombs, shoot them down",
	Long: `Beam Fight is a small arcade game. Bombs bounce around the play area;
fly around them and fire beams to destroy them. The game ends when a bomb
touches you.

Available commands:
  play       - Start a game
  frontends  - Show the available frontends
  config     - Print the effective configuration

Examples:
  beamfight play
  beamfight play --frontend terminal
  beamfight play --difficulty hard --seed 42
  beamfight config > my-beamfight.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", 0, "Tick rate in ticks per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the session logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, err
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "beamfight",
		Level:           level,
	})
	return logger.With("session", uuid.NewString()), nil
}

// loadConfig loads the configuration and applies the global overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagTPS > 0 {
		cfg.TickRate = flagTPS
	}
	return cfg, nil
}
