package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/beamfight/internal/audio"
	"github.com/vovakirdan/beamfight/internal/config"
	"github.com/vovakirdan/beamfight/internal/games/beamfight"
	"github.com/vovakirdan/beamfight/internal/platform/tui"
	"github.com/vovakirdan/beamfight/internal/platform/window"
	"github.com/vovakirdan/beamfight/internal/registry"
)

var (
	flagFrontend   string
	flagDifficulty string
	flagAssets     string
	flagMute       bool
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in the selected frontend.

Controls:
  Arrows/WASD  - Move
  Space        - Fire a beam
  Esc/Q        - Quit

Difficulty options:
  easy   - 3 slow bombs
  normal - 5 bombs
  hard   - 8 fast bombs
  fixed  - Keep the bomb settings from the config

Examples:
  beamfight play
  beamfight play --frontend terminal --log-file beamfight.log
  beamfight play --difficulty easy
  beamfight play --assets ./assets --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagFrontend, "frontend", "f", window.ID, "Frontend: "+window.ID+" or "+tui.ID)
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with sprite images (empty = builtin sprites)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal frontend logs nowhere otherwise)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	// Check if frontend exists
	if !registry.Exists(flagFrontend) {
		return fmt.Errorf("unknown frontend %q, run 'beamfight frontends' to see available frontends", flagFrontend)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)
	if flagAssets != "" {
		cfg.Assets.Dir = flagAssets
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logOut, closeLog, err := openLogOutput(flagFrontend, flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := registry.Options{
		Config:  cfg,
		Runtime: cfg.Runtime(seed),
		Logger:  logger,
	}

	// Sound is optional; a missing audio device only costs the effects
	if cfg.Audio.Enabled && !flagMute {
		sm := audio.NewSoundManager(cfg.Audio.Volume, logger)
		if err := sm.Initialize(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer sm.Cleanup()
			opts.Events = sm
		}
	}

	frontend, err := registry.Create(flagFrontend)
	if err != nil {
		return err
	}

	logger.Info("starting",
		"frontend", frontend.ID(),
		"seed", seed,
		"difficulty", preset,
		"bombs", cfg.Bombs.Count,
		"tps", cfg.TickRate,
	)

	state, err := frontend.Run(beamfight.New(cfg), opts)
	if err != nil {
		return err
	}

	logger.Info("finished", "score", state.Score, "ticks", state.Tick, "game_over", state.GameOver)
	if flagFrontend == tui.ID {
		fmt.Printf("Final score: %d\n", state.Score)
	}
	return nil
}

// openLogOutput picks where logs go. Stderr belongs to the terminal frontend
// while it runs, so it only logs to an explicit file.
func openLogOutput(frontend, path string) (io.Writer, func(), error) {
	if path == "" {
		if frontend == tui.ID {
			return io.Discard, func() {}, nil
		}
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
