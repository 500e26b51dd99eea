package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/platform/tui"
	"github.com/vovakirdan/pingpong/internal/storage"
)

var (
	flagCategory int
	flagLevel    int
	flagLogFile  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a local session: pick a stage, then play first to 7 points.

Controls:
  Mouse / WASD / Arrows - Move paddle
  Space / Click         - Serve
  Enter                 - Start / continue
  P                     - Pause
  Esc / B               - Back to menu
  Tab                   - Session stats (from the menu)
  Q / Ctrl+C            - Quit

Examples:
  pingpong play
  pingpong play --category 2 --level 10
  pingpong play --config ./my-pingpong.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagCategory, "category", 1, "Starting category")
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Starting level within the category")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	// The terminal belongs to the game; logs go to a file or nowhere.
	var logger *log.Logger
	if flagLogFile != "" {
		f, openErr := os.OpenFile(filepath.Clean(flagLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return fmt.Errorf("open log file: %w", openErr)
		}
		defer f.Close()
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "pingpong",
		})
	}

	store, err := storage.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match ledger: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(tui.SessionOptions{
		Config:   gameCfg,
		Runtime:  rt,
		Store:    store,
		Logger:   logger,
		Session:  "local",
		Category: flagCategory,
		Level:    flagLevel,
	})
}
