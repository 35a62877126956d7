package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickshot/internal/config"
	"github.com/vovakirdan/brickshot/internal/core"
	"github.com/vovakirdan/brickshot/internal/platform/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Interactive aim viewer",
	Long: `Shows the board, the launch point and the aim direction. Fire to trace
the shot and watch the ball follow the trail to the wall and back.

Controls:
  Left/Right, h/l  - Rotate aim
  a/d              - Move launch point
  Space/Enter      - Fire
  n/p, Tab         - Next/previous level
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Examples:
  brickshot view
  brickshot view --levels ./my-levels --fps 60`,
	RunE: runView,
}

var flagViewLog string

func init() {
	viewCmd.Flags().StringVar(&flagViewLog, "log-file", "", "Write logs to this file while the viewer runs")
}

func runView(_ *cobra.Command, _ []string) error {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger, err := newLogger("brickshot")
	if err != nil {
		return err
	}
	// The viewer owns the terminal, so logs go to a file or nowhere.
	if flagViewLog == "" {
		logger.SetOutput(io.Discard)
	} else {
		path, pathErr := config.ExpandHome(flagViewLog)
		if pathErr != nil {
			return pathErr
		}
		f, openErr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		defer f.Close()
		logger.SetOutput(f)
	}
	cfg, set, err := loadBoard()
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	sess, err := openSession(cfg, set, store, logger)
	if err != nil {
		return err
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
	if err := tui.RunViewer(sess, rc); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}
