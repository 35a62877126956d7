// brickshot traces ball shots across a brick board in the terminal.
//
// Usage:
//
//	brickshot levels                       - List available levels
//	brickshot board <level>                - Print brick positions for a level
//	brickshot trace --launch x,y --aim x,y - Trace one shot
//	brickshot view                         - Interactive aim viewer
//	brickshot serve                        - Start SSH server for remote viewers
//	brickshot history [level]              - Show recorded shots
//
// Global flags:
//
//	--config <path>    - Board config YAML
//	--levels <dir>     - Directory of YAML levels (overrides config)
//	--db <path>        - Shot database (default: ~/.brickshot/shots.db)
//	--log-level <lvl>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickshot/internal/config"
	"github.com/vovakirdan/brickshot/internal/levels"
	"github.com/vovakirdan/brickshot/internal/session"
	"github.com/vovakirdan/brickshot/internal/storage"
)

var (
	// Global flags
	flagConfig    string
	flagLevelsDir string
	flagDBPath    string
	flagLogLevel  string
	flagFPS       int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickshot",
	Short: "Brickshot - board geometry and shot trajectories in your terminal",
	Long: `Brickshot lays out brick levels on a fixed arena and traces where a
shot leaves the board and how it bounces back.

Available commands:
  levels   - Show all available levels
  board    - Print the brick positions of a level
  trace    - Trace a single shot
  view     - Interactive aim viewer
  serve    - Start SSH server for remote viewers
  history  - View recorded shots

Examples:
  brickshot levels
  brickshot board 2
  brickshot trace --launch 0,-600 --aim 100,-500
  brickshot view --levels ./my-levels
  brickshot serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to board config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of YAML levels (default: config levels.dir or built-in)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.brickshot/shots.db", "Path to shot database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Viewer animation rate (ticks per second)")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

// newLogger builds the stderr logger for the --log-level flag.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// loadBoard resolves the board config and the level provider.
func loadBoard() (config.BoardConfig, *levels.Set, error) {
	cfg, err := config.LoadBoard(flagConfig)
	if err != nil {
		return config.BoardConfig{}, nil, err
	}

	dir := cfg.Levels.Dir
	if flagLevelsDir != "" {
		dir = flagLevelsDir
	}
	if dir != "" {
		if dir, err = config.ExpandHome(dir); err != nil {
			return config.BoardConfig{}, nil, err
		}
	}

	set, err := levels.Open(dir)
	if err != nil {
		return config.BoardConfig{}, nil, fmt.Errorf("cannot load levels: %w", err)
	}
	return cfg, set, nil
}

// openSession builds a session with logging and, when store is non-nil,
// shot recording.
func openSession(cfg config.BoardConfig, set *levels.Set, store *storage.Store, logger *log.Logger) (*session.Session, error) {
	opts := []session.Option{
		session.WithLogger(logger),
		session.WithGameOver(func(level int) {
			logger.Info("game over", "level", level)
		}),
	}
	if store != nil {
		opts = append(opts, session.WithRecorder(store))
	}
	return session.New(cfg, set, opts...)
}

// openStore opens the shot database. Failures are logged and the command
// continues without history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open shot database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
