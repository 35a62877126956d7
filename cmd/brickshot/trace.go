package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickshot/internal/core"
	"github.com/vovakirdan/brickshot/internal/trajectory"
)

var (
	flagLaunch     string
	flagAim        string
	flagTraceLevel string
	flagVerbose    bool
	flagNoRecord   bool
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Trace a single shot",
	Long: `Finds where the line from the launch point through the aim point
leaves the arena, samples the path up to that wall and appends the bounce.

Coordinates are world units with the origin at the arena center and y up.
Shots are recorded in the shot database unless --no-record is given.

Examples:
  brickshot trace --launch=0,-600 --aim=100,-500
  brickshot trace --launch=10,-600 --aim=20,-400 --verbose
  brickshot trace --launch=0,-600 --aim=-50,-450 --level pyramid`,
	RunE: runTrace,
}

func init() {
	traceCmd.Flags().StringVar(&flagLaunch, "launch", "", "Launch point as x,y (required)")
	traceCmd.Flags().StringVar(&flagAim, "aim", "", "Aim point as x,y (required)")
	traceCmd.Flags().StringVar(&flagTraceLevel, "level", "", "Level number or ID to tag the shot with")
	traceCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Show every wall candidate")
	traceCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not store the shot")
	//nolint:errcheck // flags are defined above
	traceCmd.MarkFlagRequired("launch")
	//nolint:errcheck // flags are defined above
	traceCmd.MarkFlagRequired("aim")
}

// parsePoint parses "x,y".
func parsePoint(s string) (core.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return core.Point{}, fmt.Errorf("invalid point %q: expected x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return core.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return core.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return core.Pt(x, y), nil
}

func runTrace(_ *cobra.Command, _ []string) error {
	launch, err := parsePoint(flagLaunch)
	if err != nil {
		return err
	}
	aim, err := parsePoint(flagAim)
	if err != nil {
		return err
	}

	logger, err := newLogger("brickshot")
	if err != nil {
		return err
	}
	cfg, set, err := loadBoard()
	if err != nil {
		return err
	}

	if !flagNoRecord {
		if store := openStore(logger); store != nil {
			defer store.Close()
			sess, sessErr := openSession(cfg, set, store, logger)
			if sessErr != nil {
				return sessErr
			}
			if flagTraceLevel != "" {
				n, lvlErr := resolveLevel(set, flagTraceLevel)
				if lvlErr != nil {
					return lvlErr
				}
				if _, lvlErr = sess.LoadLevel(n); lvlErr != nil {
					return lvlErr
				}
			}
			trail, traceErr := sess.Aim(launch, aim)
			return printTrace(cfg.Dimensions(), launch, aim, trail, traceErr)
		}
	}

	dims := cfg.Dimensions()
	trail, traceErr := trajectory.Trace(dims, launch, aim, cfg.Trail.SampleSpacing)
	return printTrace(dims, launch, aim, trail, traceErr)
}

func printTrace(dims core.Dimensions, launch, aim core.Point, trail trajectory.Trail, traceErr error) error {
	fmt.Printf("Launch (%.1f, %.1f) -> aim (%.1f, %.1f)\n", launch.X, launch.Y, aim.X, aim.Y)

	if flagVerbose {
		if cands, err := trajectory.Candidates(dims, launch, aim); err == nil {
			fmt.Println()
			fmt.Println(headerStyle.Render("Candidates (scan order)"))
			for _, c := range cands {
				mark := " "
				if c.Contained {
					mark = "*"
				}
				fmt.Printf("  %s %-5s (%.1f, %.1f)\n", mark, c.Wall, c.Point.X, c.Point.Y)
			}
		}
	}

	if traceErr != nil {
		return traceErr
	}

	r := trail.Reflection
	fmt.Println()
	fmt.Println(headerStyle.Render(fmt.Sprintf("Exit: %s wall at (%.1f, %.1f)", r.Wall, r.Point.X, r.Point.Y)))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("#", "X", "Y")
	for i, p := range trail.Points {
		t.Row(strconv.Itoa(i), fmt.Sprintf("%.1f", p.X), fmt.Sprintf("%.1f", p.Y))
	}
	fmt.Println(t.Render())
	fmt.Printf("%d points\n", len(trail.Points))
	return nil
}
