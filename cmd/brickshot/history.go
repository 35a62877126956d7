package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickshot/internal/platform/tui"
	"github.com/vovakirdan/brickshot/internal/storage"
)

var (
	flagHistoryLimit int
	flagInteractive  bool
	flagClear        bool
)

var historyCmd = &cobra.Command{
	Use:   "history [level]",
	Short: "Show recorded shots",
	Long: `Display the most recent shots, optionally for one level (number or ID).
With a level, the exit walls are also tallied.

Examples:
  brickshot history
  brickshot history pyramid --limit 50
  brickshot history -i
  brickshot history opening --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Number of shots to show")
	historyCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse shots in a table")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded shots instead of showing them")
}

func runHistory(_ *cobra.Command, args []string) error {
	logger, err := newLogger("brickshot")
	if err != nil {
		return err
	}
	_, set, err := loadBoard()
	if err != nil {
		return err
	}

	levelID := ""
	if len(args) == 1 {
		n, lvlErr := resolveLevel(set, args[0])
		if lvlErr != nil {
			return lvlErr
		}
		layout, lvlErr := set.Layout(n)
		if lvlErr != nil {
			return lvlErr
		}
		levelID = layout.ID
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	logger.Debug("shot database opened", "path", flagDBPath)

	if flagClear {
		if err := store.ClearShots(levelID); err != nil {
			return err
		}
		fmt.Println("Shot history cleared.")
		return nil
	}

	if flagInteractive {
		ids := make([]string, 0, set.Count())
		for _, l := range set.All() {
			ids = append(ids, l.ID)
		}
		width, height := 100, 30
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunHistory(store, ids, width, height)
	}

	return printHistory(store, levelID)
}

func printHistory(store *storage.Store, levelID string) error {
	shots, err := store.RecentShots(levelID, flagHistoryLimit)
	if err != nil {
		return err
	}

	title := "Recent shots - all levels"
	if levelID != "" {
		title = "Recent shots - " + levelID
	}
	fmt.Println(headerStyle.Render(title))
	fmt.Println()

	if len(shots) == 0 {
		fmt.Println("No shots recorded yet.")
		fmt.Println()
		fmt.Println("Run 'brickshot trace' or 'brickshot view' to record some.")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("ID", "Level", "Launch", "Aim", "Wall", "Exit", "Points", "Outcome", "Date")
	for _, s := range shots {
		wall, exit := "-", "-"
		if s.Wall != "" {
			wall = s.Wall
			exit = fmt.Sprintf("%.0f,%.0f", s.ExitX, s.ExitY)
		}
		t.Row(
			strconv.FormatInt(s.ID, 10),
			s.LevelID,
			fmt.Sprintf("%.0f,%.0f", s.LaunchX, s.LaunchY),
			fmt.Sprintf("%.0f,%.0f", s.AimX, s.AimY),
			wall,
			exit,
			strconv.Itoa(s.TrailLen),
			s.Outcome,
			s.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	fmt.Println(t.Render())

	if levelID == "" {
		return nil
	}

	counts, err := store.WallCounts(levelID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Exits: left %d, top %d, right %d, none %d\n",
		counts["left"], counts["top"], counts["right"], counts[""])
	return nil
}
