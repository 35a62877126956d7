package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickshot/internal/levels"
)

var boardCmd = &cobra.Command{
	Use:   "board <level>",
	Short: "Print the brick positions of a level",
	Long: `Loads a level onto the board and prints every non-empty cell with its
world position, in row-major order. The level is a 1-based number or an ID.

Examples:
  brickshot board 1
  brickshot board pyramid`,
	Args: cobra.ExactArgs(1),
	RunE: runBoard,
}

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

// resolveLevel accepts a 1-based level number or a level ID.
func resolveLevel(set *levels.Set, arg string) (int, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		return n, nil
	}
	for i, l := range set.All() {
		if l.ID == arg {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", levels.ErrLevelNotFound, arg)
}

func runBoard(_ *cobra.Command, args []string) error {
	logger, err := newLogger("brickshot")
	if err != nil {
		return err
	}
	cfg, set, err := loadBoard()
	if err != nil {
		return err
	}
	n, err := resolveLevel(set, args[0])
	if err != nil {
		return err
	}

	sess, err := openSession(cfg, set, nil, logger)
	if err != nil {
		return err
	}
	cells, err := sess.LoadLevel(n)
	if err != nil {
		return err
	}

	dims := sess.Dimensions()
	fmt.Println(headerStyle.Render(fmt.Sprintf("Level %d - %s", n, sess.LevelID())))
	fmt.Printf("Arena %.0fx%.0f, cell %.0f, margin %.0f, grid %dx%d\n\n",
		dims.GameWidth, dims.GameHeight, dims.CellSize, dims.CorrectionMargin,
		sess.Board().Rows(), sess.Board().Cols())

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Row", "Col", "Type", "Life", "X", "Y")
	for _, c := range cells {
		t.Row(
			strconv.Itoa(c.Row),
			strconv.Itoa(c.Col),
			c.Type.String(),
			strconv.Itoa(c.Life),
			fmt.Sprintf("%.0f", c.Position.X),
			fmt.Sprintf("%.0f", c.Position.Y),
		)
	}
	fmt.Println(t.Render())
	fmt.Printf("%d bricks\n", len(cells))
	return nil
}
