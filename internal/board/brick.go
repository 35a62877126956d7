// Package board models the brick grid: the world position of every cell and
// the per-level brick state handed to the presentation layer.
package board

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/brickshot/internal/core"
)

// BrickType represents different types of bricks.
// Only BrickEmpty has meaning to the board; the rest are tags the
// presentation layer maps to brick behaviour.
type BrickType int

const (
	BrickEmpty       BrickType = iota // No brick
	BrickNormal                       // Standard brick with life points
	BrickClearRow                     // Clears its row when hit
	BrickClearColumn                  // Clears its column when hit
	BrickAddBall                      // Grants an extra ball when hit
)

// String returns the name used in level files.
func (t BrickType) String() string {
	switch t {
	case BrickEmpty:
		return "empty"
	case BrickNormal:
		return "normal"
	case BrickClearRow:
		return "clear_row"
	case BrickClearColumn:
		return "clear_column"
	case BrickAddBall:
		return "add_ball"
	default:
		return fmt.Sprintf("BrickType(%d)", int(t))
	}
}

// Special reports whether t triggers an effect when hit instead of only
// losing life.
func (t BrickType) Special() bool {
	switch t {
	case BrickClearRow, BrickClearColumn, BrickAddBall:
		return true
	}
	return false
}

// ParseBrickType converts a level-file name to a BrickType.
func ParseBrickType(s string) (BrickType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "empty":
		return BrickEmpty, nil
	case "normal":
		return BrickNormal, nil
	case "clear_row", "row":
		return BrickClearRow, nil
	case "clear_column", "column", "col":
		return BrickClearColumn, nil
	case "add_ball", "ball":
		return BrickAddBall, nil
	}
	return BrickEmpty, fmt.Errorf("%w: unknown brick type %q", ErrInvalidBrick, s)
}

// Brick is the content of a level layout entry.
type Brick struct {
	Type BrickType
	Life int // Remaining hits; only meaningful for non-empty bricks
}

// CellRecord is the resolved state of one grid cell.
type CellRecord struct {
	Row, Col int
	Type     BrickType
	Life     int
	Position core.Point // World-space center of the cell
}

// Empty reports whether the cell holds no brick.
func (c CellRecord) Empty() bool {
	return c.Type == BrickEmpty
}

// Layout is a sparse level layout supplied by a level provider.
// Rows and Cols declare the layout's extent; Cells may be shorter than the
// declared extent in either direction, and nil entries are undefined.
type Layout struct {
	ID    string
	Name  string
	Rows  int
	Cols  int
	Cells [][]*Brick // [row][col]
}

// At returns the brick at (row, col), or nil when the entry is undefined.
func (l *Layout) At(row, col int) *Brick {
	if row < 0 || row >= len(l.Cells) {
		return nil
	}
	if col < 0 || col >= len(l.Cells[row]) {
		return nil
	}
	return l.Cells[row][col]
}

// Count returns the number of defined, non-empty bricks.
func (l *Layout) Count() int {
	count := 0
	for _, row := range l.Cells {
		for _, b := range row {
			if b != nil && b.Type != BrickEmpty {
				count++
			}
		}
	}
	return count
}
