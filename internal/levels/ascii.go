// Package levels supplies board layouts: built-in ASCII levels and YAML
// level files loaded from a directory.
package levels

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/brickshot/internal/board"
)

// ErrLevelNotFound is returned for level numbers or IDs with no layout.
var ErrLevelNotFound = errors.New("levels: level not found")

// Provider supplies the layout for a level. Levels are numbered from 1.
type Provider interface {
	Layout(level int) (board.Layout, error)
	Count() int
}

// ParseASCII creates a layout from an ASCII map. Rows are listed from row 0.
// Characters:
//
//	'.' or ' ' = empty
//	'1'-'9'    = normal brick with that much life
//	'R'        = row-clearing brick (life 1)
//	'C'        = column-clearing brick (life 1)
//	'B'        = ball-adding brick (life 1)
func ParseASCII(id, name string, lines []string) (board.Layout, error) {
	maxWidth := 0
	for _, line := range lines {
		if len(line) > maxWidth {
			maxWidth = len(line)
		}
	}

	layout := board.Layout{
		ID:    id,
		Name:  name,
		Rows:  len(lines),
		Cols:  maxWidth,
		Cells: make([][]*board.Brick, len(lines)),
	}

	for row, line := range lines {
		layout.Cells[row] = make([]*board.Brick, len(line))
		for col := range len(line) {
			b, err := parseGlyph(line[col])
			if err != nil {
				return board.Layout{}, fmt.Errorf("level %q row %d col %d: %w", id, row, col, err)
			}
			layout.Cells[row][col] = b
		}
	}

	return layout, nil
}

// ParseASCIITop parses a map drawn top-down: line 0 lands on row rows-1, so
// the level hangs from the top of a board rows high. The layout declares the
// full rows extent.
func ParseASCIITop(id, name string, rows int, lines []string) (board.Layout, error) {
	if len(lines) > rows {
		return board.Layout{}, fmt.Errorf("level %q: %d lines exceed %d rows: %w", id, len(lines), rows, board.ErrLayoutDimensions)
	}
	bottomUp := make([]string, rows)
	for i, line := range lines {
		bottomUp[rows-1-i] = line
	}
	return ParseASCII(id, name, bottomUp)
}

func parseGlyph(ch byte) (*board.Brick, error) {
	switch {
	case ch == '.' || ch == ' ':
		return nil, nil
	case ch >= '1' && ch <= '9':
		return &board.Brick{Type: board.BrickNormal, Life: int(ch - '0')}, nil
	case ch == 'R' || ch == 'r':
		return &board.Brick{Type: board.BrickClearRow, Life: 1}, nil
	case ch == 'C' || ch == 'c':
		return &board.Brick{Type: board.BrickClearColumn, Life: 1}, nil
	case ch == 'B' || ch == 'b':
		return &board.Brick{Type: board.BrickAddBall, Life: 1}, nil
	}
	return nil, fmt.Errorf("%w: unknown glyph %q", board.ErrInvalidBrick, ch)
}

// builtinRows is the height the built-in maps hang from, the default board's.
const builtinRows = 20

// builtinMaps are the built-in levels, drawn top-down. All fit the default
// 20x11 board.
var builtinMaps = []struct {
	id, name string
	lines    []string
}{
	{"opening", "Opening", []string{
		"1111111111",
		"1111111111",
		"..........",
		"..B....B..",
	}},
	{"pyramid", "Pyramid", []string{
		"2222222222",
		".22222222.",
		"..333333..",
		"...3333...",
		"....BB....",
	}},
	{"checker", "Checkerboard", []string{
		"3.3.3.3.3.",
		".3.3.3.3.3",
		"3.3.R.3.3.",
		".3.3.3.3.3",
		"3.3.3.3.3.",
	}},
	{"columns", "Columns", []string{
		"4..4..4..4",
		"4..4..4..4",
		"C..4..4..C",
		"4..4..4..4",
		"4..4B.4..4",
		"4..4..4..4",
	}},
	{"diamond", "Diamond", []string{
		"....55....",
		"...5555...",
		"..555555..",
		".55RBB555.",
		"..555555..",
		"...5555...",
		"....55....",
	}},
	{"fortress", "Fortress", []string{
		"9999999999",
		"9........9",
		"9.666666.9",
		"9.6RBBC6.9",
		"9.666666.9",
		"9........9",
		"9999999999",
	}},
}

// Builtin returns a provider over the built-in ASCII levels.
func Builtin() *Set {
	layouts := make([]board.Layout, 0, len(builtinMaps))
	for _, m := range builtinMaps {
		layout, err := ParseASCIITop(m.id, m.name, builtinRows, m.lines)
		if err != nil {
			panic(fmt.Sprintf("levels: built-in level %q: %v", m.id, err))
		}
		layouts = append(layouts, layout)
	}
	return NewSet(layouts)
}

// Set is an ordered, in-memory level provider.
type Set struct {
	layouts []board.Layout
}

// NewSet creates a provider over the given layouts, numbered from 1.
func NewSet(layouts []board.Layout) *Set {
	return &Set{layouts: layouts}
}

// Layout returns the layout for level n (1-based).
func (s *Set) Layout(n int) (board.Layout, error) {
	if n < 1 || n > len(s.layouts) {
		return board.Layout{}, fmt.Errorf("%w: %d of %d", ErrLevelNotFound, n, len(s.layouts))
	}
	return s.layouts[n-1], nil
}

// ByID returns the layout with the given ID.
func (s *Set) ByID(id string) (board.Layout, error) {
	for _, l := range s.layouts {
		if l.ID == id {
			return l, nil
		}
	}
	return board.Layout{}, fmt.Errorf("%w: %s", ErrLevelNotFound, id)
}

// Count returns the number of levels.
func (s *Set) Count() int {
	return len(s.layouts)
}

// All returns the layouts in level order.
func (s *Set) All() []board.Layout {
	return s.layouts
}
