package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/brickshot/internal/board"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	Size   YAMLSize    `yaml:"size"`
	Map    []string    `yaml:"map,omitempty"`
	Bricks []YAMLBrick `yaml:"bricks,omitempty"`
}

// YAMLSize represents grid dimensions.
type YAMLSize struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// YAMLBrick represents a single brick in YAML format.
type YAMLBrick struct {
	Row  int    `yaml:"row"`
	Col  int    `yaml:"col"`
	Type string `yaml:"type"`
	Life int    `yaml:"life"`
}

// ParseYAML parses a YAML level file into a layout.
// The ASCII map is applied first, then the brick list; a brick entry
// overrides a map glyph at the same cell.
func ParseYAML(data []byte) (board.Layout, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return board.Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return board.Layout{}, fmt.Errorf("level has no id")
	}

	layout, err := ParseASCII(yl.ID, yl.Name, yl.Map)
	if err != nil {
		return board.Layout{}, err
	}

	rows, cols := yl.Size.Rows, yl.Size.Cols
	if rows == 0 && cols == 0 {
		rows, cols = layout.Rows, layout.Cols
	}
	if layout.Rows > rows || layout.Cols > cols {
		return board.Layout{}, fmt.Errorf("%w: level %q map is %dx%d, size is %dx%d",
			board.ErrLayoutDimensions, yl.ID, layout.Rows, layout.Cols, rows, cols)
	}
	layout.Rows, layout.Cols = rows, cols

	for _, yb := range yl.Bricks {
		if yb.Row < 0 || yb.Row >= rows || yb.Col < 0 || yb.Col >= cols {
			return board.Layout{}, fmt.Errorf("%w: level %q brick (%d,%d) outside %dx%d",
				board.ErrLayoutDimensions, yl.ID, yb.Row, yb.Col, rows, cols)
		}
		typ, err := board.ParseBrickType(yb.Type)
		if err != nil {
			return board.Layout{}, fmt.Errorf("level %q brick (%d,%d): %w", yl.ID, yb.Row, yb.Col, err)
		}
		setBrick(&layout, yb.Row, yb.Col, &board.Brick{Type: typ, Life: yb.Life})
	}

	return layout, nil
}

// setBrick places b at (row, col), growing the sparse rows as needed.
func setBrick(l *board.Layout, row, col int, b *board.Brick) {
	for len(l.Cells) <= row {
		l.Cells = append(l.Cells, nil)
	}
	for len(l.Cells[row]) <= col {
		l.Cells[row] = append(l.Cells[row], nil)
	}
	l.Cells[row][col] = b
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Returns layouts sorted by ID for deterministic ordering.
// A malformed file fails the whole load.
func (l *Loader) LoadAll() ([]board.Layout, error) {
	var layouts []board.Layout

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		layout, err := l.LoadFile(path)
		if err != nil {
			return err
		}
		layouts = append(layouts, layout)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(layouts, func(i, j int) bool {
		return layouts[i].ID < layouts[j].ID
	})

	return layouts, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (board.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return board.Layout{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	layout, err := ParseYAML(data)
	if err != nil {
		return board.Layout{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return layout, nil
}

// Provider loads every level under Root into a Set.
func (l *Loader) Provider() (*Set, error) {
	layouts, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(layouts) == 0 {
		return nil, fmt.Errorf("%w: no level files in %s", ErrLevelNotFound, l.Root)
	}
	return NewSet(layouts), nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// Open returns the directory provider for dir, or the built-in levels when
// dir is empty.
func Open(dir string) (*Set, error) {
	if dir == "" {
		return Builtin(), nil
	}
	return NewLoader(dir).Provider()
}
