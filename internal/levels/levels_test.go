package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/brickshot/internal/board"
	"github.com/vovakirdan/brickshot/internal/core"
)

func testdataPath() string {
	return filepath.Join("testdata", "levels")
}

func TestParseASCII(t *testing.T) {
	layout, err := ParseASCII("t", "Test", []string{
		"3.R",
		"CB",
	})
	if err != nil {
		t.Fatalf("ParseASCII() failed: %v", err)
	}

	if layout.Rows != 2 || layout.Cols != 3 {
		t.Errorf("ParseASCII() extent = %dx%d, expected 2x3", layout.Rows, layout.Cols)
	}
	if layout.Count() != 4 {
		t.Errorf("Count() = %d, expected 4", layout.Count())
	}

	tests := []struct {
		row, col int
		want     *board.Brick
	}{
		{0, 0, &board.Brick{Type: board.BrickNormal, Life: 3}},
		{0, 1, nil},
		{0, 2, &board.Brick{Type: board.BrickClearRow, Life: 1}},
		{1, 0, &board.Brick{Type: board.BrickClearColumn, Life: 1}},
		{1, 1, &board.Brick{Type: board.BrickAddBall, Life: 1}},
		{1, 2, nil}, // short row is sparse
	}
	for _, tc := range tests {
		got := layout.At(tc.row, tc.col)
		if (got == nil) != (tc.want == nil) {
			t.Errorf("At(%d, %d) = %v, expected %v", tc.row, tc.col, got, tc.want)
			continue
		}
		if got != nil && *got != *tc.want {
			t.Errorf("At(%d, %d) = %+v, expected %+v", tc.row, tc.col, *got, *tc.want)
		}
	}
}

func TestParseASCIIUnknownGlyph(t *testing.T) {
	_, err := ParseASCII("bad", "Bad", []string{"1?1"})
	if !errors.Is(err, board.ErrInvalidBrick) {
		t.Errorf("ParseASCII() error = %v, expected ErrInvalidBrick", err)
	}
}

func TestBuiltinLevelsFitDefaultBoard(t *testing.T) {
	dims := core.Dimensions{GameWidth: 720, GameHeight: 1280, CellSize: 60, CorrectionMargin: 10}
	set := Builtin()

	if set.Count() == 0 {
		t.Fatal("Builtin() has no levels")
	}

	for n := 1; n <= set.Count(); n++ {
		layout, err := set.Layout(n)
		if err != nil {
			t.Fatalf("Layout(%d) failed: %v", n, err)
		}
		store, err := board.NewStore(dims, 20, 11)
		if err != nil {
			t.Fatalf("NewStore() failed: %v", err)
		}
		if err := store.LoadLevel(layout); err != nil {
			t.Errorf("level %d (%s) does not fit default board: %v", n, layout.ID, err)
		}
		if store.CountNonEmpty() != layout.Count() {
			t.Errorf("level %d: store has %d bricks, layout has %d", n, store.CountNonEmpty(), layout.Count())
		}
	}
}

func TestSetLayoutOutOfRange(t *testing.T) {
	set := Builtin()

	for _, n := range []int{0, -1, set.Count() + 1} {
		if _, err := set.Layout(n); !errors.Is(err, ErrLevelNotFound) {
			t.Errorf("Layout(%d) error = %v, expected ErrLevelNotFound", n, err)
		}
	}

	if _, err := set.ByID("pyramid"); err != nil {
		t.Errorf("ByID(pyramid) failed: %v", err)
	}
	if _, err := set.ByID("nope"); !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("ByID(nope) error = %v, expected ErrLevelNotFound", err)
	}
}

func TestLoaderLoadAll(t *testing.T) {
	loader := NewLoader(testdataPath())

	layouts, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}

	if len(layouts) != 2 {
		t.Fatalf("LoadAll() returned %d levels, expected 2", len(layouts))
	}
	if layouts[0].ID != "lvl01" || layouts[1].ID != "lvl02" {
		t.Errorf("LoadAll() order = %s, %s, expected lvl01, lvl02", layouts[0].ID, layouts[1].ID)
	}
}

func TestLoaderMapAndBricks(t *testing.T) {
	layout, err := NewLoader(testdataPath()).LoadFile(filepath.Join(testdataPath(), "lvl01.yaml"))
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}

	if layout.Rows != 12 || layout.Cols != 10 {
		t.Errorf("extent = %dx%d, expected 12x10", layout.Rows, layout.Cols)
	}
	// 10 + 3 from the map, one extra brick; (0,0) is overridden, not added
	if layout.Count() != 14 {
		t.Errorf("Count() = %d, expected 14", layout.Count())
	}
	if b := layout.At(0, 0); b == nil || b.Type != board.BrickClearRow || b.Life != 2 {
		t.Errorf("At(0, 0) = %+v, expected clear_row override", b)
	}
	if b := layout.At(5, 4); b == nil || b.Type != board.BrickAddBall {
		t.Errorf("At(5, 4) = %+v, expected add_ball", b)
	}
}

func TestLoaderProvider(t *testing.T) {
	set, err := Open(testdataPath())
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	layout, err := set.Layout(2)
	if err != nil {
		t.Fatalf("Layout(2) failed: %v", err)
	}
	if b := layout.At(11, 9); b == nil || b.Life != 7 {
		t.Errorf("At(11, 9) = %+v, expected normal brick with life 7", b)
	}
}

func TestOpenEmptyDirUsesBuiltin(t *testing.T) {
	set, err := Open("")
	if err != nil {
		t.Fatalf("Open(\"\") failed: %v", err)
	}
	if set.Count() != Builtin().Count() {
		t.Errorf("Open(\"\") count = %d, expected built-in count", set.Count())
	}
}

func TestLoaderErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no id", "name: x\n"},
		{"brick outside size", "id: a\nsize: {rows: 2, cols: 2}\nbricks:\n  - {row: 2, col: 0, type: normal, life: 1}\n"},
		{"unknown type", "id: a\nsize: {rows: 2, cols: 2}\nbricks:\n  - {row: 0, col: 0, type: lava, life: 1}\n"},
		{"map wider than size", "id: a\nsize: {rows: 1, cols: 2}\nmap: [\"111\"]\n"},
		{"malformed yaml", "id: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, "level.yaml"), []byte(tc.content), 0o600); err != nil {
				t.Fatalf("WriteFile() failed: %v", err)
			}
			if _, err := NewLoader(dir).LoadAll(); err == nil {
				t.Error("LoadAll() should fail")
			}
		})
	}
}

func TestLoaderEmptyDir(t *testing.T) {
	if _, err := NewLoader(t.TempDir()).Provider(); !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("Provider() error = %v, expected ErrLevelNotFound", err)
	}
}

func TestParseASCIITop(t *testing.T) {
	layout, err := ParseASCIITop("t", "Test", 3, []string{
		"1",
		".2",
	})
	if err != nil {
		t.Fatalf("ParseASCIITop() failed: %v", err)
	}

	if layout.Rows != 3 || layout.Cols != 2 {
		t.Errorf("ParseASCIITop() extent = %dx%d, expected 3x2", layout.Rows, layout.Cols)
	}
	if b := layout.At(2, 0); b == nil || b.Life != 1 {
		t.Errorf("At(2, 0) = %+v, expected life-1 brick on the top row", b)
	}
	if b := layout.At(1, 1); b == nil || b.Life != 2 {
		t.Errorf("At(1, 1) = %+v, expected life-2 brick", b)
	}
	if layout.Count() != 2 {
		t.Errorf("Count() = %d, expected 2", layout.Count())
	}

	if _, err := ParseASCIITop("tall", "Tall", 1, []string{"1", "1"}); !errors.Is(err, board.ErrLayoutDimensions) {
		t.Errorf("ParseASCIITop(too tall) error = %v, expected ErrLayoutDimensions", err)
	}
}

func TestBuiltinLevelsStartAtTop(t *testing.T) {
	dims := core.Dimensions{GameWidth: 720, GameHeight: 1280, CellSize: 60, CorrectionMargin: 10}
	set := Builtin()

	for n := 1; n <= set.Count(); n++ {
		layout, err := set.Layout(n)
		if err != nil {
			t.Fatalf("Layout(%d) failed: %v", n, err)
		}
		store, err := board.NewStore(dims, 20, 11)
		if err != nil {
			t.Fatalf("NewStore() failed: %v", err)
		}
		if err := store.LoadLevel(layout); err != nil {
			t.Fatalf("LoadLevel(%s) failed: %v", layout.ID, err)
		}

		topRow := false
		for _, c := range store.SnapshotNonEmptyCells() {
			if c.Position.Y <= 0 {
				t.Errorf("level %s: brick (%d,%d) at y=%v, expected upper half", layout.ID, c.Row, c.Col, c.Position.Y)
			}
			if c.Row == 19 {
				topRow = true
			}
		}
		if !topRow {
			t.Errorf("level %s: no brick on the top row", layout.ID)
		}
	}
}
