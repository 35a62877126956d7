package board

import (
	"fmt"

	"github.com/vovakirdan/brickshot/internal/core"
)

// Store holds the brick state of every cell for one board.
// Grid dimensions and cell positions are fixed at construction.
// A Store is owned by a single session and is not safe for concurrent use.
type Store struct {
	dims      core.Dimensions
	rows      int
	cols      int
	positions [][]core.Point // computed once, never modified
	cells     [][]CellRecord
}

// NewStore creates a board of rows x cols cells and computes their positions.
// The store starts out reset (all cells empty).
func NewStore(dims core.Dimensions, rows, cols int) (*Store, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if dims.CellSize <= 0 {
		return nil, fmt.Errorf("%w: cell size %v", ErrInvalidDimensions, dims.CellSize)
	}

	s := &Store{
		dims:      dims,
		rows:      rows,
		cols:      cols,
		positions: ComputePositions(dims, rows, cols),
		cells:     make([][]CellRecord, rows),
	}
	for i := range s.cells {
		s.cells[i] = make([]CellRecord, cols)
	}
	s.Reset()
	return s, nil
}

// Rows returns the number of grid rows.
func (s *Store) Rows() int {
	return s.rows
}

// Cols returns the number of grid columns.
func (s *Store) Cols() int {
	return s.cols
}

// Dimensions returns the board metrics the positions were computed from.
func (s *Store) Dimensions() core.Dimensions {
	return s.dims
}

// Reset empties every cell and re-copies its position from the position table.
func (s *Store) Reset() {
	for i := range s.rows {
		for j := range s.cols {
			s.cells[i][j] = CellRecord{
				Row:      i,
				Col:      j,
				Type:     BrickEmpty,
				Life:     0,
				Position: s.positions[i][j],
			}
		}
	}
}

// LoadLevel copies the type and life of every defined layout entry into the
// store. Undefined entries keep their current state, so loading into a freshly
// reset store leaves them empty.
//
// The layout is validated before anything is written: on error the store is
// unchanged.
func (s *Store) LoadLevel(layout Layout) error {
	if err := s.validate(layout); err != nil {
		return err
	}

	for i, row := range layout.Cells {
		for j, b := range row {
			if b == nil {
				continue
			}
			s.cells[i][j].Type = b.Type
			s.cells[i][j].Life = b.Life
		}
	}
	return nil
}

func (s *Store) validate(layout Layout) error {
	if layout.Rows > s.rows || layout.Cols > s.cols {
		return fmt.Errorf("%w: level %q is %dx%d, board is %dx%d",
			ErrLayoutDimensions, layout.ID, layout.Rows, layout.Cols, s.rows, s.cols)
	}
	if len(layout.Cells) > layout.Rows {
		return fmt.Errorf("%w: level %q has %d rows, declares %d",
			ErrLayoutDimensions, layout.ID, len(layout.Cells), layout.Rows)
	}
	for i, row := range layout.Cells {
		if len(row) > layout.Cols {
			return fmt.Errorf("%w: level %q row %d has %d columns, declares %d",
				ErrLayoutDimensions, layout.ID, i, len(row), layout.Cols)
		}
		for j, b := range row {
			if b == nil {
				continue
			}
			if b.Life < 0 {
				return fmt.Errorf("%w: level %q cell (%d,%d) has life %d",
					ErrInvalidBrick, layout.ID, i, j, b.Life)
			}
			if b.Type < BrickEmpty || b.Type > BrickAddBall {
				return fmt.Errorf("%w: level %q cell (%d,%d) has type %v",
					ErrInvalidBrick, layout.ID, i, j, b.Type)
			}
		}
	}
	return nil
}

// SnapshotNonEmptyCells returns every non-empty cell in row-major order,
// each with its resolved position.
//
// Side effect: the store is reset after the snapshot is taken. Brick
// placement is handed off exactly once per level load; a second call
// returns an empty slice.
func (s *Store) SnapshotNonEmptyCells() []CellRecord {
	out := make([]CellRecord, 0, s.CountNonEmpty())
	for i := range s.rows {
		for j := range s.cols {
			if !s.cells[i][j].Empty() {
				out = append(out, s.cells[i][j])
			}
		}
	}
	s.Reset()
	return out
}

// CountNonEmpty returns the number of cells holding a brick.
func (s *Store) CountNonEmpty() int {
	count := 0
	for i := range s.rows {
		for j := range s.cols {
			if !s.cells[i][j].Empty() {
				count++
			}
		}
	}
	return count
}

// Cell returns the record at (row, col).
func (s *Store) Cell(row, col int) (CellRecord, bool) {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return CellRecord{}, false
	}
	return s.cells[row][col], true
}

// Position returns the world position of (row, col).
func (s *Store) Position(row, col int) (core.Point, bool) {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return core.Point{}, false
	}
	return s.positions[row][col], true
}
