package board

import "github.com/vovakirdan/brickshot/internal/core"

// ComputePositions returns the world-space center of every cell of a
// rows x cols grid, indexed [row][col].
//
// Cell (0,0) sits at (cellSize/2, cellSize/2). Every later row starts at
// x = cellSize/2 + correctionMargin, one cellSize above the previous row, so
// the correction is applied once for rows 1.. and never per column. Columns
// step by cellSize along X.
// The whole table is then translated by (-gameWidth/2, -gameHeight/2) so the
// arena center is the origin.
func ComputePositions(dims core.Dimensions, rows, cols int) [][]core.Point {
	if rows <= 0 || cols <= 0 {
		return [][]core.Point{}
	}

	positions := make([][]core.Point, rows)
	for i := range positions {
		positions[i] = make([]core.Point, cols)
	}

	positions[0][0] = core.Pt(dims.CellSize/2, dims.CellSize/2)
	for i := 1; i < rows; i++ {
		prev := positions[i-1][0]
		positions[i][0] = core.Pt(dims.CellSize/2+dims.CorrectionMargin, prev.Y+dims.CellSize)
	}

	for i := range rows {
		for j := 1; j < cols; j++ {
			prev := positions[i][j-1]
			positions[i][j] = core.Pt(prev.X+dims.CellSize, prev.Y)
		}
	}

	offset := core.Pt(-dims.HalfW(), -dims.HalfH())
	for i := range rows {
		for j := range cols {
			positions[i][j] = positions[i][j].Add(offset)
		}
	}

	return positions
}

// PastFloor reports whether p is at or below the arena's bottom boundary.
// A ball past the floor is lost; a brick past the floor ends the game.
func PastFloor(dims core.Dimensions, p core.Point) bool {
	return p.Y <= -dims.HalfH()
}
