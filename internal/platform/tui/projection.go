package tui

import (
	"math"

	"github.com/vovakirdan/brickshot/internal/core"
)

// Projection maps world coordinates onto a rectangle of screen cells.
// World y grows upward, screen rows grow downward.
type Projection struct {
	Dims   core.Dimensions
	Left   int
	Top    int
	Width  int
	Height int
}

// NewProjection maps the arena onto the w x h cell rectangle at (left, top).
func NewProjection(dims core.Dimensions, left, top, w, h int) Projection {
	return Projection{Dims: dims, Left: left, Top: top, Width: max(w, 1), Height: max(h, 1)}
}

// WorldToScreen returns the cell containing p. ok is false when p lies
// outside the arena.
func (pr Projection) WorldToScreen(p core.Point) (x, y int, ok bool) {
	if !pr.Dims.Arena().Contains(p) {
		return 0, 0, false
	}

	fx := (p.X + pr.Dims.HalfW()) / pr.Dims.GameWidth
	fy := (pr.Dims.HalfH() - p.Y) / pr.Dims.GameHeight

	col := core.Clamp(int(math.Floor(fx*float64(pr.Width))), 0, pr.Width-1)
	row := core.Clamp(int(math.Floor(fy*float64(pr.Height))), 0, pr.Height-1)
	return pr.Left + col, pr.Top + row, true
}
