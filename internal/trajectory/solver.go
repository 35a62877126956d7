// Package trajectory projects a ball's straight-line path to the arena wall
// it exits through, samples the path for trail rendering and mirrors the
// tail of the path across the wall it bounced off.
package trajectory

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/brickshot/internal/core"
)

// VerticalEpsilon is the smallest horizontal launch/aim separation the
// slope-intercept model accepts.
const VerticalEpsilon = 0.05

var (
	// ErrDegenerate is returned when the aim is too close to vertical.
	ErrDegenerate = errors.New("trajectory: aim too close to vertical")

	// ErrNoIntersection is returned when no boundary candidate lies inside the arena.
	ErrNoIntersection = errors.New("trajectory: no boundary intersection")
)

// Wall identifies one of the three reflecting boundaries.
// The bottom edge never reflects.
type Wall int

const (
	WallLeft Wall = iota
	WallTop
	WallRight
)

// String returns the wall's name.
func (w Wall) String() string {
	switch w {
	case WallLeft:
		return "left"
	case WallTop:
		return "top"
	case WallRight:
		return "right"
	default:
		return fmt.Sprintf("Wall(%d)", int(w))
	}
}

// Reflection is the exit point of a projected path and the wall it hits.
// Point is already inset from the wall by the correction margin.
type Reflection struct {
	Wall  Wall
	Point core.Point
}

// Candidate is one boundary intersection considered by the solver.
type Candidate struct {
	Wall      Wall
	Point     core.Point
	Contained bool // Strictly inside the arena
}

// Solver projects paths inside a fixed arena.
type Solver struct {
	Dims core.Dimensions
}

// NewSolver creates a solver for the given arena.
func NewSolver(dims core.Dimensions) *Solver {
	return &Solver{Dims: dims}
}

// Solve returns the wall the line launch -> aim exits through.
func (s *Solver) Solve(launch, aim core.Point) (Reflection, error) {
	return Solve(s.Dims, launch, aim)
}

// Solve finds the exit point of the line through launch and aim.
//
// The line crosses the extended boundary at up to three points and only one
// of them is the forward exit. Candidates are scanned in a direction-dependent
// order and the first one strictly inside the arena wins: left, right, top
// when launch.X > 0, and top, right, left otherwise.
//
// Returns ErrDegenerate for near-vertical aims and ErrNoIntersection when no
// candidate is inside the arena.
func Solve(dims core.Dimensions, launch, aim core.Point) (Reflection, error) {
	candidates, err := Candidates(dims, launch, aim)
	if err != nil {
		return Reflection{}, err
	}
	for _, c := range candidates {
		if c.Contained {
			return Reflection{Wall: c.Wall, Point: c.Point}, nil
		}
	}
	return Reflection{}, fmt.Errorf("%w: launch %v aim %v", ErrNoIntersection, launch, aim)
}

// Candidates returns the boundary candidates for the line through launch and
// aim in the order Solve scans them. The top candidate is omitted for a
// horizontal line.
func Candidates(dims core.Dimensions, launch, aim core.Point) ([]Candidate, error) {
	if math.Abs(launch.X-aim.X) < VerticalEpsilon {
		return nil, fmt.Errorf("%w: launch %v aim %v", ErrDegenerate, launch, aim)
	}

	k := (launch.Y - aim.Y) / (launch.X - aim.X)
	b := launch.Y - k*launch.X

	halfW, halfH := dims.HalfW(), dims.HalfH()
	m := dims.CorrectionMargin
	arena := dims.Arena()

	left := candidate(arena, WallLeft, core.Pt(-halfW+m, math.Floor(-halfW*k+b)))
	right := candidate(arena, WallRight, core.Pt(halfW-m, math.Floor(halfW*k+b)))

	var ordered []Candidate
	if launch.X > 0 {
		ordered = append(make([]Candidate, 0, 3), left, right)
		if k != 0 {
			ordered = append(ordered, candidate(arena, WallTop, core.Pt(math.Floor((halfH-b)/k), halfH-m)))
		}
	} else {
		ordered = make([]Candidate, 0, 3)
		if k != 0 {
			ordered = append(ordered, candidate(arena, WallTop, core.Pt(math.Floor((halfH-b)/k), halfH-m)))
		}
		ordered = append(ordered, right, left)
	}
	return ordered, nil
}

func candidate(arena core.Bounds, w Wall, p core.Point) Candidate {
	return Candidate{Wall: w, Point: p, Contained: arena.ContainsOpen(p)}
}
