package trajectory

import (
	"math"

	"github.com/vovakirdan/brickshot/internal/core"
)

const (
	// SampleSpacing is the default distance between trail samples.
	SampleSpacing = 40

	// ReflectTail is the number of path points mirrored past a bounce.
	ReflectTail = 3
)

// Sample returns evenly spaced points strictly between a and b.
// With count = floor(dist(a, b) / spacing), the points are a + i/count*(b-a)
// for i = 1..count-1; the result is empty when count <= 1.
// A non-positive spacing uses SampleSpacing.
func Sample(a, b core.Point, spacing float64) []core.Point {
	if spacing <= 0 {
		spacing = SampleSpacing
	}

	count := int(math.Floor(a.Dist(b) / spacing))
	if count <= 1 {
		return []core.Point{}
	}

	points := make([]core.Point, count-1)
	for i := 1; i < count; i++ {
		points[i-1] = a.Lerp(b, float64(i)/float64(count))
	}
	return points
}

// Reflect appends the mirror images of the last ReflectTail points of path
// and returns the extended path. Paths shorter than ReflectTail are returned
// unchanged.
//
// Tail points are taken closest-to-wall first (the last point of the path
// first). A left or right wall mirrors Y across r.Point.Y; the top wall
// mirrors X across r.Point.X. The caller keeps ownership of path; only the
// returned slice should be used afterwards.
func Reflect(path []core.Point, r Reflection) []core.Point {
	n := len(path)
	if n < ReflectTail {
		return path
	}

	mirrored := make([]core.Point, 0, ReflectTail)
	for i := n - 1; i >= n-ReflectTail; i-- {
		p := path[i]
		switch r.Wall {
		case WallTop:
			p.X = 2*r.Point.X - p.X
		default:
			p.Y = 2*r.Point.Y - p.Y
		}
		mirrored = append(mirrored, p)
	}
	return append(path, mirrored...)
}

// Trail is a fully projected shot: the sampled path from the launch point
// to the exit wall followed by the mirrored tail.
type Trail struct {
	Launch     core.Point
	Aim        core.Point
	Reflection Reflection
	Points     []core.Point
}

// Trace solves the exit point for launch -> aim, samples the segment from
// launch to the exit and appends the reflected tail. Solver errors are
// returned as-is so callers can match them with errors.Is.
func Trace(dims core.Dimensions, launch, aim core.Point, spacing float64) (Trail, error) {
	r, err := Solve(dims, launch, aim)
	if err != nil {
		return Trail{}, err
	}

	path := Sample(launch, r.Point, spacing)
	path = Reflect(path, r)

	return Trail{
		Launch:     launch,
		Aim:        aim,
		Reflection: r,
		Points:     path,
	}, nil
}
