package core

// DefaultCorrectionMargin is the inward inset applied to computed boundary
// points so they land strictly inside the arena.
const DefaultCorrectionMargin = 10

// Dimensions describes the arena and the brick grid metrics in world units.
type Dimensions struct {
	GameWidth        float64 // Horizontal extent of the arena
	GameHeight       float64 // Vertical extent of the arena
	CellSize         float64 // Edge length of a square brick cell
	CorrectionMargin float64 // Inward inset for boundary points
}

// HalfW returns half the arena width.
func (d Dimensions) HalfW() float64 {
	return d.GameWidth / 2
}

// HalfH returns half the arena height.
func (d Dimensions) HalfH() float64 {
	return d.GameHeight / 2
}

// Arena returns the arena rectangle centered on the origin.
func (d Dimensions) Arena() Bounds {
	return Bounds{
		MinX: -d.HalfW(),
		MinY: -d.HalfH(),
		MaxX: d.HalfW(),
		MaxY: d.HalfH(),
	}
}

// RuntimeConfig contains configuration passed to the presentation layer.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Animation ticks per second (default 30)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}
