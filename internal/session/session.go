// Package session ties one board to a level provider and the trajectory
// engine for the lifetime of a game session.
package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickshot/internal/board"
	"github.com/vovakirdan/brickshot/internal/config"
	"github.com/vovakirdan/brickshot/internal/core"
	"github.com/vovakirdan/brickshot/internal/levels"
	"github.com/vovakirdan/brickshot/internal/trajectory"
)

// Shot outcomes stored with each ShotRecord.
const (
	OutcomeExit           = "exit"
	OutcomeDegenerate     = "degenerate"
	OutcomeNoIntersection = "no_intersection"
)

// ErrConfig wraps level provider and layout failures at load time.
var ErrConfig = errors.New("session: level configuration error")

// ShotRecord describes one traced shot.
type ShotRecord struct {
	LevelID  string
	Launch   core.Point
	Aim      core.Point
	Exit     *trajectory.Reflection // nil when the shot had no exit
	TrailLen int
	Outcome  string
}

// ShotRecorder persists traced shots.
type ShotRecorder interface {
	RecordShot(rec ShotRecord) error
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithRecorder stores every traced shot.
func WithRecorder(r ShotRecorder) Option {
	return func(s *Session) {
		s.recorder = r
	}
}

// WithGameOver registers the callback invoked when a brick passes the floor.
// It is called at most once per loaded level.
func WithGameOver(fn func(level int)) Option {
	return func(s *Session) {
		s.onGameOver = fn
	}
}

// Session owns one board. It is not safe for concurrent use.
type Session struct {
	cfg      config.BoardConfig
	dims     core.Dimensions
	store    *board.Store
	provider levels.Provider
	logger   *log.Logger
	recorder ShotRecorder

	onGameOver func(level int)
	gameOver   bool

	level   int
	levelID string
}

// New creates a session for the given board configuration.
func New(cfg config.BoardConfig, provider levels.Provider, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, fmt.Errorf("%w: no level provider", ErrConfig)
	}

	dims := cfg.Dimensions()
	store, err := board.NewStore(dims, cfg.Map.Rows, cfg.Map.Cols)
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:      cfg,
		dims:     dims,
		store:    store,
		provider: provider,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// LoadLevel configures level n and hands its bricks to the caller.
// The board is reset, the layout copied in, and the non-empty cells returned
// in row-major order. The board is empty again afterwards.
func (s *Session) LoadLevel(n int) ([]board.CellRecord, error) {
	layout, err := s.provider.Layout(n)
	if err != nil {
		s.logger.Error("cannot get level layout", "level", n, "error", err)
		return nil, fmt.Errorf("%w: level %d: %w", ErrConfig, n, err)
	}

	s.store.Reset()
	if err := s.store.LoadLevel(layout); err != nil {
		s.logger.Error("invalid level layout", "level", n, "id", layout.ID, "error", err)
		return nil, fmt.Errorf("%w: level %d: %w", ErrConfig, n, err)
	}

	s.level = n
	s.levelID = layout.ID
	s.gameOver = false

	cells := s.store.SnapshotNonEmptyCells()
	s.logger.Info("level loaded", "level", n, "id", layout.ID, "bricks", len(cells))
	return cells, nil
}

// Aim traces the shot launch -> aim. ErrDegenerate and ErrNoIntersection are
// returned as-is; the caller skips the bounce.
func (s *Session) Aim(launch, aim core.Point) (trajectory.Trail, error) {
	trail, err := trajectory.Trace(s.dims, launch, aim, s.cfg.Trail.SampleSpacing)

	rec := ShotRecord{LevelID: s.levelID, Launch: launch, Aim: aim}
	switch {
	case err == nil:
		r := trail.Reflection
		rec.Exit = &r
		rec.TrailLen = len(trail.Points)
		rec.Outcome = OutcomeExit
		s.logger.Debug("shot traced", "wall", r.Wall, "x", r.Point.X, "y", r.Point.Y, "points", len(trail.Points))
	case errors.Is(err, trajectory.ErrDegenerate):
		rec.Outcome = OutcomeDegenerate
		s.logger.Debug("aim too close to vertical", "launch", launch, "aim", aim)
	case errors.Is(err, trajectory.ErrNoIntersection):
		rec.Outcome = OutcomeNoIntersection
		s.logger.Warn("no boundary intersection", "launch", launch, "aim", aim)
	default:
		return trail, err
	}

	if s.recorder != nil {
		if recErr := s.recorder.RecordShot(rec); recErr != nil {
			s.logger.Warn("could not record shot", "error", recErr)
		}
	}
	return trail, err
}

// Descend returns copies of cells moved down one cell size, the way bricks
// advance after every shot. Row and Col keep their load-time indices and
// cells is not modified.
func (s *Session) Descend(cells []board.CellRecord) []board.CellRecord {
	moved := make([]board.CellRecord, len(cells))
	for i, c := range cells {
		c.Position.Y -= s.dims.CellSize
		moved[i] = c
	}
	return moved
}

// CheckBricks reports whether any brick has reached the floor. The first
// time it does on a level, the game-over callback fires.
func (s *Session) CheckBricks(cells []board.CellRecord) bool {
	hit := false
	for _, c := range cells {
		if !c.Empty() && board.PastFloor(s.dims, c.Position) {
			hit = true
			break
		}
	}
	if !hit {
		return false
	}

	if !s.gameOver {
		s.gameOver = true
		s.logger.Info("brick reached the floor", "level", s.level)
		if s.onGameOver != nil {
			s.onGameOver(s.level)
		}
	}
	return true
}

// BallLost reports whether the ball at p has passed the bottom edge.
func (s *Session) BallLost(p core.Point) bool {
	return board.PastFloor(s.dims, p)
}

// GameOver reports whether a brick reached the floor on the current level.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// Level returns the number of the loaded level, or 0 before the first load.
func (s *Session) Level() int {
	return s.level
}

// LevelID returns the ID of the loaded level.
func (s *Session) LevelID() string {
	return s.levelID
}

// LevelCount returns the number of levels the provider offers.
func (s *Session) LevelCount() int {
	return s.provider.Count()
}

// Dimensions returns the arena dimensions.
func (s *Session) Dimensions() core.Dimensions {
	return s.dims
}

// Board returns the session's board store.
func (s *Session) Board() *board.Store {
	return s.store
}

// Config returns the board configuration.
func (s *Session) Config() config.BoardConfig {
	return s.cfg
}
