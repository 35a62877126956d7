package tui

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickshot/internal/board"
	"github.com/vovakirdan/brickshot/internal/core"
	"github.com/vovakirdan/brickshot/internal/session"
	"github.com/vovakirdan/brickshot/internal/trajectory"
)

// Aim limits in degrees, measured counter-clockwise from +x.
const (
	minAngle     = 5.0
	maxAngle     = 175.0
	angleStep    = 2.5
	defaultAngle = 60.0
	aimLength    = 200.0 // world units between launch and aim point
)

// ViewerModel is the Bubble Tea model for aiming and tracing shots.
type ViewerModel struct {
	sess   *session.Session
	screen *core.Screen
	config core.RuntimeConfig
	keys   ViewerKeyMap
	help   help.Model

	level  int
	cells  []board.CellRecord
	launch core.Point
	angle  float64

	trail   *trajectory.Trail
	ballIdx int // index into trail.Points, -1 when idle
	status  string

	quitting bool
}

// NewViewerModel creates a viewer for sess and loads the first level.
func NewViewerModel(sess *session.Session, cfg core.RuntimeConfig) (ViewerModel, error) {
	dims := sess.Dimensions()
	m := ViewerModel{
		sess:    sess,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		keys:    DefaultViewerKeyMap(),
		help:    help.New(),
		launch:  core.Pt(0, -dims.HalfH()+dims.CellSize),
		angle:   defaultAngle,
		ballIdx: -1,
	}
	if err := m.loadLevel(1); err != nil {
		return ViewerModel{}, err
	}
	return m, nil
}

// Init starts the tick loop.
func (m ViewerModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		m.advance()
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

func (m ViewerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	dims := m.sess.Dimensions()

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionAimLeft:
		m.angle = core.ClampF(m.angle+angleStep, minAngle, maxAngle)
	case core.ActionAimRight:
		m.angle = core.ClampF(m.angle-angleStep, minAngle, maxAngle)
	case core.ActionMoveLeft, core.ActionMoveRight:
		step := dims.CellSize / 2
		if action == core.ActionMoveLeft {
			step = -step
		}
		limit := dims.HalfW() - dims.CorrectionMargin
		m.launch.X = core.ClampF(m.launch.X+step, -limit, limit)
	case core.ActionFire:
		m.fire()
	case core.ActionNextLevel:
		m.switchLevel(m.level + 1)
	case core.ActionPrevLevel:
		m.switchLevel(m.level - 1)
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// AimPoint returns the point the launcher is aimed at.
func (m ViewerModel) AimPoint() core.Point {
	rad := m.angle * math.Pi / 180
	return m.launch.Add(core.Pt(math.Cos(rad), math.Sin(rad)).Scale(aimLength))
}

// fire traces the current aim, or reloads the level after a game over.
func (m *ViewerModel) fire() {
	if m.sess.GameOver() {
		m.switchLevel(m.level)
		return
	}
	if m.ballIdx >= 0 {
		return
	}

	trail, err := m.sess.Aim(m.launch, m.AimPoint())
	switch {
	case errors.Is(err, trajectory.ErrDegenerate):
		m.status = "aim is too close to vertical"
		m.trail = nil
		return
	case errors.Is(err, trajectory.ErrNoIntersection):
		m.status = "no wall in that direction"
		m.trail = nil
		return
	case err != nil:
		m.status = err.Error()
		m.trail = nil
		return
	}

	m.trail = &trail
	m.ballIdx = 0
	r := trail.Reflection
	m.status = fmt.Sprintf("%s wall at (%.0f, %.0f)", r.Wall, r.Point.X, r.Point.Y)
}

// advance moves the ball one trail point per tick. The animation stops at
// the end of the trail or when the ball passes the floor, and the bricks
// then move down one row.
func (m *ViewerModel) advance() {
	if m.trail == nil || m.ballIdx < 0 {
		return
	}
	m.ballIdx++
	if m.ballIdx < len(m.trail.Points) && !m.sess.BallLost(m.trail.Points[m.ballIdx]) {
		return
	}

	if m.ballIdx < len(m.trail.Points) {
		m.status = "ball lost"
	}
	m.ballIdx = -1
	m.cells = m.sess.Descend(m.cells)
	if m.sess.CheckBricks(m.cells) {
		m.status = "bricks reached the floor, fire to retry"
	}
}

func (m *ViewerModel) switchLevel(n int) {
	count := m.sess.LevelCount()
	if count == 0 {
		return
	}
	// 1-based wrap-around
	n = ((n-1)%count+count)%count + 1
	if err := m.loadLevel(n); err != nil {
		m.status = err.Error()
	}
}

func (m *ViewerModel) loadLevel(n int) error {
	cells, err := m.sess.LoadLevel(n)
	if err != nil {
		return err
	}
	m.level = n
	m.cells = cells
	m.trail = nil
	m.ballIdx = -1
	m.status = fmt.Sprintf("%d bricks", len(cells))
	return nil
}

// View renders the current state to a string for display.
func (m ViewerModel) View() string {
	if m.quitting {
		return ""
	}

	helpView := m.help.View(m.keys)
	boardH := max(m.config.ScreenH-lipgloss.Height(helpView), 0)
	if m.screen.Width() != m.config.ScreenW || m.screen.Height() != boardH {
		m.screen.Resize(m.config.ScreenW, boardH)
	}

	m.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpView
}

// Render draws the arena, bricks, aim and trail into s. The last row holds
// the status line.
func (m ViewerModel) Render(s *core.Screen) {
	s.Clear()
	if s.Width() < 4 || s.Height() < 4 {
		return
	}

	boxH := s.Height() - 1
	s.DrawBox(0, 0, s.Width(), boxH, core.ColorGray)
	proj := NewProjection(m.sess.Dimensions(), 1, 1, s.Width()-2, boxH-2)

	for _, c := range m.cells {
		if x, y, ok := proj.WorldToScreen(c.Position); ok {
			r, col := brickGlyph(c)
			s.SetColor(x, y, r, col)
		}
	}

	if m.trail != nil {
		for _, p := range m.trail.Points {
			if x, y, ok := proj.WorldToScreen(p); ok {
				s.SetColor(x, y, '·', core.ColorGray)
			}
		}
		if x, y, ok := proj.WorldToScreen(m.trail.Reflection.Point); ok {
			s.SetColor(x, y, 'x', core.ColorYellow)
		}
		if m.ballIdx >= 0 && m.ballIdx < len(m.trail.Points) {
			if x, y, ok := proj.WorldToScreen(m.trail.Points[m.ballIdx]); ok {
				s.SetColor(x, y, 'O', core.ColorWhite)
			}
		}
	} else {
		for _, p := range trajectory.Sample(m.launch, m.AimPoint(), aimLength/4) {
			if x, y, ok := proj.WorldToScreen(p); ok {
				s.SetColor(x, y, '+', core.ColorCyan)
			}
		}
	}

	if x, y, ok := proj.WorldToScreen(m.launch); ok {
		s.SetColor(x, y, '^', core.ColorWhite)
	}

	status := fmt.Sprintf(" L%d/%d %s  %.1f°  %s", m.level, m.sess.LevelCount(), m.sess.LevelID(), m.angle, m.status)
	s.DrawText(0, s.Height()-1, status, core.ColorDefault)
}

type glyph struct {
	r     rune
	color core.Color
}

var specialGlyphs = map[board.BrickType]glyph{
	board.BrickClearRow:    {'=', core.ColorCyan},
	board.BrickClearColumn: {'‖', core.ColorMagenta},
	board.BrickAddBall:     {'+', core.ColorBlue},
}

// brickGlyph picks the rune and color for a brick. Normal bricks show their
// life and are colored by it.
func brickGlyph(c board.CellRecord) (rune, core.Color) {
	if c.Type.Special() {
		g := specialGlyphs[c.Type]
		return g.r, g.color
	}

	r := '#'
	if c.Life > 0 && c.Life < 10 {
		r = rune('0' + c.Life)
	}
	switch {
	case c.Life >= 5:
		return r, core.ColorRed
	case c.Life >= 3:
		return r, core.ColorOrange
	case c.Life == 2:
		return r, core.ColorYellow
	default:
		return r, core.ColorGreen
	}
}

// Level returns the loaded level number.
func (m ViewerModel) Level() int {
	return m.level
}

// Launch returns the launch point.
func (m ViewerModel) Launch() core.Point {
	return m.launch
}

// Angle returns the aim angle in degrees.
func (m ViewerModel) Angle() float64 {
	return m.angle
}

// Animating reports whether the ball is moving along the trail.
func (m ViewerModel) Animating() bool {
	return m.ballIdx >= 0
}

// Trail returns the last traced trail, or nil.
func (m ViewerModel) Trail() *trajectory.Trail {
	return m.trail
}

// Status returns the status line message.
func (m ViewerModel) Status() string {
	return m.status
}

// Cells returns the bricks currently on screen.
func (m ViewerModel) Cells() []board.CellRecord {
	return m.cells
}

// RunViewer starts the viewer program for sess.
func RunViewer(sess *session.Session, cfg core.RuntimeConfig) error {
	model, err := NewViewerModel(sess, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
