package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickshot/internal/board"
	"github.com/vovakirdan/brickshot/internal/config"
	"github.com/vovakirdan/brickshot/internal/core"
	"github.com/vovakirdan/brickshot/internal/levels"
	"github.com/vovakirdan/brickshot/internal/session"
	"github.com/vovakirdan/brickshot/internal/trajectory"
)

func newTestViewer(t *testing.T) ViewerModel {
	t.Helper()
	sess, err := session.New(config.DefaultBoardConfig(), levels.Builtin())
	if err != nil {
		t.Fatalf("session.New() failed: %v", err)
	}
	m, err := NewViewerModel(sess, core.RuntimeConfig{ScreenW: 40, ScreenH: 30, TickRate: 30})
	if err != nil {
		t.Fatalf("NewViewerModel() failed: %v", err)
	}
	return m
}

func press(m ViewerModel, msg tea.KeyMsg) ViewerModel {
	next, _ := m.Update(msg)
	return next.(ViewerModel)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestWorldToScreen(t *testing.T) {
	dims := core.Dimensions{GameWidth: 720, GameHeight: 1280, CellSize: 60, CorrectionMargin: 10}
	proj := NewProjection(dims, 1, 1, 20, 10)

	tests := []struct {
		name   string
		p      core.Point
		wantX  int
		wantY  int
		wantOK bool
	}{
		{"center", core.Pt(0, 0), 11, 6, true},
		{"top left corner", core.Pt(-360, 640), 1, 1, true},
		{"bottom right corner", core.Pt(360, -640), 20, 10, true},
		{"near right wall", core.Pt(359, 0), 20, 6, true},
		{"above arena", core.Pt(0, 700), 0, 0, false},
		{"left of arena", core.Pt(-361, 0), 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y, ok := proj.WorldToScreen(tc.p)
			if ok != tc.wantOK {
				t.Fatalf("WorldToScreen(%v) ok = %v, expected %v", tc.p, ok, tc.wantOK)
			}
			if ok && (x != tc.wantX || y != tc.wantY) {
				t.Errorf("WorldToScreen(%v) = (%d, %d), expected (%d, %d)", tc.p, x, y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestViewerKeyMap(t *testing.T) {
	km := DefaultViewerKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionAimLeft},
		{runeKey('h'), core.ActionAimLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionAimRight},
		{runeKey('a'), core.ActionMoveLeft},
		{runeKey('d'), core.ActionMoveRight},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionFire},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionFire},
		{tea.KeyMsg{Type: tea.KeyTab}, core.ActionNextLevel},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, core.ActionPrevLevel},
		{runeKey('?'), core.ActionHelp},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runeKey('q'), core.ActionQuit},
		{runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKey(tc.msg); got != tc.want {
			t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}

func TestViewerFireAnimatesTrail(t *testing.T) {
	m := newTestViewer(t)

	m = press(m, tea.KeyMsg{Type: tea.KeySpace})
	trail := m.Trail()
	if trail == nil {
		t.Fatalf("Fire should trace a trail, status %q", m.Status())
	}
	if trail.Reflection.Wall != trajectory.WallRight {
		t.Errorf("Reflection wall = %v, expected right", trail.Reflection.Wall)
	}
	if !m.Animating() {
		t.Fatal("ball should be moving after fire")
	}

	for range len(trail.Points) + 1 {
		next, cmd := m.Update(TickMsg{})
		if cmd == nil {
			t.Fatal("tick should schedule the next tick")
		}
		m = next.(ViewerModel)
	}
	if m.Animating() {
		t.Error("animation should stop at the end of the trail")
	}
	if !strings.Contains(m.Status(), "right wall") {
		t.Errorf("Status() = %q, expected the exit wall", m.Status())
	}
}

func TestViewerAimLimits(t *testing.T) {
	m := newTestViewer(t)

	// 60 + 12 * 2.5 is straight up
	for range 12 {
		m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	if m.Angle() != 90 {
		t.Fatalf("Angle() = %v, expected 90", m.Angle())
	}
	m = press(m, tea.KeyMsg{Type: tea.KeySpace})
	if m.Trail() != nil {
		t.Error("vertical aim should not produce a trail")
	}
	if !strings.Contains(m.Status(), "vertical") {
		t.Errorf("Status() = %q, expected vertical aim message", m.Status())
	}

	for range 100 {
		m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	if m.Angle() != maxAngle {
		t.Errorf("Angle() = %v, expected %v", m.Angle(), maxAngle)
	}

	for range 50 {
		m = press(m, runeKey('d'))
	}
	if m.Launch().X != 350 {
		t.Errorf("Launch().X = %v, expected 350", m.Launch().X)
	}
}

func TestViewerLevelSwitchWraps(t *testing.T) {
	m := newTestViewer(t)
	count := levels.Builtin().Count()

	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Level() != count {
		t.Errorf("Level() after prev = %d, expected %d", m.Level(), count)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Level() != 1 {
		t.Errorf("Level() after next = %d, expected 1", m.Level())
	}
	if len(m.Cells()) == 0 {
		t.Error("level 1 should have bricks")
	}
}

func TestViewerView(t *testing.T) {
	m := newTestViewer(t)

	view := m.View()
	if !strings.Contains(view, "L1/") {
		t.Errorf("View() should contain the level indicator, got %q", view)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if next.(ViewerModel).View() != "" {
		t.Error("View() should be empty after quit")
	}
}

func TestRenderBricks(t *testing.T) {
	m := newTestViewer(t)
	screen := core.NewScreen(40, 30)
	m.Render(screen)

	if screen.Get(0, 0) != '┌' {
		t.Errorf("Get(0, 0) = %q, expected arena border", screen.Get(0, 0))
	}

	found := 0
	for y := range screen.Height() {
		for x := range screen.Width() {
			switch screen.Get(x, y) {
			case '1', '2', '3', '4', '5', '6', '7', '8', '9', '#', '=', '‖':
				found++
			}
		}
	}
	if found == 0 {
		t.Error("Render() should draw some bricks")
	}
}

func shoot(t *testing.T, m ViewerModel) ViewerModel {
	t.Helper()
	m = press(m, tea.KeyMsg{Type: tea.KeySpace})
	if m.Trail() == nil {
		t.Fatalf("Fire should trace a trail, status %q", m.Status())
	}
	for range len(m.Trail().Points) + 1 {
		next, _ := m.Update(TickMsg{})
		m = next.(ViewerModel)
	}
	if m.Animating() {
		t.Fatal("animation should stop at the end of the trail")
	}
	return m
}

func TestViewerBricksDescendToGameOver(t *testing.T) {
	m := newTestViewer(t)
	startY := m.Cells()[0].Position.Y

	m = shoot(t, m)
	if got := m.Cells()[0].Position.Y; got != startY-m.sess.Dimensions().CellSize {
		t.Fatalf("brick y after one shot = %v, expected one row lower than %v", got, startY)
	}

	for shots := 1; !m.sess.GameOver(); shots++ {
		if shots > 40 {
			t.Fatal("bricks never reached the floor")
		}
		m = shoot(t, m)
	}
	if !strings.Contains(m.Status(), "floor") {
		t.Errorf("Status() = %q, expected game over message", m.Status())
	}

	// Fire after game over reloads the level
	m = press(m, tea.KeyMsg{Type: tea.KeySpace})
	if m.sess.GameOver() {
		t.Error("retry should clear game over")
	}
	if m.Trail() != nil || m.Animating() {
		t.Error("retry should not fire a shot")
	}
	if got := m.Cells()[0].Position.Y; got != startY {
		t.Errorf("brick y after retry = %v, expected %v", got, startY)
	}
}

func TestBrickGlyphSpecial(t *testing.T) {
	tests := []struct {
		typ  board.BrickType
		want rune
	}{
		{board.BrickClearRow, '='},
		{board.BrickClearColumn, '‖'},
		{board.BrickAddBall, '+'},
	}

	for _, tc := range tests {
		if r, _ := brickGlyph(board.CellRecord{Type: tc.typ, Life: 1}); r != tc.want {
			t.Errorf("brickGlyph(%v) = %q, expected %q", tc.typ, r, tc.want)
		}
	}
	if r, c := brickGlyph(board.CellRecord{Type: board.BrickNormal, Life: 3}); r != '3' || c != core.ColorOrange {
		t.Errorf("brickGlyph(normal 3) = %q %v, expected '3' orange", r, c)
	}
}
