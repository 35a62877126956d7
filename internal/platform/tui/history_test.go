package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickshot/internal/storage"
)

type fakeShots struct {
	byLevel map[string][]storage.ShotEntry
	queried []string
	err     error
}

func (f *fakeShots) RecentShots(levelID string, limit int) ([]storage.ShotEntry, error) {
	f.queried = append(f.queried, levelID)
	if f.err != nil {
		return nil, f.err
	}
	if levelID == "" {
		var all []storage.ShotEntry
		for _, shots := range f.byLevel {
			all = append(all, shots...)
		}
		return all, nil
	}
	return f.byLevel[levelID], nil
}

func updateHistory(m HistoryModel, msg tea.Msg) HistoryModel {
	next, _ := m.Update(msg)
	return next.(HistoryModel)
}

func TestHistoryTabs(t *testing.T) {
	src := &fakeShots{byLevel: map[string][]storage.ShotEntry{
		"opening": {{LevelID: "opening", Wall: "right", Outcome: "exit"}},
		"pyramid": {
			{LevelID: "pyramid", Outcome: "degenerate"},
			{LevelID: "pyramid", Wall: "top", Outcome: "exit"},
		},
	}}

	m := NewHistoryModel(src, []string{"opening", "pyramid"}, 100, 30)
	if m.LevelLabel() != "all levels" || len(m.Shots()) != 3 {
		t.Errorf("initial tab = %q with %d shots, expected all levels with 3", m.LevelLabel(), len(m.Shots()))
	}

	m = updateHistory(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.LevelLabel() != "opening" || len(m.Shots()) != 1 {
		t.Errorf("after tab = %q with %d shots, expected opening with 1", m.LevelLabel(), len(m.Shots()))
	}

	m = updateHistory(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updateHistory(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.LevelLabel() != "pyramid" || len(m.Shots()) != 2 {
		t.Errorf("after wrap = %q with %d shots, expected pyramid with 2", m.LevelLabel(), len(m.Shots()))
	}

	want := []string{"", "opening", "", "pyramid"}
	if strings.Join(src.queried, ",") != strings.Join(want, ",") {
		t.Errorf("queried levels = %q, expected %q", src.queried, want)
	}
}

func TestHistoryViewStates(t *testing.T) {
	empty := NewHistoryModel(&fakeShots{}, nil, 100, 30)
	if !strings.Contains(empty.View(), "No shots recorded yet.") {
		t.Error("empty history should say so")
	}

	failing := NewHistoryModel(&fakeShots{err: errors.New("locked")}, nil, 100, 30)
	if !strings.Contains(failing.View(), "locked") {
		t.Error("load error should be shown")
	}

	next, cmd := failing.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil || next.(HistoryModel).View() != "" {
		t.Error("q should quit the history screen")
	}
}
