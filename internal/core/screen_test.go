package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'X', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'X'", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.Set(1, 1, 'X')
	s.Clear()

	if s.Get(1, 1) != ' ' {
		t.Error("Clear() should reset cells to spaces")
	}
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear() should reset cell colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(7, 0, "héllo", ColorDefault)

	if s.Row(0) != "       hél" {
		t.Errorf("Row(0) = %q, expected clipped text", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(0, 0, 4, 3, ColorGray)

	want := "┌──┐\n│  │\n└──┘"
	if s.String() != want {
		t.Errorf("String() = %q, expected %q", s.String(), want)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 3)
	s.Set(0, 0, 'X')
	s.Resize(6, 2)

	if s.Width() != 6 || s.Height() != 2 {
		t.Errorf("Resize() dims = %dx%d, expected 6x2", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Error("Resize() should clear content")
	}
}
