package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 {
		t.Errorf("Width() = %d, want 10", s.Width())
	}
	if s.Height() != 5 {
		t.Errorf("Height() = %d, want 5", s.Height())
	}
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("Get(0, 0) = %q, want space", got)
	}
	if got := s.Get(9, 4); got != ' ' {
		t.Errorf("Get(9, 4) = %q, want space", got)
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@')
	if got := s.Get(3, 2); got != '@' {
		t.Errorf("Get(3, 2) = %q, want '@'", got)
	}

	s.SetColor(4, 2, '#', ColorGreen)
	cell := s.GetCell(4, 2)
	if cell.Rune != '#' || cell.Color != ColorGreen {
		t.Errorf("GetCell(4, 2) = %+v, want '#' in green", cell)
	}

	// Plain Set uses the default color.
	if c := s.GetCell(3, 2).Color; c != ColorDefault {
		t.Errorf("Set cell color = %v, want ColorDefault", c)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Writes outside the buffer are ignored, reads return a space.
	s.Set(-1, 0, 'x')
	s.Set(0, -1, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get(-1, 0) = %q, want space", got)
	}
	if got := s.Get(10, 0); got != ' ' {
		t.Errorf("Get(10, 0) = %q, want space", got)
	}
	if cell := s.GetCell(0, 5); cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("GetCell(0, 5) = %+v, want default space", cell)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetColor(2, 2, 'A', ColorYellow)
	s.Set(9, 4, 'B')

	s.Resize(6, 4)

	if s.Width() != 6 || s.Height() != 4 {
		t.Errorf("size after shrink = %dx%d, want 6x4", s.Width(), s.Height())
	}
	cell := s.GetCell(2, 2)
	if cell.Rune != 'A' || cell.Color != ColorYellow {
		t.Errorf("surviving cell = %+v, want 'A' in yellow", cell)
	}

	s.Resize(12, 8)
	if got := s.Get(2, 2); got != 'A' {
		t.Errorf("Get(2, 2) after grow = %q, want 'A'", got)
	}
	if got := s.Get(11, 7); got != ' ' {
		t.Errorf("new area = %q, want space", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(8, 3)
	s.SetColor(1, 1, 'Z', ColorRed)

	s.Clear()

	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("cell after Clear = %+v, want default space", cell)
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi")
	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Errorf("row 1 = %q, want text at x=2", s.Row(1))
	}

	// Text past the right edge is clipped, not wrapped.
	s.DrawText(8, 0, "long")
	if s.Get(8, 0) != 'l' || s.Get(9, 0) != 'o' {
		t.Errorf("row 0 = %q, want clipped text", s.Row(0))
	}
	if s.Get(0, 1) == 'n' {
		t.Error("clipped text wrapped to the next row")
	}
}

func TestDrawTextColor(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColor(0, 0, "ok", ColorCyan)

	for i, r := range "ok" {
		cell := s.GetCell(i, 0)
		if cell.Rune != r || cell.Color != ColorCyan {
			t.Errorf("cell %d = %+v, want %q in cyan", i, cell, r)
		}
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextCentered(1, "ab")

	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' {
		t.Errorf("row 1 = %q, want centered text", s.Row(1))
	}
}

func TestDrawRect(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawRectColor(NewRect(2, 1, 3, 2), '#', ColorGreen)

	for y := 1; y < 3; y++ {
		for x := 2; x < 5; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != '#' || cell.Color != ColorGreen {
				t.Errorf("cell (%d, %d) = %+v, want '#' in green", x, y, cell)
			}
		}
	}
	if s.Get(5, 1) != ' ' {
		t.Error("fill leaked past the right edge")
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' {
		t.Errorf("top corners = %q %q", s.Get(1, 1), s.Get(5, 1))
	}
	if s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Errorf("bottom corners = %q %q", s.Get(1, 4), s.Get(5, 4))
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Errorf("edges = %q %q", s.Get(3, 1), s.Get(1, 2))
	}
	// Interior stays untouched.
	if s.Get(3, 2) != ' ' {
		t.Errorf("interior = %q, want space", s.Get(3, 2))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(0, 1, "cd")

	got := s.String()
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() has %d lines, want 2", len(lines))
	}
	if lines[0] != "ab  " || lines[1] != "cd  " {
		t.Errorf("String() = %q", got)
	}
}
