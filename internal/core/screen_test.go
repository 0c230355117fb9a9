package core

import (
	"strings"
	"testing"
)

func TestScreenInitiallyBlank(t *testing.T) {
	s := NewScreen(4, 2)

	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("dimensions = %dx%d, expected 4x2", s.Width(), s.Height())
	}
	if s.String() != "    \n    " {
		t.Errorf("new screen not blank: %q", s.String())
	}
}

func TestScreenSetAndGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(3, 2, '@', ColorYellow)

	if got := s.Get(3, 2); got != '@' {
		t.Errorf("Get(3,2) = %q, expected '@'", got)
	}
	cell := s.GetCell(3, 2)
	if cell.Color != ColorYellow {
		t.Errorf("cell color = %v, expected yellow", cell.Color)
	}
}

func TestScreenOutOfBoundsIgnored(t *testing.T) {
	s := NewScreen(3, 3)

	// None of these may panic or alter the buffer.
	s.Set(-1, 0, 'x')
	s.Set(0, -1, 'x')
	s.Set(3, 0, 'x')
	s.Set(0, 3, 'x')

	if strings.ContainsRune(s.String(), 'x') {
		t.Error("out-of-bounds write leaked into the buffer")
	}
	if got := s.Get(99, 99); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, expected space", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(8, 2)

	s.DrawText(2, 0, "hi")
	if s.Row(0) != "  hi    " {
		t.Errorf("row 0 = %q", s.Row(0))
	}

	// Text running off the right edge is clipped.
	s.DrawText(6, 1, "long")
	if s.Row(1) != "      lo" {
		t.Errorf("row 1 = %q", s.Row(1))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "abcd")
	if s.Row(0) != "   abcd   " {
		t.Errorf("row = %q", s.Row(0))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(NewRect(1, 1, 3, 2), '#', ColorGreen)

	want := "      \n ###  \n ###  \n      "
	if s.String() != want {
		t.Errorf("screen =\n%s\nexpected\n%s", s.String(), want)
	}
	if s.GetCell(2, 1).Color != ColorGreen {
		t.Error("fill color not applied")
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawHLine(1, 0, 4, '═', ColorGray)
	if s.Row(0) != " ════ " {
		t.Errorf("row = %q", s.Row(0))
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawRect(NewRect(0, 0, 3, 2), '#', ColorWhite)
	s.Clear()

	if s.String() != "   \n   " {
		t.Errorf("screen after clear: %q", s.String())
	}
	if s.GetCell(0, 0).Color != ColorDefault {
		t.Error("clear must reset colors")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'a')
	s.Set(3, 3, 'b')

	s.Resize(6, 2)

	if s.Width() != 6 || s.Height() != 2 {
		t.Fatalf("dimensions = %dx%d, expected 6x2", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'a' {
		t.Error("content within the new bounds must survive a resize")
	}
	// (3,3) fell outside the new height; reading it is just a blank.
	if s.Get(3, 3) != ' ' {
		t.Error("content outside the new bounds must read as blank")
	}
	// New cells are blank.
	if s.Get(5, 0) != ' ' {
		t.Error("grown area must be blank")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3))

	want := "┌───┐\n│   │\n└───┘"
	if s.String() != want {
		t.Errorf("box =\n%s\nexpected\n%s", s.String(), want)
	}
}
