package core

import (
	"strings"
	"testing"
)

func runeAt(s *Screen, x, y int) rune {
	return s.GetCell(x, y).Rune
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("NewScreen(80, 24) = %dx%d", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Fatalf("New screen should hold uncolored spaces, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, '8', ColorYellow)
	if c := s.GetCell(5, 5); c.Rune != '8' || c.Color != ColorYellow {
		t.Errorf("GetCell(5, 5) = %+v, expected '8' in yellow", c)
	}

	s.Set(5, 5, 'X')
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorDefault {
		t.Errorf("Set should reset the color, got %+v", c)
	}

	// Out of bounds writes are ignored, reads return an uncolored space
	for _, p := range [][2]int{{-1, 0}, {100, 0}, {0, -1}, {0, 100}} {
		s.SetColor(p[0], p[1], 'A', ColorRed)
		if c := s.GetCell(p[0], p[1]); c != (Cell{Rune: ' '}) {
			t.Errorf("GetCell(%d, %d) = %+v, expected uncolored space", p[0], p[1], c)
		}
	}
}

func TestScreenClearResetsColors(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawTextColor(0, 1, "2048", ColorBrightYellow)

	s.Clear()
	for x := 0; x < 4; x++ {
		if c := s.GetCell(x, 1); c != (Cell{Rune: ' '}) {
			t.Errorf("After Clear, expected uncolored space at (%d, 1), got %+v", x, c)
		}
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill('#')

	want := strings.Repeat("#####\n", 4) + "#####"
	if got := s.String(); got != want {
		t.Errorf("After Fill, String() = %q", got)
	}
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColor(2, 1, "128", ColorMagenta)

	for i, ch := range "128" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Color != ColorMagenta {
			t.Errorf("expected %q in magenta at (%d, 1), got %+v", ch, 2+i, c)
		}
	}
	if s.GetCell(5, 1).Color != ColorDefault {
		t.Error("cells after the text should keep the default color")
	}

	// Clipped at the right edge, multi-byte runes take one cell each
	s.DrawTextColor(18, 0, "·2048", ColorGray)
	if runeAt(s, 18, 0) != '·' || runeAt(s, 19, 0) != '2' {
		t.Errorf("clipped text = %q%q", runeAt(s, 18, 0), runeAt(s, 19, 0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if runeAt(s, x, 2) != 'H' || runeAt(s, x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, row 2 = %q", strings.Split(s.String(), "\n")[2])
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetColor(3, 3, '4', ColorRed)
	s.DrawRect(NewRect(2, 2, 3, 3), ' ')

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Errorf("DrawRect should blank (%d, %d), got %+v", x, y, c)
			}
		}
	}

	s.DrawRect(NewRect(2, 2, 3, 3), '#')
	if runeAt(s, 1, 1) != ' ' || runeAt(s, 5, 5) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(7, 4)
	s.DrawBox(NewRect(1, 0, 5, 4))

	want := strings.Join([]string{
		" ┌───┐ ",
		" │   │ ",
		" │   │ ",
		" └───┘ ",
	}, "\n")
	if got := s.String(); got != want {
		t.Errorf("DrawBox:\n%s\nexpected:\n%s", got, want)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawTextColor(0, 1, "BBBBB", ColorGreen)
	s.DrawText(0, 2, "CCCCC")

	if got, want := s.String(), "AAAAA\nBBBBB\nCCCCC"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "2048", ColorBrightYellow)
	s.DrawTextColor(0, 5, "World", ColorRed)

	// Smaller keeps the top-left content and its colors
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.String(), "2048") {
		t.Errorf("Content should be preserved:\n%s", s.String())
	}
	if s.GetCell(0, 0).Color != ColorBrightYellow {
		t.Error("Colors should be preserved")
	}

	// Larger keeps it too, new cells are blank
	s.Resize(15, 8)
	if !strings.HasPrefix(s.String(), "2048") {
		t.Errorf("Content should be preserved after enlarging:\n%s", s.String())
	}
	if c := s.GetCell(14, 7); c != (Cell{Rune: ' '}) {
		t.Errorf("New cell = %+v, expected uncolored space", c)
	}
}
