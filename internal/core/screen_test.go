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

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	// Fill with some characters
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.Set(x, y, 'X')
		}
	}

	s.Clear()

	// Should all be spaces now
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("After Clear, expected space at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	// Resize smaller - should preserve top-left content
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}

	row0 := s.Row(0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}

	// Resize larger - old content should still be there
	s.Resize(15, 8)
	row0 = s.Row(0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row0)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	// Out of bounds row
	outOfBounds := s.Row(-1)
	if outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetCell(1, 1, '#', Color("1"))

	cell := s.GetCell(1, 1)
	if cell.Rune != '#' || cell.Color != Color("1") {
		t.Errorf("GetCell(1, 1) = %+v, expected '#' in red", cell)
	}

	s.DrawText(0, 0, "ab")
	if s.GetCell(0, 0).Color != ColorDefault {
		t.Errorf("DrawText should use the default color, got %q", s.GetCell(0, 0).Color)
	}

	if s.GetCell(9, 9) != (Cell{Rune: ' '}) {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawTextColor(0, 0, "±12", Color("2"))

	if s.Row(0) != "±12   " {
		t.Errorf("Row(0) = %q, expected %q", s.Row(0), "±12   ")
	}
	if s.GetCell(2, 0).Color != Color("2") {
		t.Errorf("expected green text, got %q", s.GetCell(2, 0).Color)
	}
}

func TestScreenBlitTransparency(t *testing.T) {
	s := NewScreen(5, 3)
	for y := 0; y < 3; y++ {
		s.DrawText(0, y, ".....")
	}

	s.Blit(1, 0, []string{
		"#-#",
		" # ",
	}, Color("3"))

	tests := []struct {
		x, y int
		want rune
	}{
		{1, 0, '#'},
		{2, 0, '-'},
		{3, 0, '#'},
		{1, 1, '.'}, // space is transparent
		{2, 1, '#'},
		{3, 1, '.'},
		{0, 0, '.'},
		{2, 2, '.'},
	}

	for _, tc := range tests {
		if got := s.Get(tc.x, tc.y); got != tc.want {
			t.Errorf("Get(%d, %d) = %q, expected %q", tc.x, tc.y, got, tc.want)
		}
	}
	if s.GetCell(2, 1).Color != Color("3") {
		t.Errorf("blitted cell color = %q, expected yellow", s.GetCell(2, 1).Color)
	}
}

func TestScreenBlitClipsNegativeOrigin(t *testing.T) {
	s := NewScreen(3, 3)
	s.Blit(-1, -1, []string{"abc", "def", "ghi"}, ColorDefault)

	if s.Row(0) != "ef " {
		t.Errorf("Row(0) = %q, expected %q", s.Row(0), "ef ")
	}
	if s.Row(1) != "hi " {
		t.Errorf("Row(1) = %q, expected %q", s.Row(1), "hi ")
	}
}
