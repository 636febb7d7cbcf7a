package core

import "testing"

func TestScaledCanvasFillRect(t *testing.T) {
	s := NewScreen(20, 10)
	c := NewScaledCanvas(s, 10, 20)

	// 30x30 world units on 10x20 cells covers 3 columns and 2 rows.
	c.FillRect(50, 30, 30, 30, ColorRed)

	for y := 1; y < 3; y++ {
		for x := 5; x < 8; x++ {
			if cell := s.GetCell(x, y); cell.Rune != FillRune || cell.Color != ColorRed {
				t.Errorf("expected red fill at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
	if s.GetCell(8, 1).Rune != ' ' || s.GetCell(5, 3).Rune != ' ' {
		t.Error("fill should not spill past the covered cells")
	}
}

func TestScaledCanvasClipsAndClears(t *testing.T) {
	s := NewScreen(10, 5)
	c := NewScaledCanvas(s, 10, 20)

	c.FillRect(-100000, 40, 500, 10, ColorDefault) // far left, off screen
	c.FillRect(80, 80, 500, 10, ColorWhite)        // runs off the right edge

	if s.GetCell(9, 4).Rune != FillRune {
		t.Error("rectangle crossing the edge should be drawn up to the edge")
	}
	if s.GetCell(0, 2).Rune != ' ' {
		t.Error("off-screen rectangle should not be drawn")
	}

	c.Clear()
	if s.GetCell(9, 4).Rune != ' ' {
		t.Error("Clear should blank the screen")
	}
}

func TestScaledCanvasIgnoresEmptyRect(t *testing.T) {
	s := NewScreen(5, 5)
	c := NewScaledCanvas(s, 1, 1)

	c.FillRect(1, 1, 0, 3, ColorRed)
	c.FillRect(1, 1, 3, -1, ColorRed)

	if s.String() != NewScreen(5, 5).String() {
		t.Error("zero or negative sized rectangles should not draw")
	}
}

func TestDrawListRecordsAndCulls(t *testing.T) {
	d := NewDrawList(800, 600)

	d.FillRect(10, 10, 30, 30, ColorRed)
	d.FillRect(-600, 10, 500, 10, ColorDefault) // entirely left
	d.FillRect(900, 10, 50, 10, ColorDefault)   // entirely right
	d.FillRect(-20, 590, 50, 10, ColorDefault)  // straddles the corner

	if d.Len() != 2 {
		t.Fatalf("expected 2 recorded commands, got %d", d.Len())
	}
	first := d.Commands()[0]
	if first.X != 10 || first.W != 30 || first.Color != ColorRed {
		t.Errorf("unexpected first command %+v", first)
	}

	d.Clear()
	if d.Len() != 0 {
		t.Errorf("Clear should drop commands, %d left", d.Len())
	}
}

func TestDrawListWithoutBounds(t *testing.T) {
	d := NewDrawList(0, 0)
	d.FillRect(-1e6, -1e6, 1, 1, ColorDefault)
	if d.Len() != 1 {
		t.Errorf("unbounded list should keep everything, got %d", d.Len())
	}
}
