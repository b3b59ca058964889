package core

import "testing"

func TestFieldCanvasScalesRects(t *testing.T) {
	s := NewScreen(40, 30)
	c := NewFieldCanvas(s, 400, 600) // 10 units per column, 20 per row

	c.FillRect(NewRect(100, 200, 50, 100), ColorGreen)

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			inside := x >= 10 && x < 15 && y >= 10 && y < 15
			if got := s.GetCell(x, y).Bg == ColorGreen; got != inside {
				t.Fatalf("cell (%d, %d) green=%v, expected %v", x, y, got, inside)
			}
		}
	}
}

func TestFieldCanvasTinyRectStillVisible(t *testing.T) {
	s := NewScreen(40, 30)
	c := NewFieldCanvas(s, 400, 600)

	c.FillRect(NewRect(0, 0, 1, 1), ColorRed)
	if s.GetCell(0, 0).Bg != ColorRed {
		t.Error("a non-empty rect should cover at least one cell")
	}

	c.FillRect(NewRect(20, 20, 0, 50), ColorBlue)
	if s.GetCell(2, 1).Bg == ColorBlue {
		t.Error("an empty rect should draw nothing")
	}
}

func TestFieldCanvasNegativeXClipped(t *testing.T) {
	s := NewScreen(40, 30)
	c := NewFieldCanvas(s, 400, 600)

	c.FillRect(NewRect(-30, 0, 50, 20), ColorGreen)
	if s.GetCell(0, 0).Bg != ColorGreen || s.GetCell(1, 0).Bg != ColorGreen {
		t.Error("visible part of a partly off-screen rect should be drawn")
	}
	if s.GetCell(2, 0).Bg == ColorGreen {
		t.Error("rect should end at field x=20")
	}
}

func TestFieldCanvasTextRoundTrip(t *testing.T) {
	s := NewScreen(40, 30)
	c := NewFieldCanvas(s, 400, 600)

	surf := c.RenderText("Score: 3", ColorWhite)
	if surf.W != 80 {
		t.Errorf("surface width = %d, expected 80 field units", surf.W)
	}
	if surf.H != 20 {
		t.Errorf("surface height = %d, expected 20 field units", surf.H)
	}

	c.Blit(surf, 10, 10)
	if got := s.Row(0)[1:9]; got != "Score: 3" {
		t.Errorf("blitted text = %q", got)
	}
	if s.GetCell(1, 0).Fg != ColorWhite {
		t.Error("blitted text should carry the surface color")
	}
}

func TestFieldCanvasClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'X')
	NewFieldCanvas(s, 400, 600).Clear(ColorBlack)

	if c := s.GetCell(1, 1); c.Rune != ' ' || c.Bg != ColorBlack {
		t.Errorf("Clear left %+v", c)
	}
}
