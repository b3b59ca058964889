package core

import "unicode/utf8"

// Surface is a rendered text block ready to be blitted.
// W and H are measured in the canvas' own units.
type Surface struct {
	Text  string
	Color Color
	W, H  int
}

// Canvas is the drawing capability games render through.
// Coordinates are in the game's field units, not screen cells.
type Canvas interface {
	// Clear paints the whole canvas with the background color.
	Clear(bg Color)
	// FillRect paints a solid rectangle.
	FillRect(r Rect, c Color)
	// RenderText measures text and returns a surface for Blit.
	RenderText(text string, c Color) Surface
	// Blit places a surface with its top-left corner at (x, y).
	Blit(s Surface, x, y int)
}

// FieldCanvas maps a fixed-size play field onto a Screen by scaling
// field units to character cells.
type FieldCanvas struct {
	screen *Screen
	fieldW int
	fieldH int
}

// NewFieldCanvas creates a canvas that projects a fieldW x fieldH area onto dst.
func NewFieldCanvas(dst *Screen, fieldW, fieldH int) *FieldCanvas {
	return &FieldCanvas{
		screen: dst,
		fieldW: Max(fieldW, 1),
		fieldH: Max(fieldH, 1),
	}
}

// col converts a field x coordinate to a screen column.
func (c *FieldCanvas) col(x int) int {
	return FloorDiv(x*c.screen.Width(), c.fieldW)
}

// row converts a field y coordinate to a screen row.
func (c *FieldCanvas) row(y int) int {
	return FloorDiv(y*c.screen.Height(), c.fieldH)
}

// Clear implements Canvas.
func (c *FieldCanvas) Clear(bg Color) {
	c.screen.Fill(Cell{Rune: ' ', Bg: bg})
}

// FillRect implements Canvas. Any non-empty rectangle covers at least one cell.
func (c *FieldCanvas) FillRect(r Rect, color Color) {
	if r.Empty() {
		return
	}
	x0, x1 := c.col(r.X), c.col(r.Right())
	y0, y1 := c.row(r.Y), c.row(r.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	c.screen.DrawRect(NewRect(x0, y0, x1-x0, y1-y0), color)
}

// RenderText implements Canvas. The surface occupies one screen row and one
// cell per rune, expressed back in field units.
func (c *FieldCanvas) RenderText(text string, color Color) Surface {
	sw := Max(c.screen.Width(), 1)
	sh := Max(c.screen.Height(), 1)
	n := utf8.RuneCountInString(text)
	return Surface{
		Text:  text,
		Color: color,
		W:     (n*c.fieldW + sw - 1) / sw,
		H:     (c.fieldH + sh - 1) / sh,
	}
}

// Blit implements Canvas.
func (c *FieldCanvas) Blit(s Surface, x, y int) {
	c.screen.DrawText(c.col(x), c.row(y), s.Text, s.Color)
}
