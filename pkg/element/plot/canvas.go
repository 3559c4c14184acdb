package plot

import "strings"

// brailleBits maps a dot position within a cell, [row][col], to its bit in
// the braille pattern block starting at U+2800.
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// canvas is a w by h cell braille bitmap addressed in dots, origin top left.
type canvas struct {
	w, h  int
	cells []uint8
}

func newCanvas(w, h int) *canvas {
	return &canvas{w: w, h: h, cells: make([]uint8, w*h)}
}

// dotsX and dotsY return the canvas size in dots.
func (c *canvas) dotsX() int { return 2 * c.w }
func (c *canvas) dotsY() int { return 4 * c.h }

// set turns on the dot at (x, y). Dots outside the canvas are ignored.
func (c *canvas) set(x, y int) {
	if x < 0 || y < 0 || x >= c.dotsX() || y >= c.dotsY() {
		return
	}
	c.cells[(y/4)*c.w+x/2] |= brailleBits[y%4][x%2]
}

// line draws a straight segment between two dots (Bresenham).
func (c *canvas) line(x0, y0, x1, y1 int) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// rows returns one string per cell row. Empty cells are spaces.
func (c *canvas) rows() []string {
	out := make([]string, c.h)
	var sb strings.Builder
	for r := range c.h {
		sb.Reset()
		for _, bits := range c.cells[r*c.w : (r+1)*c.w] {
			if bits == 0 {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteRune(rune(0x2800 + int(bits)))
		}
		out[r] = sb.String()
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
