package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// canvas is a braille micro-pixel buffer with one color per cell.
// Painting is last-writer-wins per cell, matching full-repaint draws.
type canvas struct {
	w, h  int        // cells
	mask  [][]uint8  // per-cell braille bits
	color [][]string // per-cell hex color
}

func newCanvas(w, h int) *canvas {
	mask := make([][]uint8, h)
	color := make([][]string, h)
	for i := range mask {
		mask[i] = make([]uint8, w)
		color[i] = make([]string, w)
	}
	return &canvas{w: w, h: h, mask: mask, color: color}
}

// set lights a micro-pixel (2x4 per cell) in the given color.
func (c *canvas) set(mx, my int, col string) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/microX, mx%microX
	cy, ry := my/microY, my%microY
	if cy >= c.h || cx >= c.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	c.mask[cy][cx] |= bit
	c.color[cy][cx] = col
}

// line draws a micro-pixel line using Bresenham.
func (c *canvas) line(x0, y0, x1, y1 int, col string) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
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

// render flattens the buffer into styled terminal lines.
func (c *canvas) render() string {
	styles := make(map[string]lipgloss.Style)
	lines := make([]string, c.h)
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		b.Reset()
		// batch runs of same-colored cells to keep ANSI output small
		runColor := ""
		var run []rune
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runColor == "" {
				b.WriteString(string(run))
			} else {
				st, ok := styles[runColor]
				if !ok {
					st = lipgloss.NewStyle().Foreground(lipgloss.Color(runColor))
					styles[runColor] = st
				}
				b.WriteString(st.Render(string(run)))
			}
			run = run[:0]
		}
		for x := 0; x < c.w; x++ {
			mask := c.mask[y][x]
			ch := ' '
			col := ""
			if mask != 0 {
				ch = rune(0x2800 + int(mask))
				col = c.color[y][x]
			}
			if col != runColor {
				flush()
				runColor = col
			}
			run = append(run, ch)
		}
		flush()
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
