package viz

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/fractree/internal/render"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a braille sub-pixel grid. Each cell keeps the colour of the last
// stroke that touched it.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]color.Color
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]color.Color, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]color.Color, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
	return c
}

// SubWidth and SubHeight return the canvas size in sub-pixels.
func (c *Canvas) SubWidth() int  { return c.Width * 2 }
func (c *Canvas) SubHeight() int { return c.Height * 4 }

// Set sets a pixel at (x, y) in sub-pixel coordinates.
func (c *Canvas) Set(x, y int, col color.Color) {
	if x < 0 || y < 0 {
		return
	}

	col0 := x / 2
	row := y / 4
	if col0 >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col0] |= rune(pixelMap[y%4][x%2])
	if col != nil {
		c.Colors[row][col0] = col
	}
}

// IsSet reports whether the sub-pixel (x, y) is lit.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Colors[i][j] = nil
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm. Pixels are stamped as
// squares of the given radius.
func (c *Canvas) DrawLine(x0, y0, x1, y1, radius int, col color.Color) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.stamp(x0, y0, radius, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) stamp(x, y, r int, col color.Color) {
	for j := -r; j <= r; j++ {
		for i := -r; i <= r; i++ {
			c.Set(x+i, y+j, col)
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Styled renders the canvas with per-cell foreground colours on bg. Runs of
// equally coloured cells share one style.
func (c *Canvas) Styled(bg color.Color) string {
	base := lipgloss.NewStyle()
	if bg != nil {
		base = base.Background(lipgloss.Color(render.Hex(bg)))
	}

	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && sameColor(c.Colors[i][j], c.Colors[i][start]) {
				continue
			}
			style := base
			if col := c.Colors[i][start]; col != nil {
				style = style.Foreground(lipgloss.Color(render.Hex(col)))
			}
			b.WriteString(style.Render(string(row[start:j])))
			start = j
		}
		b.WriteString("\n")
	}
	return b.String()
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
