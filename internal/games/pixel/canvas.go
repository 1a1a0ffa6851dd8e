package pixel

import "flapterm/internal/core"

// Half-block characters give the canvas twice the vertical resolution of
// the cell grid: each terminal cell holds two stacked pixels.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Canvas is a 1-bit drawing buffer with 2x vertical resolution. The
// x axis is in terminal columns, the y axis in pixels (half-cells).
// Games draw into it each tick and flush it onto the screen buffer.
type Canvas struct {
	cols   int    // Terminal columns
	rows   int    // Terminal rows covered by the canvas
	height int    // rows * 2 pixels
	pixels []bool // Flat slice: [y*cols + x]
}

// NewCanvas creates a canvas covering the given number of terminal
// columns and rows.
func NewCanvas(cols, rows int) *Canvas {
	return &Canvas{
		cols:   cols,
		rows:   rows,
		height: rows * 2,
		pixels: make([]bool, cols*rows*2),
	}
}

// Resize adjusts the canvas to new terminal dimensions, dropping any
// current content.
func (c *Canvas) Resize(cols, rows int) {
	if cols == c.cols && rows == c.rows {
		c.Clear()
		return
	}
	c.cols = cols
	c.rows = rows
	c.height = rows * 2
	c.pixels = make([]bool, cols*rows*2)
}

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// Width returns the canvas width in columns.
func (c *Canvas) Width() int {
	return c.cols
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Rows returns the number of terminal rows the canvas covers.
func (c *Canvas) Rows() int {
	return c.rows
}

// Set turns on the pixel at column x, pixel row y. Out-of-bounds
// coordinates are silently ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || x >= c.cols || y < 0 || y >= c.height {
		return
	}
	c.pixels[y*c.cols+x] = true
}

// Get reports whether the pixel at (x, y) is on.
func (c *Canvas) Get(x, y int) bool {
	if x < 0 || x >= c.cols || y < 0 || y >= c.height {
		return false
	}
	return c.pixels[y*c.cols+x]
}

// FillRect turns on every pixel in a rectangle given in canvas
// coordinates (columns by pixels).
func (c *Canvas) FillRect(x, y, w, h int) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			c.Set(px, py)
		}
	}
}

// Flush converts pixel pairs to half-block characters and writes them
// into the screen buffer starting at row offsetY. Cells with neither
// pixel set are left untouched, so several layers can be flushed in
// sequence with different colors.
func (c *Canvas) Flush(dst *core.Screen, offsetY int, color core.Color) {
	for row := 0; row < c.rows; row++ {
		topOffset := (row * 2) * c.cols
		bottomOffset := (row*2 + 1) * c.cols

		for col := 0; col < c.cols; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			var ch rune
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			default:
				continue // Skip empty cells
			}
			dst.SetColor(col, offsetY+row, ch, color)
		}
	}
}
