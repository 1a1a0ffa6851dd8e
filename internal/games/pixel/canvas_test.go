package pixel

import (
	"testing"

	"flapterm/internal/core"
)

func TestCanvasDimensions(t *testing.T) {
	c := NewCanvas(10, 5)

	if c.Width() != 10 {
		t.Errorf("Width() = %d, want 10", c.Width())
	}
	if c.Rows() != 5 {
		t.Errorf("Rows() = %d, want 5", c.Rows())
	}
	// Half-blocks double the vertical resolution
	if c.Height() != 10 {
		t.Errorf("Height() = %d, want 10 pixels", c.Height())
	}
}

func TestCanvasSetGet(t *testing.T) {
	c := NewCanvas(10, 5)

	c.Set(3, 7)
	if !c.Get(3, 7) {
		t.Error("pixel (3, 7) should be set")
	}
	if c.Get(3, 6) {
		t.Error("pixel (3, 6) should be clear")
	}

	// Out-of-bounds writes are ignored, reads return false
	c.Set(-1, 0)
	c.Set(10, 0)
	c.Set(0, 10)
	if c.Get(-1, 0) || c.Get(10, 0) || c.Get(0, 10) {
		t.Error("out-of-bounds pixels should read as clear")
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(1, 1)
	c.Set(2, 3)

	c.Clear()

	if c.Get(1, 1) || c.Get(2, 3) {
		t.Error("Clear should reset all pixels")
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(10, 5)
	c.Set(0, 0)

	c.Resize(6, 3)

	if c.Width() != 6 || c.Rows() != 3 || c.Height() != 6 {
		t.Errorf("size after resize = %dx%d rows (%d px)", c.Width(), c.Rows(), c.Height())
	}
	if c.Get(0, 0) {
		t.Error("Resize should drop content")
	}
}

func TestCanvasFillRect(t *testing.T) {
	c := NewCanvas(10, 5)

	c.FillRect(2, 3, 3, 4)

	for y := 3; y < 7; y++ {
		for x := 2; x < 5; x++ {
			if !c.Get(x, y) {
				t.Fatalf("pixel (%d, %d) should be set", x, y)
			}
		}
	}
	if c.Get(1, 3) || c.Get(5, 3) || c.Get(2, 2) || c.Get(2, 7) {
		t.Error("fill leaked outside the rectangle")
	}

	// Fills crossing the edge are clipped
	c.FillRect(8, 8, 5, 5)
	if c.Get(9, 9) != true {
		t.Error("in-bounds part of a clipped fill should be set")
	}
}

func TestCanvasFlush(t *testing.T) {
	c := NewCanvas(4, 2)
	screen := core.NewScreen(4, 3)

	c.Set(0, 0) // Top pixel only
	c.Set(1, 1) // Bottom pixel only
	c.Set(2, 0) // Both pixels
	c.Set(2, 1)

	screen.Set(3, 1, '.') // Marker to prove empty cells stay untouched

	c.Flush(screen, 1, core.ColorGreen)

	if got := screen.GetCell(0, 1); got.Rune != BlockUpperHalf || got.Color != core.ColorGreen {
		t.Errorf("cell (0, 1) = %+v, want upper half block in green", got)
	}
	if got := screen.Get(1, 1); got != BlockLowerHalf {
		t.Errorf("cell (1, 1) = %q, want lower half block", got)
	}
	if got := screen.Get(2, 1); got != BlockFull {
		t.Errorf("cell (2, 1) = %q, want full block", got)
	}
	if got := screen.Get(3, 1); got != '.' {
		t.Errorf("cell (3, 1) = %q, empty canvas cells must not overwrite", got)
	}

	// Row offset: nothing lands on the HUD row
	if got := screen.Get(0, 0); got != ' ' {
		t.Errorf("cell (0, 0) = %q, want space above the canvas", got)
	}
}

func TestCanvasFlushLayers(t *testing.T) {
	c := NewCanvas(3, 1)
	screen := core.NewScreen(3, 1)

	c.FillRect(0, 0, 1, 2)
	c.Flush(screen, 0, core.ColorGreen)

	c.Clear()
	c.FillRect(1, 0, 1, 2)
	c.Flush(screen, 0, core.ColorYellow)

	if got := screen.GetCell(0, 0); got.Rune != BlockFull || got.Color != core.ColorGreen {
		t.Errorf("first layer cell = %+v", got)
	}
	if got := screen.GetCell(1, 0); got.Rune != BlockFull || got.Color != core.ColorYellow {
		t.Errorf("second layer cell = %+v", got)
	}
}
