package core

import "math"

// Renderer is the drawing capability games render through.
// Coordinates are world units; the implementation decides the mapping.
type Renderer interface {
	// Clear erases the drawing surface.
	Clear()
	// DrawRect fills the rectangle with top-left (x, y) and size w×h.
	DrawRect(x, y, w, h float64)
	// DrawCircle fills a circle centered on (x, y).
	DrawCircle(x, y, r float64)
	// SetColor selects the fill color for following draws.
	SetColor(c Color)
	// SetOrigin translates subsequent draws so that world (0, 0) lands at (x, y).
	SetOrigin(x, y float64)
}

// Runes used to rasterize filled shapes.
const (
	RectRune   = '█'
	CircleRune = '●'
)

// Canvas is a Renderer that rasterizes a world of worldW×worldH units onto
// a viewport of a Screen. Each axis is scaled independently so the whole
// world always fits the viewport.
type Canvas struct {
	screen  *Screen
	view    Rect
	worldW  float64
	worldH  float64
	originX float64
	originY float64
	color   Color
}

// NewCanvas creates a canvas drawing into view on screen.
func NewCanvas(screen *Screen, view Rect, worldW, worldH float64) *Canvas {
	return &Canvas{
		screen: screen,
		view:   view,
		worldW: worldW,
		worldH: worldH,
	}
}

// SetView changes the viewport, e.g. after a terminal resize.
func (c *Canvas) SetView(view Rect) {
	c.view = view
}

// View returns the current viewport.
func (c *Canvas) View() Rect {
	return c.view
}

// SetWorld changes the world dimensions mapped onto the viewport.
func (c *Canvas) SetWorld(w, h float64) {
	c.worldW = w
	c.worldH = h
}

// scale returns cells per world unit on each axis.
func (c *Canvas) scale() (float64, float64) {
	if c.worldW <= 0 || c.worldH <= 0 {
		return 0, 0
	}
	return float64(c.view.W) / c.worldW, float64(c.view.H) / c.worldH
}

// toCell maps a world point to fractional screen-cell coordinates.
func (c *Canvas) toCell(x, y float64) (float64, float64) {
	sx, sy := c.scale()
	return (x+c.originX)*sx + float64(c.view.X), (y+c.originY)*sy + float64(c.view.Y)
}

// Clear erases the viewport and resets the origin.
func (c *Canvas) Clear() {
	c.originX, c.originY = 0, 0
	for y := c.view.Y; y < c.view.Bottom(); y++ {
		for x := c.view.X; x < c.view.Right(); x++ {
			c.screen.SetCell(x, y, blank)
		}
	}
}

// SetColor selects the fill color.
func (c *Canvas) SetColor(col Color) {
	c.color = col
}

// SetOrigin translates the world origin.
func (c *Canvas) SetOrigin(x, y float64) {
	c.originX, c.originY = x, y
}

// DrawRect fills every cell the rectangle touches.
// A rectangle smaller than a cell still fills one cell.
func (c *Canvas) DrawRect(x, y, w, h float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	x0, y0 := c.toCell(x, y)
	x1, y1 := c.toCell(x+w, y+h)

	cx0, cy0 := int(math.Floor(x0)), int(math.Floor(y0))
	cx1, cy1 := int(math.Ceil(x1))-1, int(math.Ceil(y1))-1
	cx1, cy1 = max(cx1, cx0), max(cy1, cy0)

	for cy := cy0; cy <= cy1; cy++ {
		for cx := cx0; cx <= cx1; cx++ {
			c.plot(cx, cy, RectRune)
		}
	}
}

// DrawCircle fills the cells whose centers fall inside the circle.
// The cell under the center is always drawn.
func (c *Canvas) DrawCircle(x, y, r float64) {
	sx, sy := c.scale()
	cx, cy := c.toCell(x, y)
	rx, ry := math.Abs(r*sx), math.Abs(r*sy)

	c.plot(int(math.Floor(cx)), int(math.Floor(cy)), CircleRune)
	if rx == 0 || ry == 0 {
		return
	}

	for row := int(math.Floor(cy - ry)); row <= int(math.Ceil(cy+ry)); row++ {
		for col := int(math.Floor(cx - rx)); col <= int(math.Ceil(cx+rx)); col++ {
			dx := (float64(col) + 0.5 - cx) / rx
			dy := (float64(row) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				c.plot(col, row, CircleRune)
			}
		}
	}
}

// plot sets a cell if it lies inside the viewport.
func (c *Canvas) plot(x, y int, r rune) {
	if x < c.view.X || x >= c.view.Right() || y < c.view.Y || y >= c.view.Bottom() {
		return
	}
	c.screen.SetCell(x, y, Cell{Rune: r, Color: c.color})
}
