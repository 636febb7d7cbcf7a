package core

// Canvas is the drawing surface entities paint onto. Coordinates are world
// units with y growing downward. Callers clear it once per frame before any
// entity draws.
type Canvas interface {
	Clear()
	FillRect(x, y, w, h float64, color Color)
}

// FillRune is the character used to paint filled rectangles on a Screen.
const FillRune = '█'

// ScaledCanvas rasterises world-space rectangles onto a Screen, where each
// cell covers CellW x CellH world units. Rectangles are clipped to the screen.
type ScaledCanvas struct {
	screen *Screen
	cellW  float64
	cellH  float64
}

// NewScaledCanvas wraps a screen. Non-positive cell sizes default to 1.
func NewScaledCanvas(screen *Screen, cellW, cellH float64) *ScaledCanvas {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	return &ScaledCanvas{screen: screen, cellW: cellW, cellH: cellH}
}

// Clear blanks the whole screen.
func (c *ScaledCanvas) Clear() {
	c.screen.Clear()
}

// FillRect paints every cell the rectangle touches.
func (c *ScaledCanvas) FillRect(x, y, w, h float64, color Color) {
	if w <= 0 || h <= 0 {
		return
	}
	cx, cw := CellSpan(x, w, c.cellW)
	cy, ch := CellSpan(y, h, c.cellH)
	c.screen.DrawRect(NewRect(cx, cy, cw, ch), FillRune, color)
}

// DrawCmd is one recorded FillRect call.
type DrawCmd struct {
	X, Y, W, H float64
	Color      Color
}

// DrawList records FillRect calls for later replay by a frontend that owns
// its own draw pass. Rectangles entirely outside the bounds are dropped.
type DrawList struct {
	width  float64
	height float64
	cmds   []DrawCmd
}

// NewDrawList creates a list culling to [0,width) x [0,height).
// Zero or negative bounds disable culling.
func NewDrawList(width, height float64) *DrawList {
	return &DrawList{width: width, height: height}
}

// SetBounds updates the culling area.
func (d *DrawList) SetBounds(width, height float64) {
	d.width = width
	d.height = height
}

// Clear drops all recorded commands, keeping capacity.
func (d *DrawList) Clear() {
	d.cmds = d.cmds[:0]
}

// FillRect records a rectangle.
func (d *DrawList) FillRect(x, y, w, h float64, color Color) {
	if d.width > 0 && d.height > 0 {
		if x+w < 0 || y+h < 0 || x > d.width || y > d.height {
			return
		}
	}
	d.cmds = append(d.cmds, DrawCmd{X: x, Y: y, W: w, H: h, Color: color})
}

// Commands returns the recorded commands in draw order.
// The slice is reused by the next frame.
func (d *DrawList) Commands() []DrawCmd {
	return d.cmds
}

// Len returns the number of recorded commands.
func (d *DrawList) Len() int {
	return len(d.cmds)
}
