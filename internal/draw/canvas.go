package draw

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block
// characters. Shapes are given in logical coordinates and scaled to the
// terminal area the canvas occupies.
type Canvas struct {
	termWidth      int    // Terminal columns covered by the canvas
	termHeight     int    // Terminal rows covered by the canvas
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x]
	shown          []rune // Cell last written per [row * termWidth + col]; 0 is unknown

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets of the render area when the terminal is larger
	// than the maximum resolution.
	offsetCol int
	offsetRow int

	scaledBuf       []Point
	intersectionBuf []float64
	polygonBuf      []Point
}

// NewScaledCanvas creates a canvas mapping a logicalWidth x logicalHeight
// play area onto termWidth x termHeight terminal cells.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping the
// logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	if c.pixels == nil || termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]bool, c.subPixelHeight*termWidth)
		c.shown = make([]rune, termHeight*termWidth)
	}
	c.scaleX = float64(c.termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// Offset returns the 0-based column and row offset of the render area.
func (c *Canvas) Offset() (col, row int) {
	return c.offsetCol, c.offsetRow
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// Pixel reports whether the sub-pixel at (x, y) is set.
func (c *Canvas) Pixel(x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

// SetFloat sets the pixel under a logical coordinate.
func (c *Canvas) SetFloat(x, y float64) {
	c.setPixel(int(math.Round(x*c.scaleX)), int(math.Round(y*c.scaleY)))
}

// Visible reports whether a logical point lies within the play area widened
// by margin on every side.
func (c *Canvas) Visible(x, y, margin float64) bool {
	return x >= -margin && x <= c.logicalWidth+margin &&
		y >= -margin && y <= c.logicalHeight+margin
}

// DrawLine draws a line using Bresenham's algorithm. Lines with an endpoint
// far outside the canvas are dropped.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))
	if !c.nearCanvas(x1, y1) || !c.nearCanvas(x2, y2) {
		return
	}

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// nearCanvas bounds the work a single line can cost.
func (c *Canvas) nearCanvas(x, y int) bool {
	return x >= -c.termWidth && x < 2*c.termWidth &&
		y >= -c.subPixelHeight && y < 2*c.subPixelHeight
}

// DrawPolygon draws a polygon outline, filling the interior when filled is
// true.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points)
	}
	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// fillPolygon fills a polygon with a scanline pass in pixel space.
func (c *Canvas) fillPolygon(points []Point) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	yStart := max(int(math.Floor(minY)), 0)
	yEnd := min(int(math.Ceil(maxY)), c.subPixelHeight-1)

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5
		intersections := c.intersectionBuf[:0]
		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections
		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := max(int(math.Ceil(intersections[i])), 0)
			xEnd := min(int(math.Floor(intersections[i+1])), c.termWidth-1)
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// Render writes the cells that changed since the previous Render to cw.
func (c *Canvas) Render(cw *ChunkWriter) {
	var cell [4]byte
	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth
		lastCol := -2

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			ch := BlockEmpty
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			}
			idx := row*c.termWidth + col
			if c.shown[idx] == ch {
				continue
			}
			c.shown[idx] = ch
			// Adjacent cells share one cursor move.
			if col != lastCol+1 {
				cw.MoveCursor(col+1, row+1)
			}
			n := utf8.EncodeRune(cell[:], ch)
			cw.Write(cell[:n])
			lastCol = col
		}
	}
}

// Invalidate forgets what was shown in width cells starting at the 1-based
// cell (col, row), so the next Render rewrites them. Called for cells covered
// by text overlays.
func (c *Canvas) Invalidate(col, row, width int) {
	row--
	if row < 0 || row >= c.termHeight {
		return
	}
	for x := max(col-1, 0); x < min(col-1+width, c.termWidth); x++ {
		c.shown[row*c.termWidth+x] = 0
	}
}

// ForceRedraw makes the next Render rewrite every cell.
func (c *Canvas) ForceRedraw() {
	clear(c.shown)
}

// RenderBorder draws a box around the render area when the terminal exceeds
// the maximum resolution on either axis.
func (c *Canvas) RenderBorder(cw *ChunkWriter) {
	hasH := c.offsetCol >= 1
	hasV := c.offsetRow >= 1
	line := strings.Repeat("─", c.termWidth)

	// Positions relative to the canvas origin; cw adds the offset back.
	if hasV {
		if hasH {
			cw.MoveCursor(0, 0)
			cw.WriteString("┌" + line + "┐")
			cw.MoveCursor(0, c.termHeight+1)
			cw.WriteString("└" + line + "┘")
		} else {
			cw.MoveCursor(1, 0)
			cw.WriteString(line)
			cw.MoveCursor(1, c.termHeight+1)
			cw.WriteString(line)
		}
	}
	if hasH {
		for row := 1; row <= c.termHeight; row++ {
			cw.MoveCursor(0, row)
			cw.WriteString("│")
			cw.MoveCursor(c.termWidth+1, row)
			cw.WriteString("│")
		}
	}
}

// TerminalWidth returns the terminal column count covered by the canvas.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the terminal row count covered by the canvas.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to a 1-based canvas cell.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}

// BorrowPoints returns a reusable slice of n Points, valid until the next
// call.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}
