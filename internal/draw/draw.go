// Package draw renders to a terminal: a scaled half-block canvas, an ANSI
// chunk writer and a Stage that draws game visuals onto them.
package draw

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
