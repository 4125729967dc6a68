package draw

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/starwarp/internal/object"
)

// Star sprites are this many logical pixels across at scale 1.
const starTextureSize = 64

// Longest star streak drawn, in logical pixels.
const maxStreak = 240

// Stage is an object.Stage that draws onto a Canvas. Visuals are drawn in
// creation order; text is written over the rendered canvas.
type Stage struct {
	object.Sprites
	labelStyle  lipgloss.Style
	bannerStyle lipgloss.Style
}

// NewStage creates a terminal stage. Styles are rendered with r, or the
// default renderer when r is nil.
func NewStage(r *lipgloss.Renderer) *Stage {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	red := lipgloss.Color("#FF0000")
	return &Stage{
		labelStyle: r.NewStyle().Foreground(red).Bold(true),
		bannerStyle: r.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(red).
			Bold(true).
			Padding(0, 2),
	}
}

// Draw clears c, draws every live visual, renders c into cw and writes
// text on top. Destroyed visuals are dropped.
func (s *Stage) Draw(c *Canvas, cw *ChunkWriter) {
	live := s.Compact()
	c.Clear()
	for _, v := range live {
		switch v.Kind {
		case object.KindStar:
			drawStar(c, v)
		case object.KindShip:
			drawShip(c, v)
		case object.KindBullet:
			drawBullet(c, v)
		case object.KindAsteroid:
			drawAsteroid(c, v)
		}
	}
	c.Render(cw)

	for _, v := range live {
		if v.Text == "" {
			continue
		}
		col, row := c.LogicalToTerminal(v.X, v.Y)
		switch v.Kind {
		case object.KindLabel:
			WriteStyled(c, cw, col, row, s.labelStyle.Render(v.Text))
		case object.KindBanner:
			text := s.bannerStyle.Render(v.Text)
			WriteStyled(c, cw, col-lipgloss.Width(text)/2, row, text)
		}
	}
}

// WriteStyled writes a single line of styled text at a 1-based canvas cell
// and marks the covered cells for redraw.
func WriteStyled(c *Canvas, cw *ChunkWriter, col, row int, text string) {
	col = max(col, 1)
	cw.WriteAt(col, row, text)
	c.Invalidate(col, row, lipgloss.Width(text))
}

// drawStar plots a point, stretched into a streak along its rotation when
// warping.
func drawStar(c *Canvas, v *object.Sprite) {
	if v.ScaleX <= 0 || !c.Visible(v.X, v.Y, 0) {
		return
	}
	c.SetFloat(v.X, v.Y)
	length := math.Min((v.ScaleY-v.ScaleX)*starTextureSize, maxStreak)
	if length < 1 {
		return
	}
	// Rotation points the sprite's long axis away from the centre; the anchor
	// sits 70% of the way along it.
	dx := math.Cos(v.Rotation - math.Pi/2)
	dy := math.Sin(v.Rotation - math.Pi/2)
	c.DrawLine(
		Point{X: v.X - dx*length*0.7, Y: v.Y - dy*length*0.7},
		Point{X: v.X + dx*length*0.3, Y: v.Y + dy*length*0.3},
	)
}

// drawShip draws a filled triangle with its base centred on the anchor.
func drawShip(c *Canvas, v *object.Sprite) {
	w, h := v.Width*v.ScaleX, v.Height*v.ScaleY
	pts := c.BorrowPoints(3)
	pts[0] = Point{X: v.X, Y: v.Y - h}
	pts[1] = Point{X: v.X + w/2, Y: v.Y}
	pts[2] = Point{X: v.X - w/2, Y: v.Y}
	c.DrawPolygon(pts, true)
}

// drawBullet draws a filled diamond turned by the bullet's spin.
func drawBullet(c *Canvas, v *object.Sprite) {
	if !c.Visible(v.X, v.Y, v.Width) {
		return
	}
	r := v.Width / 2 * 1.5
	pts := c.BorrowPoints(4)
	for i := range pts {
		a := v.Rotation + float64(i)*math.Pi/2
		pts[i] = Point{X: v.X + math.Cos(a)*r, Y: v.Y + math.Sin(a)*r}
	}
	c.DrawPolygon(pts, true)
}

// drawAsteroid outlines an octagon inscribed in the asteroid's box.
func drawAsteroid(c *Canvas, v *object.Sprite) {
	w, h := v.Width*v.ScaleX, v.Height*v.ScaleY
	cx, cy := v.X+w/2, v.Y+h/2
	if !c.Visible(cx, cy, math.Max(w, h)) {
		return
	}
	pts := c.BorrowPoints(8)
	for i := range pts {
		a := float64(i)*math.Pi/4 + math.Pi/8
		pts[i] = Point{X: cx + math.Cos(a)*w/2, Y: cy + math.Sin(a)*h/2}
	}
	c.DrawPolygon(pts, false)
}
