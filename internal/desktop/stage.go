package desktop

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/tomz197/starwarp/internal/object"
)

const (
	starTextureSize = 64

	// Debug font glyph size.
	glyphWidth  = 6
	glyphHeight = 16

	labelScale  = 2
	bannerScale = 5
)

var (
	textColor    = colornames.Red
	shipColor    = colornames.Deepskyblue
	bulletColor  = colornames.Gold
	asteroidFill = colornames.Dimgray
	asteroidEdge = colornames.Darkgray
)

// Stage is an object.Stage drawn onto an ebiten screen.
type Stage struct {
	object.Sprites
	star  *ebiten.Image
	white *ebiten.Image
	texts map[string]*ebiten.Image
}

// NewStage creates the desktop stage and its generated textures.
func NewStage() *Stage {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Stage{
		star:  ebiten.NewImageFromImage(starImage(starTextureSize)),
		white: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		texts: make(map[string]*ebiten.Image),
	}
}

// starImage is a soft white dot fading out towards the edge.
func starImage(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size-1) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)-c, float64(y)-c) / c
			a := uint8(255 * math.Max(0, 1-d*d))
			img.SetRGBA(x, y, color.RGBA{R: a, G: a, B: a, A: a})
		}
	}
	return img
}

// Draw renders every live sprite in creation order.
func (s *Stage) Draw(screen *ebiten.Image) {
	for _, sp := range s.Compact() {
		switch sp.Kind {
		case object.KindStar:
			s.drawStar(screen, sp)
		case object.KindShip:
			s.drawShip(screen, sp)
		case object.KindBullet:
			vector.DrawFilledCircle(screen, float32(sp.X), float32(sp.Y), float32(sp.Width/2), bulletColor, true)
		case object.KindAsteroid:
			w, h := float32(sp.Width*sp.ScaleX), float32(sp.Height*sp.ScaleY)
			vector.DrawFilledRect(screen, float32(sp.X), float32(sp.Y), w, h, asteroidFill, false)
			vector.StrokeRect(screen, float32(sp.X), float32(sp.Y), w, h, 2, asteroidEdge, false)
		case object.KindLabel:
			s.drawText(screen, sp.Text, sp.X, sp.Y, labelScale, false)
		case object.KindBanner:
			s.drawText(screen, sp.Text, sp.X, sp.Y, bannerScale, true)
		}
	}
}

func (s *Stage) drawStar(screen *ebiten.Image, sp *object.Sprite) {
	if sp.ScaleX <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-starTextureSize*0.5, -starTextureSize*0.7)
	op.GeoM.Scale(sp.ScaleX, sp.ScaleY)
	op.GeoM.Rotate(sp.Rotation)
	op.GeoM.Translate(sp.X, sp.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.star, op)
}

// drawShip fills a triangle whose base is centred on the anchor.
func (s *Stage) drawShip(screen *ebiten.Image, sp *object.Sprite) {
	w, h := float32(sp.Width*sp.ScaleX), float32(sp.Height*sp.ScaleY)
	x, y := float32(sp.X), float32(sp.Y)
	vs := []ebiten.Vertex{
		{DstX: x, DstY: y - h},
		{DstX: x + w/2, DstY: y},
		{DstX: x - w/2, DstY: y},
	}
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(shipColor.R) / 0xFF
		vs[i].ColorG = float32(shipColor.G) / 0xFF
		vs[i].ColorB = float32(shipColor.B) / 0xFF
		vs[i].ColorA = 1
	}
	screen.DrawTriangles(vs, []uint16{0, 1, 2}, s.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
	vector.StrokeLine(screen, x-w/2, y, x+w/2, y, 2, shipColor, true)
}

// drawText draws debug-font text scaled up and tinted. Rendered strings are
// cached.
func (s *Stage) drawText(screen *ebiten.Image, text string, x, y, scale float64, centred bool) {
	if text == "" {
		return
	}
	img, ok := s.texts[text]
	if !ok {
		img = ebiten.NewImage(len(text)*glyphWidth+2, glyphHeight)
		ebitenutil.DebugPrintAt(img, text, 0, 0)
		s.texts[text] = img
	}
	if centred {
		b := img.Bounds()
		x -= float64(b.Dx()) * scale / 2
		y -= float64(b.Dy()) * scale / 2
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(textColor)
	screen.DrawImage(img, op)
}
