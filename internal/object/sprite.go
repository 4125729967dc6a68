package object

// Sprite is a Visual that records its properties for a renderer to read.
type Sprite struct {
	Kind           Kind
	X, Y           float64
	Width, Height  float64
	ScaleX, ScaleY float64
	Rotation       float64
	Text           string
	Destroyed      bool
}

func (s *Sprite) SetPosition(x, y float64)      { s.X, s.Y = x, y }
func (s *Sprite) SetSize(width, height float64) { s.Width, s.Height = width, height }
func (s *Sprite) SetScale(sx, sy float64)       { s.ScaleX, s.ScaleY = sx, sy }
func (s *Sprite) SetRotation(angle float64)     { s.Rotation = angle }
func (s *Sprite) SetText(text string)           { s.Text = text }
func (s *Sprite) Destroy()                      { s.Destroyed = true }

// Sprites is a Stage keeping sprites in creation order, which is also the
// draw order.
type Sprites struct {
	list []*Sprite
}

// Create implements Stage.
func (s *Sprites) Create(kind Kind) Visual {
	sp := &Sprite{Kind: kind, ScaleX: 1, ScaleY: 1}
	s.list = append(s.list, sp)
	return sp
}

// Compact drops destroyed sprites and returns the live ones in draw order.
// The slice is valid until the next Create or Compact.
func (s *Sprites) Compact() []*Sprite {
	kept := s.list[:0]
	for _, sp := range s.list {
		if !sp.Destroyed {
			kept = append(kept, sp)
		}
	}
	clear(s.list[len(kept):])
	s.list = kept
	return kept
}

// Len returns the number of live sprites.
func (s *Sprites) Len() int {
	n := 0
	for _, sp := range s.list {
		if !sp.Destroyed {
			n++
		}
	}
	return n
}
