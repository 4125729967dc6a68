package object

// Text is a piece of on-screen text backed by a visual.
type Text struct {
	Value  string
	X, Y   float64
	visual Visual
}

// NewText creates a text visual of the given kind at (x, y).
func NewText(kind Kind, x, y float64, value string, stage Stage) *Text {
	t := &Text{X: x, Y: y, visual: stage.Create(kind)}
	t.visual.SetPosition(x, y)
	t.Set(value)
	return t
}

// Set updates the text. Unchanged values are not pushed to the visual.
func (t *Text) Set(value string) {
	if value == t.Value && value != "" {
		return
	}
	t.Value = value
	t.visual.SetText(value)
}

// Destroy removes the text visual.
func (t *Text) Destroy() {
	t.visual.Destroy()
}
