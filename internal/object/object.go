// Package object holds the game entities and the visual capability they
// draw through. Nothing here knows how a frame is actually rendered.
package object

import (
	"math/rand"
	"time"
)

// Kind tells a Stage what a visual represents. Each kind has a fixed anchor
// that renderers honour when placing it.
type Kind int

const (
	KindStar     Kind = iota // Anchor (0.5, 0.7); scaled and rotated, no size
	KindShip                 // Anchor bottom-centre
	KindBullet               // Anchor centre; rotated
	KindAsteroid             // Anchor top-left
	KindLabel                // HUD text, anchor top-left
	KindBanner               // End-of-game text, anchor centre
)

func (k Kind) String() string {
	switch k {
	case KindStar:
		return "star"
	case KindShip:
		return "ship"
	case KindBullet:
		return "bullet"
	case KindAsteroid:
		return "asteroid"
	case KindLabel:
		return "label"
	case KindBanner:
		return "banner"
	default:
		return "unknown"
	}
}

// Visual is a handle to something a front end draws. Coordinates are in
// logical screen units.
type Visual interface {
	SetPosition(x, y float64)
	SetSize(width, height float64)
	SetScale(sx, sy float64)
	SetRotation(angle float64)
	SetText(text string)
	// Destroy removes the visual from the stage. Further calls are ignored.
	Destroy()
}

// Stage creates visuals. Implemented by each front end.
type Stage interface {
	Create(kind Kind) Visual
}

// NopStage is a Stage whose visuals draw nothing. Useful for headless runs.
type NopStage struct{}

// Create returns a visual that ignores every call.
func (NopStage) Create(Kind) Visual { return nopVisual{} }

type nopVisual struct{}

func (nopVisual) SetPosition(float64, float64) {}
func (nopVisual) SetSize(float64, float64)     {}
func (nopVisual) SetScale(float64, float64)    {}
func (nopVisual) SetRotation(float64)          {}
func (nopVisual) SetText(string)               {}
func (nopVisual) Destroy()                     {}

// Screen represents the logical play area.
type Screen struct {
	Width   float64
	Height  float64
	CenterX float64
	CenterY float64
}

// NewScreen builds a Screen with its centre filled in.
func NewScreen(width, height float64) Screen {
	return Screen{
		Width:   width,
		Height:  height,
		CenterX: width / 2,
		CenterY: height / 2,
	}
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta  time.Duration
	Screen Screen
	Stage  Stage
	Rand   *rand.Rand
}

// Destructible is implemented by objects that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal on next compaction.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}
