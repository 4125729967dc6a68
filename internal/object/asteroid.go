package object

import (
	"github.com/tomz197/starwarp/internal/config"
	"github.com/tomz197/starwarp/internal/physics"
)

// Asteroid is a drifting rock. Its position is the top-left corner of its box.
type Asteroid struct {
	X, Y          float64
	Width, Height float64
	VX, VY        float64
	destroyed     bool

	visual Visual
}

// NewAsteroid creates an asteroid with its top-left corner at (x, y).
func NewAsteroid(x, y, width, height float64, stage Stage) *Asteroid {
	a := &Asteroid{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		VX:     config.AsteroidVelocityX,
		VY:     config.AsteroidVelocityY,
		visual: stage.Create(KindAsteroid),
	}
	a.visual.SetSize(a.Width, a.Height)
	a.visual.SetPosition(a.X, a.Y)
	return a
}

// NewAsteroidAtTop creates an asteroid just above the top edge at a random
// horizontal position with a random size.
func NewAsteroidAtTop(ctx UpdateContext) *Asteroid {
	x := ctx.Rand.Float64()*ctx.Screen.Width - config.AsteroidSpawnInset
	height := ctx.Rand.Float64()*config.AsteroidSizeRange + config.AsteroidMinSize
	width := ctx.Rand.Float64()*config.AsteroidSizeRange + config.AsteroidMinSize
	return NewAsteroid(x, config.AsteroidSpawnY, width, height, ctx.Stage)
}

// MarkDestroyed marks the asteroid for removal and drops its visual.
func (a *Asteroid) MarkDestroyed() {
	if a.destroyed {
		return
	}
	a.destroyed = true
	a.visual.Destroy()
}

// IsDestroyed returns true if the asteroid is marked for destruction.
func (a *Asteroid) IsDestroyed() bool {
	return a.destroyed
}

// Bounds returns the asteroid's bounding box.
func (a *Asteroid) Bounds() physics.Rect {
	return physics.Rect{X: a.X, Y: a.Y, Width: a.Width, Height: a.Height}
}

// Update drifts the asteroid.
func (a *Asteroid) Update(ctx UpdateContext) {
	dt := ctx.Delta.Seconds()
	a.X += a.VX * dt
	a.Y += a.VY * dt
	a.visual.SetPosition(a.X, a.Y)
}
