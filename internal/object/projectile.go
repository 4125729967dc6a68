package object

import (
	"github.com/tomz197/starwarp/internal/config"
	"github.com/tomz197/starwarp/internal/physics"
)

// Projectile is a bullet fired by the ship. It travels straight up and spins.
type Projectile struct {
	X, Y          float64 // Centre
	Speed         float64 // Upward speed (px/s)
	RotationSpeed float64 // rad/s
	Rotation      float64
	Radius        float64
	destroyed     bool

	visual Visual
}

// NewProjectile creates a bullet centred on (x, y).
func NewProjectile(x, y float64, stage Stage) *Projectile {
	p := &Projectile{
		X:             x,
		Y:             y,
		Speed:         config.BulletSpeed,
		RotationSpeed: config.BulletRotationSpeed,
		Radius:        config.BulletRadius,
		visual:        stage.Create(KindBullet),
	}
	p.visual.SetSize(2*p.Radius, 2*p.Radius)
	p.visual.SetPosition(p.X, p.Y)
	return p
}

// MarkDestroyed marks the projectile for removal and drops its visual.
func (p *Projectile) MarkDestroyed() {
	if p.destroyed {
		return
	}
	p.destroyed = true
	p.visual.Destroy()
}

// IsDestroyed returns true if the projectile is marked for destruction.
func (p *Projectile) IsDestroyed() bool {
	return p.destroyed
}

// Bounds returns the bullet's bounding box.
func (p *Projectile) Bounds() physics.Rect {
	return physics.Centered(p.X, p.Y, 2*p.Radius, 2*p.Radius)
}

// Update moves the projectile up. Returns true once it reached the top edge.
func (p *Projectile) Update(ctx UpdateContext) (remove bool) {
	dt := ctx.Delta.Seconds()
	p.Y -= p.Speed * dt
	p.Rotation += p.RotationSpeed * dt

	if p.Y <= 0 {
		p.MarkDestroyed()
		return true
	}

	p.visual.SetPosition(p.X, p.Y)
	p.visual.SetRotation(p.Rotation)
	return false
}
