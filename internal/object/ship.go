package object

import (
	"time"

	"github.com/tomz197/starwarp/internal/config"
	"github.com/tomz197/starwarp/internal/physics"
)

// Ship is the player-controlled ship. It only moves horizontally along the
// bottom edge of the screen.
type Ship struct {
	X, Y          float64 // Bottom-centre of the ship
	VX            float64 // Horizontal velocity (px/s)
	Width, Height float64
	Speed         float64       // Velocity while a direction key is held
	Cooldown      time.Duration // Time until the next shot is allowed

	visual Visual
}

// NewShip creates a ship centred on the bottom edge of screen.
func NewShip(screen Screen, stage Stage) *Ship {
	s := &Ship{
		X:      screen.CenterX,
		Y:      screen.Height,
		Width:  config.ShipWidth,
		Height: config.ShipHeight,
		Speed:  config.ShipSpeed,
		visual: stage.Create(KindShip),
	}
	s.visual.SetSize(s.Width, s.Height)
	s.visual.SetPosition(s.X, s.Y)
	return s
}

// MoveLeft starts moving left at full speed.
func (s *Ship) MoveLeft() { s.VX = -s.Speed }

// MoveRight starts moving right at full speed.
func (s *Ship) MoveRight() { s.VX = s.Speed }

// Stop halts horizontal movement.
func (s *Ship) Stop() { s.VX = 0 }

// CanFire reports whether the fire cooldown has elapsed.
func (s *Ship) CanFire() bool {
	return s.Cooldown <= 0
}

// StartCooldown blocks firing for d.
func (s *Ship) StartCooldown(d time.Duration) {
	s.Cooldown = d
}

// Muzzle returns where bullets leave the ship.
func (s *Ship) Muzzle() (float64, float64) {
	return s.X, s.Y - s.Height/2
}

// Update moves the ship, keeps it on screen and counts the cooldown down.
func (s *Ship) Update(ctx UpdateContext) {
	s.X += s.VX * ctx.Delta.Seconds()
	s.X = physics.Clamp(s.X, 0, ctx.Screen.Width)

	if s.Cooldown > 0 {
		s.Cooldown -= ctx.Delta
		if s.Cooldown < 0 {
			s.Cooldown = 0
		}
	}

	s.visual.SetPosition(s.X, s.Y)
}

// Destroy removes the ship visual.
func (s *Ship) Destroy() {
	s.visual.Destroy()
}
