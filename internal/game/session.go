// Package game runs one play session: starfield, ship, bullets, asteroids,
// collisions and the countdown, advanced one tick at a time by whichever
// front end owns the loop.
package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/tomz197/starwarp/internal/object"
)

// Fire refusals. Front ends treat them as silent no-ops.
var (
	ErrGameOver    = errors.New("game is over")
	ErrNoAmmo      = errors.New("out of ammo")
	ErrCoolingDown = errors.New("weapon cooling down")
)

// Key is a logical game key.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyFire
	KeyWarp
)

// Session is a single game from the first tick to its outcome.
type Session struct {
	cfg       Config
	rng       *rand.Rand
	stage     object.Stage
	stars     *object.Starfield
	ship      *object.Ship
	bullets   []*object.Projectile
	asteroids []*object.Asteroid
	spawner   *object.AsteroidSpawner
	state     State
	hud       *hud
	elapsed   time.Duration
}

// NewSession creates a session drawing through stage. A nil stage draws
// nothing.
func NewSession(cfg Config, stage object.Stage) *Session {
	if stage == nil {
		stage = object.NopStage{}
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	s := &Session{
		cfg:     cfg,
		rng:     rng,
		stage:   stage,
		spawner: object.NewAsteroidSpawner(cfg.AsteroidCount, cfg.SpawnInterval),
		state: State{
			Countdown: cfg.Countdown,
			Ammo:      cfg.Ammo,
		},
	}

	// Creation order is draw order: stars behind everything.
	s.stars = object.NewStarfield(cfg.StarCount, rng, stage, cfg.Screen)
	s.ship = object.NewShip(cfg.Screen, stage)
	s.hud = newHUD(stage, cfg.Screen, s.state, cfg.Ammo)
	return s
}

// KeyDown handles a key press.
func (s *Session) KeyDown(k Key) {
	switch k {
	case KeyLeft:
		s.ship.MoveLeft()
	case KeyRight:
		s.ship.MoveRight()
	case KeyFire:
		_ = s.Fire()
	case KeyWarp:
		s.stars.SetWarp(1)
	}
}

// KeyUp handles a key release. Releasing either direction stops the ship.
func (s *Session) KeyUp(k Key) {
	switch k {
	case KeyLeft, KeyRight:
		s.ship.Stop()
	case KeyWarp:
		s.stars.SetWarp(0)
	}
}

// Fire launches a bullet from the ship if the game is running, ammo is left
// and the cooldown has elapsed.
func (s *Session) Fire() error {
	switch {
	case s.state.Over():
		return ErrGameOver
	case s.state.Ammo <= 0:
		return ErrNoAmmo
	case !s.ship.CanFire():
		return ErrCoolingDown
	}

	s.state.Ammo--
	s.ship.StartCooldown(s.cfg.FireCooldown)
	x, y := s.ship.Muzzle()
	s.bullets = append(s.bullets, object.NewProjectile(x, y, s.stage))
	s.hud.update(s.state)
	return nil
}

// Advance runs one tick of delta. The starfield and the spawn schedule keep
// running after the outcome; everything else is frozen.
func (s *Session) Advance(delta time.Duration) {
	if delta < 0 {
		delta = 0
	}
	s.elapsed += delta
	ctx := s.updateContext(delta)

	s.stars.Advance(delta)
	s.asteroids = append(s.asteroids, s.spawner.Update(ctx, s.state.Over())...)

	if s.state.Over() {
		return
	}

	s.state.tickCountdown(delta.Seconds(), s.cfg.CountdownRate)
	s.ship.Update(ctx)
	for _, b := range s.bullets {
		b.Update(ctx)
	}
	for _, a := range s.asteroids {
		a.Update(ctx)
	}

	s.state.Destroyed += checkCollisions(s.asteroids, s.bullets)
	s.bullets = compact(s.bullets)
	s.asteroids = compact(s.asteroids)

	if o := s.state.evaluate(s.cfg.AsteroidCount); o != OutcomeNone {
		s.hud.showBanner(o)
	}
	s.hud.update(s.state)
}

func (s *Session) updateContext(delta time.Duration) object.UpdateContext {
	return object.UpdateContext{
		Delta:  delta,
		Screen: s.cfg.Screen,
		Stage:  s.stage,
		Rand:   s.rng,
	}
}

// Close destroys every visual the session created.
func (s *Session) Close() {
	s.stars.Destroy()
	s.ship.Destroy()
	for _, b := range s.bullets {
		b.MarkDestroyed()
	}
	for _, a := range s.asteroids {
		a.MarkDestroyed()
	}
	s.bullets = nil
	s.asteroids = nil
	s.hud.destroy()
}

// State returns a copy of the counters.
func (s *Session) State() State { return s.state }

// Over reports whether the session has an outcome.
func (s *Session) Over() bool { return s.state.Over() }

// Outcome returns the terminal outcome, or OutcomeNone while playing.
func (s *Session) Outcome() Outcome { return s.state.Outcome }

// Elapsed returns the total time advanced.
func (s *Session) Elapsed() time.Duration { return s.elapsed }

// Ship returns the player's ship.
func (s *Session) Ship() *object.Ship { return s.ship }

// Bullets returns the live bullets.
func (s *Session) Bullets() []*object.Projectile { return s.bullets }

// Asteroids returns the live asteroids.
func (s *Session) Asteroids() []*object.Asteroid { return s.asteroids }

// Starfield returns the background starfield.
func (s *Session) Starfield() *object.Starfield { return s.stars }

// Spawner returns the asteroid schedule.
func (s *Session) Spawner() *object.AsteroidSpawner { return s.spawner }
