package object

import (
	"math"
	"math/rand"
	"time"

	"github.com/tomz197/starwarp/internal/config"
	"github.com/tomz197/starwarp/internal/physics"
)

// Star is one point of the warp background.
type Star struct {
	Z    float64 // Depth along the view axis
	X, Y float64 // Unprojected planar offset

	// Projection results from the last Advance.
	ScreenX, ScreenY float64
	ScaleX, ScaleY   float64
	Rotation         float64

	visual Visual
}

// Starfield is a fixed pool of stars projected towards a moving camera.
type Starfield struct {
	Stars   []*Star
	CameraZ float64
	Speed   float64 // Current warp speed, eased towards warp
	warp    float64 // Target warp speed
	rng     *rand.Rand
	screen  Screen
}

// NewStarfield creates count stars with random depth in [0, far plane) and a
// random offset on a small disk.
func NewStarfield(count int, rng *rand.Rand, stage Stage, screen Screen) *Starfield {
	f := &Starfield{
		Stars:  make([]*Star, 0, count),
		rng:    rng,
		screen: screen,
	}
	for i := 0; i < count; i++ {
		s := &Star{visual: stage.Create(KindStar)}
		s.Z = rng.Float64() * config.StarFarPlane
		f.randomizeOffset(s)
		f.Stars = append(f.Stars, s)
	}
	return f
}

// SetWarp sets the speed the starfield eases towards (0 cruise, 1 full warp).
func (f *Starfield) SetWarp(target float64) {
	f.warp = target
}

// Warp returns the current warp target.
func (f *Starfield) Warp() float64 {
	return f.warp
}

// Advance moves the camera forward, recycles stars that fell behind it and
// projects every star onto the screen.
func (f *Starfield) Advance(delta time.Duration) {
	frames := delta.Seconds() * config.TargetFPS

	// Close 1/StarWarpEasing of the gap per 60 Hz frame, independent of delta.
	ease := 1 - math.Pow(1-1/config.StarWarpEasing, frames)
	f.Speed += (f.warp - f.Speed) * ease
	f.CameraZ += frames * config.StarCameraRate * (f.Speed + config.StarBaseSpeed)

	w := f.screen.Width
	for _, s := range f.Stars {
		if s.Z <= f.CameraZ {
			f.recycle(s)
		}
		f.project(s, w)
	}
}

// recycle places a star ahead of the camera with a fresh offset.
func (f *Starfield) recycle(s *Star) {
	s.Z = f.CameraZ + config.StarFarPlane + f.rng.Float64()*config.StarRespawnSpan
	f.randomizeOffset(s)
}

func (f *Starfield) randomizeOffset(s *Star) {
	angle := f.rng.Float64() * 2 * math.Pi
	distance := config.StarMinRadius + f.rng.Float64()*(config.StarMaxRadius-config.StarMinRadius)
	s.X = math.Cos(angle) * distance
	s.Y = math.Sin(angle) * distance
}

func (f *Starfield) project(s *Star, w float64) {
	z := s.Z - f.CameraZ

	s.ScreenX = s.X*(config.StarFOV/z)*w + f.screen.CenterX
	s.ScreenY = s.Y*(config.StarFOV/z)*w + f.screen.CenterY

	dx := s.ScreenX - f.screen.CenterX
	dy := s.ScreenY - f.screen.CenterY
	distanceCenter := physics.Distance(f.screen.CenterX, f.screen.CenterY, s.ScreenX, s.ScreenY)
	distanceScale := math.Max(0, (config.StarFarPlane-z)/config.StarFarPlane)

	s.ScaleX = distanceScale * config.StarBaseSize
	s.ScaleY = s.ScaleX + distanceScale*f.Speed*config.StarStretch*distanceCenter/w
	s.Rotation = math.Atan2(dy, dx) + math.Pi/2

	s.visual.SetPosition(s.ScreenX, s.ScreenY)
	s.visual.SetScale(s.ScaleX, s.ScaleY)
	s.visual.SetRotation(s.Rotation)
}

// Destroy removes every star visual.
func (f *Starfield) Destroy() {
	for _, s := range f.Stars {
		s.visual.Destroy()
	}
}
