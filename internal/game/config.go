package game

import (
	"time"

	"github.com/tomz197/starwarp/internal/config"
	"github.com/tomz197/starwarp/internal/object"
)

// Config holds the parameters of one session.
type Config struct {
	Screen        object.Screen
	StarCount     int
	Ammo          int
	FireCooldown  time.Duration
	AsteroidCount int // Scheduled asteroids; destroying all of them wins
	SpawnInterval time.Duration
	Countdown     float64
	CountdownRate float64 // Countdown units per second
	Seed          int64   // 0 picks a time-based seed
}

// DefaultConfig returns the standard game.
func DefaultConfig() Config {
	return Config{
		Screen:        object.NewScreen(config.ScreenWidth, config.ScreenHeight),
		StarCount:     config.StarCount,
		Ammo:          config.InitialAmmo,
		FireCooldown:  config.FireCooldown,
		AsteroidCount: config.AsteroidCount,
		SpawnInterval: config.AsteroidSpawnInterval,
		Countdown:     config.CountdownStart,
		CountdownRate: config.CountdownRate,
	}
}
