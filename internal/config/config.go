package config

import "time"

// Logical screen - the coordinate space used by the gameplay core.
// Front ends scale it to whatever surface they draw on.
const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

// Starfield
const (
	StarCount       = 1000
	StarFOV         = 20.0
	StarFarPlane    = 2000.0 // Depth at which stars shrink to nothing
	StarRespawnSpan = 1000.0 // Recycled stars land in [far, far+span) ahead of the camera
	StarBaseSpeed   = 0.025
	StarStretch     = 5.0
	StarBaseSize    = 0.05
	StarMinRadius   = 1.0  // Planar offset disk
	StarMaxRadius   = 51.0 // (exclusive)
	StarWarpEasing  = 20.0 // Frames to close the gap to the warp target (at 60 Hz)
	StarCameraRate  = 10.0 // Depth units per frame per unit of speed
)

// Ship
const (
	ShipSpeed  = 600.0 // px/s while a direction key is held
	ShipWidth  = 150.0
	ShipHeight = 150.0
)

// Bullets
const (
	InitialAmmo         = 10
	FireCooldown        = 500 * time.Millisecond
	BulletSpeed         = 600.0 // px/s, upward
	BulletRotationSpeed = 6.0   // rad/s
	BulletRadius        = 5.0
)

// Asteroids
const (
	AsteroidCount         = 8
	AsteroidSpawnInterval = 13 * time.Second
	AsteroidSpawnY        = -50.0
	AsteroidSpawnInset    = 200.0 // Spawn x is shifted left by this much
	AsteroidMinSize       = 30.0
	AsteroidSizeRange     = 75.0
	AsteroidVelocityX     = 18.0 // px/s
	AsteroidVelocityY     = 18.0 // px/s
)

// Countdown
const (
	CountdownStart = 60.0
	CountdownRate  = 0.6 // Units per second (0.01 per 60 Hz frame)
)

// Frame timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Terminal rendering limits; larger terminals get a centred render area.
const (
	MaxTermWidth  = 240
	MaxTermHeight = 68
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)
