package object_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/tomz197/starwarp/internal/config"
	"github.com/tomz197/starwarp/internal/object"
	"github.com/tomz197/starwarp/internal/object/objecttest"
)

func spawnContext(delta time.Duration, stage object.Stage) object.UpdateContext {
	return object.UpdateContext{
		Delta:  delta,
		Screen: object.NewScreen(config.ScreenWidth, config.ScreenHeight),
		Stage:  stage,
		Rand:   rand.New(rand.NewSource(7)),
	}
}

func TestAsteroidAtTop(t *testing.T) {
	stage := &objecttest.Stage{}
	ctx := spawnContext(0, stage)

	for i := 0; i < 100; i++ {
		a := object.NewAsteroidAtTop(ctx)
		if a.Y != config.AsteroidSpawnY {
			t.Fatalf("Y = %f, want %f", a.Y, config.AsteroidSpawnY)
		}
		if a.X < -config.AsteroidSpawnInset || a.X >= config.ScreenWidth-config.AsteroidSpawnInset {
			t.Fatalf("X = %f out of spawn range", a.X)
		}
		for _, size := range []float64{a.Width, a.Height} {
			if size < config.AsteroidMinSize || size >= config.AsteroidMinSize+config.AsteroidSizeRange {
				t.Fatalf("size %f out of range", size)
			}
		}
	}
}

func TestAsteroidDrifts(t *testing.T) {
	a := object.NewAsteroid(100, 100, 50, 50, object.NopStage{})
	a.Update(spawnContext(time.Second, object.NopStage{}))
	if a.X != 100+config.AsteroidVelocityX || a.Y != 100+config.AsteroidVelocityY {
		t.Fatalf("asteroid at (%f, %f) after 1s", a.X, a.Y)
	}
}

func TestSpawnerSchedule(t *testing.T) {
	stage := &objecttest.Stage{}
	s := object.NewAsteroidSpawner(8, 13*time.Second)

	var times []time.Duration
	var now time.Duration
	step := 100 * time.Millisecond
	for i := 0; i < 1200; i++ {
		// The first update happens at t=0.
		d := step
		if i == 0 {
			d = 0
		}
		now += d
		for range s.Update(spawnContext(d, stage), false) {
			times = append(times, now)
		}
	}

	if len(times) != 8 {
		t.Fatalf("spawned %d asteroids, want 8", len(times))
	}
	for i, at := range times {
		want := time.Duration(i) * 13 * time.Second
		if at != want {
			t.Errorf("asteroid %d spawned at %v, want %v", i, at, want)
		}
	}
	if !s.Done() || s.Spawned() != 8 || s.Skipped() != 0 {
		t.Fatalf("done=%v spawned=%d skipped=%d", s.Done(), s.Spawned(), s.Skipped())
	}
	if got := stage.Created(object.KindAsteroid); got != 8 {
		t.Fatalf("asteroid visuals = %d, want 8", got)
	}
}

func TestSpawnerSuppressed(t *testing.T) {
	stage := &objecttest.Stage{}
	s := object.NewAsteroidSpawner(8, 13*time.Second)

	// Three come due normally, the rest while suppressed.
	s.Update(spawnContext(26*time.Second, stage), false)
	if s.Spawned() != 3 {
		t.Fatalf("spawned = %d, want 3", s.Spawned())
	}
	if got := s.Update(spawnContext(time.Hour, stage), true); len(got) != 0 {
		t.Fatalf("suppressed update returned %d asteroids", len(got))
	}
	if s.Spawned() != 3 || s.Skipped() != 5 {
		t.Fatalf("spawned=%d skipped=%d, want 3/5", s.Spawned(), s.Skipped())
	}
	if got := stage.Created(object.KindAsteroid); got != 3 {
		t.Fatalf("asteroid visuals = %d, want 3", got)
	}
}
