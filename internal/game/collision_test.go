package game

import (
	"testing"

	"github.com/tomz197/starwarp/internal/object"
	"github.com/tomz197/starwarp/internal/object/objecttest"
)

func TestCheckCollisions(t *testing.T) {
	tests := []struct {
		name          string
		asteroids     [][2]float64 // top-left of 40x40 asteroids
		bullets       [][2]float64 // bullet centres
		wantHits      int
		wantAsteroids int
		wantBullets   int
	}{
		{
			name:          "miss",
			asteroids:     [][2]float64{{100, 100}},
			bullets:       [][2]float64{{300, 300}},
			wantHits:      0,
			wantAsteroids: 1,
			wantBullets:   1,
		},
		{
			name:          "single hit",
			asteroids:     [][2]float64{{100, 100}},
			bullets:       [][2]float64{{120, 120}},
			wantHits:      1,
			wantAsteroids: 0,
			wantBullets:   0,
		},
		{
			name:          "two bullets one asteroid",
			asteroids:     [][2]float64{{100, 100}},
			bullets:       [][2]float64{{110, 110}, {130, 130}},
			wantHits:      1,
			wantAsteroids: 0,
			wantBullets:   1,
		},
		{
			name:          "one bullet two asteroids",
			asteroids:     [][2]float64{{100, 100}, {110, 110}},
			bullets:       [][2]float64{{125, 125}},
			wantHits:      1,
			wantAsteroids: 1,
			wantBullets:   0,
		},
		{
			name:          "adjacent hits",
			asteroids:     [][2]float64{{100, 100}, {200, 100}, {300, 100}},
			bullets:       [][2]float64{{320, 120}, {120, 120}, {220, 120}},
			wantHits:      3,
			wantAsteroids: 0,
			wantBullets:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stage := &objecttest.Stage{}
			var asteroids []*object.Asteroid
			for _, p := range tt.asteroids {
				asteroids = append(asteroids, object.NewAsteroid(p[0], p[1], 40, 40, stage))
			}
			var bullets []*object.Projectile
			for _, p := range tt.bullets {
				bullets = append(bullets, object.NewProjectile(p[0], p[1], stage))
			}

			hits := checkCollisions(asteroids, bullets)
			asteroids = compact(asteroids)
			bullets = compact(bullets)

			if hits != tt.wantHits {
				t.Errorf("hits = %d, want %d", hits, tt.wantHits)
			}
			if len(asteroids) != tt.wantAsteroids {
				t.Errorf("asteroids left = %d, want %d", len(asteroids), tt.wantAsteroids)
			}
			if len(bullets) != tt.wantBullets {
				t.Errorf("bullets left = %d, want %d", len(bullets), tt.wantBullets)
			}
			if got := len(stage.Live(object.KindAsteroid)); got != tt.wantAsteroids {
				t.Errorf("live asteroid visuals = %d, want %d", got, tt.wantAsteroids)
			}
			if got := len(stage.Live(object.KindBullet)); got != tt.wantBullets {
				t.Errorf("live bullet visuals = %d, want %d", got, tt.wantBullets)
			}
		})
	}
}

func TestCheckCollisionsAsteroidMajorOrder(t *testing.T) {
	stage := &objecttest.Stage{}
	first := object.NewAsteroid(100, 100, 40, 40, stage)
	second := object.NewAsteroid(110, 110, 40, 40, stage)
	b := object.NewProjectile(125, 125, stage)

	checkCollisions([]*object.Asteroid{first, second}, []*object.Projectile{b})

	if !first.IsDestroyed() || second.IsDestroyed() {
		t.Fatalf("first destroyed=%v second destroyed=%v, want only the first", first.IsDestroyed(), second.IsDestroyed())
	}
}

func TestCompactKeepsOrder(t *testing.T) {
	stage := &objecttest.Stage{}
	var bullets []*object.Projectile
	for i := 0; i < 5; i++ {
		bullets = append(bullets, object.NewProjectile(float64(i), 100, stage))
	}
	bullets[1].MarkDestroyed()
	bullets[3].MarkDestroyed()

	kept := compact(bullets)
	if len(kept) != 3 {
		t.Fatalf("kept %d, want 3", len(kept))
	}
	for i, want := range []float64{0, 2, 4} {
		if kept[i].X != want {
			t.Errorf("kept[%d].X = %f, want %f", i, kept[i].X, want)
		}
	}
}
