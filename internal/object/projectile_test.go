package object_test

import (
	"testing"

	"github.com/tomz197/starwarp/internal/config"
	"github.com/tomz197/starwarp/internal/object"
	"github.com/tomz197/starwarp/internal/object/objecttest"
	"github.com/tomz197/starwarp/internal/physics"
)

func TestProjectileRisesUntilTop(t *testing.T) {
	stage := &objecttest.Stage{}
	p := object.NewProjectile(640, 645, stage)
	ctx := shipContext(frame)

	prevY := p.Y
	ticks := 0
	for !p.Update(ctx) {
		if p.Y >= prevY {
			t.Fatalf("tick %d: Y went from %f to %f", ticks, prevY, p.Y)
		}
		prevY = p.Y
		ticks++
		if ticks > 1000 {
			t.Fatal("projectile never left the screen")
		}
	}

	if p.Y > 0 {
		t.Fatalf("removed at Y = %f, want <= 0", p.Y)
	}
	if !p.IsDestroyed() {
		t.Fatal("removed projectile should be destroyed")
	}
	if got := len(stage.Live(object.KindBullet)); got != 0 {
		t.Fatalf("live bullet visuals = %d, want 0", got)
	}
}

func TestProjectileSpins(t *testing.T) {
	p := object.NewProjectile(100, 400, object.NopStage{})
	p.Update(shipContext(frame))
	if p.Rotation <= 0 {
		t.Fatalf("rotation = %f, want > 0", p.Rotation)
	}
}

func TestProjectileBounds(t *testing.T) {
	p := object.NewProjectile(100, 200, object.NopStage{})
	want := physics.Rect{
		X:      100 - config.BulletRadius,
		Y:      200 - config.BulletRadius,
		Width:  2 * config.BulletRadius,
		Height: 2 * config.BulletRadius,
	}
	if p.Bounds() != want {
		t.Fatalf("Bounds = %+v, want %+v", p.Bounds(), want)
	}
}

func TestMarkDestroyedIsIdempotent(t *testing.T) {
	stage := &objecttest.Stage{}
	p := object.NewProjectile(0, 100, stage)
	a := object.NewAsteroid(0, 0, 40, 40, stage)

	for i := 0; i < 3; i++ {
		p.MarkDestroyed()
		a.MarkDestroyed()
	}
	for _, v := range stage.Visuals {
		if v.DestroyCalls != 1 {
			t.Errorf("%v visual destroyed %d times, want 1", v.Kind, v.DestroyCalls)
		}
	}
}
