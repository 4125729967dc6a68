package game

import (
	"github.com/tomz197/starwarp/internal/object"
	"github.com/tomz197/starwarp/internal/physics"
)

// checkCollisions pairs each asteroid with the first overlapping bullet,
// asteroid-major. Both are only marked; removal happens in compact so the
// slices never shift during the scan. Returns the number of asteroids hit.
func checkCollisions(asteroids []*object.Asteroid, bullets []*object.Projectile) int {
	hits := 0
	for _, a := range asteroids {
		if a.IsDestroyed() {
			continue
		}
		box := a.Bounds()
		for _, b := range bullets {
			if b.IsDestroyed() {
				continue
			}
			if physics.Overlaps(box, b.Bounds()) {
				a.MarkDestroyed()
				b.MarkDestroyed()
				hits++
				break
			}
		}
	}
	return hits
}

// compact drops destroyed items, reusing the backing array.
func compact[T object.Destructible](items []T) []T {
	kept := items[:0]
	for _, item := range items {
		if !item.IsDestroyed() {
			kept = append(kept, item)
		}
	}
	clear(items[len(kept):])
	return kept
}
