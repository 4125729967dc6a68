package object

import "time"

// AsteroidSpawner releases a fixed number of asteroids on a fixed schedule:
// the i-th one is due at i*interval of elapsed time.
type AsteroidSpawner struct {
	total    int
	interval time.Duration
	elapsed  time.Duration
	next     int // Index of the next scheduled slot
	spawned  int
	skipped  int
}

// NewAsteroidSpawner schedules total asteroids, one every interval.
func NewAsteroidSpawner(total int, interval time.Duration) *AsteroidSpawner {
	if total < 0 {
		total = 0
	}
	return &AsteroidSpawner{
		total:    total,
		interval: interval,
	}
}

// Update advances the schedule and returns the asteroids that came due.
// When suppressed is true, due slots are consumed without creating anything.
func (s *AsteroidSpawner) Update(ctx UpdateContext, suppressed bool) []*Asteroid {
	s.elapsed += ctx.Delta

	var due []*Asteroid
	for s.next < s.total && s.elapsed >= time.Duration(s.next)*s.interval {
		s.next++
		if suppressed {
			s.skipped++
			continue
		}
		due = append(due, NewAsteroidAtTop(ctx))
		s.spawned++
	}
	return due
}

// Spawned returns how many asteroids were created.
func (s *AsteroidSpawner) Spawned() int { return s.spawned }

// Skipped returns how many scheduled asteroids were dropped.
func (s *AsteroidSpawner) Skipped() int { return s.skipped }

// Done reports whether every slot has come due.
func (s *AsteroidSpawner) Done() bool { return s.next >= s.total }
