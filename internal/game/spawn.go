package game

import (
	"chosenoffset.com/nightmaze/internal/clock"
	"chosenoffset.com/nightmaze/internal/entity"
	"chosenoffset.com/nightmaze/internal/geom"
)

// Spawn timing: first bullet after 2 seconds, then one per 0.25 seconds.
const (
	spawnInitialDelay = 2.0
	spawnInterval     = 0.25
)

// Spawn lane and speed ranges.
const (
	laneMargin     = 20
	minBulletSpeed = 1.5
	maxBulletSpeed = 2.5
)

// spawner decides when the next bullet appears. Each firing discards the
// one-shot timer and arms a fresh one at the steady interval; timers are
// replaced, never reset in place.
type spawner struct {
	timer *clock.Countdown
}

func newSpawner() *spawner {
	return &spawner{timer: clock.NewCountdown(spawnInitialDelay, nil)}
}

// Tick reports whether a bullet should spawn this frame.
func (s *spawner) Tick(dt float64) bool {
	if s.timer.Tick(dt) {
		s.timer = clock.NewCountdown(spawnInterval, nil)
		return true
	}
	return false
}

// spawnWhisper creates a bullet in a random lane with a random rightward
// speed and a random payload, and appends it to the live rosters.
func (g *Game) spawnWhisper() {
	lane := float64(laneMargin + g.rng.Intn(ScreenHeight-2*laneMargin+1))
	speed := minBulletSpeed + g.rng.Float64()*(maxBulletSpeed-minBulletSpeed)
	text := whisperTexts[g.rng.Intn(len(whisperTexts))]

	b := entity.NewTextBullet(g.renderer, g.bulletFace, lane, text, geom.Vec2{X: speed})

	g.bullets = append(g.bullets, b)
	g.movables = append(g.movables, b)
	g.drawables = append(g.drawables, b)
}
