// Package clock provides the frame-driven timing primitives: a single-shot
// countdown, a count-up stopwatch, and a self-rearming periodic interval.
// None of them sleep or pace the frame; the engine paces the loop exactly
// once per frame and distributes the same elapsed time to every clock.
package clock

import (
	"image/color"
	"strconv"

	"chosenoffset.com/nightmaze/internal/render"
)

// textPadding is the distance in pixels from the screen edge when a clock
// draws itself at the default top-right position.
const textPadding = 20

// tickEpsilon absorbs representation drift from accumulating many small
// frame deltas. Without it, 120 ticks of 1/60 fall ~2e-16 short of 2.0
// and a boundary is missed by one frame.
const tickEpsilon = 1e-9

var textColor = color.RGBA{R: 255, A: 255}

// Countdown is a single-shot timer. Tick decrements the remaining time by
// the frame's elapsed wall-time; the first tick that reaches zero or below
// invokes the completion callback, after which the countdown is inert.
type Countdown struct {
	remaining  float64
	fired      bool
	onComplete func()

	renderer render.Renderer
	face     render.Face
}

// NewCountdown creates a countdown with the given duration in seconds.
// onComplete may be nil.
func NewCountdown(seconds float64, onComplete func()) *Countdown {
	return &Countdown{remaining: seconds, onComplete: onComplete}
}

// SetDisplay attaches a renderer and face so the countdown can draw itself.
// A countdown without a display is still a valid timer.
func (c *Countdown) SetDisplay(r render.Renderer, face render.Face) {
	c.renderer = r
	c.face = face
}

// Tick advances the countdown by dt seconds. It reports whether the
// countdown completed on this tick; completion happens exactly once.
func (c *Countdown) Tick(dt float64) bool {
	if c.fired {
		return false
	}

	c.remaining -= dt
	if c.remaining > tickEpsilon {
		return false
	}

	c.fired = true
	if c.onComplete != nil {
		c.onComplete()
	}
	return true
}

// Remaining returns the time left in seconds. It can be negative on the
// completing tick and never decreases after completion.
func (c *Countdown) Remaining() float64 {
	return c.remaining
}

// Expired reports whether the countdown has completed.
func (c *Countdown) Expired() bool {
	return c.fired
}

// Draw renders the remaining time at the top-right of dst.
func (c *Countdown) Draw(dst render.Image) {
	if c.renderer == nil {
		return
	}
	drawClockText(c.renderer, c.face, dst, c.remaining)
}

// Stopwatch counts up from zero, incremented by per-frame elapsed wall-time.
// It has no callback and runs indefinitely.
type Stopwatch struct {
	elapsed float64

	renderer render.Renderer
	face     render.Face
}

// NewStopwatch creates a stopwatch at zero.
func NewStopwatch() *Stopwatch {
	return &Stopwatch{}
}

// SetDisplay attaches a renderer and face so the stopwatch can draw itself.
func (s *Stopwatch) SetDisplay(r render.Renderer, face render.Face) {
	s.renderer = r
	s.face = face
}

// Tick advances the stopwatch by dt seconds.
func (s *Stopwatch) Tick(dt float64) {
	s.elapsed += dt
}

// Elapsed returns the accumulated time in seconds.
func (s *Stopwatch) Elapsed() float64 {
	return s.elapsed
}

// Draw renders the elapsed time at the top-right of dst.
func (s *Stopwatch) Draw(dst render.Image) {
	if s.renderer == nil {
		return
	}
	drawClockText(s.renderer, s.face, dst, s.elapsed)
}

// drawClockText renders seconds to one decimal place at the top-right
// corner of dst.
func drawClockText(r render.Renderer, face render.Face, dst render.Image, seconds float64) {
	str := strconv.FormatFloat(seconds, 'f', 1, 64)
	w, _ := r.MeasureText(face, str)
	dstW, _ := dst.Size()
	r.DrawText(dst, face, str, dstW-w-textPadding, textPadding, textColor)
}

// Periodic is a repeating interval driven by accumulated elapsed time. It
// replaces re-arming a fresh one-shot timer from its own completion
// callback: each Tick reports how many whole intervals elapsed, so a slow
// frame advances by several steps instead of lagging behind.
type Periodic struct {
	interval float64
	elapsed  float64
}

// NewPeriodic creates a periodic interval of the given length in seconds.
func NewPeriodic(interval float64) *Periodic {
	return &Periodic{interval: interval}
}

// Tick advances the accumulator by dt seconds and returns the number of
// intervals that completed, subtracting them from the accumulator.
func (p *Periodic) Tick(dt float64) int {
	if p.interval <= tickEpsilon {
		return 0
	}

	p.elapsed += dt
	n := 0
	for p.elapsed >= p.interval-tickEpsilon {
		p.elapsed -= p.interval
		n++
	}
	return n
}

// Interval returns the interval length in seconds.
func (p *Periodic) Interval() float64 {
	return p.interval
}
