package sprite

import (
	"chosenoffset.com/nightmaze/internal/clock"
	"chosenoffset.com/nightmaze/internal/render"
)

// Cycle is a looping sequence of frames advanced by its own periodic timer,
// independent of the game-phase clocks.
type Cycle struct {
	frames []render.Image
	index  int
	timer  *clock.Periodic
}

// NewCycle creates a cycle over frames with the given per-frame interval.
func NewCycle(frames []render.Image, interval float64) *Cycle {
	return &Cycle{
		frames: frames,
		timer:  clock.NewPeriodic(interval),
	}
}

// Advance ticks the frame timer by dt seconds. If more than one interval
// elapsed (a dropped frame), the index advances by that many steps so the
// animation never lags behind.
func (c *Cycle) Advance(dt float64) {
	n := c.timer.Tick(dt)
	if n > 0 && len(c.frames) > 0 {
		c.index = (c.index + n) % len(c.frames)
	}
}

// Index returns the current frame index.
func (c *Cycle) Index() int {
	return c.index
}

// Len returns the number of frames in the cycle.
func (c *Cycle) Len() int {
	return len(c.frames)
}

// Draw blits the current frame at (x, y) scaled to size×size pixels,
// optionally mirrored horizontally.
func (c *Cycle) Draw(dst render.Image, x, y, size int, flipped bool) {
	if len(c.frames) == 0 {
		return
	}

	frame := c.frames[c.index]
	fw, fh := frame.Size()
	if fw == 0 || fh == 0 {
		return
	}

	g := render.NewGeoM()
	if flipped {
		g.Scale(-1, 1)
		g.Translate(float64(fw), 0)
	}
	g.Scale(float64(size)/float64(fw), float64(size)/float64(fh))
	g.Translate(float64(x), float64(y))

	dst.DrawImage(frame, &render.DrawImageOptions{GeoM: g})
}
