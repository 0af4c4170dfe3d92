package entity

import (
	"image/color"

	"chosenoffset.com/nightmaze/internal/geom"
	"chosenoffset.com/nightmaze/internal/render"
)

var (
	wallColor  = color.RGBA{A: 255}
	debugColor = color.RGBA{R: 255, A: 255}
)

// Wall is a static maze segment. It renders as a filled rectangle, black in
// the normal path so it only becomes visible where the sight circle lights
// the field behind it, red in debug mode.
type Wall struct {
	rect     geom.Rect
	debug    bool
	renderer render.Renderer
}

// NewWall creates a wall covering rect.
func NewWall(r render.Renderer, rect geom.Rect, debug bool) *Wall {
	return &Wall{rect: rect, debug: debug, renderer: r}
}

// Draw fills the wall's rectangle.
func (w *Wall) Draw(dst render.Image) {
	if w.renderer == nil {
		return
	}
	clr := color.Color(wallColor)
	if w.debug {
		clr = debugColor
	}
	w.renderer.FillRect(dst, float32(w.rect.X), float32(w.rect.Y), float32(w.rect.W), float32(w.rect.H), clr)
}

// Hitbox returns the wall's rectangle.
func (w *Wall) Hitbox() geom.Rect {
	return w.rect
}

// Goal is the zone the player must reach in the navigation phase. It is
// collision-only: its draw is a no-op outside debug mode.
type Goal struct {
	rect     geom.Rect
	debug    bool
	renderer render.Renderer
}

// NewGoal creates a goal zone covering rect.
func NewGoal(r render.Renderer, rect geom.Rect, debug bool) *Goal {
	return &Goal{rect: rect, debug: debug, renderer: r}
}

// Draw renders nothing unless debug mode is on.
func (g *Goal) Draw(dst render.Image) {
	if !g.debug || g.renderer == nil {
		return
	}
	g.renderer.FillRect(dst, float32(g.rect.X), float32(g.rect.Y), float32(g.rect.W), float32(g.rect.H), debugColor)
}

// Hitbox returns the goal's rectangle.
func (g *Goal) Hitbox() geom.Rect {
	return g.rect
}
