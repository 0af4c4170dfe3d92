// Package entity contains the game's entities and the capability
// interfaces they implement. The capabilities are independent: a wall is
// drawable and collidable but never moves, a text bullet moves but takes no
// input. Concrete entities implement exactly the subset they need.
package entity

import (
	"image"

	"chosenoffset.com/nightmaze/internal/geom"
	"chosenoffset.com/nightmaze/internal/render"
)

// Movable advances its own position once per frame from internal velocity.
type Movable interface {
	Move()
}

// KeyMovable additionally derives velocity from the frame's key snapshot.
// KeyMove runs before Move each frame, in that fixed order.
type KeyMovable interface {
	Movable
	KeyMove(keys KeyState)
}

// Drawable renders itself onto a target surface.
type Drawable interface {
	Draw(dst render.Image)
}

// Collidable exposes an axis-aligned hitbox for collision testing.
type Collidable interface {
	Hitbox() geom.Rect
}

// KeyState is a per-frame snapshot of the held movement keys.
type KeyState struct {
	Up, Down, Left, Right bool
}

// Collide tests two collidables for overlap and invokes react(a, b) if
// their hitboxes intersect. Detection and reaction are deliberately
// separate: the same test serves player–wall, player–bullet, and
// player–goal checks with different reactions supplied by the caller.
func Collide(a, b Collidable, react func(a, b Collidable)) {
	if a.Hitbox().Intersects(b.Hitbox()) {
		react(a, b)
	}
}

// boundsToImageRect converts a geometry rect to an integer image rect for
// clip regions.
func boundsToImageRect(r geom.Rect) image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.Right()), int(r.Bottom()))
}
