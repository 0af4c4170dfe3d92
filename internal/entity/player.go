package entity

import (
	"image/color"

	"chosenoffset.com/nightmaze/internal/geom"
	"chosenoffset.com/nightmaze/internal/render"
	"chosenoffset.com/nightmaze/internal/sprite"
)

// Player movement tuning. Units are pixels per frame (velocity) and pixels
// per frame squared (acceleration).
const (
	MaxSpeed   = 3.0
	PlayerSize = 48

	// Friction opposes residual motion on each axis every frame, whether
	// or not that axis's key is held. Velocity below the deadband snaps to
	// exactly zero so the player never creeps forever.
	Friction = 0.05
	Deadband = 0.05

	// Sight reveal tuning: the vision radius grows by SightStep per frame
	// until it reaches 1, once per life. A whisper hit shrinks it by
	// SightPenalty unless it is already below SightFloor.
	SightStep    = 0.02
	SightPenalty = 0.05
	SightFloor   = 0.1
)

var (
	sightDim    = color.RGBA{R: 16, G: 16, B: 16, A: 255}
	sightBright = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// MoveState is the player's discrete movement state, used to pick the
// active animation cycle.
type MoveState int

const (
	Still MoveState = iota
	Moving
)

// Player is the avatar: key-driven velocity with clamping, friction and a
// deadband, a 48×48 hitbox centered on its position, and a vision radius
// that reveals the playfield once per life.
type Player struct {
	pos    geom.Vec2
	accel  geom.Vec2
	vel    geom.Vec2
	hitbox geom.Rect
	bounds geom.Rect // playfield the hitbox is clamped into

	sight     float64
	showSight bool
	revealing bool
	state     MoveState

	renderer render.Renderer
	sprites  *sprite.Sheet
}

// NewPlayer creates a player centered at pos with the given per-axis
// acceleration, clamped to bounds. The renderer and sprite sheet are only
// needed for drawing; the simulation runs without them.
func NewPlayer(pos, accel geom.Vec2, bounds geom.Rect, r render.Renderer, sprites *sprite.Sheet) *Player {
	p := &Player{
		pos:       pos,
		accel:     accel,
		bounds:    bounds,
		revealing: true,
		renderer:  r,
		sprites:   sprites,
	}
	p.updateHitbox()
	return p
}

// KeyMove updates velocity from the held keys: per-axis acceleration for
// each held direction, clamp to ±MaxSpeed, apply friction, snap the
// deadband. Diagonal acceleration is additive, so a held diagonal is
// faster than an axis-aligned run.
func (p *Player) KeyMove(keys KeyState) {
	if keys.Up {
		p.vel = p.vel.Sub(p.accel.ProjectY())
	}
	if keys.Down {
		p.vel = p.vel.Add(p.accel.ProjectY())
	}
	if keys.Left {
		p.vel = p.vel.Sub(p.accel.ProjectX())
	}
	if keys.Right {
		p.vel = p.vel.Add(p.accel.ProjectX())
	}

	p.vel.X = geom.Clamp(p.vel.X, -MaxSpeed, MaxSpeed)
	p.vel.Y = geom.Clamp(p.vel.Y, -MaxSpeed, MaxSpeed)

	if p.vel.X > 0 {
		p.vel.X -= Friction
	} else if p.vel.X < 0 {
		p.vel.X += Friction
	}
	if p.vel.Y > 0 {
		p.vel.Y -= Friction
	} else if p.vel.Y < 0 {
		p.vel.Y += Friction
	}

	if p.vel.X > -Deadband && p.vel.X < Deadband {
		p.vel.X = 0
	}
	if p.vel.Y > -Deadband && p.vel.Y < Deadband {
		p.vel.Y = 0
	}

	if p.vel.X != 0 || p.vel.Y != 0 {
		p.state = Moving
	} else {
		p.state = Still
	}
}

// Move adds velocity to position, clamps the position so the hitbox stays
// fully inside the playfield, and recomputes the hitbox.
func (p *Player) Move() {
	p.pos = p.pos.Add(p.vel)

	half := float64(PlayerSize) / 2
	p.pos.X = geom.Clamp(p.pos.X, p.bounds.X+half, p.bounds.Right()-half)
	p.pos.Y = geom.Clamp(p.pos.Y, p.bounds.Y+half, p.bounds.Bottom()-half)

	p.updateHitbox()
}

func (p *Player) updateHitbox() {
	half := float64(PlayerSize) / 2
	p.hitbox = geom.NewRect(p.pos.X-half, p.pos.Y-half, PlayerSize, PlayerSize)
}

// Animate advances the sprite cycles and the sight reveal by one frame.
// The reveal plays once: when sight reaches 1 it clamps and stops.
func (p *Player) Animate(dt float64) {
	if p.sprites != nil {
		p.sprites.Advance(dt)
	}

	if p.revealing {
		if p.sight < 1 {
			p.sight += SightStep
		}
		if p.sight >= 1 {
			p.sight = 1
			p.revealing = false
		}
	}
}

// Draw renders the vision circle (clipped to the playfield) and the active
// animation cycle, mirrored when moving left.
func (p *Player) Draw(dst render.Image) {
	if p.renderer == nil {
		return
	}

	radius := p.sight * p.bounds.W / 2
	clr := color.Color(sightDim)
	if p.showSight {
		clr = sightBright
	}

	clipped := dst.SubImage(boundsToImageRect(p.bounds))
	p.renderer.FillCircle(clipped, float32(p.pos.X), float32(p.pos.Y), float32(radius), clr)

	if p.sprites == nil {
		return
	}

	name := "stand"
	if p.state == Moving {
		name = "sprint"
	}
	cycle, ok := p.sprites.Cycle(name)
	if !ok {
		return
	}

	half := PlayerSize / 2
	flipped := p.vel.X < 0
	cycle.Draw(dst, int(p.pos.X)-half, int(p.pos.Y)-half, PlayerSize, flipped)
}

// Hitbox returns the player's collision rectangle.
func (p *Player) Hitbox() geom.Rect {
	return p.hitbox
}

// Pos returns the player's center position.
func (p *Player) Pos() geom.Vec2 {
	return p.pos
}

// Velocity returns the player's current velocity.
func (p *Player) Velocity() geom.Vec2 {
	return p.vel
}

// State returns the discrete movement state.
func (p *Player) State() MoveState {
	return p.state
}

// Sight returns the vision radius fraction in [0, 1].
func (p *Player) Sight() float64 {
	return p.sight
}

// RevealSight switches the vision circle to its bright color.
func (p *Player) RevealSight() {
	p.showSight = true
}

// DimSight shrinks the vision radius after a whisper hit. Below the floor
// the radius is left alone, so it can never be driven negative.
func (p *Player) DimSight() {
	if p.sight >= SightFloor {
		p.sight -= SightPenalty
	}
}

// Restart teleports the player to pos and zeroes its velocity.
func (p *Player) Restart(pos geom.Vec2) {
	p.pos = pos
	p.vel = geom.Vec2{}
	p.updateHitbox()
}
