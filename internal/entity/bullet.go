package entity

import (
	"image/color"

	"chosenoffset.com/nightmaze/internal/geom"
	"chosenoffset.com/nightmaze/internal/render"
)

var bulletColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// TextBullet is a line of text drifting rightward across the playfield.
// Its hitbox is the rendered text's bounding box, centered on its position
// and recomputed every frame after moving.
type TextBullet struct {
	pos    geom.Vec2
	text   string
	vel    geom.Vec2
	width  float64
	height float64
	hitbox geom.Rect

	renderer render.Renderer
	face     render.Face
}

// NewTextBullet spawns a bullet in the given y lane. The text is measured
// with face to size the hitbox, and the spawn x puts the bullet fully
// off-screen to the left.
func NewTextBullet(r render.Renderer, face render.Face, lane float64, text string, vel geom.Vec2) *TextBullet {
	w, h := r.MeasureText(face, text)
	b := &TextBullet{
		text:     text,
		vel:      vel,
		width:    float64(w),
		height:   float64(h),
		renderer: r,
		face:     face,
	}
	b.pos = geom.Vec2{X: -b.width / 2, Y: lane}
	b.updateHitbox()
	return b
}

// newTextBulletSized builds a bullet with a pre-measured size. Used by
// tests that have no renderer.
func newTextBulletSized(lane float64, text string, vel geom.Vec2, width, height float64) *TextBullet {
	b := &TextBullet{
		text:   text,
		vel:    vel,
		width:  width,
		height: height,
	}
	b.pos = geom.Vec2{X: -width / 2, Y: lane}
	b.updateHitbox()
	return b
}

// Move adds velocity to position and recomputes the hitbox.
func (b *TextBullet) Move() {
	b.pos = b.pos.Add(b.vel)
	b.updateHitbox()
}

func (b *TextBullet) updateHitbox() {
	b.hitbox = geom.NewRect(b.pos.X-b.width/2, b.pos.Y-b.height/2, b.width, b.height)
}

// Draw renders the text at the hitbox's top-left corner.
func (b *TextBullet) Draw(dst render.Image) {
	if b.renderer == nil {
		return
	}
	b.renderer.DrawText(dst, b.face, b.text, int(b.hitbox.X), int(b.hitbox.Y), bulletColor)
}

// Hitbox returns the bullet's collision rectangle.
func (b *TextBullet) Hitbox() geom.Rect {
	return b.hitbox
}

// Text returns the bullet's payload.
func (b *TextBullet) Text() string {
	return b.text
}
