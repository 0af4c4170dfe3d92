package game

import (
	"image/color"

	"chosenoffset.com/nightmaze/internal/render"
)

var hitboxColor = color.RGBA{R: 255, A: 128}

// Draw renders one frame: clear to black, then every live drawable in
// roster order. The player draws first so its sight circle sits under the
// maze; walls drawn on top of it are what makes the maze readable.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(color.Black)

	for _, d := range g.drawables {
		d.Draw(screen)
	}

	if g.debug {
		hb := g.player.Hitbox()
		g.renderer.FillRect(screen, float32(hb.X), float32(hb.Y), float32(hb.W), float32(hb.H), hitboxColor)
	}
}

// Layout reports the logical screen size to the engine.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
