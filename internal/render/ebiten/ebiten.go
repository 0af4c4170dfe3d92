// Package ebiten implements the render interfaces on top of Ebitengine.
// No other package in the module imports Ebitengine directly.
package ebiten

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/nightmaze/internal/render"
)

// Renderer implements the render.Renderer interface using Ebiten.
type Renderer struct{}

// init sets up the global functions for the ebiten backend.
func init() {
	render.NewGeoM = func() render.GeoM {
		return NewGeoM()
	}
}

// NewRenderer creates a new Ebiten-based renderer.
func NewRenderer() render.Renderer {
	return &Renderer{}
}

// NewImage creates a new image with the given dimensions.
func (r *Renderer) NewImage(width, height int) render.Image {
	return &Image{img: ebiten.NewImage(width, height)}
}

// FillCircle draws a filled circle on the destination image.
func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	vector.DrawFilledCircle(dst.(*Image).img, x, y, radius, clr, true)
}

// FillRect draws a filled rectangle on the destination image.
func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	vector.DrawFilledRect(dst.(*Image).img, x, y, width, height, clr, false)
}

// DrawText draws text on the destination image with the given face. The
// (x, y) position is the top-left corner of the text's bounding box.
func (r *Renderer) DrawText(dst render.Image, face render.Face, str string, x, y int, clr color.Color) {
	f := face.(*Face)

	opts := &text.DrawOptions{}
	opts.GeoM.Translate(float64(x), float64(y))
	opts.ColorScale.ScaleWithColor(clr)
	text.Draw(dst.(*Image).img, str, f.face, opts)
}

// MeasureText measures the bounding box of text rendered with the given face.
func (r *Renderer) MeasureText(face render.Face, str string) (width, height int) {
	f := face.(*Face)
	w, h := text.Measure(str, f.face, 0)
	return int(w), int(h)
}

// Image wraps an ebiten.Image to implement the render.Image interface.
type Image struct {
	img *ebiten.Image
}

// Bounds returns the bounds of the image.
func (i *Image) Bounds() image.Rectangle {
	return i.img.Bounds()
}

// Size returns the width and height of the image.
func (i *Image) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

// SubImage returns a sub-image view; drawing into it clips to r.
func (i *Image) SubImage(r image.Rectangle) render.Image {
	return &Image{img: i.img.SubImage(r).(*ebiten.Image)}
}

// Fill fills the entire image with the given color.
func (i *Image) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// Clear clears the image to transparent.
func (i *Image) Clear() {
	i.img.Clear()
}

// Dispose releases the image resources.
func (i *Image) Dispose() {
	if i.img != nil {
		i.img.Dispose()
	}
}

// DrawImage draws the source image onto this image.
func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	srcImg := src.(*Image).img

	if opts == nil {
		i.img.DrawImage(srcImg, nil)
		return
	}

	ebitenOpts := &ebiten.DrawImageOptions{}
	if opts.GeoM != nil {
		ebitenOpts.GeoM = opts.GeoM.(*GeoM).geoM
	}

	i.img.DrawImage(srcImg, ebitenOpts)
}

// GeoM wraps ebiten's GeoM to implement the render.GeoM interface.
type GeoM struct {
	geoM ebiten.GeoM
}

// NewGeoM creates a new geometric transformation matrix.
func NewGeoM() render.GeoM {
	return &GeoM{geoM: ebiten.GeoM{}}
}

// Translate shifts the image by (tx, ty).
func (g *GeoM) Translate(tx, ty float64) {
	g.geoM.Translate(tx, ty)
}

// Scale scales the image by (sx, sy).
func (g *GeoM) Scale(sx, sy float64) {
	g.geoM.Scale(sx, sy)
}

// Reset resets the matrix to identity.
func (g *GeoM) Reset() {
	g.geoM.Reset()
}

// Face wraps an ebiten text face to implement the render.Face interface.
type Face struct {
	face *text.GoTextFace
}

// Size returns the point size the face was loaded at.
func (f *Face) Size() float64 {
	return f.face.Size
}

// InputManager implements the render.InputManager interface using Ebiten.
type InputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &InputManager{}
}

// IsKeyPressed returns whether the specified key is currently pressed.
func (m *InputManager) IsKeyPressed(key render.Key) bool {
	return ebiten.IsKeyPressed(keyToEbitenKey(key))
}

// CloseRequested reports whether the window close button was pressed.
// The engine marks window closing as handled so the game can observe the
// request and shut down through its own quit path.
func (m *InputManager) CloseRequested() bool {
	return ebiten.IsWindowBeingClosed()
}

// keyToEbitenKey converts a render.Key to an ebiten.Key.
func keyToEbitenKey(key render.Key) ebiten.Key {
	switch key {
	case render.KeyW:
		return ebiten.KeyW
	case render.KeyA:
		return ebiten.KeyA
	case render.KeyS:
		return ebiten.KeyS
	case render.KeyD:
		return ebiten.KeyD
	case render.KeyEscape:
		return ebiten.KeyEscape
	default:
		return 0
	}
}

// ResourceLoader implements the render.ResourceLoader interface using Ebiten.
type ResourceLoader struct{}

// NewResourceLoader creates a new Ebiten-based resource loader.
func NewResourceLoader() render.ResourceLoader {
	return &ResourceLoader{}
}

// LoadImage loads an image from the specified file path.
func (l *ResourceLoader) LoadImage(path string) (render.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}
	return &Image{img: img}, nil
}

// LoadFont loads a font file at the given point size.
func (l *ResourceLoader) LoadFont(path string, size float64) (render.Face, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open font %s: %w", path, err)
	}
	defer f.Close()

	src, err := text.NewGoTextFaceSource(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}

	return &Face{face: &text.GoTextFace{Source: src, Size: size}}, nil
}

// Engine implements the render.Engine interface using Ebiten.
type Engine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &Engine{}
}

// SetWindowSize sets the window size in pixels.
func (e *Engine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *Engine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// RunGame runs the game loop with the provided game. Ebiten paces the loop
// at a fixed tick rate; this is the single pacing point for the whole game.
func (e *Engine) RunGame(game render.Game) error {
	ebiten.SetWindowClosingHandled(true)
	err := ebiten.RunGame(&gameAdapter{game: game})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// gameAdapter adapts a render.Game to the ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	if err := a.game.Update(); err != nil {
		if errors.Is(err, render.Termination) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&Image{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
