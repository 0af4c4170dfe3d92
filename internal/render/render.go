// Package render defines the interfaces that abstract the underlying
// graphics/input engine. Game logic only talks to these interfaces; the
// ebiten subpackage is the one place that touches the real backend, so the
// simulation stays engine-free and testable.
package render

import (
	"errors"
	"image"
	"image/color"
)

// Termination is returned from Game.Update to stop the game loop cleanly.
// The backend translates it into its own shutdown signal.
var Termination = errors.New("render: termination requested")

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine.
type Renderer interface {
	// NewImage creates a new offscreen image with the given dimensions.
	NewImage(width, height int) Image

	// Vector operations (for drawing shapes)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	FillRect(dst Image, x, y, width, height float32, clr color.Color)

	// Text operations
	DrawText(dst Image, face Face, text string, x, y int, clr color.Color)
	MeasureText(face Face, text string) (width, height int)
}

// Image represents a renderable surface that can be drawn to or drawn from.
type Image interface {
	Bounds() image.Rectangle
	Size() (width, height int)

	// SubImage returns a view restricted to r. Drawing into the view clips
	// to r, which is how the sight circle is kept inside the playfield.
	SubImage(r image.Rectangle) Image

	Fill(clr color.Color)
	Clear()

	DrawImage(src Image, opts *DrawImageOptions)

	Dispose()
}

// DrawImageOptions contains options for drawing an image.
type DrawImageOptions struct {
	GeoM GeoM
}

// GeoM represents a geometric transformation matrix.
type GeoM interface {
	// Translate shifts the image by (tx, ty).
	Translate(tx, ty float64)

	// Scale scales the image by (sx, sy). Negative factors mirror, which is
	// how sprites are flipped horizontally.
	Scale(sx, sy float64)

	// Reset resets the matrix to identity.
	Reset()
}

// NewGeoM creates a new geometric transformation matrix.
// This is implemented by the specific renderer backend.
var NewGeoM func() GeoM

// Face is an opaque handle to a loaded font at a fixed point size.
type Face interface {
	// Size returns the point size the face was loaded at.
	Size() float64
}

// InputManager handles input from the user.
type InputManager interface {
	// IsKeyPressed reports whether key is held during the current frame.
	IsKeyPressed(key Key) bool

	// CloseRequested reports whether the host window received a close
	// request this frame. The request is observed, not consumed; the game
	// decides whether to terminate.
	CloseRequested() bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game cares about.
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyEscape
)

// ResourceLoader handles loading assets like images and fonts from disk.
// Load failures are fatal at startup; the game cannot run without assets.
type ResourceLoader interface {
	LoadImage(path string) (Image, error)
	LoadFont(path string, size float64) (Face, error)
}

// Game represents the game interface that the engine will call.
type Game interface {
	// Update advances the simulation one fixed tick. Returning Termination
	// stops the loop.
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the
	// logical screen size used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
// The engine owns frame pacing: Update runs at a fixed tick rate, exactly
// once per frame, regardless of how many clocks the game drives from it.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
