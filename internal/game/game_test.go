package game

import (
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"chosenoffset.com/nightmaze/internal/entity"
	"chosenoffset.com/nightmaze/internal/geom"
	"chosenoffset.com/nightmaze/internal/render"
)

// fakeRenderer lets the simulation run headless in tests.
type fakeRenderer struct{}

func (fakeRenderer) NewImage(w, h int) render.Image { return &fakeImage{w: w, h: h} }

func (fakeRenderer) FillCircle(render.Image, float32, float32, float32, color.Color)        {}
func (fakeRenderer) FillRect(render.Image, float32, float32, float32, float32, color.Color) {}
func (fakeRenderer) DrawText(render.Image, render.Face, string, int, int, color.Color)      {}
func (fakeRenderer) MeasureText(_ render.Face, text string) (int, int) {
	return 6 * len(text), 12
}

type fakeImage struct {
	w, h int
}

func (f *fakeImage) Bounds() image.Rectangle { return image.Rect(0, 0, f.w, f.h) }
func (f *fakeImage) Size() (int, int)        { return f.w, f.h }
func (f *fakeImage) SubImage(r image.Rectangle) render.Image {
	return &fakeImage{w: r.Dx(), h: r.Dy()}
}
func (f *fakeImage) Fill(color.Color)                                 {}
func (f *fakeImage) Clear()                                           {}
func (f *fakeImage) DrawImage(render.Image, *render.DrawImageOptions) {}
func (f *fakeImage) Dispose()                                         {}

type fakeFace struct{}

func (fakeFace) Size() float64 { return 12 }

// fakeInput is a scriptable input manager.
type fakeInput struct {
	pressed map[render.Key]bool
	closing bool
}

func (f *fakeInput) IsKeyPressed(k render.Key) bool { return f.pressed[k] }
func (f *fakeInput) CloseRequested() bool           { return f.closing }

func newTestGame() (*Game, *fakeInput) {
	input := &fakeInput{pressed: map[render.Key]bool{}}
	g := New(Config{
		Renderer:   fakeRenderer{},
		Input:      input,
		ClockFace:  fakeFace{},
		BulletFace: fakeFace{},
		Seed:       1,
		Logger:     log.New(io.Discard),
	})
	return g, input
}

func TestInitialState(t *testing.T) {
	g, _ := newTestGame()

	if g.Phase() != PhaseCountdown {
		t.Errorf("initial phase = %v, expected countdown", g.Phase())
	}
	if len(g.movables) != 1 {
		t.Errorf("initial movable roster has %d entries, expected just the player", len(g.movables))
	}
	// Player plus the countdown display
	if len(g.drawables) != 2 {
		t.Errorf("initial drawable roster has %d entries, expected 2", len(g.drawables))
	}
}

func TestSpawnerTiming(t *testing.T) {
	s := newSpawner()

	// Nothing during the initial 2-second delay
	for i := 0; i < 119; i++ {
		if s.Tick(dt) {
			t.Fatalf("spawned during initial delay at frame %d", i)
		}
	}
	if !s.Tick(dt) {
		t.Fatal("no spawn when the initial delay elapsed")
	}

	// Then one spawn per steady interval
	spawns := 0
	for i := 0; i < 60; i++ {
		if s.Tick(dt) {
			spawns++
		}
	}
	if spawns != 4 {
		t.Errorf("%d spawns in one second, expected 4", spawns)
	}
}

func TestCountdownPhaseSpawnsBullets(t *testing.T) {
	g, _ := newTestGame()

	// Three seconds: past the initial delay and a few steady intervals
	for i := 0; i < 3*TPS; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Update() failed: %v", err)
		}
	}

	if len(g.bullets) == 0 {
		t.Fatal("no bullets spawned during the countdown")
	}
	// Every bullet is in both rosters
	if len(g.movables) != 1+len(g.bullets) {
		t.Errorf("movables = %d, expected player + %d bullets", len(g.movables), len(g.bullets))
	}
	if len(g.drawables) != 2+len(g.bullets) {
		t.Errorf("drawables = %d, expected player + countdown + %d bullets", len(g.drawables), len(g.bullets))
	}
}

func TestCountdownExpiryTransition(t *testing.T) {
	g, _ := newTestGame()

	// Run out the full countdown
	for i := 0; i < 21*TPS; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Update() failed at frame %d: %v", i, err)
		}
		if g.Phase() == PhaseNavigation {
			break
		}
	}

	if g.Phase() != PhaseNavigation {
		t.Fatal("countdown expiry did not enter the navigation phase")
	}

	// Roster swap is wholesale: no leftover bullets anywhere
	if len(g.bullets) != 0 {
		t.Errorf("%d bullets survived the transition", len(g.bullets))
	}
	if len(g.movables) != 1 || g.movables[0] != entity.Movable(g.player) {
		t.Errorf("movable roster = %d entries, expected exactly the player", len(g.movables))
	}
	want := 1 + len(g.walls) + 2 // player, walls, goal, stopwatch
	if len(g.drawables) != want {
		t.Errorf("drawable roster = %d entries, expected %d", len(g.drawables), want)
	}
	if g.stopwatch == nil {
		t.Error("no stopwatch after the transition")
	}

	// Player restarted at the fixed point
	if pos := g.player.Pos(); pos != restartPoint {
		t.Errorf("player at %+v, expected restart point %+v", pos, restartPoint)
	}
}

func TestBulletHitDimsSightAndRemoves(t *testing.T) {
	g, _ := newTestGame()

	// Bring sight up to 0.5 (25 frames at 0.02 per frame)
	for i := 0; i < 25; i++ {
		g.player.Animate(dt)
	}

	// Drive a bullet into the player
	b := entity.NewTextBullet(fakeRenderer{}, fakeFace{}, g.player.Pos().Y, "hi", geom.Vec2{X: 2})
	g.bullets = append(g.bullets, b)
	g.rebuildCountdownRosters()
	for !b.Hitbox().Intersects(g.player.Hitbox()) {
		b.Move()
	}

	before := g.player.Sight()
	g.checkBulletCollisions()

	if got := g.player.Sight(); got >= before {
		t.Errorf("sight = %v after hit, expected a 0.05 decrement from %v", got, before)
	}
	if diff := before - g.player.Sight(); diff < 0.049 || diff > 0.051 {
		t.Errorf("sight decrement = %v, expected 0.05", diff)
	}
	if len(g.bullets) != 0 {
		t.Error("bullet not removed from the bullet roster")
	}
	for _, m := range g.movables {
		if m == entity.Movable(b) {
			t.Error("bullet not removed from the movable roster")
		}
	}
	for _, d := range g.drawables {
		if d == entity.Drawable(b) {
			t.Error("bullet not removed from the drawable roster")
		}
	}
}

func TestBulletHitBelowSightFloor(t *testing.T) {
	g, _ := newTestGame()

	// Sight = 0.08: below the decrement floor
	for i := 0; i < 4; i++ {
		g.player.Animate(dt)
	}
	before := g.player.Sight()

	b := entity.NewTextBullet(fakeRenderer{}, fakeFace{}, g.player.Pos().Y, "hi", geom.Vec2{X: 2})
	g.bullets = append(g.bullets, b)
	g.rebuildCountdownRosters()
	for !b.Hitbox().Intersects(g.player.Hitbox()) {
		b.Move()
	}

	g.checkBulletCollisions()

	if g.player.Sight() != before {
		t.Errorf("sight changed below the floor: %v -> %v", before, g.player.Sight())
	}
	if len(g.bullets) != 0 {
		t.Error("bullet should still be removed on a hit below the floor")
	}
}

func TestWallCollisionResets(t *testing.T) {
	g, _ := newTestGame()
	g.enterNavigation()

	// Put the player onto a wall with some velocity
	g.player.Restart(geom.Vec2{X: 310, Y: 110})
	g.player.KeyMove(entity.KeyState{Right: true})
	if v := g.player.Velocity(); v.X == 0 {
		t.Fatal("test setup: expected nonzero velocity")
	}

	g.checkWallCollisions()

	if pos := g.player.Pos(); pos != restartPoint {
		t.Errorf("player at %+v after wall contact, expected %+v", pos, restartPoint)
	}
	if v := g.player.Velocity(); v.X != 0 || v.Y != 0 {
		t.Errorf("velocity = %+v after wall contact, expected zero", v)
	}
}

func TestGoalReachedFinishes(t *testing.T) {
	g, _ := newTestGame()
	g.enterNavigation()

	// Inside the goal zone (600,520 80x140), clear of every wall
	g.player.Restart(geom.Vec2{X: 640, Y: 560})

	err := g.Update()

	if g.Phase() != PhaseFinished {
		t.Fatalf("phase = %v, expected finished", g.Phase())
	}
	if err != render.Termination {
		t.Errorf("Update() = %v, expected termination on the finishing frame", err)
	}
}

func TestQuitFromAnyPhase(t *testing.T) {
	g, input := newTestGame()

	input.pressed[render.KeyEscape] = true
	if err := g.Update(); err != render.Termination {
		t.Errorf("escape key: Update() = %v, expected termination", err)
	}

	g2, input2 := newTestGame()
	input2.closing = true
	if err := g2.Update(); err != render.Termination {
		t.Errorf("window close: Update() = %v, expected termination", err)
	}
}

func TestLoadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.yaml")
	content := `
name: test
walls:
  - {x: 0, y: 100, w: 200, h: 20}
  - {x: 300, y: 100, w: 20, h: 100}
goal: {x: 600, y: 520, w: 80, h: 140}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write level file: %v", err)
	}

	level, err := LoadLevel(path)
	if err != nil {
		t.Fatalf("LoadLevel() failed: %v", err)
	}
	if len(level.Walls) != 2 {
		t.Errorf("loaded %d walls, expected 2", len(level.Walls))
	}
	if level.Goal != geom.NewRect(600, 520, 80, 140) {
		t.Errorf("goal = %+v", level.Goal)
	}
}

func TestLoadLevelRejectsDegenerateGoal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.yaml")
	content := `
walls:
  - {x: 0, y: 100, w: 200, h: 20}
goal: {x: 600, y: 520, w: 0, h: 140}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write level file: %v", err)
	}

	if _, err := LoadLevel(path); err == nil {
		t.Error("expected an error for a degenerate goal zone")
	}
}

func TestDefaultLevel(t *testing.T) {
	level := DefaultLevel()

	if len(level.Walls) != 33 {
		t.Errorf("default maze has %d walls, expected 33", len(level.Walls))
	}
	if level.Goal.W <= 0 || level.Goal.H <= 0 {
		t.Error("default goal zone is degenerate")
	}
}
