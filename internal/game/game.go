// Package game owns the simulation loop: the phase state machine, the live
// entity rosters, collision dispatch, and the per-frame ordering. It talks
// to the host engine only through the render interfaces.
package game

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"chosenoffset.com/nightmaze/internal/clock"
	"chosenoffset.com/nightmaze/internal/entity"
	"chosenoffset.com/nightmaze/internal/geom"
	"chosenoffset.com/nightmaze/internal/render"
	"chosenoffset.com/nightmaze/internal/sprite"
)

// Playfield and pacing constants.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
	TPS          = 60

	// dt is the fixed simulation step. The engine paces Update at TPS,
	// exactly once per frame; every clock is fed this same step.
	dt = 1.0 / TPS

	countdownSeconds = 20.0
)

// Fixed player spawn points.
var (
	initialSpawn = geom.Vec2{X: 200, Y: 200}
	restartPoint = geom.Vec2{X: 50, Y: 50}
	playerAccel  = geom.Vec2{X: 0.25, Y: 0.25}
)

// Phase is one of the mutually exclusive simulation states.
type Phase int

const (
	// PhaseCountdown is the opening phase: bullets spawn and the player
	// dodges them until the 20-second countdown expires.
	PhaseCountdown Phase = iota

	// PhaseNavigation follows the countdown: the maze is live and the
	// player must reach the goal zone against a stopwatch.
	PhaseNavigation

	// PhaseFinished is terminal; the loop signals completion and stops.
	PhaseFinished
)

// String returns the phase name for logging.
func (p Phase) String() string {
	switch p {
	case PhaseCountdown:
		return "countdown"
	case PhaseNavigation:
		return "navigation"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Config carries everything the game needs from the host.
type Config struct {
	Renderer   render.Renderer
	Input      render.InputManager
	Sprites    *sprite.Sheet
	ClockFace  render.Face
	BulletFace render.Face
	Level      *Level
	Seed       int64 // 0 means time-based
	Debug      bool
	Logger     *log.Logger
}

// Game holds the live simulation state. Exactly one roster of movables and
// drawables is live at any time; a phase transition replaces the rosters
// wholesale, never patches them incrementally.
type Game struct {
	renderer   render.Renderer
	input      render.InputManager
	bulletFace render.Face
	clockFace  render.Face
	debug      bool
	rng        *rand.Rand
	logger     *log.Logger

	phase  Phase
	player *entity.Player
	walls  []*entity.Wall
	goal   *entity.Goal

	countdown *clock.Countdown
	stopwatch *clock.Stopwatch
	spawner   *spawner

	movables  []entity.Movable
	drawables []entity.Drawable
	bullets   []*entity.TextBullet
}

// New builds a game in the countdown phase.
func New(cfg Config) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	level := cfg.Level
	if level == nil {
		level = DefaultLevel()
	}

	g := &Game{
		renderer:   cfg.Renderer,
		input:      cfg.Input,
		bulletFace: cfg.BulletFace,
		clockFace:  cfg.ClockFace,
		debug:      cfg.Debug,
		rng:        rand.New(rand.NewSource(seed)),
		logger:     logger,
		phase:      PhaseCountdown,
		spawner:    newSpawner(),
	}

	bounds := geom.NewRect(0, 0, ScreenWidth, ScreenHeight)
	g.player = entity.NewPlayer(initialSpawn, playerAccel, bounds, cfg.Renderer, cfg.Sprites)

	for _, rect := range level.Walls {
		g.walls = append(g.walls, entity.NewWall(cfg.Renderer, rect, cfg.Debug))
	}
	g.goal = entity.NewGoal(cfg.Renderer, level.Goal, cfg.Debug)

	g.countdown = clock.NewCountdown(countdownSeconds, nil)
	g.countdown.SetDisplay(cfg.Renderer, cfg.ClockFace)

	g.movables = []entity.Movable{g.player}
	g.drawables = []entity.Drawable{g.player, g.countdown}

	return g
}

// Update advances the simulation one frame. The ordering is fixed: quit
// check, clock ticks, phase-specific collisions, input-driven velocity,
// movement, animation, bullet collisions, goal check.
func (g *Game) Update() error {
	keys := g.readKeys()

	if g.input.IsKeyPressed(render.KeyEscape) || g.input.CloseRequested() {
		g.logger.Info("quit requested")
		return render.Termination
	}

	switch g.phase {
	case PhaseCountdown:
		if g.countdown.Tick(dt) {
			g.enterNavigation()
		}
	case PhaseNavigation:
		g.stopwatch.Tick(dt)
	}

	if g.phase == PhaseCountdown && g.spawner.Tick(dt) {
		g.spawnWhisper()
	}

	if g.phase == PhaseNavigation {
		g.checkWallCollisions()
	}

	g.player.KeyMove(keys)

	for _, m := range g.movables {
		m.Move()
	}

	g.player.Animate(dt)

	g.checkBulletCollisions()

	if g.phase == PhaseNavigation {
		g.checkGoalCollision()
	}

	if g.phase == PhaseFinished {
		g.logger.Info("maze completed", "time", g.stopwatch.Elapsed())
		return render.Termination
	}

	return nil
}

// readKeys snapshots the held movement keys for this frame.
func (g *Game) readKeys() entity.KeyState {
	return entity.KeyState{
		Up:    g.input.IsKeyPressed(render.KeyW),
		Down:  g.input.IsKeyPressed(render.KeyS),
		Left:  g.input.IsKeyPressed(render.KeyA),
		Right: g.input.IsKeyPressed(render.KeyD),
	}
}

// enterNavigation applies the countdown→navigation transition as a single
// roster swap: all bullets are discarded, the maze becomes live, the
// player restarts at the fixed point with its sight revealed, and the
// countdown is replaced by a fresh stopwatch.
func (g *Game) enterNavigation() {
	g.logger.Info("phase transition", "from", PhaseCountdown, "to", PhaseNavigation)

	g.bullets = nil

	g.stopwatch = clock.NewStopwatch()
	g.stopwatch.SetDisplay(g.renderer, g.clockFace)

	g.player.RevealSight()
	g.player.Restart(restartPoint)

	drawables := make([]entity.Drawable, 0, len(g.walls)+3)
	drawables = append(drawables, g.player)
	for _, w := range g.walls {
		drawables = append(drawables, w)
	}
	drawables = append(drawables, g.goal, g.stopwatch)

	g.drawables = drawables
	g.movables = []entity.Movable{g.player}

	g.phase = PhaseNavigation
}

// checkWallCollisions tests the player against every wall. Any contact is
// a hard reset to the restart point with zeroed velocity, not a sliding
// response.
func (g *Game) checkWallCollisions() {
	for _, w := range g.walls {
		entity.Collide(g.player, w, func(_, _ entity.Collidable) {
			g.player.Restart(restartPoint)
		})
	}
}

// checkBulletCollisions tests the player against every live bullet. A hit
// dims the player's sight and removes the bullet from all rosters; the
// removals are applied after the scan, never mid-iteration.
func (g *Game) checkBulletCollisions() {
	if len(g.bullets) == 0 {
		return
	}

	var hit bool
	remaining := g.bullets[:0]
	for _, b := range g.bullets {
		collided := false
		entity.Collide(g.player, b, func(_, _ entity.Collidable) {
			collided = true
		})
		if collided {
			hit = true
			g.player.DimSight()
			continue
		}
		remaining = append(remaining, b)
	}

	if hit {
		g.bullets = remaining
		g.rebuildCountdownRosters()
	}
}

// rebuildCountdownRosters rewrites the countdown-phase rosters from the
// surviving bullets.
func (g *Game) rebuildCountdownRosters() {
	movables := make([]entity.Movable, 0, len(g.bullets)+1)
	drawables := make([]entity.Drawable, 0, len(g.bullets)+2)

	movables = append(movables, g.player)
	drawables = append(drawables, g.player, g.countdown)
	for _, b := range g.bullets {
		movables = append(movables, b)
		drawables = append(drawables, b)
	}

	g.movables = movables
	g.drawables = drawables
}

// checkGoalCollision transitions to the finished phase when the player
// reaches the goal zone.
func (g *Game) checkGoalCollision() {
	entity.Collide(g.player, g.goal, func(_, _ entity.Collidable) {
		g.phase = PhaseFinished
	})
}

// Phase returns the current simulation phase.
func (g *Game) Phase() Phase {
	return g.phase
}
