// Package dino implements the runner game: a trex jumping over cacti that
// scroll in from the right edge of a small monochrome screen.
package dino

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ImplFerris/pico-rex/internal/config"
	"github.com/ImplFerris/pico-rex/internal/core"
)

// GameState is the top-level phase of a game.
type GameState int

const (
	Playing  GameState = iota // Frames advance and render
	GameOver                  // Frozen, polling for the reset gesture
)

// String returns a human-readable name for the state.
func (s GameState) String() string {
	switch s {
	case Playing:
		return "Playing"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event tells the caller what a Tick did.
type Event int

const (
	EventFrame    Event = iota // A normal playing frame was rendered
	EventGameOver              // The frame collided and the game-over screen was rendered
	EventPoll                  // A game-over poll that did not reset
	EventReset                 // The reset gesture completed and a fresh game started
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventFrame:
		return "Frame"
	case EventGameOver:
		return "GameOver"
	case EventPoll:
		return "Poll"
	case EventReset:
		return "Reset"
	default:
		return "Unknown"
	}
}

// TickResult reports the outcome of one Tick.
type TickResult struct {
	Event Event
	Wait  time.Duration // How long to wait before the next Tick
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for game events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// Game owns the trex, obstacles, ground and score, and runs the per-frame
// pipeline against a Surface.
type Game struct {
	cfg     config.RunnerConfig
	surface core.Surface
	button  core.Button
	rng     core.Random
	logger  *log.Logger

	state     GameState
	score     uint32
	frames    int
	holdPolls int // Consecutive active polls while GameOver

	trex      *Trex
	obstacles *ObstacleManager
	ground    *Ground
	strip     *core.Sprite
	layers    []core.Drawable // Reused by Render
}

// NewGame creates a game in the Playing state. cfg is assumed valid.
func NewGame(cfg config.RunnerConfig, surface core.Surface, button core.Button, rng core.Random, opts ...Option) *Game {
	g := &Game{
		cfg:     cfg,
		surface: surface,
		button:  button,
		rng:     rng,
		strip:   newGroundStrip(cfg.Ground.StripLength),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	g.Reset()
	return g
}

// Reset re-initializes the game: trex on the ground, two fresh obstacles,
// ground at offset 0 and score 0.
func (g *Game) Reset() {
	g.state = Playing
	g.score = 0
	g.frames = 0
	g.holdPolls = 0
	g.trex = NewTrex(g.cfg.Trex)
	g.obstacles = NewObstacleManager(g.cfg, g.rng)
	g.ground = NewGround(g.cfg, g.strip)
}

// State returns the current phase.
func (g *Game) State() GameState {
	return g.state
}

// Score returns the number of obstacles recycled in this game.
func (g *Game) Score() uint32 {
	return g.score
}

// Frames returns the number of playing frames since the last reset.
func (g *Game) Frames() int {
	return g.frames
}

// Trex returns the player character.
func (g *Game) Trex() *Trex {
	return g.trex
}

// Obstacles returns the obstacle manager.
func (g *Game) Obstacles() *ObstacleManager {
	return g.obstacles
}

// GroundOffset returns the ground scroll phase.
func (g *Game) GroundOffset() int {
	return g.ground.Offset()
}

// Tick runs one step of the active phase: a full frame while Playing or one
// reset poll while GameOver.
func (g *Game) Tick() (TickResult, error) {
	if g.state == GameOver {
		return g.poll()
	}
	return g.frame()
}

// frame runs the playing pipeline. Order matters: input, jump, obstacles,
// ground, trex, collision, render.
func (g *Game) frame() (TickResult, error) {
	g.frames++

	if g.button.Active() && g.trex.RequestJump() {
		g.logger.Debug("jump", "frame", g.frames)
	}

	if g.obstacles.Advance(g.cfg.Obstacles.Velocity) {
		g.score++
		front, _ := g.obstacles.Front()
		g.logger.Debug("obstacle recycled",
			"frame", g.frames, "score", g.score, "recycled", g.obstacles.Recycled(), "next", front.Kind)
	}

	g.ground.Advance(g.cfg.Obstacles.Velocity)
	g.trex.Advance()

	if Collides(g.trex, g.obstacles.All()) {
		g.state = GameOver
		g.holdPolls = 0
		g.logger.Debug("game over", "frame", g.frames, "score", g.score, "trex", g.trex.Position())
		if err := g.RenderGameOver(); err != nil {
			return TickResult{}, err
		}
		return TickResult{Event: EventGameOver, Wait: g.cfg.Timing.GameOverHold}, nil
	}

	if err := g.Render(); err != nil {
		return TickResult{}, err
	}
	return TickResult{Event: EventFrame, Wait: g.cfg.Timing.Frame}, nil
}

// poll samples the button once. The reset gesture is the button held for
// more than HoldPolls consecutive polls; any release starts the count over.
func (g *Game) poll() (TickResult, error) {
	if !g.button.Active() {
		g.holdPolls = 0
		return TickResult{Event: EventPoll, Wait: g.cfg.Timing.Poll}, nil
	}

	g.holdPolls++
	if g.holdPolls <= g.cfg.Reset.HoldPolls {
		return TickResult{Event: EventPoll, Wait: g.cfg.Timing.Poll}, nil
	}

	g.logger.Debug("reset", "final_score", g.score, "frames", g.frames)
	g.Reset()
	if err := g.Render(); err != nil {
		return TickResult{}, err
	}
	return TickResult{Event: EventReset, Wait: g.cfg.Timing.ResetHold}, nil
}

// Render clears the surface, draws score, ground, obstacles and trex, then
// flushes once.
func (g *Game) Render() error {
	if err := g.clear(); err != nil {
		return err
	}
	if err := g.drawScore(); err != nil {
		return err
	}

	// Back to front, trex last.
	g.layers = append(g.layers[:0], g.ground)
	for o := range g.obstacles.All() {
		g.layers = append(g.layers, o)
	}
	g.layers = append(g.layers, g.trex)

	for _, layer := range g.layers {
		if err := layer.Draw(g.surface); err != nil {
			return fmt.Errorf("dino: draw %T: %w", layer, err)
		}
	}
	return g.flush()
}

// RenderGameOver draws the final score and a framed game-over banner.
func (g *Game) RenderGameOver() error {
	if err := g.clear(); err != nil {
		return err
	}
	if err := g.drawScore(); err != nil {
		return err
	}

	inner := core.NewRect(gameOverBox.Origin.X+1, gameOverBox.Origin.Y+1, gameOverBox.W-2, gameOverBox.H-2)
	if err := g.surface.Fill(gameOverBox, true); err != nil {
		return fmt.Errorf("dino: draw game over frame: %w", err)
	}
	if err := g.surface.Fill(inner, false); err != nil {
		return fmt.Errorf("dino: draw game over frame: %w", err)
	}
	if err := g.surface.Text(gameOverTitle, "GAME OVER"); err != nil {
		return fmt.Errorf("dino: draw game over text: %w", err)
	}
	if err := g.surface.Text(gameOverHint, gameOverHintText); err != nil {
		return fmt.Errorf("dino: draw game over text: %w", err)
	}
	return g.flush()
}

func (g *Game) clear() error {
	screen := core.NewRect(0, 0, g.cfg.Screen.Width, g.cfg.Screen.Height)
	if err := g.surface.Fill(screen, false); err != nil {
		return fmt.Errorf("dino: clear: %w", err)
	}
	return nil
}

func (g *Game) drawScore() error {
	text := "Score: " + strconv.FormatUint(uint64(g.score), 10)
	if err := g.surface.Text(core.Pt(g.cfg.Score.X, g.cfg.Score.Y), text); err != nil {
		return fmt.Errorf("dino: draw score: %w", err)
	}
	return nil
}

func (g *Game) flush() error {
	if err := g.surface.Flush(); err != nil {
		return fmt.Errorf("dino: flush: %w", err)
	}
	return nil
}
