package dino

// Autopilot is a Button that presses itself when an obstacle is about to
// reach the trex. It drives headless runs and demos.
type Autopilot struct {
	game      *Game
	lookAhead int
}

// NewAutopilot creates an autopilot that jumps once the nearest obstacle's
// left edge is within lookAhead pixels of the trex's right edge. Attach it to
// a game with Watch before the first tick.
func NewAutopilot(lookAhead int) *Autopilot {
	return &Autopilot{lookAhead: lookAhead}
}

// Watch points the autopilot at g.
func (a *Autopilot) Watch(g *Game) {
	a.game = g
}

// Active reports whether to jump now. It never presses while the game is
// over, so the reset gesture stays with the player, nor while the trex is
// already in the air.
func (a *Autopilot) Active() bool {
	if a.game == nil || a.game.State() != Playing || a.game.Trex().Airborne() {
		return false
	}

	trex := a.game.Trex().BoundingBox()
	trexRight, ok := trex.BottomRight()
	if !ok {
		return false
	}

	for o := range a.game.Obstacles().All() {
		box := o.BoundingBox()
		right, ok := box.BottomRight()
		if !ok || right.X < trex.Origin.X {
			continue // Already behind the trex
		}
		return box.Origin.X-trexRight.X <= a.lookAhead
	}
	return false
}
