package gameplay

import (
	"math"

	"github.com/Megaman222111/gift/pkg/engine/geom"
	"github.com/Megaman222111/gift/pkg/engine/input"
	"github.com/Megaman222111/gift/pkg/game/arcade"
	"github.com/Megaman222111/gift/pkg/game/state"
)

// MaxDelta caps the per-step elapsed time so a stalled frame (window
// drag, debugger pause) does not teleport the simulation.
const MaxDelta = 0.05

// Advance runs one simulation step: drain buffered intents, then update
// the one subsystem the overlay mode marks live. The renderer's pure
// draw pass follows outside this function.
func Advance(g *state.Game, router *input.Router, dt float64) {
	if dt > MaxDelta {
		dt = MaxDelta
	}
	if dt < 0 {
		dt = 0
	}

	for _, intent := range router.Drain() {
		Route(g, intent)
	}

	switch g.Mode {
	case state.ModeArcade:
		if g.Arcade.Screen == arcade.ScreenSnake {
			steerSnake(g, router)
		}
		if g.Arcade.Screen != arcade.ScreenMenu {
			g.Arcade.Update(dt)
		}
	case state.ModeDialogue:
		g.Dialogue.Update(dt)
	case state.ModeExploring:
		dx, dy := router.Axis()
		MovePlayer(g, dx, dy, dt)
		refreshInteractHint(g)
	}
}

// steerSnake buffers the held movement axis as the snake's next
// direction. Diagonal input is ambiguous and leaves the heading alone.
func steerSnake(g *state.Game, router *input.Router) {
	dx, dy := router.Axis()
	switch {
	case math.Abs(dx) > math.Abs(dy):
		if dx > 0 {
			g.Arcade.Snake.SetDir(geom.DirRight)
		} else {
			g.Arcade.Snake.SetDir(geom.DirLeft)
		}
	case math.Abs(dy) > math.Abs(dx):
		if dy > 0 {
			g.Arcade.Snake.SetDir(geom.DirDown)
		} else {
			g.Arcade.Snake.SetDir(geom.DirUp)
		}
	}
}
