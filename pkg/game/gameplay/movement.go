// Package gameplay provides the per-frame simulation step: player
// movement with collision, intent routing per overlay mode, and the
// mini-game update dispatch.
package gameplay

import (
	"math"

	"github.com/Megaman222111/gift/pkg/engine/geom"
	"github.com/Megaman222111/gift/pkg/game/state"
	"github.com/Megaman222111/gift/pkg/game/world"
)

// Walk animation tuning. WalkPhase feeds the renderer only.
const (
	walkPhaseRate  = 8.0 // phase units per second while moving
	walkPhaseDecay = 16.0
)

// AttemptMove resolves an intended delta against world bounds and solid
// objects, one axis at a time. Resolving axes independently lets the
// player slide along a wall when diagonal movement is blocked on one
// axis only. The returned position never overlaps a solid and stays
// within bounds.
func AttemptMove(pos geom.Vec2, delta geom.Vec2, size float64, bounds geom.Rect, solids []*world.Object) geom.Vec2 {
	next := pos

	x := geom.ClampF(next.X+delta.X, bounds.X, bounds.Right()-size)
	if !collides(geom.NewRect(x, next.Y, size, size), solids) {
		next.X = x
	}

	y := geom.ClampF(next.Y+delta.Y, bounds.Y, bounds.Bottom()-size)
	if !collides(geom.NewRect(next.X, y, size, size), solids) {
		next.Y = y
	}

	return next
}

// collides reports whether the rectangle overlaps any solid.
func collides(r geom.Rect, solids []*world.Object) bool {
	for _, o := range solids {
		if r.Overlaps(o.Rect) {
			return true
		}
	}
	return false
}

// MovePlayer integrates one frame of player movement from the input
// axis (dx, dy). Diagonal input is normalized so it is not faster than
// orthogonal movement. Idle input decays the walk phase toward zero.
func MovePlayer(g *state.Game, dx, dy, dt float64) {
	p := &g.Player

	if dx == 0 && dy == 0 {
		p.WalkPhase -= walkPhaseDecay * dt
		if p.WalkPhase < 0 {
			p.WalkPhase = 0
		}
		return
	}

	if dx != 0 && dy != 0 {
		mag := math.Hypot(dx, dy)
		dx /= mag
		dy /= mag
	}

	// Facing follows the dominant input axis.
	if math.Abs(dx) >= math.Abs(dy) {
		if dx > 0 {
			p.Facing = geom.DirRight
		} else {
			p.Facing = geom.DirLeft
		}
	} else {
		if dy > 0 {
			p.Facing = geom.DirDown
		} else {
			p.Facing = geom.DirUp
		}
	}

	delta := geom.Vec2{X: dx * p.Speed * dt, Y: dy * p.Speed * dt}
	next := AttemptMove(geom.Vec2{X: p.X, Y: p.Y}, delta, p.Size, g.Bounds, g.Registry.Solids())
	p.X = next.X
	p.Y = next.Y
	p.WalkPhase += walkPhaseRate * dt
}
