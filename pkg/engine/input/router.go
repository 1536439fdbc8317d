package input

import "math"

// Router collects input between simulation steps. Key presses and
// releases update held-key state that movement samples continuously;
// clicks, wheel events, and named-key presses enqueue discrete Intents
// that the step drains in arrival order. Nothing is interpreted here:
// what an intent means depends on the active overlay mode and is decided
// by the routing layer in the game.
type Router struct {
	held  map[Action]bool
	queue []Intent
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{held: make(map[Action]bool)}
}

// KeyDown records a raw key press. Movement keys only update held state;
// every other bound key enqueues its intent.
func (r *Router) KeyDown(raw RawInput) {
	intent := MapToIntent(NewDebouncedInput(raw))
	switch intent.Action {
	case ActionNone:
	case ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight:
		r.held[intent.Action] = true
	default:
		r.queue = append(r.queue, intent)
	}
}

// KeyUp records a raw key release.
func (r *Router) KeyUp(raw RawInput) {
	intent := MapToIntent(NewDebouncedInput(raw))
	switch intent.Action {
	case ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight:
		r.held[intent.Action] = false
	}
}

// Click enqueues a primary-action intent at scene coordinates.
func (r *Router) Click(x, y float64) {
	r.queue = append(r.queue, Intent{Action: ActionPrimary, X: x, Y: y})
}

// Scroll enqueues a wheel intent with a scene-pixel delta.
func (r *Router) Scroll(dy float64) {
	if dy == 0 {
		return
	}
	r.queue = append(r.queue, Intent{Action: ActionScroll, ScrollY: dy})
}

// Axis returns the current movement input as a unit-or-shorter vector.
// Opposite held keys cancel; diagonal input is normalized so diagonal
// movement is not faster than orthogonal movement.
func (r *Router) Axis() (dx, dy float64) {
	if r.held[ActionMoveLeft] {
		dx -= 1
	}
	if r.held[ActionMoveRight] {
		dx += 1
	}
	if r.held[ActionMoveUp] {
		dy -= 1
	}
	if r.held[ActionMoveDown] {
		dy += 1
	}
	if dx != 0 && dy != 0 {
		mag := math.Hypot(dx, dy)
		dx /= mag
		dy /= mag
	}
	return dx, dy
}

// Drain returns the buffered intents and clears the queue.
func (r *Router) Drain() []Intent {
	out := r.queue
	r.queue = nil
	return out
}

// Reset clears all held-key state, e.g. when the window loses focus.
func (r *Router) Reset() {
	for k := range r.held {
		delete(r.held, k)
	}
	r.queue = nil
}
