// Package ebiten is the Ebiten-based graphical renderer. It owns the
// window loop: Update collects raw input and advances the simulation,
// Draw is a read-only pass over the game state, Layout fixes the
// logical scene size and lets Ebiten scale it to the window.
package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	engineinput "github.com/Megaman222111/gift/pkg/engine/input"
	"github.com/Megaman222111/gift/pkg/game/content"
	"github.com/Megaman222111/gift/pkg/game/renderer"
	"github.com/Megaman222111/gift/pkg/game/state"
)

// Renderer is the Ebiten-based renderer.
type Renderer struct {
	scale  int
	title  string
	frames []content.Frame

	game   *state.Game
	router *engineinput.Router
	last   time.Time

	fonts fontSet
}

var _ renderer.Renderer = (*Renderer)(nil)

// New creates a renderer with the given integer window scale and the
// decorative wall frames to draw behind the scene.
func New(scale int, title string, frames []content.Frame) *Renderer {
	if scale < 1 {
		scale = 1
	}
	r := &Renderer{
		scale:  scale,
		title:  title,
		frames: frames,
		router: engineinput.NewRouter(),
	}
	r.fonts.load()
	return r
}

// Measure returns the pixel width of a string at UI size. It is the
// text metric the wrapping code uses, so wrapped lines match what Draw
// actually renders.
func (r *Renderer) Measure(s string) float64 {
	return r.fonts.width(s)
}

// Run enters the Ebiten main loop and blocks until the window closes.
func (r *Renderer) Run(g *state.Game) error {
	r.game = g
	r.last = time.Now()
	ebiten.SetWindowSize(state.SceneWidth*r.scale, state.SceneHeight*r.scale)
	ebiten.SetWindowTitle(r.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(r)
}

// Layout reports the logical scene size; Ebiten scales it to the
// window, preserving the pixel grid.
func (r *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return state.SceneWidth, state.SceneHeight
}
