package gameplay

import (
	"fmt"

	"github.com/Megaman222111/gift/pkg/engine/input"
	"github.com/Megaman222111/gift/pkg/game/arcade"
	"github.com/Megaman222111/gift/pkg/game/devtools"
	"github.com/Megaman222111/gift/pkg/game/state"
	"github.com/Megaman222111/gift/pkg/game/world"
)

// InteractMargin is how far beyond the player's rectangle the
// interact key reaches, in scene pixels.
const InteractMargin = 10

// Route interprets one buffered intent according to the active overlay
// mode. An intent that means nothing in the current mode is a no-op.
func Route(g *state.Game, in input.Intent) {
	if in.Action == input.ActionDump {
		devtools.Dump(g)
		return
	}

	switch g.Mode {
	case state.ModeExploring:
		routeExploring(g, in)
	case state.ModeDialogue:
		routeDialogue(g, in)
	case state.ModePoems:
		routePoems(g, in)
	case state.ModeArcade:
		routeArcade(g, in)
	}
}

// routeExploring handles intents while the player walks freely.
func routeExploring(g *state.Game, in input.Intent) {
	switch in.Action {
	case input.ActionPrimary:
		if obj := g.Registry.ObjectAt(in.X, in.Y); obj != nil {
			Activate(g, obj)
		}
	case input.ActionInteract, input.ActionConfirm:
		if obj := g.Registry.NearestInteractable(g.Player.Rect(), InteractMargin); obj != nil {
			Activate(g, obj)
		}
	}
}

// Activate performs an object's behavior by its capability kind.
func Activate(g *state.Game, obj *world.Object) {
	visits := g.Visit(obj.ID)
	switch obj.Kind {
	case world.KindPoemBook:
		g.OpenPoems()
	case world.KindArcade:
		g.OpenArcade()
	case world.KindAlbum:
		if obj.SideEffect != nil {
			obj.SideEffect()
		}
	default:
		if obj.Dialogue != nil {
			title, text := obj.Dialogue(visits)
			g.OpenDialogue(title, text)
		}
	}
}

// routeDialogue handles intents while a dialogue is open. Confirm and
// click advance one page; advancing past the last page closes instead.
func routeDialogue(g *state.Game, in input.Intent) {
	switch in.Action {
	case input.ActionConfirm, input.ActionInteract, input.ActionPrimary:
		if g.Dialogue.Advance() {
			g.CloseOverlay()
		}
	case input.ActionCancel:
		g.CloseOverlay()
	}
}

// routePoems handles intents in the poem reader. Clicking inside the
// panel turns to the next poem; clicking away dismisses the reader.
func routePoems(g *state.Game, in input.Intent) {
	r := g.Poems
	switch in.Action {
	case input.ActionScroll:
		r.Scroll(in.ScrollY)
	case input.ActionPageUp:
		r.ScrollPage(-1)
	case input.ActionPageDown:
		r.ScrollPage(1)
	case input.ActionConfirm:
		r.Next()
	case input.ActionInteract:
		r.Prev()
	case input.ActionPrimary:
		if r.Panel.Contains(in.X, in.Y) {
			r.Next()
		} else {
			g.CloseOverlay()
		}
	case input.ActionCancel:
		g.CloseOverlay()
	}
}

// routeArcade handles intents in the arcade overlay. Cancel dismisses
// one level; a click outside the panel closes the whole overlay.
func routeArcade(g *state.Game, in input.Intent) {
	s := g.Arcade
	switch in.Action {
	case input.ActionCancel:
		if s.Back() {
			g.CloseOverlay()
		}
		return
	case input.ActionScroll:
		if s.Screen == arcade.ScreenMenu {
			s.ScrollMenu(in.ScrollY)
		}
		return
	case input.ActionRestart:
		restartActive(s)
		return
	case input.ActionPrimary:
		if !s.Panel.Contains(in.X, in.Y) {
			g.CloseOverlay()
			return
		}
		routeArcadeClick(g, s, in.X, in.Y)
	}
}

// routeArcadeClick dispatches an in-panel click to the active screen.
func routeArcadeClick(g *state.Game, s *arcade.Session, x, y float64) {
	switch s.Screen {
	case arcade.ScreenMenu:
		if entry := s.MenuEntryAt(x, y); entry != nil {
			s.Enter(entry.Screen)
		}
	case arcade.ScreenHearts:
		nx, ny := s.Normalize(x, y)
		s.Hearts.Pop(nx, ny)
	case arcade.ScreenButterfly:
		nx, ny := s.Normalize(x, y)
		s.Butterflies.Catch(nx, ny)
	case arcade.ScreenSnake:
		// Snake is keyboard-only; clicks inside the panel do nothing.
	}
}

// restartActive restarts whichever game is on screen.
func restartActive(s *arcade.Session) {
	switch s.Screen {
	case arcade.ScreenSnake:
		s.Snake.Restart()
	case arcade.ScreenHearts:
		s.Hearts.Restart()
	case arcade.ScreenButterfly:
		s.Butterflies.Restart()
	}
}

// refreshInteractHint updates the "press E" prompt with the nearest
// interactable's ID, or clears it.
func refreshInteractHint(g *state.Game) {
	obj := g.Registry.NearestInteractable(g.Player.Rect(), InteractMargin)
	if obj == nil {
		g.InteractHint = ""
		return
	}
	g.InteractHint = fmt.Sprintf("NAME{%s}", obj.ID)
}
