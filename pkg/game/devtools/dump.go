// Package devtools provides developer helpers that inspect the running
// scene from the terminal.
package devtools

import (
	"fmt"
	"strings"

	"github.com/Megaman222111/gift/pkg/engine/terminal"
	"github.com/Megaman222111/gift/pkg/game/renderer"
	"github.com/Megaman222111/gift/pkg/game/state"
)

// Dump prints the scene state to stdout: mode, player pose, registry,
// and live mini-game scores. Bound to the debug key; skipped when
// stdout is not a terminal so piped output stays clean.
func Dump(g *state.Game) {
	if !terminal.IsInteractive() {
		return
	}

	rule := strings.Repeat("-", min(terminal.GetWidth(), 48))
	renderer.PrintString("SUBTLE{%s}\nTITLE{scene dump}\n", rule)
	renderer.PrintString("mode: EM{%s}\n", g.Mode)
	renderer.PrintString("player: (%.1f, %.1f) facing NAME{%s}\n",
		g.Player.X, g.Player.Y, g.Player.Facing)

	for _, o := range g.Registry.Objects() {
		marker := " "
		if o.Solid {
			marker = "#"
		}
		visited := ""
		if g.Visited.Has(o.ID) {
			visited = " visited"
		}
		renderer.PrintString("%s NAME{%-12s} %-9s (%.0f,%.0f %.0fx%.0f)%s\n",
			marker, o.ID, o.Kind, o.Rect.X, o.Rect.Y, o.Rect.W, o.Rect.H, visited)
	}

	switch g.Mode {
	case state.ModeDialogue:
		renderer.PrintString("dialogue NAME{%s} page %d/%d\n",
			g.Dialogue.Title, g.Dialogue.Page, g.Dialogue.MaxPage)
	case state.ModePoems:
		renderer.PrintString("poem NAME{%s} offset %.0f\n",
			g.Poems.Title(), g.Poems.Offset)
	case state.ModeArcade:
		renderer.PrintString("arcade EM{%s} snake=%d hearts=%d flies=%d\n",
			g.Arcade.Screen, g.Arcade.Snake.Score, g.Arcade.Hearts.Score,
			g.Arcade.Butterflies.Score)
	}

	fmt.Println()
}
