// Package state owns all mutable game state: the player pose, the
// overlay mode with its per-mode session data, and the message log.
// Exactly one overlay mode is active at any moment; the mode value and
// its matching session pointer are the single source of truth for what
// input means.
package state

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/Megaman222111/gift/pkg/engine/geom"
	"github.com/Megaman222111/gift/pkg/engine/textlayout"
	"github.com/Megaman222111/gift/pkg/game/arcade"
	"github.com/Megaman222111/gift/pkg/game/dialogue"
	"github.com/Megaman222111/gift/pkg/game/poem"
	"github.com/Megaman222111/gift/pkg/game/world"
)

// Scene dimensions in pixels. The renderer scales this up in integer
// steps; all game logic works in these units.
const (
	SceneWidth  = 320
	SceneHeight = 180
)

// LineHeight is the text line height shared by the overlay panels.
const LineHeight = 10

// Overlay panels, in scene pixels.
var (
	// DialogueBox is the bottom text strip.
	DialogueBox = geom.NewRect(8, 124, SceneWidth-16, 48)
	// PoemPanel is the centered poem reader.
	PoemPanel = geom.NewRect(36, 14, SceneWidth-72, SceneHeight-28)
	// ArcadePanel is the centered arcade screen.
	ArcadePanel = geom.NewRect(30, 10, SceneWidth-60, SceneHeight-20)
)

// Mode is the mutually exclusive overlay mode. Representing it as one
// value with per-mode session data makes "two overlays open" an
// unrepresentable state rather than a convention.
type Mode int

const (
	ModeExploring Mode = iota
	ModeDialogue
	ModePoems
	ModeArcade
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeExploring:
		return "exploring"
	case ModeDialogue:
		return "dialogue"
	case ModePoems:
		return "poems"
	case ModeArcade:
		return "arcade"
	default:
		return "unknown"
	}
}

// Player is the controllable character. Position is the top-left of its
// collision rectangle. WalkPhase drives the walk animation only; it
// carries no logic.
type Player struct {
	X, Y      float64
	Size      float64
	Speed     float64
	Facing    geom.Dir
	WalkPhase float64
}

// Rect returns the player's collision rectangle.
func (p *Player) Rect() geom.Rect {
	return geom.NewRect(p.X, p.Y, p.Size, p.Size)
}

// Game is the root game state. All mutation happens synchronously
// within one simulation step; the renderer only reads.
type Game struct {
	Player   Player
	Bounds   geom.Rect
	Registry *world.Registry

	Mode     Mode
	Dialogue *dialogue.Session
	Poems    *poem.Reader
	Arcade   *arcade.Session

	// Visited tracks objects activated at least once; visitCounts backs
	// the dialogue producers that cycle lines on revisits.
	Visited     mapset.Set[string]
	visitCounts map[string]int

	Messages []string

	// InteractHint names the nearest interactable object, refreshed
	// every exploring step for the renderer's "press E" prompt.
	InteractHint string

	// PoemBook and ArcadeEntries are the static content behind the two
	// composite overlays.
	PoemBook      []poem.Poem
	ArcadeEntries []arcade.MenuEntry

	// Measure is the renderer-supplied text metric used when wrapping
	// overlay text.
	Measure textlayout.MeasureFunc

	// Rand seeds the mini-games; injectable for deterministic tests.
	Rand *rand.Rand
}

// NewGame creates an exploring game with the player centered in bounds.
func NewGame(bounds geom.Rect, registry *world.Registry, rng *rand.Rand, measure textlayout.MeasureFunc) *Game {
	g := &Game{
		Bounds:      bounds,
		Registry:    registry,
		Mode:        ModeExploring,
		Visited:     mapset.New[string](),
		visitCounts: make(map[string]int),
		Measure:     measure,
		Rand:        rng,
	}
	g.Player = Player{
		X:      bounds.X + bounds.W/2 - 8,
		Y:      bounds.Y + bounds.H/2 - 8,
		Size:   16,
		Speed:  90,
		Facing: geom.DirDown,
	}
	return g
}

// AddMessage appends to the on-screen message log, keeping only the
// most recent entries.
func (g *Game) AddMessage(msg string) {
	const maxMessages = 4
	g.Messages = append(g.Messages, msg)
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// Visit records an activation of the object and returns how many times
// it had been activated before.
func (g *Game) Visit(id string) int {
	n := g.visitCounts[id]
	g.visitCounts[id]++
	g.Visited.Put(id)
	return n
}

// OverlayOpen reports whether any overlay suspends exploration.
func (g *Game) OverlayOpen() bool {
	return g.Mode != ModeExploring
}

// DialogueLinesPerPage derives the page size from the dialogue box
// height, leaving room for the title row.
func DialogueLinesPerPage() int {
	rows := int((DialogueBox.H - LineHeight) / LineHeight)
	if rows < 1 {
		rows = 1
	}
	return rows
}

// OpenDialogue transitions Exploring -> Dialogue. Opening while another
// overlay is up is a no-op; the first overlay must close first.
func (g *Game) OpenDialogue(title, text string) bool {
	if g.Mode != ModeExploring {
		return false
	}
	g.Dialogue = dialogue.New(title, text, DialogueBox.W-16, DialogueLinesPerPage(), g.Measure)
	g.Mode = ModeDialogue
	return true
}

// OpenPoems transitions Exploring -> PoemReader.
func (g *Game) OpenPoems() bool {
	if g.Mode != ModeExploring {
		return false
	}
	g.Poems = poem.NewReader(g.PoemBook, PoemPanel, LineHeight, g.Measure)
	g.Mode = ModePoems
	return true
}

// OpenArcade transitions Exploring -> Arcade, on the menu screen.
func (g *Game) OpenArcade() bool {
	if g.Mode != ModeExploring {
		return false
	}
	g.Arcade = arcade.NewSession(ArcadePanel, g.ArcadeEntries, g.Rand)
	g.Mode = ModeArcade
	return true
}

// CloseOverlay dismisses whatever overlay is open and destroys its
// session. Always returns to Exploring.
func (g *Game) CloseOverlay() {
	g.Mode = ModeExploring
	g.Dialogue = nil
	g.Poems = nil
	g.Arcade = nil
}
