// Package content is the static data boundary: the room's object table,
// dialogue lines, poems, album shelf metadata, and the decorative wall
// gallery. Everything here is plain data; behavior lives in setup and
// gameplay. Player-visible strings route through gotext so a locale
// directory can translate the whole scene.
package content

import (
	"github.com/leonelquinteros/gotext"

	"github.com/Megaman222111/gift/pkg/engine/geom"
	"github.com/Megaman222111/gift/pkg/game/poem"
	"github.com/Megaman222111/gift/pkg/game/state"
	"github.com/Megaman222111/gift/pkg/game/world"
)

// RoomBounds is the walkable floor, inset from the scene edges by the
// wall border the renderer draws.
func RoomBounds() geom.Rect {
	return geom.NewRect(4, 18, state.SceneWidth-8, state.SceneHeight-22)
}

// ObjectSpec describes one scene object declaratively. setup resolves
// specs into world.Objects, attaching dialogue producers and album
// side-effects.
type ObjectSpec struct {
	ID     string
	Kind   world.Kind
	Rect   geom.Rect
	Solid  bool
	Z      int
	Sprite string

	// Title and Lines feed the dialogue producer for KindProp objects.
	// Lines cycle on revisit.
	Title string
	Lines []string

	// Album is set for KindAlbum objects.
	Album *Album
}

// Album is one record on the shelf.
type Album struct {
	Title  string
	Artist string
	URL    string
}

// Objects returns the room's object table in draw order. Later entries
// render on top and win click hit-tests.
func Objects() []ObjectSpec {
	return []ObjectSpec{
		{
			ID:     "bed",
			Kind:   world.KindProp,
			Rect:   geom.NewRect(16, 28, 44, 30),
			Solid:  true,
			Sprite: "bed",
			Title:  gotext.Get("Bed"),
			Lines: []string{
				gotext.Get("The blanket is still warm."),
				gotext.Get("Five more minutes wouldn't hurt."),
			},
		},
		{
			ID:     "desk",
			Kind:   world.KindProp,
			Rect:   geom.NewRect(246, 30, 58, 26),
			Solid:  true,
			Sprite: "desk",
			Title:  gotext.Get("Desk"),
			Lines: []string{
				gotext.Get("A half-finished letter sits on the desk."),
				gotext.Get("The ink has dried on the pen again."),
				gotext.Get("Maybe the letter finishes itself tonight."),
			},
		},
		{
			ID:     "mug",
			Kind:   world.KindProp,
			Rect:   geom.NewRect(252, 22, 10, 10),
			Z:      1,
			Sprite: "mug",
			Title:  gotext.Get("Mug"),
			Lines: []string{
				gotext.Get("The cocoa has gone cold."),
				gotext.Get("Still smells like cinnamon."),
			},
		},
		{
			ID:     "plant",
			Kind:   world.KindProp,
			Rect:   geom.NewRect(120, 20, 16, 24),
			Solid:  true,
			Sprite: "plant",
			Title:  gotext.Get("Plant"),
			Lines: []string{
				gotext.Get("It grew a new leaf this week."),
				gotext.Get("Somebody has been watering it."),
			},
		},
		{
			ID:     "rug",
			Kind:   world.KindProp,
			Rect:   geom.NewRect(118, 88, 84, 40),
			Sprite: "rug",
			Title:  gotext.Get("Rug"),
			Lines: []string{
				gotext.Get("Soft under your feet."),
			},
		},
		{
			ID:     "shelf",
			Kind:   world.KindAlbum,
			Rect:   geom.NewRect(70, 18, 36, 26),
			Solid:  true,
			Sprite: "shelf",
			Title:  gotext.Get("Record shelf"),
			Album: &Album{
				Title:  "Pink Moon",
				Artist: "Nick Drake",
				URL:    "https://en.wikipedia.org/wiki/Pink_Moon",
			},
		},
		{
			ID:     "poem-book",
			Kind:   world.KindPoemBook,
			Rect:   geom.NewRect(176, 36, 14, 12),
			Z:      1,
			Sprite: "book",
			Title:  gotext.Get("Notebook"),
		},
		{
			ID:     "arcade-cabinet",
			Kind:   world.KindArcade,
			Rect:   geom.NewRect(288, 96, 24, 40),
			Solid:  true,
			Sprite: "cabinet",
			Title:  gotext.Get("Arcade cabinet"),
		},
	}
}

// Poems returns the notebook's poems in reading order.
func Poems() []poem.Poem {
	return []poem.Poem{
		{
			Title: gotext.Get("Small Hours"),
			Text: gotext.Get("The kettle hums its single note,\n" +
				"the window holds the dark outside,\n" +
				"and every small familiar thing\n" +
				"stays put, and keeps me company.\n\n" +
				"I count the hours not to sleep\n" +
				"but to stretch the quiet out."),
		},
		{
			Title: gotext.Get("Postcard"),
			Text: gotext.Get("Wish you were here, it says,\n" +
				"in someone else's handwriting,\n" +
				"from a beach neither of us\n" +
				"has ever seen.\n\n" +
				"I pinned it to the wall anyway.\n" +
				"Some places you can miss\n" +
				"without ever going."),
		},
		{
			Title: gotext.Get("Inventory"),
			Text: gotext.Get("One mug, chipped.\n" +
				"One plant, stubborn.\n" +
				"One rug, faded in the shape\n" +
				"of afternoon light.\n\n" +
				"Everything here is worn\n" +
				"exactly where it's loved."),
		},
	}
}
