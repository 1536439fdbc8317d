// Package setup assembles a playable game from the static content
// tables: it resolves object specs into registry objects, attaches
// dialogue producers and album side-effects, and seeds the mini-games.
package setup

import (
	"math/rand"

	"github.com/leonelquinteros/gotext"

	"github.com/Megaman222111/gift/pkg/engine/textlayout"
	"github.com/Megaman222111/gift/pkg/game/content"
	"github.com/Megaman222111/gift/pkg/game/state"
	"github.com/Megaman222111/gift/pkg/game/world"
)

// LinkOpener opens an outbound URL. main injects the OS-specific
// implementation; tests inject a recorder. A nil opener disables the
// album shelf's side-effect without disabling the shelf.
type LinkOpener func(url string)

// BuildGame constructs the full game state from the content tables.
// seed drives the mini-games and the wall gallery; measure is the
// renderer's text metric.
func BuildGame(seed int64, openLink LinkOpener, measure textlayout.MeasureFunc) *state.Game {
	rng := rand.New(rand.NewSource(seed))
	registry := BuildRegistry(content.Objects(), nil)
	g := state.NewGame(content.RoomBounds(), registry, rng, measure)

	// Album side-effects want the game handle for the message log, so
	// they are attached after construction.
	for _, obj := range registry.Objects() {
		if obj.Kind != world.KindAlbum {
			continue
		}
		album := albumFor(obj.ID)
		if album == nil {
			continue
		}
		obj.SideEffect = func() {
			g.AddMessage(gotext.Get("Now playing EM{%s} by NAME{%s}", album.Title, album.Artist))
			if openLink != nil {
				openLink(album.URL)
			}
		}
	}

	g.PoemBook = content.Poems()
	g.ArcadeEntries = content.ArcadeEntries()
	return g
}

// BuildRegistry resolves object specs into a registry. openLink is
// attached directly when no game handle is needed; BuildGame passes nil
// and wires richer side-effects afterwards.
func BuildRegistry(specs []content.ObjectSpec, openLink LinkOpener) *world.Registry {
	objects := make([]*world.Object, 0, len(specs))
	for _, spec := range specs {
		obj := &world.Object{
			ID:     spec.ID,
			Kind:   spec.Kind,
			Rect:   spec.Rect,
			Solid:  spec.Solid,
			Z:      spec.Z,
			Sprite: spec.Sprite,
		}
		if len(spec.Lines) > 0 {
			obj.Dialogue = dialogueProducer(spec.Title, spec.Lines)
		}
		if spec.Kind == world.KindAlbum && spec.Album != nil && openLink != nil {
			url := spec.Album.URL
			obj.SideEffect = func() { openLink(url) }
		}
		objects = append(objects, obj)
	}
	return world.NewRegistry(objects)
}

// dialogueProducer cycles through the lines on revisits.
func dialogueProducer(title string, lines []string) world.DialogueFunc {
	return func(visits int) (string, string) {
		return title, lines[visits%len(lines)]
	}
}

// albumFor looks up the album metadata for an object ID.
func albumFor(id string) *content.Album {
	for _, spec := range content.Objects() {
		if spec.ID == id && spec.Album != nil {
			return spec.Album
		}
	}
	return nil
}
