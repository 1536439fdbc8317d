package setup

import (
	"testing"

	"github.com/Megaman222111/gift/pkg/game/content"
	"github.com/Megaman222111/gift/pkg/game/gameplay"
	"github.com/Megaman222111/gift/pkg/game/state"
	"github.com/Megaman222111/gift/pkg/game/world"
)

func runeMeasure(s string) float64 {
	return float64(len([]rune(s)))
}

func TestBuildGameWiresContent(t *testing.T) {
	g := BuildGame(1, nil, runeMeasure)
	if g.Mode != state.ModeExploring {
		t.Errorf("mode = %v, want exploring", g.Mode)
	}
	if len(g.Registry.Objects()) != len(content.Objects()) {
		t.Errorf("registry has %d objects, content has %d",
			len(g.Registry.Objects()), len(content.Objects()))
	}
	if len(g.PoemBook) == 0 {
		t.Error("poem book not wired")
	}
	if len(g.ArcadeEntries) == 0 {
		t.Error("arcade entries not wired")
	}
}

func TestBuildGamePlayerSpawnsClear(t *testing.T) {
	g := BuildGame(1, nil, runeMeasure)
	pr := g.Player.Rect()
	for _, o := range g.Registry.Solids() {
		if pr.Overlaps(o.Rect) {
			t.Errorf("player spawns inside solid %q", o.ID)
		}
	}
	if !g.Bounds.Contains(pr.X, pr.Y) {
		t.Error("player spawns outside room bounds")
	}
}

func TestDialogueProducerCycles(t *testing.T) {
	fn := dialogueProducer("T", []string{"a", "b", "c"})
	for i, want := range []string{"a", "b", "c", "a", "b"} {
		_, text := fn(i)
		if text != want {
			t.Errorf("visit %d: text = %q, want %q", i, text, want)
		}
	}
}

func TestAlbumSideEffectOpensLinkAndLogs(t *testing.T) {
	var opened []string
	g := BuildGame(1, func(url string) { opened = append(opened, url) }, runeMeasure)

	var shelf *world.Object
	for _, o := range g.Registry.Objects() {
		if o.Kind == world.KindAlbum {
			shelf = o
			break
		}
	}
	if shelf == nil {
		t.Fatal("no album object in registry")
	}

	gameplay.Activate(g, shelf)
	if len(opened) != 1 {
		t.Fatalf("opened %d links, want 1", len(opened))
	}
	if len(g.Messages) == 0 {
		t.Error("album activation logged no message")
	}
	if g.Mode != state.ModeExploring {
		t.Errorf("album opened an overlay, mode = %v", g.Mode)
	}
}

func TestAlbumSideEffectSafeWithNilOpener(t *testing.T) {
	g := BuildGame(1, nil, runeMeasure)
	for _, o := range g.Registry.Objects() {
		if o.Kind == world.KindAlbum {
			gameplay.Activate(g, o)
		}
	}
	if len(g.Messages) == 0 {
		t.Error("album activation with nil opener should still log")
	}
}

func TestBuildRegistryAttachesDirectOpener(t *testing.T) {
	var got string
	r := BuildRegistry(content.Objects(), func(url string) { got = url })
	for _, o := range r.Objects() {
		if o.Kind == world.KindAlbum {
			if o.SideEffect == nil {
				t.Fatal("album object has no side-effect")
			}
			o.SideEffect()
		}
	}
	if got == "" {
		t.Error("direct opener never called")
	}
}
