package content

import (
	"github.com/leonelquinteros/gotext"

	"github.com/Megaman222111/gift/pkg/engine/geom"
	"github.com/Megaman222111/gift/pkg/game/arcade"
	"github.com/Megaman222111/gift/pkg/game/state"
)

// ArcadeEntries returns the cabinet's menu, in display order.
func ArcadeEntries() []arcade.MenuEntry {
	return []arcade.MenuEntry{
		{Screen: arcade.ScreenSnake, Label: gotext.Get("Snake")},
		{Screen: arcade.ScreenHearts, Label: gotext.Get("Heart Pop")},
		{Screen: arcade.ScreenButterfly, Label: gotext.Get("Butterfly Catch")},
	}
}

// Frame is one decorative picture frame on the back wall. Frames are
// cosmetic; they never collide and never respond to clicks.
type Frame struct {
	Rect geom.Rect
	Tint int // palette index for the renderer
}

// Gallery wall band, in scene pixels.
const (
	galleryTop    = 4.0
	galleryHeight = 12.0
	galleryGapMin = 18.0
)

// Gallery lays out the wall frames from a seed. The same seed always
// produces the same layout; the generator is independent of the
// math/rand stream that seeds the mini-games.
func Gallery(seed int64) []Frame {
	s := uint64(seed)*6364136223846793005 + 1442695040888963407
	next := func(n int) int {
		s = s*6364136223846793005 + 1442695040888963407
		return int((s >> 33) % uint64(n))
	}

	var frames []Frame
	x := 8.0 + float64(next(12))
	for x < state.SceneWidth-28 {
		w := 10.0 + float64(next(10))
		frames = append(frames, Frame{
			Rect: geom.NewRect(x, galleryTop+float64(next(4)), w, galleryHeight),
			Tint: next(5),
		})
		x += w + galleryGapMin + float64(next(14))
	}
	return frames
}
