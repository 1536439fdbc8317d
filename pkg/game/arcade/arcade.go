package arcade

import (
	"math/rand"

	"github.com/Megaman222111/gift/pkg/engine/geom"
	"github.com/Megaman222111/gift/pkg/engine/scroll"
)

// Screen identifies what the arcade overlay is showing.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenSnake
	ScreenHearts
	ScreenButterfly
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenSnake:
		return "snake"
	case ScreenHearts:
		return "hearts"
	case ScreenButterfly:
		return "butterfly"
	default:
		return "unknown"
	}
}

// Menu button layout inside the panel, in scene pixels.
const (
	menuButtonHeight  = 28
	menuButtonGap     = 8
	menuPaddingX      = 14
	menuPaddingTop    = 30 // leaves room for the panel title
	menuPaddingBottom = 10
)

// MenuEntry is one selectable game on the arcade menu.
type MenuEntry struct {
	Screen Screen
	Label  string
}

// Session is the live arcade overlay: which screen is up, the menu
// scroll offset, and one instance of each mini-game. Created when the
// arcade opens and destroyed when it closes.
type Session struct {
	Screen Screen
	Panel  geom.Rect

	Entries    []MenuEntry
	MenuOffset float64

	Snake       *Snake
	Hearts      *HeartPop
	Butterflies *ButterflyCatch
}

// NewSession creates an arcade session showing the menu.
func NewSession(panel geom.Rect, entries []MenuEntry, rng *rand.Rand) *Session {
	return &Session{
		Screen:      ScreenMenu,
		Panel:       panel,
		Entries:     entries,
		Snake:       NewSnake(rng),
		Hearts:      NewHeartPop(rng),
		Butterflies: NewButterflyCatch(rng),
	}
}

// Enter switches to a game screen. Every entry resets that game, so
// all three games behave the same way on re-entry.
func (s *Session) Enter(screen Screen) {
	s.Screen = screen
	switch screen {
	case ScreenSnake:
		s.Snake.Restart()
	case ScreenHearts:
		s.Hearts.Restart()
	case ScreenButterfly:
		s.Butterflies.Restart()
	}
}

// Back dismisses one level: a game returns to the menu and reports
// false, the menu reports true meaning the overlay should close.
func (s *Session) Back() (closed bool) {
	if s.Screen == ScreenMenu {
		return true
	}
	s.Screen = ScreenMenu
	return false
}

// Update advances the active game simulation. The menu has nothing to
// simulate.
func (s *Session) Update(dt float64) {
	switch s.Screen {
	case ScreenSnake:
		s.Snake.Update(dt)
	case ScreenHearts:
		s.Hearts.Update(dt)
	case ScreenButterfly:
		s.Butterflies.Update(dt)
	}
}

// ScrollMenu moves the menu scroll offset, clamped to the button
// column's extent.
func (s *Session) ScrollMenu(dy float64) {
	s.MenuOffset = scroll.Clamp(s.MenuOffset, dy, s.menuViewport(), s.menuContent())
}

// menuViewport is the visible height available to menu buttons.
func (s *Session) menuViewport() float64 {
	return s.Panel.H - menuPaddingTop - menuPaddingBottom
}

// menuContent is the total height of the button column.
func (s *Session) menuContent() float64 {
	n := float64(len(s.Entries))
	if n == 0 {
		return 0
	}
	return n*menuButtonHeight + (n-1)*menuButtonGap
}

// ButtonRect returns the on-screen rectangle of the i'th menu button at
// the current scroll offset. Buttons scrolled out of the panel still
// report their (clipped-away) rectangle; hit-testing goes through
// MenuEntryAt which respects the panel bounds.
func (s *Session) ButtonRect(i int) geom.Rect {
	y := s.Panel.Y + menuPaddingTop - s.MenuOffset + float64(i)*(menuButtonHeight+menuButtonGap)
	return geom.Rect{
		X: s.Panel.X + menuPaddingX,
		Y: y,
		W: s.Panel.W - 2*menuPaddingX,
		H: menuButtonHeight,
	}
}

// MenuEntryAt returns the menu entry under the scene point, or nil.
func (s *Session) MenuEntryAt(x, y float64) *MenuEntry {
	if !s.Panel.Contains(x, y) {
		return nil
	}
	for i := range s.Entries {
		if s.ButtonRect(i).Contains(x, y) {
			return &s.Entries[i]
		}
	}
	return nil
}

// GameArea returns the sub-rectangle of the panel that normalized
// mini-game coordinates map onto.
func (s *Session) GameArea() geom.Rect {
	return geom.Rect{
		X: s.Panel.X + menuPaddingX,
		Y: s.Panel.Y + menuPaddingTop,
		W: s.Panel.W - 2*menuPaddingX,
		H: s.Panel.H - menuPaddingTop - menuPaddingBottom,
	}
}

// Normalize maps a scene point into the game area's [0,1] space.
func (s *Session) Normalize(x, y float64) (nx, ny float64) {
	area := s.GameArea()
	if area.W <= 0 || area.H <= 0 {
		return 0, 0
	}
	return (x - area.X) / area.W, (y - area.Y) / area.H
}
