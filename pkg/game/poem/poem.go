// Package poem provides the paged poem reader session: one selected
// poem at a time, wrapped to the panel width, scrolled inside a clamped
// viewport.
package poem

import (
	"github.com/Megaman222111/gift/pkg/engine/geom"
	"github.com/Megaman222111/gift/pkg/engine/scroll"
	"github.com/Megaman222111/gift/pkg/engine/textlayout"
)

// Poem is one entry of the poem book.
type Poem struct {
	Title string
	Text  string
}

// Reader is the live poem-reader overlay session.
type Reader struct {
	Poems   []Poem
	Index   int
	Wrapped []string
	Offset  float64

	Panel      geom.Rect
	textWidth  float64
	lineHeight float64
	measure    textlayout.MeasureFunc
}

// Panel padding in scene pixels.
const (
	readerPaddingX   = 12
	readerPaddingTop = 26
	readerPaddingBot = 14
)

// NewReader opens the reader on the first poem.
func NewReader(poems []Poem, panel geom.Rect, lineHeight float64, measure textlayout.MeasureFunc) *Reader {
	r := &Reader{
		Poems:      poems,
		Panel:      panel,
		textWidth:  panel.W - 2*readerPaddingX,
		lineHeight: lineHeight,
		measure:    measure,
	}
	r.Select(0)
	return r
}

// Select switches to the poem at index, clamped to the valid range,
// rewraps its text, and resets the scroll offset.
func (r *Reader) Select(index int) {
	if len(r.Poems) == 0 {
		r.Wrapped = nil
		r.Offset = 0
		return
	}
	r.Index = geom.Clamp(index, 0, len(r.Poems)-1)
	r.Wrapped = textlayout.Wrap(r.Poems[r.Index].Text, r.textWidth, r.measure)
	r.Offset = 0
}

// Next moves to the following poem, wrapping around the book.
func (r *Reader) Next() {
	if len(r.Poems) == 0 {
		return
	}
	r.Select((r.Index + 1) % len(r.Poems))
}

// Prev moves to the preceding poem, wrapping around the book.
func (r *Reader) Prev() {
	if len(r.Poems) == 0 {
		return
	}
	r.Select((r.Index + len(r.Poems) - 1) % len(r.Poems))
}

// Title returns the selected poem's title, or empty for an empty book.
func (r *Reader) Title() string {
	if len(r.Poems) == 0 {
		return ""
	}
	return r.Poems[r.Index].Title
}

// Scroll moves the viewport by dy scene pixels, clamped to the content.
func (r *Reader) Scroll(dy float64) {
	r.Offset = scroll.Clamp(r.Offset, dy, r.ViewportHeight(), r.ContentHeight())
}

// ScrollPage moves the viewport by whole viewports; dir is -1 or +1.
func (r *Reader) ScrollPage(dir float64) {
	r.Scroll(dir * r.ViewportHeight())
}

// ViewportHeight is the visible text height inside the panel.
func (r *Reader) ViewportHeight() float64 {
	return r.Panel.H - readerPaddingTop - readerPaddingBot
}

// ContentHeight is the total height of the wrapped poem.
func (r *Reader) ContentHeight() float64 {
	return float64(len(r.Wrapped)) * r.lineHeight
}

// TextOrigin returns the scene position of the first visible text line.
func (r *Reader) TextOrigin() (x, y float64) {
	return r.Panel.X + readerPaddingX, r.Panel.Y + readerPaddingTop - r.Offset
}
