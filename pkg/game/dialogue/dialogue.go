// Package dialogue provides the modal dialogue session: text wrapped
// against the dialogue box, bucketed into pages, revealed with a
// typewriter effect.
package dialogue

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/Megaman222111/gift/pkg/engine/textlayout"
)

// Reveal speed of the typewriter effect, runes per second.
const revealRate = 40.0

// Session is one open dialogue. Created on open, destroyed on close;
// the page index always satisfies 0 <= Page <= MaxPage.
type Session struct {
	Title   string
	Wrapped []string
	Page    int
	MaxPage int

	perPage int
	reveal  *gween.Tween
	budget  int
}

// New wraps text against the dialogue box width and opens the session
// at page zero.
func New(title, text string, boxWidth float64, linesPerPage int, measure textlayout.MeasureFunc) *Session {
	if linesPerPage < 1 {
		linesPerPage = 1
	}
	s := &Session{
		Title:   title,
		Wrapped: textlayout.Wrap(text, boxWidth, measure),
		perPage: linesPerPage,
	}
	s.MaxPage = textlayout.PageCount(len(s.Wrapped), linesPerPage) - 1
	s.resetReveal()
	return s
}

// resetReveal restarts the typewriter tween for the current page.
func (s *Session) resetReveal() {
	total := textlayout.RuneCount(s.currentPage())
	s.budget = 0
	if total == 0 {
		s.reveal = nil
		return
	}
	s.reveal = gween.New(0, float32(total), float32(total)/revealRate, ease.Linear)
}

// currentPage returns the wrapped lines of the current page.
func (s *Session) currentPage() []string {
	return textlayout.Page(s.Wrapped, s.perPage, s.Page)
}

// Update advances the typewriter reveal.
func (s *Session) Update(dt float64) {
	if s.reveal == nil {
		return
	}
	value, finished := s.reveal.Update(float32(dt))
	s.budget = int(value)
	if finished {
		s.reveal = nil
		s.budget = textlayout.RuneCount(s.currentPage())
	}
}

// VisibleLines returns the current page truncated to the reveal budget.
func (s *Session) VisibleLines() []string {
	page := s.currentPage()
	if s.reveal == nil {
		return page
	}
	return textlayout.TruncateLines(page, s.budget)
}

// Advance moves forward exactly one page and restarts the reveal. On
// the last page it reports true: the dialogue closes instead of
// advancing.
func (s *Session) Advance() (closed bool) {
	if s.Page >= s.MaxPage {
		return true
	}
	s.Page++
	s.resetReveal()
	return false
}
