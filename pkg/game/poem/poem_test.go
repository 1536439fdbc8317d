package poem

import (
	"strings"
	"testing"

	"github.com/Megaman222111/gift/pkg/engine/geom"
)

func runeMeasure(s string) float64 {
	return float64(len([]rune(s)))
}

func testReader() *Reader {
	poems := []Poem{
		{Title: "Short", Text: "just one line"},
		{Title: "Long", Text: strings.Repeat("line of verse\n", 40)},
	}
	return NewReader(poems, geom.NewRect(20, 10, 200, 120), 10, runeMeasure)
}

func TestReaderOpensOnFirstPoem(t *testing.T) {
	r := testReader()
	if r.Index != 0 || r.Title() != "Short" {
		t.Errorf("opened on index %d (%q), want 0 (Short)", r.Index, r.Title())
	}
	if r.Offset != 0 {
		t.Errorf("offset = %v, want 0", r.Offset)
	}
}

func TestSelectRewrapsAndResetsScroll(t *testing.T) {
	r := testReader()
	r.Select(1)
	r.Scroll(1e6)
	if r.Offset == 0 {
		t.Fatal("setup failed, long poem should scroll")
	}
	r.Select(0)
	if r.Offset != 0 {
		t.Errorf("offset after select = %v, want 0", r.Offset)
	}
	if len(r.Wrapped) == 0 {
		t.Error("select did not rewrap")
	}
}

func TestSelectClampsIndex(t *testing.T) {
	r := testReader()
	r.Select(99)
	if r.Index != 1 {
		t.Errorf("index = %d, want clamp to 1", r.Index)
	}
	r.Select(-5)
	if r.Index != 0 {
		t.Errorf("index = %d, want clamp to 0", r.Index)
	}
}

func TestNextPrevWrapAround(t *testing.T) {
	r := testReader()
	r.Next()
	if r.Index != 1 {
		t.Errorf("after Next index = %d, want 1", r.Index)
	}
	r.Next()
	if r.Index != 0 {
		t.Errorf("Next should wrap to 0, got %d", r.Index)
	}
	r.Prev()
	if r.Index != 1 {
		t.Errorf("Prev should wrap to 1, got %d", r.Index)
	}
}

func TestScrollClampedToContent(t *testing.T) {
	r := testReader()
	r.Select(1) // 40 lines * 10px = 400 content, 80 viewport
	r.Scroll(-50)
	if r.Offset != 0 {
		t.Errorf("offset = %v, want 0", r.Offset)
	}
	r.Scroll(1e6)
	max := r.ContentHeight() - r.ViewportHeight()
	if r.Offset != max {
		t.Errorf("offset = %v, want max %v", r.Offset, max)
	}
	r.Select(0) // short poem fits the viewport
	r.Scroll(30)
	if r.Offset != 0 {
		t.Errorf("short poem scrolled to %v, want 0", r.Offset)
	}
}

func TestScrollPageMovesOneViewport(t *testing.T) {
	r := testReader()
	r.Select(1)
	r.ScrollPage(1)
	if r.Offset != r.ViewportHeight() {
		t.Errorf("offset = %v, want one viewport %v", r.Offset, r.ViewportHeight())
	}
	r.ScrollPage(-1)
	if r.Offset != 0 {
		t.Errorf("offset = %v, want 0", r.Offset)
	}
}

func TestEmptyBookIsSafe(t *testing.T) {
	r := NewReader(nil, geom.NewRect(0, 0, 100, 100), 10, runeMeasure)
	r.Next()
	r.Prev()
	r.Scroll(50)
	if r.Title() != "" {
		t.Errorf("empty book title = %q, want empty", r.Title())
	}
	if r.Offset != 0 {
		t.Errorf("empty book offset = %v, want 0", r.Offset)
	}
}
