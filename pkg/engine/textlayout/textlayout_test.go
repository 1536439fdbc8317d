package textlayout

import (
	"strings"
	"testing"
)

// runeMeasure assigns every rune a width of 1 pixel.
func runeMeasure(s string) float64 {
	return float64(len([]rune(s)))
}

func TestWrapGreedy(t *testing.T) {
	lines := Wrap("the quick brown fox", 9, runeMeasure)
	want := []string{"the quick", "brown fox"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %q, want %d", len(lines), lines, len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWrapWidthBudget(t *testing.T) {
	text := "some reasonably long sentence with a few words of different sizes"
	for _, width := range []float64{5, 8, 12, 30} {
		for i, line := range Wrap(text, width, runeMeasure) {
			if runeMeasure(line) > width {
				t.Errorf("width %v: line %d %q exceeds budget", width, i, line)
			}
		}
	}
}

func TestWrapRoundTrip(t *testing.T) {
	text := "pack my box with five dozen liquor jugs"
	lines := Wrap(text, 11, runeMeasure)
	joined := strings.Join(lines, " ")
	if joined != text {
		t.Errorf("round trip = %q, want %q", joined, text)
	}
}

func TestWrapPreservesBlankLines(t *testing.T) {
	lines := Wrap("first\n\nsecond", 100, runeMeasure)
	want := []string{"first", "", "second"}
	if len(lines) != 3 {
		t.Fatalf("got %d lines %q, want 3", len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWrapOversizedWordFallsBackToRunes(t *testing.T) {
	lines := Wrap("abcdefghij", 3, runeMeasure)
	want := []string{"abc", "def", "ghi", "j"}
	if len(lines) != len(want) {
		t.Fatalf("got %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWrapEmptyInput(t *testing.T) {
	lines := Wrap("", 10, runeMeasure)
	if len(lines) != 1 || lines[0] != "" {
		t.Errorf("empty input = %q, want one empty line", lines)
	}
}

func TestPageCount(t *testing.T) {
	cases := []struct {
		n, perPage, want int
	}{
		{0, 3, 1},
		{1, 3, 1},
		{3, 3, 1},
		{4, 3, 2},
		{7, 3, 3},
		{9, 3, 3},
	}
	for _, tc := range cases {
		if got := PageCount(tc.n, tc.perPage); got != tc.want {
			t.Errorf("PageCount(%d, %d) = %d, want %d", tc.n, tc.perPage, got, tc.want)
		}
	}
}

func TestPaginateBucketSizes(t *testing.T) {
	lines := []string{"a", "b", "c", "d", "e", "f", "g"}
	pages := Paginate(lines, 3)
	if len(pages) != 3 {
		t.Fatalf("got %d pages, want 3", len(pages))
	}
	for i, want := range []int{3, 3, 1} {
		if len(pages[i]) != want {
			t.Errorf("page %d has %d lines, want %d", i, len(pages[i]), want)
		}
	}
}

func TestPaginateEmpty(t *testing.T) {
	pages := Paginate(nil, 5)
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}
	if len(pages[0]) != 0 {
		t.Errorf("empty input should yield one empty page, got %q", pages[0])
	}
}

func TestPageClampsIndex(t *testing.T) {
	lines := []string{"a", "b", "c", "d"}
	if got := Page(lines, 2, -1); got[0] != "a" {
		t.Errorf("negative index should clamp to first page, got %q", got)
	}
	if got := Page(lines, 2, 99); got[0] != "c" {
		t.Errorf("overlarge index should clamp to last page, got %q", got)
	}
}

func TestTruncateLines(t *testing.T) {
	lines := []string{"hello", "world"}
	cases := []struct {
		budget int
		want   []string
	}{
		{0, nil},
		{3, []string{"hel"}},
		{5, []string{"hello"}},
		{7, []string{"hello", "wo"}},
		{10, []string{"hello", "world"}},
		{99, []string{"hello", "world"}},
	}
	for _, tc := range cases {
		got := TruncateLines(lines, tc.budget)
		if len(got) != len(tc.want) {
			t.Errorf("budget %d: got %q, want %q", tc.budget, got, tc.want)
			continue
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Errorf("budget %d line %d = %q, want %q", tc.budget, i, got[i], tc.want[i])
			}
		}
	}
}

func TestRuneCount(t *testing.T) {
	if got := RuneCount([]string{"ab", "", "cde"}); got != 5 {
		t.Errorf("RuneCount = %d, want 5", got)
	}
}
