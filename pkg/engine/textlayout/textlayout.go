// Package textlayout provides pixel-width word wrapping and fixed-size
// pagination for every text surface in the game: dialogue boxes, the
// poem reader, and arcade labels.
package textlayout

import "strings"

// MeasureFunc returns the rendered pixel width of a string. The renderer
// supplies an exact font metric; tests use rune-count measures.
type MeasureFunc func(s string) float64

// Wrap splits text into lines no wider than maxWidth pixels.
//
// Explicit newlines are honored first and each segment is wrapped
// independently; an empty segment yields exactly one empty line so blank
// lines in the source text keep their spacing. Words are accumulated
// greedily; a single word wider than maxWidth falls back to greedy
// character accumulation, so no produced line exceeds the budget except
// a single unbreakable rune.
func Wrap(text string, maxWidth float64, measure MeasureFunc) []string {
	var lines []string
	for _, segment := range strings.Split(text, "\n") {
		lines = append(lines, wrapSegment(segment, maxWidth, measure)...)
	}
	return lines
}

// wrapSegment wraps a single newline-free segment.
func wrapSegment(segment string, maxWidth float64, measure MeasureFunc) []string {
	words := strings.Fields(segment)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		if measure(word) <= maxWidth {
			current = word
			continue
		}
		// Word alone exceeds the budget: break it rune by rune.
		broken, rest := breakWord(word, maxWidth, measure)
		lines = append(lines, broken...)
		current = rest
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

// breakWord splits an oversized word into full-width lines plus the
// trailing partial line, which the caller may still append to.
func breakWord(word string, maxWidth float64, measure MeasureFunc) (lines []string, rest string) {
	current := ""
	for _, r := range word {
		candidate := current + string(r)
		if current != "" && measure(candidate) > maxWidth {
			lines = append(lines, current)
			current = string(r)
			continue
		}
		current = candidate
	}
	return lines, current
}

// PageCount returns the number of perPage-sized pages needed for n lines.
// Empty input still occupies one page.
func PageCount(n, perPage int) int {
	if perPage < 1 {
		perPage = 1
	}
	pages := (n + perPage - 1) / perPage
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Paginate buckets lines into consecutive fixed-size pages. The result
// always holds at least one (possibly empty) page.
func Paginate(lines []string, perPage int) [][]string {
	if perPage < 1 {
		perPage = 1
	}
	if len(lines) == 0 {
		return [][]string{{}}
	}
	var pages [][]string
	for start := 0; start < len(lines); start += perPage {
		end := start + perPage
		if end > len(lines) {
			end = len(lines)
		}
		pages = append(pages, lines[start:end])
	}
	return pages
}

// Page returns the idx'th perPage-sized bucket of lines, clamped to the
// valid page range.
func Page(lines []string, perPage, idx int) []string {
	pages := Paginate(lines, perPage)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(pages) {
		idx = len(pages) - 1
	}
	return pages[idx]
}

// TruncateLines returns lines cut to a cumulative budget of n runes,
// counted across lines in order. Used by the typewriter reveal: the
// budget grows over time and the visible text grows with it.
func TruncateLines(lines []string, n int) []string {
	if n < 0 {
		n = 0
	}
	out := make([]string, 0, len(lines))
	remaining := n
	for _, line := range lines {
		runes := []rune(line)
		if remaining >= len(runes) {
			out = append(out, line)
			remaining -= len(runes)
			continue
		}
		if remaining > 0 {
			out = append(out, string(runes[:remaining]))
		}
		break
	}
	return out
}

// RuneCount returns the total number of runes across lines. This is the
// reveal budget needed to show a page in full.
func RuneCount(lines []string) int {
	total := 0
	for _, line := range lines {
		total += len([]rune(line))
	}
	return total
}
