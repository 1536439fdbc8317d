package ebiten

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Font sizes in scene pixels. The scene is 320x180, so UI text is tiny
// by desktop standards; Ebiten scales it with the window.
const (
	uiFontSize    = 8.0
	titleFontSize = 9.0
)

// fontSet holds the embedded Go font sources and their cached faces.
type fontSet struct {
	sans     *text.GoTextFaceSource
	sansBold *text.GoTextFaceSource
	mono     *text.GoTextFaceSource

	ui    *text.GoTextFace
	title *text.GoTextFace
	grid  *text.GoTextFace
}

// load parses the embedded fonts. A parse failure is a build defect,
// not a runtime condition, so it is fatal.
func (f *fontSet) load() {
	f.sans = mustFaceSource(goregular.TTF)
	f.sansBold = mustFaceSource(gobold.TTF)
	f.mono = mustFaceSource(gomono.TTF)

	f.ui = &text.GoTextFace{Source: f.sans, Size: uiFontSize}
	f.title = &text.GoTextFace{Source: f.sansBold, Size: titleFontSize}
	f.grid = &text.GoTextFace{Source: f.mono, Size: uiFontSize}
}

func mustFaceSource(ttf []byte) *text.GoTextFaceSource {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		log.Fatalf("parsing embedded font: %v", err)
	}
	return src
}

// width measures a string at UI size.
func (f *fontSet) width(s string) float64 {
	w, _ := text.Measure(s, f.ui, 0)
	return w
}
