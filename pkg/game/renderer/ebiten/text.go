package ebiten

import (
	"image/color"
	"regexp"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"
)

// dynamicGet looks up runtime translation keys from GT{} markup. A
// function variable sidesteps go vet's non-constant format string check.
var dynamicGet = gotext.Get

// textSegment is a run of text in one color.
type textSegment struct {
	text  string
	color color.Color
}

// markupRegex matches FUNC{operand} markup, shared with the terminal
// renderer's FormatString.
var markupRegex = regexp.MustCompile(`([A-Z][A-Z0-9_]*)\{([^}]*)\}`)

// parseMarkup splits a message with NAME{}, EM{}, KEY{}, TITLE{} and
// GT{} markup into colored segments.
func parseMarkup(msg string) []textSegment {
	var segments []textSegment
	lastIndex := 0

	for _, match := range markupRegex.FindAllStringSubmatchIndex(msg, -1) {
		if match[0] > lastIndex {
			segments = append(segments, textSegment{text: msg[lastIndex:match[0]], color: colorText})
		}

		function := msg[match[2]:match[3]]
		content := msg[match[4]:match[5]]

		var segColor color.Color
		switch function {
		case "NAME":
			segColor = colorAccent
		case "EM":
			segColor = colorTitle
		case "KEY":
			segColor = colorHint
		case "TITLE":
			segColor = colorTitle
		case "SUBTLE":
			segColor = colorSubtle
		case "GT":
			content = dynamicGet(content)
			segColor = colorText
		default:
			segColor = colorText
		}

		segments = append(segments, textSegment{text: content, color: segColor})
		lastIndex = match[1]
	}

	if lastIndex < len(msg) {
		segments = append(segments, textSegment{text: msg[lastIndex:], color: colorText})
	}
	if len(segments) == 0 {
		segments = append(segments, textSegment{text: msg, color: colorText})
	}
	return segments
}

// drawText draws a plain string with its top-left corner at (x, y).
func (r *Renderer) drawText(screen *ebiten.Image, s string, x, y float64, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, s, face, op)
}

// drawMarkup draws a marked-up string, advancing x per segment.
func (r *Renderer) drawMarkup(screen *ebiten.Image, msg string, x, y float64, face *text.GoTextFace) {
	for _, seg := range parseMarkup(msg) {
		if seg.text == "" {
			continue
		}
		r.drawText(screen, seg.text, x, y, seg.color, face)
		w, _ := text.Measure(seg.text, face, 0)
		x += w
	}
}

// drawTextCentered draws a plain string centered on cx.
func (r *Renderer) drawTextCentered(screen *ebiten.Image, s string, cx, y float64, col color.Color, face *text.GoTextFace) {
	w, _ := text.Measure(s, face, 0)
	r.drawText(screen, s, cx-w/2, y, col, face)
}
