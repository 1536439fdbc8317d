// Package renderer defines the rendering boundary: the core exposes
// read-only state, a backend produces pixels. The package also carries
// the markup system shared by terminal output and the Ebiten backend.
package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"github.com/Megaman222111/gift/pkg/game/state"
)

// Renderer is a rendering backend. The backend owns the window and the
// frame loop; it reads game state and never mutates it.
type Renderer interface {
	// Run opens the window and blocks until the game exits.
	Run(g *state.Game) error
}

// Current holds the active renderer instance.
var Current Renderer

// SetRenderer sets the active renderer.
func SetRenderer(r Renderer) {
	Current = r
}

var (
	ColorTitle  color.Style
	ColorName   color.Style
	ColorKey    color.Style
	ColorEm     color.Style
	ColorSubtle color.Style

	regexpMarkup *regexp.Regexp
)

// InitColors initializes the terminal color styles and the markup
// pattern. Call once at startup before any FormatString.
func InitColors() {
	ColorTitle = color.Style{color.FgMagenta, color.OpBold}
	ColorName = color.Style{color.FgCyan}
	ColorKey = color.Style{color.FgYellow, color.OpBold}
	ColorEm = color.Style{color.FgGreen, color.OpBold}
	ColorSubtle = color.Style{color.FgGray}

	regexpMarkup = regexp.MustCompile(`([A-Z][A-Z0-9_]*)\{([^}]*)\}`)
}

// FormatString formats a message, expanding markup functions into
// terminal colors: GT{key} translates, NAME{s} tints object names,
// KEY{s} tints key prompts, EM{s} emphasizes, TITLE{s} styles headings.
func FormatString(msg string, a ...any) string {
	ret := fmt.Sprintf(msg, a...)

	matches := regexpMarkup.FindAllStringSubmatch(ret, -1)
	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string
		switch function {
		case "GT":
			val = gotext.Get(operand)
		case "NAME":
			val = ColorName.Sprint(operand)
		case "KEY":
			val = ColorKey.Sprint(operand)
		case "EM":
			val = ColorEm.Sprint(operand)
		case "TITLE":
			val = ColorTitle.Sprint(operand)
		default:
			val = operand
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// StripMarkup removes markup functions, keeping their operands. The
// Ebiten backend parses markup itself; plain surfaces use this.
func StripMarkup(msg string) string {
	if regexpMarkup == nil {
		InitColors()
	}
	return regexpMarkup.ReplaceAllString(msg, "$2")
}

// PrintString prints a formatted string to the terminal.
func PrintString(msg string, a ...any) {
	fmt.Print(FormatString(msg, a...))
}

// PrintBullet prints a bulleted item.
func PrintBullet(txt string) {
	fmt.Printf("- " + FormatString(txt) + "\n")
}
