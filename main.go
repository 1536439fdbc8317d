package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/leonelquinteros/gotext"

	"github.com/Megaman222111/gift/pkg/engine/terminal"
	"github.com/Megaman222111/gift/pkg/game/content"
	"github.com/Megaman222111/gift/pkg/game/renderer"
	ebitenrenderer "github.com/Megaman222111/gift/pkg/game/renderer/ebiten"
	"github.com/Megaman222111/gift/pkg/game/setup"
)

const windowTitle = "A Little Room"

func initGotext(localeDir, locale string) {
	gotext.Configure(localeDir, locale, "default")
}

// openURL opens an outbound link with the platform's URL handler. The
// album shelf's side-effect funnels through here.
func openURL(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("opening %s: %v", url, err)
	}
}

// printBanner greets on stdout when launched from a terminal.
func printBanner(seed int64) {
	if !terminal.IsInteractive() {
		return
	}
	renderer.PrintString("TITLE{%s}\n", windowTitle)
	renderer.PrintString("seed EM{%d}  KEY{F9} dumps the scene state here\n\n", seed)
}

func main() {
	scale := flag.Int("scale", 4, "integer window scale of the 320x180 scene")
	seed := flag.Int64("seed", 0, "world seed; 0 picks one from the clock")
	localeDir := flag.String("locale-dir", "locales", "directory with gotext .po/.mo files")
	locale := flag.String("locale", "en_GB", "UI locale")
	flag.Parse()

	initGotext(*localeDir, *locale)
	renderer.InitColors()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	printBanner(*seed)

	backend := ebitenrenderer.New(*scale, windowTitle, content.Gallery(*seed))
	renderer.SetRenderer(backend)

	g := setup.BuildGame(*seed, openURL, backend.Measure)

	if err := renderer.Current.Run(g); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", windowTitle, err)
		os.Exit(1)
	}
}
