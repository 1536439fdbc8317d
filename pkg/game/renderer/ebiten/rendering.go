package ebiten

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"github.com/Megaman222111/gift/pkg/engine/geom"
	"github.com/Megaman222111/gift/pkg/game/arcade"
	"github.com/Megaman222111/gift/pkg/game/state"
	"github.com/Megaman222111/gift/pkg/game/world"
)

// Draw renders one frame (Ebiten interface). It only reads game state;
// all mutation happened in Update.
func (r *Renderer) Draw(screen *ebiten.Image) {
	g := r.game
	screen.Fill(colorBackground)

	r.drawRoom(screen, g)
	r.drawObjects(screen, g)
	r.drawPlayer(screen, g)
	r.drawHUD(screen, g)

	switch g.Mode {
	case state.ModeDialogue:
		r.drawDialogue(screen, g)
	case state.ModePoems:
		r.drawPoems(screen, g)
	case state.ModeArcade:
		r.drawArcade(screen, g)
	}
}

func fillRect(screen *ebiten.Image, rect geom.Rect, col color.Color) {
	vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y),
		float32(rect.W), float32(rect.H), col, false)
}

func strokeRect(screen *ebiten.Image, rect geom.Rect, width float32, col color.Color) {
	vector.StrokeRect(screen, float32(rect.X), float32(rect.Y),
		float32(rect.W), float32(rect.H), width, col, false)
}

// drawRoom draws the wall band, the floor, and the wall gallery.
func (r *Renderer) drawRoom(screen *ebiten.Image, g *state.Game) {
	wall := geom.NewRect(0, 0, state.SceneWidth, g.Bounds.Y)
	fillRect(screen, wall, colorWall)

	fillRect(screen, g.Bounds.Expand(2), colorFloorEdge)
	fillRect(screen, g.Bounds, colorFloor)

	for _, frame := range r.frames {
		tint := galleryTints[frame.Tint%len(galleryTints)]
		fillRect(screen, frame.Rect.Expand(1), colorFloorEdge)
		fillRect(screen, frame.Rect, tint)
	}
}

// drawObjects draws the registry in two passes so Z=1 props (the mug,
// the notebook) sit on top of the furniture they rest on.
func (r *Renderer) drawObjects(screen *ebiten.Image, g *state.Game) {
	for pass := 0; pass <= 1; pass++ {
		for _, o := range g.Registry.Objects() {
			if o.Z != pass {
				continue
			}
			r.drawObject(screen, g, o)
		}
	}
}

func (r *Renderer) drawObject(screen *ebiten.Image, g *state.Game, o *world.Object) {
	col, ok := spriteColors[o.Sprite]
	if !ok {
		col = colorFurniture
	}
	fillRect(screen, o.Rect, col)
	strokeRect(screen, o.Rect, 1, colorFloorEdge)

	// Highlight whatever the interact prompt points at.
	if g.Mode == state.ModeExploring && g.InteractHint == "NAME{"+o.ID+"}" {
		strokeRect(screen, o.Rect.Expand(2), 1, colorHint)
	}
}

// drawPlayer draws the player as a bobbing body with a facing marker.
func (r *Renderer) drawPlayer(screen *ebiten.Image, g *state.Game) {
	p := &g.Player
	bob := 0.0
	if p.WalkPhase > 0 {
		bob = math.Abs(math.Sin(p.WalkPhase)) * 1.5
	}

	body := geom.NewRect(p.X, p.Y-bob, p.Size, p.Size)
	fillRect(screen, body, colorPlayer)
	strokeRect(screen, body, 1, colorFloorEdge)

	// The trim strip sits on the facing edge.
	var trim geom.Rect
	switch p.Facing {
	case geom.DirUp:
		trim = geom.NewRect(body.X+3, body.Y+2, body.W-6, 3)
	case geom.DirDown:
		trim = geom.NewRect(body.X+3, body.Bottom()-5, body.W-6, 3)
	case geom.DirLeft:
		trim = geom.NewRect(body.X+2, body.Y+3, 3, body.H-6)
	case geom.DirRight:
		trim = geom.NewRect(body.Right()-5, body.Y+3, 3, body.H-6)
	}
	fillRect(screen, trim, colorPlayerTrim)
}

// drawHUD draws the message log and the interact prompt. The log yields
// to the dialogue box, which occupies the same strip.
func (r *Renderer) drawHUD(screen *ebiten.Image, g *state.Game) {
	if g.Mode != state.ModeDialogue {
		y := float64(state.SceneHeight) - 12
		for i := len(g.Messages) - 1; i >= 0; i-- {
			r.drawMarkup(screen, g.Messages[i], 6, y, r.fonts.ui)
			y -= state.LineHeight
		}
	}

	if g.Mode == state.ModeExploring && g.InteractHint != "" {
		prompt := fmt.Sprintf("KEY{E} %s", g.InteractHint)
		r.drawMarkup(screen, prompt, 6, 6, r.fonts.ui)
	}
}

// drawDialogue draws the bottom dialogue strip.
func (r *Renderer) drawDialogue(screen *ebiten.Image, g *state.Game) {
	d := g.Dialogue
	box := state.DialogueBox
	fillRect(screen, box, colorPanel)
	strokeRect(screen, box, 1, colorPanelBorder)

	x := box.X + 8
	y := box.Y + 4
	r.drawText(screen, d.Title, x, y, colorTitle, r.fonts.title)
	y += state.LineHeight + 2

	for _, line := range d.VisibleLines() {
		r.drawMarkup(screen, line, x, y, r.fonts.ui)
		y += state.LineHeight
	}

	if d.MaxPage > 0 {
		pager := fmt.Sprintf("%d/%d", d.Page+1, d.MaxPage+1)
		r.drawText(screen, pager, box.Right()-24, box.Bottom()-12, colorSubtle, r.fonts.ui)
	}
}

// drawPoems draws the poem reader panel with its scrolled text column.
func (r *Renderer) drawPoems(screen *ebiten.Image, g *state.Game) {
	reader := g.Poems
	panel := reader.Panel
	fillRect(screen, panel, colorPanel)
	strokeRect(screen, panel, 1, colorPanelBorder)

	cx := panel.X + panel.W/2
	r.drawTextCentered(screen, reader.Title(), cx, panel.Y+6, colorTitle, r.fonts.title)

	if len(reader.Poems) > 1 {
		pager := fmt.Sprintf("%d/%d", reader.Index+1, len(reader.Poems))
		r.drawText(screen, pager, panel.Right()-26, panel.Y+6, colorSubtle, r.fonts.ui)
	}

	// Clip the text column so scrolled lines cannot bleed over the
	// panel chrome. TextOrigin already folds in the scroll offset; the
	// viewport itself stays put.
	tx, ty := reader.TextOrigin()
	viewTop := ty + reader.Offset
	viewport := geom.NewRect(panel.X, viewTop, panel.W, reader.ViewportHeight())
	clip := screen.SubImage(image.Rect(
		int(viewport.X), int(viewport.Y),
		int(viewport.Right()), int(viewport.Bottom()),
	)).(*ebiten.Image)

	y := ty
	for _, line := range reader.Wrapped {
		if y+state.LineHeight >= viewport.Y && y <= viewport.Bottom() {
			r.drawText(clip, line, tx, y, colorText, r.fonts.ui)
		}
		y += state.LineHeight
	}

	hint := gotext.Get("click: next   E: previous   esc: close")
	r.drawTextCentered(screen, hint, cx, panel.Bottom()-11, colorSubtle, r.fonts.ui)
}

// drawArcade draws the arcade panel: the menu, or the active game.
func (r *Renderer) drawArcade(screen *ebiten.Image, g *state.Game) {
	s := g.Arcade
	fillRect(screen, s.Panel, colorPanel)
	strokeRect(screen, s.Panel, 1, colorPanelBorder)

	switch s.Screen {
	case arcade.ScreenMenu:
		r.drawArcadeMenu(screen, s)
	case arcade.ScreenSnake:
		r.drawSnake(screen, s)
	case arcade.ScreenHearts:
		r.drawHearts(screen, s)
	case arcade.ScreenButterfly:
		r.drawButterflies(screen, s)
	}
}

func (r *Renderer) drawArcadeMenu(screen *ebiten.Image, s *arcade.Session) {
	cx := s.Panel.X + s.Panel.W/2
	r.drawTextCentered(screen, gotext.Get("Arcade"), cx, s.Panel.Y+6, colorTitle, r.fonts.title)

	area := s.GameArea()
	clip := screen.SubImage(image.Rect(
		int(area.X), int(area.Y), int(area.Right()), int(area.Bottom()),
	)).(*ebiten.Image)

	for i, entry := range s.Entries {
		button := s.ButtonRect(i)
		fillRect(clip, button, colorButton)
		strokeRect(clip, button, 1, colorButtonEdge)
		r.drawTextCentered(clip, entry.Label, cx, button.Y+button.H/2-uiFontSize/2,
			colorText, r.fonts.ui)
	}
}

func (r *Renderer) drawGameHeader(screen *ebiten.Image, s *arcade.Session, name string, score int) {
	r.drawMarkup(screen,
		fmt.Sprintf("TITLE{%s}  SUBTLE{%s} %d", name, gotext.Get("score"), score),
		s.Panel.X+10, s.Panel.Y+6, r.fonts.ui)
}

func (r *Renderer) drawSnake(screen *ebiten.Image, s *arcade.Session) {
	r.drawGameHeader(screen, s, gotext.Get("Snake"), s.Snake.Score)

	area := s.GameArea()
	fillRect(screen, area, colorSnakeGrid)

	cellW := area.W / float64(s.Snake.Cols)
	cellH := area.H / float64(s.Snake.Rows)
	cellRect := func(c arcade.Cell) geom.Rect {
		return geom.NewRect(
			area.X+float64(c.X)*cellW+1,
			area.Y+float64(c.Y)*cellH+1,
			cellW-2, cellH-2,
		)
	}

	fillRect(screen, cellRect(s.Snake.Food), colorSnakeFood)
	for i, c := range s.Snake.Body {
		col := colorSnakeBody
		if i == 0 {
			col = colorSnakeHead
		}
		fillRect(screen, cellRect(c), col)
	}

	if !s.Snake.Alive {
		cx := area.X + area.W/2
		r.drawTextCentered(screen, gotext.Get("ouch! R to restart"),
			cx, area.Y+area.H/2-uiFontSize/2, colorDanger, r.fonts.title)
	}
}

func (r *Renderer) drawHearts(screen *ebiten.Image, s *arcade.Session) {
	r.drawGameHeader(screen, s, gotext.Get("Heart Pop"), s.Hearts.Score)

	area := s.GameArea()
	for _, h := range s.Hearts.Hearts {
		x := area.X + h.X*area.W
		y := area.Y + h.Y*area.H
		size := 4.0 + 4.0*math.Min(1, h.TTL/1.2)
		fillRect(screen, geom.NewRect(x-size/2, y-size/2, size, size), colorHeart)
	}
}

func (r *Renderer) drawButterflies(screen *ebiten.Image, s *arcade.Session) {
	r.drawGameHeader(screen, s, gotext.Get("Butterfly Catch"), s.Butterflies.Score)

	area := s.GameArea()
	for _, b := range s.Butterflies.Butterflies {
		x := area.X + b.X*area.W
		y := area.Y + b.Y*area.H
		// Two wings angled by the travel direction.
		wing := 3.0
		fillRect(screen, geom.NewRect(x-wing-1, y-wing/2, wing, wing), colorButterfly)
		fillRect(screen, geom.NewRect(x+1, y-wing/2, wing, wing), colorButterfly)
	}
}
