package ebiten

import "image/color"

// Color palette. Warm room tones; overlay panels reuse the darker
// backgrounds so text stays readable on top of the scene.
var (
	colorBackground = color.RGBA{24, 20, 37, 255}    // dark plum behind everything
	colorWall       = color.RGBA{58, 48, 74, 255}    // upper wall band
	colorFloor      = color.RGBA{120, 86, 68, 255}   // wooden floor
	colorFloorEdge  = color.RGBA{94, 66, 52, 255}    // floor border
	colorRug        = color.RGBA{156, 84, 92, 255}   // rug base
	colorText       = color.RGBA{236, 226, 208, 255} // default text
	colorSubtle     = color.RGBA{150, 140, 160, 255} // secondary text
	colorAccent     = color.RGBA{244, 180, 96, 255}  // names, highlights
	colorTitle      = color.RGBA{246, 214, 132, 255} // overlay titles
	colorHint       = color.RGBA{140, 220, 170, 255} // interact prompt

	colorPlayer     = color.RGBA{228, 166, 114, 255}
	colorPlayerTrim = color.RGBA{90, 122, 168, 255}

	colorPanel       = color.RGBA{28, 24, 44, 235} // overlay panel fill
	colorPanelBorder = color.RGBA{104, 92, 134, 255}
	colorButton      = color.RGBA{52, 44, 72, 255}
	colorButtonEdge  = color.RGBA{128, 112, 160, 255}

	colorSnakeBody = color.RGBA{110, 200, 130, 255}
	colorSnakeHead = color.RGBA{160, 235, 170, 255}
	colorSnakeFood = color.RGBA{235, 120, 120, 255}
	colorSnakeGrid = color.RGBA{38, 34, 56, 255}
	colorHeart     = color.RGBA{235, 110, 140, 255}
	colorButterfly = color.RGBA{150, 180, 240, 255}
	colorDanger    = color.RGBA{235, 110, 110, 255}
)

// spriteColors maps an object's sprite name to its fill color. Unknown
// sprites fall back to the furniture tone.
var spriteColors = map[string]color.RGBA{
	"bed":     {112, 134, 170, 255},
	"desk":    {146, 104, 70, 255},
	"mug":     {222, 158, 84, 255},
	"plant":   {96, 160, 96, 255},
	"rug":     {156, 84, 92, 255},
	"shelf":   {134, 96, 66, 255},
	"book":    {196, 120, 130, 255},
	"cabinet": {88, 96, 150, 255},
}

var colorFurniture = color.RGBA{120, 104, 124, 255}

// galleryTints are the frame palette indexed by content.Frame.Tint.
var galleryTints = []color.RGBA{
	{170, 120, 110, 255},
	{120, 150, 130, 255},
	{130, 120, 170, 255},
	{170, 150, 110, 255},
	{140, 140, 150, 255},
}
