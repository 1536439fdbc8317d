package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "github.com/Megaman222111/gift/pkg/engine/input"
	"github.com/Megaman222111/gift/pkg/game/gameplay"
)

// wheelStep converts one wheel notch into scene pixels of scroll.
const wheelStep = 12.0

// keyCodes maps Ebiten keys to the raw codes the engine bindings know.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeyW:          "w",
	ebiten.KeyA:          "a",
	ebiten.KeyS:          "s",
	ebiten.KeyD:          "d",
	ebiten.KeyEnter:      "enter",
	ebiten.KeySpace:      "space",
	ebiten.KeyZ:          "z",
	ebiten.KeyEscape:     "escape",
	ebiten.KeyX:          "x",
	ebiten.KeyE:          "e",
	ebiten.KeyR:          "r",
	ebiten.KeyPageUp:     "page_up",
	ebiten.KeyPageDown:   "page_down",
	ebiten.KeyF9:         "f9",
}

// gamepadCodes maps standard gamepad buttons to raw codes.
var gamepadCodes = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonLeftTop:     "gamepad_dpad_up",
	ebiten.StandardGamepadButtonLeftBottom:  "gamepad_dpad_down",
	ebiten.StandardGamepadButtonLeftLeft:    "gamepad_dpad_left",
	ebiten.StandardGamepadButtonLeftRight:   "gamepad_dpad_right",
	ebiten.StandardGamepadButtonRightBottom: "gamepad_a",
	ebiten.StandardGamepadButtonRightRight:  "gamepad_b",
}

// Update collects this frame's raw input into the router and advances
// the simulation by the elapsed real time (Ebiten interface).
func (r *Renderer) Update() error {
	now := time.Now()
	dt := now.Sub(r.last).Seconds()
	r.last = now

	if !ebiten.IsFocused() {
		// Dropping held keys on focus loss stops the player from
		// walking into a wall while the window is in the background.
		r.router.Reset()
		return nil
	}

	r.collectKeyboard()
	r.collectGamepads()
	r.collectMouse()

	gameplay.Advance(r.game, r.router, dt)
	return nil
}

func (r *Renderer) collectKeyboard() {
	for key, code := range keyCodes {
		if inpututil.IsKeyJustPressed(key) {
			r.router.KeyDown(rawKey(code))
		}
		if inpututil.IsKeyJustReleased(key) {
			r.router.KeyUp(rawKey(code))
		}
	}
}

func (r *Renderer) collectGamepads() {
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for button, code := range gamepadCodes {
			if inpututil.IsStandardGamepadButtonJustPressed(id, button) {
				r.router.KeyDown(rawPad(code))
			}
			if inpututil.IsStandardGamepadButtonJustReleased(id, button) {
				r.router.KeyUp(rawPad(code))
			}
		}
	}
}

func (r *Renderer) collectMouse() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		r.router.Click(float64(x), float64(y))
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		r.router.Scroll(-wy * wheelStep)
	}
}

func rawKey(code string) engineinput.RawInput {
	return engineinput.RawInput{
		Device:    engineinput.DeviceKeyboard,
		Code:      code,
		Timestamp: time.Now(),
	}
}

func rawPad(code string) engineinput.RawInput {
	return engineinput.RawInput{
		Device:    engineinput.DeviceGamepad,
		Code:      code,
		Timestamp: time.Now(),
	}
}
