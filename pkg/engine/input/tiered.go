// Package input provides layered input handling: raw device events are
// debounced, mapped through rebindable bindings to high-level actions,
// and finally delivered as Intents the game step consumes.
package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceGamepad
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement (held keys, sampled every frame)
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight

	// Meta / UI
	ActionConfirm  // Advance dialogue, activate (Enter / Space / Z)
	ActionCancel   // Dismiss overlay one level (Escape / X)
	ActionInteract // Interact with the nearest object (E)
	ActionPageUp
	ActionPageDown
	ActionRestart // Restart the active mini-game (R)
	ActionDump    // Dump scene state to the terminal (F9)

	// Pointer
	ActionPrimary // Click with scene coordinates
	ActionScroll  // Wheel with a scene-pixel delta
)

// Intent is the top-layer description of what the player wants to do.
// X, Y carry scene coordinates for ActionPrimary; ScrollY carries the
// wheel delta for ActionScroll.
type Intent struct {
	Action  Action
	X, Y    float64
	ScrollY float64
}

// RawInput is the bottom-layer event emitted directly from a device.
// Code is a device-specific identifier (e.g. "arrow_up", "mouse_left").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the raw event after deduplication. The underlying
// libraries already debounce for us, but the distinct type keeps the
// layering explicit and extensible.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions. Multiple codes may point to the
// same Action.
var bindings = map[string]Action{
	// Movement (arrows + WASD)
	"arrow_up":    ActionMoveUp,
	"w":           ActionMoveUp,
	"arrow_down":  ActionMoveDown,
	"s":           ActionMoveDown,
	"arrow_left":  ActionMoveLeft,
	"a":           ActionMoveLeft,
	"arrow_right": ActionMoveRight,
	"d":           ActionMoveRight,

	// Confirm / cancel
	"enter":  ActionConfirm,
	"space":  ActionConfirm,
	"z":      ActionConfirm,
	"escape": ActionCancel,
	"x":      ActionCancel,

	// Interaction
	"e": ActionInteract,

	// Paging (poem reader)
	"page_up":   ActionPageUp,
	"page_down": ActionPageDown,

	// Mini-game restart
	"r": ActionRestart,

	// Devtools
	"f9": ActionDump,

	// Gamepad
	"gamepad_dpad_up":    ActionMoveUp,
	"gamepad_dpad_down":  ActionMoveDown,
	"gamepad_dpad_left":  ActionMoveLeft,
	"gamepad_dpad_right": ActionMoveRight,
	"gamepad_a":          ActionConfirm,
	"gamepad_b":          ActionCancel,
}

// MapToIntent applies the current bindings to a debounced input and
// returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveUp:
		return "Move Up"
	case ActionMoveDown:
		return "Move Down"
	case ActionMoveLeft:
		return "Move Left"
	case ActionMoveRight:
		return "Move Right"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionInteract:
		return "Interact"
	case ActionPageUp:
		return "Page Up"
	case ActionPageDown:
		return "Page Down"
	case ActionRestart:
		return "Restart"
	case ActionDump:
		return "Dump State"
	case ActionPrimary:
		return "Primary"
	case ActionScroll:
		return "Scroll"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
