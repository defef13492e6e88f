package input

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyName returns the identifier key bindings use for k, e.g. "w" or "arrowup".
func KeyName(k ebiten.Key) string {
	return strings.ToLower(k.String())
}

// KeyTransitions collects the keys pressed and released since the last frame.
type KeyTransitions struct {
	pressed  []ebiten.Key
	released []ebiten.Key
}

// Update reads this frame's transitions. The returned slices are reused on
// the next call.
func (t *KeyTransitions) Update() (pressed, released []ebiten.Key) {
	t.pressed = inpututil.AppendJustPressedKeys(t.pressed[:0])
	t.released = inpututil.AppendJustReleasedKeys(t.released[:0])
	return t.pressed, t.released
}

// IsPositiveJustPressed returns a boolean value indicating whether the generic positive input is just pressed.
// This is used to handle keyboard, mouse, touch and gamepad inputs.
func IsPositiveJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		return true
	}
	gamepadIDs := ebiten.AppendGamepadIDs(nil)
	for _, g := range gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(g) {
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonRightBottom) {
				return true
			}
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonRightRight) {
				return true
			}
		} else {
			// The button 0/1 might not be A/B buttons.
			if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton0) {
				return true
			}
			if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton1) {
				return true
			}
		}
	}
	return false
}

// IsPauseJustPressed returns a boolean value indicating whether pause was toggled.
func IsPauseJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func IsCopyJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyC)
}
