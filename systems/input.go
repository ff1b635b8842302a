package systems

import (
	"github.com/automoto/shadowblade/components"
	cfg "github.com/automoto/shadowblade/config"
	"github.com/automoto/shadowblade/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keyboard, mouse and every connected gamepad into the
// shared snapshot. No device is authoritative; presses from any of them
// count. Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)
	input.Advance()

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	var analogX, analogY float64
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if h < -cfg.Input.HorizontalDeadzone || h > cfg.Input.HorizontalDeadzone {
			analogX = h
		}
		if v < -cfg.Input.VerticalDeadzone || v > cfg.Input.VerticalDeadzone {
			analogY = v
		}
		// Right trigger attacks, like the face button
		trigger := ebiten.StandardGamepadButtonValue(gpID, ebiten.StandardGamepadButtonFrontBottomRight)
		if trigger > cfg.Input.TriggerDeadzone {
			input.Current[cfg.ActionAttack] = true
		}
	}

	input.MoveX, input.MoveY = movementVector(input, analogX, analogY)
}

// movementVector merges digital directions with the analog stick. Each axis
// is clamped to [-1, 1].
func movementVector(input *components.InputData, analogX, analogY float64) (float64, float64) {
	x, y := analogX, analogY
	if input.Current[cfg.ActionMoveLeft] {
		x--
	}
	if input.Current[cfg.ActionMoveRight] {
		x++
	}
	if input.Current[cfg.ActionMoveUp] {
		y--
	}
	if input.Current[cfg.ActionMoveDown] {
		y++
	}
	return gamemath.ClampUnit(x), gamemath.ClampUnit(y)
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// SetScriptedInput replaces the snapshot with a synthetic one. Headless runs
// use it in place of UpdateInput.
func SetScriptedInput(ecs *ecs.ECS, moveX, moveY float64, actions ...cfg.ActionID) {
	input := GetOrCreateInput(ecs)
	input.Advance()
	for _, a := range actions {
		input.Press(a)
	}
	input.MoveX, input.MoveY = movementVector(input, moveX, moveY)
}
