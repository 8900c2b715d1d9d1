package ftcapi

import "strings"

// IsGamepad returns whether the name refers to one of the two gamepads.
func IsGamepad(name string) bool {
	return name == "gamepad1" || name == "gamepad2"
}

// GamepadField maps a dialect gamepad attribute to its Java field name.
// Attributes of the form `<x>_button` strip their suffix (`a_button` ->
// `a`); every other attribute (sticks, triggers, bumpers, dpad) passes
// through unchanged.
func GamepadField(attr string) string {
	if name, ok := strings.CutSuffix(attr, "_button"); ok && name != "" {
		return name
	}

	return attr
}
