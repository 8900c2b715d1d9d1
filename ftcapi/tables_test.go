package ftcapi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorTableComplete(t *testing.T) {
	assert.Len(t, Constructors, 10)

	// Every constructible kind carries a distinct Java type and an import.
	seen := make(map[string]string)
	for name, kind := range Constructors {
		javaType := kind.JavaType()
		require.NotEmpty(t, javaType, "constructor %s has no Java type", name)
		require.NotEmpty(t, kind.Import(), "constructor %s has no import", name)

		if prev, ok := seen[javaType]; ok {
			t.Fatalf("constructors %s and %s share Java type %s", prev, name, javaType)
		}

		seen[javaType] = name
	}
}

func TestOpaqueKind(t *testing.T) {
	assert.Equal(t, "Object", KindOpaque.JavaType())
	assert.Empty(t, KindOpaque.Import())
	assert.False(t, KindOpaque.ResolvedFromConfig())
}

func TestResolvedFromConfig(t *testing.T) {
	assert.True(t, KindMotor.ResolvedFromConfig())
	assert.True(t, KindWebcam.ResolvedFromConfig())
	assert.False(t, KindAprilTag.ResolvedFromConfig())
	assert.False(t, KindTensorFlow.ResolvedFromConfig())
	assert.False(t, KindVisionPortal.ResolvedFromConfig())
}

func TestMotorModeTable(t *testing.T) {
	require.Len(t, MotorModes, 4)

	for literal, enumerant := range MotorModes {
		assert.True(t, strings.HasPrefix(enumerant, "DcMotor.RunMode."),
			"mode %s maps outside DcMotor.RunMode", literal)
	}

	assert.Equal(t, "DcMotor.RunMode.RUN_USING_ENCODER", MotorModes["run_using_encoder"])
	assert.Equal(t, "DcMotor.RunMode.STOP_AND_RESET_ENCODER", MotorModes["stop_and_reset_encoder"])
}

func TestLookupAction(t *testing.T) {
	tests := []struct {
		kind     Kind
		name     string
		wantJava string
		found    bool
	}{
		{KindMotor, "set_power", "setPower", true},
		{KindMotor, "get_current_position", "getCurrentPosition", true},
		{KindServo, "set_position", "setPosition", true},
		{KindColorSensor, "get_red", "red", true},
		{KindTouchSensor, "is_pressed", "isPressed", true},
		{KindVisionPortal, "stop_streaming", "stopStreaming", true},
		{KindMotor, "set_velocity", "", false},
		{KindServo, "set_power", "", false},
		{KindOpaque, "set_power", "", false},
	}

	for _, tt := range tests {
		act, ok := LookupAction(tt.kind, tt.name)
		assert.Equal(t, tt.found, ok, "%v.%s", tt.kind, tt.name)
		assert.Equal(t, tt.wantJava, act.JavaName, "%v.%s", tt.kind, tt.name)
	}
}

func TestDistanceActionExtraArgs(t *testing.T) {
	act, ok := LookupAction(KindDistanceSensor, "get_distance")
	require.True(t, ok)

	assert.Equal(t, "getDistance", act.JavaName)
	assert.Equal(t, []string{"DistanceUnit.CM"}, act.ExtraArgs)
	assert.Equal(t, ImportDistanceUnit, act.Import)
}

func TestImuActionImports(t *testing.T) {
	// Every IMU angle getter implies the angle unit navigation import.
	for _, name := range []string{"get_heading", "get_pitch", "get_roll"} {
		act, ok := LookupAction(KindIMU, name)
		require.True(t, ok, name)
		assert.Equal(t, ImportAngleUnit, act.Import, name)
	}
}

func TestGamepadField(t *testing.T) {
	tests := []struct {
		attr string
		want string
	}{
		{"a_button", "a"},
		{"b_button", "b"},
		{"x_button", "x"},
		{"y_button", "y"},
		{"left_stick_y", "left_stick_y"},
		{"right_trigger", "right_trigger"},
		{"left_bumper", "left_bumper"},
		{"dpad_up", "dpad_up"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GamepadField(tt.attr), tt.attr)
	}
}

func TestIsGamepad(t *testing.T) {
	assert.True(t, IsGamepad("gamepad1"))
	assert.True(t, IsGamepad("gamepad2"))
	assert.False(t, IsGamepad("gamepad3"))
	assert.False(t, IsGamepad("self"))
}

func TestSortImports(t *testing.T) {
	set := map[string]struct{}{
		ImportDistanceUnit:        {},
		KindMotor.Import():        {},
		ImportLinearOpMode:        {},
		KindVisionPortal.Import(): {},
		ImportTeleOp:              {},
		KindColorSensor.Import():  {},
	}

	// Framework first, then hardware, vision, navigation; alphabetical
	// within each category.
	assert.Equal(t, []string{
		ImportLinearOpMode,
		ImportTeleOp,
		KindColorSensor.Import(),
		KindMotor.Import(),
		KindVisionPortal.Import(),
		ImportDistanceUnit,
	}, SortImports(set))
}
