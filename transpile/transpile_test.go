package transpile_test

import (
	"strings"
	"testing"

	"ftcc/report"
	"ftcc/transpile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const basicTeleop = `@teleop("Basic Drive", "TeleOp")
class BasicDrive:
    def init_hardware(self):
        self.left_drive = motor("left_drive", "forward")
        self.right_drive = motor("right_drive", "reverse")

    def run(self):
        while opmode_is_active():
            drive = -gamepad1.left_stick_y
            turn = gamepad1.right_stick_x
            self.left_drive.set_power(drive + turn)
            self.right_drive.set_power(drive - turn)
            telemetry_add("Left Power", drive + turn)
            telemetry_add("Right Power", drive - turn)
`

func TestTranslateBasicTeleop(t *testing.T) {
	result, diags := transpile.Translate(basicTeleop)

	require.NotNil(t, result)
	assert.Empty(t, diags)
	assert.False(t, transpile.HasErrors(diags))
	assert.Equal(t, "BasicDrive", result.ClassName)

	out := result.Output
	assert.Contains(t, out, `@TeleOp(name="Basic Drive", group="TeleOp")`)
	assert.Contains(t, out, "public class BasicDrive extends LinearOpMode {")
	assert.Contains(t, out, "private DcMotor left_drive = null;")
	assert.Contains(t, out, `left_drive = hardwareMap.get(DcMotor.class, "left_drive");`)
	assert.Contains(t, out, "left_drive.setDirection(DcMotor.Direction.FORWARD);")
	assert.Contains(t, out, "right_drive.setDirection(DcMotor.Direction.REVERSE);")
	assert.Contains(t, out, "left_drive.setPower(drive + turn);")
	assert.Contains(t, out, "right_drive.setPower(drive - turn);")
	assert.Contains(t, out, `telemetry.addData("Right Power", drive - turn);`)

	// The loop flushes its telemetry batch exactly once per iteration.
	loop := out[strings.Index(out, "while (opModeIsActive()) {"):]
	loop = loop[:strings.Index(loop, "}")]
	assert.Equal(t, 1, strings.Count(loop, "telemetry.update();"))
}

func TestTranslateDeterministic(t *testing.T) {
	first, _ := transpile.Translate(basicTeleop)
	second, _ := transpile.Translate(basicTeleop)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first.Output, second.Output)
}

func TestTranslateSyntaxError(t *testing.T) {
	result, diags := transpile.Translate(`@teleop("T")
class Robot:
    def run(self):
        for x in y:
            pass
`)

	assert.Nil(t, result)
	require.Len(t, diags, 1)
	assert.Equal(t, report.SevError, diags[0].Severity)
	assert.Equal(t, report.KindSyntax, diags[0].Kind)
	assert.True(t, transpile.HasErrors(diags))
}

func TestTranslateWarningsDoNotFail(t *testing.T) {
	result, diags := transpile.Translate(`@autonomous("Park")
class Park:
    def init_hardware(self):
        self.m = thruster("t")
`)

	require.NotNil(t, result)
	assert.False(t, transpile.HasErrors(diags))

	// Unknown hardware plus the synthesized run method, both warnings.
	require.Len(t, diags, 2)
	for _, d := range diags {
		assert.Equal(t, report.SevWarning, d.Severity)
	}
}

func TestTranslateDiagnosticOrder(t *testing.T) {
	_, diags := transpile.Translate(`@teleop("T")
class Robot:
    def init_hardware(self):
        self.left = motor("l")

    def run(self):
        self.left.set_velocity(1)
        self.left.brake()
`)

	require.Len(t, diags, 2)
	assert.Contains(t, diags[0].Message, "set_velocity")
	assert.Contains(t, diags[1].Message, "brake")
	require.NotNil(t, diags[0].Span)
	require.NotNil(t, diags[1].Span)
	assert.Less(t, diags[0].Span.StartLine, diags[1].Span.StartLine)
}

func TestValidateSyntax(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantErrs bool
	}{
		{"valid file", basicTeleop, false},
		{"missing colon", "@teleop(\"T\")\nclass Robot\n    def run(self):\n        pass\n", true},
		{"bad indentation", "@teleop(\"T\")\nclass Robot:\n    def run(self):\n            pass\n          pass\n", true},
		{"reserved word", "@teleop(\"T\")\nclass Robot:\n    def run(self):\n        import os\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := transpile.ValidateSyntax(tt.src)

			if tt.wantErrs {
				require.Len(t, diags, 1)
				assert.Equal(t, report.KindSyntax, diags[0].Kind)
			} else {
				assert.Empty(t, diags)
			}
		})
	}
}

func TestDiagnosticRendering(t *testing.T) {
	diags := transpile.ValidateSyntax("@teleop(\"T\")\nclass Robot:\n    def run(self):\n        x = $\n")

	require.Len(t, diags, 1)
	assert.Equal(t, "4:13: error: unknown rune: `$`", diags[0].String())
}
