package syntax

import (
	"testing"

	"ftcc/ast"
	"ftcc/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustParse parses source text that is expected to be well formed.
func mustParse(t *testing.T, src string) *ast.ClassDef {
	t.Helper()
	return NewParser(src).Parse()
}

// parseError parses source text that is expected to be malformed and
// returns the raised source error.
func parseError(t *testing.T, src string) *report.SourceError {
	t.Helper()

	var serr *report.SourceError
	func() {
		defer func() {
			if x := recover(); x != nil {
				var ok bool
				serr, ok = x.(*report.SourceError)
				require.True(t, ok, "expected a *report.SourceError panic")
			}
		}()

		NewParser(src).Parse()
	}()

	require.NotNil(t, serr, "expected a syntax error")
	return serr
}

func TestParseMinimalClass(t *testing.T) {
	class := mustParse(t, `@teleop("Basic Drive", "TeleOp")
class BasicDrive:
    def run(self):
        pass
`)

	assert.Equal(t, "BasicDrive", class.Name)
	assert.Equal(t, ast.OpModeTeleOp, class.OpMode.Kind)
	assert.Equal(t, "Basic Drive", class.OpMode.DisplayName)
	assert.Equal(t, "TeleOp", class.OpMode.Group)

	require.Len(t, class.Methods, 1)
	assert.Equal(t, "run", class.Methods[0].Name)
	assert.Empty(t, class.Methods[0].Params)
}

func TestParseDecoratorDefaults(t *testing.T) {
	class := mustParse(t, `@autonomous()
class Park:
    def run(self):
        pass
`)

	assert.Equal(t, ast.OpModeAutonomous, class.OpMode.Kind)
	assert.Equal(t, "Park", class.OpMode.DisplayName)
	assert.Equal(t, "Linear Opmode", class.OpMode.Group)
}

func TestParseMethodParams(t *testing.T) {
	class := mustParse(t, `@teleop("T")
class Robot:
    def drive(self, left, right):
        pass
`)

	require.Len(t, class.Methods, 1)
	assert.Equal(t, []string{"left", "right"}, class.Methods[0].Params)
}

func TestParseStatements(t *testing.T) {
	class := mustParse(t, `@teleop("T")
class Robot:
    def run(self):
        x = 1
        if x > 0:
            self.motor_a.set_power(x)
        elif x < 0:
            pass
        else:
            return
        while opmode_is_active():
            sleep(20)
        return x
`)

	require.Len(t, class.Methods, 1)
	body := class.Methods[0].Body
	require.Len(t, body, 4)

	assert.IsType(t, &ast.Assignment{}, body[0])

	ifs, ok := body[1].(*ast.IfStmt)
	require.True(t, ok)
	assert.Len(t, ifs.Branches, 2)
	assert.Len(t, ifs.Else, 1)

	wl, ok := body[2].(*ast.WhileLoop)
	require.True(t, ok)
	assert.Len(t, wl.Body, 1)

	ret, ok := body[3].(*ast.ReturnStmt)
	require.True(t, ok)
	assert.NotNil(t, ret.Value)
}

func TestParseExprPrecedence(t *testing.T) {
	class := mustParse(t, `@teleop("T")
class Robot:
    def run(self):
        x = a + b * c
`)

	assign := class.Methods[0].Body[0].(*ast.Assignment)

	add, ok := assign.Value.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "+", add.Op)

	mul, ok := add.Rhs.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "*", mul.Op)
}

func TestParseBooleanPrecedence(t *testing.T) {
	class := mustParse(t, `@teleop("T")
class Robot:
    def run(self):
        x = not a and b or c
`)

	assign := class.Methods[0].Body[0].(*ast.Assignment)

	or, ok := assign.Value.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "or", or.Op)

	and, ok := or.Lhs.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "and", and.Op)

	not, ok := and.Lhs.(*ast.UnaryOp)
	require.True(t, ok)
	assert.Equal(t, "not", not.Op)
}

func TestParsePostfixChain(t *testing.T) {
	class := mustParse(t, `@teleop("T")
class Robot:
    def run(self):
        self.arm.set_power(0.5, x)
`)

	es := class.Methods[0].Body[0].(*ast.ExprStmt)

	call, ok := es.Expr.(*ast.Call)
	require.True(t, ok)
	require.Len(t, call.Args, 2)

	attr, ok := call.Func.(*ast.AttrAccess)
	require.True(t, ok)
	assert.Equal(t, "set_power", attr.Attr)
	assert.Equal(t, "self.arm.set_power(0.5, x)", es.DialectString())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantMsg string
	}{
		{
			"missing decorator",
			"class Robot:\n    def run(self):\n        pass\n",
			"a robot class must be preceded by a `teleop` or `autonomous` decorator",
		},
		{
			"unknown decorator",
			"@opmode(\"T\")\nclass Robot:\n    def run(self):\n        pass\n",
			"unknown decorator: `opmode`",
		},
		{
			"two classes",
			"@teleop(\"T\")\nclass A:\n    def run(self):\n        pass\n@teleop(\"U\")\nclass B:\n    def run(self):\n        pass\n",
			"only one robot class is permitted per file",
		},
		{
			"inheritance",
			"@teleop(\"T\")\nclass Robot(LinearOpMode):\n    def run(self):\n        pass\n",
			"inheritance is not supported by the robot dialect",
		},
		{
			"missing self",
			"@teleop(\"T\")\nclass Robot:\n    def run(x):\n        pass\n",
			"the first parameter of a method must be `self`",
		},
		{
			"for loop",
			"@teleop(\"T\")\nclass Robot:\n    def run(self):\n        for x in y:\n            pass\n",
			"`for` is not supported by the robot dialect",
		},
		{
			"bad assignment target",
			"@teleop(\"T\")\nclass Robot:\n    def run(self):\n        f(x) = 1\n",
			"cannot assign to this expression",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serr := parseError(t, tt.src)
			assert.Equal(t, tt.wantMsg, serr.Message)
		})
	}
}
