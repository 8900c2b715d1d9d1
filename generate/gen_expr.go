package generate

import (
	"strings"

	"ftcc/ast"
	"ftcc/ftcapi"
	"ftcc/report"
	"ftcc/walk"
)

// unsupported marks a parseable construct with no mapping table entry.
// The statement translator converts it into a comment plus one warning.
type unsupported struct {
	span *report.TextSpan
	msg  string
}

// genExpr translates one expression node into its Java equivalent.  The
// translation is table driven and deterministic; it never fails on a
// structurally valid node, instead returning an unsupported marker for
// constructs outside the mapping tables.
func (g *Generator) genExpr(expr ast.Expr) (string, *unsupported) {
	switch v := expr.(type) {
	case *ast.Literal:
		return genLiteral(v), nil
	case *ast.Identifier:
		if v.Name == "self" {
			return "this", nil
		}

		return v.Name, nil
	case *ast.AttrAccess:
		return g.genAttrAccess(v)
	case *ast.Call:
		return g.genCall(v)
	case *ast.BinaryOp:
		return g.genBinaryOp(v)
	case *ast.UnaryOp:
		return g.genUnaryOp(v)
	}

	return "", &unsupported{span: expr.Span(), msg: "untranslatable expression"}
}

// genLiteral translates a literal.  Boolean literals lower-case; numbers
// and strings pass through.
func genLiteral(lit *ast.Literal) string {
	switch lit.Kind {
	case ast.LitString:
		return `"` + lit.Value + `"`
	case ast.LitBool:
		return strings.ToLower(lit.Value)
	}

	return lit.Value
}

// genAttrAccess translates an attribute access.  `self.x` resolves to the
// bare member name, gamepad attributes go through the alias table, and any
// other base passes through unchanged.  A non-call member access on a known
// hardware variable is unsupported: hardware components expose operations,
// not fields.
func (g *Generator) genAttrAccess(attr *ast.AttrAccess) (string, *unsupported) {
	if isSelf(attr.Base) {
		return attr.Attr, nil
	}

	if id, ok := attr.Base.(*ast.Identifier); ok && ftcapi.IsGamepad(id.Name) {
		return id.Name + "." + ftcapi.GamepadField(attr.Attr), nil
	}

	if sym, ok := g.resolveHardware(attr.Base); ok && sym.Kind != ftcapi.KindOpaque {
		return "", &unsupported{
			span: attr.AttrSpan,
			msg:  "`" + attr.Attr + "` is not a recognized operation for " + sym.Kind.String() + " components",
		}
	}

	base, uns := g.genExpr(attr.Base)
	if uns != nil {
		return "", uns
	}

	return base + "." + attr.Attr, nil
}

// genCall translates a call expression: hardware actions through the action
// tables, builtins through the builtin table, and anything else as a
// pass-through.
func (g *Generator) genCall(call *ast.Call) (string, *unsupported) {
	if attr, ok := call.Func.(*ast.AttrAccess); ok {
		// Operations on declared hardware components.
		if sym, ok := g.resolveHardware(attr.Base); ok {
			return g.genHardwareCall(call, attr, sym)
		}

		// Gamepad members are input fields, never callable.
		if id, ok := attr.Base.(*ast.Identifier); ok && ftcapi.IsGamepad(id.Name) {
			return "", &unsupported{
				span: attr.AttrSpan,
				msg:  "gamepad attribute `" + attr.Attr + "` cannot be called",
			}
		}

		// `self.helper(...)` becomes a plain method call.
		if isSelf(attr.Base) {
			args, uns := g.genArgs(call.Args)
			if uns != nil {
				return "", uns
			}

			return attr.Attr + "(" + args + ")", nil
		}
	}

	if id, ok := call.Func.(*ast.Identifier); ok {
		return g.genBuiltinCall(call, id)
	}

	// Pass-through: the callee base is not a known hardware variable.
	callee, uns := g.genExpr(call.Func)
	if uns != nil {
		return "", uns
	}

	args, uns := g.genArgs(call.Args)
	if uns != nil {
		return "", uns
	}

	return callee + "(" + args + ")", nil
}

// genHardwareCall translates an operation call on a declared hardware
// component using its kind's action table.
func (g *Generator) genHardwareCall(call *ast.Call, attr *ast.AttrAccess, sym *walk.HardwareSymbol) (string, *unsupported) {
	// Opaque components get a best-effort camel-cased call; the
	// declaration itself already produced a warning.
	if sym.Kind == ftcapi.KindOpaque {
		args, uns := g.genArgs(call.Args)
		if uns != nil {
			return "", uns
		}

		return sym.Name + "." + camelCase(attr.Attr) + "(" + args + ")", nil
	}

	// Motor run modes translate their literal through the mode table.
	if sym.Kind == ftcapi.KindMotor && attr.Attr == "set_mode" {
		return g.genSetMode(call, sym)
	}

	action, ok := ftcapi.LookupAction(sym.Kind, attr.Attr)
	if !ok {
		return "", &unsupported{
			span: attr.AttrSpan,
			msg:  "`" + attr.Attr + "` is not a recognized operation for " + sym.Kind.String() + " components",
		}
	}

	g.addImport(action.Import)

	args, uns := g.genArgList(call.Args)
	if uns != nil {
		return "", uns
	}

	args = append(args, action.ExtraArgs...)
	return sym.Name + "." + action.JavaName + "(" + strings.Join(args, ", ") + ")", nil
}

// genSetMode translates `set_mode("<literal>")`.  Only the four recognized
// run mode literals map to enumerants; anything else is unsupported.
func (g *Generator) genSetMode(call *ast.Call, sym *walk.HardwareSymbol) (string, *unsupported) {
	if len(call.Args) == 1 {
		if lit, ok := call.Args[0].(*ast.Literal); ok && lit.Kind == ast.LitString {
			if mode, ok := ftcapi.MotorModes[lit.Value]; ok {
				return sym.Name + ".setMode(" + mode + ")", nil
			}

			return "", &unsupported{
				span: lit.Span(),
				msg:  "unrecognized run mode literal: `" + lit.Value + "`",
			}
		}
	}

	return "", &unsupported{
		span: call.Span(),
		msg:  "set_mode expects a single run mode string literal",
	}
}

// genBuiltinCall translates a global call: the telemetry builtin, the fixed
// builtin table, or a pass-through for unknown names.
func (g *Generator) genBuiltinCall(call *ast.Call, id *ast.Identifier) (string, *unsupported) {
	if id.Name == ftcapi.TelemetryAdd {
		if len(call.Args) != 2 {
			return "", &unsupported{
				span: call.Span(),
				msg:  "telemetry_add expects a key and a value",
			}
		}

		args, uns := g.genArgs(call.Args)
		if uns != nil {
			return "", uns
		}

		return "telemetry.addData(" + args + ")", nil
	}

	name := id.Name
	if java, ok := ftcapi.Builtins[id.Name]; ok {
		name = java
	}

	args, uns := g.genArgs(call.Args)
	if uns != nil {
		return "", uns
	}

	return name + "(" + args + ")", nil
}

// genArgList translates a call argument list into Java argument texts.
func (g *Generator) genArgList(args []ast.Expr) ([]string, *unsupported) {
	texts := make([]string, len(args))
	for i, arg := range args {
		text, uns := g.genExpr(arg)
		if uns != nil {
			return nil, uns
		}

		texts[i] = text
	}

	return texts, nil
}

// genArgs translates a call argument list into comma separated Java text.
func (g *Generator) genArgs(args []ast.Expr) (string, *unsupported) {
	texts, uns := g.genArgList(args)
	if uns != nil {
		return "", uns
	}

	return strings.Join(texts, ", "), nil
}

// -----------------------------------------------------------------------------

// javaBinaryOps maps dialect operator spellings to Java spellings where
// they differ.
var javaBinaryOps = map[string]string{
	"and": "&&",
	"or":  "||",
}

// binaryPrec orders binary operators from loosest to tightest binding.
var binaryPrec = map[string]int{
	"or":  1,
	"and": 2,
	"==":  3, "!=": 3, "<": 3, "<=": 3, ">": 3, ">=": 3,
	"+": 4, "-": 4,
	"*": 5, "/": 5,
}

// genBinaryOp translates a binary operator application, parenthesizing
// operands whose operators bind more loosely than the parent.
func (g *Generator) genBinaryOp(bo *ast.BinaryOp) (string, *unsupported) {
	prec := binaryPrec[bo.Op]

	lhs, uns := g.genOperand(bo.Lhs, prec, false)
	if uns != nil {
		return "", uns
	}

	rhs, uns := g.genOperand(bo.Rhs, prec, true)
	if uns != nil {
		return "", uns
	}

	op := bo.Op
	if java, ok := javaBinaryOps[op]; ok {
		op = java
	}

	return lhs + " " + op + " " + rhs, nil
}

// genOperand translates one operand of a binary operator, wrapping it in
// parentheses when required to preserve the source grouping.
func (g *Generator) genOperand(expr ast.Expr, parentPrec int, rightSide bool) (string, *unsupported) {
	text, uns := g.genExpr(expr)
	if uns != nil {
		return "", uns
	}

	child, ok := expr.(*ast.BinaryOp)
	if !ok {
		return text, nil
	}

	childPrec := binaryPrec[child.Op]
	if childPrec < parentPrec || (childPrec == parentPrec && rightSide) {
		return "(" + text + ")", nil
	}

	return text, nil
}

// genUnaryOp translates negation and `not`.
func (g *Generator) genUnaryOp(uo *ast.UnaryOp) (string, *unsupported) {
	operand, uns := g.genExpr(uo.Operand)
	if uns != nil {
		return "", uns
	}

	if _, ok := uo.Operand.(*ast.BinaryOp); ok {
		operand = "(" + operand + ")"
	}

	if uo.Op == "not" {
		return "!" + operand, nil
	}

	return "-" + operand, nil
}

// -----------------------------------------------------------------------------

// isTelemetryAdd reports whether a call queues a telemetry entry.
func isTelemetryAdd(call *ast.Call) bool {
	id, ok := call.Func.(*ast.Identifier)
	return ok && id.Name == ftcapi.TelemetryAdd
}

// resolveHardware resolves an expression of the form `self.X` against the
// hardware symbol table.
func (g *Generator) resolveHardware(expr ast.Expr) (*walk.HardwareSymbol, bool) {
	attr, ok := expr.(*ast.AttrAccess)
	if !ok || !isSelf(attr.Base) {
		return nil, false
	}

	return g.table.Lookup(attr.Attr)
}

// camelCase converts a snake_case dialect name to its Java camelCase form.
func camelCase(name string) string {
	parts := strings.Split(name, "_")

	var sb strings.Builder
	sb.WriteString(parts[0])
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}

		sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}

	return sb.String()
}
