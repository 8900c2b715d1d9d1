// Package generate converts a parsed robot class and its hardware symbol
// table into one complete Java compilation unit for the FTC runtime.
package generate

import (
	"fmt"
	"strings"

	"ftcc/ast"
	"ftcc/ftcapi"
	"ftcc/report"
	"ftcc/walk"
)

// Generator is responsible for emitting the Java translation of one robot
// class.  Generators are created once per class and are not reused.
type Generator struct {
	// class is the robot class being translated.
	class *ast.ClassDef

	// table is the completed hardware symbol table of the class.
	table *walk.SymbolTable

	// rep receives the diagnostics produced during translation.
	rep *report.Reporter

	// body accumulates the class body text.
	body strings.Builder

	// indentLevel is the current indentation depth in the class body.
	indentLevel int

	// imports is the set of Java imports implied by the translation so
	// far.  It is resolved into a sorted import block during assembly.
	imports map[string]struct{}

	// locals is the set of local variables declared so far in the method
	// currently being translated.
	locals map[string]struct{}
}

// NewGenerator creates a generator for the given class and symbol table.
func NewGenerator(class *ast.ClassDef, table *walk.SymbolTable, rep *report.Reporter) *Generator {
	return &Generator{
		class:   class,
		table:   table,
		rep:     rep,
		imports: make(map[string]struct{}),
	}
}

// Generate emits the complete Java compilation unit.  Output is
// deterministic: identical input always yields byte-identical output.
func (g *Generator) Generate() string {
	g.indentLevel = 1

	g.addImport(ftcapi.ImportLinearOpMode)
	if g.class.OpMode.Kind == ast.OpModeAutonomous {
		g.addImport(ftcapi.ImportAutonomous)
	} else {
		g.addImport(ftcapi.ImportTeleOp)
	}

	// The class body is generated before the header so the import block
	// reflects every action translation actually performed.
	g.genFields()
	g.genInitHardware()
	g.genRunOpMode()
	g.genUserMethods()

	var unit strings.Builder
	for _, path := range ftcapi.SortImports(g.imports) {
		unit.WriteString("import " + path + ";\n")
	}

	unit.WriteString("\n")
	unit.WriteString(fmt.Sprintf("@%s(name=%q, group=%q)\n",
		g.class.OpMode.Kind.Annotation(), g.class.OpMode.DisplayName, g.class.OpMode.Group))
	unit.WriteString(fmt.Sprintf("public class %s extends LinearOpMode {\n", g.class.Name))
	unit.WriteString(g.body.String())
	unit.WriteString("}\n")

	return unit.String()
}

// -----------------------------------------------------------------------------

// genFields emits one private field per declared hardware component, in
// declaration order.
func (g *Generator) genFields() {
	if g.table.Len() == 0 {
		return
	}

	g.writeLine("// Hardware components")
	for _, sym := range g.table.InOrder() {
		g.addImport(sym.Kind.Import())
		g.writeLine("private %s %s = null;", sym.Kind.JavaType(), sym.Name)
	}

	g.writeBlank()
}

// genInitHardware emits the hardware initialization routine: in declaration
// order, each hardware field is resolved from its configuration name (or
// built through its vision builder) and its direction applied, followed by
// the translation of the remaining `init_hardware` statements.
func (g *Generator) genInitHardware() {
	g.writeLine("private void initHardware() {")
	g.indentLevel++

	for _, sym := range g.table.InOrder() {
		g.genHardwareInit(sym)
	}

	if method := g.findMethod(walk.InitHardwareName); method != nil {
		g.locals = make(map[string]struct{})

		for _, stmt := range method.Body {
			if isHardwareDecl(stmt) {
				continue
			}

			g.genStmt(stmt)
		}
	}

	g.indentLevel--
	g.writeLine("}")
	g.writeBlank()
}

// genHardwareInit emits the initialization lines for one hardware symbol.
func (g *Generator) genHardwareInit(sym *walk.HardwareSymbol) {
	switch {
	case sym.Kind.ResolvedFromConfig():
		g.writeLine("%s = hardwareMap.get(%s.class, %q);", sym.Name, sym.Kind.JavaType(), sym.ConfigName)

		if sym.Direction != "" {
			if dir, ok := ftcapi.MotorDirections[sym.Direction]; ok {
				g.writeLine("%s.setDirection(%s);", sym.Name, dir)
			} else {
				g.rep.Warnf(report.KindUnsupported, sym.DefSpan,
					"unrecognized motor direction: `%s`", sym.Direction)
				g.writeLine("// UNSUPPORTED: %s", sym.Decl)
			}
		}
	case sym.Kind == ftcapi.KindAprilTag || sym.Kind == ftcapi.KindTensorFlow:
		g.writeLine("%s = %s.easyCreateWithDefaults();", sym.Name, sym.Kind.JavaType())
	case sym.Kind == ftcapi.KindVisionPortal:
		args := make([]string, len(sym.CtorArgs))
		for i, arg := range sym.CtorArgs {
			text, uns := g.genExpr(arg)
			if uns != nil {
				g.rep.Warnf(report.KindUnsupported, uns.span, "%s", uns.msg)
				g.writeLine("// UNSUPPORTED: %s", sym.Decl)
				return
			}

			args[i] = text
		}

		g.writeLine("%s = VisionPortal.easyCreateWithDefaults(%s);", sym.Name, strings.Join(args, ", "))
	default:
		// Opaque declaration: the original text is kept as a marker.
		g.writeLine("// UNSUPPORTED: %s", sym.Decl)
	}
}

// genRunOpMode emits the entry routine: hardware initialization, readiness
// telemetry, waiting for the external start signal, and the translated
// `run` body.  When `run` is absent an empty body is synthesized and a
// warning recorded.
func (g *Generator) genRunOpMode() {
	g.writeLine("@Override")
	g.writeLine("public void runOpMode() {")
	g.indentLevel++

	g.writeLine("initHardware();")
	g.writeBlank()
	g.writeLine(`telemetry.addData("Status", "Initialized");`)
	g.writeLine("telemetry.update();")
	g.writeBlank()
	g.writeLine("waitForStart();")

	if method := g.findMethod("run"); method != nil {
		g.writeBlank()
		g.genMethodBody(method)
	} else {
		g.rep.Warnf(report.KindMissingMethod, g.class.Span(),
			"class `%s` has no `run` method; an empty one was synthesized", g.class.Name)
	}

	g.indentLevel--
	g.writeLine("}")
}

// genUserMethods emits every method that is not a recognized role as a
// private routine, in source order.
func (g *Generator) genUserMethods() {
	for _, method := range g.class.Methods {
		if method.Name == walk.InitHardwareName || method.Name == "run" {
			continue
		}

		g.writeBlank()

		params := make([]string, len(method.Params))
		for i, param := range method.Params {
			params[i] = "double " + param
		}

		g.writeLine("private %s %s(%s) {", g.returnType(method), method.Name, strings.Join(params, ", "))
		g.indentLevel++
		g.genMethodBody(method)
		g.indentLevel--
		g.writeLine("}")
	}
}

// genMethodBody translates a method body, declaring its parameters as
// locals and appending the single telemetry flush if the body queued any
// telemetry entries.
func (g *Generator) genMethodBody(method *ast.MethodDef) {
	g.locals = make(map[string]struct{})
	for _, param := range method.Params {
		g.locals[param] = struct{}{}
	}

	if adds := g.genBlock(method.Body); adds > 0 {
		g.writeLine("telemetry.update();")
	}
}

// returnType infers the Java return type of a user method: double if any
// return statement carries a value, void otherwise.  Mixing bare and value
// returns is flagged since the dialect leaves those semantics undefined.
func (g *Generator) returnType(method *ast.MethodDef) string {
	bare, valued := countReturns(method.Body)

	if valued > 0 {
		if bare > 0 {
			g.rep.Warnf(report.KindUnsupported, method.NameSpan,
				"method `%s` mixes bare and value returns", method.Name)
		}

		return "double"
	}

	return "void"
}

// countReturns tallies the bare and value-carrying return statements of a
// statement list, recursively.
func countReturns(stmts []ast.Stmt) (bare, valued int) {
	for _, stmt := range stmts {
		switch v := stmt.(type) {
		case *ast.ReturnStmt:
			if v.Value == nil {
				bare++
			} else {
				valued++
			}
		case *ast.IfStmt:
			for _, branch := range v.Branches {
				b, n := countReturns(branch.Body)
				bare, valued = bare+b, valued+n
			}

			b, n := countReturns(v.Else)
			bare, valued = bare+b, valued+n
		case *ast.WhileLoop:
			b, n := countReturns(v.Body)
			bare, valued = bare+b, valued+n
		}
	}

	return bare, valued
}

// -----------------------------------------------------------------------------

// findMethod returns the class method with the given name, or nil.
func (g *Generator) findMethod(name string) *ast.MethodDef {
	for _, method := range g.class.Methods {
		if method.Name == name {
			return method
		}
	}

	return nil
}

// isHardwareDecl returns whether the statement is a hardware declaration of
// the form `self.X = constructor(args)`.  Declarations are emitted from the
// symbol table, not by the statement translator.
func isHardwareDecl(stmt ast.Stmt) bool {
	assign, ok := stmt.(*ast.Assignment)
	if !ok {
		return false
	}

	attr, ok := assign.Target.(*ast.AttrAccess)
	if !ok || !isSelf(attr.Base) {
		return false
	}

	call, ok := assign.Value.(*ast.Call)
	if !ok {
		return false
	}

	_, ok = call.Func.(*ast.Identifier)
	return ok
}

// isSelf returns whether the expression is the bare identifier `self`.
func isSelf(expr ast.Expr) bool {
	id, ok := expr.(*ast.Identifier)
	return ok && id.Name == "self"
}

// addImport records an implied Java import.  The empty string is ignored.
func (g *Generator) addImport(path string) {
	if path != "" {
		g.imports[path] = struct{}{}
	}
}

// writeLine writes one indented line of class body text.
func (g *Generator) writeLine(format string, args ...interface{}) {
	g.body.WriteString(strings.Repeat("    ", g.indentLevel))
	if len(args) == 0 {
		g.body.WriteString(format)
	} else {
		g.body.WriteString(fmt.Sprintf(format, args...))
	}

	g.body.WriteString("\n")
}

// writeBlank writes one empty line of class body text.
func (g *Generator) writeBlank() {
	g.body.WriteString("\n")
}
