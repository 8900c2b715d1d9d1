// Package walk builds the hardware symbol table of a robot class by
// scanning the assignments of its `init_hardware` method.
package walk

import (
	"ftcc/ast"
	"ftcc/ftcapi"
	"ftcc/report"
)

// InitHardwareName is the recognized hardware initialization method role.
const InitHardwareName = "init_hardware"

// Walker scans a class definition and produces its hardware symbol table.
type Walker struct {
	// rep receives the diagnostics produced during the scan.
	rep *report.Reporter
}

// NewWalker creates a walker reporting to the given reporter.
func NewWalker(rep *report.Reporter) *Walker {
	return &Walker{rep: rep}
}

// Walk scans the `init_hardware` method of the class, if present, and
// returns the completed symbol table.  Unknown constructor names are kept
// as opaque declarations with a warning so later stages can still emit a
// best-effort field.
func (w *Walker) Walk(class *ast.ClassDef) *SymbolTable {
	table := NewSymbolTable()

	for _, method := range class.Methods {
		if method.Name == InitHardwareName {
			for _, stmt := range method.Body {
				w.walkInitStmt(table, stmt)
			}

			break
		}
	}

	return table
}

// walkInitStmt records the hardware declaration of one `init_hardware`
// statement, if the statement is one.  Statements that are not of the form
// `self.X = <constructor>(args)` declare nothing and are left for the
// statement translator.
func (w *Walker) walkInitStmt(table *SymbolTable, stmt ast.Stmt) {
	assign, ok := stmt.(*ast.Assignment)
	if !ok {
		return
	}

	attr, ok := assign.Target.(*ast.AttrAccess)
	if !ok || !isSelf(attr.Base) {
		return
	}

	call, ok := assign.Value.(*ast.Call)
	if !ok {
		return
	}

	ctor, ok := call.Func.(*ast.Identifier)
	if !ok {
		return
	}

	kind, known := ftcapi.Constructors[ctor.Name]
	if !known {
		w.rep.Warnf(report.KindUnknownHardware, ctor.Span(),
			"unknown hardware constructor: `%s`", ctor.Name)
		kind = ftcapi.KindOpaque
	}

	sym := &HardwareSymbol{
		Name:       attr.Attr,
		Kind:       kind,
		ConfigName: attr.Attr,
		CtorArgs:   call.Args,
		DefSpan:    assign.Span(),
		Decl:       assign.DialectString(),
	}

	if name, ok := stringArg(call.Args, 0); ok {
		sym.ConfigName = name
	}

	if dir, ok := stringArg(call.Args, 1); ok && kind == ftcapi.KindMotor {
		sym.Direction = dir
	}

	if !table.Define(sym) {
		w.rep.Warnf(report.KindUnknownHardware, assign.Span(),
			"hardware component `%s` is declared more than once", attr.Attr)
	}
}

// stringArg extracts the string literal argument at the given index.
func stringArg(args []ast.Expr, index int) (string, bool) {
	if index >= len(args) {
		return "", false
	}

	lit, ok := args[index].(*ast.Literal)
	if !ok || lit.Kind != ast.LitString {
		return "", false
	}

	return lit.Value, true
}

// isSelf returns whether the expression is the bare identifier `self`.
func isSelf(expr ast.Expr) bool {
	id, ok := expr.(*ast.Identifier)
	return ok && id.Name == "self"
}
