package generate

import (
	"ftcc/ast"
	"ftcc/report"
)

// genBlock translates a statement list at the current indentation level.
// It returns the number of telemetry entries queued directly by the block,
// including entries queued inside if-chains but excluding while-loop bodies
// (those receive their own trailing flush).
func (g *Generator) genBlock(stmts []ast.Stmt) int {
	adds := 0
	for _, stmt := range stmts {
		adds += g.genStmt(stmt)
	}

	return adds
}

// genStmt translates one statement, returning the number of telemetry
// entries it queued.  Statements containing unsupported constructs degrade
// to a comment carrying the original source text plus one warning; the
// translator never aborts on a structurally valid node.
func (g *Generator) genStmt(stmt ast.Stmt) int {
	switch v := stmt.(type) {
	case *ast.Assignment:
		g.genAssignment(v)
	case *ast.IfStmt:
		return g.genIfStmt(v)
	case *ast.WhileLoop:
		g.genWhileLoop(v)
	case *ast.ExprStmt:
		return g.genExprStmt(v)
	case *ast.ReturnStmt:
		g.genReturnStmt(v)
	case *ast.PassStmt:
		// No-op: nothing is emitted.
	}

	return 0
}

// genAssignment translates an assignment to a field, a local variable, or
// a pass-through attribute target.  The first assignment to a local
// declares it with an inferred type; later assignments re-assign.
func (g *Generator) genAssignment(assign *ast.Assignment) {
	value, uns := g.genExpr(assign.Value)
	if uns != nil {
		g.degrade(assign, uns)
		return
	}

	if id, ok := assign.Target.(*ast.Identifier); ok {
		if _, declared := g.locals[id.Name]; !declared {
			g.locals[id.Name] = struct{}{}
			g.writeLine("%s %s = %s;", inferJavaType(assign.Value), id.Name, value)
			return
		}

		g.writeLine("%s = %s;", id.Name, value)
		return
	}

	target, uns := g.genExpr(assign.Target)
	if uns != nil {
		g.degrade(assign, uns)
		return
	}

	g.writeLine("%s = %s;", target, value)
}

// genIfStmt translates an if/elif/else chain into the equivalent Java
// if/else-if/else chain.
func (g *Generator) genIfStmt(ifs *ast.IfStmt) int {
	// All conditions are translated up front: degrading mid-chain would
	// leave the emitted chain unbalanced.
	conds := make([]string, len(ifs.Branches))
	for i, branch := range ifs.Branches {
		cond, uns := g.genExpr(branch.Cond)
		if uns != nil {
			g.degrade(ifs, uns)
			return 0
		}

		conds[i] = cond
	}

	adds := 0
	for i, branch := range ifs.Branches {
		cond := conds[i]

		if i == 0 {
			g.writeLine("if (%s) {", cond)
		} else {
			g.writeLine("} else if (%s) {", cond)
		}

		g.indentLevel++
		adds += g.genBlock(branch.Body)
		g.indentLevel--
	}

	if ifs.Else != nil {
		g.writeLine("} else {")
		g.indentLevel++
		adds += g.genBlock(ifs.Else)
		g.indentLevel--
	}

	g.writeLine("}")
	return adds
}

// genWhileLoop translates a while loop.  If the loop body queued telemetry
// entries, a single flush is appended at the end of the body so every
// iteration publishes its batch.
func (g *Generator) genWhileLoop(wl *ast.WhileLoop) {
	cond, uns := g.genExpr(wl.Cond)
	if uns != nil {
		g.degrade(wl, uns)
		return
	}

	g.writeLine("while (%s) {", cond)
	g.indentLevel++

	if adds := g.genBlock(wl.Body); adds > 0 {
		g.writeLine("telemetry.update();")
	}

	g.indentLevel--
	g.writeLine("}")
}

// genExprStmt translates a bare expression statement.
func (g *Generator) genExprStmt(es *ast.ExprStmt) int {
	text, uns := g.genExpr(es.Expr)
	if uns != nil {
		g.degrade(es, uns)
		return 0
	}

	g.writeLine("%s;", text)

	if call, ok := es.Expr.(*ast.Call); ok && isTelemetryAdd(call) {
		return 1
	}

	return 0
}

// genReturnStmt translates a return statement; the returned expression
// passes through directly.
func (g *Generator) genReturnStmt(rs *ast.ReturnStmt) {
	if rs.Value == nil {
		g.writeLine("return;")
		return
	}

	value, uns := g.genExpr(rs.Value)
	if uns != nil {
		g.degrade(rs, uns)
		return
	}

	g.writeLine("return %s;", value)
}

// degrade replaces an untranslatable statement with an inert comment
// carrying its original source text and records one warning.  This is the
// file-level forward progress contract: unsupported constructs never stop
// translation.
func (g *Generator) degrade(stmt ast.Stmt, uns *unsupported) {
	g.rep.Warnf(report.KindUnsupported, uns.span, "%s", uns.msg)
	g.writeLine("// UNSUPPORTED: %s", stmt.DialectString())
}

// inferJavaType infers the declared Java type of a local variable from its
// first assigned value: String for string literals, boolean for boolean
// expressions, double otherwise.
func inferJavaType(value ast.Expr) string {
	switch v := value.(type) {
	case *ast.Literal:
		switch v.Kind {
		case ast.LitString:
			return "String"
		case ast.LitBool:
			return "boolean"
		}
	case *ast.BinaryOp:
		switch v.Op {
		case "and", "or", "==", "!=", "<", "<=", ">", ">=":
			return "boolean"
		}
	case *ast.UnaryOp:
		if v.Op == "not" {
			return "boolean"
		}
	}

	return "double"
}
