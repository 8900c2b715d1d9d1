package syntax

import (
	"ftcc/ast"
	"ftcc/report"
)

// stmt := if_stmt | while_loop | return_stmt | pass_stmt | assign_or_expr_stmt ;
func (p *Parser) parseStmt() ast.Stmt {
	switch p.tok.Kind {
	case TOK_IF:
		return p.parseIfStmt()
	case TOK_WHILE:
		return p.parseWhileLoop()
	case TOK_RETURN:
		return p.parseReturnStmt()
	case TOK_PASS:
		passTok := p.want(TOK_PASS)
		p.want(TOK_NEWLINE)
		return &ast.PassStmt{NodeBase: ast.NewNodeBaseOn(passTok.Span)}
	case TOK_IDENT:
		if _, ok := reservedWords[p.tok.Value]; ok {
			p.rejectWithMsg("`%s` is not supported by the robot dialect", p.tok.Value)
		}
	}

	return p.parseAssignOrExprStmt()
}

// if_stmt := 'if' expr ':' block {'elif' expr ':' block} ['else' ':' block] ;
func (p *Parser) parseIfStmt() *ast.IfStmt {
	startTok := p.want(TOK_IF)

	cond := p.parseExpr()
	p.want(TOK_COLON)
	branches := []ast.CondBranch{{Cond: cond, Body: p.parseBlock()}}

	for p.has(TOK_ELIF) {
		p.next()

		cond = p.parseExpr()
		p.want(TOK_COLON)
		branches = append(branches, ast.CondBranch{Cond: cond, Body: p.parseBlock()})
	}

	var elseBody []ast.Stmt
	if p.has(TOK_ELSE) {
		p.next()
		p.want(TOK_COLON)
		elseBody = p.parseBlock()
	}

	return &ast.IfStmt{
		NodeBase: ast.NewNodeBaseOver(startTok.Span, p.lookbehind.Span),
		Branches: branches,
		Else:     elseBody,
	}
}

// while_loop := 'while' expr ':' block ;
func (p *Parser) parseWhileLoop() *ast.WhileLoop {
	startTok := p.want(TOK_WHILE)

	cond := p.parseExpr()
	p.want(TOK_COLON)
	body := p.parseBlock()

	return &ast.WhileLoop{
		NodeBase: ast.NewNodeBaseOver(startTok.Span, p.lookbehind.Span),
		Cond:     cond,
		Body:     body,
	}
}

// return_stmt := 'return' [expr] NEWLINE ;
func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	startTok := p.want(TOK_RETURN)

	var value ast.Expr
	if !p.has(TOK_NEWLINE) {
		value = p.parseExpr()
	}

	p.want(TOK_NEWLINE)

	return &ast.ReturnStmt{
		NodeBase: ast.NewNodeBaseOver(startTok.Span, p.lookbehind.Span),
		Value:    value,
	}
}

// assign_or_expr_stmt := expr ['=' expr] NEWLINE ;
func (p *Parser) parseAssignOrExprStmt() ast.Stmt {
	expr := p.parseExpr()

	if p.has(TOK_ASSIGN) {
		if !isAssignable(expr) {
			panic(report.Raise(expr.Span(), "cannot assign to this expression"))
		}

		p.next()
		value := p.parseExpr()
		p.want(TOK_NEWLINE)

		return &ast.Assignment{
			NodeBase: ast.NewNodeBaseOver(expr.Span(), value.Span()),
			Target:   expr,
			Value:    value,
		}
	}

	p.want(TOK_NEWLINE)
	return &ast.ExprStmt{
		NodeBase: ast.NewNodeBaseOn(expr.Span()),
		Expr:     expr,
	}
}

// isAssignable returns whether the expression is a valid assignment target:
// a bare identifier or an attribute access.
func isAssignable(expr ast.Expr) bool {
	switch expr.(type) {
	case *ast.Identifier, *ast.AttrAccess:
		return true
	}

	return false
}
