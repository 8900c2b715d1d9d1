package syntax

import (
	"ftcc/ast"
	"ftcc/report"
)

// file := {NEWLINE} decorator class_def {NEWLINE} EOF ;
func (p *Parser) parseFile() *ast.ClassDef {
	p.newlines()

	opmode := p.parseDecorator()
	class := p.parseClassDef(opmode)

	p.newlines()
	if !p.has(TOK_EOF) {
		if p.has(TOK_ATSIGN) || p.has(TOK_CLASS) {
			p.rejectWithMsg("only one robot class is permitted per file")
		}

		p.reject()
	}

	return class
}

// decorator := '@' ('teleop' | 'autonomous') '(' [STRINGLIT [',' STRINGLIT]] ')' NEWLINE ;
func (p *Parser) parseDecorator() *ast.OpModeDecl {
	if !p.has(TOK_ATSIGN) {
		p.rejectWithMsg("a robot class must be preceded by a `teleop` or `autonomous` decorator")
	}

	startSpan := p.tok.Span
	p.next()

	nameTok := p.want(TOK_IDENT)

	var kind ast.OpModeKind
	switch nameTok.Value {
	case "teleop":
		kind = ast.OpModeTeleOp
	case "autonomous":
		kind = ast.OpModeAutonomous
	default:
		panic(report.Raise(nameTok.Span, "unknown decorator: `%s`", nameTok.Value))
	}

	p.want(TOK_LPAREN)

	var displayName, group string
	if p.has(TOK_STRINGLIT) {
		displayName = p.tok.Value
		p.next()

		if p.has(TOK_COMMA) {
			p.next()
			group = p.want(TOK_STRINGLIT).Value
		}
	}

	endTok := p.want(TOK_RPAREN)
	p.want(TOK_NEWLINE)

	return &ast.OpModeDecl{
		Kind:        kind,
		DisplayName: displayName,
		Group:       group,
		Span:        report.NewSpanOver(startSpan, endTok.Span),
	}
}

// class_def := 'class' IDENT ':' NEWLINE INDENT {method_def} DEDENT ;
func (p *Parser) parseClassDef(opmode *ast.OpModeDecl) *ast.ClassDef {
	startTok := p.want(TOK_CLASS)
	nameTok := p.want(TOK_IDENT)

	if p.has(TOK_LPAREN) {
		p.rejectWithMsg("inheritance is not supported by the robot dialect")
	}

	p.want(TOK_COLON)
	p.want(TOK_NEWLINE)
	p.want(TOK_INDENT)

	var methods []*ast.MethodDef
	for !p.has(TOK_DEDENT) {
		if p.has(TOK_NEWLINE) {
			p.next()
			continue
		}

		methods = append(methods, p.parseMethodDef())
	}

	endTok := p.want(TOK_DEDENT)

	// The decorator's display name defaults to the class name.
	if opmode.DisplayName == "" {
		opmode.DisplayName = nameTok.Value
	}

	if opmode.Group == "" {
		opmode.Group = "Linear Opmode"
	}

	return &ast.ClassDef{
		NodeBase: ast.NewNodeBaseOver(startTok.Span, endTok.Span),
		Name:     nameTok.Value,
		OpMode:   opmode,
		Methods:  methods,
	}
}

// method_def := 'def' IDENT '(' 'self' {',' IDENT} ')' ':' block ;
func (p *Parser) parseMethodDef() *ast.MethodDef {
	startTok := p.want(TOK_DEF)
	nameTok := p.want(TOK_IDENT)

	p.want(TOK_LPAREN)

	selfTok := p.want(TOK_IDENT)
	if selfTok.Value != "self" {
		panic(report.Raise(selfTok.Span, "the first parameter of a method must be `self`"))
	}

	var params []string
	for p.has(TOK_COMMA) {
		p.next()
		params = append(params, p.want(TOK_IDENT).Value)
	}

	p.want(TOK_RPAREN)
	p.want(TOK_COLON)

	body := p.parseBlock()

	return &ast.MethodDef{
		NodeBase: ast.NewNodeBaseOver(startTok.Span, p.lookbehind.Span),
		Name:     nameTok.Value,
		NameSpan: nameTok.Span,
		Params:   params,
		Body:     body,
	}
}

// block := NEWLINE INDENT stmt {stmt} DEDENT ;
func (p *Parser) parseBlock() []ast.Stmt {
	p.want(TOK_NEWLINE)
	p.want(TOK_INDENT)

	var stmts []ast.Stmt
	for !p.has(TOK_DEDENT) {
		if p.has(TOK_NEWLINE) {
			p.next()
			continue
		}

		stmts = append(stmts, p.parseStmt())
	}

	p.want(TOK_DEDENT)
	return stmts
}
