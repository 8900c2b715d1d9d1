package syntax

import "ftcc/ast"

// expr := and_expr {'or' and_expr} ;
func (p *Parser) parseExpr() ast.Expr {
	expr := p.parseAndExpr()

	for p.has(TOK_OR) {
		p.next()
		rhs := p.parseAndExpr()
		expr = binaryOp("or", expr, rhs)
	}

	return expr
}

// and_expr := not_expr {'and' not_expr} ;
func (p *Parser) parseAndExpr() ast.Expr {
	expr := p.parseNotExpr()

	for p.has(TOK_AND) {
		p.next()
		rhs := p.parseNotExpr()
		expr = binaryOp("and", expr, rhs)
	}

	return expr
}

// not_expr := 'not' not_expr | comparison ;
func (p *Parser) parseNotExpr() ast.Expr {
	if p.has(TOK_NOT) {
		startTok := p.tok
		p.next()

		operand := p.parseNotExpr()
		return &ast.UnaryOp{
			NodeBase: ast.NewNodeBaseOver(startTok.Span, operand.Span()),
			Op:       "not",
			Operand:  operand,
		}
	}

	return p.parseComparison()
}

// comparisonOps maps comparison token kinds to their dialect spellings.
var comparisonOps = map[int]string{
	TOK_EQ:   "==",
	TOK_NEQ:  "!=",
	TOK_LT:   "<",
	TOK_LTEQ: "<=",
	TOK_GT:   ">",
	TOK_GTEQ: ">=",
}

// comparison := additive [comp_op additive] ;
func (p *Parser) parseComparison() ast.Expr {
	expr := p.parseAdditive()

	if op, ok := comparisonOps[p.tok.Kind]; ok {
		p.next()
		rhs := p.parseAdditive()
		expr = binaryOp(op, expr, rhs)
	}

	return expr
}

// additive := multiplicative {('+' | '-') multiplicative} ;
func (p *Parser) parseAdditive() ast.Expr {
	expr := p.parseMultiplicative()

	for p.has(TOK_PLUS) || p.has(TOK_MINUS) {
		op := p.tok.Value
		p.next()

		rhs := p.parseMultiplicative()
		expr = binaryOp(op, expr, rhs)
	}

	return expr
}

// multiplicative := unary {('*' | '/') unary} ;
func (p *Parser) parseMultiplicative() ast.Expr {
	expr := p.parseUnary()

	for p.has(TOK_STAR) || p.has(TOK_DIV) {
		op := p.tok.Value
		p.next()

		rhs := p.parseUnary()
		expr = binaryOp(op, expr, rhs)
	}

	return expr
}

// unary := '-' unary | postfix ;
func (p *Parser) parseUnary() ast.Expr {
	if p.has(TOK_MINUS) {
		startTok := p.tok
		p.next()

		operand := p.parseUnary()
		return &ast.UnaryOp{
			NodeBase: ast.NewNodeBaseOver(startTok.Span, operand.Span()),
			Op:       "-",
			Operand:  operand,
		}
	}

	return p.parsePostfix()
}

// postfix := atom {'.' IDENT | '(' [expr {',' expr}] ')'} ;
func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parseAtom()

	for {
		switch p.tok.Kind {
		case TOK_DOT:
			p.next()
			attrTok := p.want(TOK_IDENT)

			expr = &ast.AttrAccess{
				NodeBase: ast.NewNodeBaseOver(expr.Span(), attrTok.Span),
				Base:     expr,
				Attr:     attrTok.Value,
				AttrSpan: attrTok.Span,
			}
		case TOK_LPAREN:
			p.next()

			var args []ast.Expr
			if !p.has(TOK_RPAREN) {
				args = append(args, p.parseExpr())
				for p.has(TOK_COMMA) {
					p.next()
					args = append(args, p.parseExpr())
				}
			}

			endTok := p.want(TOK_RPAREN)
			expr = &ast.Call{
				NodeBase: ast.NewNodeBaseOver(expr.Span(), endTok.Span),
				Func:     expr,
				Args:     args,
			}
		default:
			return expr
		}
	}
}

// atom := NUMLIT | STRINGLIT | 'True' | 'False' | IDENT | '(' expr ')' ;
func (p *Parser) parseAtom() ast.Expr {
	switch p.tok.Kind {
	case TOK_NUMLIT:
		tok := p.tok
		p.next()
		return &ast.Literal{
			NodeBase: ast.NewNodeBaseOn(tok.Span),
			Kind:     ast.LitNumber,
			Value:    tok.Value,
		}
	case TOK_STRINGLIT:
		tok := p.tok
		p.next()
		return &ast.Literal{
			NodeBase: ast.NewNodeBaseOn(tok.Span),
			Kind:     ast.LitString,
			Value:    tok.Value,
		}
	case TOK_TRUE, TOK_FALSE:
		tok := p.tok
		p.next()
		return &ast.Literal{
			NodeBase: ast.NewNodeBaseOn(tok.Span),
			Kind:     ast.LitBool,
			Value:    tok.Value,
		}
	case TOK_IDENT:
		if _, ok := reservedWords[p.tok.Value]; ok {
			p.rejectWithMsg("`%s` is not supported by the robot dialect", p.tok.Value)
		}

		tok := p.tok
		p.next()
		return &ast.Identifier{
			NodeBase: ast.NewNodeBaseOn(tok.Span),
			Name:     tok.Value,
		}
	case TOK_LPAREN:
		p.next()
		expr := p.parseExpr()
		p.want(TOK_RPAREN)
		return expr
	default:
		p.reject()
		return nil // unreachable
	}
}

// binaryOp builds a binary operator node spanning its operands.
func binaryOp(op string, lhs, rhs ast.Expr) *ast.BinaryOp {
	return &ast.BinaryOp{
		NodeBase: ast.NewNodeBaseOver(lhs.Span(), rhs.Span()),
		Op:       op,
		Lhs:      lhs,
		Rhs:      rhs,
	}
}
