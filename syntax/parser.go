package syntax

import (
	"fmt"

	"ftcc/ast"
	"ftcc/report"
)

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse.

// Parser is the parser for a robot source file.  It is a recursive descent
// parser over the indentation-structured token stream: all parsing
// functions assume that they begin with the parser centered on the first
// token of their production and must consume all tokens of their
// production, leaving the parser on the next token.  Errors are raised as
// *report.SourceError panics: the first structural error aborts the whole
// file, so no partial tree is ever handed downstream.
type Parser struct {
	// lexer is the Lexer this parser is using to lex the source text.
	lexer *Lexer

	// tok is the current token the parser is positioned on.
	tok *Token

	// lookbehind is the token the parser was previously positioned on.
	lookbehind *Token
}

// NewParser creates a new parser for the given source text.
func NewParser(src string) *Parser {
	return &Parser{lexer: NewLexer(src)}
}

// Parse parses a source file into its robot class definition.  It panics
// with a *report.SourceError if the text does not conform to the dialect;
// callers must guard with report.Catch.
func (p *Parser) Parse() *ast.ClassDef {
	p.next()
	return p.parseFile()
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.
func (p *Parser) next() {
	p.lookbehind = p.tok
	p.tok = p.lexer.NextToken()
}

// has returns whether the parser is on a token of the given kind.
func (p *Parser) has(kind int) bool {
	return p.tok.Kind == kind
}

// want asserts that the parser is on a token of the given kind, rejecting
// the token if not.  It consumes the matched token and returns it.
func (p *Parser) want(kind int) *Token {
	if !p.has(kind) {
		p.reject()
	}

	tok := p.tok
	p.next()
	return tok
}

// newlines moves the parser forward until a non-newline token is
// encountered.
func (p *Parser) newlines() {
	for p.has(TOK_NEWLINE) {
		p.next()
	}
}

// -----------------------------------------------------------------------------

// reject raises an unexpected token error on the current token.
func (p *Parser) reject() {
	var msg string
	switch p.tok.Kind {
	case TOK_NEWLINE:
		msg = "unexpected newline"
	case TOK_INDENT:
		msg = "unexpected indent"
	case TOK_DEDENT:
		msg = "unexpected dedent"
	case TOK_EOF:
		msg = "unexpected end of file"
	default:
		msg = fmt.Sprintf("unexpected token: `%s`", p.tok.Value)
	}

	panic(report.Raise(p.tok.Span, "%s", msg))
}

// rejectWithMsg raises an error on the current token with a specific
// message.
func (p *Parser) rejectWithMsg(msg string, args ...interface{}) {
	panic(report.Raise(p.tok.Span, msg, args...))
}
