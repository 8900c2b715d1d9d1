package syntax

import (
	"strings"
	"unicode"

	"ftcc/report"
)

// Lexer is responsible for tokenizing a source file.  The dialect uses
// significant whitespace, so the lexer maintains an indentation stack and
// synthesizes INDENT and DEDENT tokens at line starts.  Lexical errors are
// raised as *report.SourceError panics and caught at the pipeline boundary.
type Lexer struct {
	src     []rune
	pos     int
	tokBuff *strings.Builder

	line, col           int
	startLine, startCol int

	// indents is the stack of enclosing indentation widths.
	indents []int

	// pending holds synthesized DEDENT tokens awaiting emission.
	pending []*Token

	// atLineStart indicates the lexer is positioned before the indentation
	// of a new logical line.
	atLineStart bool
}

// NewLexer creates a new lexer for the given source text.
func NewLexer(src string) *Lexer {
	return &Lexer{
		src:         []rune(src),
		tokBuff:     &strings.Builder{},
		indents:     []int{0},
		atLineStart: true,
	}
}

// NextToken retrieves the next token from the source text.  If the text has
// ended, this will be an EOF token preceded by a final NEWLINE and any
// outstanding DEDENT tokens.
func (l *Lexer) NextToken() *Token {
	for {
		if len(l.pending) > 0 {
			tok := l.pending[0]
			l.pending = l.pending[1:]
			return tok
		}

		if l.atLineStart {
			if tok := l.lexLineStart(); tok != nil {
				return tok
			}

			continue
		}

		c := l.peek()
		switch c {
		case -1:
			// Close the final logical line before unwinding indentation.
			l.atLineStart = true
			l.mark()
			return l.makeToken(TOK_NEWLINE)
		case '\n':
			l.mark()
			l.skip()
			l.atLineStart = true
			return l.makeToken(TOK_NEWLINE)
		case ' ', '\t', '\r':
			l.skip()
		case '#':
			l.skipComment()
		case '"':
			return l.lexStringLit()
		default:
			if isDecimalDigit(c) {
				return l.lexNumericLit()
			} else if isFirstIdentChar(c) {
				return l.lexIdentOrKeyword()
			} else {
				return l.lexPunctOrOper()
			}
		}
	}
}

// -----------------------------------------------------------------------------

// lexLineStart measures the indentation of the next logical line and emits
// INDENT or DEDENT tokens as the measured width enters or leaves enclosing
// blocks.  Blank and comment-only lines produce no tokens.  A nil return
// means the caller should continue lexing the line body.
func (l *Lexer) lexLineStart() *Token {
	l.mark()

	width := 0
	for {
		switch l.peek() {
		case ' ':
			width++
			l.skip()
			continue
		case '\t':
			width += 4
			l.skip()
			continue
		}

		break
	}

	switch l.peek() {
	case '\n':
		// Blank line: no tokens, stay at line start.
		l.skip()
		return nil
	case '#':
		l.skipComment()
		return nil
	case -1:
		// Unwind any remaining indentation at end of file, then finish.
		l.atLineStart = false
		for len(l.indents) > 1 {
			l.indents = l.indents[:len(l.indents)-1]
			l.pending = append(l.pending, l.makeToken(TOK_DEDENT))
		}

		l.pending = append(l.pending, l.makeToken(TOK_EOF))
		return nil
	}

	l.atLineStart = false

	top := l.indents[len(l.indents)-1]
	if width > top {
		l.indents = append(l.indents, width)
		return l.makeToken(TOK_INDENT)
	}

	for width < top {
		l.indents = l.indents[:len(l.indents)-1]
		l.pending = append(l.pending, l.makeToken(TOK_DEDENT))
		top = l.indents[len(l.indents)-1]
	}

	if width != top {
		panic(report.Raise(l.getSpan(), "inconsistent indentation"))
	}

	if len(l.pending) > 0 {
		tok := l.pending[0]
		l.pending = l.pending[1:]
		return tok
	}

	return nil
}

// skipComment consumes a `#` comment up to but not including the newline.
func (l *Lexer) skipComment() {
	for c := l.peek(); c != '\n' && c != -1; c = l.peek() {
		l.skip()
	}
}

// -----------------------------------------------------------------------------

// lexIdentOrKeyword lexes an identifier or a keyword.
func (l *Lexer) lexIdentOrKeyword() *Token {
	l.mark()
	l.eat()

	for c := l.peek(); isFirstIdentChar(c) || isDecimalDigit(c); c = l.peek() {
		l.eat()
	}

	if kind, ok := keywordPatterns[l.tokBuff.String()]; ok {
		return l.makeToken(kind)
	}

	return l.makeToken(TOK_IDENT)
}

// lexNumericLit lexes an integer or floating point literal.
func (l *Lexer) lexNumericLit() *Token {
	l.mark()
	l.eat()

	sawDot := false
	for {
		c := l.peek()
		if c == '.' && !sawDot && isDecimalDigit(l.peekAt(1)) {
			sawDot = true
			l.eat()
		} else if isDecimalDigit(c) {
			l.eat()
		} else {
			break
		}
	}

	return l.makeToken(TOK_NUMLIT)
}

// lexStringLit lexes a double-quoted string literal.  The token value holds
// the unquoted content with escape sequences preserved verbatim.
func (l *Lexer) lexStringLit() *Token {
	l.mark()
	l.skip()

	for {
		switch l.peek() {
		case -1, '\n':
			panic(report.Raise(l.getSpan(), "unclosed string literal"))
		case '"':
			l.skip()
			return l.makeToken(TOK_STRINGLIT)
		case '\\':
			l.eat()
			if l.peek() == -1 {
				panic(report.Raise(l.getSpan(), "unclosed string literal"))
			}

			l.eat()
		default:
			l.eat()
		}
	}
}

// lexPunctOrOper lexes a punctuation or operator symbol with maximal munch.
func (l *Lexer) lexPunctOrOper() *Token {
	l.mark()
	l.eat()

	kind, ok := symbolPatterns[l.tokBuff.String()]
	if !ok {
		panic(report.Raise(l.getSpan(), "unknown rune: `%s`", l.tokBuff.String()))
	}

	for {
		c := l.peek()
		if c == -1 {
			break
		}

		if _kind, ok := symbolPatterns[l.tokBuff.String()+string(c)]; ok {
			l.eat()
			kind = _kind
		} else {
			break
		}
	}

	return l.makeToken(kind)
}

// -----------------------------------------------------------------------------

// mark sets the lexer's stored start line and column to its current
// position.
func (l *Lexer) mark() {
	l.startLine = l.line
	l.startCol = l.col
}

// makeToken produces a new token of the given kind from the lexer's state
// and resets the lexer to begin building the next token.
func (l *Lexer) makeToken(kind int) *Token {
	value := l.tokBuff.String()
	l.tokBuff.Reset()

	return &Token{
		Kind:  kind,
		Value: value,
		Span:  l.getSpan(),
	}
}

// getSpan calculates a text span based on the lexer's current state.
func (l *Lexer) getSpan() *report.TextSpan {
	return &report.TextSpan{
		StartLine: l.startLine,
		StartCol:  l.startCol,
		EndLine:   l.line,
		EndCol:    l.col,
	}
}

// -----------------------------------------------------------------------------

// eat moves the lexer forward one rune and writes the rune to the token
// buffer.
func (l *Lexer) eat() rune {
	c := l.peek()
	if c == -1 {
		return -1
	}

	l.pos++
	l.updatePos(c)
	l.tokBuff.WriteRune(c)

	return c
}

// skip moves the lexer forward one rune but does not write the rune to the
// token buffer.
func (l *Lexer) skip() rune {
	c := l.peek()
	if c == -1 {
		return -1
	}

	l.pos++
	l.updatePos(c)

	return c
}

// peek returns the next rune without moving the lexer forward.  -1 is
// returned at end of input.
func (l *Lexer) peek() rune {
	return l.peekAt(0)
}

// peekAt returns the rune n positions ahead without moving the lexer
// forward.
func (l *Lexer) peekAt(n int) rune {
	if l.pos+n >= len(l.src) {
		return -1
	}

	return l.src[l.pos+n]
}

// updatePos updates the lexer's position based on the input character.
func (l *Lexer) updatePos(c rune) {
	switch c {
	case '\n':
		l.line++
		l.col = 0
	case '\t':
		l.col += 4
	default:
		l.col++
	}
}

// -----------------------------------------------------------------------------

// isDecimalDigit returns whether c is a decimal digit.
func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

// isFirstIdentChar returns whether c could be the first rune of an
// identifier.
func isFirstIdentChar(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}
