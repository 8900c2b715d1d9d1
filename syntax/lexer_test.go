package syntax

import (
	"testing"

	"ftcc/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lexAll drains the lexer, returning every token through and including EOF.
func lexAll(t *testing.T, src string) []*Token {
	t.Helper()

	l := NewLexer(src)

	var toks []*Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)

		if tok.Kind == TOK_EOF {
			return toks
		}

		require.Less(t, len(toks), 10000, "lexer failed to terminate")
	}
}

// kindsOf projects a token list onto its kinds.
func kindsOf(toks []*Token) []int {
	kinds := make([]int, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}

	return kinds
}

func TestLexSimpleLine(t *testing.T) {
	toks := lexAll(t, `x = 1.5`)

	assert.Equal(t, []int{TOK_IDENT, TOK_ASSIGN, TOK_NUMLIT, TOK_NEWLINE, TOK_EOF}, kindsOf(toks))
	assert.Equal(t, "x", toks[0].Value)
	assert.Equal(t, "1.5", toks[2].Value)
}

func TestLexIndentation(t *testing.T) {
	src := "while True:\n    pass\n    pass\nx = 1\n"

	assert.Equal(t, []int{
		TOK_WHILE, TOK_TRUE, TOK_COLON, TOK_NEWLINE,
		TOK_INDENT, TOK_PASS, TOK_NEWLINE,
		TOK_PASS, TOK_NEWLINE,
		TOK_DEDENT,
		TOK_IDENT, TOK_ASSIGN, TOK_NUMLIT, TOK_NEWLINE,
		TOK_EOF,
	}, kindsOf(lexAll(t, src)))
}

func TestLexNestedDedents(t *testing.T) {
	src := "if a:\n    if b:\n        pass\nx = 1\n"

	assert.Equal(t, []int{
		TOK_IF, TOK_IDENT, TOK_COLON, TOK_NEWLINE,
		TOK_INDENT, TOK_IF, TOK_IDENT, TOK_COLON, TOK_NEWLINE,
		TOK_INDENT, TOK_PASS, TOK_NEWLINE,
		TOK_DEDENT, TOK_DEDENT,
		TOK_IDENT, TOK_ASSIGN, TOK_NUMLIT, TOK_NEWLINE,
		TOK_EOF,
	}, kindsOf(lexAll(t, src)))
}

func TestLexDedentsAtEOF(t *testing.T) {
	// A file ending inside a nested block must still unwind every open
	// indentation level before EOF.
	src := "if a:\n    if b:\n        pass"

	kinds := kindsOf(lexAll(t, src))
	assert.Equal(t, []int{TOK_NEWLINE, TOK_DEDENT, TOK_DEDENT, TOK_EOF}, kinds[len(kinds)-4:])
}

func TestLexBlankAndCommentLines(t *testing.T) {
	src := "x = 1\n\n# a comment\n    # an indented comment\ny = 2  # trailing\n"

	assert.Equal(t, []int{
		TOK_IDENT, TOK_ASSIGN, TOK_NUMLIT, TOK_NEWLINE,
		TOK_IDENT, TOK_ASSIGN, TOK_NUMLIT, TOK_NEWLINE,
		TOK_EOF,
	}, kindsOf(lexAll(t, src)))
}

func TestLexStringLit(t *testing.T) {
	toks := lexAll(t, `name = "left_drive"`)

	require.Equal(t, TOK_STRINGLIT, toks[2].Kind)
	assert.Equal(t, "left_drive", toks[2].Value)
}

func TestLexMaximalMunch(t *testing.T) {
	toks := lexAll(t, `a <= b == c != d`)

	assert.Equal(t, []int{
		TOK_IDENT, TOK_LTEQ, TOK_IDENT, TOK_EQ, TOK_IDENT, TOK_NEQ, TOK_IDENT,
		TOK_NEWLINE, TOK_EOF,
	}, kindsOf(toks))
}

func TestLexKeywords(t *testing.T) {
	toks := lexAll(t, `if elif else while def class return pass and or not True False`)

	assert.Equal(t, []int{
		TOK_IF, TOK_ELIF, TOK_ELSE, TOK_WHILE, TOK_DEF, TOK_CLASS,
		TOK_RETURN, TOK_PASS, TOK_AND, TOK_OR, TOK_NOT, TOK_TRUE, TOK_FALSE,
		TOK_NEWLINE, TOK_EOF,
	}, kindsOf(toks))
}

func TestLexSpans(t *testing.T) {
	toks := lexAll(t, "speed = 10\n")

	require.Equal(t, TOK_NUMLIT, toks[2].Kind)
	assert.Equal(t, 0, toks[2].Span.StartLine)
	assert.Equal(t, 8, toks[2].Span.StartCol)
	assert.Equal(t, 10, toks[2].Span.EndCol)
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unclosed string", "x = \"oops\n"},
		{"unknown rune", "x = $1\n"},
		{"inconsistent indentation", "if a:\n        pass\n    pass\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				serr, ok := recover().(*report.SourceError)
				require.True(t, ok, "expected a *report.SourceError panic")
				assert.NotEmpty(t, serr.Message)
			}()

			lexAll(t, tt.src)
			t.Fatal("expected a lexical error")
		})
	}
}
