package syntax

import "ftcc/report"

// Token represents one lexical token of a source file.
type Token struct {
	// The token kind.  This must be one of the enumerated token kinds.
	Kind int

	// The token text.
	Value string

	// The span of source text the token occupies.
	Span *report.TextSpan
}

// Enumeration of the different token kinds.
const (
	TOK_EOF = iota
	TOK_NEWLINE
	TOK_INDENT
	TOK_DEDENT

	TOK_IDENT
	TOK_NUMLIT
	TOK_STRINGLIT

	TOK_CLASS
	TOK_DEF
	TOK_IF
	TOK_ELIF
	TOK_ELSE
	TOK_WHILE
	TOK_RETURN
	TOK_PASS
	TOK_TRUE
	TOK_FALSE
	TOK_AND
	TOK_OR
	TOK_NOT

	TOK_ATSIGN
	TOK_LPAREN
	TOK_RPAREN
	TOK_COMMA
	TOK_COLON
	TOK_DOT
	TOK_ASSIGN
	TOK_EQ
	TOK_NEQ
	TOK_LT
	TOK_LTEQ
	TOK_GT
	TOK_GTEQ
	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_DIV
)

// keywordPatterns maps keyword strings (patterns) to their keyword token
// kind.
var keywordPatterns = map[string]int{
	"class":  TOK_CLASS,
	"def":    TOK_DEF,
	"if":     TOK_IF,
	"elif":   TOK_ELIF,
	"else":   TOK_ELSE,
	"while":  TOK_WHILE,
	"return": TOK_RETURN,
	"pass":   TOK_PASS,
	"True":   TOK_TRUE,
	"False":  TOK_FALSE,
	"and":    TOK_AND,
	"or":     TOK_OR,
	"not":    TOK_NOT,
}

// reservedWords is the set of Python keywords that are deliberately outside
// the robot dialect.  The parser rejects them with a targeted message
// instead of a generic unexpected-token error.
var reservedWords = map[string]struct{}{
	"for":    {},
	"in":     {},
	"is":     {},
	"try":    {},
	"except": {},
	"raise":  {},
	"import": {},
	"from":   {},
	"lambda": {},
	"yield":  {},
	"with":   {},
	"global": {},
	"del":    {},
	"None":   {},
}

// symbolPatterns maps symbol strings (patterns) to their punctuation or
// operator token kind.
var symbolPatterns = map[string]int{
	"@": TOK_ATSIGN,
	"(": TOK_LPAREN,
	")": TOK_RPAREN,
	",": TOK_COMMA,
	":": TOK_COLON,
	".": TOK_DOT,

	"=":  TOK_ASSIGN,
	"==": TOK_EQ,
	"!=": TOK_NEQ,
	"<":  TOK_LT,
	"<=": TOK_LTEQ,
	">":  TOK_GT,
	">=": TOK_GTEQ,

	"+": TOK_PLUS,
	"-": TOK_MINUS,
	"*": TOK_STAR,
	"/": TOK_DIV,
}
