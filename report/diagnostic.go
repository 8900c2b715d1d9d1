package report

import "fmt"

// Severity indicates how serious a diagnostic is.  Only error severity
// diagnostics stop translation or change the exit status of the CLI.
type Severity int

// Enumeration of diagnostic severities.
const (
	SevWarning Severity = iota
	SevError
)

// Kind classifies a diagnostic by the condition that produced it.
type Kind int

// Enumeration of diagnostic kinds.
const (
	// KindSyntax indicates the input does not parse as the supported
	// dialect.  Syntax diagnostics are always fatal to their file.
	KindSyntax Kind = iota

	// KindUnknownHardware indicates an unrecognized hardware constructor
	// name during symbol table construction.
	KindUnknownHardware

	// KindUnsupported indicates a call, attribute, or mode literal that is
	// not in the mapping tables.  The construct degrades to a comment.
	KindUnsupported

	// KindMissingMethod indicates a required method (`run`) was absent and
	// a default was synthesized.
	KindMissingMethod
)

// kindStrings maps diagnostic kinds to their display names.
var kindStrings = map[Kind]string{
	KindSyntax:          "syntax",
	KindUnknownHardware: "unknown hardware type",
	KindUnsupported:     "unsupported construct",
	KindMissingMethod:   "missing required method",
}

// Diagnostic is a structured record of a translation-time condition.  It is
// appended to a reporter during translation and never mutated afterwards.
type Diagnostic struct {
	// The severity of the diagnostic.
	Severity Severity

	// The kind of condition that produced the diagnostic.
	Kind Kind

	// The span of source text the diagnostic is anchored to.  This may be
	// nil for file-level conditions with no meaningful location.
	Span *TextSpan

	// The diagnostic message.
	Message string
}

// KindString returns the display name of the diagnostic's kind.
func (d *Diagnostic) KindString() string {
	return kindStrings[d.Kind]
}

// String renders the diagnostic in `line:col: severity: message` form with
// one-indexed positions.
func (d *Diagnostic) String() string {
	sev := "warning"
	if d.Severity == SevError {
		sev = "error"
	}

	if d.Span == nil {
		return fmt.Sprintf("%s: %s", sev, d.Message)
	}

	return fmt.Sprintf("%d:%d: %s: %s", d.Span.StartLine+1, d.Span.StartCol+1, sev, d.Message)
}
