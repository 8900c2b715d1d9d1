// Package transpile exposes the translation engine behind two operations:
// Translate, which converts one robot source file into a Java compilation
// unit, and ValidateSyntax, which parses without emitting.
//
// A translation is a synchronous, single-threaded pass over one file.  Each
// call owns its own symbol table and reporter, so callers may translate
// many files concurrently with no coordination: the only shared state is
// the read-only mapping tables.
package transpile

import (
	"ftcc/ast"
	"ftcc/generate"
	"ftcc/report"
	"ftcc/syntax"
	"ftcc/walk"
)

// Result carries the output of one successful translation.
type Result struct {
	// The emitted Java compilation unit.
	Output string

	// The Java class name of the unit, used by callers to derive output
	// file names.
	ClassName string
}

// Translate converts robot dialect source text into a Java compilation
// unit.  It returns a nil result if and only if the source does not parse
// as the supported dialect, in which case the diagnostics contain exactly
// one fatal syntax error.  All other conditions are recorded as warnings
// and translation runs to completion.
func Translate(source string) (result *Result, diags []*report.Diagnostic) {
	rep := report.NewReporter()

	class := parse(source, rep)
	if class == nil {
		return nil, rep.Diagnostics()
	}

	table := walk.NewWalker(rep).Walk(class)
	output := generate.NewGenerator(class, table, rep).Generate()

	return &Result{Output: output, ClassName: class.Name}, rep.Diagnostics()
}

// ValidateSyntax parses the source text without emitting anything and
// returns the resulting diagnostics.
func ValidateSyntax(source string) []*report.Diagnostic {
	rep := report.NewReporter()
	parse(source, rep)
	return rep.Diagnostics()
}

// HasErrors returns whether the diagnostic list contains at least one
// error severity diagnostic.  Warnings never fail a translation.
func HasErrors(diags []*report.Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == report.SevError {
			return true
		}
	}

	return false
}

// parse runs the syntax reader over the source text, converting the fatal
// parse panic into a syntax diagnostic on the reporter.  A nil return means
// the file is structurally unparsable and yields no output.
func parse(source string, rep *report.Reporter) (class *ast.ClassDef) {
	defer report.Catch(rep)
	return syntax.NewParser(source).Parse()
}
