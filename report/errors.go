package report

import "fmt"

// SourceError is a fatal parse error raised while reading a source file.
// The syntax package raises these via panic; the translation pipeline
// catches them with Catch and converts them into a single fatal syntax
// diagnostic, aborting the file.
type SourceError struct {
	// The error message.
	Message string

	// The span over which the error occurs.
	Span *TextSpan
}

func (se *SourceError) Error() string {
	return se.Message
}

// Raise creates a new source error.
func Raise(span *TextSpan, msg string, args ...interface{}) *SourceError {
	return &SourceError{Message: sprintf(msg, args), Span: span}
}

// Catch converts a panicked *SourceError into a fatal syntax diagnostic on
// the given reporter.  Any other panic value is propagated unchanged.
// NB: This function must ALWAYS be deferred.
func Catch(r *Reporter) {
	if x := recover(); x != nil {
		if serr, ok := x.(*SourceError); ok {
			r.Errorf(KindSyntax, serr.Span, "%s", serr.Message)
		} else {
			panic(x)
		}
	}
}

// sprintf formats msg with args, avoiding format expansion when there are
// no arguments.
func sprintf(msg string, args []interface{}) string {
	if len(args) == 0 {
		return msg
	}

	return fmt.Sprintf(msg, args...)
}
