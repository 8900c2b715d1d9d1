package report

import "sort"

// Reporter collects the diagnostics produced by a single translation run.
// Each run owns its own reporter: there is no shared state between runs, so
// a host may translate many files in parallel without coordination.
type Reporter struct {
	diags []*Diagnostic
}

// NewReporter creates an empty reporter for one translation run.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Errorf records an error severity diagnostic.
func (r *Reporter) Errorf(kind Kind, span *TextSpan, msg string, args ...interface{}) {
	r.diags = append(r.diags, &Diagnostic{
		Severity: SevError,
		Kind:     kind,
		Span:     span,
		Message:  sprintf(msg, args),
	})
}

// Warnf records a warning severity diagnostic.
func (r *Reporter) Warnf(kind Kind, span *TextSpan, msg string, args ...interface{}) {
	r.diags = append(r.diags, &Diagnostic{
		Severity: SevWarning,
		Kind:     kind,
		Span:     span,
		Message:  sprintf(msg, args),
	})
}

// HasErrors returns whether any error severity diagnostics were recorded.
func (r *Reporter) HasErrors() bool {
	for _, d := range r.diags {
		if d.Severity == SevError {
			return true
		}
	}

	return false
}

// Diagnostics returns the recorded diagnostics sorted into source order.
// Diagnostics without a span sort before all anchored diagnostics.  The
// sort is stable so diagnostics at the same location keep insertion order.
func (r *Reporter) Diagnostics() []*Diagnostic {
	diags := make([]*Diagnostic, len(r.diags))
	copy(diags, r.diags)

	sort.SliceStable(diags, func(i, j int) bool {
		a, b := diags[i].Span, diags[j].Span
		if a == nil {
			return b != nil
		} else if b == nil {
			return false
		}

		if a.StartLine != b.StartLine {
			return a.StartLine < b.StartLine
		}

		return a.StartCol < b.StartCol
	})

	return diags
}
