package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporterOrdering(t *testing.T) {
	rep := NewReporter()
	rep.Warnf(KindUnsupported, &TextSpan{StartLine: 5, StartCol: 2}, "later")
	rep.Warnf(KindUnsupported, &TextSpan{StartLine: 1, StartCol: 8}, "earlier")
	rep.Warnf(KindMissingMethod, nil, "file level")
	rep.Warnf(KindUnsupported, &TextSpan{StartLine: 1, StartCol: 0}, "earliest")

	diags := rep.Diagnostics()
	require.Len(t, diags, 4)

	// Span-less diagnostics sort first, then source order.
	assert.Equal(t, "file level", diags[0].Message)
	assert.Equal(t, "earliest", diags[1].Message)
	assert.Equal(t, "earlier", diags[2].Message)
	assert.Equal(t, "later", diags[3].Message)
}

func TestReporterHasErrors(t *testing.T) {
	rep := NewReporter()
	assert.False(t, rep.HasErrors())

	rep.Warnf(KindUnsupported, nil, "just a warning")
	assert.False(t, rep.HasErrors())

	rep.Errorf(KindSyntax, nil, "fatal")
	assert.True(t, rep.HasErrors())
}

func TestCatchConvertsSourceErrors(t *testing.T) {
	rep := NewReporter()

	func() {
		defer Catch(rep)
		panic(Raise(&TextSpan{StartLine: 2, StartCol: 4}, "bad token: `%s`", "$"))
	}()

	diags := rep.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, SevError, diags[0].Severity)
	assert.Equal(t, KindSyntax, diags[0].Kind)
	assert.Equal(t, "bad token: `$`", diags[0].Message)
}

func TestCatchRepanicsForeignValues(t *testing.T) {
	rep := NewReporter()

	assert.Panics(t, func() {
		defer Catch(rep)
		panic("not a source error")
	})

	assert.Empty(t, rep.Diagnostics())
}

func TestDiagnosticString(t *testing.T) {
	d := &Diagnostic{
		Severity: SevWarning,
		Kind:     KindUnknownHardware,
		Span:     &TextSpan{StartLine: 3, StartCol: 8},
		Message:  "unknown hardware constructor: `lidar`",
	}

	// Positions render one-indexed.
	assert.Equal(t, "4:9: warning: unknown hardware constructor: `lidar`", d.String())
	assert.Equal(t, "unknown hardware type", d.KindString())
}
