package report

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// PrintErrorMessage prints a standard Go error to the console.
func PrintErrorMessage(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// PrintInfoMessage prints an informational message to the user.
func PrintInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// PrintDiagnostic prints a diagnostic anchored to the named file.
func PrintDiagnostic(path string, d *Diagnostic) {
	loc := path
	if d.Span != nil {
		loc = fmt.Sprintf("%s:%d:%d", path, d.Span.StartLine+1, d.Span.StartCol+1)
	}

	msg := fmt.Sprintf("%s: %s: %s", loc, d.KindString(), d.Message)
	if d.Severity == SevError {
		PrintErrorMessage("Error", errors.New(msg))
	} else {
		WarnStyleBG.Print("Warning")
		WarnColorFG.Println(" " + msg)
	}
}
