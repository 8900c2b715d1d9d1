package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"ftcc/project"
	"ftcc/report"
	"ftcc/transpile"
)

// builder runs the translation engine over the files of one build
// invocation and accumulates the resulting exit status.
type builder struct {
	proj      *project.Project
	loglevel  int
	checkOnly bool

	// errCount is the total number of error severity diagnostics across
	// all translated files.
	errCount int
}

// runBuild translates the file or project directory at the given path and
// returns the process exit status.
func runBuild(path string, loglevel int, checkOnly bool) int {
	info, err := os.Stat(path)
	if err != nil {
		report.PrintErrorMessage("Build Error", err)
		return 1
	}

	b := &builder{loglevel: loglevel, checkOnly: checkOnly}

	if info.IsDir() {
		proj, err := project.Load(path)
		if err != nil {
			report.PrintErrorMessage("Config Error", err)
			return 1
		}

		// A project file may pin its own log level.
		if proj.LogLevel != "" {
			b.loglevel = parseLogLevel(proj.LogLevel)
		}

		b.proj = proj
		if err := b.buildProject(); err != nil {
			report.PrintErrorMessage("Build Error", err)
			return 1
		}
	} else {
		if err := b.buildFile(path, filepath.Dir(path)); err != nil {
			report.PrintErrorMessage("Build Error", err)
			return 1
		}
	}

	if b.errCount > 0 {
		return 1
	}

	return 0
}

// buildProject discovers and translates every source file of the project.
// Files are processed in sorted order so repeated builds behave
// identically.
func (b *builder) buildProject() error {
	entries, err := os.ReadDir(b.proj.SourcePath())
	if err != nil {
		return err
	}

	var sources []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".py") {
			sources = append(sources, filepath.Join(b.proj.SourcePath(), entry.Name()))
		}
	}

	if len(sources) == 0 {
		return fmt.Errorf("no source files found in %s", b.proj.SourcePath())
	}

	sort.Strings(sources)

	for _, src := range sources {
		if err := b.buildFile(src, b.proj.OutputPath()); err != nil {
			return err
		}
	}

	return nil
}

// buildFile translates one source file and writes its Java unit to the
// output directory.  Diagnostics are printed per the log level; a file
// with a fatal syntax error produces no output but does not stop the
// remaining files from building.
func (b *builder) buildFile(path, outDir string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if b.checkOnly {
		diags := transpile.ValidateSyntax(string(source))
		b.printDiagnostics(path, diags)
		return nil
	}

	result, diags := transpile.Translate(string(source))
	b.printDiagnostics(path, diags)

	if result == nil {
		return nil
	}

	unit := result.Output
	if b.proj != nil && b.proj.JavaPackage != "" {
		unit = "package " + b.proj.JavaPackage + ";\n\n" + unit
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	outPath := filepath.Join(outDir, result.ClassName+".java")
	if err := os.WriteFile(outPath, []byte(unit), 0o644); err != nil {
		return err
	}

	if b.loglevel >= logLevelVerbose {
		report.PrintInfoMessage("Translated", path+" -> "+outPath)
	}

	return nil
}

// printDiagnostics prints the diagnostics of one file per the log level
// and tallies its errors.
func (b *builder) printDiagnostics(path string, diags []*report.Diagnostic) {
	for _, d := range diags {
		if d.Severity == report.SevError {
			b.errCount++
		}

		switch {
		case d.Severity == report.SevError && b.loglevel >= logLevelError:
			report.PrintDiagnostic(path, d)
		case d.Severity == report.SevWarning && b.loglevel >= logLevelWarn:
			report.PrintDiagnostic(path, d)
		}
	}
}
