// Package cmd is the top-level "driver" package for the ftcc command line
// tool: it parses arguments, loads project configuration, and runs the
// translation engine once per discovered source file.  The engine itself
// performs no I/O; everything filesystem related lives here.
package cmd

import (
	"os"

	"ftcc/report"

	"github.com/ComedicChimera/olive"
)

// Version is the current version of the ftcc tool.
const Version = "0.4.0"

// Enumeration of the different log levels.
const (
	logLevelSilent  = iota // no output at all
	logLevelError          // only errors
	logLevelWarn           // errors and warnings
	logLevelVerbose        // errors, warnings, and progress messages (DEFAULT)
)

// Execute is the main entry point for the `ftcc` CLI utility.  It returns
// the process exit status: zero when no error severity diagnostics were
// produced, non-zero otherwise.  Warnings never change the exit status.
func Execute() int {
	// set up the argument parser and all its commands and arguments
	cli := olive.NewCLI("ftcc", "ftcc translates robot dialect sources into FTC Java", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the log level", false,
		[]string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	buildCmd := cli.AddSubcommand("build", "translate a source file or project directory", true)
	buildCmd.AddPrimaryArg("path", "the path to the file or project to translate", true)

	checkCmd := cli.AddSubcommand("check", "validate syntax without emitting output", true)
	checkCmd.AddPrimaryArg("path", "the path to the file or project to check", true)

	cli.AddSubcommand("version", "print the ftcc version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.PrintErrorMessage("Usage Error", err)
		return 1
	}

	loglevel := parseLogLevel(result.Arguments["loglevel"].(string))

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		path, _ := subResult.PrimaryArg()
		return runBuild(path, loglevel, false)
	case "check":
		path, _ := subResult.PrimaryArg()
		return runBuild(path, loglevel, true)
	case "version":
		report.PrintInfoMessage("ftcc Version", Version)
	}

	return 0
}

// parseLogLevel converts a log level name to its level.  Invalid names
// default to verbose.
func parseLogLevel(name string) int {
	switch name {
	case "silent":
		return logLevelSilent
	case "error":
		return logLevelError
	case "warn":
		return logLevelWarn
	default:
		return logLevelVerbose
	}
}
