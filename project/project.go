// Package project loads the optional `ftc-project.toml` configuration file
// that describes a robot project directory: where its sources live, where
// Java output goes, and which Java package the emitted classes belong to.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// ConfigFileName is the name of the project configuration file.
const ConfigFileName = "ftc-project.toml"

// tomlProjectFile represents the project file as it is encoded in TOML.
type tomlProjectFile struct {
	Project *tomlProject `toml:"project"`
}

// tomlProject represents a robot project as it is encoded in TOML.
type tomlProject struct {
	Name        string `toml:"name"`
	SourceDir   string `toml:"source-dir,omitempty"`
	OutputDir   string `toml:"output-dir,omitempty"`
	JavaPackage string `toml:"java-package,omitempty"`
	LogLevel    string `toml:"log-level,omitempty"`
}

// Project is a loaded robot project configuration.
type Project struct {
	// The project name.
	Name string

	// The project root: the directory enclosing the configuration file.
	Root string

	// The directory containing robot source files, relative to the root.
	SourceDir string

	// The directory Java output is written to, relative to the root.
	OutputDir string

	// The Java package emitted units are declared in.  Empty means the
	// default package.
	JavaPackage string

	// The configured log level name.  Empty defers to the command line.
	LogLevel string
}

// Load reads the project configuration from the given directory.  A missing
// configuration file is not an error: the returned project carries the
// documented defaults.
func Load(root string) (*Project, error) {
	proj := &Project{
		Name:      filepath.Base(root),
		Root:      root,
		SourceDir: ".",
		OutputDir: ".",
	}

	buff, err := os.ReadFile(filepath.Join(root, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return proj, nil
		}

		return nil, fmt.Errorf("failed to read %s: %w", ConfigFileName, err)
	}

	tpf := &tomlProjectFile{}
	if err := toml.Unmarshal(buff, tpf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
	}

	if tpf.Project == nil {
		return nil, fmt.Errorf("%s is missing its [project] table", ConfigFileName)
	}

	if tpf.Project.Name != "" {
		proj.Name = tpf.Project.Name
	}

	if tpf.Project.SourceDir != "" {
		proj.SourceDir = tpf.Project.SourceDir
	}

	if tpf.Project.OutputDir != "" {
		proj.OutputDir = tpf.Project.OutputDir
	}

	proj.JavaPackage = tpf.Project.JavaPackage
	proj.LogLevel = tpf.Project.LogLevel

	return proj, nil
}

// SourcePath returns the absolute path of the project's source directory.
func (p *Project) SourcePath() string {
	return filepath.Join(p.Root, p.SourceDir)
}

// OutputPath returns the absolute path of the project's output directory.
func (p *Project) OutputPath() string {
	return filepath.Join(p.Root, p.OutputDir)
}
