// Package config holds the converter settings and loads them from an
// optional HCL file.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultInputDirs are searched in order when no input directory is set.
var DefaultInputDirs = []string{"../xml", "./xml", "xml", "."}

// Defaults for the remaining settings.
const (
	DefaultOutputDir = "xml_png"
	DefaultExtension = ".fbt"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config is the resolved converter configuration.
type Config struct {
	// InputDir is the directory to convert. Empty means search
	// DefaultInputDirs.
	InputDir  string
	OutputDir string
	Extension string
	Workers   int

	// FontPaths overrides the system font list when non-empty.
	FontPaths      []string
	GoFontFallback bool

	LogLevel  string
	LogFormat string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputDir: DefaultOutputDir,
		Extension: DefaultExtension,
		Workers:   runtime.NumCPU(),
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// File is the schema of a configuration file:
//
//	input_dir        = "models/xml"
//	output_dir       = "out"
//	extension        = ".fbt"
//	workers          = 4
//	font_paths       = ["/usr/share/fonts/TTF/DejaVuSans.ttf"]
//	go_font_fallback = true
//
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
type File struct {
	InputDir       *string  `hcl:"input_dir,optional"`
	OutputDir      *string  `hcl:"output_dir,optional"`
	Extension      *string  `hcl:"extension,optional"`
	Workers        *int     `hcl:"workers,optional"`
	FontPaths      []string `hcl:"font_paths,optional"`
	GoFontFallback *bool    `hcl:"go_font_fallback,optional"`
	Log            *LogFile `hcl:"log,block"`
}

// LogFile is the log block of a configuration file.
type LogFile struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// Load parses the HCL configuration file at path.
func Load(path string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var f File
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &f); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}
	return &f, nil
}

// Apply overlays the values set in f onto c.
func (c *Config) Apply(f *File) {
	if f == nil {
		return
	}
	setString(&c.InputDir, f.InputDir)
	setString(&c.OutputDir, f.OutputDir)
	setString(&c.Extension, f.Extension)
	if f.Workers != nil {
		c.Workers = *f.Workers
	}
	if len(f.FontPaths) > 0 {
		c.FontPaths = f.FontPaths
	}
	if f.GoFontFallback != nil {
		c.GoFontFallback = *f.GoFontFallback
	}
	if f.Log != nil {
		setString(&c.LogLevel, f.Log.Level)
		setString(&c.LogFormat, f.Log.Format)
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// Validate normalizes c and reports invalid settings.
// The extension gains a leading dot; level and format are lower-cased.
func (c *Config) Validate() error {
	var errs []error

	if c.Extension == "" || c.Extension == "." {
		errs = append(errs, errors.New("extension must not be empty"))
	} else if !strings.HasPrefix(c.Extension, ".") {
		c.Extension = "." + c.Extension
	}
	if c.OutputDir == "" {
		errs = append(errs, errors.New("output dir must not be empty"))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", c.Workers))
	}

	c.LogLevel = strings.ToLower(c.LogLevel)
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel))
	}
	c.LogFormat = strings.ToLower(c.LogFormat)
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", c.LogFormat))
	}
	return errors.Join(errs...)
}

// InputDirs returns the directories to search for input files.
func (c *Config) InputDirs() []string {
	if c.InputDir != "" {
		return []string{c.InputDir}
	}
	return DefaultInputDirs
}
