package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fbtpng.hcl")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	want := Config{
		OutputDir: "xml_png",
		Extension: ".fbt",
		Workers:   runtime.NumCPU(),
		LogLevel:  "info",
		LogFormat: "text",
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("Default() mismatch (-want +got):\n%s", diff)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Default() invalid: %v", err)
	}
	if diff := cmp.Diff([]string{"../xml", "./xml", "xml", "."}, c.InputDirs()); diff != "" {
		t.Errorf("InputDirs() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadAndApply(t *testing.T) {
	path := writeConfig(t, `
input_dir        = "models"
output_dir       = "out"
extension        = "FBT"
workers          = 3
font_paths       = ["/a.ttf", "/b.ttf"]
go_font_fallback = true

log {
  level  = "DEBUG"
  format = "json"
}
`)
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	c := Default()
	c.Apply(f)
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	want := Config{
		InputDir:       "models",
		OutputDir:      "out",
		Extension:      ".FBT",
		Workers:        3,
		FontPaths:      []string{"/a.ttf", "/b.ttf"},
		GoFontFallback: true,
		LogLevel:       "debug",
		LogFormat:      "json",
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"models"}, c.InputDirs()); diff != "" {
		t.Errorf("InputDirs() mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyPartialKeepsDefaults(t *testing.T) {
	f, err := Load(writeConfig(t, `workers = 2`))
	if err != nil {
		t.Fatal(err)
	}
	c := Default()
	c.Apply(f)

	want := Default()
	want.Workers = 2
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	c.Apply(nil)
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("Apply(nil) changed config (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", `workers = `},
		{"unknown attribute", `colour = "red"`},
		{"wrong type", `workers = "many"`},
		{"duplicate log block", "log {}\nlog {}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Errorf("Load(%q) succeeded", tt.content)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.hcl")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"empty extension", func(c *Config) { c.Extension = "" }, "extension"},
		{"dot extension", func(c *Config) { c.Extension = "." }, "extension"},
		{"empty output", func(c *Config) { c.OutputDir = "" }, "output dir"},
		{"zero workers", func(c *Config) { c.Workers = 0 }, "workers"},
		{"bad level", func(c *Config) { c.LogLevel = "trace" }, "log level"},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, "log format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
