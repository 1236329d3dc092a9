package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dkoosis/stylish/pkg/render"
)

// Output formats.
const (
	FormatStylish = "stylish"
	FormatLLM     = "llm"
	FormatJSON    = "json"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Resolution sources, reported in debug output.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// CliFlags holds the values of command-line flags and whether each one was
// explicitly set by the user.
type CliFlags struct {
	Format   string
	Color    string
	Wrap     int
	NoWrap   bool
	Terse    bool
	ExitCode bool
	Debug    bool

	FormatSet   bool
	ColorSet    bool
	WrapSet     bool
	NoWrapSet   bool
	TerseSet    bool
	ExitCodeSet bool
	DebugSet    bool
}

// ResolvedConfig holds the final configuration after applying all priority
// rules.
type ResolvedConfig struct {
	Options  render.Options
	Format   string
	Color    string
	ExitCode bool
	Debug    bool

	// ConfigPath is the .stylish.yaml that was applied, if any.
	ConfigPath string

	// Resolution metadata (for debugging)
	WrapSource   string
	FormatSource string
	ColorSource  string
}

// ResolveConfig resolves configuration for the working directory dir.
//
// Resolution order:
//  1. Start from defaults
//  2. Apply .stylish.yaml found from dir upward
//  3. Apply environment variables
//  4. Apply CLI flags (highest priority)
func ResolveConfig(dir string, cli CliFlags) (*ResolvedConfig, error) {
	file, err := LoadFile(dir)
	if err != nil {
		return nil, err
	}

	resolved := &ResolvedConfig{
		Options:      render.DefaultOptions(),
		Format:       FormatStylish,
		Color:        ColorAuto,
		ConfigPath:   file.Path,
		WrapSource:   SourceDefault,
		FormatSource: SourceDefault,
		ColorSource:  SourceDefault,
	}

	applyFile(resolved, file)
	if err := applyEnv(resolved); err != nil {
		return nil, err
	}
	applyCLI(resolved, cli)

	if err := validateResolvedConfig(resolved); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return resolved, nil
}

func applyFile(r *ResolvedConfig, f *FileConfig) {
	if f.Verbose != nil {
		r.Options.Verbose = *f.Verbose
	}
	if f.Wrap != nil {
		r.Options.Wrap = int(*f.Wrap)
		r.WrapSource = SourceFile
	}
	if f.Format != "" {
		r.Format = f.Format
		r.FormatSource = SourceFile
	}
	if f.Color != "" {
		r.Color = f.Color
		r.ColorSource = SourceFile
	}
	r.ExitCode = f.ExitCode
}

func applyEnv(r *ResolvedConfig) error {
	if v := os.Getenv("STYLISH_FORMAT"); v != "" {
		r.Format = v
		r.FormatSource = SourceEnv
	}
	if v := os.Getenv("STYLISH_WRAP"); v != "" {
		width, err := parseWrap(v)
		if err != nil {
			return fmt.Errorf("STYLISH_WRAP: %w", err)
		}
		r.Options.Wrap = width
		r.WrapSource = SourceEnv
	}
	if v := os.Getenv("STYLISH_COLOR"); v != "" {
		r.Color = v
		r.ColorSource = SourceEnv
	}
	// https://no-color.org: any non-empty value disables color.
	if os.Getenv("NO_COLOR") != "" {
		r.Color = ColorNever
		r.ColorSource = SourceEnv
	}
	if os.Getenv("STYLISH_DEBUG") != "" {
		r.Debug = true
	}
	return nil
}

func applyCLI(r *ResolvedConfig, cli CliFlags) {
	if cli.FormatSet {
		r.Format = cli.Format
		r.FormatSource = SourceCLI
	}
	if cli.ColorSet {
		r.Color = cli.Color
		r.ColorSource = SourceCLI
	}
	if cli.WrapSet {
		r.Options.Wrap = max(cli.Wrap, 0)
		r.WrapSource = SourceCLI
	}
	if cli.NoWrapSet && cli.NoWrap {
		r.Options.Wrap = 0
		r.WrapSource = SourceCLI
	}
	if cli.TerseSet {
		r.Options.Verbose = !cli.Terse
	}
	if cli.ExitCodeSet {
		r.ExitCode = cli.ExitCode
	}
	if cli.DebugSet {
		r.Debug = cli.Debug
	}
}

// parseWrap reads a width or a boolean, mirroring WrapWidth.
func parseWrap(v string) (int, error) {
	if n, err := strconv.Atoi(v); err == nil {
		return max(n, 0), nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return 0, fmt.Errorf("expected an integer or boolean, got %q", v)
	}
	if b {
		return render.DefaultWrap, nil
	}
	return 0, nil
}

// validateResolvedConfig returns errors for invalid states.
func validateResolvedConfig(cfg *ResolvedConfig) error {
	validFormats := map[string]bool{FormatStylish: true, FormatLLM: true, FormatJSON: true}
	if !validFormats[cfg.Format] {
		return fmt.Errorf("invalid format %q (must be: %s)", cfg.Format,
			strings.Join([]string{FormatStylish, FormatLLM, FormatJSON}, ", "))
	}

	validColors := map[string]bool{ColorAuto: true, ColorAlways: true, ColorNever: true}
	if !validColors[cfg.Color] {
		return fmt.Errorf("invalid color mode %q (must be: %s)", cfg.Color,
			strings.Join([]string{ColorAuto, ColorAlways, ColorNever}, ", "))
	}

	return nil
}
