package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/stylish/pkg/render"
)

// FileName is the project config file looked up from the working directory.
const FileName = ".stylish.yaml"

// ErrConfigParse is returned when the project config file cannot be decoded.
var ErrConfigParse = errors.New("invalid config file")

// WrapWidth is a reason column width that also accepts a boolean:
// true means render.DefaultWrap, false disables wrapping.
type WrapWidth int

// UnmarshalYAML accepts an integer or a boolean.
func (w *WrapWidth) UnmarshalYAML(value *yaml.Node) error {
	var b bool
	if err := value.Decode(&b); err == nil {
		*w = 0
		if b {
			*w = render.DefaultWrap
		}
		return nil
	}
	var n int
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("wrap must be an integer or boolean, got %q", value.Value)
	}
	*w = WrapWidth(max(n, 0))
	return nil
}

// FileConfig is the content of .stylish.yaml. Pointer fields distinguish
// "unset" from the zero value.
type FileConfig struct {
	Verbose  *bool      `yaml:"verbose"`
	Wrap     *WrapWidth `yaml:"wrap"`
	Format   string     `yaml:"format"`
	Color    string     `yaml:"color"`
	ExitCode bool       `yaml:"exit_code"`

	// Path is where the config was loaded from; empty when none was found.
	Path string `yaml:"-"`
}

// LoadFile finds .stylish.yaml in dir or its parents and decodes it. No file
// yields an empty config.
func LoadFile(dir string) (*FileConfig, error) {
	path := findConfigFile(dir)
	if path == "" {
		return &FileConfig{}, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 - config file path is controlled
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	cfg, err := ParseFile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// ParseFile decodes config YAML, rejecting unknown keys.
func ParseFile(data []byte) (*FileConfig, error) {
	cfg := &FileConfig{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}
	return cfg, nil
}

// findConfigFile looks for .stylish.yaml in dir and its parents.
func findConfigFile(dir string) string {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return ""
		}
		dir = wd
	}

	for {
		configPath := filepath.Join(dir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
