// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/netshare/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	path          string // Explicit config file (--config), optional
	globalConfDir string // Path to global config directory (e.g., ~/.config/netshare)
}

// NewLoader creates a new Loader.
// path is an explicit config file that overrides the global one; it may be empty.
func NewLoader(path string) *Loader {
	return &Loader{
		path:          path,
		globalConfDir: DefaultGlobalDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(path, globalConfDir string) *Loader {
	return &Loader{
		path:          path,
		globalConfDir: globalConfDir,
	}
}

// DefaultGlobalDir returns the default global application directory.
func DefaultGlobalDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalAppDir(configHome)
}

// GlobalPath returns the global config file path, or "" if unknown.
func (l *Loader) GlobalPath() string {
	if l.globalConfDir == "" {
		return ""
	}
	return filepath.Join(l.globalConfDir, domain.ConfigFileName)
}

// Path returns the explicit config file path, if any.
func (l *Loader) Path() string {
	return l.path
}

// Load returns the merged configuration.
// The explicit config file takes precedence over the global config.
// A missing global file is not an error; a missing explicit file is.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	// Merge: default <- global <- explicit (later takes precedence)
	if path := l.GlobalPath(); path != "" {
		global, err := l.loadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if global != nil {
			global.applyTo(base)
		}
	}

	if l.path != "" {
		explicit, err := l.loadFile(l.path)
		if err != nil {
			return nil, err
		}
		explicit.applyTo(base)
	}

	sort.Strings(base.Warnings)
	return base, nil
}

// LoadGlobal returns only the global configuration applied over defaults.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	path := l.GlobalPath()
	if path == "" {
		return nil, os.ErrNotExist
	}
	fc, err := l.loadFile(path)
	if err != nil {
		return nil, err
	}
	base := domain.NewDefaultConfig()
	fc.applyTo(base)
	sort.Strings(base.Warnings)
	return base, nil
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return parseRaw(raw), nil
}

// fileConfig is the configuration read from a single file.
// Pointer fields record which keys were present so that merging can
// tell an explicit false from an absent key.
type fileConfig struct {
	print    *bool
	strict   *bool
	program  string
	sw       string
	dir      string
	level    string
	logFile  string
	warnings []string
}

// parseRaw converts the raw TOML map and collects warnings for unknown keys.
func parseRaw(raw map[string]any) *fileConfig {
	fc := &fileConfig{}

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			fc.warnings = append(fc.warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "output":
			for k, v := range m {
				switch k {
				case "print":
					if b, ok := v.(bool); ok {
						fc.print = &b
					}
				default:
					fc.warnings = append(fc.warnings, fmt.Sprintf("unknown key in [output]: %s", k))
				}
			}
		case "shell":
			for k, v := range m {
				switch k {
				case "program":
					if s, ok := v.(string); ok {
						fc.program = s
					}
				case "switch":
					if s, ok := v.(string); ok {
						fc.sw = s
					}
				case "dir":
					if s, ok := v.(string); ok {
						fc.dir = s
					}
				case "strict":
					if b, ok := v.(bool); ok {
						fc.strict = &b
					}
				default:
					fc.warnings = append(fc.warnings, fmt.Sprintf("unknown key in [shell]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						fc.level = s
					}
				case "file":
					if s, ok := v.(string); ok {
						fc.logFile = s
					}
				default:
					fc.warnings = append(fc.warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			fc.warnings = append(fc.warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	return fc
}

// applyTo merges the file config into base, with the file taking precedence.
func (fc *fileConfig) applyTo(base *domain.Config) {
	base.Warnings = append(base.Warnings, fc.warnings...)

	if fc.print != nil {
		base.Output.Print = *fc.print
	}
	if fc.strict != nil {
		base.Shell.Strict = *fc.strict
	}
	if fc.program != "" {
		base.Shell.Program = fc.program
	}
	if fc.sw != "" {
		base.Shell.Switch = fc.sw
	}
	if fc.dir != "" {
		base.Shell.Dir = fc.dir
	}
	if fc.level != "" {
		base.Log.Level = fc.level
	}
	if fc.logFile != "" {
		base.Log.File = fc.logFile
	}
}
