package domain

import "path/filepath"

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string     `toml:"-"`
	Shell    ShellConfig  `toml:"shell"`
	Log      LogConfig    `toml:"log"`
	Output   OutputConfig `toml:"output"`
}

// OutputConfig holds console output settings from [output] section.
type OutputConfig struct {
	Print bool `toml:"print"` // Print captured stdout/stderr after each command
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
	File  string `toml:"file,omitempty"`  // Log file path (empty disables file logging)
}

// Options is the per-call configuration handed to the executor.
type Options struct {
	PrintOutput bool
}

// Options returns the executor options derived from the configuration.
func (c *Config) Options() Options {
	return Options{PrintOutput: c.Output.Print}
}

// NewDefaultConfig returns a config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Shell: DefaultShellConfig(),
		Log: LogConfig{
			Level: "info",
		},
	}
}

// File names and directories.
const (
	AppDirName       = "netshare"      // Directory name under the config home
	ConfigFileName   = "config.toml"   // Config file name
	ProfilesFileName = "profiles.toml" // Profile store file name
)

// GlobalAppDir returns the global application directory path.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalAppDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalAppDir(configHome), ConfigFileName)
}

// ProfilesFilePath returns the profile store path inside the app directory.
func ProfilesFilePath(appDir string) string {
	return filepath.Join(appDir, ProfilesFileName)
}
