package domain

import "context"

// CommandExecutor runs shell command lines.
type CommandExecutor interface {
	// Run executes the command line through the OS shell and blocks until
	// the child exits. It never returns an error; failures are encoded in
	// the Result.
	Run(ctx context.Context, cmd *ExecCommand, opts Options) Result
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (default <- global <- explicit file).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// ProfileRepository manages stored share profiles.
type ProfileRepository interface {
	// Load reads all profiles.
	Load() (*ProfileFile, error)

	// Get returns the profile with the given name or ErrProfileNotFound.
	Get(name string) (Profile, error)

	// Add stores a profile. With replace set, an existing profile of the
	// same name is overwritten; otherwise ErrProfileExists is returned.
	Add(p Profile, replace bool) error

	// Remove deletes the profile with the given name.
	Remove(name string) error
}

// Logger provides logging for operations.
// category identifies the operation (e.g. "mount", "unmount").
type Logger interface {
	Info(scope, category, msg string)
	Debug(scope, category, msg string)
	Warn(scope, category, msg string)
	Error(scope, category, msg string)
}
