package domain

import (
	"fmt"
	"runtime"
	"strings"
)

// ShellConfig describes how command lines are handed to the OS shell.
// Fields are ordered to minimize memory padding.
type ShellConfig struct {
	Program string `toml:"program,omitempty"` // Shell executable (cmd.exe / sh)
	Switch  string `toml:"switch,omitempty"`  // Run-command switch (/C / -c)
	Dir     string `toml:"dir,omitempty"`     // Working directory (filesystem root)
	Strict  bool   `toml:"strict,omitempty"`  // Reject shell metacharacters in interpolated values
}

// DefaultShellConfig returns the platform shell settings.
func DefaultShellConfig() ShellConfig {
	if runtime.GOOS == "windows" {
		return ShellConfig{Program: "cmd.exe", Switch: "/C", Dir: `C:\`}
	}
	return ShellConfig{Program: "sh", Switch: "-c", Dir: "/"}
}

// ExecCommand represents a shell command line to be executed.
// This type is used to pass command information between layers
// without exposing implementation details.
type ExecCommand struct {
	Line string // Full command line passed to the shell's run-command switch
}

// MountCommand builds the `net use` command line that binds the share's
// letter to its UNC path using inline credentials.
// Values are interpolated as-is; no quoting is applied.
func MountCommand(s Share) *ExecCommand {
	return &ExecCommand{
		Line: fmt.Sprintf("net use %s %s /user:%s %s",
			s.Drive(), s.UNC, s.Credentials.Username, s.Credentials.Password),
	}
}

// UnmountCommand builds the `net use` command line that force-releases
// the binding at the share's letter without prompting.
func UnmountCommand(s Share) *ExecCommand {
	return &ExecCommand{
		Line: fmt.Sprintf("net use %s /D /Y", s.Drive()),
	}
}

// shellMetachars lists characters that cmd.exe or sh would reinterpret.
const shellMetachars = "&|<>^\"%!();`$\r\n"

// CheckShellSafe returns ErrUnsafeValue if any value the command line
// interpolates contains a shell metacharacter.
func CheckShellSafe(s Share) error {
	values := []string{
		string(s.Letter),
		s.UNC,
		s.Credentials.Username,
		s.Credentials.Password,
	}
	for _, v := range values {
		if strings.ContainsAny(v, shellMetachars) {
			return ErrUnsafeValue
		}
	}
	return nil
}
