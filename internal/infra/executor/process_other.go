//go:build !windows

package executor

import (
	"os/exec"

	"github.com/runoshun/netshare/internal/domain"
)

// configureProcess is a no-op outside Windows; there is no window to hide
// and the command line is passed as a single argument.
func configureProcess(_ *exec.Cmd, _ domain.ShellConfig, _ string) {}
