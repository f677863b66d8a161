//go:build windows

package executor

import (
	"os/exec"
	"syscall"

	"github.com/runoshun/netshare/internal/domain"
)

// configureProcess hides the console window and hands the command line to
// the shell verbatim, bypassing Go's per-argument quoting.
func configureProcess(cmd *exec.Cmd, shell domain.ShellConfig, line string) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow: true,
		CmdLine:    syscall.EscapeArg(shell.Program) + " " + shell.Switch + " " + line,
	}
}
