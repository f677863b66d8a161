// Package executor runs command lines through the OS shell.
package executor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/runoshun/netshare/internal/domain"
)

// Client implements domain.CommandExecutor interface.
// Fields are ordered to minimize memory padding.
type Client struct {
	console io.Writer
	shell   domain.ShellConfig
}

// NewClient creates a new command executor client.
// Captured output is written to console when printing is requested.
func NewClient(shell domain.ShellConfig, console io.Writer) *Client {
	def := domain.DefaultShellConfig()
	if shell.Program == "" {
		shell.Program = def.Program
	}
	if shell.Switch == "" {
		shell.Switch = def.Switch
	}
	if shell.Dir == "" {
		shell.Dir = def.Dir
	}
	if console == nil {
		console = io.Discard
	}
	return &Client{
		console: console,
		shell:   shell,
	}
}

// Ensure Client implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*Client)(nil)

// Run starts the shell with the command line, waits for it to exit and
// returns its exit code. Stdout and stderr are captured in memory and,
// when opts.PrintOutput is set, written to the console afterwards.
// If the shell cannot be started, a SpawnFailed result is returned and
// nothing is printed.
func (c *Client) Run(ctx context.Context, cmd *domain.ExecCommand, opts domain.Options) domain.Result {
	// #nosec G204 - the command line is built by the domain command builders
	execCmd := exec.CommandContext(ctx, c.shell.Program, c.shell.Switch, cmd.Line)
	execCmd.Dir = c.shell.Dir
	configureProcess(execCmd, c.shell, cmd.Line)

	var stdout, stderr bytes.Buffer
	execCmd.Stdout = &stdout
	execCmd.Stderr = &stderr

	if err := execCmd.Start(); err != nil {
		return domain.SpawnFailed(err)
	}

	// Wait releases the process handle and pipes on every path.
	// A non-nil error with a ProcessState is just a nonzero exit.
	if err := execCmd.Wait(); err != nil && execCmd.ProcessState == nil {
		return domain.SpawnFailed(err)
	}

	if opts.PrintOutput {
		_, _ = fmt.Fprintln(c.console, "stdout: "+stdout.String())
		_, _ = fmt.Fprintln(c.console, "stderr: "+stderr.String())
	}

	return domain.Exited(execCmd.ProcessState.ExitCode(), stdout.String(), stderr.String())
}
