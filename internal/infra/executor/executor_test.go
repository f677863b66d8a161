package executor

import (
	"bytes"
	"context"
	"runtime"
	"strings"
	"testing"

	"github.com/runoshun/netshare/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Run(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}

	ctx := context.Background()

	t.Run("returns zero exit code on success", func(t *testing.T) {
		client := NewClient(domain.ShellConfig{}, nil)
		res := client.Run(ctx, &domain.ExecCommand{Line: "true"}, domain.Options{})
		assert.Equal(t, domain.ResultExited, res.Kind)
		assert.Equal(t, 0, res.Code())
	})

	t.Run("propagates nonzero exit code", func(t *testing.T) {
		client := NewClient(domain.ShellConfig{}, nil)
		res := client.Run(ctx, &domain.ExecCommand{Line: "exit 3"}, domain.Options{})
		assert.Equal(t, domain.ResultExited, res.Kind)
		assert.Equal(t, 3, res.ExitCode)
		assert.Equal(t, 3, res.Code())
	})

	t.Run("runs in filesystem root", func(t *testing.T) {
		client := NewClient(domain.ShellConfig{}, nil)
		res := client.Run(ctx, &domain.ExecCommand{Line: "pwd"}, domain.Options{})
		require.True(t, res.OK())
		assert.Equal(t, "/", strings.TrimSpace(res.Stdout))
	})

	t.Run("runs in configured directory", func(t *testing.T) {
		dir := t.TempDir()
		client := NewClient(domain.ShellConfig{Dir: dir}, nil)
		res := client.Run(ctx, &domain.ExecCommand{Line: "pwd"}, domain.Options{})
		require.True(t, res.OK())
		assert.Contains(t, strings.TrimSpace(res.Stdout), dir)
	})

	t.Run("captures stdout and stderr separately", func(t *testing.T) {
		client := NewClient(domain.ShellConfig{}, nil)
		res := client.Run(ctx, &domain.ExecCommand{Line: "printf out; printf err >&2"}, domain.Options{})
		require.True(t, res.OK())
		assert.Equal(t, "out", res.Stdout)
		assert.Equal(t, "err", res.Stderr)
	})

	t.Run("prints labelled output when requested", func(t *testing.T) {
		var console bytes.Buffer
		client := NewClient(domain.ShellConfig{}, &console)
		res := client.Run(ctx, &domain.ExecCommand{Line: "printf OK"}, domain.Options{PrintOutput: true})
		require.True(t, res.OK())
		assert.Equal(t, "stdout: OK\nstderr: \n", console.String())
	})

	t.Run("prints output for failing command", func(t *testing.T) {
		var console bytes.Buffer
		client := NewClient(domain.ShellConfig{}, &console)
		res := client.Run(ctx, &domain.ExecCommand{Line: "printf denied >&2; exit 2"}, domain.Options{PrintOutput: true})
		assert.Equal(t, 2, res.Code())
		assert.Equal(t, "stdout: \nstderr: denied\n", console.String())
	})

	t.Run("prints nothing when not requested", func(t *testing.T) {
		var console bytes.Buffer
		client := NewClient(domain.ShellConfig{}, &console)
		res := client.Run(ctx, &domain.ExecCommand{Line: "printf OK"}, domain.Options{})
		require.True(t, res.OK())
		assert.Empty(t, console.String())
	})

	t.Run("spawn failure returns 1 and prints nothing", func(t *testing.T) {
		var console bytes.Buffer
		client := NewClient(domain.ShellConfig{Program: "nonexistent-shell-xyz"}, &console)
		res := client.Run(ctx, &domain.ExecCommand{Line: "printf OK"}, domain.Options{PrintOutput: true})
		assert.Equal(t, domain.ResultSpawnFailed, res.Kind)
		assert.Equal(t, 1, res.Code())
		assert.ErrorIs(t, res.Err, domain.ErrSpawnFailed)
		assert.Empty(t, console.String())
	})

	t.Run("missing working directory is a spawn failure", func(t *testing.T) {
		client := NewClient(domain.ShellConfig{Dir: "/nonexistent-dir-xyz"}, nil)
		res := client.Run(ctx, &domain.ExecCommand{Line: "true"}, domain.Options{})
		assert.Equal(t, domain.ResultSpawnFailed, res.Kind)
	})
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(domain.ShellConfig{}, nil)
	def := domain.DefaultShellConfig()

	assert.Equal(t, def.Program, client.shell.Program)
	assert.Equal(t, def.Switch, client.shell.Switch)
	assert.Equal(t, def.Dir, client.shell.Dir)
	assert.NotNil(t, client.console)
}
