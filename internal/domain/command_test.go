package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMountCommand(t *testing.T) {
	share := Share{
		UNC:         `\\server\share`,
		Letter:      'Z',
		Credentials: Credentials{Username: "alice", Password: "secret"},
	}

	cmd := MountCommand(share)

	assert.Equal(t, `net use Z: \\server\share /user:alice secret`, cmd.Line)
}

func TestMountCommand_EmptyCredentials(t *testing.T) {
	cmd := MountCommand(Share{UNC: `\\nas\media`, Letter: 'M'})

	assert.Equal(t, `net use M: \\nas\media /user: `, cmd.Line)
}

func TestUnmountCommand(t *testing.T) {
	tests := []struct {
		name  string
		share Share
	}{
		{name: "ignores unc", share: Share{UNC: `\\server\share`, Letter: 'Z'}},
		{name: "ignores credentials", share: Share{Letter: 'Z', Credentials: Credentials{Username: "a", Password: "b"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "net use Z: /D /Y", UnmountCommand(tt.share).Line)
		})
	}
}

func TestCheckShellSafe(t *testing.T) {
	base := Share{
		UNC:         `\\server\share`,
		Letter:      'Z',
		Credentials: Credentials{Username: "alice", Password: "secret"},
	}
	assert.NoError(t, CheckShellSafe(base))

	tests := []struct {
		name   string
		mutate func(s *Share)
	}{
		{name: "ampersand in unc", mutate: func(s *Share) { s.UNC = `\\server\share & calc` }},
		{name: "pipe in username", mutate: func(s *Share) { s.Credentials.Username = "a|b" }},
		{name: "redirect in password", mutate: func(s *Share) { s.Credentials.Password = "p>out" }},
		{name: "percent in password", mutate: func(s *Share) { s.Credentials.Password = "%PATH%" }},
		{name: "newline in password", mutate: func(s *Share) { s.Credentials.Password = "a\nb" }},
		{name: "metachar letter", mutate: func(s *Share) { s.Letter = '&' }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base
			tt.mutate(&s)
			assert.ErrorIs(t, CheckShellSafe(s), ErrUnsafeValue)
		})
	}
}

func TestDefaultShellConfig(t *testing.T) {
	cfg := DefaultShellConfig()
	assert.NotEmpty(t, cfg.Program)
	assert.NotEmpty(t, cfg.Switch)
	assert.NotEmpty(t, cfg.Dir)
	assert.False(t, cfg.Strict)
}
