package usecase

import (
	"context"

	"github.com/runoshun/netshare/internal/domain"
)

// MountShareInput contains the parameters for mounting a share.
// Fields are ordered to minimize memory padding.
type MountShareInput struct {
	Share   domain.Share   // Share to mount (required)
	Options domain.Options // Executor options
	Strict  bool           // Reject shell metacharacters before spawning
}

// MountShare is the use case for binding a drive letter to a UNC path.
type MountShare struct {
	executor domain.CommandExecutor
	logger   domain.Logger
}

// NewMountShare creates a new MountShare use case.
func NewMountShare(executor domain.CommandExecutor, logger domain.Logger) *MountShare {
	return &MountShare{
		executor: executor,
		logger:   logger,
	}
}

// Execute validates the share and runs `net use` to mount it.
// An invalid UNC path yields a ValidationFailed result (code 254)
// without spawning a process.
func (uc *MountShare) Execute(ctx context.Context, in MountShareInput) domain.Result {
	return shareCommand(ctx, uc.executor, uc.logger, "mount", in.Share, in.Strict, domain.MountCommand, in.Options)
}
