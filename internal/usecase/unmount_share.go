package usecase

import (
	"context"

	"github.com/runoshun/netshare/internal/domain"
)

// UnmountShareInput contains the parameters for unmounting a share.
// Fields are ordered to minimize memory padding.
type UnmountShareInput struct {
	Share   domain.Share   // Share to unmount; UNC is validated but not passed to net use
	Options domain.Options // Executor options
	Strict  bool           // Reject shell metacharacters before spawning
}

// UnmountShare is the use case for releasing a drive letter binding.
type UnmountShare struct {
	executor domain.CommandExecutor
	logger   domain.Logger
}

// NewUnmountShare creates a new UnmountShare use case.
func NewUnmountShare(executor domain.CommandExecutor, logger domain.Logger) *UnmountShare {
	return &UnmountShare{
		executor: executor,
		logger:   logger,
	}
}

// Execute validates the share and runs `net use /D /Y` on its letter.
// The external exit code is propagated as-is, so unmounting an
// already-released letter simply reports whatever net use returns.
func (uc *UnmountShare) Execute(ctx context.Context, in UnmountShareInput) domain.Result {
	return shareCommand(ctx, uc.executor, uc.logger, "unmount", in.Share, in.Strict, domain.UnmountCommand, in.Options)
}
