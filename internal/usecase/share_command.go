// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/netshare/internal/domain"
)

// shareCommand runs the validate → build → execute protocol shared by
// mount and unmount. Validation failures never reach the executor.
func shareCommand(
	ctx context.Context,
	executor domain.CommandExecutor,
	logger domain.Logger,
	category string,
	share domain.Share,
	strict bool,
	build func(domain.Share) *domain.ExecCommand,
	opts domain.Options,
) domain.Result {
	scope := share.Drive()

	if !domain.ValidateUNC(share) {
		logger.Warn(scope, category, fmt.Sprintf("rejected %q: %v", share.UNC, domain.ErrInvalidUNC))
		return domain.ValidationFailed(domain.ErrInvalidUNC)
	}
	if strict {
		if err := domain.CheckShellSafe(share); err != nil {
			logger.Warn(scope, category, fmt.Sprintf("rejected %q: %v", share.UNC, err))
			return domain.ValidationFailed(err)
		}
	}

	logger.Debug(scope, category, fmt.Sprintf("running net use for %s user=%q", share.UNC, share.Credentials.Username))
	res := executor.Run(ctx, build(share), opts)

	switch res.Kind {
	case domain.ResultSpawnFailed:
		logger.Error(scope, category, res.Err.Error())
	case domain.ResultExited:
		if res.ExitCode == 0 {
			logger.Info(scope, category, fmt.Sprintf("%s ok", share.UNC))
		} else {
			logger.Warn(scope, category, fmt.Sprintf("%s exit=%d", share.UNC, res.ExitCode))
		}
	}

	return res
}
