package commands

import (
	"context"

	"go.uber.org/zap"
)

// inTx runs fn inside a transaction of uow and commits when fn succeeds.
func inTx[U TxManager](ctx context.Context, uow U, fn func(U) error) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// persist writes a change that has already been applied in memory. Store
// failures are logged and swallowed: the in-memory state stays authoritative
// for the running process.
func persist[U TxManager](ctx context.Context, logger *zap.Logger, operation string, uow U, fn func(U) error) {
	if err := inTx(ctx, uow, fn); err != nil {
		logger.Warn("failed to persist change, keeping in-memory state",
			zap.String("operation", operation),
			zap.Error(err),
		)
	}
}
