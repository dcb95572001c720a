package cmd

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/adapters/out/persistence"
	"foodorder/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ConnectDatabase opens the store and migrates it, retrying with exponential
// backoff until cfg.DBConnectTimeout elapses. Configuration errors are not
// retried.
func ConnectDatabase(ctx context.Context, cfg Config, logger *zap.Logger) (*gorm.DB, error) {
	b := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(500*time.Millisecond),
		backoff.WithMaxInterval(5*time.Second),
		backoff.WithMaxElapsedTime(cfg.DBConnectTimeout),
		backoff.WithRandomizationFactor(0.5),
		backoff.WithMultiplier(2),
	)

	var db *gorm.DB
	operation := func() error {
		var err error
		db, err = persistence.Open(ctx, cfg.Database, logger)
		if errors.Is(err, errs.ErrValueIsInvalid) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, next time.Duration) {
		logger.Warn("store unavailable, retrying",
			zap.String("driver", cfg.Database.Driver),
			zap.Duration("next_attempt_in", next),
			zap.Error(err),
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify); err != nil {
		return nil, err
	}

	if err := persistence.Migrate(db); err != nil {
		_ = persistence.Close(db)
		return nil, err
	}
	return db, nil
}
