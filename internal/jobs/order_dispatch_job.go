package jobs

import (
	"context"
	"errors"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/services"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const DefaultDispatchSchedule = "@every 10s"

// OrderDispatchJob hands queued orders to available delivery people on a
// schedule, so orders do not wait for a merchant to dispatch them.
type OrderDispatchJob struct {
	handler  commands.AssignOrderCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewOrderDispatchJob accepts standard five-field specs, specs with a
// leading seconds field and descriptors such as "@every 30s".
func NewOrderDispatchJob(handler commands.AssignOrderCommandHandler, schedule string, logger *zap.Logger) *OrderDispatchJob {
	if schedule == "" {
		schedule = DefaultDispatchSchedule
	}

	logger = logger.With(zap.String("component", "order_dispatch_job"))
	parser := cron.NewParser(
		cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)

	return &OrderDispatchJob{
		handler:  handler,
		schedule: schedule,
		cron: cron.New(
			cron.WithParser(parser),
			cron.WithChain(cron.SkipIfStillRunning(cronLogger{logger.Sugar()})),
		),
		logger: logger,
	}
}

func (j *OrderDispatchJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("order dispatch job started", zap.String("schedule", j.schedule))
	return nil
}

// RunOnce dispatches queued orders, oldest first, until the queue is empty
// or nobody is free. Returns how many orders were assigned.
func (j *OrderDispatchJob) RunOnce(ctx context.Context) int {
	assigned := 0
	for {
		a, err := j.handler.Handle(ctx, commands.NewAssignNextOrderCommand())
		switch {
		case err == nil:
			assigned++
			j.logger.Info("order dispatched",
				zap.Stringer("order_id", a.Order.ID()),
				zap.String("courier", a.Courier.Username()),
			)
			continue
		case errors.Is(err, commands.ErrNoPendingOrders), errors.Is(err, services.ErrNoCapacity):
			// expected: nothing to do until the next tick
		default:
			j.logger.Error("order dispatch failed", zap.Error(err))
		}
		return assigned
	}
}

// Stop waits for a running dispatch to finish.
func (j *OrderDispatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("order dispatch job stopped")
}
