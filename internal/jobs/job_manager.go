package jobs

import (
	"fmt"
)

// JobManager starts and stops the scheduled jobs of the process.
type JobManager struct {
	orderDispatchJob *OrderDispatchJob
}

func NewJobManager(orderDispatchJob *OrderDispatchJob) *JobManager {
	return &JobManager{orderDispatchJob: orderDispatchJob}
}

func (jm *JobManager) StartAll() error {
	if err := jm.orderDispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start order dispatch job: %w", err)
	}
	return nil
}

func (jm *JobManager) StopAll() {
	jm.orderDispatchJob.Stop()
}
