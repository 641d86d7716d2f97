package jobs

import (
	"context"
	"fmt"

	"cuboids/internal/core/application/usecases/queries"

	"github.com/rs/zerolog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	capacityAuditJob *CapacityAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	auditHandler queries.FindOverfilledBagsQueryHandler,
	auditSchedule string,
	logger zerolog.Logger,
) *JobManager {
	return &JobManager{
		capacityAuditJob: NewCapacityAuditJob(auditHandler, auditSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.capacityAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start capacity audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll(ctx context.Context) {
	jm.capacityAuditJob.Stop(ctx)
}
