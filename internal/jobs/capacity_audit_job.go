package jobs

import (
	"context"
	"fmt"

	"cuboids/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// CapacityAuditJob periodically looks for bags that hold more than their
// volume. The capacity check runs under a row lock, so a hit means rows were
// written around it (manual SQL, an older release). The job only reports.
type CapacityAuditJob struct {
	handler  queries.FindOverfilledBagsQueryHandler
	schedule string
	cron     *cron.Cron
	logger   zerolog.Logger
}

// NewCapacityAuditJob creates the audit job. schedule is a cron expression
// with a leading seconds field, e.g. "0 */5 * * * *".
func NewCapacityAuditJob(
	handler queries.FindOverfilledBagsQueryHandler,
	schedule string,
	logger zerolog.Logger,
) *CapacityAuditJob {
	return &CapacityAuditJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With().Str("component", "capacity_audit_job").Logger(),
	}
}

// Start schedules the audit.
func (j *CapacityAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		if _, err := j.RunOnce(context.Background()); err != nil {
			j.logger.Error().Err(err).Msg("Capacity audit failed")
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info().Str("schedule", j.schedule).Msg("Capacity audit job started")
	return nil
}

// Stop stops scheduling and waits for a running audit to finish or ctx to
// expire.
func (j *CapacityAuditJob) Stop(ctx context.Context) {
	select {
	case <-j.cron.Stop().Done():
	case <-ctx.Done():
	}
	j.logger.Info().Msg("Capacity audit job stopped")
}

// RunOnce performs a single audit and logs every overfilled bag.
func (j *CapacityAuditJob) RunOnce(ctx context.Context) ([]queries.BagSummary, error) {
	overfilled, err := j.handler.Handle(ctx, queries.NewFindOverfilledBagsQuery())
	if err != nil {
		return nil, err
	}

	for _, b := range overfilled {
		j.logger.Warn().
			Int64("bag_id", b.ID.Int64()).
			Float64("volume", b.Volume).
			Float64("payload_volume", b.PayloadVolume).
			Msg("Bag holds more than its volume")
	}

	return overfilled, nil
}
