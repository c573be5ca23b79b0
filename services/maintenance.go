package services

import (
	"context"
	"log/slog"
	"time"
)

// MaintenanceScheduler runs the daily check-in reset at local midnight.
type MaintenanceScheduler struct {
	roster   RosterService
	location *time.Location
	logger   *slog.Logger
	now      func() time.Time
	after    func(time.Duration) <-chan time.Time
}

func NewMaintenanceScheduler(roster RosterService, location *time.Location, logger *slog.Logger) *MaintenanceScheduler {
	if location == nil {
		location = time.UTC
	}
	return &MaintenanceScheduler{
		roster:   roster,
		location: location,
		logger:   logger,
		now:      time.Now,
		after:    time.After,
	}
}

// NextMidnight returns the first midnight in loc strictly after now.
// The date arithmetic keeps it correct across DST changes.
func NextMidnight(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, loc)
}

// Run blocks until ctx is cancelled.
func (m *MaintenanceScheduler) Run(ctx context.Context) {
	for {
		next := NextMidnight(m.now(), m.location)
		m.logger.InfoContext(ctx, "daily reset scheduled", slog.Time("next_run", next))

		select {
		case <-ctx.Done():
			m.logger.InfoContext(ctx, "maintenance scheduler stopped")
			return
		case <-m.after(next.Sub(m.now())):
			m.RunOnce(ctx)
		}
	}
}

// RunOnce performs the reset and logs the outcome.
func (m *MaintenanceScheduler) RunOnce(ctx context.Context) {
	n, err := m.roster.ResetDailyStatus(ctx)
	if err != nil {
		m.logger.ErrorContext(ctx, "daily reset failed", slog.Any("error", err))
		return
	}
	m.logger.InfoContext(ctx, "daily reset complete", slog.Int64("participants_reset", n))
}
