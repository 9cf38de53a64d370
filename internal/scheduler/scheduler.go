// Package scheduler runs the periodic monthly summary snapshot.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"financehub/internal/logger"
	"financehub/internal/services"
)

// jobTimeout bounds a single snapshot run.
const jobTimeout = time.Minute

// Scheduler records a summary snapshot on a cron schedule.
type Scheduler struct {
	cron      *cron.Cron
	snapshots services.SnapshotServicer
	now       func() time.Time
}

// New creates a scheduler that records snapshots on spec, a standard
// five-field cron expression evaluated in UTC.
func New(spec string, snapshots services.SnapshotServicer) (*Scheduler, error) {
	log := cronLogger{logger.Get()}
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(log),
			cron.WithChain(cron.Recover(log), cron.SkipIfStillRunning(log)),
		),
		snapshots: snapshots,
		now:       time.Now,
	}
	if _, err := s.cron.AddFunc(spec, s.recordSnapshot); err != nil {
		return nil, fmt.Errorf("invalid snapshot schedule %q: %w", spec, err)
	}
	return s, nil
}

// Start runs the schedule in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the schedule and returns a context that is done once a
// running job has finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) recordSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	snapshot, err := s.snapshots.RecordSnapshot(ctx, s.now())
	if err != nil {
		logger.Get().Errorw("scheduled snapshot failed", "error", err)
		return
	}
	logger.Get().Infow("scheduled snapshot recorded",
		"year", snapshot.Year,
		"month", snapshot.Month,
		"net_worth", snapshot.NetWorth.String(),
	)
}

// cronLogger routes cron's own messages to zap.
type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
