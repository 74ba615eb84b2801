// Package jobs runs recurring work against the hotel store.
package jobs

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/robfig/cron/v3"

	"grandstay/internal/models"
)

// DefaultCleaningSchedule runs the daily cleaning round at 09:00.
const DefaultCleaningSchedule = "0 9 * * *"

// Cleaner schedules housekeeping for occupied rooms.
type Cleaner interface {
	ScheduleDailyCleaning() []models.Task
}

// Publisher announces work to the surfaces.
type Publisher interface {
	Publish(msg string)
}

// PublisherFunc adapts a function to Publisher.
type PublisherFunc func(msg string)

func (f PublisherFunc) Publish(msg string) { f(msg) }

// Scheduler owns the cron runner.
type Scheduler struct {
	cron      *cron.Cron
	cleaner   Cleaner
	publisher Publisher
	logger    *slog.Logger
}

// NewScheduler creates a stopped scheduler. publisher may be nil.
func NewScheduler(cleaner Cleaner, publisher Publisher, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scheduler{
		cron:      cron.New(),
		cleaner:   cleaner,
		publisher: publisher,
		logger:    logger,
	}
}

// Start registers the daily cleaning round on spec and starts the runner.
func (s *Scheduler) Start(spec string) error {
	if spec == "" {
		spec = DefaultCleaningSchedule
	}
	if _, err := s.cron.AddFunc(spec, func() { s.RunDailyCleaning() }); err != nil {
		return fmt.Errorf("schedule daily cleaning %q: %w", spec, err)
	}
	s.cron.Start()
	s.logger.Info("cron jobs initialized", "daily_cleaning", spec)
	return nil
}

// Stop halts the runner; the returned context is done once running jobs finish.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// RunDailyCleaning performs one cleaning round and returns the number of
// tasks scheduled.
func (s *Scheduler) RunDailyCleaning() int {
	added := s.cleaner.ScheduleDailyCleaning()
	s.logger.Info("daily cleaning scheduled", "tasks", len(added))
	if len(added) > 0 && s.publisher != nil {
		s.publisher.Publish(fmt.Sprintf("Daily cleaning scheduled for %d rooms", len(added)))
	}
	return len(added)
}
