package jobs

import (
	"context"
	"fmt"
	"time"

	"dispatch-portal-backend/internal/config"
	"dispatch-portal-backend/internal/logger"
	"dispatch-portal-backend/internal/service"

	"github.com/robfig/cron/v3"
)

// syncTimeout bounds one external team sync run so a hung platform call
// cannot pile up overlapping jobs.
const syncTimeout = 5 * time.Minute

// Scheduler runs the recurring background jobs of the portal. Right now
// that is the external team snapshot sync; the cron instance is shared so
// future jobs register on the same scheduler.
type Scheduler struct {
	cron          *cron.Cron
	cfg           *config.Config
	externalTeams service.ExternalTeamServiceInterface
}

// NewScheduler creates a scheduler for the configured background jobs
func NewScheduler(cfg *config.Config, externalTeams service.ExternalTeamServiceInterface) *Scheduler {
	return &Scheduler{
		cron:          cron.New(),
		cfg:           cfg,
		externalTeams: externalTeams,
	}
}

// Start registers the jobs and begins dispatching them on their schedules
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.ExternalSyncCron, s.runExternalSync); err != nil {
		return fmt.Errorf("failed to schedule external team sync: %w", err)
	}
	s.cron.Start()
	logger.New().WithField("schedule", s.cfg.ExternalSyncCron).Info("Background scheduler started")
	return nil
}

// Stop halts dispatch and waits for any running job to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.New().Info("Background scheduler stopped")
}

func (s *Scheduler) runExternalSync() {
	ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
	defer cancel()

	log := logger.New().WithField("job", "external_team_sync")
	result, err := s.externalTeams.Sync(ctx)
	if err != nil {
		log.WithError(err).Error("External team sync failed")
		return
	}
	log.WithFields(map[string]interface{}{
		"synced": result.Synced,
		"pruned": result.Pruned,
	}).Info("External team sync completed")
}
