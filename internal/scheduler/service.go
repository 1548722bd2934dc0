package scheduler

import (
	"time"

	"github.com/newsguard/newsguard/internal/archive"
	"github.com/newsguard/newsguard/internal/config"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Service schedules the archive retention sweep
type Service struct {
	config  *config.Config
	archive *archive.Service
	cron    *cron.Cron
}

// NewService creates a new scheduler service
func NewService(cfg *config.Config, archiveService *archive.Service) *Service {
	return &Service{
		config:  cfg,
		archive: archiveService,
		cron:    cron.New(cron.WithSeconds()),
	}
}

// Start begins the scheduled retention sweep
func (s *Service) Start() error {
	if !s.archive.Enabled() {
		logrus.Info("Analysis archive disabled, retention sweep not scheduled")
		return nil
	}

	// Sweep daily at 03:30 UTC
	_, err := s.cron.AddFunc("0 30 3 * * *", s.runSweep)
	if err != nil {
		return err
	}

	s.cron.Start()
	logrus.Infof("Retention sweep scheduled, keeping %d days of archived analyses", s.config.RetentionDays)
	return nil
}

func (s *Service) runSweep() {
	logrus.Info("Starting archive retention sweep")

	retention := time.Duration(s.config.RetentionDays) * 24 * time.Hour
	deleted, err := s.archive.Sweep(retention)
	if err != nil {
		logrus.Errorf("Archive retention sweep failed: %v", err)
		return
	}

	logrus.Infof("Archive retention sweep removed %d records", deleted)
}

// Stop stops the scheduler
func (s *Service) Stop() {
	if s.cron != nil {
		s.cron.Stop()
		logrus.Info("Scheduler stopped")
	}
}
