package archive

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/newsguard/newsguard/internal/config"
	"github.com/newsguard/newsguard/internal/models"
	"github.com/sirupsen/logrus"
)

const recordTimeLayout = "2006-01-02-15-04-05"

// Service archives analysis results on the configured backend
type Service struct {
	backend Archiver
}

// NewService creates an archive service for the configured backend
func NewService(cfg *config.Config) (*Service, error) {
	switch cfg.ArchiveBackend {
	case "azure":
		backend, err := NewAzureArchive(cfg.StorageAccount, cfg.StorageContainer)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Azure archive: %w", err)
		}
		logrus.Infof("Analysis archive enabled (Azure container %s)", cfg.StorageContainer)
		return &Service{backend: backend}, nil
	case "local":
		backend, err := NewLocalArchive(cfg.ArchiveDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local archive: %w", err)
		}
		logrus.Infof("Analysis archive enabled (directory %s)", cfg.ArchiveDir)
		return &Service{backend: backend}, nil
	default:
		logrus.Info("Analysis archive disabled")
		return &Service{}, nil
	}
}

// Enabled reports whether an archive backend is configured
func (s *Service) Enabled() bool {
	return s.backend != nil
}

// Record stores one analysis record, assigning identity when missing
func (s *Service) Record(record *models.AnalysisRecord) error {
	if s.backend == nil {
		return nil
	}

	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis record: %w", err)
	}

	return s.backend.Store(recordName(record), data)
}

// RecordAsync stores one analysis record without blocking the caller.
// Archive failures are logged and never surfaced to a request.
func (s *Service) RecordAsync(record *models.AnalysisRecord) {
	if s.backend == nil {
		return
	}

	go func() {
		if err := s.Record(record); err != nil {
			logrus.Errorf("Failed to archive %s record: %v", record.Kind, err)
		}
	}()
}

// Sweep deletes archived records older than the given age and
// returns how many were removed
func (s *Service) Sweep(olderThan time.Duration) (int, error) {
	if s.backend == nil {
		return 0, nil
	}

	names, err := s.backend.List("")
	if err != nil {
		return 0, fmt.Errorf("failed to list archive: %w", err)
	}

	cutoff := time.Now().UTC().Add(-olderThan)
	deleted := 0

	for _, name := range names {
		created, err := recordTime(name)
		if err != nil {
			// Fall back to the stored record for names written before
			// the timestamped naming scheme
			created, err = storedRecordTime(s.backend, name)
			if err != nil {
				logrus.Warnf("Skipping archive entry %s: %v", name, err)
				continue
			}
		}

		if created.After(cutoff) {
			continue
		}

		if err := s.backend.Delete(name); err != nil {
			logrus.Errorf("Failed to delete archived record %s: %v", name, err)
			continue
		}
		deleted++
	}

	return deleted, nil
}

func recordName(record *models.AnalysisRecord) string {
	return fmt.Sprintf("%s-%s-%s.json", record.Kind, record.CreatedAt.UTC().Format(recordTimeLayout), record.ID)
}

func recordTime(name string) (time.Time, error) {
	base := strings.TrimSuffix(name, ".json")

	i := strings.Index(base, "-")
	if i < 0 || len(base) < i+1+len(recordTimeLayout) {
		return time.Time{}, fmt.Errorf("unrecognized archive name: %s", name)
	}

	return time.Parse(recordTimeLayout, base[i+1:i+1+len(recordTimeLayout)])
}

func storedRecordTime(backend Archiver, name string) (time.Time, error) {
	data, err := backend.Retrieve(name)
	if err != nil {
		return time.Time{}, err
	}

	var record models.AnalysisRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return time.Time{}, fmt.Errorf("failed to decode record: %w", err)
	}
	if record.CreatedAt.IsZero() {
		return time.Time{}, fmt.Errorf("record %s has no creation time", name)
	}

	return record.CreatedAt, nil
}
