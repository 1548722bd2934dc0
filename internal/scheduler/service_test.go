package scheduler

import (
	"os"
	"testing"
	"time"

	"github.com/newsguard/newsguard/internal/archive"
	"github.com/newsguard/newsguard/internal/config"
	"github.com/newsguard/newsguard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStart_DisabledArchive(t *testing.T) {
	archiveService, err := archive.NewService(&config.Config{ArchiveBackend: "disabled"})
	require.NoError(t, err)

	s := NewService(&config.Config{RetentionDays: 90}, archiveService)
	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Empty(t, s.cron.Entries())
}

func TestStart_SchedulesSweep(t *testing.T) {
	archiveService, err := archive.NewService(&config.Config{ArchiveBackend: "local", ArchiveDir: t.TempDir()})
	require.NoError(t, err)

	s := NewService(&config.Config{RetentionDays: 90}, archiveService)
	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Len(t, s.cron.Entries(), 1)
}

func TestRunSweep(t *testing.T) {
	dir := t.TempDir()
	archiveService, err := archive.NewService(&config.Config{ArchiveBackend: "local", ArchiveDir: dir})
	require.NoError(t, err)

	old := &models.AnalysisRecord{Kind: "verification", CreatedAt: time.Now().UTC().Add(-120 * 24 * time.Hour)}
	fresh := &models.AnalysisRecord{Kind: "verification", CreatedAt: time.Now().UTC()}
	require.NoError(t, archiveService.Record(old))
	require.NoError(t, archiveService.Record(fresh))

	s := NewService(&config.Config{RetentionDays: 90}, archiveService)
	s.runSweep()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
