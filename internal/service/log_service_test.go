package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-publisher-api/internal/models"
	appErrors "github.com/noah-isme/sma-publisher-api/pkg/errors"
)

type logRepoStub struct {
	rows       []models.DistributionLog
	total      int
	listErr    error
	lastFilter models.DistributionLogFilter
}

func (s *logRepoStub) List(ctx context.Context, filter models.DistributionLogFilter) ([]models.DistributionLog, int, error) {
	s.lastFilter = filter
	return s.rows, s.total, s.listErr
}

func (s *logRepoStub) Create(ctx context.Context, log *models.DistributionLog) error {
	return nil
}

func TestLogServiceListDefaultsPagination(t *testing.T) {
	repo := &logRepoStub{rows: []models.DistributionLog{{ID: "log-1"}}, total: 1}
	svc := NewLogService(repo, false, nil)

	rows, pagination, err := svc.List(context.Background(), models.DistributionLogFilter{})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 20, pagination.PageSize)
	assert.Equal(t, 1, pagination.TotalCount)
	assert.Equal(t, 1, repo.lastFilter.Page)
	assert.Equal(t, 20, repo.lastFilter.PageSize)
}

func TestLogServiceListError(t *testing.T) {
	repo := &logRepoStub{listErr: errors.New("db down")}
	svc := NewLogService(repo, false, nil)

	_, _, err := svc.List(context.Background(), models.DistributionLogFilter{})
	require.Error(t, err)
}

func TestLogServiceExportDisabled(t *testing.T) {
	svc := NewLogService(&logRepoStub{}, false, nil)

	_, _, _, err := svc.Export(context.Background(), models.DistributionLogFilter{}, "csv")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErr.Code)
}

func TestLogServiceExportCSV(t *testing.T) {
	repo := &logRepoStub{rows: []models.DistributionLog{{
		ItemKind:    models.ItemKindAnnouncement,
		ItemTitle:   "Exam notice",
		Status:      models.DistributionComplete,
		Succeeded:   3,
		TargetCount: 3,
		CreatedBy:   "teacher-1",
		CreatedAt:   time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC),
	}}}
	svc := NewLogService(repo, true, nil)

	raw, contentType, filename, err := svc.Export(context.Background(), models.DistributionLogFilter{}, "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.True(t, strings.HasPrefix(filename, "distributions-"))
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	content := string(raw)
	assert.Contains(t, content, "Exam notice")
	assert.Contains(t, content, "COMPLETE_SUCCESS")
	assert.Contains(t, content, "teacher-1")
}

func TestLogServiceExportPDF(t *testing.T) {
	repo := &logRepoStub{rows: []models.DistributionLog{{
		ItemKind:  models.ItemKindAssignment,
		ItemTitle: "Worksheet",
		Status:    models.DistributionPartial,
		CreatedAt: time.Now(),
	}}}
	svc := NewLogService(repo, true, nil)

	raw, contentType, filename, err := svc.Export(context.Background(), models.DistributionLogFilter{}, "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, strings.HasSuffix(filename, ".pdf"))
	assert.NotEmpty(t, raw)
}

func TestLogServiceExportUnknownFormat(t *testing.T) {
	svc := NewLogService(&logRepoStub{}, true, nil)

	_, _, _, err := svc.Export(context.Background(), models.DistributionLogFilter{}, "xlsx")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}
