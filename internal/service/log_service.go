package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-publisher-api/internal/models"
	appErrors "github.com/noah-isme/sma-publisher-api/pkg/errors"
	"github.com/noah-isme/sma-publisher-api/pkg/export"
)

type logRepository interface {
	List(ctx context.Context, filter models.DistributionLogFilter) ([]models.DistributionLog, int, error)
	Create(ctx context.Context, log *models.DistributionLog) error
}

// LogService exposes the distribution history and its exports.
type LogService struct {
	repo           logRepository
	csv            *export.CSVExporter
	pdf            *export.PDFExporter
	exportsEnabled bool
	logger         *zap.Logger
}

// NewLogService constructs the service.
func NewLogService(repo logRepository, exportsEnabled bool, logger *zap.Logger) *LogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogService{
		repo:           repo,
		csv:            export.NewCSVExporter(),
		pdf:            export.NewPDFExporter(),
		exportsEnabled: exportsEnabled,
		logger:         logger,
	}
}

// List returns history rows with pagination.
func (s *LogService) List(ctx context.Context, filter models.DistributionLogFilter) ([]models.DistributionLog, *models.Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	rows, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list distribution logs")
	}
	pagination := &models.Pagination{Page: filter.Page, PageSize: filter.PageSize, TotalCount: total}
	return rows, pagination, nil
}

// Export renders the filtered history as CSV or PDF and returns the bytes,
// content type and a suggested filename.
func (s *LogService) Export(ctx context.Context, filter models.DistributionLogFilter, format string) ([]byte, string, string, error) {
	if !s.exportsEnabled {
		return nil, "", "", appErrors.Clone(appErrors.ErrForbidden, "exports are disabled")
	}

	filter.Page = 1
	filter.PageSize = 100
	rows, _, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, "", "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load distribution logs")
	}

	dataset := buildLogDataset(rows)
	stamp := time.Now().UTC().Format("20060102-150405")

	switch format {
	case "csv":
		raw, err := s.csv.Render(dataset)
		if err != nil {
			return nil, "", "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return raw, "text/csv", fmt.Sprintf("distributions-%s.csv", stamp), nil
	case "pdf":
		raw, err := s.pdf.Render(dataset, "Distribution History")
		if err != nil {
			return nil, "", "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return raw, "application/pdf", fmt.Sprintf("distributions-%s.pdf", stamp), nil
	default:
		return nil, "", "", appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	}
}

func buildLogDataset(rows []models.DistributionLog) export.Dataset {
	dataset := export.Dataset{
		Headers: []string{"Date", "Kind", "Title", "Status", "Targets", "Succeeded", "Failed", "By"},
	}
	for _, row := range rows {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Date":      row.CreatedAt.UTC().Format("2006-01-02 15:04"),
			"Kind":      string(row.ItemKind),
			"Title":     row.ItemTitle,
			"Status":    string(row.Status),
			"Targets":   strconv.Itoa(row.TargetCount),
			"Succeeded": strconv.Itoa(row.Succeeded),
			"Failed":    strconv.Itoa(row.Failed),
			"By":        row.CreatedBy,
		})
	}
	return dataset
}
