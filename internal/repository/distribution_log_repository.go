package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/sma-publisher-api/internal/models"
)

// DistributionLogRepository persists one history row per publish operation.
type DistributionLogRepository struct {
	db *sqlx.DB
}

// NewDistributionLogRepository constructs a new log repository.
func NewDistributionLogRepository(db *sqlx.DB) *DistributionLogRepository {
	return &DistributionLogRepository{db: db}
}

// List returns history rows matching filter criteria, newest first.
func (r *DistributionLogRepository) List(ctx context.Context, filter models.DistributionLogFilter) ([]models.DistributionLog, int, error) {
	base := "FROM distribution_logs WHERE 1=1"
	var conditions []string
	var args []interface{}

	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, filter.Status)
	}
	if filter.ItemKind != "" {
		conditions = append(conditions, fmt.Sprintf("item_kind = $%d", len(args)+1))
		args = append(args, filter.ItemKind)
	}
	if filter.CreatedBy != "" {
		conditions = append(conditions, fmt.Sprintf("created_by = $%d", len(args)+1))
		args = append(args, filter.CreatedBy)
	}

	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT id, item_kind, item_title, status, succeeded, failed, target_count, outcomes, created_by, created_at %s ORDER BY created_at DESC LIMIT %d OFFSET %d", base, size, offset)
	var logs []models.DistributionLog
	if err := r.db.SelectContext(ctx, &logs, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list distribution logs: %w", err)
	}

	for i := range logs {
		if len(logs[i].OutcomesRaw) > 0 {
			if err := json.Unmarshal(logs[i].OutcomesRaw, &logs[i].Outcomes); err != nil {
				return nil, 0, fmt.Errorf("decode outcomes for %s: %w", logs[i].ID, err)
			}
		}
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count distribution logs: %w", err)
	}
	return logs, total, nil
}

// Create persists a history row.
func (r *DistributionLogRepository) Create(ctx context.Context, log *models.DistributionLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}

	raw, err := json.Marshal(log.Outcomes)
	if err != nil {
		return fmt.Errorf("encode outcomes: %w", err)
	}
	log.OutcomesRaw = raw

	const query = `INSERT INTO distribution_logs (id, item_kind, item_title, status, succeeded, failed, target_count, outcomes, created_by, created_at)
		VALUES (:id, :item_kind, :item_title, :status, :succeeded, :failed, :target_count, :outcomes, :created_by, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, log); err != nil {
		return fmt.Errorf("create distribution log: %w", err)
	}
	return nil
}
