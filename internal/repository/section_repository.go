package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/sma-publisher-api/internal/models"
)

// SectionRepository manages persistence for per-course sections.
type SectionRepository struct {
	db *sqlx.DB
}

// NewSectionRepository constructs a new section repository.
func NewSectionRepository(db *sqlx.DB) *SectionRepository {
	return &SectionRepository{db: db}
}

// ListByCourse returns every section configured for a course.
func (r *SectionRepository) ListByCourse(ctx context.Context, courseID string) ([]models.Section, error) {
	const query = `SELECT id, course_id, name, color, student_ids, created_at, updated_at FROM sections WHERE course_id = $1 ORDER BY name ASC`
	var sections []models.Section
	if err := r.db.SelectContext(ctx, &sections, query, courseID); err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	return sections, nil
}

// FindByID returns a section record by ID.
func (r *SectionRepository) FindByID(ctx context.Context, id string) (*models.Section, error) {
	const query = `SELECT id, course_id, name, color, student_ids, created_at, updated_at FROM sections WHERE id = $1`
	var section models.Section
	if err := r.db.GetContext(ctx, &section, query, id); err != nil {
		return nil, err
	}
	return &section, nil
}

// ExistsByName checks whether the course already has a section with the name.
func (r *SectionRepository) ExistsByName(ctx context.Context, courseID, name, excludeID string) (bool, error) {
	query := "SELECT 1 FROM sections WHERE course_id = $1 AND name = $2"
	args := []interface{}{courseID, name}
	if excludeID != "" {
		query += " AND id <> $3"
		args = append(args, excludeID)
	}
	var exists int
	if err := r.db.GetContext(ctx, &exists, query+" LIMIT 1", args...); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check section name: %w", err)
	}
	return true, nil
}

// Create persists a section record.
func (r *SectionRepository) Create(ctx context.Context, section *models.Section) error {
	if section.ID == "" {
		section.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if section.CreatedAt.IsZero() {
		section.CreatedAt = now
	}
	section.UpdatedAt = now

	const query = `INSERT INTO sections (id, course_id, name, color, student_ids, created_at, updated_at) VALUES (:id, :course_id, :name, :color, :student_ids, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, section); err != nil {
		return fmt.Errorf("create section: %w", err)
	}
	return nil
}

// Update modifies a section record.
func (r *SectionRepository) Update(ctx context.Context, section *models.Section) error {
	section.UpdatedAt = time.Now().UTC()
	const query = `UPDATE sections SET name = :name, color = :color, student_ids = :student_ids, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, section); err != nil {
		return fmt.Errorf("update section: %w", err)
	}
	return nil
}

// Delete removes a section record and any topic links pointing at it.
func (r *SectionRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM topic_section_links WHERE section_id = $1`, id); err != nil {
		return fmt.Errorf("delete section links: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sections WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete section: %w", err)
	}
	return nil
}
