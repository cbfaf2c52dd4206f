package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/sma-publisher-api/internal/models"
)

// TopicLinkRepository manages the per-course topic-to-section association map.
type TopicLinkRepository struct {
	db *sqlx.DB
}

// NewTopicLinkRepository constructs a new topic link repository.
func NewTopicLinkRepository(db *sqlx.DB) *TopicLinkRepository {
	return &TopicLinkRepository{db: db}
}

// MapByCourse returns the topic id to section id map for a course. A course
// with no links yields an empty map, not an error.
func (r *TopicLinkRepository) MapByCourse(ctx context.Context, courseID string) (map[string]string, error) {
	const query = `SELECT id, course_id, topic_id, section_id, created_at FROM topic_section_links WHERE course_id = $1`
	var links []models.TopicSectionLink
	if err := r.db.SelectContext(ctx, &links, query, courseID); err != nil {
		return nil, fmt.Errorf("list topic links: %w", err)
	}

	result := make(map[string]string, len(links))
	for _, link := range links {
		result[link.TopicID] = link.SectionID
	}
	return result, nil
}

// Upsert stores or replaces the section association for one topic.
func (r *TopicLinkRepository) Upsert(ctx context.Context, link *models.TopicSectionLink) error {
	if link.ID == "" {
		link.ID = uuid.NewString()
	}
	if link.CreatedAt.IsZero() {
		link.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO topic_section_links (id, course_id, topic_id, section_id, created_at)
		VALUES (:id, :course_id, :topic_id, :section_id, :created_at)
		ON CONFLICT (course_id, topic_id) DO UPDATE SET section_id = EXCLUDED.section_id`
	if _, err := r.db.NamedExecContext(ctx, query, link); err != nil {
		return fmt.Errorf("upsert topic link: %w", err)
	}
	return nil
}

// Delete removes the association for one topic in one course.
func (r *TopicLinkRepository) Delete(ctx context.Context, courseID, topicID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM topic_section_links WHERE course_id = $1 AND topic_id = $2`, courseID, topicID); err != nil {
		return fmt.Errorf("delete topic link: %w", err)
	}
	return nil
}
