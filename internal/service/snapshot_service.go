package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-publisher-api/internal/classroom"
	"github.com/noah-isme/sma-publisher-api/internal/models"
	appErrors "github.com/noah-isme/sma-publisher-api/pkg/errors"
)

type sectionReader interface {
	ListByCourse(ctx context.Context, courseID string) ([]models.Section, error)
}

type topicLinkReader interface {
	MapByCourse(ctx context.Context, courseID string) (map[string]string, error)
}

type topicLister interface {
	ListTopics(ctx context.Context, courseID, token string) ([]classroom.Topic, error)
}

type snapshotCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// SnapshotService assembles the per-course Section/Topic context the
// targeting core operates on. Sections and topic links come from the local
// registry; topics come from the platform. Assembled snapshots are cached in
// Redis for a short TTL and invalidated when the registry changes.
type SnapshotService struct {
	sections sectionReader
	links    topicLinkReader
	topics   topicLister
	cache    snapshotCache
	ttl      time.Duration
	logger   *zap.Logger
	metrics  *MetricsService
}

// NewSnapshotService constructs the service.
func NewSnapshotService(sections sectionReader, links topicLinkReader, topics topicLister, cache snapshotCache, ttl time.Duration, logger *zap.Logger, metrics *MetricsService) *SnapshotService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &SnapshotService{
		sections: sections,
		links:    links,
		topics:   topics,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
		metrics:  metrics,
	}
}

func snapshotKey(courseID string) string {
	return fmt.Sprintf("snapshot:%s", courseID)
}

// Load returns the snapshot for one course. Registry read failures abort the
// load; a topic list failure degrades to an empty topic list so a platform
// hiccup cannot block section-only targeting.
func (s *SnapshotService) Load(ctx context.Context, course models.TargetCourse, token string) (models.CourseSnapshot, error) {
	var snapshot models.CourseSnapshot
	if s.cache != nil {
		if err := s.cache.Get(ctx, snapshotKey(course.ID), &snapshot); err == nil {
			s.metrics.RecordSnapshotCache(true)
			snapshot.Course = course
			return snapshot, nil
		}
		s.metrics.RecordSnapshotCache(false)
	}

	sections, err := s.sections.ListByCourse(ctx, course.ID)
	if err != nil {
		return models.CourseSnapshot{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load sections")
	}

	linkMap, err := s.links.MapByCourse(ctx, course.ID)
	if err != nil {
		return models.CourseSnapshot{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load topic links")
	}

	topics, err := s.topics.ListTopics(ctx, course.ID, token)
	if err != nil {
		s.logger.Warn("topic list unavailable, proceeding without topics",
			zap.String("course_id", course.ID),
			zap.Error(err),
		)
		topics = nil
	}

	snapshot = models.CourseSnapshot{
		Course:        course,
		Sections:      sections,
		TopicSections: linkMap,
	}
	for _, topic := range topics {
		snapshot.Topics = append(snapshot.Topics, models.Topic{
			ID:       topic.TopicID,
			CourseID: topic.CourseID,
			Name:     topic.Name,
		})
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, snapshotKey(course.ID), snapshot, s.ttl); err != nil {
			s.logger.Warn("snapshot cache write failed", zap.String("course_id", course.ID), zap.Error(err))
		}
	}

	return snapshot, nil
}

// LoadAll loads snapshots for every target course, keyed by course id.
func (s *SnapshotService) LoadAll(ctx context.Context, courses []models.TargetCourse, token string) (map[string]models.CourseSnapshot, error) {
	snapshots := make(map[string]models.CourseSnapshot, len(courses))
	for _, course := range courses {
		snapshot, err := s.Load(ctx, course, token)
		if err != nil {
			return nil, err
		}
		snapshots[course.ID] = snapshot
	}
	return snapshots, nil
}

// Invalidate drops the cached snapshot for a course after a registry change.
func (s *SnapshotService) Invalidate(ctx context.Context, courseID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, snapshotKey(courseID)); err != nil {
		s.logger.Warn("snapshot invalidation failed", zap.String("course_id", courseID), zap.Error(err))
	}
}
