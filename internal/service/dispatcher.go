package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-publisher-api/internal/classroom"
	"github.com/noah-isme/sma-publisher-api/internal/models"
)

// classroomAPI is the slice of the platform client the dispatcher needs.
type classroomAPI interface {
	CreateAnnouncement(ctx context.Context, courseID, token string, req classroom.AnnouncementRequest) (*classroom.CreatedPost, error)
	CreateCourseWork(ctx context.Context, courseID, token string, req classroom.CourseWorkRequest) (*classroom.CreatedPost, error)
}

// Dispatcher fans a single authored item out to every target course.
type Dispatcher struct {
	client  classroomAPI
	logger  *zap.Logger
	metrics *MetricsService
}

// NewDispatcher constructs a dispatcher.
func NewDispatcher(client classroomAPI, logger *zap.Logger, metrics *MetricsService) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{client: client, logger: logger, metrics: metrics}
}

// Dispatch issues one create call per course, strictly sequentially and in
// the order the caller selected the courses. The platform rate-limits per
// account, so the next call is not issued until the previous one completes.
// A failure on one course is recorded in its own outcome slot and never
// prevents attempts on subsequent courses.
func (d *Dispatcher) Dispatch(
	ctx context.Context,
	item models.AuthoredItem,
	courses []models.TargetCourse,
	snapshots map[string]models.CourseSnapshot,
	selection ReferenceSelection,
	token string,
) []models.DistributionOutcome {
	outcomes := make([]models.DistributionOutcome, 0, len(courses))

	for _, course := range courses {
		snapshot := snapshots[course.ID]
		targeting := ResolveTargeting(snapshot, selection)

		start := time.Now()
		err := d.createOne(ctx, item, course, snapshot, targeting, selection, token)
		duration := time.Since(start)

		outcome := models.DistributionOutcome{
			CourseID:   course.ID,
			CourseName: course.Name,
			Success:    err == nil,
		}
		if err != nil {
			outcome.Error = err.Error()
			d.logger.Warn("course create failed",
				zap.String("course_id", course.ID),
				zap.Duration("latency", duration),
				zap.Error(err),
			)
		}
		d.metrics.ObserveCourseCall(err == nil, duration)

		outcomes = append(outcomes, outcome)
	}

	return outcomes
}

func (d *Dispatcher) createOne(
	ctx context.Context,
	item models.AuthoredItem,
	course models.TargetCourse,
	snapshot models.CourseSnapshot,
	targeting models.Targeting,
	selection ReferenceSelection,
	token string,
) error {
	if !item.Kind.IsCourseWork() {
		_, err := d.client.CreateAnnouncement(ctx, course.ID, token, BuildAnnouncement(item, targeting))
		return err
	}

	topicID := ""
	if selection.Topic != nil {
		if topic, ok := MatchTopic(*selection.Topic, snapshot.Topics); ok {
			topicID = topic.ID
		}
	}

	_, err := d.client.CreateCourseWork(ctx, course.ID, token, BuildCourseWork(item, targeting, topicID))
	return err
}
