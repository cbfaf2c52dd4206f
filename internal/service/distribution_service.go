package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-publisher-api/internal/dto"
	"github.com/noah-isme/sma-publisher-api/internal/models"
	appErrors "github.com/noah-isme/sma-publisher-api/pkg/errors"
)

type snapshotLoader interface {
	Load(ctx context.Context, course models.TargetCourse, token string) (models.CourseSnapshot, error)
	LoadAll(ctx context.Context, courses []models.TargetCourse, token string) (map[string]models.CourseSnapshot, error)
}

type outcomeDispatcher interface {
	Dispatch(ctx context.Context, item models.AuthoredItem, courses []models.TargetCourse, snapshots map[string]models.CourseSnapshot, selection ReferenceSelection, token string) []models.DistributionOutcome
}

type logWriter interface {
	Create(ctx context.Context, log *models.DistributionLog) error
}

// DistributionService runs the publish workflow: precondition validation,
// snapshot loading, sequential fan-out, aggregation and history logging.
// Only precondition failures abort the operation; everything past dispatch
// start is reported through the aggregate result.
type DistributionService struct {
	snapshots  snapshotLoader
	dispatcher outcomeDispatcher
	logs       logWriter
	validator  *validator.Validate
	logger     *zap.Logger
	metrics    *MetricsService
	maxTargets int
}

// NewDistributionService constructs the service.
func NewDistributionService(snapshots snapshotLoader, dispatcher outcomeDispatcher, logs logWriter, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService, maxTargets int) *DistributionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxTargets <= 0 {
		maxTargets = 50
	}
	return &DistributionService{
		snapshots:  snapshots,
		dispatcher: dispatcher,
		logs:       logs,
		validator:  validate,
		logger:     logger,
		metrics:    metrics,
		maxTargets: maxTargets,
	}
}

// Publish distributes one authored item to every target course. The token is
// the caller-supplied classroom platform credential; actor identifies the
// gateway user for the history log.
func (s *DistributionService) Publish(ctx context.Context, req dto.PublishRequest, token, actor string) (*models.DistributionResult, error) {
	item := req.Item.Item()
	courses := req.Courses()

	if err := s.checkPreconditions(req, item, courses, token); err != nil {
		return nil, err
	}

	refSnapshot, err := s.snapshots.Load(ctx, s.referenceCourse(req), token)
	if err != nil {
		return nil, err
	}

	selection, err := s.resolveSelection(req, item, refSnapshot)
	if err != nil {
		return nil, err
	}

	snapshots, err := s.snapshots.LoadAll(ctx, courses, token)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	outcomes := s.dispatcher.Dispatch(ctx, item, courses, snapshots, selection, token)
	result := Aggregate(outcomes)
	s.metrics.ObserveDistribution(string(result.Status), time.Since(start))

	s.logger.Info("distribution completed",
		zap.String("kind", string(item.Kind)),
		zap.String("status", string(result.Status)),
		zap.Int("succeeded", result.Succeeded),
		zap.Int("failed", result.Failed),
	)

	s.writeLog(ctx, item, result, actor)

	return &result, nil
}

func (s *DistributionService) checkPreconditions(req dto.PublishRequest, item models.AuthoredItem, courses []models.TargetCourse, token string) error {
	if token == "" {
		return appErrors.Clone(appErrors.ErrPrecondition, "classroom credential missing")
	}
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid publish payload")
	}
	if !item.Kind.Valid() {
		return appErrors.Clone(appErrors.ErrValidation, "unknown post kind")
	}
	if len(courses) > s.maxTargets {
		return appErrors.Clone(appErrors.ErrValidation, "too many target courses")
	}
	if req.SectionID != "" && req.TopicID != "" {
		return appErrors.Clone(appErrors.ErrValidation, "choose either a section or a topic, not both")
	}

	if item.Kind == models.ItemKindAnnouncement {
		if item.Body == "" {
			return appErrors.Clone(appErrors.ErrValidation, "announcement body must not be empty")
		}
		return nil
	}

	if item.Title == "" {
		return appErrors.Clone(appErrors.ErrValidation, "title is required for assignments and questions")
	}
	if item.Kind == models.ItemKindQuestion && item.QuestionType == "" {
		return appErrors.Clone(appErrors.ErrValidation, "question type is required")
	}
	return nil
}

func (s *DistributionService) referenceCourse(req dto.PublishRequest) models.TargetCourse {
	for _, target := range req.Targets {
		if target.CourseID == req.ReferenceCourseID {
			return models.TargetCourse{ID: target.CourseID, Name: target.CourseName}
		}
	}
	return models.TargetCourse{ID: req.ReferenceCourseID}
}

// resolveSelection turns the composer's chosen ids into full reference
// entities. The ids were picked from lists this service served, so an unknown
// id means a stale composer and is rejected before any remote call is made.
func (s *DistributionService) resolveSelection(req dto.PublishRequest, item models.AuthoredItem, refSnapshot models.CourseSnapshot) (ReferenceSelection, error) {
	var selection ReferenceSelection

	if req.SectionID != "" {
		section, ok := refSnapshot.SectionByID(req.SectionID)
		if !ok {
			return selection, appErrors.Clone(appErrors.ErrValidation, "section not found in reference course")
		}
		selection.Section = &section
	}

	if req.TopicID != "" {
		topic, ok := refSnapshot.TopicByID(req.TopicID)
		if !ok {
			return selection, appErrors.Clone(appErrors.ErrValidation, "topic not found in reference course")
		}
		selection.Topic = &topic
	}

	if item.Kind.IsCourseWork() && len(refSnapshot.Topics) > 0 && req.TopicID == "" {
		return selection, appErrors.Clone(appErrors.ErrValidation, "topic selection is required for this course")
	}

	return selection, nil
}

// writeLog persists the history row. Logging is best-effort: the platform
// calls already happened, so a log failure must not turn the publish into an
// error response.
func (s *DistributionService) writeLog(ctx context.Context, item models.AuthoredItem, result models.DistributionResult, actor string) {
	if s.logs == nil {
		return
	}
	entry := &models.DistributionLog{
		ItemKind:    item.Kind,
		ItemTitle:   item.Title,
		Status:      result.Status,
		Succeeded:   result.Succeeded,
		Failed:      result.Failed,
		TargetCount: len(result.Outcomes),
		Outcomes:    result.Outcomes,
		CreatedBy:   actor,
	}
	if err := s.logs.Create(ctx, entry); err != nil {
		s.logger.Error("failed to persist distribution log", zap.Error(err))
	}
}
