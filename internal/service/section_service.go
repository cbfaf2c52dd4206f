package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-publisher-api/internal/models"
	appErrors "github.com/noah-isme/sma-publisher-api/pkg/errors"
)

type sectionRepository interface {
	ListByCourse(ctx context.Context, courseID string) ([]models.Section, error)
	FindByID(ctx context.Context, id string) (*models.Section, error)
	ExistsByName(ctx context.Context, courseID, name, excludeID string) (bool, error)
	Create(ctx context.Context, section *models.Section) error
	Update(ctx context.Context, section *models.Section) error
	Delete(ctx context.Context, id string) error
}

type topicLinkRepository interface {
	MapByCourse(ctx context.Context, courseID string) (map[string]string, error)
	Upsert(ctx context.Context, link *models.TopicSectionLink) error
	Delete(ctx context.Context, courseID, topicID string) error
}

type snapshotInvalidator interface {
	Invalidate(ctx context.Context, courseID string)
}

// SectionService manages the per-course section registry and topic links.
type SectionService struct {
	repo      sectionRepository
	links     topicLinkRepository
	snapshots snapshotInvalidator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSectionService constructs the service.
func NewSectionService(repo sectionRepository, links topicLinkRepository, snapshots snapshotInvalidator, validate *validator.Validate, logger *zap.Logger) *SectionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SectionService{repo: repo, links: links, snapshots: snapshots, validator: validate, logger: logger}
}

// CreateSectionRequest describes the create payload.
type CreateSectionRequest struct {
	Name       string   `json:"name" validate:"required"`
	Color      string   `json:"color"`
	StudentIDs []string `json:"student_ids" validate:"required,min=1"`
}

// UpdateSectionRequest describes the update payload.
type UpdateSectionRequest struct {
	Name       string   `json:"name" validate:"required"`
	Color      string   `json:"color"`
	StudentIDs []string `json:"student_ids" validate:"required,min=1"`
}

// LinkTopicRequest associates a topic with a default section.
type LinkTopicRequest struct {
	TopicID   string `json:"topic_id" validate:"required"`
	SectionID string `json:"section_id" validate:"required"`
}

// List returns the sections configured for one course.
func (s *SectionService) List(ctx context.Context, courseID string) ([]models.Section, error) {
	sections, err := s.repo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list sections")
	}
	return sections, nil
}

// Create registers a new section for a course.
func (s *SectionService) Create(ctx context.Context, courseID string, req CreateSectionRequest) (*models.Section, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid section payload")
	}
	exists, err := s.repo.ExistsByName(ctx, courseID, req.Name, "")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check section name")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "a section with this name already exists in the course")
	}

	section := &models.Section{
		CourseID:   courseID,
		Name:       req.Name,
		Color:      req.Color,
		StudentIDs: req.StudentIDs,
	}
	if err := s.repo.Create(ctx, section); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create section")
	}
	s.invalidate(ctx, courseID)
	return section, nil
}

// Update modifies an existing section.
func (s *SectionService) Update(ctx context.Context, courseID, id string, req UpdateSectionRequest) (*models.Section, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid section payload")
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "section not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load section")
	}
	if existing.CourseID != courseID {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "section not found in this course")
	}
	exists, err := s.repo.ExistsByName(ctx, courseID, req.Name, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check section name")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "a section with this name already exists in the course")
	}

	existing.Name = req.Name
	existing.Color = req.Color
	existing.StudentIDs = req.StudentIDs
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update section")
	}
	s.invalidate(ctx, courseID)
	return existing, nil
}

// Delete removes a section.
func (s *SectionService) Delete(ctx context.Context, courseID, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "section not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load section")
	}
	if existing.CourseID != courseID {
		return appErrors.Clone(appErrors.ErrNotFound, "section not found in this course")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete section")
	}
	s.invalidate(ctx, courseID)
	return nil
}

// LinkTopic associates a topic with a default section for one course.
func (s *SectionService) LinkTopic(ctx context.Context, courseID string, req LinkTopicRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid link payload")
	}
	section, err := s.repo.FindByID(ctx, req.SectionID)
	if err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "section not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load section")
	}
	if section.CourseID != courseID {
		return appErrors.Clone(appErrors.ErrValidation, "section belongs to a different course")
	}

	link := &models.TopicSectionLink{
		CourseID:  courseID,
		TopicID:   req.TopicID,
		SectionID: req.SectionID,
	}
	if err := s.links.Upsert(ctx, link); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to link topic")
	}
	s.invalidate(ctx, courseID)
	return nil
}

// UnlinkTopic removes a topic's default section association.
func (s *SectionService) UnlinkTopic(ctx context.Context, courseID, topicID string) error {
	if err := s.links.Delete(ctx, courseID, topicID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to unlink topic")
	}
	s.invalidate(ctx, courseID)
	return nil
}

func (s *SectionService) invalidate(ctx context.Context, courseID string) {
	if s.snapshots != nil {
		s.snapshots.Invalidate(ctx, courseID)
	}
}
