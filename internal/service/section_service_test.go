package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-publisher-api/internal/models"
	appErrors "github.com/noah-isme/sma-publisher-api/pkg/errors"
)

type sectionRepoStub struct {
	sections   []models.Section
	found      *models.Section
	nameExists bool
	listErr    error
	findErr    error
	createErr  error
	updateErr  error
	deleteErr  error
	created    []*models.Section
	updated    []*models.Section
	deleted    []string
}

func (s *sectionRepoStub) ListByCourse(ctx context.Context, courseID string) ([]models.Section, error) {
	return s.sections, s.listErr
}

func (s *sectionRepoStub) FindByID(ctx context.Context, id string) (*models.Section, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	if s.found == nil {
		return nil, sql.ErrNoRows
	}
	return s.found, nil
}

func (s *sectionRepoStub) ExistsByName(ctx context.Context, courseID, name, excludeID string) (bool, error) {
	return s.nameExists, nil
}

func (s *sectionRepoStub) Create(ctx context.Context, section *models.Section) error {
	s.created = append(s.created, section)
	return s.createErr
}

func (s *sectionRepoStub) Update(ctx context.Context, section *models.Section) error {
	s.updated = append(s.updated, section)
	return s.updateErr
}

func (s *sectionRepoStub) Delete(ctx context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return s.deleteErr
}

type topicLinkRepoStub struct {
	links     map[string]string
	upserted  []*models.TopicSectionLink
	deleted   []string
	upsertErr error
	deleteErr error
}

func (s *topicLinkRepoStub) MapByCourse(ctx context.Context, courseID string) (map[string]string, error) {
	return s.links, nil
}

func (s *topicLinkRepoStub) Upsert(ctx context.Context, link *models.TopicSectionLink) error {
	s.upserted = append(s.upserted, link)
	return s.upsertErr
}

func (s *topicLinkRepoStub) Delete(ctx context.Context, courseID, topicID string) error {
	s.deleted = append(s.deleted, topicID)
	return s.deleteErr
}

type invalidatorStub struct {
	courses []string
}

func (s *invalidatorStub) Invalidate(ctx context.Context, courseID string) {
	s.courses = append(s.courses, courseID)
}

func TestSectionServiceCreate(t *testing.T) {
	repo := &sectionRepoStub{}
	links := &topicLinkRepoStub{}
	inv := &invalidatorStub{}
	svc := NewSectionService(repo, links, inv, nil, nil)

	section, err := svc.Create(context.Background(), "course-1", CreateSectionRequest{
		Name:       "Group A",
		Color:      "#ff0000",
		StudentIDs: []string{"s1", "s2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "course-1", section.CourseID)
	assert.Equal(t, "Group A", section.Name)
	require.Len(t, repo.created, 1)
	assert.Equal(t, []string{"course-1"}, inv.courses)
}

func TestSectionServiceCreateDuplicateName(t *testing.T) {
	repo := &sectionRepoStub{nameExists: true}
	svc := NewSectionService(repo, &topicLinkRepoStub{}, nil, nil, nil)

	_, err := svc.Create(context.Background(), "course-1", CreateSectionRequest{
		Name:       "Group A",
		StudentIDs: []string{"s1"},
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
	assert.Empty(t, repo.created)
}

func TestSectionServiceCreateValidation(t *testing.T) {
	repo := &sectionRepoStub{}
	svc := NewSectionService(repo, &topicLinkRepoStub{}, nil, nil, nil)

	_, err := svc.Create(context.Background(), "course-1", CreateSectionRequest{Name: "Group A"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestSectionServiceUpdateWrongCourse(t *testing.T) {
	repo := &sectionRepoStub{found: &models.Section{ID: "sec-1", CourseID: "other-course"}}
	svc := NewSectionService(repo, &topicLinkRepoStub{}, nil, nil, nil)

	_, err := svc.Update(context.Background(), "course-1", "sec-1", UpdateSectionRequest{
		Name:       "Group A",
		StudentIDs: []string{"s1"},
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Empty(t, repo.updated)
}

func TestSectionServiceUpdate(t *testing.T) {
	repo := &sectionRepoStub{found: &models.Section{ID: "sec-1", CourseID: "course-1", Name: "Old"}}
	inv := &invalidatorStub{}
	svc := NewSectionService(repo, &topicLinkRepoStub{}, inv, nil, nil)

	section, err := svc.Update(context.Background(), "course-1", "sec-1", UpdateSectionRequest{
		Name:       "New",
		StudentIDs: []string{"s1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "New", section.Name)
	require.Len(t, repo.updated, 1)
	assert.Equal(t, []string{"course-1"}, inv.courses)
}

func TestSectionServiceDeleteNotFound(t *testing.T) {
	repo := &sectionRepoStub{}
	svc := NewSectionService(repo, &topicLinkRepoStub{}, nil, nil, nil)

	err := svc.Delete(context.Background(), "course-1", "sec-404")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestSectionServiceDelete(t *testing.T) {
	repo := &sectionRepoStub{found: &models.Section{ID: "sec-1", CourseID: "course-1"}}
	inv := &invalidatorStub{}
	svc := NewSectionService(repo, &topicLinkRepoStub{}, inv, nil, nil)

	err := svc.Delete(context.Background(), "course-1", "sec-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"sec-1"}, repo.deleted)
	assert.Equal(t, []string{"course-1"}, inv.courses)
}

func TestSectionServiceLinkTopic(t *testing.T) {
	repo := &sectionRepoStub{found: &models.Section{ID: "sec-1", CourseID: "course-1"}}
	links := &topicLinkRepoStub{}
	inv := &invalidatorStub{}
	svc := NewSectionService(repo, links, inv, nil, nil)

	err := svc.LinkTopic(context.Background(), "course-1", LinkTopicRequest{TopicID: "topic-1", SectionID: "sec-1"})
	require.NoError(t, err)
	require.Len(t, links.upserted, 1)
	assert.Equal(t, "topic-1", links.upserted[0].TopicID)
	assert.Equal(t, []string{"course-1"}, inv.courses)
}

func TestSectionServiceLinkTopicCrossCourse(t *testing.T) {
	repo := &sectionRepoStub{found: &models.Section{ID: "sec-1", CourseID: "other-course"}}
	links := &topicLinkRepoStub{}
	svc := NewSectionService(repo, links, nil, nil, nil)

	err := svc.LinkTopic(context.Background(), "course-1", LinkTopicRequest{TopicID: "topic-1", SectionID: "sec-1"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Empty(t, links.upserted)
}

func TestSectionServiceUnlinkTopic(t *testing.T) {
	links := &topicLinkRepoStub{}
	inv := &invalidatorStub{}
	svc := NewSectionService(&sectionRepoStub{}, links, inv, nil, nil)

	err := svc.UnlinkTopic(context.Background(), "course-1", "topic-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"topic-1"}, links.deleted)
	assert.Equal(t, []string{"course-1"}, inv.courses)
}

func TestSectionServiceListError(t *testing.T) {
	repo := &sectionRepoStub{listErr: errors.New("db down")}
	svc := NewSectionService(repo, &topicLinkRepoStub{}, nil, nil, nil)

	_, err := svc.List(context.Background(), "course-1")
	require.Error(t, err)
}
