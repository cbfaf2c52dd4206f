package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-publisher-api/internal/models"
	"github.com/noah-isme/sma-publisher-api/internal/service"
	appErrors "github.com/noah-isme/sma-publisher-api/pkg/errors"
)

type sectionServiceMock struct {
	sections     []models.Section
	section      *models.Section
	listErr      error
	createErr    error
	updateErr    error
	deleteErr    error
	linkErr      error
	unlinkErr    error
	listCalled   bool
	createCalled bool
	deleteCalled bool
	linkCalled   bool
	lastCourseID string
}

func (m *sectionServiceMock) List(ctx context.Context, courseID string) ([]models.Section, error) {
	m.listCalled = true
	m.lastCourseID = courseID
	return m.sections, m.listErr
}

func (m *sectionServiceMock) Create(ctx context.Context, courseID string, req service.CreateSectionRequest) (*models.Section, error) {
	m.createCalled = true
	m.lastCourseID = courseID
	return m.section, m.createErr
}

func (m *sectionServiceMock) Update(ctx context.Context, courseID, id string, req service.UpdateSectionRequest) (*models.Section, error) {
	return m.section, m.updateErr
}

func (m *sectionServiceMock) Delete(ctx context.Context, courseID, id string) error {
	m.deleteCalled = true
	return m.deleteErr
}

func (m *sectionServiceMock) LinkTopic(ctx context.Context, courseID string, req service.LinkTopicRequest) error {
	m.linkCalled = true
	return m.linkErr
}

func (m *sectionServiceMock) UnlinkTopic(ctx context.Context, courseID, topicID string) error {
	return m.unlinkErr
}

func TestSectionHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &sectionServiceMock{
		sections: []models.Section{{ID: "sec-1", Name: "Group A"}},
	}
	handler := NewSectionHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/courses/c1/sections", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "courseId", Value: "c1"}}

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockSvc.listCalled)
	assert.Equal(t, "c1", mockSvc.lastCourseID)
}

func TestSectionHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &sectionServiceMock{
		section: &models.Section{ID: "sec-1", CourseID: "c1", Name: "Group A"},
	}
	handler := NewSectionHandler(mockSvc)

	payload, _ := json.Marshal(service.CreateSectionRequest{Name: "Group A", StudentIDs: []string{"s1"}})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/courses/c1/sections", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "courseId", Value: "c1"}}

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, mockSvc.createCalled)
}

func TestSectionHandlerCreateInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &sectionServiceMock{}
	handler := NewSectionHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/courses/c1/sections", bytes.NewBufferString(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "courseId", Value: "c1"}}

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockSvc.createCalled)
}

func TestSectionHandlerCreateConflict(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &sectionServiceMock{
		createErr: appErrors.Clone(appErrors.ErrConflict, "a section with this name already exists in the course"),
	}
	handler := NewSectionHandler(mockSvc)

	payload, _ := json.Marshal(service.CreateSectionRequest{Name: "Group A", StudentIDs: []string{"s1"}})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/courses/c1/sections", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "courseId", Value: "c1"}}

	handler.Create(c)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestSectionHandlerDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &sectionServiceMock{}
	handler := NewSectionHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodDelete, "/courses/c1/sections/sec-1", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "courseId", Value: "c1"}, {Key: "id", Value: "sec-1"}}

	handler.Delete(c)
	c.Writer.WriteHeaderNow()
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, mockSvc.deleteCalled)
}

func TestSectionHandlerLinkTopic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &sectionServiceMock{}
	handler := NewSectionHandler(mockSvc)

	payload, _ := json.Marshal(service.LinkTopicRequest{TopicID: "topic-1", SectionID: "sec-1"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPut, "/courses/c1/topic-links", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "courseId", Value: "c1"}}

	handler.LinkTopic(c)
	c.Writer.WriteHeaderNow()
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, mockSvc.linkCalled)
}
