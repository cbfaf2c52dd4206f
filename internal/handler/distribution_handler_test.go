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

	"github.com/noah-isme/sma-publisher-api/internal/dto"
	"github.com/noah-isme/sma-publisher-api/internal/middleware"
	"github.com/noah-isme/sma-publisher-api/internal/models"
	appErrors "github.com/noah-isme/sma-publisher-api/pkg/errors"
)

type distributionServiceMock struct {
	result    *models.DistributionResult
	err       error
	called    bool
	lastReq   dto.PublishRequest
	lastToken string
	lastActor string
}

func (m *distributionServiceMock) Publish(ctx context.Context, req dto.PublishRequest, token, actor string) (*models.DistributionResult, error) {
	m.called = true
	m.lastReq = req
	m.lastToken = token
	m.lastActor = actor
	return m.result, m.err
}

func publishBody(t *testing.T) *bytes.Reader {
	t.Helper()
	payload, err := json.Marshal(dto.PublishRequest{
		Item:              dto.ItemPayload{Kind: "ANNOUNCEMENT", Body: "Exam on Friday"},
		Targets:           []dto.TargetPayload{{CourseID: "c1"}, {CourseID: "c2"}},
		ReferenceCourseID: "c1",
	})
	require.NoError(t, err)
	return bytes.NewReader(payload)
}

func TestDistributionHandlerPublish(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &distributionServiceMock{
		result: &models.DistributionResult{Status: models.DistributionComplete, Succeeded: 2},
	}
	handler := NewDistributionHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/distributions", publishBody(t))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Classroom-Token", "  platform-token  ")
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "teacher-1", Role: models.RoleTeacher})

	handler.Publish(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockSvc.called)
	assert.Equal(t, "platform-token", mockSvc.lastToken)
	assert.Equal(t, "teacher-1", mockSvc.lastActor)
	assert.Equal(t, "c1", mockSvc.lastReq.ReferenceCourseID)
}

func TestDistributionHandlerPublishInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &distributionServiceMock{}
	handler := NewDistributionHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/distributions", bytes.NewBufferString(`{"item":`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Publish(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockSvc.called)
}

func TestDistributionHandlerPublishMissingCredential(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &distributionServiceMock{
		err: appErrors.Clone(appErrors.ErrPrecondition, "classroom credential missing"),
	}
	handler := NewDistributionHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/distributions", publishBody(t))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Publish(c)
	require.Equal(t, http.StatusPreconditionFailed, w.Code)
	assert.Equal(t, "", mockSvc.lastToken)
}

func TestDistributionHandlerPublishPartialResult(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &distributionServiceMock{
		result: &models.DistributionResult{
			Status:    models.DistributionPartial,
			Succeeded: 1,
			Failed:    1,
			Outcomes: []models.DistributionOutcome{
				{CourseID: "c1", Success: true},
				{CourseID: "c2", Error: "quota exceeded"},
			},
		},
	}
	handler := NewDistributionHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/distributions", publishBody(t))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Classroom-Token", "token")
	c.Request = req

	handler.Publish(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data models.DistributionResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, models.DistributionPartial, envelope.Data.Status)
	require.Len(t, envelope.Data.Outcomes, 2)
	assert.Equal(t, "quota exceeded", envelope.Data.Outcomes[1].Error)
}
