package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-publisher-api/internal/models"
	appErrors "github.com/noah-isme/sma-publisher-api/pkg/errors"
	"github.com/noah-isme/sma-publisher-api/pkg/response"
)

type snapshotProvider interface {
	Load(ctx context.Context, course models.TargetCourse, token string) (models.CourseSnapshot, error)
}

// TopicHandler exposes the per-course topic pass-through for the composer.
type TopicHandler struct {
	snapshots snapshotProvider
}

// NewTopicHandler constructs a topic handler.
func NewTopicHandler(snapshots snapshotProvider) *TopicHandler {
	return &TopicHandler{snapshots: snapshots}
}

// List godoc
// @Summary List platform topics for a course
// @Tags Topics
// @Produce json
// @Param courseId path string true "Course ID"
// @Param X-Classroom-Token header string true "Classroom platform credential"
// @Success 200 {object} response.Envelope
// @Router /courses/{courseId}/topics [get]
func (h *TopicHandler) List(c *gin.Context) {
	token := strings.TrimSpace(c.GetHeader(classroomTokenHeader))
	if token == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrPrecondition, "classroom credential missing"))
		return
	}

	course := models.TargetCourse{ID: c.Param("courseId")}
	snapshot, err := h.snapshots.Load(c.Request.Context(), course, token)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, snapshot.Topics, nil)
}
