package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-publisher-api/internal/models"
	"github.com/noah-isme/sma-publisher-api/internal/service"
	appErrors "github.com/noah-isme/sma-publisher-api/pkg/errors"
	"github.com/noah-isme/sma-publisher-api/pkg/response"
)

type sectionManager interface {
	List(ctx context.Context, courseID string) ([]models.Section, error)
	Create(ctx context.Context, courseID string, req service.CreateSectionRequest) (*models.Section, error)
	Update(ctx context.Context, courseID, id string, req service.UpdateSectionRequest) (*models.Section, error)
	Delete(ctx context.Context, courseID, id string) error
	LinkTopic(ctx context.Context, courseID string, req service.LinkTopicRequest) error
	UnlinkTopic(ctx context.Context, courseID, topicID string) error
}

// SectionHandler exposes section registry CRUD endpoints.
type SectionHandler struct {
	service sectionManager
}

// NewSectionHandler constructs a section handler.
func NewSectionHandler(svc sectionManager) *SectionHandler {
	return &SectionHandler{service: svc}
}

// List godoc
// @Summary List sections for a course
// @Tags Sections
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /courses/{courseId}/sections [get]
func (h *SectionHandler) List(c *gin.Context) {
	sections, err := h.service.List(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sections, nil)
}

// Create godoc
// @Summary Create section
// @Tags Sections
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param payload body service.CreateSectionRequest true "Section payload"
// @Success 201 {object} response.Envelope
// @Router /courses/{courseId}/sections [post]
func (h *SectionHandler) Create(c *gin.Context) {
	var req service.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	section, err := h.service.Create(c.Request.Context(), c.Param("courseId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, section)
}

// Update godoc
// @Summary Update section
// @Tags Sections
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param id path string true "Section ID"
// @Param payload body service.UpdateSectionRequest true "Section payload"
// @Success 200 {object} response.Envelope
// @Router /courses/{courseId}/sections/{id} [put]
func (h *SectionHandler) Update(c *gin.Context) {
	var req service.UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	section, err := h.service.Update(c.Request.Context(), c.Param("courseId"), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, section, nil)
}

// Delete godoc
// @Summary Delete section
// @Tags Sections
// @Produce json
// @Param courseId path string true "Course ID"
// @Param id path string true "Section ID"
// @Success 204
// @Router /courses/{courseId}/sections/{id} [delete]
func (h *SectionHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("courseId"), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// LinkTopic godoc
// @Summary Link a topic to a default section
// @Tags Sections
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param payload body service.LinkTopicRequest true "Link payload"
// @Success 204
// @Router /courses/{courseId}/topic-links [put]
func (h *SectionHandler) LinkTopic(c *gin.Context) {
	var req service.LinkTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.service.LinkTopic(c.Request.Context(), c.Param("courseId"), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// UnlinkTopic godoc
// @Summary Remove a topic's default section link
// @Tags Sections
// @Produce json
// @Param courseId path string true "Course ID"
// @Param topicId path string true "Topic ID"
// @Success 204
// @Router /courses/{courseId}/topic-links/{topicId} [delete]
func (h *SectionHandler) UnlinkTopic(c *gin.Context) {
	if err := h.service.UnlinkTopic(c.Request.Context(), c.Param("courseId"), c.Param("topicId")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
