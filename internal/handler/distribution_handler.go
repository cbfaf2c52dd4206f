package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-publisher-api/internal/dto"
	"github.com/noah-isme/sma-publisher-api/internal/models"
	appErrors "github.com/noah-isme/sma-publisher-api/pkg/errors"
	"github.com/noah-isme/sma-publisher-api/pkg/response"
)

// classroomTokenHeader carries the caller's classroom platform credential.
const classroomTokenHeader = "X-Classroom-Token"

type distributionPublisher interface {
	Publish(ctx context.Context, req dto.PublishRequest, token, actor string) (*models.DistributionResult, error)
}

// DistributionHandler exposes the multi-course publish endpoint.
type DistributionHandler struct {
	service distributionPublisher
}

// NewDistributionHandler constructs a distribution handler.
func NewDistributionHandler(svc distributionPublisher) *DistributionHandler {
	return &DistributionHandler{service: svc}
}

// Publish godoc
// @Summary Publish an item to multiple courses
// @Tags Distributions
// @Accept json
// @Produce json
// @Param X-Classroom-Token header string true "Classroom platform credential"
// @Param payload body dto.PublishRequest true "Publish payload"
// @Success 200 {object} response.Envelope
// @Router /distributions [post]
func (h *DistributionHandler) Publish(c *gin.Context) {
	var req dto.PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	token := strings.TrimSpace(c.GetHeader(classroomTokenHeader))

	actor := ""
	if claims := currentClaims(c); claims != nil {
		actor = claims.UserID
	}

	result, err := h.service.Publish(c.Request.Context(), req, token, actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
