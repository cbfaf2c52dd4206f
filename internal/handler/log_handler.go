package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-publisher-api/internal/models"
	"github.com/noah-isme/sma-publisher-api/pkg/response"
)

type logLister interface {
	List(ctx context.Context, filter models.DistributionLogFilter) ([]models.DistributionLog, *models.Pagination, error)
	Export(ctx context.Context, filter models.DistributionLogFilter, format string) ([]byte, string, string, error)
}

// LogHandler exposes the distribution history endpoints.
type LogHandler struct {
	service logLister
}

// NewLogHandler constructs a log handler.
func NewLogHandler(svc logLister) *LogHandler {
	return &LogHandler{service: svc}
}

func logFilterFromQuery(c *gin.Context) models.DistributionLogFilter {
	var filter models.DistributionLogFilter
	filter.Status = models.DistributionStatus(c.Query("status"))
	filter.ItemKind = models.ItemKind(c.Query("kind"))
	filter.CreatedBy = c.Query("createdBy")
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filter.PageSize = size
	}
	return filter
}

// List godoc
// @Summary List distribution history
// @Tags Distributions
// @Produce json
// @Param status query string false "Filter by status"
// @Param kind query string false "Filter by item kind"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /distributions [get]
func (h *LogHandler) List(c *gin.Context) {
	logs, pagination, err := h.service.List(c.Request.Context(), logFilterFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, logs, pagination)
}

// Export godoc
// @Summary Export distribution history
// @Tags Distributions
// @Produce octet-stream
// @Param format query string true "Export format (csv or pdf)"
// @Success 200 {file} binary
// @Router /distributions/export [get]
func (h *LogHandler) Export(c *gin.Context) {
	raw, contentType, filename, err := h.service.Export(c.Request.Context(), logFilterFromQuery(c), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, raw)
}
