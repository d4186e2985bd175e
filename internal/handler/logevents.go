package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LeonSoftLab/SupportAPI/internal/service"
)

type LogEventHandler struct {
	svc *service.LogEventService
}

func NewLogEventHandler(svc *service.LogEventService) *LogEventHandler {
	return &LogEventHandler{svc: svc}
}

// ListLogEvents godoc
// @Summary List own activity log events
// @Tags logevents
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Param startdate query string false "RFC3339 lower bound (default: 24h ago)"
// @Param enddate query string false "RFC3339 upper bound (default: now)"
// @Success 200 {array} model.LogEvent
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/logevents [get]
func (h *LogEventHandler) ListLogEvents(c *gin.Context) {
	user := GetPrincipal(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	now := time.Now().UTC()
	start := now.Add(-24 * time.Hour)
	end := now

	if raw := c.Query("startdate"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startdate"})
			return
		}
		start = parsed
	}
	if raw := c.Query("enddate"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid enddate"})
			return
		}
		end = parsed
	}

	events, err := h.svc.List(c.Request.Context(), user.EmployeeID, start, end, limit, offset)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}
