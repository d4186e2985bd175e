package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/LeonSoftLab/SupportAPI/internal/model"
	"github.com/LeonSoftLab/SupportAPI/internal/service"
)

type ReportHandler struct {
	svc *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// ListReports godoc
// @Summary List reports
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Report
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/reports [get]
func (h *ReportHandler) ListReports(c *gin.Context) {
	reports, err := h.svc.List(c.Request.Context(), "")
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// GetReportsByCode godoc
// @Summary List reports by code name
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param code path string true "Report code name"
// @Success 200 {array} model.Report
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/reports/{code} [get]
func (h *ReportHandler) GetReportsByCode(c *gin.Context) {
	reports, err := h.svc.List(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// CreateReport godoc
// @Summary Create a report
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ReportCreateRequest true "Report definition"
// @Success 200 {object} model.Report
// @Failure 400 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /api/v1/reports [post]
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var req model.ReportCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	report, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// UpdateReport godoc
// @Summary Update a report
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Param request body model.ReportUpdateRequest true "Fields to change"
// @Success 200 {object} model.Report
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/reports/{id} [put]
func (h *ReportHandler) UpdateReport(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req model.ReportUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	report, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// DeleteReport godoc
// @Summary Delete a report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 200 {object} model.StatusResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/reports/{id} [delete]
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: "deleted"})
}
