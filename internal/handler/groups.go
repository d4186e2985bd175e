package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/LeonSoftLab/SupportAPI/internal/model"
	"github.com/LeonSoftLab/SupportAPI/internal/service"
)

type GroupHandler struct {
	svc *service.GroupService
}

func NewGroupHandler(svc *service.GroupService) *GroupHandler {
	return &GroupHandler{svc: svc}
}

// ListGroups godoc
// @Summary List command groups
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Group
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/groups [get]
func (h *GroupHandler) ListGroups(c *gin.Context) {
	groups, err := h.svc.List(c.Request.Context(), "")
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// GetGroupsByCode godoc
// @Summary List groups by code name
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param code path string true "Group code name"
// @Success 200 {array} model.Group
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/groups/{code} [get]
func (h *GroupHandler) GetGroupsByCode(c *gin.Context) {
	groups, err := h.svc.List(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// CreateGroup godoc
// @Summary Create a group
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.GroupCreateRequest true "Group definition"
// @Success 200 {object} model.Group
// @Failure 400 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /api/v1/groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req model.GroupCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	group, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

// UpdateGroup godoc
// @Summary Update a group
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Param request body model.GroupUpdateRequest true "Fields to change"
// @Success 200 {object} model.Group
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/groups/{id} [put]
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req model.GroupUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	group, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

// DeleteGroup godoc
// @Summary Delete a group
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} model.StatusResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/groups/{id} [delete]
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
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

// ListGroupRows godoc
// @Summary List rows of a group
// @Tags grouprows
// @Produce json
// @Security BearerAuth
// @Param group_id path int true "Group ID"
// @Success 200 {array} model.GroupRow
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/grouprows/{group_id} [get]
func (h *GroupHandler) ListGroupRows(c *gin.Context) {
	groupID, err := strconv.Atoi(c.Param("group_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid group id"})
		return
	}

	rows, err := h.svc.RowsByGroup(c.Request.Context(), groupID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ListGroupRowsByCode godoc
// @Summary List rows by combined code name
// @Description codename has the form "<group code>_<command text>".
// @Tags grouprows
// @Produce json
// @Security BearerAuth
// @Param codename query string true "Combined code name"
// @Success 200 {array} model.GroupRow
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/grouprows [get]
func (h *GroupHandler) ListGroupRowsByCode(c *gin.Context) {
	rows, err := h.svc.RowsByCodeName(c.Request.Context(), c.Query("codename"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// CreateGroupRow godoc
// @Summary Create a group row
// @Tags grouprows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.GroupRowCreateRequest true "Row definition"
// @Success 200 {object} model.GroupRow
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/grouprows [post]
func (h *GroupHandler) CreateGroupRow(c *gin.Context) {
	var req model.GroupRowCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	row, err := h.svc.CreateRow(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}
