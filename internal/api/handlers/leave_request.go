package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "dispatch-portal-backend/internal/errors"
	"dispatch-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LeaveRequestHandler handles HTTP requests for leave requests
type LeaveRequestHandler struct {
	leaveService service.LeaveRequestServiceInterface
}

// NewLeaveRequestHandler creates a new leave request handler
func NewLeaveRequestHandler(leaveService service.LeaveRequestServiceInterface) *LeaveRequestHandler {
	return &LeaveRequestHandler{
		leaveService: leaveService,
	}
}

// CreateLeaveRequest handles POST /leave-requests
// @Summary Create a leave request
// @Description Create a new leave request for a worker. New requests always start out pending and only block availability once approved.
// @Tags leave-requests
// @Accept json
// @Produce json
// @Param leave body service.CreateLeaveRequestRequest true "Leave request data"
// @Success 201 {object} service.LeaveRequestResponse "Successfully created leave request"
// @Failure 400 {object} map[string]interface{} "Invalid request body or date range"
// @Failure 404 {object} map[string]interface{} "Worker not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /leave-requests [post]
func (h *LeaveRequestHandler) CreateLeaveRequest(c *gin.Context) {
	var req service.CreateLeaveRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	leave, err := h.leaveService.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) || errors.Is(err, apperrors.ErrInvalidTimeRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, leave)
}

// GetLeaveRequest handles GET /leave-requests/:id
// @Summary Get leave request by ID
// @Description Get a specific leave request by its UUID
// @Tags leave-requests
// @Accept json
// @Produce json
// @Param id path string true "Leave request ID (UUID)"
// @Success 200 {object} service.LeaveRequestResponse "Successfully retrieved leave request"
// @Failure 400 {object} map[string]interface{} "Invalid leave request ID"
// @Failure 404 {object} map[string]interface{} "Leave request not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /leave-requests/{id} [get]
func (h *LeaveRequestHandler) GetLeaveRequest(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid leave request ID"})
		return
	}

	leave, err := h.leaveService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrLeaveRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, leave)
}

// ListLeaveRequests handles GET /leave-requests (requires worker_id parameter)
// @Summary List leave requests
// @Description Get all leave requests for a worker with pagination
// @Tags leave-requests
// @Accept json
// @Produce json
// @Param worker_id query string true "Worker ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.LeaveRequestListResponse "Successfully retrieved leave requests"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /leave-requests [get]
func (h *LeaveRequestHandler) ListLeaveRequests(c *gin.Context) {
	workerIDStr := c.Query("worker_id")
	if workerIDStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "worker_id parameter is required"})
		return
	}

	workerID, err := uuid.Parse(workerIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid worker ID"})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	leaves, err := h.leaveService.GetByWorker(workerID, page, pageSize)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, leaves)
}

// UpdateLeaveRequest handles PUT /leave-requests/:id
// @Summary Update leave request
// @Description Update a pending leave request. Requests that have already been approved or rejected cannot be edited.
// @Tags leave-requests
// @Accept json
// @Produce json
// @Param id path string true "Leave request ID (UUID)"
// @Param leave body service.UpdateLeaveRequestRequest true "Updated leave request data"
// @Success 200 {object} service.LeaveRequestResponse "Successfully updated leave request"
// @Failure 400 {object} map[string]interface{} "Invalid request body or date range"
// @Failure 404 {object} map[string]interface{} "Leave request not found"
// @Failure 409 {object} map[string]interface{} "Leave request already decided"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /leave-requests/{id} [put]
func (h *LeaveRequestHandler) UpdateLeaveRequest(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid leave request ID"})
		return
	}

	var req service.UpdateLeaveRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	leave, err := h.leaveService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrLeaveRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrLeaveAlreadyDecided) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) || errors.Is(err, apperrors.ErrInvalidTimeRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, leave)
}

// ApproveLeaveRequest handles POST /leave-requests/:id/approve
// @Summary Approve leave request
// @Description Approve a pending leave request. Approved leave blocks availability for its date range.
// @Tags leave-requests
// @Accept json
// @Produce json
// @Param id path string true "Leave request ID (UUID)"
// @Success 200 {object} service.LeaveRequestResponse "Successfully approved leave request"
// @Failure 400 {object} map[string]interface{} "Invalid leave request ID"
// @Failure 404 {object} map[string]interface{} "Leave request not found"
// @Failure 409 {object} map[string]interface{} "Leave request already decided"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /leave-requests/{id}/approve [post]
func (h *LeaveRequestHandler) ApproveLeaveRequest(c *gin.Context) {
	h.decide(c, h.leaveService.Approve)
}

// RejectLeaveRequest handles POST /leave-requests/:id/reject
// @Summary Reject leave request
// @Description Reject a pending leave request
// @Tags leave-requests
// @Accept json
// @Produce json
// @Param id path string true "Leave request ID (UUID)"
// @Success 200 {object} service.LeaveRequestResponse "Successfully rejected leave request"
// @Failure 400 {object} map[string]interface{} "Invalid leave request ID"
// @Failure 404 {object} map[string]interface{} "Leave request not found"
// @Failure 409 {object} map[string]interface{} "Leave request already decided"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /leave-requests/{id}/reject [post]
func (h *LeaveRequestHandler) RejectLeaveRequest(c *gin.Context) {
	h.decide(c, h.leaveService.Reject)
}

func (h *LeaveRequestHandler) decide(c *gin.Context, decision func(uuid.UUID) (*service.LeaveRequestResponse, error)) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid leave request ID"})
		return
	}

	leave, err := decision(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrLeaveRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrLeaveAlreadyDecided) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, leave)
}

// DeleteLeaveRequest handles DELETE /leave-requests/:id
// @Summary Delete leave request
// @Description Delete a leave request by ID
// @Tags leave-requests
// @Accept json
// @Produce json
// @Param id path string true "Leave request ID (UUID)"
// @Success 204 "Successfully deleted leave request"
// @Failure 400 {object} map[string]interface{} "Invalid leave request ID"
// @Failure 404 {object} map[string]interface{} "Leave request not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /leave-requests/{id} [delete]
func (h *LeaveRequestHandler) DeleteLeaveRequest(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid leave request ID"})
		return
	}

	if err := h.leaveService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrLeaveRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
