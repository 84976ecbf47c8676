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

// CalendarBlockHandler handles HTTP requests for calendar blocks
type CalendarBlockHandler struct {
	blockService service.CalendarBlockServiceInterface
}

// NewCalendarBlockHandler creates a new calendar block handler
func NewCalendarBlockHandler(blockService service.CalendarBlockServiceInterface) *CalendarBlockHandler {
	return &CalendarBlockHandler{
		blockService: blockService,
	}
}

// CreateCalendarBlock handles POST /calendar-blocks
// @Summary Create a calendar block
// @Description Create a busy block on a worker's calendar. Supports an optional RFC 5545 recurrence rule for repeating blocks.
// @Tags calendar-blocks
// @Accept json
// @Produce json
// @Param block body service.CreateCalendarBlockRequest true "Calendar block data"
// @Success 201 {object} service.CalendarBlockResponse "Successfully created calendar block"
// @Failure 400 {object} map[string]interface{} "Invalid request body or time range"
// @Failure 404 {object} map[string]interface{} "Worker not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /calendar-blocks [post]
func (h *CalendarBlockHandler) CreateCalendarBlock(c *gin.Context) {
	var req service.CreateCalendarBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	block, err := h.blockService.Create(&req)
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

	c.JSON(http.StatusCreated, block)
}

// GetCalendarBlock handles GET /calendar-blocks/:id
// @Summary Get calendar block by ID
// @Description Get a specific calendar block by its UUID
// @Tags calendar-blocks
// @Accept json
// @Produce json
// @Param id path string true "Calendar block ID (UUID)"
// @Success 200 {object} service.CalendarBlockResponse "Successfully retrieved calendar block"
// @Failure 400 {object} map[string]interface{} "Invalid calendar block ID"
// @Failure 404 {object} map[string]interface{} "Calendar block not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /calendar-blocks/{id} [get]
func (h *CalendarBlockHandler) GetCalendarBlock(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid calendar block ID"})
		return
	}

	block, err := h.blockService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCalendarBlockNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, block)
}

// ListCalendarBlocks handles GET /calendar-blocks (requires worker_id parameter)
// @Summary List calendar blocks
// @Description Get all calendar blocks for a worker with pagination
// @Tags calendar-blocks
// @Accept json
// @Produce json
// @Param worker_id query string true "Worker ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.CalendarBlockListResponse "Successfully retrieved calendar blocks"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /calendar-blocks [get]
func (h *CalendarBlockHandler) ListCalendarBlocks(c *gin.Context) {
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

	blocks, err := h.blockService.GetByWorker(workerID, page, pageSize)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, blocks)
}

// UpdateCalendarBlock handles PUT /calendar-blocks/:id
// @Summary Update calendar block
// @Description Update an existing calendar block by ID
// @Tags calendar-blocks
// @Accept json
// @Produce json
// @Param id path string true "Calendar block ID (UUID)"
// @Param block body service.UpdateCalendarBlockRequest true "Updated calendar block data"
// @Success 200 {object} service.CalendarBlockResponse "Successfully updated calendar block"
// @Failure 400 {object} map[string]interface{} "Invalid request body or time range"
// @Failure 404 {object} map[string]interface{} "Calendar block not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /calendar-blocks/{id} [put]
func (h *CalendarBlockHandler) UpdateCalendarBlock(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid calendar block ID"})
		return
	}

	var req service.UpdateCalendarBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	block, err := h.blockService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrCalendarBlockNotFound) {
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

	c.JSON(http.StatusOK, block)
}

// DeleteCalendarBlock handles DELETE /calendar-blocks/:id
// @Summary Delete calendar block
// @Description Delete a calendar block by ID
// @Tags calendar-blocks
// @Accept json
// @Produce json
// @Param id path string true "Calendar block ID (UUID)"
// @Success 204 "Successfully deleted calendar block"
// @Failure 400 {object} map[string]interface{} "Invalid calendar block ID"
// @Failure 404 {object} map[string]interface{} "Calendar block not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /calendar-blocks/{id} [delete]
func (h *CalendarBlockHandler) DeleteCalendarBlock(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid calendar block ID"})
		return
	}

	if err := h.blockService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrCalendarBlockNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
