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

// WorkItemHandler handles HTTP requests for work items
type WorkItemHandler struct {
	workItemService service.WorkItemServiceInterface
}

// NewWorkItemHandler creates a new work item handler
func NewWorkItemHandler(workItemService service.WorkItemServiceInterface) *WorkItemHandler {
	return &WorkItemHandler{
		workItemService: workItemService,
	}
}

// CreateWorkItem handles POST /work-items
// @Summary Create a work item
// @Description Create a locally tracked work item. The assignee, when set, must belong to the same organization.
// @Tags work-items
// @Accept json
// @Produce json
// @Param item body service.CreateWorkItemRequest true "Work item data"
// @Success 201 {object} service.WorkItemResponse "Successfully created work item"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Organization or assignee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /work-items [post]
func (h *WorkItemHandler) CreateWorkItem(c *gin.Context) {
	var req service.CreateWorkItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.workItemService.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrWorkerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// GetWorkItem handles GET /work-items/:id
// @Summary Get work item by ID
// @Description Get a specific work item by its UUID
// @Tags work-items
// @Accept json
// @Produce json
// @Param id path string true "Work item ID (UUID)"
// @Success 200 {object} service.WorkItemResponse "Successfully retrieved work item"
// @Failure 400 {object} map[string]interface{} "Invalid work item ID"
// @Failure 404 {object} map[string]interface{} "Work item not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /work-items/{id} [get]
func (h *WorkItemHandler) GetWorkItem(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work item ID"})
		return
	}

	item, err := h.workItemService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

// ListWorkItems handles GET /work-items (requires organization_id parameter)
// @Summary List work items
// @Description Get all work items for an organization with pagination
// @Tags work-items
// @Accept json
// @Produce json
// @Param organization_id query string true "Organization ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.WorkItemListResponse "Successfully retrieved work items"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /work-items [get]
func (h *WorkItemHandler) ListWorkItems(c *gin.Context) {
	organizationIDStr := c.Query("organization_id")
	if organizationIDStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "organization_id parameter is required"})
		return
	}

	organizationID, err := uuid.Parse(organizationIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization ID"})
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

	items, err := h.workItemService.GetByOrganization(organizationID, page, pageSize)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

// UpdateWorkItem handles PUT /work-items/:id
// @Summary Update work item
// @Description Update an existing work item by ID
// @Tags work-items
// @Accept json
// @Produce json
// @Param id path string true "Work item ID (UUID)"
// @Param item body service.UpdateWorkItemRequest true "Updated work item data"
// @Success 200 {object} service.WorkItemResponse "Successfully updated work item"
// @Failure 400 {object} map[string]interface{} "Invalid request body or work item ID"
// @Failure 404 {object} map[string]interface{} "Work item not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /work-items/{id} [put]
func (h *WorkItemHandler) UpdateWorkItem(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work item ID"})
		return
	}

	var req service.UpdateWorkItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.workItemService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrWorkerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteWorkItem handles DELETE /work-items/:id
// @Summary Delete work item
// @Description Delete a work item by ID
// @Tags work-items
// @Accept json
// @Produce json
// @Param id path string true "Work item ID (UUID)"
// @Success 204 "Successfully deleted work item"
// @Failure 400 {object} map[string]interface{} "Invalid work item ID"
// @Failure 404 {object} map[string]interface{} "Work item not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /work-items/{id} [delete]
func (h *WorkItemHandler) DeleteWorkItem(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work item ID"})
		return
	}

	if err := h.workItemService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrWorkItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
