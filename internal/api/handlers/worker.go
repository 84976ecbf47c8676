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

// WorkerHandler handles HTTP requests for workers
type WorkerHandler struct {
	workerService service.WorkerServiceInterface
}

// NewWorkerHandler creates a new worker handler
func NewWorkerHandler(workerService service.WorkerServiceInterface) *WorkerHandler {
	return &WorkerHandler{
		workerService: workerService,
	}
}

// CreateWorker creates a new worker
// @Summary Create a new worker
// @Description Create a new worker in the system.
// @Description
// @Description Optional Fields with Defaults:
// @Description - is_active: Defaults to true
// @Description - external_admin_id: Links the worker to its administrator identity in the field service platform
// @Tags workers
// @Accept json
// @Produce json
// @Param worker body service.CreateWorkerRequest true "Worker data"
// @Success 201 {object} service.WorkerResponse "Successfully created worker"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Worker or admin mapping already exists"
// @Security BearerAuth
// @Router /workers [post]
func (h *WorkerHandler) CreateWorker(c *gin.Context) {
	var req service.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	worker, err := h.workerService.CreateWorker(&req)
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, worker)
}

// GetWorker retrieves a worker by ID
// @Summary Get worker by ID
// @Description Get a specific worker by their UUID
// @Tags workers
// @Accept json
// @Produce json
// @Param id path string true "Worker ID (UUID)"
// @Success 200 {object} service.WorkerResponse "Successfully retrieved worker"
// @Failure 400 {object} map[string]interface{} "Invalid worker ID"
// @Failure 404 {object} map[string]interface{} "Worker not found"
// @Security BearerAuth
// @Router /workers/{id} [get]
func (h *WorkerHandler) GetWorker(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid worker ID"})
		return
	}

	worker, err := h.workerService.GetWorkerByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
		return
	}

	c.JSON(http.StatusOK, worker)
}

// GetWorkersByOrganization retrieves workers for an organization
// @Summary List workers by organization
// @Description Get all workers belonging to an organization with pagination. Can be accessed via /workers?organization_id=xxx or /organizations/:id/workers. Pass active=true for active workers only, or mapped=true for workers carrying an admin mapping.
// @Tags workers
// @Accept json
// @Produce json
// @Param organization_id query string false "Organization ID (UUID) - used when accessing via /workers endpoint"
// @Param id path string false "Organization ID (UUID) - used when accessing via /organizations/:id/workers endpoint"
// @Param active query bool false "Return only active workers"
// @Param mapped query bool false "Return only workers with an admin mapping"
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Successfully retrieved workers list"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID or parameters"
// @Security BearerAuth
// @Router /workers [get]
func (h *WorkerHandler) GetWorkersByOrganization(c *gin.Context) {
	// Try to get organization ID from path parameter first (for /organizations/:id/workers)
	// Then fall back to query parameter (for /workers?organization_id=...)
	orgIDStr := c.Param("id")
	if orgIDStr == "" {
		orgIDStr = c.Query("organization_id")
	}
	if orgIDStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization ID is required (provide as query parameter 'organization_id' or path parameter 'id')"})
		return
	}

	orgID, err := uuid.Parse(orgIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}

	if c.Query("mapped") == "true" {
		workers, err := h.workerService.GetMappedWorkers(orgID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"workers": workers, "total": len(workers)})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	var (
		workers []service.WorkerResponse
		total   int64
	)
	if c.Query("active") == "true" {
		workers, total, err = h.workerService.GetActiveWorkers(orgID, limit, offset)
	} else {
		workers, total, err = h.workerService.GetWorkersByOrganization(orgID, limit, offset)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"workers": workers,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

// UpdateWorker updates an existing worker
// @Summary Update worker
// @Description Update an existing worker by ID
// @Tags workers
// @Accept json
// @Produce json
// @Param id path string true "Worker ID (UUID)"
// @Param worker body service.UpdateWorkerRequest true "Updated worker data"
// @Success 200 {object} service.WorkerResponse "Successfully updated worker"
// @Failure 400 {object} map[string]interface{} "Invalid request body or worker ID"
// @Failure 404 {object} map[string]interface{} "Worker not found"
// @Security BearerAuth
// @Router /workers/{id} [put]
func (h *WorkerHandler) UpdateWorker(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid worker ID"})
		return
	}

	var req service.UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	worker, err := h.workerService.UpdateWorker(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, worker)
}

// SetAdminMapping links a worker to a field service administrator
// @Summary Set admin mapping
// @Description Link a worker to its administrator identity in the field service platform. A null admin_id clears the mapping. A mapping held by another worker is rejected.
// @Tags workers
// @Accept json
// @Produce json
// @Param id path string true "Worker ID (UUID)"
// @Param mapping body service.SetAdminMappingRequest true "Admin mapping"
// @Success 200 {object} service.WorkerResponse "Successfully updated mapping"
// @Failure 400 {object} map[string]interface{} "Invalid request body or worker ID"
// @Failure 404 {object} map[string]interface{} "Worker not found"
// @Failure 409 {object} map[string]interface{} "Mapping already held by another worker"
// @Security BearerAuth
// @Router /workers/{id}/admin-mapping [put]
func (h *WorkerHandler) SetAdminMapping(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid worker ID"})
		return
	}

	var req service.SetAdminMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	worker, err := h.workerService.SetExternalAdminID(id, req.AdminID)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrAdminMappingTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, worker)
}

// ClearAdminMapping removes a worker's field service administrator link
// @Summary Clear admin mapping
// @Description Remove the link between a worker and its administrator identity in the field service platform
// @Tags workers
// @Accept json
// @Produce json
// @Param id path string true "Worker ID (UUID)"
// @Success 200 {object} service.WorkerResponse "Successfully cleared mapping"
// @Failure 400 {object} map[string]interface{} "Invalid worker ID"
// @Failure 404 {object} map[string]interface{} "Worker not found"
// @Security BearerAuth
// @Router /workers/{id}/admin-mapping [delete]
func (h *WorkerHandler) ClearAdminMapping(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid worker ID"})
		return
	}

	worker, err := h.workerService.SetExternalAdminID(id, nil)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, worker)
}

// DeleteWorker deletes a worker
// @Summary Delete worker
// @Description Delete a worker by ID
// @Tags workers
// @Accept json
// @Produce json
// @Param id path string true "Worker ID (UUID)"
// @Success 204 "Successfully deleted worker"
// @Failure 400 {object} map[string]interface{} "Invalid worker ID"
// @Failure 404 {object} map[string]interface{} "Worker not found"
// @Security BearerAuth
// @Router /workers/{id} [delete]
func (h *WorkerHandler) DeleteWorker(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid worker ID"})
		return
	}

	if err := h.workerService.DeleteWorker(id); err != nil {
		if errors.Is(err, apperrors.ErrWorkerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
