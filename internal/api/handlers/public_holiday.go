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

// PublicHolidayHandler handles HTTP requests for public holidays
type PublicHolidayHandler struct {
	holidayService service.PublicHolidayServiceInterface
}

// NewPublicHolidayHandler creates a new public holiday handler
func NewPublicHolidayHandler(holidayService service.PublicHolidayServiceInterface) *PublicHolidayHandler {
	return &PublicHolidayHandler{
		holidayService: holidayService,
	}
}

// CreatePublicHoliday handles POST /public-holidays
// @Summary Create a public holiday
// @Description Create a public holiday for an organization. Region-scoped holidays only block availability for workers in that region.
// @Tags public-holidays
// @Accept json
// @Produce json
// @Param holiday body service.CreatePublicHolidayRequest true "Public holiday data"
// @Success 201 {object} service.PublicHolidayResponse "Successfully created public holiday"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 409 {object} map[string]interface{} "Public holiday already exists on this date"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /public-holidays [post]
func (h *PublicHolidayHandler) CreatePublicHoliday(c *gin.Context) {
	var req service.CreatePublicHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	holiday, err := h.holidayService.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrPublicHolidayExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, holiday)
}

// GetPublicHoliday handles GET /public-holidays/:id
// @Summary Get public holiday by ID
// @Description Get a specific public holiday by its UUID
// @Tags public-holidays
// @Accept json
// @Produce json
// @Param id path string true "Public holiday ID (UUID)"
// @Success 200 {object} service.PublicHolidayResponse "Successfully retrieved public holiday"
// @Failure 400 {object} map[string]interface{} "Invalid public holiday ID"
// @Failure 404 {object} map[string]interface{} "Public holiday not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /public-holidays/{id} [get]
func (h *PublicHolidayHandler) GetPublicHoliday(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid public holiday ID"})
		return
	}

	holiday, err := h.holidayService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPublicHolidayNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, holiday)
}

// ListPublicHolidays handles GET /public-holidays (requires organization_id parameter)
// @Summary List public holidays
// @Description Get public holidays for an organization. When start_date and end_date are provided, returns all holidays in that range without pagination; otherwise returns a paginated list.
// @Tags public-holidays
// @Accept json
// @Produce json
// @Param organization_id query string true "Organization ID (UUID)"
// @Param start_date query string false "Range start (YYYY-MM-DD)"
// @Param end_date query string false "Range end (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.PublicHolidayListResponse "Successfully retrieved public holidays"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /public-holidays [get]
func (h *PublicHolidayHandler) ListPublicHolidays(c *gin.Context) {
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

	if c.Query("start_date") != "" || c.Query("end_date") != "" {
		start, ok := parseDateQuery(c, "start_date")
		if !ok {
			return
		}
		end, ok := parseDateQuery(c, "end_date")
		if !ok {
			return
		}

		holidays, err := h.holidayService.ListInRange(organizationID, start, end)
		if err != nil {
			if errors.Is(err, apperrors.ErrInvalidTimeRange) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"holidays": holidays,
			"total":    len(holidays),
		})
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

	holidays, err := h.holidayService.GetByOrganization(organizationID, page, pageSize)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, holidays)
}

// UpdatePublicHoliday handles PUT /public-holidays/:id
// @Summary Update public holiday
// @Description Update an existing public holiday by ID
// @Tags public-holidays
// @Accept json
// @Produce json
// @Param id path string true "Public holiday ID (UUID)"
// @Param holiday body service.UpdatePublicHolidayRequest true "Updated public holiday data"
// @Success 200 {object} service.PublicHolidayResponse "Successfully updated public holiday"
// @Failure 400 {object} map[string]interface{} "Invalid request body or public holiday ID"
// @Failure 404 {object} map[string]interface{} "Public holiday not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /public-holidays/{id} [put]
func (h *PublicHolidayHandler) UpdatePublicHoliday(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid public holiday ID"})
		return
	}

	var req service.UpdatePublicHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	holiday, err := h.holidayService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrPublicHolidayNotFound) {
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

	c.JSON(http.StatusOK, holiday)
}

// DeletePublicHoliday handles DELETE /public-holidays/:id
// @Summary Delete public holiday
// @Description Delete a public holiday by ID
// @Tags public-holidays
// @Accept json
// @Produce json
// @Param id path string true "Public holiday ID (UUID)"
// @Success 204 "Successfully deleted public holiday"
// @Failure 400 {object} map[string]interface{} "Invalid public holiday ID"
// @Failure 404 {object} map[string]interface{} "Public holiday not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /public-holidays/{id} [delete]
func (h *PublicHolidayHandler) DeletePublicHoliday(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid public holiday ID"})
		return
	}

	if err := h.holidayService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrPublicHolidayNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
