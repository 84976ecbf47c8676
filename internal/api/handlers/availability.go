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

// AvailabilityHandler handles HTTP requests for free slot queries
type AvailabilityHandler struct {
	service service.AvailabilityServiceInterface
}

// NewAvailabilityHandler creates a new availability handler
func NewAvailabilityHandler(s service.AvailabilityServiceInterface) *AvailabilityHandler {
	return &AvailabilityHandler{service: s}
}

// GetWorkerAvailability handles GET /api/v1/availability/workers/:id
// @Summary Get free slots for a worker
// @Description Compute bookable appointment slots for a single worker inside a date range, honoring working hours, travel buffers and every busy source
// @Tags availability
// @Accept json
// @Produce json
// @Param id path string true "Worker ID (UUID)"
// @Param start_date query string true "Range start (YYYY-MM-DD, inclusive)"
// @Param end_date query string true "Range end (YYYY-MM-DD, inclusive)"
// @Param duration query int true "Appointment duration in minutes"
// @Param travel query int false "One-way travel buffer in minutes" default(0)
// @Success 200 {object} map[string]interface{} "Free slots"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 404 {object} map[string]interface{} "Worker not found"
// @Failure 502 {object} map[string]interface{} "A busy source could not be reached"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /availability/workers/{id} [get]
func (h *AvailabilityHandler) GetWorkerAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid worker ID: invalid UUID format"})
		return
	}

	params, ok := parseAvailabilityParams(c)
	if !ok {
		return
	}

	slots, err := h.service.ForWorker(c.Request.Context(), id, params)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"worker_id": id, "slots": slots})
}

// GetTeamAvailability handles GET /api/v1/availability/teams/:id
// @Summary Get free slots for a team
// @Description Compute bookable appointment slots for a team. A slot is offered whenever at least one member is free, and lists the free members.
// @Tags availability
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param start_date query string true "Range start (YYYY-MM-DD, inclusive)"
// @Param end_date query string true "Range end (YYYY-MM-DD, inclusive)"
// @Param duration query int true "Appointment duration in minutes"
// @Param travel query int false "One-way travel buffer in minutes" default(0)
// @Success 200 {object} service.TeamAvailability "Merged team slots and per-member slots"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 409 {object} map[string]interface{} "Team has no members"
// @Failure 502 {object} map[string]interface{} "A busy source could not be reached"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /availability/teams/{id} [get]
func (h *AvailabilityHandler) GetTeamAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID: invalid UUID format"})
		return
	}

	params, ok := parseAvailabilityParams(c)
	if !ok {
		return
	}

	availability, err := h.service.ForTeam(c.Request.Context(), id, params)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}

	c.JSON(http.StatusOK, availability)
}

// parseAvailabilityParams reads the shared availability query parameters. On
// a parse failure it writes the 400 response itself and returns ok=false.
func parseAvailabilityParams(c *gin.Context) (service.AvailabilityParams, bool) {
	var params service.AvailabilityParams

	start, ok := parseDateQuery(c, "start_date")
	if !ok {
		return params, false
	}
	end, ok := parseDateQuery(c, "end_date")
	if !ok {
		return params, false
	}
	params.RangeStart = start
	params.RangeEnd = end

	duration, err := strconv.Atoi(c.DefaultQuery("duration", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid duration parameter: must be an integer"})
		return params, false
	}
	travel, err := strconv.Atoi(c.DefaultQuery("travel", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid travel parameter: must be an integer"})
		return params, false
	}
	params.DurationMinutes = duration
	params.TravelMinutes = travel

	return params, true
}

// respondAvailabilityError maps availability service errors to HTTP statuses
func respondAvailabilityError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNoMembersInTeam):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsConfiguration(err) || apperrors.IsValidation(err) || errors.Is(err, apperrors.ErrInvalidTimeRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsSourceUnavailable(err):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute availability", "details": err.Error()})
	}
}
