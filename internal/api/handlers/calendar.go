package handlers

import (
	"net/http"
	"strings"
	"time"

	apperrors "dispatch-portal-backend/internal/errors"
	"dispatch-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CalendarHandler handles HTTP requests for the combined calendar
type CalendarHandler struct {
	service     service.CalendarServiceInterface
	feedService service.FeedServiceInterface
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(calendarService service.CalendarServiceInterface, feedService service.FeedServiceInterface) *CalendarHandler {
	return &CalendarHandler{
		service:     calendarService,
		feedService: feedService,
	}
}

// GetCombinedCalendar handles GET /api/v1/calendar/combined
// @Summary Get combined calendar
// @Description Aggregate events from the field service platform, work items, leave, public holidays and calendar blocks for a date range. Sources that fail are reported in metadata.errors without failing the request.
// @Tags calendar
// @Accept json
// @Produce json
// @Param organization_id query string true "Organization ID (UUID)"
// @Param start_date query string true "Range start (YYYY-MM-DD, inclusive)"
// @Param end_date query string true "Range end (YYYY-MM-DD, inclusive)"
// @Param workers query string false "Comma-separated worker IDs"
// @Param teams query string false "Comma-separated team IDs"
// @Param admins query string false "Comma-separated external administrator IDs"
// @Param sources query string false "Comma-separated subset of: external_task, work_item, leave, public_holiday, block"
// @Success 200 {object} service.CombinedCalendar "Combined calendar events with per-source metadata"
// @Failure 400 {object} map[string]interface{} "Invalid query parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /calendar/combined [get]
func (h *CalendarHandler) GetCombinedCalendar(c *gin.Context) {
	params, ok := parseCombinedParams(c)
	if !ok {
		return
	}

	calendar, err := h.service.Combined(c.Request.Context(), params)
	if err != nil {
		if apperrors.IsConfiguration(err) || apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build combined calendar", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, calendar)
}

// GetCalendarFeed handles GET /api/v1/calendar/feed
// @Summary Get calendar feed
// @Description Export the combined calendar as an iCalendar feed for subscription from external calendar clients
// @Tags calendar
// @Produce text/calendar
// @Param organization_id query string true "Organization ID (UUID)"
// @Param start_date query string true "Range start (YYYY-MM-DD, inclusive)"
// @Param end_date query string true "Range end (YYYY-MM-DD, inclusive)"
// @Param workers query string false "Comma-separated worker IDs"
// @Param teams query string false "Comma-separated team IDs"
// @Param admins query string false "Comma-separated external administrator IDs"
// @Param sources query string false "Comma-separated subset of: external_task, work_item, leave, public_holiday, block"
// @Success 200 {string} string "iCalendar document"
// @Failure 400 {object} map[string]interface{} "Invalid query parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /calendar/feed [get]
func (h *CalendarHandler) GetCalendarFeed(c *gin.Context) {
	params, ok := parseCombinedParams(c)
	if !ok {
		return
	}

	feed, err := h.feedService.ICSFeed(c.Request.Context(), params)
	if err != nil {
		if apperrors.IsConfiguration(err) || apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build calendar feed", "details": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="calendar.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}

// parseCombinedParams reads the shared calendar query parameters. On a parse
// failure it writes the 400 response itself and returns ok=false.
func parseCombinedParams(c *gin.Context) (service.CombinedParams, bool) {
	var params service.CombinedParams

	orgID, err := uuid.Parse(c.Query("organization_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization_id: invalid UUID format"})
		return params, false
	}
	params.OrganizationID = orgID

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

	workerIDs, ok := parseUUIDListQuery(c, "workers")
	if !ok {
		return params, false
	}
	teamIDs, ok := parseUUIDListQuery(c, "teams")
	if !ok {
		return params, false
	}
	params.WorkerIDs = workerIDs
	params.TeamIDs = teamIDs
	params.AdminIDs = splitListQuery(c.Query("admins"))

	include, ok := parseSourcesQuery(c)
	if !ok {
		return params, false
	}
	params.Include = include

	return params, true
}

// parseDateQuery parses a required YYYY-MM-DD query parameter
func parseDateQuery(c *gin.Context, key string) (time.Time, bool) {
	value := c.Query(key)
	if value == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrDateRangeRequired.Error()})
		return time.Time{}, false
	}

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrInvalidDateFormat.Error(), "details": key + "=" + value})
		return time.Time{}, false
	}

	return parsed, true
}

// parseUUIDListQuery parses an optional comma-separated list of UUIDs
func parseUUIDListQuery(c *gin.Context, key string) ([]uuid.UUID, bool) {
	raw := splitListQuery(c.Query(key))
	if len(raw) == 0 {
		return nil, true
	}

	ids := make([]uuid.UUID, 0, len(raw))
	for _, value := range raw {
		id, err := uuid.Parse(value)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + key + " parameter: invalid UUID format", "details": value})
			return nil, false
		}
		ids = append(ids, id)
	}

	return ids, true
}

// parseSourcesQuery parses the optional sources filter. An empty filter
// includes every source.
func parseSourcesQuery(c *gin.Context) (map[service.EventSource]bool, bool) {
	raw := splitListQuery(c.Query("sources"))
	if len(raw) == 0 {
		return nil, true
	}

	include := make(map[service.EventSource]bool, len(raw))
	for _, value := range raw {
		source, ok := service.ParseEventSource(value)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sources parameter", "details": "unknown source: " + value})
			return nil, false
		}
		include[source] = true
	}

	return include, true
}

// splitListQuery splits a comma-separated query value, dropping empty entries
func splitListQuery(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}

	return out
}
