package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "dispatch-portal-backend/internal/errors"
	"dispatch-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ExternalTeamHandler handles HTTP requests for field service team snapshots
type ExternalTeamHandler struct {
	service service.ExternalTeamServiceInterface
}

// NewExternalTeamHandler creates a new external team handler
func NewExternalTeamHandler(s service.ExternalTeamServiceInterface) *ExternalTeamHandler {
	return &ExternalTeamHandler{service: s}
}

// ListExternalTeams handles GET /external-teams
// @Summary List external team snapshots
// @Description Get the locally stored snapshots of teams owned by the field service platform, with pagination
// @Tags external-teams
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ExternalTeamListResponse "Successfully retrieved external teams"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /external-teams [get]
func (h *ExternalTeamHandler) ListExternalTeams(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	teams, err := h.service.List(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetExternalTeam handles GET /external-teams/:external_id
// @Summary Get external team by platform ID
// @Description Get a single external team snapshot by the identifier the field service platform assigned to it
// @Tags external-teams
// @Accept json
// @Produce json
// @Param external_id path string true "Platform team ID"
// @Success 200 {object} service.ExternalTeamResponse "Successfully retrieved external team"
// @Failure 404 {object} map[string]interface{} "External team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /external-teams/{external_id} [get]
func (h *ExternalTeamHandler) GetExternalTeam(c *gin.Context) {
	externalID := c.Param("external_id")

	team, err := h.service.GetByExternalID(externalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrExternalTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, team)
}

// SyncExternalTeams handles POST /external-teams/sync
// @Summary Sync external teams
// @Description Fetch the current team list from the field service platform and refresh the local snapshots. Snapshots of teams the platform no longer reports are pruned.
// @Tags external-teams
// @Accept json
// @Produce json
// @Success 200 {object} service.ExternalTeamSyncResult "Sync summary"
// @Failure 502 {object} map[string]interface{} "Field service platform unavailable"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /external-teams/sync [post]
func (h *ExternalTeamHandler) SyncExternalTeams(c *gin.Context) {
	result, err := h.service.Sync(c.Request.Context())
	if err != nil {
		if apperrors.IsSourceUnavailable(err) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListAdministrators handles GET /external-teams/administrators
// @Summary List field service administrators
// @Description Get the administrator roster from the field service platform. Results are cached for a short TTL.
// @Tags external-teams
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Administrator roster"
// @Failure 502 {object} map[string]interface{} "Field service platform unavailable"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /external-teams/administrators [get]
func (h *ExternalTeamHandler) ListAdministrators(c *gin.Context) {
	admins, err := h.service.Administrators(c.Request.Context())
	if err != nil {
		if apperrors.IsSourceUnavailable(err) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"administrators": admins,
		"total":          len(admins),
	})
}
