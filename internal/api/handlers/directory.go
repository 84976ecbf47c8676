package handlers

import (
	"errors"
	"net/http"

	apperrors "dispatch-portal-backend/internal/errors"
	"dispatch-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler handles directory lookup HTTP requests
type DirectoryHandler struct {
	service service.DirectoryServiceInterface
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(s service.DirectoryServiceInterface) *DirectoryHandler {
	return &DirectoryHandler{service: s}
}

// Search searches directory entries by name prefix
// @Summary Search the corporate directory by name prefix
// @Description Searches the directory for people whose common name starts with the given prefix. Results are cached for a short TTL.
// @Tags directory
// @Produce json
// @Param name query string true "Name prefix (at least 2 characters)"
// @Success 200 {object} map[string]interface{} "Search results"
// @Failure 400 {object} map[string]interface{} "Missing or invalid query parameter"
// @Failure 502 {object} map[string]interface{} "Directory connection or search failed"
// @Failure 503 {object} map[string]interface{} "Directory not configured"
// @Security BearerAuth
// @Router /directory/search [get]
func (h *DirectoryHandler) Search(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter: name"})
		return
	}

	entries, err := h.service.SearchByName(name)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrLDAPConfigMissing) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "directory search failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": entries})
}
