package auth

import (
	"net/http"
	"strings"

	"dispatch-portal-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	service    *AuthService
	workerRepo repository.WorkerRepositoryInterface
	production bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *AuthService, workerRepo repository.WorkerRepositoryInterface, production bool) *AuthHandler {
	return &AuthHandler{
		service:    service,
		workerRepo: workerRepo,
		production: production,
	}
}

// DevTokenRequest represents a development token request
type DevTokenRequest struct {
	Email string `json:"email" binding:"required,email" example:"jane.doe@example.com"`
}

// ValidateToken validates a bearer token and returns its claims
// @Summary Validate token
// @Description Validate the bearer token from the Authorization header and return its claims
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Token is valid"
// @Failure 401 {object} map[string]interface{} "Token is missing or invalid"
// @Router /auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		return
	}

	// Extract token from Bearer header
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
		return
	}

	// Validate token
	claims, err := h.service.ValidateJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "claims": claims})
}

// Me returns the claims of the authenticated caller
// @Summary Current caller
// @Description Return the identity claims of the authenticated caller
// @Tags auth
// @Produce json
// @Success 200 {object} AuthClaims "Caller claims"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	c.JSON(http.StatusOK, claims)
}

// DevToken issues a token for a worker by email. Only available outside
// production; real deployments get tokens from the identity provider
// that shares the signing secret.
// @Summary Issue a development token
// @Description Issue a signed token for the worker with the given email. Disabled in production.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body DevTokenRequest true "Worker email"
// @Success 200 {object} map[string]interface{} "Signed token"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Disabled in production"
// @Failure 404 {object} map[string]interface{} "Worker not found"
// @Router /auth/dev-token [post]
func (h *AuthHandler) DevToken(c *gin.Context) {
	if h.production {
		c.JSON(http.StatusForbidden, gin.H{"error": "dev tokens are disabled in production"})
		return
	}

	var req DevTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	worker, err := h.workerRepo.GetByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
		return
	}

	token, err := h.service.GenerateJWT(worker.ID.String(), worker.Email, worker.FullName())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "worker_id": worker.ID})
}
