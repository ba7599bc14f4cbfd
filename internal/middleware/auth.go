// Package middleware provides HTTP middleware for the link-sharing backend.
package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/karishma-dev/link-sharing-app-backend/internal/models"
	"github.com/karishma-dev/link-sharing-app-backend/internal/repository"
	"github.com/karishma-dev/link-sharing-app-backend/internal/service"
	"github.com/karishma-dev/link-sharing-app-backend/pkg/httpx"
)

// currentUserKey is the gin context key holding the resolved user.
const currentUserKey = "currentUser"

// AuthMiddleware resolves bearer tokens to user records.
type AuthMiddleware struct {
	jwtService service.JWTService
	userRepo   repository.UserRepository
}

// NewAuthMiddleware creates a new AuthMiddleware instance.
func NewAuthMiddleware(jwtService service.JWTService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
	}
}

// RequireAuth rejects any request that does not carry a valid bearer token
// resolving to an existing user. All failure causes collapse into the same
// 401 so responses cannot be used to probe which accounts exist.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := m.resolve(c)
		if !ok {
			return
		}
		SetCurrentUser(c, user)
		c.Next()
	}
}

// OptionalAuth resolves a token when one is present but lets anonymous
// requests through. A presented token that fails validation is still an
// error, never silently downgraded to anonymous.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		user, ok := m.resolve(c)
		if !ok {
			return
		}
		SetCurrentUser(c, user)
		c.Next()
	}
}

// RequireAdmin runs the full RequireAuth chain and additionally requires
// the admin role flag, which yields a 403 rather than a 401.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := m.resolve(c)
		if !ok {
			return
		}
		if !user.IsAdmin {
			httpx.RespondError(c, http.StatusForbidden, "admin access required")
			return
		}
		SetCurrentUser(c, user)
		c.Next()
	}
}

// resolve extracts and validates the bearer token and loads its subject.
// On failure it writes the 401 response and returns ok=false.
func (m *AuthMiddleware) resolve(c *gin.Context) (*models.User, bool) {
	token, ok := extractBearerToken(c)
	if !ok {
		httpx.RespondError(c, http.StatusUnauthorized, "missing or malformed authorization header")
		return nil, false
	}

	claims, err := m.jwtService.Validate(token)
	if err != nil {
		// Expired vs. forged matters for the logs, not for the caller.
		if errors.Is(err, service.ErrTokenExpired) {
			log.Printf("auth: expired token presented for %s %s", c.Request.Method, c.Request.URL.Path)
		} else {
			log.Printf("auth: invalid token presented for %s %s", c.Request.Method, c.Request.URL.Path)
		}
		httpx.RespondError(c, http.StatusUnauthorized, "token is invalid or expired")
		return nil, false
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		httpx.RespondError(c, http.StatusUnauthorized, "token is invalid or expired")
		return nil, false
	}

	user, err := m.userRepo.FindByID(c.Request.Context(), userID)
	if err != nil {
		httpx.RespondError(c, http.StatusUnauthorized, "token is invalid or expired")
		return nil, false
	}

	return user, true
}

// extractBearerToken enforces the "Bearer <token>" header shape.
func extractBearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 3)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// SetCurrentUser attaches a resolved user to the request context.
func SetCurrentUser(c *gin.Context, user *models.User) {
	c.Set(currentUserKey, user)
}

// CurrentUser returns the authenticated user attached by RequireAuth,
// OptionalAuth or RequireAdmin. ok is false for anonymous requests.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
