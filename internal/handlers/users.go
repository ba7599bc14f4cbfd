package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/karishma-dev/link-sharing-app-backend/internal/middleware"
	"github.com/karishma-dev/link-sharing-app-backend/internal/service"
	"github.com/karishma-dev/link-sharing-app-backend/pkg/httpx"
)

// UserHandler handles profile and admin user HTTP requests.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Profile godoc
// @Summary Get the current user's profile
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} httpx.ErrorResponse
// @Router /users/profile [get]
func (h *UserHandler) Profile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		httpx.RespondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), user.ID)
	if err != nil {
		httpx.LogAndRespondError(c, http.StatusInternalServerError, err, "failed to load profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profile})
}

// UpdateProfile godoc
// @Summary Update the current user's profile
// @Description Partial update of name/image; a links array replaces the link set
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body service.UpdateProfileRequest true "Profile update payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /users/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		httpx.RespondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := h.userService.UpdateProfile(c.Request.Context(), user.ID, req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownPlatform) {
			httpx.RespondError(c, http.StatusBadRequest, "one or more links reference an unknown platform")
			return
		}
		httpx.LogAndRespondError(c, http.StatusInternalServerError, err, "failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profile})
}

// ListUsers godoc
// @Summary List all users
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} httpx.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		httpx.LogAndRespondError(c, http.StatusInternalServerError, err, "failed to list users")
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GetUser godoc
// @Summary Get a user by id
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} httpx.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.RespondError(c, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			httpx.RespondError(c, http.StatusNotFound, "user not found")
			return
		}
		httpx.LogAndRespondError(c, http.StatusInternalServerError, err, "failed to load user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204
// @Failure 404 {object} httpx.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.RespondError(c, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			httpx.RespondError(c, http.StatusNotFound, "user not found")
			return
		}
		httpx.LogAndRespondError(c, http.StatusInternalServerError, err, "failed to delete user")
		return
	}

	c.Status(http.StatusNoContent)
}
