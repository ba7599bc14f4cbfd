package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/karishma-dev/link-sharing-app-backend/internal/service"
	"github.com/karishma-dev/link-sharing-app-backend/pkg/httpx"
)

// PlatformHandler handles platform catalog HTTP requests.
type PlatformHandler struct {
	platformService service.PlatformService
}

// NewPlatformHandler creates a new PlatformHandler instance.
func NewPlatformHandler(platformService service.PlatformService) *PlatformHandler {
	return &PlatformHandler{platformService: platformService}
}

// List godoc
// @Summary List all platforms
// @Tags platforms
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /platforms [get]
func (h *PlatformHandler) List(c *gin.Context) {
	platforms, err := h.platformService.List(c.Request.Context())
	if err != nil {
		httpx.LogAndRespondError(c, http.StatusInternalServerError, err, "failed to list platforms")
		return
	}

	c.JSON(http.StatusOK, gin.H{"platforms": platforms})
}

// Get godoc
// @Summary Get a platform by id
// @Tags platforms
// @Produce json
// @Param id path string true "Platform ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} httpx.ErrorResponse
// @Router /platforms/{id} [get]
func (h *PlatformHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.RespondError(c, http.StatusBadRequest, "invalid platform id")
		return
	}

	platform, err := h.platformService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPlatformNotFound) {
			httpx.RespondError(c, http.StatusNotFound, "platform not found")
			return
		}
		httpx.LogAndRespondError(c, http.StatusInternalServerError, err, "failed to load platform")
		return
	}

	c.JSON(http.StatusOK, gin.H{"platform": platform})
}

// Create godoc
// @Summary Add a platform
// @Tags platforms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body service.PlatformInput true "Platform payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Router /platforms [post]
func (h *PlatformHandler) Create(c *gin.Context) {
	var req service.PlatformInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	platform, err := h.platformService.Create(c.Request.Context(), req)
	if err != nil {
		httpx.LogAndRespondError(c, http.StatusInternalServerError, err, "failed to create platform")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"platform": platform})
}

// Update godoc
// @Summary Edit a platform
// @Tags platforms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Platform ID"
// @Param request body service.PlatformInput true "Platform payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /platforms/{id} [put]
func (h *PlatformHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.RespondError(c, http.StatusBadRequest, "invalid platform id")
		return
	}

	var req service.PlatformInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	platform, err := h.platformService.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrPlatformNotFound) {
			httpx.RespondError(c, http.StatusNotFound, "platform not found")
			return
		}
		httpx.LogAndRespondError(c, http.StatusInternalServerError, err, "failed to update platform")
		return
	}

	c.JSON(http.StatusOK, gin.H{"platform": platform})
}

// Delete godoc
// @Summary Delete a platform
// @Tags platforms
// @Security BearerAuth
// @Param id path string true "Platform ID"
// @Success 204
// @Failure 404 {object} httpx.ErrorResponse
// @Router /platforms/{id} [delete]
func (h *PlatformHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.RespondError(c, http.StatusBadRequest, "invalid platform id")
		return
	}

	if err := h.platformService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPlatformNotFound) {
			httpx.RespondError(c, http.StatusNotFound, "platform not found")
			return
		}
		httpx.LogAndRespondError(c, http.StatusInternalServerError, err, "failed to delete platform")
		return
	}

	c.Status(http.StatusNoContent)
}
