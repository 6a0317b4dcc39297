package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumewise-backend/internal/shared/server/middleware"
	"resumewise-backend/internal/shared/server/respond"
)

// TierSource reports the subscription tier for a user.
type TierSource interface {
	TierFor(ctx context.Context, userID string) (string, error)
}

type Handler struct {
	Svc     *Service
	Billing TierSource
}

func NewHandler(svc *Service, billing TierSource) *Handler {
	return &Handler{Svc: svc, Billing: billing}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.me)
	rg.PUT("/me/preferences", h.updatePreferences)
}

func (h *Handler) me(c *gin.Context) {
	if h.Svc == nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "service unavailable", nil)
		return
	}
	if guestOnly(c) {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
		return
	}
	userID := middleware.UserIDFromContext(c)
	user, err := h.Svc.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load user", nil)
		return
	}

	tier := ""
	if h.Billing != nil {
		if got, err := h.Billing.TierFor(c.Request.Context(), userID); err == nil {
			tier = got
		}
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"id":          user.ID,
		"email":       user.Email,
		"fullName":    user.FullName,
		"pictureUrl":  user.PictureURL,
		"preferences": user.Preferences,
		"tier":        tier,
	})
}

func (h *Handler) updatePreferences(c *gin.Context) {
	if h.Svc == nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "service unavailable", nil)
		return
	}
	if guestOnly(c) {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
		return
	}

	var prefs Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid json body", nil)
		return
	}

	userID := middleware.UserIDFromContext(c)
	saved, err := h.Svc.UpdatePreferences(c.Request.Context(), userID, prefs)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidPreferences):
			respond.Error(c, http.StatusUnprocessableEntity, "invalid_preferences", "unknown template or theme", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save preferences", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, saved)
}

func guestOnly(c *gin.Context) bool {
	if isGuest, ok := c.Get("isGuest"); ok {
		if guest, ok2 := isGuest.(bool); ok2 && guest {
			return true
		}
	}
	return false
}
