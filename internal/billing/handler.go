package billing

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumewise-backend/internal/shared/server/middleware"
	"resumewise-backend/internal/shared/server/respond"
)

// Handler exposes billing endpoints.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches billing routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/billing/subscription", h.getSubscription)
	rg.POST("/billing/upgrade", h.upgrade)
}

// RegisterDevRoutes attaches dev-only billing routes.
func (h *Handler) RegisterDevRoutes(rg *gin.RouterGroup) {
	rg.POST("/billing/downgrade", h.downgrade)
}

func (h *Handler) getSubscription(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	sub, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		fail(c, err, "failed to fetch subscription")
		return
	}
	respond.JSON(c, http.StatusOK, sub)
}

func (h *Handler) upgrade(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var card CardDetails
	if err := c.ShouldBindJSON(&card); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid json body", nil)
		return
	}

	sub, err := h.Svc.Upgrade(c.Request.Context(), userID, card)
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyPro):
			respond.Error(c, http.StatusConflict, "already_pro", "subscription is already pro", nil)
		case errors.Is(err, ErrPaymentDeclined):
			respond.Error(c, http.StatusPaymentRequired, "payment_declined", "payment was declined", nil)
		default:
			fail(c, err, "failed to upgrade subscription")
		}
		return
	}
	respond.JSON(c, http.StatusOK, sub)
}

func (h *Handler) downgrade(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	sub, err := h.Svc.Downgrade(c.Request.Context(), userID)
	if err != nil {
		fail(c, err, "failed to downgrade subscription")
		return
	}
	respond.JSON(c, http.StatusOK, sub)
}

func fail(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respond.Error(c, http.StatusRequestTimeout, "timeout", "request canceled", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", msg, nil)
	}
}
