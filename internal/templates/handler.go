package templates

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumewise-backend/internal/shared/server/middleware"
	"resumewise-backend/internal/shared/server/respond"
)

// TierSource reports the subscription tier for a user.
type TierSource interface {
	TierFor(ctx context.Context, userID string) (string, error)
}

// Handler exposes the template catalog.
type Handler struct {
	Billing TierSource
}

// NewHandler constructs a Handler.
func NewHandler(billing TierSource) *Handler {
	return &Handler{Billing: billing}
}

// RegisterRoutes attaches template routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/templates", h.list)
}

type templateResponse struct {
	Template
	Accessible bool `json:"accessible"`
}

func (h *Handler) list(c *gin.Context) {
	tier := TierFree
	if h.Billing != nil {
		userID := middleware.UserIDFromContext(c)
		if got, err := h.Billing.TierFor(c.Request.Context(), userID); err == nil && got != "" {
			tier = got
		}
	}

	catalog := List()
	out := make([]templateResponse, 0, len(catalog))
	for _, tpl := range catalog {
		out = append(out, templateResponse{
			Template:   tpl,
			Accessible: IsAccessible(tpl, tier),
		})
	}
	respond.JSON(c, http.StatusOK, gin.H{"templates": out})
}
