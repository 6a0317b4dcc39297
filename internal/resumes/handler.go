package resumes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumewise-backend/internal/resume"
	"resumewise-backend/internal/shared/server/middleware"
	"resumewise-backend/internal/shared/server/respond"
	"resumewise-backend/internal/templates"
)

const maxEditBatch = 100

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.create)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
	rg.DELETE("/resumes/:id", h.remove)
	rg.POST("/resumes/:id/edits", h.applyEdits)
	rg.PUT("/resumes/:id/template", h.setTemplate)
	rg.GET("/resumes/:id/layout", h.layout)
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
	}

	res, err := h.Svc.Create(c.Request.Context(), userID, req.Sample)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create resume", nil)
		return
	}
	respond.Created(c, res)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	all, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list resumes", nil)
		return
	}
	out := make([]summaryResponse, 0, len(all))
	for _, res := range all {
		out = append(out, toSummary(res))
	}
	respond.JSON(c, http.StatusOK, out)
}

// resumeID pulls the path param and exposes it to the request logger.
func resumeID(c *gin.Context) string {
	id := c.Param("id")
	c.Set("resumeId", id)
	return id
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	res, err := h.Svc.Get(c.Request.Context(), userID, resumeID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, res)
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), userID, resumeID(c)); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) applyEdits(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req editsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if len(req.Edits) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "edits must not be empty", nil)
		return
	}
	if len(req.Edits) > maxEditBatch {
		respond.Error(c, http.StatusBadRequest, "validation_error", "too many edits in one batch", nil)
		return
	}

	res, err := h.Svc.ApplyEdits(c.Request.Context(), userID, resumeID(c), req.Edits)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, res)
}

func (h *Handler) setTemplate(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req setTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TemplateID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "templateId is required", nil)
		return
	}

	res, err := h.Svc.SetTemplate(c.Request.Context(), userID, resumeID(c), req.TemplateID)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, res)
}

func (h *Handler) layout(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	layout, err := h.Svc.Layout(c.Request.Context(), userID, resumeID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, layout)
}

// fail maps domain errors onto the response taxonomy. Editing-contract
// violations mean the client edited against state it no longer has, so
// they come back synchronously and are never retried here.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, resume.ErrEntryNotFound):
		respond.Error(c, http.StatusUnprocessableEntity, "entry_not_found", err.Error(), nil)
	case errors.Is(err, resume.ErrIndexOutOfRange):
		respond.Error(c, http.StatusUnprocessableEntity, "index_out_of_range", err.Error(), nil)
	case errors.Is(err, resume.ErrUnknownCommand),
		errors.Is(err, resume.ErrUnknownField),
		errors.Is(err, resume.ErrUnknownSkillKind):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, templates.ErrUnknownTemplate), errors.Is(err, resume.ErrUnknownTemplateID):
		respond.Error(c, http.StatusUnprocessableEntity, "unknown_template", "template does not exist", nil)
	case errors.Is(err, ErrTemplateLocked):
		respond.Error(c, http.StatusForbidden, "premium_template", "upgrade to pro to use this template", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "resume operation failed", nil)
	}
}
