package ai

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resumewise-backend/internal/llm"
	"resumewise-backend/internal/shared/server/middleware"
	"resumewise-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20

// Handler exposes AI endpoints.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches AI routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ai/summary", h.generateSummary)
	rg.POST("/ai/ats", h.analyze)
	rg.GET("/ai/ats/reports", h.listReports)
	rg.GET("/ai/ats/reports/:id", h.getReport)
}

type summaryRequest struct {
	JobTitle          string  `json:"jobTitle"`
	YearsOfExperience float64 `json:"yearsOfExperience"`
	KeySkills         string  `json:"keySkills"`
}

func (h *Handler) generateSummary(c *gin.Context) {
	var req summaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid json body", nil)
		return
	}
	if strings.TrimSpace(req.JobTitle) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "jobTitle is required", nil)
		return
	}
	if req.YearsOfExperience < 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "yearsOfExperience must be non-negative", nil)
		return
	}

	summary, err := h.Svc.GenerateSummary(c.Request.Context(), llm.SummaryInput{
		JobTitle:          req.JobTitle,
		YearsOfExperience: req.YearsOfExperience,
		KeySkills:         req.KeySkills,
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			respond.Error(c, http.StatusRequestTimeout, "timeout", "request canceled", nil)
		case errors.Is(err, ErrSummaryFailed):
			respond.Error(c, http.StatusBadGateway, "summary_generation_failed", "failed to generate summary", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate summary", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"summary": summary})
}

type atsTextRequest struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
}

// analyze accepts either a JSON body with the resume text inline or a
// multipart PDF/DOCX upload.
func (h *Handler) analyze(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	var (
		report ATSReport
		err    error
	)
	if c.ContentType() == "application/json" {
		var req atsTextRequest
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid json body", nil)
			return
		}
		if strings.TrimSpace(req.ResumeText) == "" {
			respond.Error(c, http.StatusBadRequest, "validation_error", "resumeText is required", nil)
			return
		}
		report, err = h.Svc.AnalyzeText(c.Request.Context(), userID, req.ResumeText, req.JobDescription)
	} else {
		fileHeader, formErr := c.FormFile("file")
		if formErr != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
			return
		}
		file, openErr := fileHeader.Open()
		if openErr != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
			return
		}
		defer file.Close()

		jobDescription := c.PostForm("jobDescription")
		report, err = h.Svc.Analyze(c.Request.Context(), userID, fileHeader.Filename, file, jobDescription)
	}
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			respond.Error(c, http.StatusRequestTimeout, "timeout", "request canceled", nil)
		case errors.Is(err, ErrUnsupportedFile):
			respond.Error(c, http.StatusBadRequest, "unsupported_file", "resume must be a PDF or DOCX file", nil)
		case errors.Is(err, ErrAnalysisFailed):
			respond.Error(c, http.StatusBadGateway, "analysis_failed", "failed to analyze resume", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze resume", nil)
		}
		return
	}

	c.Set("reportId", report.ID)
	respond.JSON(c, http.StatusOK, report)
}

func (h *Handler) listReports(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	reports, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list reports", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"reports": reports})
}

func (h *Handler) getReport(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	c.Set("reportId", id)
	report, err := h.Svc.Get(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, ErrReportNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "report not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch report", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, report)
}
