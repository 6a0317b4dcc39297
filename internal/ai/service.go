package ai

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"resumewise-backend/internal/extract"
	"resumewise-backend/internal/llm"
	"resumewise-backend/internal/shared/metrics"
	"resumewise-backend/internal/shared/storage/object"
)

// Service runs AI summary generation and ATS analysis.
type Service struct {
	LLM           llm.Client
	Store         object.ObjectStore
	Repo          ReportsRepo
	PromptVersion string
}

// NewService constructs a Service.
func NewService(client llm.Client, store object.ObjectStore, repo ReportsRepo, promptVersion string) *Service {
	if strings.TrimSpace(promptVersion) == "" {
		promptVersion = "v2"
	}
	return &Service{LLM: client, Store: store, Repo: repo, PromptVersion: promptVersion}
}

// GenerateSummary produces a professional summary for the given role and skills.
func (s *Service) GenerateSummary(ctx context.Context, input llm.SummaryInput) (string, error) {
	summary, err := s.LLM.GenerateSummary(ctx, input)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSummaryFailed, err)
	}
	if strings.TrimSpace(summary) == "" {
		return "", ErrSummaryFailed
	}
	metrics.IncSummaryGenerated()
	return summary, nil
}

// Analyze stores the uploaded resume, extracts its text, runs the ATS analysis
// and persists the normalized report.
func (s *Service) Analyze(ctx context.Context, userID, fileName string, file io.Reader, jobDescription string) (ATSReport, error) {
	if !supportedResumeFile(fileName) {
		return ATSReport{}, ErrUnsupportedFile
	}
	metrics.IncATSAnalysisStarted()
	started := time.Now()
	defer func() {
		metrics.ObserveATSAnalysisDurationMs(float64(time.Since(started).Milliseconds()))
	}()

	storageKey, _, mimeType, err := s.Store.Save(ctx, userID, fileName, file)
	if err != nil {
		return ATSReport{}, fmt.Errorf("store resume: %w", err)
	}

	text, err := extract.Text(ctx, s.Store, storageKey, mimeType, fileName)
	if err != nil {
		return ATSReport{}, fmt.Errorf("%w: %v", ErrUnsupportedFile, err)
	}

	return s.analyzeText(ctx, userID, fileName, storageKey, text, jobDescription)
}

// AnalyzeText runs the ATS analysis on resume text supplied directly in the
// request body, with no file upload or extraction involved.
func (s *Service) AnalyzeText(ctx context.Context, userID, resumeText, jobDescription string) (ATSReport, error) {
	metrics.IncATSAnalysisStarted()
	started := time.Now()
	defer func() {
		metrics.ObserveATSAnalysisDurationMs(float64(time.Since(started).Milliseconds()))
	}()

	return s.analyzeText(ctx, userID, "", "", resumeText, jobDescription)
}

func (s *Service) analyzeText(ctx context.Context, userID, fileName, storageKey, text, jobDescription string) (ATSReport, error) {
	input := llm.ATSInput{
		ResumeText:     text,
		JobDescription: jobDescription,
		PromptVersion:  s.PromptVersion,
	}
	raw, err := s.LLM.AnalyzeResume(ctx, input)
	if err != nil {
		metrics.IncATSAnalysisFailed()
		return ATSReport{}, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	normalized, err := normalizeATSResult(raw)
	if err != nil {
		// One repair attempt before giving up on the provider output.
		fixed, fixErr := s.LLM.AnalyzeResume(llm.WithFixJSON(ctx, string(raw)), input)
		if fixErr != nil {
			metrics.IncATSAnalysisFailed()
			return ATSReport{}, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
		}
		normalized, err = normalizeATSResult(fixed)
		if err != nil {
			metrics.IncATSAnalysisFailed()
			return ATSReport{}, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
		}
	}

	result, err := resultToMap(normalized)
	if err != nil {
		return ATSReport{}, err
	}

	report := ATSReport{
		ID:         uuid.NewString(),
		UserID:     userID,
		FileName:   fileName,
		StorageKey: storageKey,
		Score:      normalized.OverallScore,
		Result:     result,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, report); err != nil {
		return ATSReport{}, fmt.Errorf("persist report: %w", err)
	}
	metrics.IncATSAnalysisCompleted()
	return report, nil
}

// Get returns a single report owned by the user.
func (s *Service) Get(ctx context.Context, userID, reportID string) (ATSReport, error) {
	return s.Repo.GetByID(ctx, userID, reportID)
}

// List returns the user's reports, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]ATSReport, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func supportedResumeFile(fileName string) bool {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf", ".docx":
		return true
	default:
		return false
	}
}
