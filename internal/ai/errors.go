package ai

import "errors"

var (
	// ErrSummaryFailed indicates the provider could not produce a summary.
	ErrSummaryFailed = errors.New("summary generation failed")
	// ErrAnalysisFailed indicates the provider could not produce a usable analysis.
	ErrAnalysisFailed = errors.New("resume analysis failed")
	// ErrUnsupportedFile indicates the uploaded resume is not a PDF or DOCX.
	ErrUnsupportedFile = errors.New("unsupported file type")
	// ErrReportNotFound indicates the requested report does not exist for the user.
	ErrReportNotFound = errors.New("report not found")
)
