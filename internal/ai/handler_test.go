package ai

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T, client *fakeLLM) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := NewService(client, newMemObjectStore(), NewMemoryReportsRepo(), "v2")
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestAnalyzeAcceptsJSONBody(t *testing.T) {
	client := &fakeLLM{analysis: []json.RawMessage{
		json.RawMessage(`{"overallScore": 88, "sections": [], "generalRecommendations": ["add metrics"]}`),
	}}
	router := newTestRouter(t, client)

	body, _ := json.Marshal(map[string]string{
		"resumeText":     "Backend engineer, Go and Postgres.",
		"jobDescription": "Senior backend role",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/ats", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var report ATSReport
	if err := json.Unmarshal(resp.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if report.Score != 88 {
		t.Fatalf("expected score 88, got %v", report.Score)
	}
	if report.FileName != "" {
		t.Fatalf("expected no file name for text input, got %q", report.FileName)
	}
}

func TestAnalyzeRejectsBlankResumeText(t *testing.T) {
	router := newTestRouter(t, &fakeLLM{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/ats", strings.NewReader(`{"resumeText": "  "}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "validation_error") {
		t.Fatalf("expected validation_error envelope, got %s", resp.Body.String())
	}
}

func TestAnalyzeMultipartRequiresFile(t *testing.T) {
	router := newTestRouter(t, &fakeLLM{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/ats", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "file is required") {
		t.Fatalf("expected file requirement message, got %s", resp.Body.String())
	}
}

func TestGenerateSummaryHandlerMapsProviderFailure(t *testing.T) {
	router := newTestRouter(t, &fakeLLM{summaryErr: errors.New("provider down")})

	body := `{"jobTitle": "Engineer", "yearsOfExperience": 4, "keySkills": "Go"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/summary", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "summary_generation_failed") {
		t.Fatalf("expected summary_generation_failed code, got %s", resp.Body.String())
	}
}
