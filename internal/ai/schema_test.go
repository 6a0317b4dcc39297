package ai

import (
	"encoding/json"
	"testing"
)

func TestNormalizeSectionedResult(t *testing.T) {
	raw := json.RawMessage(`{
		"overallScore": 78,
		"sections": [
			{"section": "Work Experience", "score": 85, "feedback": "Strong action verbs."},
			{"section": "Skills", "score": 60, "feedback": "Add more keywords."}
		],
		"generalRecommendations": ["Use a single column layout."]
	}`)

	out, err := normalizeATSResult(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if out.OverallScore != 78 {
		t.Fatalf("expected overallScore 78, got %v", out.OverallScore)
	}
	if len(out.Sections) != 2 || out.Sections[0].Section != "Work Experience" {
		t.Fatalf("unexpected sections: %+v", out.Sections)
	}
	if len(out.GeneralRecommendations) != 1 {
		t.Fatalf("unexpected recommendations: %+v", out.GeneralRecommendations)
	}
	if out.Score != out.OverallScore || len(out.Suggestions) != len(out.GeneralRecommendations) {
		t.Fatalf("expected mirrored fields, got %+v", out)
	}
}

func TestNormalizeFlatResult(t *testing.T) {
	raw := json.RawMessage(`{"score": 55, "suggestions": ["Add a summary section.", "Quantify achievements."]}`)

	out, err := normalizeATSResult(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if out.OverallScore != 55 {
		t.Fatalf("expected overallScore 55, got %v", out.OverallScore)
	}
	if len(out.Sections) != 0 || out.Sections == nil {
		t.Fatalf("expected empty non-nil sections, got %+v", out.Sections)
	}
	if len(out.GeneralRecommendations) != 2 {
		t.Fatalf("expected suggestions mapped to recommendations, got %+v", out.GeneralRecommendations)
	}
	if out.Score != 55 || len(out.Suggestions) != 2 {
		t.Fatalf("expected mirrored fields, got %+v", out)
	}
}

func TestNormalizeFlatResultCompatibilityKey(t *testing.T) {
	raw := json.RawMessage(`{"atsCompatibilityScore": 62, "suggestions": ["Tighten the summary."]}`)

	out, err := normalizeATSResult(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if out.OverallScore != 62 {
		t.Fatalf("expected overallScore 62, got %v", out.OverallScore)
	}
	if len(out.GeneralRecommendations) != 1 {
		t.Fatalf("unexpected recommendations: %+v", out.GeneralRecommendations)
	}
}

func TestNormalizeClampsScores(t *testing.T) {
	raw := json.RawMessage(`{
		"overallScore": 140,
		"sections": [{"section": "Summary", "score": -5, "feedback": "x"}],
		"generalRecommendations": []
	}`)

	out, err := normalizeATSResult(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if out.OverallScore != 100 {
		t.Fatalf("expected clamp to 100, got %v", out.OverallScore)
	}
	if out.Sections[0].Score != 0 {
		t.Fatalf("expected clamp to 0, got %v", out.Sections[0].Score)
	}
}

func TestNormalizeRejectsMissingScore(t *testing.T) {
	if _, err := normalizeATSResult(json.RawMessage(`{"feedback": "nice resume"}`)); err == nil {
		t.Fatal("expected error for result without a score")
	}
	if _, err := normalizeATSResult(json.RawMessage(`not json`)); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	if _, err := normalizeATSResult(nil); err == nil {
		t.Fatal("expected error for empty input")
	}
}
