package ai

import (
	"encoding/json"
	"errors"
	"fmt"
)

// NormalizedATSResult is the single normalized ATS response schema returned by the API.
//
// Providers have emitted two shapes over time: a flat
// {"score": n, "suggestions": [...]} result and the sectioned
// {"overallScore": n, "sections": [...], "generalRecommendations": [...]}
// result. Both are accepted and folded into this one. The normalized form
// carries both field spellings so callers written against either shape
// keep working: score mirrors overallScore and suggestions mirrors
// generalRecommendations.
type NormalizedATSResult struct {
	OverallScore           float64           `json:"overallScore"`
	Score                  float64           `json:"score"`
	Sections               []SectionFeedback `json:"sections"`
	Suggestions            []string          `json:"suggestions"`
	GeneralRecommendations []string          `json:"generalRecommendations"`
}

// SectionFeedback scores one resume section.
type SectionFeedback struct {
	Section  string  `json:"section"`
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

type atsResultV1 struct {
	Score                 float64  `json:"score"`
	ATSCompatibilityScore float64  `json:"atsCompatibilityScore"`
	Suggestions           []string `json:"suggestions"`
}

type atsResultV2 struct {
	OverallScore           float64           `json:"overallScore"`
	Sections               []SectionFeedback `json:"sections"`
	GeneralRecommendations []string          `json:"generalRecommendations"`
}

func normalizeATSResult(raw json.RawMessage) (NormalizedATSResult, error) {
	if len(raw) == 0 {
		return NormalizedATSResult{}, errors.New("empty analysis result")
	}
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return NormalizedATSResult{}, err
	}

	_, hasOverall := top["overallScore"]
	_, hasScore := top["score"]
	_, hasCompat := top["atsCompatibilityScore"]
	hasFlat := hasScore || hasCompat

	switch {
	case hasOverall:
		var parsed atsResultV2
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return NormalizedATSResult{}, err
		}
		out := normalizeFromV2(parsed)
		return out, validateNormalized(out)
	case hasFlat:
		var parsed atsResultV1
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return NormalizedATSResult{}, err
		}
		out := normalizeFromV1(parsed)
		return out, validateNormalized(out)
	default:
		return NormalizedATSResult{}, errors.New("analysis result missing score")
	}
}

func normalizeFromV2(parsed atsResultV2) NormalizedATSResult {
	sections := make([]SectionFeedback, 0, len(parsed.Sections))
	for _, s := range parsed.Sections {
		s.Score = clampScore(s.Score)
		sections = append(sections, s)
	}
	score := clampScore(parsed.OverallScore)
	recs := nonNil(parsed.GeneralRecommendations)
	return NormalizedATSResult{
		OverallScore:           score,
		Score:                  score,
		Sections:               sections,
		Suggestions:            recs,
		GeneralRecommendations: recs,
	}
}

func normalizeFromV1(parsed atsResultV1) NormalizedATSResult {
	raw := parsed.Score
	if raw == 0 && parsed.ATSCompatibilityScore != 0 {
		raw = parsed.ATSCompatibilityScore
	}
	score := clampScore(raw)
	recs := nonNil(parsed.Suggestions)
	return NormalizedATSResult{
		OverallScore:           score,
		Score:                  score,
		Sections:               []SectionFeedback{},
		Suggestions:            recs,
		GeneralRecommendations: recs,
	}
}

func validateNormalized(out NormalizedATSResult) error {
	for _, s := range out.Sections {
		if s.Section == "" {
			return fmt.Errorf("section feedback missing section name")
		}
	}
	return nil
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func resultToMap(out NormalizedATSResult) (map[string]any, error) {
	payload, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	var result map[string]any
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, err
	}
	return result, nil
}
