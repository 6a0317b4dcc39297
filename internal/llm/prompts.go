package llm

import _ "embed"

var (
	//go:embed prompts/summary_v1.txt
	summaryV1 string
	//go:embed prompts/ats_v1.txt
	atsV1 string
	//go:embed prompts/ats_v2.txt
	atsV2 string
)

// SummaryPromptTemplate returns the summary generation prompt text.
func SummaryPromptTemplate() string {
	return summaryV1
}

// ATSPromptTemplate returns the ATS prompt template text and whether the version was recognized.
func ATSPromptTemplate(version string) (string, bool) {
	switch version {
	case "v2":
		return atsV2, true
	case "v1":
		return atsV1, true
	default:
		return atsV2, false
	}
}
