package openai

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"resumewise-backend/internal/llm"
)

// Message represents an OpenAI chat message.
type Message struct {
	Role    string
	Content string
}

const (
	systemPromptWriter  = "You are a professional resume writer. Respond with JSON only. Output must match the schema exactly."
	systemPromptATS     = "You are a resume analysis engine. Respond with JSON only. No markdown. Never omit keys. Output must match the schema exactly."
	systemPromptFixJSON = "You are a JSON repair tool. Return only valid JSON that matches the schema exactly."
)

// BuildSummaryPrompt creates the chat messages for a summary generation request.
func BuildSummaryPrompt(input llm.SummaryInput) []Message {
	replacer := strings.NewReplacer(
		"{{JOB_TITLE}}", input.JobTitle,
		"{{YEARS_OF_EXPERIENCE}}", strconv.FormatFloat(input.YearsOfExperience, 'f', -1, 64),
		"{{KEY_SKILLS}}", input.KeySkills,
	)
	return []Message{
		{Role: "system", Content: systemPromptWriter},
		{Role: "user", Content: replacer.Replace(llm.SummaryPromptTemplate())},
	}
}

// BuildATSPrompt creates the chat messages for an ATS analysis request.
func BuildATSPrompt(promptVersion string, resumeText string, jobDescription string, model string) []Message {
	_, developer := resolveATSTemplate(promptVersion, jobDescription, model)
	return []Message{
		{Role: "system", Content: systemPromptATS},
		{Role: "developer", Content: developer},
		{Role: "user", Content: buildUserPrompt(resumeText, jobDescription)},
	}
}

func buildFixPrompt(promptVersion string, jobDescription string, model string, raw []byte) []Message {
	_, developer := resolveATSTemplate(promptVersion, jobDescription, model)
	return []Message{
		{Role: "system", Content: systemPromptFixJSON},
		{Role: "developer", Content: developer},
		{Role: "user", Content: fixUserPrompt(raw)},
	}
}

func resolveATSTemplate(promptVersion string, jobDescription string, model string) (string, string) {
	version := strings.TrimSpace(promptVersion)
	template, ok := llm.ATSPromptTemplate(version)
	usedVersion := version
	if !ok {
		log.Printf("unknown prompt version %q, defaulting to v2", version)
		usedVersion = "v2"
		template, _ = llm.ATSPromptTemplate(usedVersion)
	}

	jobDescriptionProvided := "true"
	if strings.TrimSpace(jobDescription) == "" {
		jobDescriptionProvided = "false"
	}

	replacer := strings.NewReplacer(
		"{{PROMPT_VERSION}}", usedVersion,
		"{{MODEL}}", model,
		"{{JOB_DESCRIPTION_PROVIDED}}", jobDescriptionProvided,
	)
	return usedVersion, replacer.Replace(template)
}

func buildUserPrompt(resumeText, jobDescription string) string {
	jd := jobDescription
	if strings.TrimSpace(jd) == "" {
		jd = "N/A"
	}
	return fmt.Sprintf("Resume Text:\n%s\n\nJob Description:\n%s", resumeText, jd)
}

func fixUserPrompt(raw []byte) string {
	return fmt.Sprintf("Fix this JSON to match the schema exactly. Output JSON only:\n%s", string(raw))
}
