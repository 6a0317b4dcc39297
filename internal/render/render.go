// Package render projects a resume and its template into an ordered,
// column-assigned layout description. It performs no I/O and depends on no
// ambient state: identical inputs always produce identical output.
package render

import (
	"strings"

	"resumewise-backend/internal/resume"
	"resumewise-backend/internal/templates"
)

// Section kinds, in their fixed display order.
const (
	KindSummary        = "summary"
	KindWorkExperience = "workExperience"
	KindEducation      = "education"
	KindSkills         = "skills"
)

// LayoutDescription is the rendering engine's output, ready for a
// presentation layer to style.
type LayoutDescription struct {
	Columns  int       `json:"columns"`
	Header   Header    `json:"header"`
	Sections []Section `json:"sections"`
}

// Header carries the contact block shown above the columns.
type Header struct {
	FullName string   `json:"fullName"`
	Details  []string `json:"details"`
}

// Section is one rendered block assigned to a column.
type Section struct {
	Kind    string        `json:"kind"`
	Column  int           `json:"column"`
	Text    string        `json:"text,omitempty"`
	Entries []Entry       `json:"entries,omitempty"`
	Lists   []LabeledList `json:"lists,omitempty"`
}

// Entry is one work-experience or education item.
type Entry struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Meta     string   `json:"meta"`
	Dates    string   `json:"dates,omitempty"`
	Bullets  []string `json:"bullets,omitempty"`
}

// LabeledList is a display-joined skill list.
type LabeledList struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

type placement struct {
	kind   string
	column int
}

// Section placement is a fixed policy keyed off the template's layout,
// never off the template's identity. Two-column templates put education
// and skills in the sidebar (column 1) and the narrative sections in the
// main column (column 2).
var layoutPolicies = map[templates.Layout][]placement{
	templates.LayoutSingleColumn: {
		{KindSummary, 1},
		{KindWorkExperience, 1},
		{KindEducation, 1},
		{KindSkills, 1},
	},
	templates.LayoutTwoColumn: {
		{KindEducation, 1},
		{KindSkills, 1},
		{KindSummary, 2},
		{KindWorkExperience, 2},
	},
}

// Render produces the layout for a resume under the given template.
// Empty fields render as empty strings; missing data is never an error.
func Render(r resume.Resume, tpl templates.Template) LayoutDescription {
	policy, ok := layoutPolicies[tpl.Layout]
	if !ok {
		policy = layoutPolicies[templates.LayoutSingleColumn]
	}

	columns := 1
	if tpl.Layout == templates.LayoutTwoColumn {
		columns = 2
	}

	out := LayoutDescription{
		Columns: columns,
		Header:  renderHeader(r.Content.ContactInfo),
	}
	for _, p := range policy {
		section := Section{Kind: p.kind, Column: p.column}
		switch p.kind {
		case KindSummary:
			section.Text = r.Content.Summary
		case KindWorkExperience:
			section.Entries = renderExperience(r.Content.WorkExperience)
		case KindEducation:
			section.Entries = renderEducation(r.Content.Education)
		case KindSkills:
			section.Lists = renderSkills(r.Content.Skills)
		}
		out.Sections = append(out.Sections, section)
	}
	return out
}

func renderHeader(c resume.ContactInfo) Header {
	return Header{
		FullName: c.FullName,
		Details:  []string{c.Email, c.Phone, c.Location, c.LinkedIn, c.GitHub},
	}
}

func renderExperience(entries []resume.WorkExperience) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, exp := range entries {
		out = append(out, Entry{
			Title:    exp.JobTitle,
			Subtitle: exp.Company,
			Meta:     exp.Location,
			Dates:    dateRange(exp),
			Bullets:  append([]string(nil), exp.Description...),
		})
	}
	return out
}

func dateRange(exp resume.WorkExperience) string {
	end := exp.EndDate
	if exp.CurrentlyWorking && end == "" {
		end = "Present"
	}
	if exp.StartDate == "" && end == "" {
		return ""
	}
	return exp.StartDate + " - " + end
}

func renderEducation(entries []resume.Education) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, edu := range entries {
		out = append(out, Entry{
			Title:    edu.Degree,
			Subtitle: edu.Institution,
			Meta:     edu.GraduationDate,
		})
	}
	return out
}

func renderSkills(skills resume.Skills) []LabeledList {
	return []LabeledList{
		{Label: "Technical", Text: strings.Join(skills.Technical, ", ")},
		{Label: "Soft", Text: strings.Join(skills.Soft, ", ")},
	}
}
