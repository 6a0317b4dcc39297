package render

import (
	"reflect"
	"testing"
	"time"

	"resumewise-backend/internal/resume"
	"resumewise-backend/internal/templates"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func mustTemplate(t *testing.T, id string) templates.Template {
	t.Helper()
	tpl, err := templates.Get(id)
	if err != nil {
		t.Fatalf("get template %s: %v", id, err)
	}
	return tpl
}

func sectionByKind(t *testing.T, layout LayoutDescription, kind string) Section {
	t.Helper()
	for _, s := range layout.Sections {
		if s.Kind == kind {
			return s
		}
	}
	t.Fatalf("no %s section in %+v", kind, layout.Sections)
	return Section{}
}

func TestRenderTwoColumnPlacement(t *testing.T) {
	r := resume.Sample("user-1", testNow)
	r.TemplateID = "modern_clean"
	// Trim to one entry each to match the scenario.
	r.Content.WorkExperience = r.Content.WorkExperience[:1]
	r.Content.Education = r.Content.Education[:1]

	layout := Render(r, mustTemplate(t, "modern_clean"))

	if layout.Columns != 2 {
		t.Fatalf("expected 2 columns, got %d", layout.Columns)
	}
	if got := sectionByKind(t, layout, KindEducation).Column; got != 1 {
		t.Fatalf("education in column %d, want 1", got)
	}
	if got := sectionByKind(t, layout, KindSkills).Column; got != 1 {
		t.Fatalf("skills in column %d, want 1", got)
	}
	if got := sectionByKind(t, layout, KindSummary).Column; got != 2 {
		t.Fatalf("summary in column %d, want 2", got)
	}
	work := sectionByKind(t, layout, KindWorkExperience)
	if work.Column != 2 {
		t.Fatalf("work experience in column %d, want 2", work.Column)
	}
	if len(work.Entries) != 1 {
		t.Fatalf("expected 1 work entry, got %d", len(work.Entries))
	}
	wantBullets := r.Content.WorkExperience[0].Description
	if !reflect.DeepEqual(work.Entries[0].Bullets, wantBullets) {
		t.Fatalf("bullets out of order: got %v want %v", work.Entries[0].Bullets, wantBullets)
	}
}

func TestRenderSingleColumnOrder(t *testing.T) {
	r := resume.Sample("user-1", testNow)
	layout := Render(r, mustTemplate(t, "professional"))

	if layout.Columns != 1 {
		t.Fatalf("expected 1 column, got %d", layout.Columns)
	}
	wantOrder := []string{KindSummary, KindWorkExperience, KindEducation, KindSkills}
	if len(layout.Sections) != len(wantOrder) {
		t.Fatalf("expected %d sections, got %d", len(wantOrder), len(layout.Sections))
	}
	for i, kind := range wantOrder {
		if layout.Sections[i].Kind != kind {
			t.Fatalf("section %d is %s, want %s", i, layout.Sections[i].Kind, kind)
		}
		if layout.Sections[i].Column != 1 {
			t.Fatalf("section %s in column %d, want 1", kind, layout.Sections[i].Column)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	r := resume.Sample("user-1", testNow)
	tpl := mustTemplate(t, "modern_clean")

	first := Render(r, tpl)
	second := Render(r, tpl)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("render is not deterministic")
	}
}

func TestRenderEmptyResume(t *testing.T) {
	r := resume.NewDefault("user-1", testNow)
	layout := Render(r, mustTemplate(t, "minimal"))

	if layout.Header.FullName != "" {
		t.Fatalf("empty contact must render as empty string")
	}
	summary := sectionByKind(t, layout, KindSummary)
	if summary.Text != "" {
		t.Fatalf("empty summary must render as empty string, got %q", summary.Text)
	}
	work := sectionByKind(t, layout, KindWorkExperience)
	if len(work.Entries) != 0 {
		t.Fatalf("no placeholder entries for empty work history")
	}
	skills := sectionByKind(t, layout, KindSkills)
	if len(skills.Lists) != 2 || skills.Lists[0].Text != "" || skills.Lists[1].Text != "" {
		t.Fatalf("empty skills must render as empty joined strings: %+v", skills.Lists)
	}
}

func TestRenderSkillsJoined(t *testing.T) {
	r := resume.NewDefault("user-1", testNow)
	var err error
	r, err = resume.SetSkillsList(r, resume.SkillsTechnical, "React, Node, TypeScript")
	if err != nil {
		t.Fatalf("set skills: %v", err)
	}

	layout := Render(r, mustTemplate(t, "minimal"))
	skills := sectionByKind(t, layout, KindSkills)
	if skills.Lists[0].Label != "Technical" || skills.Lists[0].Text != "React, Node, TypeScript" {
		t.Fatalf("technical list join round trip broken: %+v", skills.Lists[0])
	}
}

func TestRenderDateRange(t *testing.T) {
	r := resume.NewDefault("user-1", testNow)
	r = resume.AddWorkExperience(r)
	id := r.Content.WorkExperience[0].ID

	var err error
	r, err = resume.UpdateWorkExperienceField(r, id, "startDate", "01/2020")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	r, err = resume.SetCurrentlyWorking(r, id, true)
	if err != nil {
		t.Fatalf("set current: %v", err)
	}

	layout := Render(r, mustTemplate(t, "professional"))
	entry := sectionByKind(t, layout, KindWorkExperience).Entries[0]
	if entry.Dates != "01/2020 - Present" {
		t.Fatalf("got dates %q", entry.Dates)
	}
}
