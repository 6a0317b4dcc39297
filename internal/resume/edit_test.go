package resume

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func sampleResume(t *testing.T) Resume {
	t.Helper()
	return Sample("user-1", testNow)
}

func TestNewDefault(t *testing.T) {
	r := NewDefault("user-42", testNow)

	if r.ID == "" {
		t.Fatalf("expected generated id")
	}
	if r.UserID != "user-42" {
		t.Fatalf("expected owner user-42, got %q", r.UserID)
	}
	if r.TemplateID != DefaultTemplateID {
		t.Fatalf("expected default template, got %q", r.TemplateID)
	}
	if len(r.Content.WorkExperience) != 0 || len(r.Content.Education) != 0 {
		t.Fatalf("expected empty work/education sequences")
	}
	if !r.Metadata.CreatedAt.Equal(testNow) || !r.Metadata.UpdatedAt.Equal(testNow) {
		t.Fatalf("expected createdAt == updatedAt == now")
	}

	other := NewDefault("user-42", testNow)
	if other.ID == r.ID {
		t.Fatalf("expected distinct ids for distinct resumes")
	}
}

func TestSetContactFieldLeavesSiblingsAlone(t *testing.T) {
	r := sampleResume(t)
	before := r.Clone()

	updated, err := SetContactField(r, FieldEmail, "new@email.com")
	if err != nil {
		t.Fatalf("set contact field: %v", err)
	}
	if updated.Content.ContactInfo.Email != "new@email.com" {
		t.Fatalf("email not updated")
	}
	if updated.Content.ContactInfo.FullName != before.Content.ContactInfo.FullName {
		t.Fatalf("sibling contact field changed")
	}
	if !reflect.DeepEqual(r, before) {
		t.Fatalf("input resume mutated")
	}
}

func TestSetContactFieldUnknown(t *testing.T) {
	r := sampleResume(t)
	_, err := SetContactField(r, "twitter", "@johndoe")
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestAddWorkExperience(t *testing.T) {
	r := sampleResume(t)
	if len(r.Content.WorkExperience) != 2 {
		t.Fatalf("sample should have 2 entries")
	}

	updated := AddWorkExperience(r)
	entries := updated.Content.WorkExperience
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	added := entries[2]
	if added.ID == "" || added.ID == entries[0].ID || added.ID == entries[1].ID {
		t.Fatalf("new entry id must be fresh and distinct")
	}
	if added.CurrentlyWorking {
		t.Fatalf("new entry must not be currentlyWorking")
	}
	if added.Description == nil || len(added.Description) != 0 {
		t.Fatalf("new entry description must be empty, got %v", added.Description)
	}
	if len(r.Content.WorkExperience) != 2 {
		t.Fatalf("input resume mutated")
	}
}

func TestRemoveWorkExperienceIdempotent(t *testing.T) {
	r := sampleResume(t)

	removed := RemoveWorkExperience(r, "no-such-id")
	if !reflect.DeepEqual(removed.Content, r.Content) {
		t.Fatalf("removing an absent id must be a structural no-op")
	}

	removed = RemoveWorkExperience(r, r.Content.WorkExperience[0].ID)
	if len(removed.Content.WorkExperience) != 1 {
		t.Fatalf("expected 1 entry after removal")
	}
	if removed.Content.WorkExperience[0].ID != r.Content.WorkExperience[1].ID {
		t.Fatalf("surviving entry identity changed")
	}
}

func TestUpdateWorkExperienceFieldIsolation(t *testing.T) {
	r := sampleResume(t)
	target := r.Content.WorkExperience[0].ID

	updated, err := UpdateWorkExperienceField(r, target, "company", "Acme")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Content.WorkExperience[0].Company != "Acme" {
		t.Fatalf("field not updated")
	}
	if !reflect.DeepEqual(updated.Content.WorkExperience[1], r.Content.WorkExperience[1]) {
		t.Fatalf("sibling entry perturbed")
	}
	if len(updated.Content.WorkExperience) != len(r.Content.WorkExperience) {
		t.Fatalf("sequence length changed")
	}
	if r.Content.WorkExperience[0].Company == "Acme" {
		t.Fatalf("input resume mutated")
	}
}

func TestUpdateWorkExperienceFieldErrors(t *testing.T) {
	r := sampleResume(t)

	if _, err := UpdateWorkExperienceField(r, "missing", "company", "x"); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
	if _, err := UpdateWorkExperienceField(r, r.Content.WorkExperience[0].ID, "salary", "x"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestDescriptionBullets(t *testing.T) {
	r := sampleResume(t)
	id := r.Content.WorkExperience[0].ID

	added, err := AddDescriptionBullet(r, id, "Shipped the thing.")
	if err != nil {
		t.Fatalf("add bullet: %v", err)
	}
	bullets := added.Content.WorkExperience[0].Description
	if bullets[len(bullets)-1] != "Shipped the thing." {
		t.Fatalf("bullet not appended at end")
	}

	edited, err := UpdateDescriptionBullet(added, id, 0, "Rewrote the first line.")
	if err != nil {
		t.Fatalf("update bullet: %v", err)
	}
	if edited.Content.WorkExperience[0].Description[0] != "Rewrote the first line." {
		t.Fatalf("bullet not updated")
	}
	if added.Content.WorkExperience[0].Description[0] == "Rewrote the first line." {
		t.Fatalf("input resume mutated")
	}

	shrunk, err := RemoveDescriptionBullet(edited, id, 1)
	if err != nil {
		t.Fatalf("remove bullet: %v", err)
	}
	got := shrunk.Content.WorkExperience[0].Description
	want := edited.Content.WorkExperience[0].Description
	if len(got) != len(want)-1 {
		t.Fatalf("expected one fewer bullet")
	}
	if got[1] != want[2] {
		t.Fatalf("later bullets must shift down by one")
	}
}

func TestDescriptionBulletOutOfRange(t *testing.T) {
	r := sampleResume(t)
	id := r.Content.WorkExperience[0].ID
	before := append([]string(nil), r.Content.WorkExperience[0].Description...)

	for _, idx := range []int{-1, len(before), len(before) + 5} {
		out, err := RemoveDescriptionBullet(r, id, idx)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("index %d: expected ErrIndexOutOfRange, got %v", idx, err)
		}
		if !reflect.DeepEqual(out.Content.WorkExperience[0].Description, before) {
			t.Fatalf("index %d: bullet sequence changed on failure", idx)
		}
		if _, err := UpdateDescriptionBullet(r, id, idx, "x"); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("index %d: expected ErrIndexOutOfRange on update, got %v", idx, err)
		}
	}
}

func TestEducationOps(t *testing.T) {
	r := sampleResume(t)

	added := AddEducation(r)
	if len(added.Content.Education) != 3 {
		t.Fatalf("expected 3 education entries")
	}

	id := added.Content.Education[2].ID
	updated, err := UpdateEducationField(added, id, "degree", "PhD in Snacks")
	if err != nil {
		t.Fatalf("update education: %v", err)
	}
	if updated.Content.Education[2].Degree != "PhD in Snacks" {
		t.Fatalf("degree not updated")
	}
	if !reflect.DeepEqual(updated.Content.Education[0], added.Content.Education[0]) {
		t.Fatalf("sibling education entry perturbed")
	}

	if _, err := UpdateEducationField(added, "missing", "degree", "x"); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}

	gpa := 4.0
	withGPA, err := SetEducationGPA(updated, id, &gpa)
	if err != nil {
		t.Fatalf("set gpa: %v", err)
	}
	if withGPA.Content.Education[2].GPA == nil || *withGPA.Content.Education[2].GPA != 4.0 {
		t.Fatalf("gpa not set")
	}

	removed := RemoveEducation(withGPA, id)
	if len(removed.Content.Education) != 2 {
		t.Fatalf("expected 2 entries after removal")
	}
	if !reflect.DeepEqual(RemoveEducation(removed, "missing").Content, removed.Content) {
		t.Fatalf("removing an absent education id must be a no-op")
	}
}

func TestSetSkillsListSplitSemantics(t *testing.T) {
	r := sampleResume(t)

	updated, err := SetSkillsList(r, SkillsTechnical, "React, Node, TypeScript")
	if err != nil {
		t.Fatalf("set skills: %v", err)
	}
	want := []string{"React", "Node", "TypeScript"}
	if !reflect.DeepEqual(updated.Content.Skills.Technical, want) {
		t.Fatalf("got %v, want %v", updated.Content.Skills.Technical, want)
	}

	// Round-trip: joining with ", " reproduces the visual text.
	joined := "React, Node, TypeScript"
	again, _ := SetSkillsList(updated, SkillsTechnical, joined)
	if !reflect.DeepEqual(again.Content.Skills.Technical, want) {
		t.Fatalf("round trip broke the list: %v", again.Content.Skills.Technical)
	}
}

func TestSetSkillsListKeepsBlankTokens(t *testing.T) {
	r := sampleResume(t)

	updated, err := SetSkillsList(r, SkillsSoft, "Communication,  Teamwork ,")
	if err != nil {
		t.Fatalf("set skills: %v", err)
	}
	want := []string{"Communication", "Teamwork", ""}
	if !reflect.DeepEqual(updated.Content.Skills.Soft, want) {
		t.Fatalf("got %v, want %v", updated.Content.Skills.Soft, want)
	}
}

func TestSetSkillsListDuplicatesPreserved(t *testing.T) {
	r := sampleResume(t)
	updated, err := SetSkillsList(r, SkillsTechnical, "Go, Go, Go")
	if err != nil {
		t.Fatalf("set skills: %v", err)
	}
	want := []string{"Go", "Go", "Go"}
	if !reflect.DeepEqual(updated.Content.Skills.Technical, want) {
		t.Fatalf("duplicates must be preserved, got %v", updated.Content.Skills.Technical)
	}
}

func TestSetSkillsListUnknownKind(t *testing.T) {
	r := sampleResume(t)
	if _, err := SetSkillsList(r, "mystical", "Telepathy"); !errors.Is(err, ErrUnknownSkillKind) {
		t.Fatalf("expected ErrUnknownSkillKind, got %v", err)
	}
}

func TestSkillCategories(t *testing.T) {
	r := sampleResume(t)

	updated := SetSkillCategory(r, "Cloud", "AWS, GCP")
	if !reflect.DeepEqual(updated.Content.Skills.Categories["Cloud"], []string{"AWS", "GCP"}) {
		t.Fatalf("category not set")
	}
	if _, ok := r.Content.Skills.Categories["Cloud"]; ok {
		t.Fatalf("input resume mutated")
	}

	removed := RemoveSkillCategory(updated, "Cloud")
	if _, ok := removed.Content.Skills.Categories["Cloud"]; ok {
		t.Fatalf("category not removed")
	}
	if !reflect.DeepEqual(RemoveSkillCategory(removed, "Cloud").Content, removed.Content) {
		t.Fatalf("removing an absent category must be a no-op")
	}
}

func TestSetTemplate(t *testing.T) {
	r := sampleResume(t)
	resolve := func(id string) bool { return id == "professional" }

	updated, err := SetTemplate(r, "professional", resolve)
	if err != nil {
		t.Fatalf("set template: %v", err)
	}
	if updated.TemplateID != "professional" {
		t.Fatalf("templateId not set")
	}
	if !reflect.DeepEqual(updated.Content, r.Content) {
		t.Fatalf("setTemplate must leave content untouched")
	}

	unchanged, err := SetTemplate(r, "vaporwave", resolve)
	if !errors.Is(err, ErrUnknownTemplateID) {
		t.Fatalf("expected ErrUnknownTemplateID, got %v", err)
	}
	if unchanged.TemplateID != r.TemplateID {
		t.Fatalf("failed setTemplate must not change the resume")
	}
}

func TestCloneIsDeep(t *testing.T) {
	r := sampleResume(t)
	clone := r.Clone()

	clone.Content.WorkExperience[0].Description[0] = "tampered"
	clone.Content.Skills.Technical[0] = "tampered"
	clone.Content.Skills.Categories["Databases"][0] = "tampered"
	*clone.Content.Education[0].GPA = 1.0

	if r.Content.WorkExperience[0].Description[0] == "tampered" {
		t.Fatalf("clone shares description backing array")
	}
	if r.Content.Skills.Technical[0] == "tampered" {
		t.Fatalf("clone shares skills backing array")
	}
	if r.Content.Skills.Categories["Databases"][0] == "tampered" {
		t.Fatalf("clone shares category backing array")
	}
	if *r.Content.Education[0].GPA == 1.0 {
		t.Fatalf("clone shares gpa pointer")
	}
}
