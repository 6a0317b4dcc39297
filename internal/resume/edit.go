package resume

import (
	"strings"

	"github.com/google/uuid"
)

// Editing operations are pure: each returns a new Resume value and leaves
// the input untouched. On failure the input is returned unchanged alongside
// the error, so a caller never observes a partial mutation. Sibling entries
// keep their identity and order across every operation.

// Contact field names accepted by SetContactField.
const (
	FieldFullName  = "fullName"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldLocation  = "location"
	FieldLinkedIn  = "linkedin"
	FieldPortfolio = "portfolio"
	FieldGitHub    = "github"
)

// Skill list kinds accepted by SetSkillsList.
const (
	SkillsTechnical = "technical"
	SkillsSoft      = "soft"
)

// SetContactField replaces one contact field. Any string is accepted;
// email/phone format checking is not this layer's job.
func SetContactField(r Resume, field, value string) (Resume, error) {
	switch field {
	case FieldFullName:
		r.Content.ContactInfo.FullName = value
	case FieldEmail:
		r.Content.ContactInfo.Email = value
	case FieldPhone:
		r.Content.ContactInfo.Phone = value
	case FieldLocation:
		r.Content.ContactInfo.Location = value
	case FieldLinkedIn:
		r.Content.ContactInfo.LinkedIn = value
	case FieldPortfolio:
		r.Content.ContactInfo.Portfolio = value
	case FieldGitHub:
		r.Content.ContactInfo.GitHub = value
	default:
		return r, ErrUnknownField
	}
	return r, nil
}

// SetSummary replaces the professional summary.
func SetSummary(r Resume, text string) Resume {
	r.Content.Summary = text
	return r
}

// SetTitle replaces the display title.
func SetTitle(r Resume, title string) Resume {
	r.Title = title
	return r
}

// DesignPatch carries optional design changes; nil fields are left alone.
type DesignPatch struct {
	PrimaryColor *string  `json:"primaryColor,omitempty"`
	FontFamily   *string  `json:"fontFamily,omitempty"`
	FontSize     *float64 `json:"fontSize,omitempty"`
}

// UpdateDesign applies a design patch.
func UpdateDesign(r Resume, patch DesignPatch) Resume {
	if patch.PrimaryColor != nil {
		r.Design.PrimaryColor = *patch.PrimaryColor
	}
	if patch.FontFamily != nil {
		r.Design.FontFamily = *patch.FontFamily
	}
	if patch.FontSize != nil {
		r.Design.FontSize = *patch.FontSize
	}
	return r
}

// AddWorkExperience appends a blank entry with a fresh id at the end of the
// sequence. Presentation may reverse order for display.
func AddWorkExperience(r Resume) Resume {
	entry := WorkExperience{
		ID:          uuid.NewString(),
		Description: []string{},
	}
	r.Content.WorkExperience = append(copyExperiences(r.Content.WorkExperience), entry)
	return r
}

// RemoveWorkExperience removes the entry with the given id. Removal is
// idempotent: a missing id is a no-op, not an error.
func RemoveWorkExperience(r Resume, id string) Resume {
	src := r.Content.WorkExperience
	out := make([]WorkExperience, 0, len(src))
	for _, exp := range src {
		if exp.ID != id {
			out = append(out, exp)
		}
	}
	r.Content.WorkExperience = out
	return r
}

// UpdateWorkExperienceField replaces one text field on exactly one entry.
func UpdateWorkExperienceField(r Resume, id, field, value string) (Resume, error) {
	idx := findExperience(r.Content.WorkExperience, id)
	if idx < 0 {
		return r, ErrEntryNotFound
	}
	entries := copyExperiences(r.Content.WorkExperience)
	switch field {
	case "jobTitle":
		entries[idx].JobTitle = value
	case "company":
		entries[idx].Company = value
	case "location":
		entries[idx].Location = value
	case "startDate":
		entries[idx].StartDate = value
	case "endDate":
		entries[idx].EndDate = value
	default:
		return r, ErrUnknownField
	}
	r.Content.WorkExperience = entries
	return r, nil
}

// SetCurrentlyWorking flips the currentlyWorking flag on one entry.
func SetCurrentlyWorking(r Resume, id string, current bool) (Resume, error) {
	idx := findExperience(r.Content.WorkExperience, id)
	if idx < 0 {
		return r, ErrEntryNotFound
	}
	entries := copyExperiences(r.Content.WorkExperience)
	entries[idx].CurrentlyWorking = current
	r.Content.WorkExperience = entries
	return r, nil
}

// AddDescriptionBullet appends a bullet to the entry's description.
func AddDescriptionBullet(r Resume, workExperienceID, text string) (Resume, error) {
	idx := findExperience(r.Content.WorkExperience, workExperienceID)
	if idx < 0 {
		return r, ErrEntryNotFound
	}
	entries := copyExperiences(r.Content.WorkExperience)
	entries[idx].Description = append(copyStrings(entries[idx].Description), text)
	r.Content.WorkExperience = entries
	return r, nil
}

// UpdateDescriptionBullet replaces the bullet at the given position.
func UpdateDescriptionBullet(r Resume, workExperienceID string, bulletIndex int, text string) (Resume, error) {
	idx := findExperience(r.Content.WorkExperience, workExperienceID)
	if idx < 0 {
		return r, ErrEntryNotFound
	}
	if bulletIndex < 0 || bulletIndex >= len(r.Content.WorkExperience[idx].Description) {
		return r, ErrIndexOutOfRange
	}
	entries := copyExperiences(r.Content.WorkExperience)
	bullets := copyStrings(entries[idx].Description)
	bullets[bulletIndex] = text
	entries[idx].Description = bullets
	r.Content.WorkExperience = entries
	return r, nil
}

// RemoveDescriptionBullet removes the bullet at the given position;
// later bullets shift down by one.
func RemoveDescriptionBullet(r Resume, workExperienceID string, bulletIndex int) (Resume, error) {
	idx := findExperience(r.Content.WorkExperience, workExperienceID)
	if idx < 0 {
		return r, ErrEntryNotFound
	}
	old := r.Content.WorkExperience[idx].Description
	if bulletIndex < 0 || bulletIndex >= len(old) {
		return r, ErrIndexOutOfRange
	}
	entries := copyExperiences(r.Content.WorkExperience)
	bullets := make([]string, 0, len(old)-1)
	bullets = append(bullets, old[:bulletIndex]...)
	bullets = append(bullets, old[bulletIndex+1:]...)
	entries[idx].Description = bullets
	r.Content.WorkExperience = entries
	return r, nil
}

// AddEducation appends a blank education entry with a fresh id.
func AddEducation(r Resume) Resume {
	entry := Education{ID: uuid.NewString()}
	r.Content.Education = append(copyEducation(r.Content.Education), entry)
	return r
}

// RemoveEducation removes the entry with the given id; idempotent.
func RemoveEducation(r Resume, id string) Resume {
	src := r.Content.Education
	out := make([]Education, 0, len(src))
	for _, edu := range src {
		if edu.ID != id {
			out = append(out, edu)
		}
	}
	r.Content.Education = out
	return r
}

// UpdateEducationField replaces one text field on exactly one entry.
func UpdateEducationField(r Resume, id, field, value string) (Resume, error) {
	idx := findEducation(r.Content.Education, id)
	if idx < 0 {
		return r, ErrEntryNotFound
	}
	entries := copyEducation(r.Content.Education)
	switch field {
	case "degree":
		entries[idx].Degree = value
	case "institution":
		entries[idx].Institution = value
	case "location":
		entries[idx].Location = value
	case "graduationDate":
		entries[idx].GraduationDate = value
	default:
		return r, ErrUnknownField
	}
	r.Content.Education = entries
	return r, nil
}

// SetEducationGPA sets or clears the optional GPA.
func SetEducationGPA(r Resume, id string, gpa *float64) (Resume, error) {
	idx := findEducation(r.Content.Education, id)
	if idx < 0 {
		return r, ErrEntryNotFound
	}
	entries := copyEducation(r.Content.Education)
	if gpa == nil {
		entries[idx].GPA = nil
	} else {
		v := *gpa
		entries[idx].GPA = &v
	}
	r.Content.Education = entries
	return r, nil
}

// SetSkillsList replaces the technical or soft list from comma-separated
// text: split on ",", trim each token, keep blank tokens. Joining the
// result with ", " reproduces the visual text modulo whitespace at the
// split points, so the editor round-trips cleanly.
func SetSkillsList(r Resume, kind, commaSeparated string) (Resume, error) {
	tokens := strings.Split(commaSeparated, ",")
	items := make([]string, len(tokens))
	for i, tok := range tokens {
		items[i] = strings.TrimSpace(tok)
	}
	switch kind {
	case SkillsTechnical:
		r.Content.Skills.Technical = items
	case SkillsSoft:
		r.Content.Skills.Soft = items
	default:
		return r, ErrUnknownSkillKind
	}
	return r, nil
}

// SetSkillCategory replaces one named category list with split-and-trim
// semantics identical to SetSkillsList.
func SetSkillCategory(r Resume, label, commaSeparated string) Resume {
	tokens := strings.Split(commaSeparated, ",")
	items := make([]string, len(tokens))
	for i, tok := range tokens {
		items[i] = strings.TrimSpace(tok)
	}
	categories := make(map[string][]string, len(r.Content.Skills.Categories)+1)
	for k, v := range r.Content.Skills.Categories {
		categories[k] = v
	}
	categories[label] = items
	r.Content.Skills.Categories = categories
	return r
}

// RemoveSkillCategory drops one named category; idempotent.
func RemoveSkillCategory(r Resume, label string) Resume {
	if _, ok := r.Content.Skills.Categories[label]; !ok {
		return r
	}
	categories := make(map[string][]string, len(r.Content.Skills.Categories))
	for k, v := range r.Content.Skills.Categories {
		if k != label {
			categories[k] = v
		}
	}
	r.Content.Skills.Categories = categories
	return r
}

// SetTemplate replaces templateId only. resolve reports whether the id is
// known; the engine stays free of registry I/O.
func SetTemplate(r Resume, templateID string, resolve func(string) bool) (Resume, error) {
	if !resolve(templateID) {
		return r, ErrUnknownTemplateID
	}
	r.TemplateID = templateID
	return r, nil
}

func findExperience(entries []WorkExperience, id string) int {
	for i := range entries {
		if entries[i].ID == id {
			return i
		}
	}
	return -1
}

func findEducation(entries []Education, id string) int {
	for i := range entries {
		if entries[i].ID == id {
			return i
		}
	}
	return -1
}

func copyExperiences(src []WorkExperience) []WorkExperience {
	out := make([]WorkExperience, len(src))
	copy(out, src)
	return out
}

func copyEducation(src []Education) []Education {
	out := make([]Education, len(src))
	copy(out, src)
	return out
}

func copyStrings(src []string) []string {
	out := make([]string, len(src))
	copy(out, src)
	return out
}
