package resume

import (
	"encoding/json"
	"fmt"
	"time"
)

// Command is one atomic, intention-revealing edit. Commands arrive as JSON
// envelopes tagged by "op" and decode into exactly one concrete type, so
// the whole edit surface is a closed, enumerable set.
type Command interface {
	apply(r Resume) (Resume, error)
}

// Op names understood by DecodeCommand.
const (
	OpSetContactField         = "setContactField"
	OpSetSummary              = "setSummary"
	OpSetTitle                = "setTitle"
	OpSetDesign               = "setDesign"
	OpAddWorkExperience       = "addWorkExperience"
	OpRemoveWorkExperience    = "removeWorkExperience"
	OpUpdateWorkExperience    = "updateWorkExperienceField"
	OpAddDescriptionBullet    = "addDescriptionBullet"
	OpUpdateDescriptionBullet = "updateDescriptionBullet"
	OpRemoveDescriptionBullet = "removeDescriptionBullet"
	OpAddEducation            = "addEducation"
	OpRemoveEducation         = "removeEducation"
	OpUpdateEducation         = "updateEducationField"
	OpSetSkillsList           = "setSkillsList"
	OpSetSkillCategory        = "setSkillCategory"
	OpRemoveSkillCategory     = "removeSkillCategory"
)

type SetContactFieldCmd struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (c SetContactFieldCmd) apply(r Resume) (Resume, error) {
	return SetContactField(r, c.Field, c.Value)
}

type SetSummaryCmd struct {
	Text string `json:"text"`
}

func (c SetSummaryCmd) apply(r Resume) (Resume, error) { return SetSummary(r, c.Text), nil }

type SetTitleCmd struct {
	Title string `json:"title"`
}

func (c SetTitleCmd) apply(r Resume) (Resume, error) { return SetTitle(r, c.Title), nil }

type SetDesignCmd struct {
	DesignPatch
}

func (c SetDesignCmd) apply(r Resume) (Resume, error) { return UpdateDesign(r, c.DesignPatch), nil }

type AddWorkExperienceCmd struct{}

func (AddWorkExperienceCmd) apply(r Resume) (Resume, error) { return AddWorkExperience(r), nil }

type RemoveWorkExperienceCmd struct {
	ID string `json:"id"`
}

func (c RemoveWorkExperienceCmd) apply(r Resume) (Resume, error) {
	return RemoveWorkExperience(r, c.ID), nil
}

// UpdateWorkExperienceCmd updates one field of one entry. The value is a
// string for text fields and a bool for currentlyWorking.
type UpdateWorkExperienceCmd struct {
	ID    string          `json:"id"`
	Field string          `json:"field"`
	Value json.RawMessage `json:"value"`
}

func (c UpdateWorkExperienceCmd) apply(r Resume) (Resume, error) {
	if c.Field == "currentlyWorking" {
		var current bool
		if err := json.Unmarshal(c.Value, &current); err != nil {
			return r, fmt.Errorf("%w: currentlyWorking wants a bool", ErrUnknownField)
		}
		return SetCurrentlyWorking(r, c.ID, current)
	}
	var value string
	if err := json.Unmarshal(c.Value, &value); err != nil {
		return r, fmt.Errorf("%w: %s wants a string", ErrUnknownField, c.Field)
	}
	return UpdateWorkExperienceField(r, c.ID, c.Field, value)
}

type AddDescriptionBulletCmd struct {
	WorkExperienceID string `json:"workExperienceId"`
	Text             string `json:"text"`
}

func (c AddDescriptionBulletCmd) apply(r Resume) (Resume, error) {
	return AddDescriptionBullet(r, c.WorkExperienceID, c.Text)
}

type UpdateDescriptionBulletCmd struct {
	WorkExperienceID string `json:"workExperienceId"`
	BulletIndex      int    `json:"bulletIndex"`
	Text             string `json:"text"`
}

func (c UpdateDescriptionBulletCmd) apply(r Resume) (Resume, error) {
	return UpdateDescriptionBullet(r, c.WorkExperienceID, c.BulletIndex, c.Text)
}

type RemoveDescriptionBulletCmd struct {
	WorkExperienceID string `json:"workExperienceId"`
	BulletIndex      int    `json:"bulletIndex"`
}

func (c RemoveDescriptionBulletCmd) apply(r Resume) (Resume, error) {
	return RemoveDescriptionBullet(r, c.WorkExperienceID, c.BulletIndex)
}

type AddEducationCmd struct{}

func (AddEducationCmd) apply(r Resume) (Resume, error) { return AddEducation(r), nil }

type RemoveEducationCmd struct {
	ID string `json:"id"`
}

func (c RemoveEducationCmd) apply(r Resume) (Resume, error) { return RemoveEducation(r, c.ID), nil }

// UpdateEducationCmd updates one field of one entry. The value is a string
// for text fields and a number (or null) for gpa.
type UpdateEducationCmd struct {
	ID    string          `json:"id"`
	Field string          `json:"field"`
	Value json.RawMessage `json:"value"`
}

func (c UpdateEducationCmd) apply(r Resume) (Resume, error) {
	if c.Field == "gpa" {
		var gpa *float64
		if err := json.Unmarshal(c.Value, &gpa); err != nil {
			return r, fmt.Errorf("%w: gpa wants a number or null", ErrUnknownField)
		}
		return SetEducationGPA(r, c.ID, gpa)
	}
	var value string
	if err := json.Unmarshal(c.Value, &value); err != nil {
		return r, fmt.Errorf("%w: %s wants a string", ErrUnknownField, c.Field)
	}
	return UpdateEducationField(r, c.ID, c.Field, value)
}

type SetSkillsListCmd struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

func (c SetSkillsListCmd) apply(r Resume) (Resume, error) {
	return SetSkillsList(r, c.Kind, c.Text)
}

type SetSkillCategoryCmd struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

func (c SetSkillCategoryCmd) apply(r Resume) (Resume, error) {
	return SetSkillCategory(r, c.Label, c.Text), nil
}

type RemoveSkillCategoryCmd struct {
	Label string `json:"label"`
}

func (c RemoveSkillCategoryCmd) apply(r Resume) (Resume, error) {
	return RemoveSkillCategory(r, c.Label), nil
}

var commandTable = map[string]func() Command{
	OpSetContactField:         func() Command { return &SetContactFieldCmd{} },
	OpSetSummary:              func() Command { return &SetSummaryCmd{} },
	OpSetTitle:                func() Command { return &SetTitleCmd{} },
	OpSetDesign:               func() Command { return &SetDesignCmd{} },
	OpAddWorkExperience:       func() Command { return &AddWorkExperienceCmd{} },
	OpRemoveWorkExperience:    func() Command { return &RemoveWorkExperienceCmd{} },
	OpUpdateWorkExperience:    func() Command { return &UpdateWorkExperienceCmd{} },
	OpAddDescriptionBullet:    func() Command { return &AddDescriptionBulletCmd{} },
	OpUpdateDescriptionBullet: func() Command { return &UpdateDescriptionBulletCmd{} },
	OpRemoveDescriptionBullet: func() Command { return &RemoveDescriptionBulletCmd{} },
	OpAddEducation:            func() Command { return &AddEducationCmd{} },
	OpRemoveEducation:         func() Command { return &RemoveEducationCmd{} },
	OpUpdateEducation:         func() Command { return &UpdateEducationCmd{} },
	OpSetSkillsList:           func() Command { return &SetSkillsListCmd{} },
	OpSetSkillCategory:        func() Command { return &SetSkillCategoryCmd{} },
	OpRemoveSkillCategory:     func() Command { return &RemoveSkillCategoryCmd{} },
}

// DecodeCommand parses one JSON edit envelope into its concrete command.
func DecodeCommand(raw json.RawMessage) (Command, error) {
	var envelope struct {
		Op string `json:"op"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode edit command: %w", err)
	}
	build, ok := commandTable[envelope.Op]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, envelope.Op)
	}
	cmd := build()
	if err := json.Unmarshal(raw, cmd); err != nil {
		return nil, fmt.Errorf("decode %s: %w", envelope.Op, err)
	}
	return cmd, nil
}

// Apply runs one command and, on success, refreshes updatedAt to now.
// On failure the input resume is returned unchanged.
func Apply(r Resume, cmd Command, now time.Time) (Resume, error) {
	out, err := cmd.apply(r)
	if err != nil {
		return r, err
	}
	out.Metadata.UpdatedAt = now
	return out, nil
}

// ApplyAll runs an ordered batch atomically: the first failure aborts and
// returns the original resume untouched.
func ApplyAll(r Resume, cmds []Command, now time.Time) (Resume, error) {
	out := r
	for _, cmd := range cmds {
		next, err := cmd.apply(out)
		if err != nil {
			return r, err
		}
		out = next
	}
	out.Metadata.UpdatedAt = now
	return out, nil
}
