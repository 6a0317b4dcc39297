package resume

import "errors"

var (
	// ErrEntryNotFound means the addressed work-experience or education id
	// does not exist on the resume. The edit was issued against state the
	// caller no longer has.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrIndexOutOfRange means a bullet position is not valid for the
	// entry's current description sequence.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnknownField means a field name outside the closed edit surface.
	ErrUnknownField = errors.New("unknown field")

	// ErrUnknownSkillKind means a skills list other than technical or soft.
	ErrUnknownSkillKind = errors.New("unknown skill kind")

	// ErrUnknownCommand means an edit op name outside the command table.
	ErrUnknownCommand = errors.New("unknown edit command")

	// ErrUnknownTemplateID mirrors the registry's not-found condition for
	// callers that only import this package.
	ErrUnknownTemplateID = errors.New("unknown template")
)
