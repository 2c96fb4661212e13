package relation

import (
	"errors"
	"fmt"
)

// ErrUnknownRelationType is returned when a relation name resolves to no registered type.
var ErrUnknownRelationType = errors.New("unknown relation type")

// UnknownTypeError carries the relation name and the type id it was resolved to.
type UnknownTypeError struct {
	Relation string
	TypeID   string

	// Suggestion is the closest known relation name, if any is close enough.
	Suggestion string
}

func (e *UnknownTypeError) Error() string {
	msg := fmt.Sprintf("%s: %q", ErrUnknownRelationType, e.Relation)
	if e.TypeID != "" {
		msg += fmt.Sprintf(" (looked up as %q)", e.TypeID)
	}

	if e.Suggestion != "" {
		msg += fmt.Sprintf("; did you mean %q?", e.Suggestion)
	}

	return msg
}

// Unwrap makes errors.Is(err, ErrUnknownRelationType) hold.
func (e *UnknownTypeError) Unwrap() error {
	return ErrUnknownRelationType
}
