package domain

import (
	"errors"
	"fmt"
)

// ErrMissingInput is matched by every MissingInputError.
var ErrMissingInput = errors.New("missing input")

// MissingInputError reports a caller contract violation: an input needed to
// resolve the cognition trait was not supplied.
type MissingInputError struct {
	// Field names the absent input, e.g. "anxiety|cognition" or "score_pi".
	Field  string
	Reason string
}

func (e *MissingInputError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("missing input %s", e.Field)
	}
	return fmt.Sprintf("missing input %s: %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrMissingInput) match.
func (e *MissingInputError) Is(target error) bool {
	return target == ErrMissingInput
}
