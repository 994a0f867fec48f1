package services

import (
	"errors"
	"fmt"
)

// Domain failures the handlers map onto HTTP statuses. Anything else coming
// out of a service is a store failure and turns into a generic 500.
var (
	ErrTeamNotFound   = errors.New("team not found")
	ErrOptionNotFound = errors.New("option not found")
	ErrAlreadyVoted   = errors.New("team has already voted")
	ErrSelfVote       = errors.New("cannot vote for an option of your own team")
)

// ValidationError marks rejected input. The message is safe to show to the
// caller.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
