package dispatch

import (
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
)

// Status classifies the outcome of a tokenizer, joiner or mode-list call.
// The values line up with the failure kinds a caller has to tell apart:
// a malformed input, an allocation failure, and a missing required argument.
type Status int

const (
	StatusOK              Status = 0
	StatusMalformed       Status = 1
	StatusNoMemory        Status = 2
	StatusInvalidArgument Status = 3
)

var StatusDescriptions = map[Status]string{
	StatusOK:              "OK",
	StatusMalformed:       "Malformed Token Sequence",
	StatusNoMemory:        "Out Of Memory",
	StatusInvalidArgument: "Invalid Argument",
}

func (s Status) String() string {
	if desc, ok := StatusDescriptions[s]; ok {
		return desc
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Sentinel errors for each failing Status. Errors returned by this package
// wrap one of these, so errors.Is and errors.Cause both reach them.
var (
	ErrMalformed       = &StatusError{Status: StatusMalformed}
	ErrNoMemory        = &StatusError{Status: StatusNoMemory}
	ErrInvalidArgument = &StatusError{Status: StatusInvalidArgument}
)

// StatusError is the concrete error carried by every sentinel.
type StatusError struct {
	Status Status
}

func (this *StatusError) Error() string {
	return "dispatch: " + this.Status.String()
}

// malformedError reports a zero-length run found at offset in source.
func malformedError(source string, offset int) error {
	return errors.Wrapf(ErrMalformed, "empty segment at offset %d in %q", offset, source)
}

func invalidArgumentError(op string, param string) error {
	return errors.Wrapf(ErrInvalidArgument, "%s: %s is required", op, param)
}

// StatusOf maps an error produced by this package back to its Status.
// A nil error is StatusOK. Errors that do not wrap a StatusError are reported
// as StatusMalformed, since every non-argument failure here stems from input.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	var statusErr *StatusError
	if stderrors.As(err, &statusErr) {
		return statusErr.Status
	}
	return StatusMalformed
}
