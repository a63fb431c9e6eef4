package schema

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse is matched by every MalformedResponseError.
var ErrMalformedResponse = errors.New("malformed response")

// MalformedResponseError names the stage and question of a response that
// cannot be scored. It is never returned for partial input.
type MalformedResponseError struct {
	Stage      Stage
	QuestionID string
	Reason     string
}

func (e *MalformedResponseError) Error() string {
	switch {
	case e.Stage == "" && e.QuestionID == "":
		return fmt.Sprintf("malformed response: %s", e.Reason)
	case e.QuestionID == "":
		return fmt.Sprintf("malformed response in stage %q: %s", e.Stage, e.Reason)
	default:
		return fmt.Sprintf("malformed response for %s/%s: %s", e.Stage, e.QuestionID, e.Reason)
	}
}

// Unwrap lets errors.Is match ErrMalformedResponse.
func (e *MalformedResponseError) Unwrap() error {
	return ErrMalformedResponse
}
