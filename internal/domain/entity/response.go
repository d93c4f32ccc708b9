package entity

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// abortPrefix marks an operator response as an abort. Everything after it is
// an optional comment.
const abortPrefix = "!"

// ErrOperatorAbort is returned when the operator aborts a step. It is the only
// failure an operator can signal and it always fails the running scenario.
var ErrOperatorAbort = errors.New("step aborted by operator")

// ResponseKind classifies a single line of operator input.
type ResponseKind int

const (
	// Confirm is an empty line.
	Confirm ResponseKind = iota
	// Abort is any line starting with "!".
	Abort
	// ConfirmWithComment is any other non-empty line.
	ConfirmWithComment
)

// String returns a lower-case name for the kind, used in logs.
func (k ResponseKind) String() string {
	switch k {
	case Confirm:
		return "confirm"
	case Abort:
		return "abort"
	case ConfirmWithComment:
		return "confirm_with_comment"
	default:
		return "unknown"
	}
}

// OperatorResponse is the classified form of one line read from the operator.
type OperatorResponse struct {
	Kind    ResponseKind
	Comment string
}

// ClassifyResponse turns a raw input line into an OperatorResponse.
// Every string maps to exactly one kind, including the empty string.
func ClassifyResponse(line string) OperatorResponse {
	switch {
	case line == "":
		return OperatorResponse{Kind: Confirm}
	case strings.HasPrefix(line, abortPrefix):
		return OperatorResponse{Kind: Abort, Comment: line[len(abortPrefix):]}
	default:
		return OperatorResponse{Kind: ConfirmWithComment, Comment: line}
	}
}

// Aborted reports whether the response fails the step.
func (r OperatorResponse) Aborted() bool {
	return r.Kind == Abort
}

// HasComment reports whether the response carries a comment worth recording.
// This is independent of whether the step was aborted.
func (r OperatorResponse) HasComment() bool {
	return r.Comment != ""
}
