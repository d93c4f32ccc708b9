package service

import (
	"context"
	"display-acceptance/internal/domain/entity"
	"display-acceptance/internal/domain/port"
	"fmt"

	"github.com/cockroachdb/errors"
)

// ResponseLegend explains the three accepted answers. It is printed on its own
// line after every instruction.
const ResponseLegend = "(Confirm: <ENTER>, Abort: !(OPTIONAL COMMENT)<ENTER> or Comment: COMMENT<ENTER>)"

var (
	ErrEmptyLabel     = errors.New("prompt label cannot be empty")
	ErrNilStepContext = errors.New("step context cannot be nil")
)

// PromptService asks the operator to carry out or verify one instruction and
// turns the answer into a step result.
type PromptService struct {
	console port.Console
}

// NewPromptService creates a PromptService that talks to the operator through console.
func NewPromptService(console port.Console) (*PromptService, error) {
	if console == nil {
		return nil, errors.New("console cannot be nil")
	}
	return &PromptService{console: console}, nil
}

// Prompt shows label to the operator and blocks until one line of input arrives.
//
// An empty line confirms. A line starting with "!" aborts, and the rest of it is
// an optional comment. Any other line confirms and is itself the comment.
// Non-empty comments are written to the step's diagnostics stream whether or not
// the step was aborted. An abort returns an error matching entity.ErrOperatorAbort.
func (s *PromptService) Prompt(ctx context.Context, sc port.StepContext, label string) error {
	if sc == nil {
		return ErrNilStepContext
	}
	if label == "" {
		return ErrEmptyLabel
	}

	if err := s.console.WritePrompt(label + "\n" + ResponseLegend + "\n"); err != nil {
		return errors.Wrap(err, "write prompt")
	}

	line, err := s.console.ReadLine(ctx)
	if err != nil {
		return errors.Wrapf(err, "read operator response for step %q", sc.StepName())
	}

	resp := entity.ClassifyResponse(line)
	if resp.HasComment() {
		if _, err := fmt.Fprintf(sc.Diagnostics(), "USER COMMENT (Step: %s): %s\n", sc.StepName(), resp.Comment); err != nil {
			return errors.Wrap(err, "write operator comment")
		}
	}

	if resp.Aborted() {
		err := errors.Wrapf(entity.ErrOperatorAbort, "step %q", sc.StepName())
		if resp.HasComment() {
			err = errors.WithDetail(err, resp.Comment)
		}
		return err
	}
	return nil
}
