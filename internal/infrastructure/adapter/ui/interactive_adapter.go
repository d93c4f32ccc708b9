package ui

import (
	"context"
	"display-acceptance/internal/domain/port"
	"io"
	"os"

	prompt "github.com/c-bata/go-prompt"
	"github.com/cockroachdb/errors"
)

// responseSuggestions are offered while the operator types an answer.
var responseSuggestions = []prompt.Suggest{
	{Text: "!", Description: "abort the step, optionally followed by a reason"},
}

// responseCompleter suggests the abort marker while the line is still empty
// or starts with it. Comments get no suggestions.
func responseCompleter(d prompt.Document) []prompt.Suggest {
	text := d.TextBeforeCursor()
	if text == "" {
		return nil
	}
	return prompt.FilterHasPrefix(responseSuggestions, text, false)
}

// inputOutcome is how a go-prompt read ended.
type inputOutcome int

const (
	// lineSubmitted means the operator pressed Enter.
	lineSubmitted inputOutcome = iota
	// inputClosed means Ctrl+D on an empty line.
	inputClosed
	// inputInterrupted means Ctrl+C, which go-prompt consumes in raw mode.
	inputInterrupted
)

// keyState records the keys that end a go-prompt read. go-prompt returns ""
// for Enter on an empty line and for Ctrl+D alike, so the outcome is taken
// from the keys instead of the returned text.
type keyState struct {
	submitted   bool
	interrupted bool
}

func (k *keyState) bindings() []prompt.KeyBind {
	submit := func(*prompt.Buffer) { k.submitted = true }
	return []prompt.KeyBind{
		{Key: prompt.Enter, Fn: submit},
		{Key: prompt.ControlJ, Fn: submit},
		{Key: prompt.ControlM, Fn: submit},
		{Key: prompt.ControlC, Fn: func(*prompt.Buffer) { k.interrupted = true }},
	}
}

// exitOnInterrupt ends the read right after Ctrl+C.
func (k *keyState) exitOnInterrupt(_ string, _ bool) bool {
	return k.interrupted
}

func (k *keyState) outcome() inputOutcome {
	switch {
	case k.interrupted:
		return inputInterrupted
	case k.submitted:
		return lineSubmitted
	default:
		return inputClosed
	}
}

// InteractiveAdapter implements the Console port with a line editor.
// It requires a real terminal; use CLIAdapter for piped input.
type InteractiveAdapter struct {
	output    io.Writer
	prefix    string
	input     func(prefix string) (string, inputOutcome)
	interrupt func() error
}

var _ port.Console = (*InteractiveAdapter)(nil)

// NewInteractiveAdapter creates an InteractiveAdapter that writes prompts to
// stdout and reads answers through go-prompt.
func NewInteractiveAdapter() *InteractiveAdapter {
	return &InteractiveAdapter{
		output:    os.Stdout,
		prefix:    "> ",
		input:     readPrompt,
		interrupt: raiseInterrupt,
	}
}

func readPrompt(prefix string) (string, inputOutcome) {
	keys := &keyState{}
	line := prompt.Input(prefix, responseCompleter,
		prompt.OptionTitle("display acceptance"),
		prompt.OptionPrefixTextColor(prompt.Blue),
		prompt.OptionAddKeyBind(keys.bindings()...),
		prompt.OptionSetExitCheckerOnInput(keys.exitOnInterrupt),
	)
	return line, keys.outcome()
}

// raiseInterrupt sends SIGINT to this process so the interrupt handler sees
// the Ctrl+C the terminal no longer delivers in raw mode.
func raiseInterrupt() error {
	p, err := os.FindProcess(os.Getpid())
	if err != nil {
		return err
	}
	return p.Signal(os.Interrupt)
}

// WritePrompt writes text to the prompt stream unchanged.
func (a *InteractiveAdapter) WritePrompt(text string) error {
	_, err := io.WriteString(a.output, text)
	return err
}

// ReadLine reads one edited line. Ctrl+D on an empty line returns io.EOF.
// Ctrl+C is forwarded as SIGINT and the read starts over.
func (a *InteractiveAdapter) ReadLine(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		line, outcome := a.input(a.prefix)
		switch outcome {
		case inputClosed:
			return "", io.EOF
		case inputInterrupted:
			if err := a.interrupt(); err != nil {
				return "", errors.Wrap(err, "forward interrupt")
			}
		default:
			return line, nil
		}
	}
}
