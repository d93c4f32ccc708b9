package port

import "context"

// LineReader reads operator input one line at a time.
type LineReader interface {
	// ReadLine blocks until the operator submits a line and returns it without
	// the trailing newline. There is no timeout; ctx is only consulted before
	// the read starts.
	ReadLine(ctx context.Context) (string, error)
}

// PromptWriter writes instructions to the operator's terminal.
type PromptWriter interface {
	// WritePrompt writes text verbatim to the prompt stream.
	WritePrompt(text string) error
}

// Console is a terminal the operator both reads from and answers on.
type Console interface {
	LineReader
	PromptWriter
}
