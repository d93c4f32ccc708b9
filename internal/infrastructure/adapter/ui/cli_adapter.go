package ui

import (
	"bufio"
	"context"
	"display-acceptance/internal/domain/port"
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

// CLIAdapter implements the Console port on a plain terminal.
// Prompts go to the real standard output, answers are read line by line
// from standard input.
type CLIAdapter struct {
	input   io.Reader
	output  io.Writer
	scanner *bufio.Scanner
}

var _ port.Console = (*CLIAdapter)(nil)

// NewCLIAdapter creates a new CLIAdapter with default I/O (stdin/stdout).
func NewCLIAdapter() *CLIAdapter {
	return NewCLIAdapterWithIO(os.Stdin, os.Stdout)
}

// NewCLIAdapterWithIO creates a new CLIAdapter with custom I/O for testing.
func NewCLIAdapterWithIO(input io.Reader, output io.Writer) *CLIAdapter {
	return &CLIAdapter{
		input:  input,
		output: output,
	}
}

// WritePrompt writes text to the prompt stream unchanged.
func (c *CLIAdapter) WritePrompt(text string) error {
	_, err := io.WriteString(c.output, text)
	return err
}

// ReadLine reads one line of operator input. The scanner is created lazily and
// kept, so buffered input survives between prompts.
// At end of input it returns io.EOF.
func (c *CLIAdapter) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if c.scanner == nil {
		c.scanner = bufio.NewScanner(c.input)
	}

	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", errors.Wrap(err, "read operator input")
		}
		return "", io.EOF
	}

	return c.scanner.Text(), nil
}
