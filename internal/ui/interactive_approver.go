package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/airnav-tools/nasr/pkg/nasr"
)

// InteractiveApprover implements the RowApprover interface for console-based
// confirmation. After a row-level decode failure it shows the failure and
// asks whether the pass should continue past it.
type InteractiveApprover struct {
	input  io.Reader
	output io.Writer
}

// NewInteractiveApprover creates an approver prompting on stderr and reading
// stdin.
func NewInteractiveApprover() nasr.RowApprover {
	return &InteractiveApprover{
		input:  os.Stdin,
		output: os.Stderr,
	}
}

// ContinueAfter prompts the user. Anything other than an explicit yes aborts
// the record type's pass.
func (a *InteractiveApprover) ContinueAfter(ctx context.Context, rowErr error) (bool, error) {
	fmt.Fprintf(a.output, "\n✗ Row failed to decode:\n  %v\n", rowErr)
	fmt.Fprint(a.output, "Skip this row and continue parsing? [y/N]: ")

	// Read user input with context cancellation support
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.input)
		line, err := reader.ReadString('\n')
		if err != nil {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(line)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case answer := <-inputChan:
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}

// Verify InteractiveApprover implements the RowApprover interface at compile time
var _ nasr.RowApprover = (*InteractiveApprover)(nil)
