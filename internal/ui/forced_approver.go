package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/airnav-tools/nasr/pkg/nasr"
)

// ForcedApprover implements the RowApprover interface with a fixed decision,
// for non-interactive runs. With --continue-on-error every row failure is
// skipped; without it, the first row failure aborts the record type's pass.
type ForcedApprover struct {
	continueParsing bool
	output          io.Writer
}

// NewForcedApprover creates an approver that always answers continueParsing.
func NewForcedApprover(continueParsing bool) nasr.RowApprover {
	return &ForcedApprover{
		continueParsing: continueParsing,
		output:          os.Stderr,
	}
}

// ContinueAfter reports the fixed decision without consulting anyone.
func (a *ForcedApprover) ContinueAfter(ctx context.Context, rowErr error) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if a.continueParsing {
		fmt.Fprintf(a.output, "skipping row: %v\n", rowErr)
		return true, nil
	}
	fmt.Fprintf(a.output, "stopping on row failure: %v\n", rowErr)
	return false, nil
}

// Verify ForcedApprover implements the RowApprover interface at compile time
var _ nasr.RowApprover = (*ForcedApprover)(nil)
