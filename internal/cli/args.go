package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/airnav-tools/nasr/pkg/nasr"
)

// RequireDistributionPath validates that exactly one distribution_path
// argument is provided. Returns a helpful error message with usage and
// examples if missing or too many.
func RequireDistributionPath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <distribution_path>

Usage: %s

Example:
  %s ./28DaySubscription`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// resolveRecordTypes converts type names from flags or configuration into
// record types, rejecting anything the decoder does not implement.
func resolveRecordTypes(names []string) ([]nasr.RecordType, error) {
	if len(names) == 0 {
		return nil, nil
	}
	types := make([]nasr.RecordType, 0, len(names))
	for _, name := range names {
		rt, err := nasr.ParseRecordType(name)
		if err != nil {
			return nil, err
		}
		types = append(types, rt)
	}
	return types, nil
}
