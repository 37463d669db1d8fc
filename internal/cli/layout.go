package cli

import (
	"fmt"
	"path"
	"strings"

	"github.com/spf13/cobra"

	"github.com/airnav-tools/nasr/internal/assemble"
	"github.com/airnav-tools/nasr/internal/distribution"
	"github.com/airnav-tools/nasr/internal/layout"
	"github.com/airnav-tools/nasr/internal/pipeline"
	"github.com/airnav-tools/nasr/pkg/nasr"
)

var layoutCmd = &cobra.Command{
	Use:   "layout <distribution_path> <type>",
	Short: "Show a record type's discovered field layout",
	Long: `Layout prints the field groups a record type's layout-description file
declares: one table per row shape (primary record and each continuation),
with the half-open byte range every field occupies.

Useful for checking what a new distribution cycle changed before parsing it.

Arguments:
  distribution_path    Path to the directory holding the extracted
                       distribution files
  type                 Record type to inspect: apt, aff, fss or awos

Examples:
  nasr layout ./28DaySubscription apt`,
	Args: cobra.ExactArgs(2),
	RunE: runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}

func runLayout(cmd *cobra.Command, args []string) error {
	rt, err := nasr.ParseRecordType(args[1])
	if err != nil {
		return err
	}

	dist := distribution.NewDirectory(args[0])
	parsers := pipeline.ParsersFor([]nasr.RecordType{rt}, dist)
	if len(parsers) == 0 {
		return fmt.Errorf("unknown record type %q: %w", args[1], nasr.ErrInvalidConfig)
	}

	for _, file := range parsers[0].Files() {
		if strings.EqualFold(path.Ext(file), ".csv") {
			fmt.Printf("%s: CSV file, field positions come from its header row\n", file)
			continue
		}
		if err := printLayout(dist, file); err != nil {
			return err
		}
	}
	return nil
}

// printLayout parses one data file's companion layout description and prints
// its groups.
func printLayout(dist nasr.Distribution, dataFile string) error {
	layoutFile := assemble.LayoutFileFor(dataFile)
	f, err := dist.Open(layoutFile)
	if err != nil {
		return err
	}
	defer f.Close()

	schema, err := layout.Parse(f, layoutFile)
	if err != nil {
		return err
	}

	fmt.Printf("%s (described by %s): %d field groups\n", dataFile, layoutFile, len(schema.Groups))
	for i, g := range schema.Groups {
		fmt.Printf("\ngroup %d (%d fields)\n", i, len(g.Fields))
		for j, field := range g.Fields {
			fmt.Printf("  %2d  [%4d, %4d)  %s\n", j, field.Start, field.End, identifierLabel(field.Identifier))
		}
	}
	return nil
}

func identifierLabel(id layout.FieldIdentifier) string {
	switch id.Kind {
	case layout.IdentifierDLID:
		return "DLID"
	case layout.IdentifierNumber:
		return id.Number
	default:
		return "-"
	}
}
