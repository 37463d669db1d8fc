package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `
  _ __   __ _ ___ _ __
 | '_ \ / _` + "`" + ` / __| '__|
 | | | | (_| |\__ \ |
 |_| |_|\__,_||___/_|`

var rootCmd = &cobra.Command{
	Use:   "nasr",
	Short: "Aeronautical distribution decoder",
	Long: asciiLogo + `

nasr decodes the fixed-width and CSV files of a National Airspace System
Resources distribution into typed, cross-referenced records. Field positions
come from the companion layout-description files shipped inside the
distribution itself, so a new cycle needs no code changes.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or parameters
  11 - Distribution file not found
  12 - Parse aborted on a row failure
  13 - Layout description could not be parsed`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for nasr")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
