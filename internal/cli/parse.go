package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/airnav-tools/nasr/internal/assemble"
	"github.com/airnav-tools/nasr/internal/config"
	"github.com/airnav-tools/nasr/internal/distribution"
	"github.com/airnav-tools/nasr/internal/logging"
	"github.com/airnav-tools/nasr/internal/pipeline"
	"github.com/airnav-tools/nasr/internal/tui"
	"github.com/airnav-tools/nasr/internal/ui"
	"github.com/airnav-tools/nasr/pkg/nasr"
)

var parseCmd = &cobra.Command{
	Use:   "parse <distribution_path>",
	Short: "Decode a distribution into typed records",
	Long: `Parse decodes the data files in a distribution directory into typed,
cross-referenced records and reports a per-type summary.

The parse command:
1. Discovers each record type's field layout from its companion
   layout-description file (CSV types bind to their header row instead)
2. Streams every data file line by line, one goroutine per record type
3. Assembles primary rows and their continuation rows into records
4. Publishes each type's collection and prints the run summary

Arguments:
  distribution_path    Path to the directory holding the extracted
                       distribution files (APT.txt, apt_rf.txt, ...)

Row failures:
  A row that fails to decode never stops the other record types. At an
  interactive terminal you are asked whether to skip it; in scripts and
  CI the pass stops on the first failure unless --continue-on-error is
  set. A missing data file or an unusable layout description always
  aborts the affected type.

Examples:
  # Parse every implemented record type
  nasr parse ./28DaySubscription

  # Parse only airports and flight service stations
  nasr parse ./28DaySubscription --type apt --type fss

  # Unattended run that skips bad rows and records the cycle date
  nasr parse ./28DaySubscription --continue-on-error --cycle 01/25/2026`,
	Args: RequireDistributionPath,
	RunE: runParse,
}

type parseFlagValues struct {
	types           []string
	cycle           string
	continueOnError bool
	force           bool
	timeout         time.Duration
}

var parseFlags parseFlagValues

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringSliceVar(&parseFlags.types, "type", nil,
		"Record type to parse (can be specified multiple times)\n"+
			"One of: apt, aff, fss, awos. Default: all implemented types\n"+
			"Example: --type apt --type awos")
	parseCmd.Flags().StringVar(&parseFlags.cycle, "cycle", "",
		"Effective date of the distribution cycle, MM/DD/YYYY\n"+
			"Carried on the parsed graph and the run summary, not interpreted\n"+
			"Precedence: --cycle > cycle.effective in nasr.yaml")
	parseCmd.Flags().BoolVar(&parseFlags.continueOnError, "continue-on-error", false,
		"Skip rows that fail to decode instead of prompting or stopping\n"+
			"Schema-fatal failures still abort the affected record type")
	parseCmd.Flags().BoolVar(&parseFlags.force, "force", false,
		"Never prompt on a row failure; stop the affected type instead\n"+
			"Use for CI/CD pipelines where --continue-on-error is too permissive")

	// Timeout flag - catastrophic failure protection, not normal timeout control
	parseCmd.Flags().DurationVar(&parseFlags.timeout, "timeout", 0,
		"Abort the whole run after this duration (default: no limit)\n"+
			"Examples: 30s, 5m, 1h30m")
}

// buildParseConfig builds a ParseConfig from CLI flags, nasr.yaml and the
// environment. Flags override the file; the file overrides nothing but its
// own absence. Extracted for testability.
func buildParseConfig(cmd *cobra.Command, sourcePath string, verbose bool) (nasr.ParseConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := config.Load(sourcePath)
	if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nasr.ParseConfig{}, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}

	typeNames := parseFlags.types
	if len(typeNames) == 0 && projectCfg != nil {
		typeNames = projectCfg.Types
	}
	types, err := resolveRecordTypes(typeNames)
	if err != nil {
		return nasr.ParseConfig{}, err
	}

	cycleText := parseFlags.cycle
	if cycleText == "" && projectCfg != nil {
		cycleText = projectCfg.Cycle.Effective
	}
	cycle, err := resolveCycle(cycleText)
	if err != nil {
		return nasr.ParseConfig{}, err
	}

	continueOnError := parseFlags.continueOnError
	if !cmd.Flags().Changed("continue-on-error") && projectCfg != nil {
		continueOnError = projectCfg.ContinueOnError
	}
	if !verbose && projectCfg != nil {
		verbose = projectCfg.Verbose
	}

	cfg := nasr.ParseConfig{
		SourcePath:      sourcePath,
		Types:           types,
		Cycle:           cycle,
		ContinueOnError: continueOnError,
		Verbose:         verbose,
	}
	if err := cfg.Validate(); err != nil {
		return nasr.ParseConfig{}, err
	}
	return cfg, nil
}

// resolveCycle parses the MM/DD/YYYY effective date. Empty means the cycle is
// unknown, which is allowed.
func resolveCycle(text string) (nasr.Cycle, error) {
	if text == "" {
		return nasr.Cycle{}, nil
	}
	t, err := time.Parse("01/02/2006", text)
	if err != nil {
		return nasr.Cycle{}, fmt.Errorf("invalid cycle date %q (want MM/DD/YYYY): %w", text, nasr.ErrInvalidConfig)
	}
	return nasr.Cycle{Effective: nasr.Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}}, nil
}

// selectApprover picks the row-failure policy for this run.
func selectApprover(cfg nasr.ParseConfig) nasr.RowApprover {
	if cfg.ContinueOnError {
		return ui.NewForcedApprover(true)
	}
	if parseFlags.force || !tui.IsInteractive() {
		return ui.NewForcedApprover(false)
	}
	return ui.NewInteractiveApprover()
}

func runParse(cmd *cobra.Command, args []string) error {
	sourcePath := args[0]
	verbose := getVerboseFlag(cmd)

	cfg, err := buildParseConfig(cmd, sourcePath, verbose)
	if err != nil {
		return err
	}

	// Graceful shutdown on Ctrl+C or SIGTERM: in-flight passes observe the
	// context and abort, finished types are still published and summarized.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if parseFlags.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, parseFlags.timeout)
		defer cancel()
	}

	dist := distribution.NewDirectory(cfg.SourcePath)
	logger := logging.NewConsoleLogger(cfg.Verbose)
	approver := selectApprover(cfg)

	controller := pipeline.New(dist, logger, approver)
	parsers := pipeline.ParsersFor(cfg.Types, dist)
	data := nasr.NewData(cfg.Cycle)

	// The live display replaces per-row logging at an interactive terminal.
	// Verbose runs keep plain logging so nothing scrolls out of a TUI frame.
	useDisplay := tui.IsInteractive() && !cfg.Verbose

	var summary *pipeline.Summary
	var runErr error
	if useDisplay {
		summary, runErr = runWithDisplay(ctx, controller, data, parsers)
	} else {
		summary, runErr = controller.Run(ctx, data, parsers)
	}

	printSummary(os.Stdout, summary, cfg.Verbose)
	return runErr
}

// runWithDisplay drives the parse run under the live terminal display. Row
// progress streams into the display from the parser goroutines; the run
// result is reported once the display has shut down.
func runWithDisplay(ctx context.Context, controller *pipeline.Controller, data *nasr.Data, parsers []assemble.RecordParser) (*pipeline.Summary, error) {
	types := make([]nasr.RecordType, len(parsers))
	for i, p := range parsers {
		types[i] = p.RecordType()
	}

	program := tea.NewProgram(tui.NewProgress(types))
	controller.OnProgress(func(rt nasr.RecordType, rows, bytesRead, totalBytes int64) {
		program.Send(tui.RowMsg{Type: rt, Rows: rows, BytesRead: bytesRead, TotalBytes: totalBytes})
	})

	var summary *pipeline.Summary
	var runErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		summary, runErr = controller.Run(ctx, data, parsers)
		for _, ts := range summary.Types {
			program.Send(tui.TypeDoneMsg{Type: ts.Type, Records: ts.Records, Skipped: ts.Skipped, Err: ts.Err})
		}
		program.Send(tui.RunDoneMsg{})
	}()

	if _, err := program.Run(); err != nil {
		// The display is cosmetic; the parse result still decides the exit.
		fmt.Fprintf(os.Stderr, "display error: %v\n", err)
	}
	<-done
	return summary, runErr
}

// printSummary writes the run summary in a stable, grep-friendly shape.
func printSummary(w io.Writer, summary *pipeline.Summary, verbose bool) {
	if summary == nil {
		return
	}

	fmt.Fprintf(w, "\nParse run %s (cycle %s) in %s\n",
		summary.RunID, summary.Cycle, summary.Finished.Sub(summary.Started).Round(time.Millisecond))

	for _, ts := range summary.Types {
		switch {
		case ts.Err != nil:
			fmt.Fprintf(w, "  %-5s FAILED after %d rows: %v\n", ts.Type, ts.Rows, ts.Err)
		default:
			fmt.Fprintf(w, "  %-5s %d records from %d rows", ts.Type, ts.Records, ts.Rows)
			if ts.Skipped > 0 {
				fmt.Fprintf(w, ", %d skipped", ts.Skipped)
			}
			if ts.Replaced > 0 {
				fmt.Fprintf(w, ", %d replaced", ts.Replaced)
			}
			fmt.Fprintln(w)
		}
		if verbose {
			for _, fc := range ts.Checksums {
				fmt.Fprintf(w, "        %s sha256=%s normalized=%s\n", fc.File, fc.Raw, fc.Normalized)
			}
		}
	}
	fmt.Fprintf(w, "  total %d records\n", summary.TotalRecords())
}
