package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/ksum/internal/finder"
	"github.com/roach88/ksum/internal/record"
	"github.com/roach88/ksum/internal/report"
)

// stdinPath selects standard input as the report source.
const stdinPath = "-"

// SolveResult is the JSON payload of the solve command: the record plus its
// content-addressed ID.
type SolveResult struct {
	RecordID string `json:"record_id"`
	*record.Record
}

func newSolveResult(r *report.Report, target int64, strategy finder.Strategy, pair, triple finder.Solution) (*SolveResult, error) {
	rec, err := record.NewRecord(r, target, strategy, pair, triple)
	if err != nil {
		return nil, err
	}
	id, err := rec.ID()
	if err != nil {
		return nil, err
	}
	return &SolveResult{RecordID: id, Record: rec}, nil
}

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	*RootOptions
	Target   int64
	Strategy string

	// RunIDs overrides the run ID generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunIDs RunIDGenerator
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "solve <report-file>",
		Short: "Solve both parts for an expense report",
		Long: `Read an expense report (one integer per line) and print the product of
the two entries, then of the three entries, that sum to the target.

Use "-" to read the report from standard input. Finding no solution is
reported but is not an error.

Examples:
  ksum solve day1_input.txt
  ksum solve --target 30 --strategy complement report.txt
  cat day1_input.txt | ksum solve - --format json`,
		Args:          exactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(opts, args[0], cmd)
		},
	}

	cmd.Flags().Int64Var(&opts.Target, "target", finder.DefaultTarget, "sum the entries must reach")
	cmd.Flags().StringVar(&opts.Strategy, "strategy", string(finder.StrategyAscending), "triple search strategy (ascending|complement)")

	return cmd
}

func runSolve(opts *SolveOptions, path string, cmd *cobra.Command) error {
	runIDs := opts.RunIDs
	if runIDs == nil {
		runIDs = UUIDv7Generator{}
	}
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
		RunID:     runIDs.Generate(),
	}

	strategy, err := finder.ParseStrategy(opts.Strategy)
	if err != nil {
		return commandError(formatter, ErrCodeStrategy, err)
	}

	r, err := readReport(path, cmd.InOrStdin())
	if err != nil {
		return commandError(formatter, classifyReportError(err), err)
	}
	formatter.VerboseLog("Read %d entries from %s", r.Len(), displayPath(path))

	f := finder.New(finder.WithTarget(opts.Target), finder.WithStrategy(strategy))
	pair := f.Pair(r)
	slog.Debug("pair search done", "target", f.Target, "found", pair.Found(), "examined", pair.Examined)
	triple := f.Triple(r)
	slog.Debug("triple search done", "target", f.Target, "strategy", strategy, "found", triple.Found(), "examined", triple.Examined)

	if opts.Format == "json" {
		result, err := newSolveResult(r, f.Target, strategy, pair, triple)
		if err != nil {
			return commandError(formatter, ErrCodeGeneric, err)
		}
		return formatter.Success(result)
	}

	w := cmd.OutOrStdout()
	printPart(w, 1, pair)
	printPart(w, 2, triple)
	return nil
}

func readReport(path string, stdin io.Reader) (*report.Report, error) {
	if path == stdinPath {
		return report.Read(stdin)
	}
	return report.Load(path)
}

func displayPath(path string) string {
	if path == stdinPath {
		return "stdin"
	}
	return path
}

func printPart(w io.Writer, part int, s finder.Solution) {
	if !s.Found() {
		fmt.Fprintf(w, "Part %d: no solution found\n", part)
		return
	}
	fmt.Fprintf(w, "Part %d: %d\n", part, s.Product())
}

// classifyReportError maps a report error to a CLI error code.
func classifyReportError(err error) string {
	switch {
	case report.IsParseError(err):
		return ErrCodeParse
	case errors.Is(err, fs.ErrNotExist):
		return ErrCodeNotFound
	default:
		return ErrCodeIO
	}
}

// commandError reports err through the formatter and returns an ExitError
// with ExitCommandError, marked as already reported.
func commandError(f *OutputFormatter, code string, err error) error {
	var details any
	var pe *report.ParseError
	if errors.As(err, &pe) {
		details = map[string]any{"token": pe.Token, "line": pe.Line, "index": pe.Index}
	}
	if encErr := f.Error(code, err.Error(), details); encErr != nil {
		return encErr
	}
	exitErr := WrapExitError(ExitCommandError, code, err)
	exitErr.Reported = true
	return exitErr
}
