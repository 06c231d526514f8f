package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tcoates/lanesync/internal/engine"
)

// ComputeOptions holds flags for the compute command.
type ComputeOptions struct {
	*RootOptions
	Pace   int    // fallback pace in seconds per 100 yards
	Start  string // start clock override ("HH:MM")
	Output string // optional canonical JSON output path
}

// NewComputeCommand creates the compute command.
func NewComputeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ComputeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compute <practice.yaml>",
		Short: "Compute the timed schedule for a practice",
		Long: `Compute yardage, durations, and wall-clock times for a practice.

Repeat notation is expanded, each line is classified against the acronym
table, and the clock is simulated across sections and training groups.
Text output is a readable timeline; JSON output is the canonical result
document.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Pace, "pace", engine.DefaultFallbackPacePer100,
		"fallback pace in seconds per 100 yards for lines without an interval")
	cmd.Flags().StringVar(&opts.Start, "start", "", "override the practice's start clock (HH:MM)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write canonical JSON to a file")

	return cmd
}

func runCompute(opts *ComputeOptions, practicePath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	doc, table, err := loadInputs(opts.RootOptions, practicePath, formatter)
	if err != nil {
		return err
	}

	e := engine.New(table,
		engine.WithFallbackPace(opts.Pace),
		engine.WithStartClock(opts.Start),
	)
	res := e.Compute(*doc)

	out, err := res.CanonicalJSON()
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, fmt.Sprintf("serializing result: %v", err), nil)
		return WrapExitError(ExitCommandError, "serializing result", err)
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, out, 0644); err != nil {
			_ = formatter.Error(ErrCodeWriteFailed, fmt.Sprintf("writing output file: %v", err), nil)
			return WrapExitError(ExitCommandError, "writing output file", err)
		}
		formatter.VerboseLog("Wrote canonical result to %s", opts.Output)
	}

	if formatter.Format == "json" {
		return formatter.Success(json.RawMessage(out))
	}

	renderTimeline(formatter.Writer, doc.Title, res)
	return nil
}
