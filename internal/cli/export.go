package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tcoates/lanesync/internal/engine"
)

// DocIDGenerator mints identifiers for exported documents.
type DocIDGenerator interface {
	NewID() (string, error)
}

// UUIDv7Generator is the production generator. Time-ordered UUIDs, so a
// directory of exports lists in creation order.
type UUIDv7Generator struct{}

// NewID returns a fresh UUIDv7 string.
func (UUIDv7Generator) NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// FixedGenerator always returns the same ID; tests use it for stable
// output.
type FixedGenerator struct{ ID string }

// NewID returns the fixed ID.
func (g FixedGenerator) NewID() (string, error) { return g.ID, nil }

// docIDSource is swapped out by tests.
var docIDSource DocIDGenerator = UUIDv7Generator{}

// ExportDocument is the self-contained export envelope: a document ID,
// the practice title, and the canonical computed result.
type ExportDocument struct {
	ID     string          `json:"id"`
	Title  string          `json:"title,omitempty"`
	Result json.RawMessage `json:"result"`
}

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Output string // output file path; empty writes to stdout
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export <practice.yaml>",
		Short: "Export a computed practice as an identified JSON document",
		Long: `Compute a practice and wrap the canonical result in an export
envelope with a fresh document ID, suitable for archiving or feeding to
other tools.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path (default stdout)")

	return cmd
}

func runExport(opts *ExportOptions, practicePath string, cmd *cobra.Command) error {
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

	res := engine.New(table).Compute(*doc)
	canonical, err := res.CanonicalJSON()
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, fmt.Sprintf("serializing result: %v", err), nil)
		return WrapExitError(ExitCommandError, "serializing result", err)
	}

	id, err := docIDSource.NewID()
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, fmt.Sprintf("generating document ID: %v", err), nil)
		return WrapExitError(ExitCommandError, "generating document ID", err)
	}

	export := ExportDocument{
		ID:     id,
		Title:  doc.Title,
		Result: canonical,
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return WrapExitError(ExitCommandError, "marshaling export", err)
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, data, 0644); err != nil {
			_ = formatter.Error(ErrCodeWriteFailed, fmt.Sprintf("writing output file: %v", err), nil)
			return WrapExitError(ExitCommandError, "writing output file", err)
		}
		formatter.VerboseLog("Wrote export %s to %s", id, opts.Output)
	}

	if formatter.Format == "json" {
		return formatter.Success(export)
	}

	if opts.Output == "" {
		fmt.Fprintln(formatter.Writer, string(data))
		return nil
	}
	fmt.Fprintf(formatter.Writer, "Exported practice %s to %s\n", id, opts.Output)
	return nil
}
