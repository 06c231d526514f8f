package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tcoates/lanesync/internal/engine"
	"github.com/tcoates/lanesync/internal/practice"
)

// StatsResult is the JSON payload of the stats command.
type StatsResult struct {
	Stats      *practice.Stats                      `json:"stats"`
	GroupStats map[practice.GroupID]*practice.Stats `json:"group_stats,omitempty"`
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <practice.yaml>",
		Short: "Show stroke and style yardage for a practice",
		Long: `Show how a practice's yardage distributes across strokes and styles.

Each line's yardage is split evenly across its matched tag occurrences,
so combined tokens like K/S/D/S apportion fractionally. When the
practice contains group splits, a per-group breakdown follows the
overall one.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runStats(opts *RootOptions, practicePath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	doc, table, err := loadInputs(opts, practicePath, formatter)
	if err != nil {
		return err
	}

	res := engine.New(table).Compute(*doc)

	if formatter.Format == "json" {
		return formatter.Success(StatsResult{
			Stats:      res.Stats,
			GroupStats: res.GroupStats,
		})
	}

	renderStats(formatter.Writer, doc.Title, res.Stats)
	for _, gid := range sortedGroupStatIDs(res.GroupStats) {
		fmt.Fprintln(formatter.Writer)
		renderStats(formatter.Writer, fmt.Sprintf("Group %s", gid), res.GroupStats[gid])
	}
	return nil
}

func sortedGroupStatIDs(stats map[practice.GroupID]*practice.Stats) []practice.GroupID {
	ids := make([]practice.GroupID, 0, len(stats))
	for gid := range stats {
		ids = append(ids, gid)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
