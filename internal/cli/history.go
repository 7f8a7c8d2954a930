package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Entarogan/AOE2-Campaign-Transfer/internal/journal"
)

func newHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past rewrite runs",
		Long: `Show the journaled rewrite history: when each run happened, which
file it touched, the ID mapping it applied and how many slots changed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, err := journal.Open(cfg.JournalPath)
			if err != nil {
				return err
			}
			defer j.Close()

			runs, err := j.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no runs recorded yet")
				return nil
			}

			if cfg.Output == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(runs)
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"When", "Command", "Input", "Mapping", "Effects", "Conditions", "Units", "Dry"})
			for _, run := range runs {
				dry := ""
				if run.DryRun {
					dry = "yes"
				}
				t.AppendRow(table.Row{
					run.StartedAt.Local().Format(time.DateTime),
					run.Command,
					run.InputPath,
					formatMapping(run.Mapping),
					run.EffectHits,
					run.ConditionHits,
					run.UnitHits,
					dry,
				})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum runs to show (0 for all)")
	return cmd
}

func formatMapping(m map[int]int) string {
	olds := make([]int, 0, len(m))
	for old := range m {
		olds = append(olds, old)
	}
	sort.Ints(olds)

	pairs := make([]string, 0, len(olds))
	for _, old := range olds {
		pairs = append(pairs, fmt.Sprintf("%d->%d", old, m[old]))
	}
	const maxShown = 4
	if len(pairs) > maxShown {
		return strings.Join(pairs[:maxShown], ", ") + fmt.Sprintf(", +%d more", len(pairs)-maxShown)
	}
	return strings.Join(pairs, ", ")
}
