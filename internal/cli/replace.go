package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Entarogan/AOE2-Campaign-Transfer/internal/journal"
	"github.com/Entarogan/AOE2-Campaign-Transfer/internal/rewrite"
	"github.com/Entarogan/AOE2-Campaign-Transfer/pkg/scenario"
)

// replaceFlags are the flags shared by the replace commands.
type replaceFlags struct {
	mappingFile    string
	oldID          int
	newID          int
	outPath        string
	inPlace        bool
	dryRun         bool
	triggerIndex   int
	displayOrder   bool
	skipConditions bool
}

func (f *replaceFlags) register(cmd *cobra.Command, withTriggerSelect bool) {
	cmd.Flags().StringVarP(&f.mappingFile, "mapping", "m", "", "YAML mapping file of old: new ID pairs")
	cmd.Flags().IntVar(&f.oldID, "old", -1, "Single old ID to replace")
	cmd.Flags().IntVar(&f.newID, "new", -1, "Replacement for --old")
	cmd.Flags().StringVar(&f.outPath, "out", "", "Output path (required unless --in-place or --dry-run)")
	cmd.Flags().BoolVar(&f.inPlace, "in-place", false, "Overwrite the input file")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "Count matches without writing")
	if withTriggerSelect {
		cmd.Flags().IntVar(&f.triggerIndex, "trigger", -1, "Restrict to one trigger (creation order index)")
		cmd.Flags().BoolVar(&f.displayOrder, "display-order", false, "Interpret --trigger as the editor display slot")
		cmd.Flags().BoolVar(&f.skipConditions, "skip-conditions", false, "Leave condition records untouched")
	}
}

func (f *replaceFlags) options() rewrite.Options {
	opts := rewrite.DefaultOptions()
	opts.TriggerIndex = f.triggerIndex
	opts.UseDisplayOrder = f.displayOrder
	opts.IncludeConditions = !f.skipConditions
	return opts
}

func newReplaceUnitCommand() *cobra.Command {
	f := &replaceFlags{triggerIndex: -1}
	cmd := &cobra.Command{
		Use:   "replace-unit <scenario.json>",
		Short: "Batch-replace unit type IDs in trigger data",
		Long: `Replace unit database IDs in trigger effects and conditions. Only
unit-type slots change; unit instance references and the object_type /
object_type2 category filters are never written, even when the raw
numbers match.`,
		Example: `  # Paladin (74 in an old mod) becomes 569 everywhere
  scenaudit replace-unit my_scenario.json --old 74 --new 569 --out out.json

  # Mapping file, one trigger only, preview first
  scenaudit replace-unit my_scenario.json -m unit_ids.yaml --trigger 0 --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplace(cmd, args[0], f, "replace-unit",
				func(s *scenario.Scenario, m rewrite.Mapping, opts rewrite.Options) (*rewrite.Report, error) {
					return rewrite.UnitTypes(s, m, opts)
				})
		},
	}
	f.register(cmd, true)
	return cmd
}

func newReplaceTechCommand() *cobra.Command {
	f := &replaceFlags{triggerIndex: -1}
	cmd := &cobra.Command{
		Use:   "replace-tech <scenario.json>",
		Short: "Batch-replace technology IDs in trigger data",
		Long: `Replace technology IDs in trigger effects and conditions per a
mapping. Slots added in later format versions are skipped on older
scenarios instead of failing.`,
		Example: `  # Implanted techs moved up by 600: 904->1504 and friends
  scenaudit replace-tech my_scenario.json -m tech_ids.yaml --out out.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplace(cmd, args[0], f, "replace-tech",
				func(s *scenario.Scenario, m rewrite.Mapping, opts rewrite.Options) (*rewrite.Report, error) {
					return rewrite.Techs(s, m, opts)
				})
		},
	}
	f.register(cmd, true)
	return cmd
}

func newReplaceMapCommand() *cobra.Command {
	f := &replaceFlags{triggerIndex: -1}
	cmd := &cobra.Command{
		Use:   "replace-map <scenario.json>",
		Short: "Batch-replace the unit type of placed map units",
		Long: `Replace the unit type (unit_const) of units placed on the map. List
order, reference IDs, positions and garrison links are preserved, so
trigger instance references stay valid.`,
		Example: `  scenaudit replace-map my_scenario.json --old 74 --new 569 --out out.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplace(cmd, args[0], f, "replace-map",
				func(s *scenario.Scenario, m rewrite.Mapping, opts rewrite.Options) (*rewrite.Report, error) {
					return rewrite.MapUnits(s, m, opts.DryRun)
				})
		},
	}
	f.register(cmd, false)
	return cmd
}

type rewriteFunc func(*scenario.Scenario, rewrite.Mapping, rewrite.Options) (*rewrite.Report, error)

func runReplace(cmd *cobra.Command, path string, f *replaceFlags, command string, fn rewriteFunc) error {
	mapping, err := resolveMapping(f.mappingFile, f.oldID, f.newID)
	if err != nil {
		return err
	}

	outPath := f.outPath
	switch {
	case f.inPlace && outPath != "":
		return fmt.Errorf("--out and --in-place are mutually exclusive")
	case f.inPlace:
		outPath = path
	case outPath == "" && !f.dryRun:
		return fmt.Errorf("--out is required (or pass --in-place to overwrite the input)")
	}

	s, err := scenario.Load(path)
	if err != nil {
		return err
	}

	// Count first so the operator can tell a wrong ID from an empty
	// scenario before anything is written.
	preOpts := f.options()
	preOpts.DryRun = true
	pre, err := fn(s, mapping, preOpts)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "[before] %s\n", summarize(pre))
	if pre.Total() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), warnStyle.Render("no matches found - check that the old IDs are the intended unit types"))
	}

	report := pre
	if !f.dryRun {
		opts := f.options()
		report, err = fn(s, mapping, opts)
		if err != nil {
			return err
		}
		if err := s.Save(outPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", successStyle.Render("saved"), outPath)
	}

	recordRun(cmd, command, path, outPath, mapping, report, f.dryRun)

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", headingStyle.Render("result:"), summarize(report))
	for _, oldID := range mapping.OldIDs() {
		counts, ok := report.ByOldID[oldID]
		if !ok {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %d -> %d: %d effect(s), %d condition(s), %d unit(s)\n",
			oldID, mapping[oldID], counts.Effects, counts.Conditions, counts.Units)
	}
	return nil
}

func summarize(r *rewrite.Report) string {
	parts := []string{}
	if r.Effects > 0 || r.Conditions > 0 {
		parts = append(parts,
			fmt.Sprintf("%d effect slot(s)", r.Effects),
			fmt.Sprintf("%d condition slot(s)", r.Conditions))
	}
	if r.Units > 0 {
		parts = append(parts, fmt.Sprintf("%d map unit(s)", r.Units))
	}
	if len(parts) == 0 {
		return "0 matches"
	}
	return strings.Join(parts, ", ")
}

// recordRun journals the run; journal failures are logged, not fatal,
// since the rewrite itself already succeeded.
func recordRun(cmd *cobra.Command, command, inPath, outPath string, mapping rewrite.Mapping, r *rewrite.Report, dryRun bool) {
	j, err := journal.Open(cfg.JournalPath)
	if err != nil {
		log.Warn("journal unavailable", "path", cfg.JournalPath, "error", err)
		return
	}
	defer j.Close()

	run := &journal.Run{
		Command:       command,
		InputPath:     inPath,
		OutputPath:    outPath,
		Mapping:       mapping,
		EffectHits:    r.Effects,
		ConditionHits: r.Conditions,
		UnitHits:      r.Units,
		DryRun:        dryRun,
	}
	if err := j.Record(cmd.Context(), run); err != nil {
		log.Warn("failed to journal run", "error", err)
	}
}
