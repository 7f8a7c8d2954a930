package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Entarogan/AOE2-Campaign-Transfer/pkg/catalog"
	"github.com/Entarogan/AOE2-Campaign-Transfer/pkg/trigger"
)

func newCatalogCommand() *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the trigger field reference catalog",
		Long: `Print the reference catalog of trigger effects and conditions.

The default section, "filters", is the category-filter table: every
effect and condition that reads object_type or object_type2. These are
the records a numeric find-and-replace would corrupt, since category
values (1=OTHER, 2=BUILDING, 3=CIVILIAN, 4=MILITARY) collide with low
unit database IDs.`,
		Example: `  # The category filter consumer table
  scenaudit catalog

  # As markdown, the document form
  scenaudit catalog -o markdown

  # Every effect with its cataloged slots
  scenaudit catalog --section effects`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch section {
			case "filters":
				return renderConsumers(cmd)
			case "effects":
				return renderEntries(cmd, effectEntries())
			case "conditions":
				return renderEntries(cmd, conditionEntries())
			default:
				return fmt.Errorf("unknown section %q (want filters, effects or conditions)", section)
			}
		},
	}

	cmd.Flags().StringVar(&section, "section", "filters", "Catalog section: filters, effects or conditions")
	return cmd
}

func renderConsumers(cmd *cobra.Command) error {
	rows := catalog.CategoryFilterConsumers()
	switch cfg.Output {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "markdown":
		fmt.Fprint(cmd.OutOrStdout(), catalog.Markdown())
		return nil
	default:
		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Kind", "ID", "Name", "object_type", "object_type2", "Description"})
		for _, row := range rows {
			t.AppendRow(table.Row{row.Kind, row.ID, row.Name, yes(row.ObjectType), yes(row.ObjectType2), row.Description})
		}
		t.Render()
		return nil
	}
}

// entry is one catalog listing row shared by the effects and
// conditions sections.
type entry struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Attrs       []string `json:"attrs"`
}

func effectEntries() []entry {
	var entries []entry
	for id := 0; id < 128; id++ {
		t := trigger.EffectType(id)
		info, ok := catalog.Effect(t)
		if !ok {
			continue
		}
		entries = append(entries, entry{
			ID:          id,
			Name:        t.String(),
			Description: info.Description,
			Attrs:       attrNames(info.Attrs),
		})
	}
	return entries
}

func conditionEntries() []entry {
	var entries []entry
	for id := 0; id < 128; id++ {
		t := trigger.ConditionType(id)
		info, ok := catalog.Condition(t)
		if !ok {
			continue
		}
		entries = append(entries, entry{
			ID:          id,
			Name:        t.String(),
			Description: info.Description,
			Attrs:       attrNames(info.Attrs),
		})
	}
	return entries
}

func attrNames(specs []catalog.AttrSpec) []string {
	names := make([]string, 0, len(specs))
	for _, s := range specs {
		name := string(s.Attr)
		if kind := catalog.Classify(s.Attr); kind != trigger.KindOther {
			name = fmt.Sprintf("%s (%s)", name, kind)
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func renderEntries(cmd *cobra.Command, entries []entry) error {
	switch cfg.Output {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	default:
		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"ID", "Name", "Slots"})
		for _, e := range entries {
			t.AppendRow(table.Row{e.ID, e.Name, joinLines(e.Attrs)})
		}
		t.Render()
		return nil
	}
}

func joinLines(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += "\n"
		}
		out += n
	}
	return out
}

func yes(v bool) string {
	if v {
		return "yes"
	}
	return "-"
}
