package audit

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderTable writes the report as a terminal table.
func RenderTable(w io.Writer, rep *Report) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Site", "Where", "Attr", "Kind", "Value", "New", "Action"})

	for _, occ := range rep.Rewritable {
		t.AppendRow(occurrenceRow(occ, "rewrite"))
	}
	for _, occ := range rep.Protected {
		t.AppendRow(occurrenceRow(occ, "protected"))
	}
	t.Render()

	for _, warning := range rep.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
	fmt.Fprintf(w, "%d match(es): %d rewritable, %d protected\n",
		rep.Matched(), len(rep.Rewritable), len(rep.Protected))
}

func occurrenceRow(occ Occurrence, action string) table.Row {
	return table.Row{occ.Site, where(occ), string(occ.Attr), occ.Kind, occ.Value, occ.NewValue, action}
}

func where(occ Occurrence) string {
	if occ.Site == SiteUnit {
		return fmt.Sprintf("player %d unit %d", occ.Player, occ.Index)
	}
	name := occ.TriggerName
	if name == "" {
		name = fmt.Sprintf("trigger %d", occ.Trigger)
	}
	return fmt.Sprintf("%s %s %d", name, occ.Site, occ.Index)
}

// RenderMarkdown renders the report as a markdown table, the format
// the audit used to be kept in as a hand-maintained document.
func RenderMarkdown(rep *Report) string {
	var b strings.Builder
	b.WriteString("| Site | Where | Attr | Kind | Value | New | Action |\n")
	b.WriteString("|------|-------|------|------|-------|-----|--------|\n")
	for _, occ := range rep.Rewritable {
		writeMarkdownRow(&b, occ, "rewrite")
	}
	for _, occ := range rep.Protected {
		writeMarkdownRow(&b, occ, "protected")
	}
	if len(rep.Warnings) > 0 {
		b.WriteString("\n")
		for _, warning := range rep.Warnings {
			fmt.Fprintf(&b, "**Warning:** %s\n\n", warning)
		}
	}
	return b.String()
}

func writeMarkdownRow(b *strings.Builder, occ Occurrence, action string) {
	fmt.Fprintf(b, "| %s | %s | %s | %s | %d | %d | %s |\n",
		occ.Site, where(occ), occ.Attr, occ.Kind, occ.Value, occ.NewValue, action)
}
