package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Entarogan/AOE2-Campaign-Transfer/pkg/trigger"
)

// Consumer is one row of the category-filter reference table: a record
// type that reads object_type, annotated with whether it also reads
// object_type2. These are the records a naive numeric find-and-replace
// would corrupt, because category values (1-4) collide with low unit
// database IDs.
type Consumer struct {
	Kind        string `json:"kind"` // "effect" or "condition"
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ObjectType  bool   `json:"object_type"`
	ObjectType2 bool   `json:"object_type2"`
}

// CategoryFilterConsumers lists every effect and condition that reads
// object_type or object_type2, effects first, ordered by numeric ID.
func CategoryFilterConsumers() []Consumer {
	var rows []Consumer
	for t, info := range effects {
		ot := reads(info.Attrs, trigger.AttrObjectType)
		ot2 := reads(info.Attrs, trigger.AttrObjectType2)
		if !ot && !ot2 {
			continue
		}
		rows = append(rows, Consumer{
			Kind:        "effect",
			ID:          int(t),
			Name:        t.String(),
			Description: info.Description,
			ObjectType:  ot,
			ObjectType2: ot2,
		})
	}
	for t, info := range conditions {
		ot := reads(info.Attrs, trigger.AttrObjectType)
		ot2 := reads(info.Attrs, trigger.AttrObjectType2)
		if !ot && !ot2 {
			continue
		}
		rows = append(rows, Consumer{
			Kind:        "condition",
			ID:          int(t),
			Name:        t.String(),
			Description: info.Description,
			ObjectType:  ot,
			ObjectType2: ot2,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Kind != rows[j].Kind {
			return rows[i].Kind == "effect"
		}
		return rows[i].ID < rows[j].ID
	})
	return rows
}

// Markdown renders the reference table as a markdown document, the
// form this catalog was originally maintained in by hand.
func Markdown() string {
	var b strings.Builder
	b.WriteString("# Category filter reference\n\n")
	b.WriteString("Trigger effects and conditions that read the `object_type` /\n")
	b.WriteString("`object_type2` category filters (OTHER, BUILDING, CIVILIAN,\n")
	b.WriteString("MILITARY). These slots hold a category, not a unit database ID;\n")
	b.WriteString("batch ID replacements must leave them untouched.\n\n")
	b.WriteString("| Kind | ID | Name | object_type | object_type2 | Description |\n")
	b.WriteString("|------|----|------|-------------|--------------|-------------|\n")
	for _, row := range CategoryFilterConsumers() {
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s | %s |\n",
			row.Kind, row.ID, row.Name, mark(row.ObjectType), mark(row.ObjectType2), row.Description)
	}
	return b.String()
}

func mark(v bool) string {
	if v {
		return "yes"
	}
	return "-"
}
