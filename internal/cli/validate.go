package cli

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Entarogan/AOE2-Campaign-Transfer/pkg/scenario"
	"github.com/Entarogan/AOE2-Campaign-Transfer/pkg/trigger"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <scenario.json>",
		Short: "Validate a scenario export before rewriting it",
		Long: `Validate a scenario export: strict JSON shape (unknown fields are
rejected, so typoed attribute names fail loudly instead of being
ignored by a later rewrite), known effect and condition type IDs,
player numbers, category filter values and area bounds.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := &scenarioValidator{}
			if err := v.validateFile(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Scenario file is valid!"))
			return nil
		},
	}
}

type scenarioValidator struct {
	errors []string
}

func (v *scenarioValidator) validateFile(filename string) error {
	baseName := filepath.Base(filename)
	if !strings.HasSuffix(baseName, ".json") {
		return fmt.Errorf("scenario file must have .json extension: %s", baseName)
	}
	if !isValidScenarioFilename(strings.TrimSuffix(baseName, ".json")) {
		return fmt.Errorf("scenario filename '%s' must be lowercase snake_case (e.g., my_scenario.json)", baseName)
	}

	s, err := scenario.LoadStrict(filename)
	if err != nil {
		return err
	}

	v.errors = nil
	v.validateScenario(s)

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}
	return nil
}

func (v *scenarioValidator) validateScenario(s *scenario.Scenario) {
	if s.Version <= 0 {
		v.addError(fmt.Sprintf("version %v is not a valid format version", s.Version))
	}
	if len(s.Units) != 0 && len(s.Units) != scenario.NumPlayers {
		v.addError(fmt.Sprintf("units has %d player lists, want %d (GAIA plus players 1-8)", len(s.Units), scenario.NumPlayers))
	}

	for ti, t := range s.Triggers {
		v.validateTrigger(&t, ti)
	}
	for p, units := range s.Units {
		for ui, u := range units {
			if u.UnitConst < 0 {
				v.addError(fmt.Sprintf("player %d unit %d has no unit_const", p, ui))
			}
		}
	}
}

func (v *scenarioValidator) validateTrigger(t *trigger.Trigger, ti int) {
	label := fmt.Sprintf("trigger %d (%q)", ti, t.Name)
	if t.DisplayIndex < 0 {
		v.addError(fmt.Sprintf("%s has negative display_index %d", label, t.DisplayIndex))
	}

	for ei, e := range t.Effects {
		where := fmt.Sprintf("%s effect %d", label, ei)
		if !e.Type.Known() {
			v.addError(fmt.Sprintf("%s has unknown effect type %d", where, e.Type))
			continue
		}
		v.validatePlayers(where, e.SourcePlayer, e.TargetPlayer)
		v.validateCategories(where, e.ObjectType, e.ObjectType2)
		v.validateArea(where, e.AreaX1, e.AreaY1, e.AreaX2, e.AreaY2)
	}
	for ci, c := range t.Conditions {
		where := fmt.Sprintf("%s condition %d", label, ci)
		if !c.Type.Known() {
			v.addError(fmt.Sprintf("%s has unknown condition type %d", where, c.Type))
			continue
		}
		v.validatePlayers(where, c.SourcePlayer, c.TargetPlayer)
		v.validateCategories(where, c.ObjectType, c.ObjectType2)
		v.validateArea(where, c.AreaX1, c.AreaY1, c.AreaX2, c.AreaY2)
	}
}

func (v *scenarioValidator) validatePlayers(where string, players ...int) {
	for _, p := range players {
		if p == -1 {
			continue
		}
		if p < 0 || p >= scenario.NumPlayers {
			v.addError(fmt.Sprintf("%s has player %d outside 0-%d", where, p, scenario.NumPlayers-1))
		}
	}
}

// validateCategories checks the object_type and object_type2 category
// filter slots. -1 is unset; anything else must be one of the four
// category constants.
func (v *scenarioValidator) validateCategories(where string, categories ...int) {
	for _, c := range categories {
		if c == -1 {
			continue
		}
		if !trigger.ValidCategory(c) {
			v.addError(fmt.Sprintf("%s has category filter value %d, want %d-%d (%s..%s)",
				where, c, int(trigger.CategoryOther), int(trigger.CategoryMilitary),
				trigger.CategoryOther, trigger.CategoryMilitary))
		}
	}
}

func (v *scenarioValidator) validateArea(where string, x1, y1, x2, y2 int) {
	if x1 == -1 && y1 == -1 && x2 == -1 && y2 == -1 {
		return
	}
	if x1 > x2 || y1 > y2 {
		v.addError(fmt.Sprintf("%s has inverted area (%d,%d)-(%d,%d)", where, x1, y1, x2, y2))
	}
}

func (v *scenarioValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

var validFilenameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)

func isValidScenarioFilename(name string) bool {
	// Allow 'x.' prefix for experimental exports
	name = strings.TrimPrefix(name, "x.")
	return validFilenameRegex.MatchString(name)
}
