package audit

import (
	"strings"
	"testing"

	"github.com/Entarogan/AOE2-Campaign-Transfer/internal/rewrite"
	"github.com/Entarogan/AOE2-Campaign-Transfer/pkg/scenario"
	"github.com/Entarogan/AOE2-Campaign-Transfer/pkg/trigger"
)

func collisionScenario() *scenario.Scenario {
	e := trigger.NewEffect(trigger.EffectReplaceObject)
	e.ObjectListUnitID = 4
	e.ObjectListUnitID2 = 100
	e.ObjectType = 4 // MILITARY

	c := trigger.NewCondition(trigger.ConditionOwnObjects)
	c.ObjectList = 4

	c2 := trigger.NewCondition(trigger.ConditionObjectHasTarget)
	c2.UnitObject = 4

	s := scenario.New("collision")
	s.FileName = "collision.json"
	s.Triggers = []trigger.Trigger{{
		Name:       "spawn",
		Enabled:    true,
		Effects:    []trigger.Effect{e},
		Conditions: []trigger.Condition{c, c2},
	}}
	s.Units[2] = []scenario.Unit{{ReferenceID: 10, UnitConst: 4}}
	return s
}

func TestScanPartitionsMatches(t *testing.T) {
	s := collisionScenario()
	rep := Scan(s, rewrite.Single(4, 1513), trigger.KindUnitType)

	// Rewritable: effect object_list_unit_id, condition object_list,
	// the placed unit. Protected: the category filter and the
	// instance reference.
	if len(rep.Rewritable) != 3 {
		t.Fatalf("expected 3 rewritable matches, got %d: %+v", len(rep.Rewritable), rep.Rewritable)
	}
	if len(rep.Protected) != 2 {
		t.Fatalf("expected 2 protected matches, got %d: %+v", len(rep.Protected), rep.Protected)
	}
	if rep.Matched() != 5 {
		t.Errorf("Matched() = %d, want 5", rep.Matched())
	}

	for _, occ := range rep.Rewritable {
		if occ.NewValue != 1513 {
			t.Errorf("rewritable %s has new value %d, want 1513", occ.Attr, occ.NewValue)
		}
	}

	kinds := map[string]bool{}
	for _, occ := range rep.Protected {
		kinds[occ.Kind] = true
	}
	if !kinds[trigger.KindCategoryFilter.String()] {
		t.Error("expected a protected category filter match")
	}
	if !kinds[trigger.KindUnitInstance.String()] {
		t.Error("expected a protected instance reference match")
	}

	var unitSeen bool
	for _, occ := range rep.Rewritable {
		if occ.Site == SiteUnit {
			unitSeen = true
			if occ.Player != 2 {
				t.Errorf("unit occurrence player = %d, want 2", occ.Player)
			}
		}
	}
	if !unitSeen {
		t.Error("expected a map unit occurrence")
	}
}

func TestScanWarnsOnCategoryCollision(t *testing.T) {
	s := collisionScenario()
	rep := Scan(s, rewrite.Single(4, 1513), trigger.KindUnitType)

	if len(rep.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d: %v", len(rep.Warnings), rep.Warnings)
	}
	w := rep.Warnings[0]
	if !strings.Contains(w, "collision.json") {
		t.Errorf("warning should name the file: %q", w)
	}
	if !strings.Contains(w, "MILITARY") {
		t.Errorf("warning should name the colliding category: %q", w)
	}

	// An old ID outside 1-4 cannot collide with a category.
	rep = Scan(s, rewrite.Single(100, 200), trigger.KindUnitType)
	if len(rep.Warnings) != 0 {
		t.Errorf("expected no warnings for old ID 100, got %v", rep.Warnings)
	}
}

func TestScanCoversSelectedObjectIDs(t *testing.T) {
	e := trigger.NewEffect(trigger.EffectKillObject)
	e.SelectedObjectIDs = []int{4, 999, 4}

	s := scenario.New("picked")
	s.Triggers = []trigger.Trigger{{Name: "kill picked", Effects: []trigger.Effect{e}}}

	rep := Scan(s, rewrite.Single(4, 1513), trigger.KindUnitType)
	if len(rep.Rewritable) != 0 {
		t.Errorf("instance list elements must never be rewritable: %+v", rep.Rewritable)
	}
	if len(rep.Protected) != 2 {
		t.Fatalf("expected 2 protected matches (one per matching element), got %d", len(rep.Protected))
	}
	for _, occ := range rep.Protected {
		if occ.Attr != trigger.AttrSelectedObjectIDs {
			t.Errorf("unexpected attr %s", occ.Attr)
		}
		if occ.Kind != trigger.KindUnitInstance.String() {
			t.Errorf("unexpected kind %s", occ.Kind)
		}
		if occ.Value != 4 {
			t.Errorf("unexpected value %d", occ.Value)
		}
	}
}

func TestScanTechTarget(t *testing.T) {
	e := trigger.NewEffect(trigger.EffectResearchTechnology)
	e.Technology = 904

	s := scenario.New("techs")
	s.Triggers = []trigger.Trigger{{Name: "research", Effects: []trigger.Effect{e}}}

	rep := Scan(s, rewrite.Single(904, 1504), trigger.KindTech)
	if len(rep.Rewritable) != 1 {
		t.Fatalf("expected 1 rewritable match, got %d", len(rep.Rewritable))
	}
	if rep.Rewritable[0].Attr != trigger.AttrTechnology {
		t.Errorf("unexpected attr %s", rep.Rewritable[0].Attr)
	}

	// The same scan targeting unit types protects the tech slot.
	rep = Scan(s, rewrite.Single(904, 1504), trigger.KindUnitType)
	if len(rep.Rewritable) != 0 || len(rep.Protected) != 1 {
		t.Errorf("expected the tech slot to be protected, got %+v", rep)
	}
}

func TestMerge(t *testing.T) {
	a := Scan(collisionScenario(), rewrite.Single(4, 1513), trigger.KindUnitType)
	b := Scan(collisionScenario(), rewrite.Single(4, 1513), trigger.KindUnitType)

	merged := &Report{Target: trigger.KindUnitType.String()}
	merged.Merge(a)
	merged.Merge(b)

	if merged.Matched() != a.Matched()+b.Matched() {
		t.Errorf("merged %d matches, want %d", merged.Matched(), a.Matched()+b.Matched())
	}
	if len(merged.Warnings) != 2 {
		t.Errorf("merged %d warnings, want 2", len(merged.Warnings))
	}
}

func TestRenderTable(t *testing.T) {
	var sb strings.Builder
	rep := Scan(collisionScenario(), rewrite.Single(4, 1513), trigger.KindUnitType)
	RenderTable(&sb, rep)

	out := sb.String()
	for _, want := range []string{"object_list_unit_id", "category_filter", "unit_const"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q", want)
		}
	}
}
