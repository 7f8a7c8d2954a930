package rewrite

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Entarogan/AOE2-Campaign-Transfer/pkg/scenario"
	"github.com/Entarogan/AOE2-Campaign-Transfer/pkg/trigger"
)

// paladinScenario builds a scenario where the old unit ID 4 appears in
// a unit-type slot, an instance slot and both category filter slots of
// the same effect. Only the first may ever change.
func paladinScenario() *scenario.Scenario {
	e := trigger.NewEffect(trigger.EffectReplaceObject)
	e.ObjectListUnitID = 4
	e.ObjectListUnitID2 = 4
	e.LocationObjectReference = 4
	e.SelectedObjectIDs = []int{4}
	e.ObjectType = 4  // MILITARY
	e.ObjectType2 = 4 // MILITARY

	c := trigger.NewCondition(trigger.ConditionOwnObjects)
	c.ObjectList = 4
	c.ObjectType = 4
	c.UnitObject = 4

	s := scenario.New("collision")
	s.Triggers = []trigger.Trigger{{
		Name:       "collision",
		Enabled:    true,
		Effects:    []trigger.Effect{e},
		Conditions: []trigger.Condition{c},
	}}
	return s
}

func TestUnitTypesProtectsCollidingSlots(t *testing.T) {
	s := paladinScenario()

	r, err := UnitTypes(s, Single(4, 1513), DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.Effects != 2 {
		t.Errorf("expected 2 effect slot hits, got %d", r.Effects)
	}
	if r.Conditions != 1 {
		t.Errorf("expected 1 condition slot hit, got %d", r.Conditions)
	}

	e := &s.Triggers[0].Effects[0]
	if e.ObjectListUnitID != 1513 || e.ObjectListUnitID2 != 1513 {
		t.Errorf("unit-type slots = %d/%d, want 1513/1513", e.ObjectListUnitID, e.ObjectListUnitID2)
	}
	if e.LocationObjectReference != 4 {
		t.Errorf("instance reference changed to %d, must stay 4", e.LocationObjectReference)
	}
	if e.SelectedObjectIDs[0] != 4 {
		t.Errorf("selected object ID changed to %d, must stay 4", e.SelectedObjectIDs[0])
	}
	if e.ObjectType != 4 || e.ObjectType2 != 4 {
		t.Errorf("category filters = %d/%d, must stay 4/4", e.ObjectType, e.ObjectType2)
	}

	c := &s.Triggers[0].Conditions[0]
	if c.ObjectList != 1513 {
		t.Errorf("condition object_list = %d, want 1513", c.ObjectList)
	}
	if c.ObjectType != 4 {
		t.Errorf("condition object_type changed to %d, must stay 4", c.ObjectType)
	}
	if c.UnitObject != 4 {
		t.Errorf("condition unit_object changed to %d, must stay 4", c.UnitObject)
	}
}

func TestUnitTypesDryRun(t *testing.T) {
	s := paladinScenario()
	opts := DefaultOptions()
	opts.DryRun = true

	r, err := UnitTypes(s, Single(4, 1513), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Total() != 3 {
		t.Errorf("expected 3 counted hits, got %d", r.Total())
	}
	if s.Triggers[0].Effects[0].ObjectListUnitID != 4 {
		t.Error("dry run must not write")
	}
}

func TestUnitTypesSkipConditions(t *testing.T) {
	s := paladinScenario()
	opts := DefaultOptions()
	opts.IncludeConditions = false

	r, err := UnitTypes(s, Single(4, 1513), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Conditions != 0 {
		t.Errorf("expected no condition hits, got %d", r.Conditions)
	}
	if s.Triggers[0].Conditions[0].ObjectList != 4 {
		t.Error("condition slot must stay untouched")
	}
}

func TestUnitTypesSingleTrigger(t *testing.T) {
	mk := func(unitID int, display int) trigger.Trigger {
		e := trigger.NewEffect(trigger.EffectKillObject)
		e.ObjectListUnitID = unitID
		return trigger.Trigger{Name: "t", Enabled: true, DisplayIndex: display, Effects: []trigger.Effect{e}}
	}
	s := scenario.New("two triggers")
	s.Triggers = []trigger.Trigger{mk(74, 1), mk(74, 0)}

	opts := DefaultOptions()
	opts.TriggerIndex = 0
	if _, err := UnitTypes(s, Single(74, 569), opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Triggers[0].Effects[0].ObjectListUnitID != 569 {
		t.Error("trigger 0 should be rewritten")
	}
	if s.Triggers[1].Effects[0].ObjectListUnitID != 74 {
		t.Error("trigger 1 must stay untouched")
	}

	// Display order: slot 0 is the second trigger.
	s = scenario.New("two triggers")
	s.Triggers = []trigger.Trigger{mk(74, 1), mk(74, 0)}
	opts.UseDisplayOrder = true
	if _, err := UnitTypes(s, Single(74, 569), opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Triggers[0].Effects[0].ObjectListUnitID != 74 {
		t.Error("creation-order trigger 0 must stay untouched in display mode")
	}
	if s.Triggers[1].Effects[0].ObjectListUnitID != 569 {
		t.Error("display slot 0 should be rewritten")
	}

	opts.TriggerIndex = 9
	if _, err := UnitTypes(s, Single(74, 569), opts); err == nil {
		t.Error("expected error for unused display slot")
	}
}

func TestUnitTypesNoCascade(t *testing.T) {
	e := trigger.NewEffect(trigger.EffectKillObject)
	e.ObjectListUnitID = 1
	s := scenario.New("chain")
	s.Triggers = []trigger.Trigger{{Name: "t", Effects: []trigger.Effect{e}}}

	// 1->2 and 2->3 in one mapping: a slot holding 1 becomes 2, not 3.
	if _, err := UnitTypes(s, Mapping{1: 2, 2: 3}, DefaultOptions()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Triggers[0].Effects[0].ObjectListUnitID; got != 2 {
		t.Errorf("chained mapping cascaded: got %d, want 2", got)
	}
}

func TestTechsVersionGating(t *testing.T) {
	e := trigger.NewEffect(trigger.EffectResearchTechnology)
	e.Technology = 904
	e.LocalTechnology = 904

	s := scenario.New("old format")
	s.Version = 1.48
	s.Triggers = []trigger.Trigger{{Name: "t", Effects: []trigger.Effect{e}}}

	r, err := Techs(s, Single(904, 1504), DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Effects != 1 {
		t.Errorf("expected 1 hit on the old format, got %d", r.Effects)
	}
	got := &s.Triggers[0].Effects[0]
	if got.Technology != 1504 {
		t.Errorf("technology = %d, want 1504", got.Technology)
	}
	if got.LocalTechnology != 904 {
		t.Errorf("local_technology rewritten on a pre-1.55 scenario: %d", got.LocalTechnology)
	}

	// Same data on the current format rewrites both.
	e.Technology = 904
	e.LocalTechnology = 904
	s.Version = scenario.CurrentVersion
	s.Triggers[0].Effects[0] = e
	r, err = Techs(s, Single(904, 1504), DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Effects != 2 {
		t.Errorf("expected 2 hits on the current format, got %d", r.Effects)
	}
}

func TestMapUnits(t *testing.T) {
	s := scenario.New("map")
	s.Units[0] = []scenario.Unit{{ReferenceID: 100, UnitConst: 74, X: 1}}
	s.Units[3] = []scenario.Unit{
		{ReferenceID: 200, UnitConst: 74, X: 2, GarrisonedIn: 100},
		{ReferenceID: 201, UnitConst: 569, X: 3},
	}

	r, err := MapUnits(s, Single(74, 569), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Units != 2 {
		t.Errorf("expected 2 unit hits, got %d", r.Units)
	}
	if counts := r.ByOldID[74]; counts.Units != 2 {
		t.Errorf("per-ID count = %d, want 2", counts.Units)
	}

	if s.Units[0][0].UnitConst != 569 {
		t.Error("Gaia unit should be rewritten")
	}
	// Instance identity survives the type change.
	if s.Units[3][0].ReferenceID != 200 || s.Units[3][0].GarrisonedIn != 100 {
		t.Error("reference and garrison IDs must be preserved")
	}
	if s.Units[3][0].X != 2 {
		t.Error("position must be preserved")
	}
	if s.Units[3][1].UnitConst != 569 {
		t.Error("already-new unit stays at its ID")
	}
}

func TestValidateMapping(t *testing.T) {
	if err := (Mapping{}).Validate(); !errors.Is(err, ErrEmptyMapping) {
		t.Errorf("empty mapping error = %v", err)
	}
	if err := (Mapping{-1: 5}).Validate(); err == nil {
		t.Error("negative old ID should be rejected")
	}
	if err := (Mapping{5: -1}).Validate(); err == nil {
		t.Error("negative new ID should be rejected")
	}
	if err := Single(74, 569).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadMapping(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "units.yaml")
	if err := os.WriteFile(path, []byte("74: 569\n75: 570\n"), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadMapping(path)
	if err != nil {
		t.Fatalf("failed to load mapping: %v", err)
	}
	if m[74] != 569 || m[75] != 570 {
		t.Errorf("unexpected mapping: %v", m)
	}
	if got := m.OldIDs(); len(got) != 2 || got[0] != 74 || got[1] != 75 {
		t.Errorf("OldIDs = %v", got)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("74: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMapping(bad); err == nil {
		t.Error("invalid mapping file should be rejected")
	}
	if _, err := LoadMapping(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing mapping file should be rejected")
	}
}
