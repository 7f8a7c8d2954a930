package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Entarogan/AOE2-Campaign-Transfer/pkg/trigger"
)

func testScenario() *Scenario {
	s := New("Test Campaign")
	s.Triggers = []trigger.Trigger{
		{
			Name:         "spawn paladins",
			Enabled:      true,
			DisplayIndex: 1,
			Effects:      []trigger.Effect{trigger.NewEffect(trigger.EffectCreateObject)},
		},
		{
			Name:         "win check",
			Enabled:      true,
			DisplayIndex: 0,
			Conditions:   []trigger.Condition{trigger.NewCondition(trigger.ConditionOwnObjects)},
		},
	}
	s.Units[1] = []Unit{{ReferenceID: 400, UnitConst: 74, X: 10.5, Y: 12.5}}
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test_campaign.json")

	s := testScenario()
	s.Triggers[0].Effects[0].ObjectListUnitID = 74
	if err := s.Save(path); err != nil {
		t.Fatalf("failed to save scenario: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load scenario: %v", err)
	}

	if loaded.Name != "Test Campaign" {
		t.Errorf("expected name 'Test Campaign', got %q", loaded.Name)
	}
	if loaded.FileName != "test_campaign.json" {
		t.Errorf("expected file name to be set on load, got %q", loaded.FileName)
	}
	if loaded.Version != CurrentVersion {
		t.Errorf("expected version %v, got %v", CurrentVersion, loaded.Version)
	}
	if len(loaded.Triggers) != 2 {
		t.Fatalf("expected 2 triggers, got %d", len(loaded.Triggers))
	}
	if got := loaded.Triggers[0].Effects[0].ObjectListUnitID; got != 74 {
		t.Errorf("expected object_list_unit_id 74, got %d", got)
	}
	// Slots the save left unset must come back unset.
	if got := loaded.Triggers[0].Effects[0].ObjectType; got != -1 {
		t.Errorf("expected object_type -1 after round trip, got %d", got)
	}
	if len(loaded.Units) != NumPlayers {
		t.Fatalf("expected %d player unit lists, got %d", NumPlayers, len(loaded.Units))
	}
	if got := loaded.Units[1][0].ReferenceID; got != 400 {
		t.Errorf("expected reference_id 400, got %d", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadStrictRejectsUnknownFields(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "top-level typo",
			data: `{"name": "t", "version": 1.56, "trigers": [], "units": []}`,
		},
		{
			// The outer strict decoder stops at the record types'
			// custom unmarshalers; these three are the cases that
			// used to slip through.
			name: "effect attr typo",
			data: `{"name": "t", "version": 1.56, "triggers": [{"name": "a", "effects": [{"type": 14, "objcet_list_unit_id": 74}]}], "units": []}`,
		},
		{
			name: "condition attr typo",
			data: `{"name": "t", "version": 1.56, "triggers": [{"name": "a", "conditions": [{"type": 3, "object_lsit": 74}]}], "units": []}`,
		},
		{
			name: "unit field typo",
			data: `{"name": "t", "version": 1.56, "triggers": [], "units": [[{"unit_cosnt": 74}]]}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "typo.json")
			if err := os.WriteFile(path, []byte(tc.data), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err != nil {
				t.Errorf("lenient load should tolerate unknown fields: %v", err)
			}
			if _, err := LoadStrict(path); err == nil {
				t.Error("strict load should reject the typoed name")
			}
		})
	}
}

func TestSaveKeepsUntouchedSlots(t *testing.T) {
	e := trigger.NewEffect(trigger.EffectAIScriptGoal)
	e.AISignal = 5

	s := New("signals")
	s.Triggers = []trigger.Trigger{{Name: "goal", Enabled: true, Effects: []trigger.Effect{e}}}

	path := filepath.Join(t.TempDir(), "signals.json")
	if err := s.Save(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := loaded.Triggers[0].Effects[0].AISignal; got != 5 {
		t.Errorf("ai_signal = %d after round trip, want 5", got)
	}
}

func TestSaveOmitsFileName(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	out := filepath.Join(dir, "out.json")

	if err := testScenario().Save(in); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(in)
	if err != nil {
		t.Fatal(err)
	}
	if err := loaded.Save(out); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "file_name") {
		t.Error("saved output should not gain a file_name field")
	}
}

func TestTriggerLookup(t *testing.T) {
	s := testScenario()

	trg, err := s.Trigger(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trg.Name != "win check" {
		t.Errorf("expected 'win check', got %q", trg.Name)
	}
	if _, err := s.Trigger(5); err == nil {
		t.Error("expected error for out-of-range index")
	}

	// Display slot 0 is "win check" even though it was created second.
	trg, err = s.TriggerByDisplay(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trg.Name != "win check" {
		t.Errorf("expected 'win check' at display slot 0, got %q", trg.Name)
	}
	if _, err := s.TriggerByDisplay(7); err == nil {
		t.Error("expected error for unused display slot")
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()

	s := testScenario()
	if err := s.Save(filepath.Join(dir, "test_campaign.json")); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a scenario"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}

	scenarios, err := List(dir)
	if err != nil {
		t.Fatalf("failed to list scenarios: %v", err)
	}
	if len(scenarios) != 1 {
		t.Fatalf("expected 1 scenario, got %d", len(scenarios))
	}
	if scenarios["Test Campaign"] != "test_campaign.json" {
		t.Errorf("unexpected listing: %v", scenarios)
	}
}
