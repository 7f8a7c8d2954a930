package scenario

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Entarogan/AOE2-Campaign-Transfer/pkg/trigger"
)

// Load reads a scenario export, tolerating fields this package does
// not model.
func Load(path string) (*Scenario, error) {
	return load(path, false)
}

// LoadStrict reads a scenario export and rejects unknown fields. The
// validate command uses it to catch typoed attribute names before a
// rewrite silently ignores them.
func LoadStrict(path string) (*Scenario, error) {
	return load(path, true)
}

func load(path string, strict bool) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("scenario not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var s Scenario
	dec := json.NewDecoder(bytes.NewReader(data))
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario %s: %w", path, err)
	}
	if strict {
		if err := checkRecordKeys(data); err != nil {
			return nil, fmt.Errorf("strict check of %s: %w", path, err)
		}
	}

	s.FileName = filepath.Base(path)
	if s.Units == nil {
		s.Units = make([][]Unit, NumPlayers)
	}
	return &s, nil
}

// checkRecordKeys re-verifies every effect, condition and unit record
// against its known field set. DisallowUnknownFields on the outer
// decoder stops at custom UnmarshalJSON boundaries, and the record
// attributes are exactly where typos hide.
func checkRecordKeys(data []byte) error {
	var raw struct {
		Triggers []struct {
			Effects    []json.RawMessage `json:"effects"`
			Conditions []json.RawMessage `json:"conditions"`
		} `json:"triggers"`
		Units [][]json.RawMessage `json:"units"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for ti, trg := range raw.Triggers {
		for ei, rawEffect := range trg.Effects {
			var e trigger.Effect
			if err := e.UnmarshalJSONStrict(rawEffect); err != nil {
				return fmt.Errorf("trigger %d effect %d: %w", ti, ei, err)
			}
		}
		for ci, rawCondition := range trg.Conditions {
			var c trigger.Condition
			if err := c.UnmarshalJSONStrict(rawCondition); err != nil {
				return fmt.Errorf("trigger %d condition %d: %w", ti, ci, err)
			}
		}
	}
	for pi, units := range raw.Units {
		for ui, rawUnit := range units {
			var u Unit
			if err := u.UnmarshalJSONStrict(rawUnit); err != nil {
				return fmt.Errorf("player %d unit %d: %w", pi, ui, err)
			}
		}
	}
	return nil
}

// Save writes the scenario to path, creating parent directories as
// needed. Output is indented so diffs against the input stay readable.
func (s *Scenario) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scenario: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write scenario file: %w", err)
	}
	return nil
}

// List walks dir and returns scenario name -> filename for every
// readable .json export, skipping files that fail to parse.
func List(dir string) (map[string]string, error) {
	scenarios := make(map[string]string)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}
		s, err := Load(path)
		if err != nil {
			return nil
		}
		name := s.Name
		if name == "" {
			name = filepath.Base(path)
		}
		scenarios[name] = filepath.Base(path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios in %s: %w", dir, err)
	}
	return scenarios, nil
}
