package scenario

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Entarogan/AOE2-Campaign-Transfer/pkg/trigger"
)

// NumPlayers is the number of unit list slots in a scenario: players
// 1-8 plus Gaia at index 0.
const NumPlayers = 9

// CurrentVersion is the newest format version this package knows about.
const CurrentVersion = 1.56

// Scenario is the trigger/unit export of one scenario file: its
// triggers in creation order, and the placed units grouped per player.
type Scenario struct {
	Name     string            `json:"name"`
	FileName string            `json:"-"` // set on load, never written back
	Version  float64           `json:"version"`
	Triggers []trigger.Trigger `json:"triggers"`
	Units    [][]Unit          `json:"units"` // index 0 = Gaia, 1-8 = players
}

// New returns an empty scenario at the current format version with all
// player unit lists allocated.
func New(name string) *Scenario {
	return &Scenario{
		Name:    name,
		Version: CurrentVersion,
		Units:   make([][]Unit, NumPlayers),
	}
}

// Trigger returns the trigger at creation-order index i.
func (s *Scenario) Trigger(i int) (*trigger.Trigger, error) {
	if i < 0 || i >= len(s.Triggers) {
		return nil, fmt.Errorf("trigger index %d out of range (have %d triggers)", i, len(s.Triggers))
	}
	return &s.Triggers[i], nil
}

// TriggerByDisplay returns the trigger shown at editor display slot i.
func (s *Scenario) TriggerByDisplay(i int) (*trigger.Trigger, error) {
	for ti := range s.Triggers {
		if s.Triggers[ti].DisplayIndex == i {
			return &s.Triggers[ti], nil
		}
	}
	return nil, fmt.Errorf("no trigger at display index %d", i)
}

// Unit is one placed unit. UnitConst is the unit database ID (the
// rewritable type); ReferenceID identifies this concrete instance and
// is what trigger instance slots point at.
type Unit struct {
	ReferenceID  int     `json:"reference_id"`
	UnitConst    int     `json:"unit_const"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Z            float64 `json:"z"`
	Rotation     float64 `json:"rotation"`
	GarrisonedIn int     `json:"garrisoned_in_id"`
	InitialState int     `json:"initial_animation_frame"`
}

// UnmarshalJSON defaults the optional reference slots to -1 (unset).
func (u *Unit) UnmarshalJSON(data []byte) error {
	type alias Unit
	tmp := alias{ReferenceID: -1, UnitConst: -1, GarrisonedIn: -1}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*u = Unit(tmp)
	return nil
}

// UnmarshalJSONStrict rejects unknown field names.
func (u *Unit) UnmarshalJSONStrict(data []byte) error {
	type alias Unit
	tmp := alias{ReferenceID: -1, UnitConst: -1, GarrisonedIn: -1}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&tmp); err != nil {
		return err
	}
	*u = Unit(tmp)
	return nil
}
