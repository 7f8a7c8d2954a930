package trigger

import (
	"bytes"
	"encoding/json"
)

// Effect is one effect record. The trigger format stores every slot on
// every record regardless of effect type; slots the type does not read
// hold -1. Which slots a given type reads is the catalog package's
// business.
type Effect struct {
	Type                    EffectType `json:"type"`
	Quantity                int        `json:"quantity"`
	Diplomacy               int        `json:"diplomacy"`
	ObjectListUnitID        int        `json:"object_list_unit_id"`
	ObjectListUnitID2       int        `json:"object_list_unit_id_2"`
	SourcePlayer            int        `json:"source_player"`
	TargetPlayer            int        `json:"target_player"`
	Technology              int        `json:"technology"`
	ForceResearchTechnology int        `json:"force_research_technology"`
	LocalTechnology         int        `json:"local_technology"`
	TriggerID               int        `json:"trigger_id"`
	LocationX               int        `json:"location_x"`
	LocationY               int        `json:"location_y"`
	LocationObjectReference int        `json:"location_object_reference"`
	AreaX1                  int        `json:"area_x1"`
	AreaY1                  int        `json:"area_y1"`
	AreaX2                  int        `json:"area_x2"`
	AreaY2                  int        `json:"area_y2"`
	ObjectGroup             int        `json:"object_group"`
	ObjectType              int        `json:"object_type"`
	ObjectType2             int        `json:"object_type2"`
	AttackStance            int        `json:"attack_stance"`
	Timer                   int        `json:"timer"`
	AISignal                int        `json:"ai_signal"`
	Variable                int        `json:"variable"`
	Message                 string     `json:"message,omitempty"`
	SoundName               string     `json:"sound_name,omitempty"`
	SelectedObjectIDs       []int      `json:"selected_object_ids,omitempty"`
}

// NewEffect returns an effect of the given type with every slot unset.
func NewEffect(t EffectType) Effect {
	e := emptyEffect()
	e.Type = t
	return e
}

func emptyEffect() Effect {
	return Effect{
		Quantity:                -1,
		Diplomacy:               -1,
		ObjectListUnitID:        -1,
		ObjectListUnitID2:       -1,
		SourcePlayer:            -1,
		TargetPlayer:            -1,
		Technology:              -1,
		ForceResearchTechnology: -1,
		LocalTechnology:         -1,
		TriggerID:               -1,
		LocationX:               -1,
		LocationY:               -1,
		LocationObjectReference: -1,
		AreaX1:                  -1,
		AreaY1:                  -1,
		AreaX2:                  -1,
		AreaY2:                  -1,
		ObjectGroup:             -1,
		ObjectType:              -1,
		ObjectType2:             -1,
		AttackStance:            -1,
		Timer:                   -1,
		AISignal:                -1,
		Variable:                -1,
	}
}

// UnmarshalJSON defaults absent numeric slots to -1 so that partial
// exports decode to the same record a full export would.
func (e *Effect) UnmarshalJSON(data []byte) error {
	type alias Effect
	tmp := alias(emptyEffect())
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*e = Effect(tmp)
	return nil
}

// UnmarshalJSONStrict is the strict variant: unknown attribute names
// are an error. Strict outer decoders cannot reach inside a custom
// UnmarshalJSON, so strict loaders call this per record.
func (e *Effect) UnmarshalJSONStrict(data []byte) error {
	type alias Effect
	tmp := alias(emptyEffect())
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&tmp); err != nil {
		return err
	}
	*e = Effect(tmp)
	return nil
}

// slot maps an Attr to its storage. Attrs with no single integer slot
// on an effect (instance lists, condition-only attrs) return nil.
func (e *Effect) slot(a Attr) *int {
	switch a {
	case AttrObjectListUnitID:
		return &e.ObjectListUnitID
	case AttrObjectListUnitID2:
		return &e.ObjectListUnitID2
	case AttrObjectGroup:
		return &e.ObjectGroup
	case AttrObjectType:
		return &e.ObjectType
	case AttrObjectType2:
		return &e.ObjectType2
	case AttrLocationObjectReference:
		return &e.LocationObjectReference
	case AttrTechnology:
		return &e.Technology
	case AttrForceResearchTechnology:
		return &e.ForceResearchTechnology
	case AttrLocalTechnology:
		return &e.LocalTechnology
	case AttrSourcePlayer:
		return &e.SourcePlayer
	case AttrTargetPlayer:
		return &e.TargetPlayer
	case AttrQuantity:
		return &e.Quantity
	case AttrDiplomacy:
		return &e.Diplomacy
	case AttrTriggerID:
		return &e.TriggerID
	case AttrTimer:
		return &e.Timer
	case AttrAttackStance:
		return &e.AttackStance
	case AttrAISignal:
		return &e.AISignal
	case AttrVariable:
		return &e.Variable
	}
	return nil
}

// Get returns the value of attr, with ok=false when the effect record
// has no such slot.
func (e *Effect) Get(a Attr) (int, bool) {
	p := e.slot(a)
	if p == nil {
		return 0, false
	}
	return *p, true
}

// Set writes attr, reporting whether the record has such a slot.
func (e *Effect) Set(a Attr, v int) bool {
	p := e.slot(a)
	if p == nil {
		return false
	}
	*p = v
	return true
}

// Condition is one condition record, stored fixed-record like Effect.
type Condition struct {
	Type             ConditionType `json:"type"`
	AmountOrQuantity int           `json:"amount_or_quantity"`
	ResourceType     int           `json:"resource_type_or_tribute_list"`
	UnitObject       int           `json:"unit_object"`
	NextObject       int           `json:"next_object"`
	ObjectList       int           `json:"object_list"`
	SourcePlayer     int           `json:"source_player"`
	TargetPlayer     int           `json:"target_player"`
	Technology       int           `json:"technology"`
	LocalTechnology  int           `json:"local_technology"`
	Timer            int           `json:"timer"`
	AreaX1           int           `json:"area_x1"`
	AreaY1           int           `json:"area_y1"`
	AreaX2           int           `json:"area_x2"`
	AreaY2           int           `json:"area_y2"`
	ObjectGroup      int           `json:"object_group"`
	ObjectType       int           `json:"object_type"`
	ObjectType2      int           `json:"object_type2"`
	AISignal         int           `json:"ai_signal"`
	Inverted         int           `json:"inverted"`
	Variable         int           `json:"variable"`
	Comparison       int           `json:"comparison"`
	ObjectState      int           `json:"object_state"`
	XsFunction       string        `json:"xs_function,omitempty"`
}

// NewCondition returns a condition of the given type with every slot unset.
func NewCondition(t ConditionType) Condition {
	c := emptyCondition()
	c.Type = t
	return c
}

func emptyCondition() Condition {
	return Condition{
		AmountOrQuantity: -1,
		ResourceType:     -1,
		UnitObject:       -1,
		NextObject:       -1,
		ObjectList:       -1,
		SourcePlayer:     -1,
		TargetPlayer:     -1,
		Technology:       -1,
		LocalTechnology:  -1,
		Timer:            -1,
		AreaX1:           -1,
		AreaY1:           -1,
		AreaX2:           -1,
		AreaY2:           -1,
		ObjectGroup:      -1,
		ObjectType:       -1,
		ObjectType2:      -1,
		AISignal:         -1,
		Inverted:         -1,
		Variable:         -1,
		Comparison:       -1,
		ObjectState:      -1,
	}
}

func (c *Condition) UnmarshalJSON(data []byte) error {
	type alias Condition
	tmp := alias(emptyCondition())
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*c = Condition(tmp)
	return nil
}

// UnmarshalJSONStrict rejects unknown attribute names, see
// Effect.UnmarshalJSONStrict.
func (c *Condition) UnmarshalJSONStrict(data []byte) error {
	type alias Condition
	tmp := alias(emptyCondition())
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&tmp); err != nil {
		return err
	}
	*c = Condition(tmp)
	return nil
}

func (c *Condition) slot(a Attr) *int {
	switch a {
	case AttrAmountOrQuantity:
		return &c.AmountOrQuantity
	case AttrUnitObject:
		return &c.UnitObject
	case AttrNextObject:
		return &c.NextObject
	case AttrObjectList:
		return &c.ObjectList
	case AttrObjectGroup:
		return &c.ObjectGroup
	case AttrObjectType:
		return &c.ObjectType
	case AttrObjectType2:
		return &c.ObjectType2
	case AttrSourcePlayer:
		return &c.SourcePlayer
	case AttrTargetPlayer:
		return &c.TargetPlayer
	case AttrTechnology:
		return &c.Technology
	case AttrLocalTechnology:
		return &c.LocalTechnology
	case AttrTimer:
		return &c.Timer
	case AttrAISignal:
		return &c.AISignal
	case AttrVariable:
		return &c.Variable
	case AttrComparison:
		return &c.Comparison
	case AttrObjectState:
		return &c.ObjectState
	}
	return nil
}

// Get returns the value of attr, with ok=false when the condition
// record has no such slot.
func (c *Condition) Get(a Attr) (int, bool) {
	p := c.slot(a)
	if p == nil {
		return 0, false
	}
	return *p, true
}

// Set writes attr, reporting whether the record has such a slot.
func (c *Condition) Set(a Attr, v int) bool {
	p := c.slot(a)
	if p == nil {
		return false
	}
	*p = v
	return true
}

// Trigger is one scenario trigger: a name, its conditions and effects,
// and the editor ordering metadata.
type Trigger struct {
	Name         string      `json:"name"`
	Description  string      `json:"description,omitempty"`
	Enabled      bool        `json:"enabled"`
	Looping      bool        `json:"looping"`
	DisplayIndex int         `json:"display_index"`
	Conditions   []Condition `json:"conditions"`
	Effects      []Effect    `json:"effects"`
}
