package trigger

import "fmt"

// Attr identifies a numeric slot on an effect or condition record. The
// values match the attribute names used by the scenario trigger export,
// which is also what batch find-and-replace scripts key on.
type Attr string

const (
	AttrObjectListUnitID        Attr = "object_list_unit_id"
	AttrObjectListUnitID2       Attr = "object_list_unit_id_2"
	AttrObjectList              Attr = "object_list"
	AttrObjectGroup             Attr = "object_group"
	AttrObjectType              Attr = "object_type"
	AttrObjectType2             Attr = "object_type2"
	AttrSelectedObjectIDs       Attr = "selected_object_ids"
	AttrLocationObjectReference Attr = "location_object_reference"
	AttrUnitObject              Attr = "unit_object"
	AttrNextObject              Attr = "next_object"
	AttrTechnology              Attr = "technology"
	AttrForceResearchTechnology Attr = "force_research_technology"
	AttrLocalTechnology         Attr = "local_technology"
	AttrSourcePlayer            Attr = "source_player"
	AttrTargetPlayer            Attr = "target_player"
	AttrQuantity                Attr = "quantity"
	AttrAmountOrQuantity        Attr = "amount_or_quantity"
	AttrDiplomacy               Attr = "diplomacy"
	AttrTriggerID               Attr = "trigger_id"
	AttrTimer                   Attr = "timer"
	AttrAISignal                Attr = "ai_signal"
	AttrVariable                Attr = "variable"
	AttrComparison              Attr = "comparison"
	AttrObjectState             Attr = "object_state"
	AttrAttackStance            Attr = "attack_stance"
)

// Kind classifies what a slot's integer value actually refers to.
// A batch rename of unit database IDs may only ever write KindUnitType
// slots; everything else is protected.
type Kind int

const (
	// KindOther covers slots with no ID semantics (quantities, players,
	// timers, stances).
	KindOther Kind = iota

	// KindUnitType is a unit database ID, e.g. Paladin = 569.
	KindUnitType

	// KindUnitInstance references one concrete placed unit on the map.
	KindUnitInstance

	// KindCategoryFilter is the object_type enum (Other, Building,
	// Civilian, Military) - a selector, not a unit ID. Numerically it
	// overlaps low unit IDs, which is exactly why it must never be
	// rewritten.
	KindCategoryFilter

	// KindTech is a technology database ID.
	KindTech
)

var kindNames = map[Kind]string{
	KindOther:          "other",
	KindUnitType:       "unit_type",
	KindUnitInstance:   "unit_instance",
	KindCategoryFilter: "category_filter",
	KindTech:           "tech",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Category is the four-way filter stored in object_type / object_type2.
type Category int

const (
	CategoryOther    Category = 1
	CategoryBuilding Category = 2
	CategoryCivilian Category = 3
	CategoryMilitary Category = 4
)

var categoryNames = map[Category]string{
	CategoryOther:    "OTHER",
	CategoryBuilding: "BUILDING",
	CategoryCivilian: "CIVILIAN",
	CategoryMilitary: "MILITARY",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ValidCategory reports whether v is a set category filter value.
func ValidCategory(v int) bool {
	_, ok := categoryNames[Category(v)]
	return ok
}

// ValidValue reports whether a slot holds a set value. The trigger
// format stores -1 (and occasionally other negatives) for empty slots.
func ValidValue(v int) bool {
	return v >= 0
}
