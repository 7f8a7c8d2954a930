// Package catalog is the authority on which slots each trigger effect
// and condition actually reads, and on what those slots mean. A batch
// rewrite of unit database IDs consults it to touch only unit-type
// slots, leaving unit instance references and the object_type /
// object_type2 category filters alone even when the raw numbers
// collide.
package catalog

import (
	"github.com/Entarogan/AOE2-Campaign-Transfer/pkg/trigger"
)

// AttrSpec is one slot a record type reads. MinVersion gates slots
// that were added to the format later; 0 means always present.
type AttrSpec struct {
	Attr       trigger.Attr
	MinVersion float64
}

// EffectInfo describes one effect type: its numeric ID, a short
// description, and the slots it reads.
type EffectInfo struct {
	Type        trigger.EffectType
	Description string
	Attrs       []AttrSpec
}

// ConditionInfo is the condition-side counterpart of EffectInfo.
type ConditionInfo struct {
	Type        trigger.ConditionType
	Description string
	Attrs       []AttrSpec
}

// attrKinds classifies every slot the catalog knows about. Slots not
// listed here carry no ID semantics.
var attrKinds = map[trigger.Attr]trigger.Kind{
	trigger.AttrObjectListUnitID:        trigger.KindUnitType,
	trigger.AttrObjectListUnitID2:       trigger.KindUnitType,
	trigger.AttrObjectList:              trigger.KindUnitType,
	trigger.AttrSelectedObjectIDs:       trigger.KindUnitInstance,
	trigger.AttrLocationObjectReference: trigger.KindUnitInstance,
	trigger.AttrUnitObject:              trigger.KindUnitInstance,
	trigger.AttrNextObject:              trigger.KindUnitInstance,
	trigger.AttrObjectType:              trigger.KindCategoryFilter,
	trigger.AttrObjectType2:             trigger.KindCategoryFilter,
	trigger.AttrTechnology:              trigger.KindTech,
	trigger.AttrForceResearchTechnology: trigger.KindTech,
	trigger.AttrLocalTechnology:         trigger.KindTech,
}

// Classify returns the Kind of an attribute slot.
func Classify(a trigger.Attr) trigger.Kind {
	return attrKinds[a]
}

// Effect returns the catalog entry for an effect type.
func Effect(t trigger.EffectType) (EffectInfo, bool) {
	info, ok := effects[t]
	return info, ok
}

// Condition returns the catalog entry for a condition type.
func Condition(t trigger.ConditionType) (ConditionInfo, bool) {
	info, ok := conditions[t]
	return info, ok
}

// EffectAttrs returns the slots an effect of type t reads in a
// scenario of the given format version. Unknown types read nothing.
func EffectAttrs(t trigger.EffectType, version float64) []trigger.Attr {
	info, ok := effects[t]
	if !ok {
		return nil
	}
	return filterAttrs(info.Attrs, version)
}

// ConditionAttrs returns the slots a condition of type t reads in a
// scenario of the given format version.
func ConditionAttrs(t trigger.ConditionType, version float64) []trigger.Attr {
	info, ok := conditions[t]
	if !ok {
		return nil
	}
	return filterAttrs(info.Attrs, version)
}

func filterAttrs(specs []AttrSpec, version float64) []trigger.Attr {
	attrs := make([]trigger.Attr, 0, len(specs))
	for _, s := range specs {
		if s.MinVersion > 0 && version > 0 && version < s.MinVersion {
			continue
		}
		attrs = append(attrs, s.Attr)
	}
	return attrs
}

// reads reports whether the slot list contains attr at any version.
func reads(specs []AttrSpec, attr trigger.Attr) bool {
	for _, s := range specs {
		if s.Attr == attr {
			return true
		}
	}
	return false
}

// EffectByName resolves a display name ("Kill Object") to its entry.
func EffectByName(name string) (EffectInfo, bool) {
	for t, info := range effects {
		if t.String() == name {
			return info, true
		}
	}
	return EffectInfo{}, false
}

// ConditionByName resolves a display name to its entry.
func ConditionByName(name string) (ConditionInfo, bool) {
	for t, info := range conditions {
		if t.String() == name {
			return info, true
		}
	}
	return ConditionInfo{}, false
}
