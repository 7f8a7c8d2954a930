package catalog

import (
	"github.com/Entarogan/AOE2-Campaign-Transfer/pkg/trigger"
)

// ownership is the shared slot set of the object-counting conditions:
// a count, an optional explicit unit type (object_list) plus the
// class/category filters, and the owning player.
func ownership() []AttrSpec {
	return []AttrSpec{
		a(trigger.AttrAmountOrQuantity),
		a(trigger.AttrObjectList),
		a(trigger.AttrSourcePlayer),
		a(trigger.AttrObjectGroup),
		a(trigger.AttrObjectType),
	}
}

var conditions = map[trigger.ConditionType]ConditionInfo{
	trigger.ConditionNone: {
		Type:        trigger.ConditionNone,
		Description: "No condition.",
	},
	trigger.ConditionBringObjectToArea: {
		Type:        trigger.ConditionBringObjectToArea,
		Description: "A specific unit reaches an area.",
		Attrs:       []AttrSpec{a(trigger.AttrUnitObject)},
	},
	trigger.ConditionBringObjectToObject: {
		Type:        trigger.ConditionBringObjectToObject,
		Description: "A specific unit reaches another specific unit.",
		Attrs:       []AttrSpec{a(trigger.AttrUnitObject), a(trigger.AttrNextObject)},
	},
	trigger.ConditionOwnObjects: {
		Type:        trigger.ConditionOwnObjects,
		Description: "A player owns at least a number of matching units.",
		Attrs:       ownership(),
	},
	trigger.ConditionOwnFewerObjects: {
		Type:        trigger.ConditionOwnFewerObjects,
		Description: "A player owns at most a number of matching units, optionally in an area.",
		Attrs:       ownership(),
	},
	trigger.ConditionObjectsInArea: {
		Type:        trigger.ConditionObjectsInArea,
		Description: "An area contains a number of matching units.",
		Attrs:       append(ownership(), a(trigger.AttrObjectState)),
	},
	trigger.ConditionDestroyObject: {
		Type:        trigger.ConditionDestroyObject,
		Description: "A specific unit is destroyed.",
		Attrs:       []AttrSpec{a(trigger.AttrUnitObject)},
	},
	trigger.ConditionCaptureObject: {
		Type:        trigger.ConditionCaptureObject,
		Description: "A specific unit is captured by a player.",
		Attrs:       []AttrSpec{a(trigger.AttrUnitObject), a(trigger.AttrSourcePlayer)},
	},
	trigger.ConditionAccumulateAttribute: {
		Type:        trigger.ConditionAccumulateAttribute,
		Description: "A player accumulates an amount of a resource.",
		Attrs:       []AttrSpec{a(trigger.AttrAmountOrQuantity), a(trigger.AttrSourcePlayer)},
	},
	trigger.ConditionResearchTechnology: {
		Type:        trigger.ConditionResearchTechnology,
		Description: "A player has researched a technology.",
		Attrs: []AttrSpec{
			a(trigger.AttrSourcePlayer),
			a(trigger.AttrTechnology),
			since(trigger.AttrLocalTechnology, localTechVersion),
		},
	},
	trigger.ConditionTimer: {
		Type:        trigger.ConditionTimer,
		Description: "A number of seconds has elapsed.",
		Attrs:       []AttrSpec{a(trigger.AttrTimer)},
	},
	trigger.ConditionObjectSelected: {
		Type:        trigger.ConditionObjectSelected,
		Description: "A specific unit is selected.",
		Attrs:       []AttrSpec{a(trigger.AttrUnitObject)},
	},
	trigger.ConditionAISignal: {
		Type:        trigger.ConditionAISignal,
		Description: "An AI script raises a signal.",
		Attrs:       []AttrSpec{a(trigger.AttrAISignal)},
	},
	trigger.ConditionPlayerDefeated: {
		Type:        trigger.ConditionPlayerDefeated,
		Description: "A player is defeated.",
		Attrs:       []AttrSpec{a(trigger.AttrSourcePlayer)},
	},
	trigger.ConditionObjectHasTarget: {
		Type:        trigger.ConditionObjectHasTarget,
		Description: "A specific unit is targeting another unit, optionally filtered by type or category.",
		Attrs: []AttrSpec{
			a(trigger.AttrUnitObject),
			a(trigger.AttrNextObject),
			a(trigger.AttrObjectList),
			a(trigger.AttrObjectGroup),
			a(trigger.AttrObjectType),
			since(trigger.AttrObjectType2, localTechVersion),
		},
	},
	trigger.ConditionObjectVisible: {
		Type:        trigger.ConditionObjectVisible,
		Description: "A specific unit is visible.",
		Attrs:       []AttrSpec{a(trigger.AttrUnitObject)},
	},
	trigger.ConditionObjectNotVisible: {
		Type:        trigger.ConditionObjectNotVisible,
		Description: "A specific unit is not visible.",
		Attrs:       []AttrSpec{a(trigger.AttrUnitObject)},
	},
	trigger.ConditionResearchingTech: {
		Type:        trigger.ConditionResearchingTech,
		Description: "A player is researching a technology.",
		Attrs: []AttrSpec{
			a(trigger.AttrSourcePlayer),
			a(trigger.AttrTechnology),
			since(trigger.AttrLocalTechnology, localTechVersion),
		},
	},
	trigger.ConditionUnitsGarrisoned: {
		Type:        trigger.ConditionUnitsGarrisoned,
		Description: "A specific unit garrisons a number of units.",
		Attrs:       []AttrSpec{a(trigger.AttrAmountOrQuantity), a(trigger.AttrUnitObject)},
	},
	trigger.ConditionDifficultyLevel: {
		Type:        trigger.ConditionDifficultyLevel,
		Description: "The game is at a difficulty level.",
		Attrs:       []AttrSpec{a(trigger.AttrAmountOrQuantity)},
	},
	trigger.ConditionChance: {
		Type:        trigger.ConditionChance,
		Description: "A random percentage chance.",
		Attrs:       []AttrSpec{a(trigger.AttrAmountOrQuantity)},
	},
	trigger.ConditionTechnologyState: {
		Type:        trigger.ConditionTechnologyState,
		Description: "A technology is in a given state for a player.",
		Attrs: []AttrSpec{
			a(trigger.AttrAmountOrQuantity),
			a(trigger.AttrTechnology),
			since(trigger.AttrLocalTechnology, localTechVersion),
		},
	},
	trigger.ConditionVariableValue: {
		Type:        trigger.ConditionVariableValue,
		Description: "A trigger variable compares to a value.",
		Attrs:       []AttrSpec{a(trigger.AttrVariable), a(trigger.AttrComparison), a(trigger.AttrAmountOrQuantity)},
	},
	trigger.ConditionObjectHP: {
		Type:        trigger.ConditionObjectHP,
		Description: "A specific unit's hit points compare to a value.",
		Attrs:       []AttrSpec{a(trigger.AttrUnitObject), a(trigger.AttrComparison), a(trigger.AttrAmountOrQuantity)},
	},
	trigger.ConditionDiplomacyState: {
		Type:        trigger.ConditionDiplomacyState,
		Description: "Diplomacy between two players is in a given state.",
		Attrs:       []AttrSpec{a(trigger.AttrAmountOrQuantity), a(trigger.AttrSourcePlayer), a(trigger.AttrTargetPlayer)},
	},
	trigger.ConditionScriptCall: {
		Type:        trigger.ConditionScriptCall,
		Description: "An XS script function returns true.",
	},
	trigger.ConditionObjectSelectedMultiplayer: {
		Type:        trigger.ConditionObjectSelectedMultiplayer,
		Description: "A specific unit is selected by a player (multiplayer).",
		Attrs:       []AttrSpec{a(trigger.AttrUnitObject), a(trigger.AttrSourcePlayer)},
	},
	trigger.ConditionObjectVisibleMultiplayer: {
		Type:        trigger.ConditionObjectVisibleMultiplayer,
		Description: "A specific unit is visible to a player (multiplayer).",
		Attrs:       []AttrSpec{a(trigger.AttrUnitObject), a(trigger.AttrSourcePlayer)},
	},
	trigger.ConditionObjectsInAreaMultiplayer: {
		Type:        trigger.ConditionObjectsInAreaMultiplayer,
		Description: "An area contains a number of matching units (multiplayer).",
		Attrs:       append(ownership(), a(trigger.AttrObjectState)),
	},
}
