package catalog

import (
	"github.com/Entarogan/AOE2-Campaign-Transfer/pkg/trigger"
)

// localTechVersion is the first scenario format version that carries
// the local_technology slot. Older files raise no error; the slot is
// simply absent and rewrites skip it.
const localTechVersion = 1.55

func a(attr trigger.Attr) AttrSpec {
	return AttrSpec{Attr: attr}
}

func since(attr trigger.Attr, v float64) AttrSpec {
	return AttrSpec{Attr: attr, MinVersion: v}
}

// selection is the shared slot set of area-selection effects: an
// optional explicit unit type plus the class/category filters, the
// owning player, and the hand-picked instance list.
func selection() []AttrSpec {
	return []AttrSpec{
		a(trigger.AttrObjectListUnitID),
		a(trigger.AttrSourcePlayer),
		a(trigger.AttrObjectGroup),
		a(trigger.AttrObjectType),
		a(trigger.AttrSelectedObjectIDs),
	}
}

func withSel(extra ...AttrSpec) []AttrSpec {
	return append(selection(), extra...)
}

var effects = map[trigger.EffectType]EffectInfo{
	trigger.EffectNone: {
		Type:        trigger.EffectNone,
		Description: "No effect.",
	},
	trigger.EffectChangeDiplomacy: {
		Type:        trigger.EffectChangeDiplomacy,
		Description: "Changes diplomacy between two players.",
		Attrs:       []AttrSpec{a(trigger.AttrDiplomacy), a(trigger.AttrSourcePlayer), a(trigger.AttrTargetPlayer)},
	},
	trigger.EffectResearchTechnology: {
		Type:        trigger.EffectResearchTechnology,
		Description: "Researches a technology for a player.",
		Attrs: []AttrSpec{
			a(trigger.AttrSourcePlayer),
			a(trigger.AttrTechnology),
			a(trigger.AttrForceResearchTechnology),
			since(trigger.AttrLocalTechnology, localTechVersion),
		},
	},
	trigger.EffectSendChat: {
		Type:        trigger.EffectSendChat,
		Description: "Sends a chat message to a player.",
		Attrs:       []AttrSpec{a(trigger.AttrSourcePlayer)},
	},
	trigger.EffectPlaySound: {
		Type:        trigger.EffectPlaySound,
		Description: "Plays a sound for a player.",
		Attrs:       []AttrSpec{a(trigger.AttrSourcePlayer)},
	},
	trigger.EffectTribute: {
		Type:        trigger.EffectTribute,
		Description: "Transfers resources between players.",
		Attrs:       []AttrSpec{a(trigger.AttrQuantity), a(trigger.AttrSourcePlayer), a(trigger.AttrTargetPlayer)},
	},
	trigger.EffectUnlockGate: {
		Type:        trigger.EffectUnlockGate,
		Description: "Unlocks a selected gate.",
		Attrs:       []AttrSpec{a(trigger.AttrSelectedObjectIDs)},
	},
	trigger.EffectLockGate: {
		Type:        trigger.EffectLockGate,
		Description: "Locks a selected gate.",
		Attrs:       []AttrSpec{a(trigger.AttrSelectedObjectIDs)},
	},
	trigger.EffectActivateTrigger: {
		Type:        trigger.EffectActivateTrigger,
		Description: "Activates another trigger.",
		Attrs:       []AttrSpec{a(trigger.AttrTriggerID)},
	},
	trigger.EffectDeactivateTrigger: {
		Type:        trigger.EffectDeactivateTrigger,
		Description: "Deactivates another trigger.",
		Attrs:       []AttrSpec{a(trigger.AttrTriggerID)},
	},
	trigger.EffectAIScriptGoal: {
		Type:        trigger.EffectAIScriptGoal,
		Description: "Signals an AI script goal.",
		Attrs:       []AttrSpec{a(trigger.AttrAISignal)},
	},
	trigger.EffectCreateObject: {
		Type:        trigger.EffectCreateObject,
		Description: "Creates a unit of a given type at a location.",
		Attrs:       []AttrSpec{a(trigger.AttrObjectListUnitID), a(trigger.AttrSourcePlayer)},
	},
	trigger.EffectTaskObject: {
		Type:        trigger.EffectTaskObject,
		Description: "Tasks selected units to a location or target object.",
		Attrs:       withSel(a(trigger.AttrLocationObjectReference)),
	},
	trigger.EffectDeclareVictory: {
		Type:        trigger.EffectDeclareVictory,
		Description: "Declares victory for a player.",
		Attrs:       []AttrSpec{a(trigger.AttrSourcePlayer)},
	},
	trigger.EffectKillObject: {
		Type:        trigger.EffectKillObject,
		Description: "Kills units matching the selection.",
		Attrs:       selection(),
	},
	trigger.EffectRemoveObject: {
		Type:        trigger.EffectRemoveObject,
		Description: "Removes units matching the selection without a death animation.",
		Attrs:       selection(),
	},
	trigger.EffectChangeView: {
		Type:        trigger.EffectChangeView,
		Description: "Moves a player's view to a location.",
		Attrs:       []AttrSpec{a(trigger.AttrSourcePlayer)},
	},
	trigger.EffectUnload: {
		Type:        trigger.EffectUnload,
		Description: "Unloads garrisoned units at a location.",
		Attrs:       withSel(a(trigger.AttrLocationObjectReference)),
	},
	trigger.EffectChangeOwnership: {
		Type:        trigger.EffectChangeOwnership,
		Description: "Transfers matching units to another player.",
		Attrs:       withSel(a(trigger.AttrTargetPlayer)),
	},
	trigger.EffectPatrol: {
		Type:        trigger.EffectPatrol,
		Description: "Sets matching units to patrol to a location.",
		Attrs:       selection(),
	},
	trigger.EffectDisplayInstructions: {
		Type:        trigger.EffectDisplayInstructions,
		Description: "Displays instruction text.",
		Attrs:       []AttrSpec{a(trigger.AttrSourcePlayer)},
	},
	trigger.EffectClearInstructions: {
		Type:        trigger.EffectClearInstructions,
		Description: "Clears displayed instructions.",
	},
	trigger.EffectFreezeObject: {
		Type:        trigger.EffectFreezeObject,
		Description: "Sets matching units to the no-attack stance.",
		Attrs:       selection(),
	},
	trigger.EffectUseAdvancedButtons: {
		Type:        trigger.EffectUseAdvancedButtons,
		Description: "Enables advanced trigger buttons.",
	},
	trigger.EffectDamageObject: {
		Type:        trigger.EffectDamageObject,
		Description: "Deals a fixed amount of damage to matching units.",
		Attrs:       withSel(a(trigger.AttrQuantity)),
	},
	trigger.EffectPlaceFoundation: {
		Type:        trigger.EffectPlaceFoundation,
		Description: "Places an unbuilt foundation of a building type.",
		Attrs:       []AttrSpec{a(trigger.AttrObjectListUnitID), a(trigger.AttrSourcePlayer)},
	},
	trigger.EffectChangeObjectName: {
		Type:        trigger.EffectChangeObjectName,
		Description: "Renames matching units.",
		Attrs:       selection(),
	},
	trigger.EffectChangeObjectHP: {
		Type:        trigger.EffectChangeObjectHP,
		Description: "Changes hit points of matching units.",
		Attrs:       withSel(a(trigger.AttrQuantity)),
	},
	trigger.EffectChangeObjectAttack: {
		Type:        trigger.EffectChangeObjectAttack,
		Description: "Changes attack of matching units.",
		Attrs:       withSel(a(trigger.AttrQuantity)),
	},
	trigger.EffectStopObject: {
		Type:        trigger.EffectStopObject,
		Description: "Stops matching units.",
		Attrs:       selection(),
	},
	trigger.EffectAttackMove: {
		Type:        trigger.EffectAttackMove,
		Description: "Attack-moves matching units to a location.",
		Attrs:       withSel(a(trigger.AttrLocationObjectReference)),
	},
	trigger.EffectChangeObjectArmor: {
		Type:        trigger.EffectChangeObjectArmor,
		Description: "Changes armor of matching units.",
		Attrs:       withSel(a(trigger.AttrQuantity)),
	},
	trigger.EffectChangeObjectRange: {
		Type:        trigger.EffectChangeObjectRange,
		Description: "Changes range of matching units.",
		Attrs:       withSel(a(trigger.AttrQuantity)),
	},
	trigger.EffectChangeObjectSpeed: {
		Type:        trigger.EffectChangeObjectSpeed,
		Description: "Changes movement speed of matching units.",
		Attrs:       withSel(a(trigger.AttrQuantity)),
	},
	trigger.EffectHealObject: {
		Type:        trigger.EffectHealObject,
		Description: "Heals matching units.",
		Attrs:       withSel(a(trigger.AttrQuantity)),
	},
	trigger.EffectTeleportObject: {
		Type:        trigger.EffectTeleportObject,
		Description: "Teleports matching units to a location.",
		Attrs:       selection(),
	},
	trigger.EffectChangeObjectStance: {
		Type:        trigger.EffectChangeObjectStance,
		Description: "Changes the combat stance of matching units.",
		Attrs:       withSel(a(trigger.AttrAttackStance)),
	},
	trigger.EffectDisplayTimer: {
		Type:        trigger.EffectDisplayTimer,
		Description: "Displays a countdown timer.",
		Attrs:       []AttrSpec{a(trigger.AttrTimer)},
	},
	trigger.EffectEnableDisableObject: {
		Type:        trigger.EffectEnableDisableObject,
		Description: "Enables or disables training of a unit type.",
		Attrs:       []AttrSpec{a(trigger.AttrObjectListUnitID), a(trigger.AttrSourcePlayer), a(trigger.AttrQuantity)},
	},
	trigger.EffectEnableDisableTechnology: {
		Type:        trigger.EffectEnableDisableTechnology,
		Description: "Enables or disables researching of a technology.",
		Attrs:       []AttrSpec{a(trigger.AttrTechnology), a(trigger.AttrSourcePlayer), a(trigger.AttrQuantity)},
	},
	trigger.EffectChangeObjectCost: {
		Type:        trigger.EffectChangeObjectCost,
		Description: "Changes the cost of a unit type.",
		Attrs:       []AttrSpec{a(trigger.AttrObjectListUnitID), a(trigger.AttrSourcePlayer), a(trigger.AttrQuantity)},
	},
	trigger.EffectSetPlayerVisibility: {
		Type:        trigger.EffectSetPlayerVisibility,
		Description: "Sets visibility between players.",
		Attrs:       []AttrSpec{a(trigger.AttrSourcePlayer), a(trigger.AttrTargetPlayer)},
	},
	trigger.EffectChangeObjectIcon: {
		Type:        trigger.EffectChangeObjectIcon,
		Description: "Changes the icon of matching units.",
		Attrs:       withSel(a(trigger.AttrQuantity)),
	},
	trigger.EffectReplaceObject: {
		Type:        trigger.EffectReplaceObject,
		Description: "Replaces matching units with another unit type.",
		Attrs: withSel(
			a(trigger.AttrObjectListUnitID2),
			a(trigger.AttrObjectType2),
			a(trigger.AttrTargetPlayer),
		),
	},
	trigger.EffectChangeObjectDescription: {
		Type:        trigger.EffectChangeObjectDescription,
		Description: "Changes the description of matching units.",
		Attrs:       selection(),
	},
	trigger.EffectChangePlayerName: {
		Type:        trigger.EffectChangePlayerName,
		Description: "Renames a player.",
		Attrs:       []AttrSpec{a(trigger.AttrSourcePlayer)},
	},
	trigger.EffectChangePlayerColor: {
		Type:        trigger.EffectChangePlayerColor,
		Description: "Changes a player's color.",
		Attrs:       []AttrSpec{a(trigger.AttrSourcePlayer), a(trigger.AttrQuantity)},
	},
	trigger.EffectChangeCivilizationName: {
		Type:        trigger.EffectChangeCivilizationName,
		Description: "Renames a player's civilization.",
		Attrs:       []AttrSpec{a(trigger.AttrSourcePlayer)},
	},
	trigger.EffectCreateGarrisonedObject: {
		Type:        trigger.EffectCreateGarrisonedObject,
		Description: "Creates a unit garrisoned inside another created unit.",
		Attrs: []AttrSpec{
			a(trigger.AttrObjectListUnitID),
			a(trigger.AttrObjectListUnitID2),
			a(trigger.AttrSourcePlayer),
		},
	},
	trigger.EffectAcknowledgeAIScriptGoal: {
		Type:        trigger.EffectAcknowledgeAIScriptGoal,
		Description: "Acknowledges an AI script goal.",
		Attrs:       []AttrSpec{a(trigger.AttrAISignal)},
	},
	trigger.EffectModifyAttribute: {
		Type:        trigger.EffectModifyAttribute,
		Description: "Modifies an attribute of a unit type.",
		Attrs:       []AttrSpec{a(trigger.AttrObjectListUnitID), a(trigger.AttrSourcePlayer), a(trigger.AttrQuantity)},
	},
	trigger.EffectModifyResource: {
		Type:        trigger.EffectModifyResource,
		Description: "Modifies a player's resource stockpile.",
		Attrs:       []AttrSpec{a(trigger.AttrSourcePlayer), a(trigger.AttrQuantity)},
	},
	trigger.EffectModifyResourceByVariable: {
		Type:        trigger.EffectModifyResourceByVariable,
		Description: "Modifies a resource stockpile by a variable's value.",
		Attrs:       []AttrSpec{a(trigger.AttrSourcePlayer), a(trigger.AttrVariable)},
	},
	trigger.EffectSetBuildingGatherPoint: {
		Type:        trigger.EffectSetBuildingGatherPoint,
		Description: "Sets the gather point of selected buildings.",
		Attrs:       []AttrSpec{a(trigger.AttrSelectedObjectIDs), a(trigger.AttrLocationObjectReference)},
	},
	trigger.EffectScriptCall: {
		Type:        trigger.EffectScriptCall,
		Description: "Executes an XS script snippet.",
	},
	trigger.EffectChangeVariable: {
		Type:        trigger.EffectChangeVariable,
		Description: "Changes a trigger variable.",
		Attrs:       []AttrSpec{a(trigger.AttrVariable), a(trigger.AttrQuantity)},
	},
	trigger.EffectClearTimer: {
		Type:        trigger.EffectClearTimer,
		Description: "Clears a displayed timer.",
		Attrs:       []AttrSpec{a(trigger.AttrTimer)},
	},
	trigger.EffectChangeObjectPlayerColor: {
		Type:        trigger.EffectChangeObjectPlayerColor,
		Description: "Changes the player color of matching units.",
		Attrs:       withSel(a(trigger.AttrQuantity)),
	},
	trigger.EffectChangeObjectCivName: {
		Type:        trigger.EffectChangeObjectCivName,
		Description: "Changes the displayed civilization of matching units.",
		Attrs:       selection(),
	},
	trigger.EffectChangeObjectPlayerName: {
		Type:        trigger.EffectChangeObjectPlayerName,
		Description: "Changes the displayed owner name of matching units.",
		Attrs:       selection(),
	},
	trigger.EffectDisableUnitTargeting: {
		Type:        trigger.EffectDisableUnitTargeting,
		Description: "Makes matching units untargetable.",
		Attrs:       selection(),
	},
	trigger.EffectEnableUnitTargeting: {
		Type:        trigger.EffectEnableUnitTargeting,
		Description: "Makes matching units targetable again.",
		Attrs:       selection(),
	},
	trigger.EffectChangeTechnologyCost: {
		Type:        trigger.EffectChangeTechnologyCost,
		Description: "Changes the cost of a technology.",
		Attrs:       []AttrSpec{a(trigger.AttrTechnology), a(trigger.AttrSourcePlayer), a(trigger.AttrQuantity)},
	},
	trigger.EffectChangeTechnologyTime: {
		Type:        trigger.EffectChangeTechnologyTime,
		Description: "Changes the research time of a technology.",
		Attrs:       []AttrSpec{a(trigger.AttrTechnology), a(trigger.AttrSourcePlayer), a(trigger.AttrQuantity)},
	},
	trigger.EffectChangeTechnologyName: {
		Type:        trigger.EffectChangeTechnologyName,
		Description: "Renames a technology.",
		Attrs:       []AttrSpec{a(trigger.AttrTechnology), a(trigger.AttrSourcePlayer)},
	},
	trigger.EffectChangeTechnologyDesc: {
		Type:        trigger.EffectChangeTechnologyDesc,
		Description: "Changes the description of a technology.",
		Attrs:       []AttrSpec{a(trigger.AttrTechnology), a(trigger.AttrSourcePlayer)},
	},
	trigger.EffectEnableTechnologyStacking: {
		Type:        trigger.EffectEnableTechnologyStacking,
		Description: "Allows a technology to be researched repeatedly.",
		Attrs:       []AttrSpec{a(trigger.AttrTechnology), a(trigger.AttrSourcePlayer)},
	},
	trigger.EffectDisableTechnologyStacking: {
		Type:        trigger.EffectDisableTechnologyStacking,
		Description: "Disallows repeated research of a technology.",
		Attrs:       []AttrSpec{a(trigger.AttrTechnology), a(trigger.AttrSourcePlayer)},
	},
}
