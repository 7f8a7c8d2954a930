package trigger

import "fmt"

// EffectType is the numeric effect ID used by the DE trigger format.
type EffectType int

const (
	EffectNone                       EffectType = 0
	EffectChangeDiplomacy            EffectType = 1
	EffectResearchTechnology         EffectType = 2
	EffectSendChat                   EffectType = 3
	EffectPlaySound                  EffectType = 4
	EffectTribute                    EffectType = 5
	EffectUnlockGate                 EffectType = 6
	EffectLockGate                   EffectType = 7
	EffectActivateTrigger            EffectType = 8
	EffectDeactivateTrigger          EffectType = 9
	EffectAIScriptGoal               EffectType = 10
	EffectCreateObject               EffectType = 11
	EffectTaskObject                 EffectType = 12
	EffectDeclareVictory             EffectType = 13
	EffectKillObject                 EffectType = 14
	EffectRemoveObject               EffectType = 15
	EffectChangeView                 EffectType = 16
	EffectUnload                     EffectType = 17
	EffectChangeOwnership            EffectType = 18
	EffectPatrol                     EffectType = 19
	EffectDisplayInstructions        EffectType = 20
	EffectClearInstructions          EffectType = 21
	EffectFreezeObject               EffectType = 22
	EffectUseAdvancedButtons         EffectType = 23
	EffectDamageObject               EffectType = 24
	EffectPlaceFoundation            EffectType = 25
	EffectChangeObjectName           EffectType = 26
	EffectChangeObjectHP             EffectType = 27
	EffectChangeObjectAttack         EffectType = 28
	EffectStopObject                 EffectType = 29
	EffectAttackMove                 EffectType = 30
	EffectChangeObjectArmor          EffectType = 31
	EffectChangeObjectRange          EffectType = 32
	EffectChangeObjectSpeed          EffectType = 33
	EffectHealObject                 EffectType = 34
	EffectTeleportObject             EffectType = 35
	EffectChangeObjectStance         EffectType = 36
	EffectDisplayTimer               EffectType = 37
	EffectEnableDisableObject        EffectType = 38
	EffectEnableDisableTechnology    EffectType = 39
	EffectChangeObjectCost           EffectType = 40
	EffectSetPlayerVisibility        EffectType = 41
	EffectChangeObjectIcon           EffectType = 42
	EffectReplaceObject              EffectType = 43
	EffectChangeObjectDescription    EffectType = 44
	EffectChangePlayerName           EffectType = 45
	EffectChangePlayerColor          EffectType = 46
	EffectChangeCivilizationName     EffectType = 47
	EffectCreateGarrisonedObject     EffectType = 48
	EffectAcknowledgeAIScriptGoal    EffectType = 49
	EffectModifyAttribute            EffectType = 50
	EffectModifyResource             EffectType = 51
	EffectModifyResourceByVariable   EffectType = 52
	EffectSetBuildingGatherPoint     EffectType = 53
	EffectScriptCall                 EffectType = 54
	EffectChangeVariable             EffectType = 55
	EffectClearTimer                 EffectType = 56
	EffectChangeObjectPlayerColor    EffectType = 57
	EffectChangeObjectCivName        EffectType = 58
	EffectChangeObjectPlayerName     EffectType = 59
	EffectDisableUnitTargeting       EffectType = 60
	EffectEnableUnitTargeting        EffectType = 61
	EffectChangeTechnologyCost       EffectType = 62
	EffectChangeTechnologyTime       EffectType = 63
	EffectChangeTechnologyName       EffectType = 64
	EffectChangeTechnologyDesc       EffectType = 65
	EffectEnableTechnologyStacking   EffectType = 66
	EffectDisableTechnologyStacking  EffectType = 67
)

var effectNames = map[EffectType]string{
	EffectNone:                      "None",
	EffectChangeDiplomacy:           "Change Diplomacy",
	EffectResearchTechnology:        "Research Technology",
	EffectSendChat:                  "Send Chat",
	EffectPlaySound:                 "Play Sound",
	EffectTribute:                   "Tribute",
	EffectUnlockGate:                "Unlock Gate",
	EffectLockGate:                  "Lock Gate",
	EffectActivateTrigger:           "Activate Trigger",
	EffectDeactivateTrigger:         "Deactivate Trigger",
	EffectAIScriptGoal:              "AI Script Goal",
	EffectCreateObject:              "Create Object",
	EffectTaskObject:                "Task Object",
	EffectDeclareVictory:            "Declare Victory",
	EffectKillObject:                "Kill Object",
	EffectRemoveObject:              "Remove Object",
	EffectChangeView:                "Change View",
	EffectUnload:                    "Unload",
	EffectChangeOwnership:           "Change Ownership",
	EffectPatrol:                    "Patrol",
	EffectDisplayInstructions:       "Display Instructions",
	EffectClearInstructions:         "Clear Instructions",
	EffectFreezeObject:              "Freeze Object",
	EffectUseAdvancedButtons:        "Use Advanced Buttons",
	EffectDamageObject:              "Damage Object",
	EffectPlaceFoundation:           "Place Foundation",
	EffectChangeObjectName:          "Change Object Name",
	EffectChangeObjectHP:            "Change Object HP",
	EffectChangeObjectAttack:        "Change Object Attack",
	EffectStopObject:                "Stop Object",
	EffectAttackMove:                "Attack-Move",
	EffectChangeObjectArmor:         "Change Object Armor",
	EffectChangeObjectRange:         "Change Object Range",
	EffectChangeObjectSpeed:         "Change Object Speed",
	EffectHealObject:                "Heal Object",
	EffectTeleportObject:            "Teleport Object",
	EffectChangeObjectStance:        "Change Object Stance",
	EffectDisplayTimer:              "Display Timer",
	EffectEnableDisableObject:       "Enable/Disable Object",
	EffectEnableDisableTechnology:   "Enable/Disable Technology",
	EffectChangeObjectCost:          "Change Object Cost",
	EffectSetPlayerVisibility:       "Set Player Visibility",
	EffectChangeObjectIcon:          "Change Object Icon",
	EffectReplaceObject:             "Replace Object",
	EffectChangeObjectDescription:   "Change Object Description",
	EffectChangePlayerName:          "Change Player Name",
	EffectChangePlayerColor:         "Change Player Color",
	EffectChangeCivilizationName:    "Change Civilization Name",
	EffectCreateGarrisonedObject:    "Create Garrisoned Object",
	EffectAcknowledgeAIScriptGoal:   "Acknowledge AI Script Goal",
	EffectModifyAttribute:           "Modify Attribute",
	EffectModifyResource:            "Modify Resource",
	EffectModifyResourceByVariable:  "Modify Resource by Variable",
	EffectSetBuildingGatherPoint:    "Set Building Gather Point",
	EffectScriptCall:                "Script Call",
	EffectChangeVariable:            "Change Variable",
	EffectClearTimer:                "Clear Timer",
	EffectChangeObjectPlayerColor:   "Change Object Player Color",
	EffectChangeObjectCivName:       "Change Object Civilization Name",
	EffectChangeObjectPlayerName:    "Change Object Player Name",
	EffectDisableUnitTargeting:      "Disable Unit Targeting",
	EffectEnableUnitTargeting:       "Enable Unit Targeting",
	EffectChangeTechnologyCost:      "Change Technology Cost",
	EffectChangeTechnologyTime:      "Change Technology Research Time",
	EffectChangeTechnologyName:      "Change Technology Name",
	EffectChangeTechnologyDesc:      "Change Technology Description",
	EffectEnableTechnologyStacking:  "Enable Technology Stacking",
	EffectDisableTechnologyStacking: "Disable Technology Stacking",
}

func (t EffectType) String() string {
	if name, ok := effectNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Effect(%d)", int(t))
}

// Known reports whether t is an effect ID this package recognizes.
func (t EffectType) Known() bool {
	_, ok := effectNames[t]
	return ok
}
