package trigger

import "fmt"

// ConditionType is the numeric condition ID used by the DE trigger format.
type ConditionType int

const (
	ConditionNone                      ConditionType = 0
	ConditionBringObjectToArea         ConditionType = 1
	ConditionBringObjectToObject       ConditionType = 2
	ConditionOwnObjects                ConditionType = 3
	ConditionOwnFewerObjects           ConditionType = 4
	ConditionObjectsInArea             ConditionType = 5
	ConditionDestroyObject             ConditionType = 6
	ConditionCaptureObject             ConditionType = 7
	ConditionAccumulateAttribute       ConditionType = 8
	ConditionResearchTechnology        ConditionType = 9
	ConditionTimer                     ConditionType = 10
	ConditionObjectSelected            ConditionType = 11
	ConditionAISignal                  ConditionType = 12
	ConditionPlayerDefeated            ConditionType = 13
	ConditionObjectHasTarget           ConditionType = 14
	ConditionObjectVisible             ConditionType = 15
	ConditionObjectNotVisible          ConditionType = 16
	ConditionResearchingTech           ConditionType = 17
	ConditionUnitsGarrisoned           ConditionType = 18
	ConditionDifficultyLevel           ConditionType = 19
	ConditionChance                    ConditionType = 20
	ConditionTechnologyState           ConditionType = 21
	ConditionVariableValue             ConditionType = 22
	ConditionObjectHP                  ConditionType = 23
	ConditionDiplomacyState            ConditionType = 24
	ConditionScriptCall                ConditionType = 25
	ConditionObjectSelectedMultiplayer ConditionType = 26
	ConditionObjectVisibleMultiplayer  ConditionType = 27
	ConditionObjectsInAreaMultiplayer  ConditionType = 28
)

var conditionNames = map[ConditionType]string{
	ConditionNone:                      "None",
	ConditionBringObjectToArea:         "Bring Object to Area",
	ConditionBringObjectToObject:       "Bring Object to Object",
	ConditionOwnObjects:                "Own Objects",
	ConditionOwnFewerObjects:           "Own Fewer Objects",
	ConditionObjectsInArea:             "Objects in Area",
	ConditionDestroyObject:             "Destroy Object",
	ConditionCaptureObject:             "Capture Object",
	ConditionAccumulateAttribute:       "Accumulate Attribute",
	ConditionResearchTechnology:        "Research Technology",
	ConditionTimer:                     "Timer",
	ConditionObjectSelected:            "Object Selected",
	ConditionAISignal:                  "AI Signal",
	ConditionPlayerDefeated:            "Player Defeated",
	ConditionObjectHasTarget:           "Object Has Target",
	ConditionObjectVisible:             "Object Visible",
	ConditionObjectNotVisible:          "Object Not Visible",
	ConditionResearchingTech:           "Researching Technology",
	ConditionUnitsGarrisoned:           "Units Garrisoned",
	ConditionDifficultyLevel:           "Difficulty Level",
	ConditionChance:                    "Chance",
	ConditionTechnologyState:           "Technology State",
	ConditionVariableValue:             "Variable Value",
	ConditionObjectHP:                  "Object HP",
	ConditionDiplomacyState:            "Diplomacy State",
	ConditionScriptCall:                "Script Call",
	ConditionObjectSelectedMultiplayer: "Object Selected (Multiplayer)",
	ConditionObjectVisibleMultiplayer:  "Object Visible (Multiplayer)",
	ConditionObjectsInAreaMultiplayer:  "Objects in Area (Multiplayer)",
}

func (t ConditionType) String() string {
	if name, ok := conditionNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Condition(%d)", int(t))
}

// Known reports whether t is a condition ID this package recognizes.
func (t ConditionType) Known() bool {
	_, ok := conditionNames[t]
	return ok
}
