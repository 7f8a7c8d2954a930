// Package audit scans scenarios for every slot a proposed ID mapping
// would touch - or deliberately refuse to touch. It exists to answer
// the question a manual reviewer of a batch find-and-replace has to
// answer by hand: which matches are real unit-type references, and
// which are instance references or category filters that merely share
// the number.
package audit

import (
	"fmt"

	"github.com/Entarogan/AOE2-Campaign-Transfer/internal/rewrite"
	"github.com/Entarogan/AOE2-Campaign-Transfer/pkg/catalog"
	"github.com/Entarogan/AOE2-Campaign-Transfer/pkg/scenario"
	"github.com/Entarogan/AOE2-Campaign-Transfer/pkg/trigger"
)

// Site names where an occurrence was found.
type Site string

const (
	SiteEffect    Site = "effect"
	SiteCondition Site = "condition"
	SiteUnit      Site = "unit"
)

// Occurrence is one slot whose value appears in the mapping.
type Occurrence struct {
	File        string       `json:"file,omitempty"`
	Site        Site         `json:"site"`
	Trigger     int          `json:"trigger"` // -1 for map units
	TriggerName string       `json:"trigger_name,omitempty"`
	Index       int          `json:"index"`  // effect/condition/unit index
	Player      int          `json:"player"` // map units only, else -1
	Attr        trigger.Attr `json:"attr"`
	Kind        string       `json:"kind"`
	Value       int          `json:"value"`
	NewValue    int          `json:"new_value"`
	Rewritable  bool         `json:"rewritable"`
}

// Report partitions a scan into the matches a rewrite would change and
// the matches it protects, plus collision warnings.
type Report struct {
	File       string       `json:"file,omitempty"`
	Target     string       `json:"target"`
	Rewritable []Occurrence `json:"rewritable"`
	Protected  []Occurrence `json:"protected"`
	Warnings   []string     `json:"warnings,omitempty"`
}

// Scan inspects every cataloged slot of every trigger record, and the
// UnitConst of every placed unit, for values present in the mapping.
// Target is the kind a rewrite pass would write (KindUnitType for
// replace-unit, KindTech for replace-tech); matches of any other kind
// are reported as protected.
func Scan(s *scenario.Scenario, m rewrite.Mapping, target trigger.Kind) *Report {
	rep := &Report{File: s.FileName, Target: target.String()}

	for ti := range s.Triggers {
		trg := &s.Triggers[ti]
		for ei := range trg.Effects {
			e := &trg.Effects[ei]
			for _, attr := range catalog.EffectAttrs(e.Type, s.Version) {
				occ := Occurrence{
					File:        s.FileName,
					Site:        SiteEffect,
					Trigger:     ti,
					TriggerName: trg.Name,
					Index:       ei,
					Player:      -1,
					Attr:        attr,
				}
				// The hand-picked instance list is the one
				// list-valued slot; report each element.
				if attr == trigger.AttrSelectedObjectIDs {
					for _, id := range e.SelectedObjectIDs {
						if !trigger.ValidValue(id) {
							continue
						}
						occ.Value = id
						rep.collect(m, target, occ)
					}
					continue
				}
				v, ok := e.Get(attr)
				if !ok || !trigger.ValidValue(v) {
					continue
				}
				occ.Value = v
				rep.collect(m, target, occ)
			}
		}
		for ci := range trg.Conditions {
			c := &trg.Conditions[ci]
			for _, attr := range catalog.ConditionAttrs(c.Type, s.Version) {
				v, ok := c.Get(attr)
				if !ok || !trigger.ValidValue(v) {
					continue
				}
				rep.collect(m, target, Occurrence{
					File:        s.FileName,
					Site:        SiteCondition,
					Trigger:     ti,
					TriggerName: trg.Name,
					Index:       ci,
					Player:      -1,
					Attr:        attr,
					Value:       v,
				})
			}
		}
	}

	for pi := range s.Units {
		for ui := range s.Units[pi] {
			u := &s.Units[pi][ui]
			if !trigger.ValidValue(u.UnitConst) {
				continue
			}
			rep.collect(m, target, Occurrence{
				File:    s.FileName,
				Site:    SiteUnit,
				Trigger: -1,
				Index:   ui,
				Player:  pi,
				Attr:    "unit_const",
				Value:   u.UnitConst,
			})
		}
	}

	rep.warnCategoryCollisions(m)
	return rep
}

func (rep *Report) collect(m rewrite.Mapping, target trigger.Kind, occ Occurrence) {
	newID, hit := m[occ.Value]
	if !hit {
		return
	}

	var kind trigger.Kind
	if occ.Site == SiteUnit {
		kind = trigger.KindUnitType
	} else {
		kind = catalog.Classify(occ.Attr)
	}
	occ.Kind = kind.String()
	occ.NewValue = newID
	occ.Rewritable = kind == target

	if occ.Rewritable {
		rep.Rewritable = append(rep.Rewritable, occ)
	} else {
		rep.Protected = append(rep.Protected, occ)
	}
}

// warnCategoryCollisions flags mapping entries whose old ID is also a
// legal category filter value appearing on a filter-consuming record.
// Those slots stay untouched; the warning is there so a reviewer sees
// the numeric collision was real, not missed.
func (rep *Report) warnCategoryCollisions(m rewrite.Mapping) {
	for _, oldID := range m.OldIDs() {
		if !trigger.ValidCategory(oldID) {
			continue
		}
		n := 0
		for _, occ := range rep.Protected {
			if occ.Value == oldID && occ.Kind == trigger.KindCategoryFilter.String() {
				n++
			}
		}
		if n > 0 {
			prefix := ""
			if rep.File != "" {
				prefix = rep.File + ": "
			}
			rep.Warnings = append(rep.Warnings, fmt.Sprintf(
				"%sold ID %d collides with category filter %s on %d slot(s); those slots are protected and stay unchanged",
				prefix, oldID, trigger.Category(oldID), n))
		}
	}
}

// Matched is the total number of slots whose value appears in the mapping.
func (rep *Report) Matched() int {
	return len(rep.Rewritable) + len(rep.Protected)
}

// Merge folds another file's report into this one for directory scans.
func (rep *Report) Merge(other *Report) {
	rep.Rewritable = append(rep.Rewritable, other.Rewritable...)
	rep.Protected = append(rep.Protected, other.Protected...)
	rep.Warnings = append(rep.Warnings, other.Warnings...)
}
