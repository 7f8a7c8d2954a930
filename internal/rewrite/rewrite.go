// Package rewrite applies old->new ID mappings to scenario trigger
// data. It rewrites only the slots the catalog classifies as the
// requested kind: unit instance references and the object_type /
// object_type2 category filters are never written, no matter what
// values a mapping contains.
package rewrite

import (
	"fmt"

	"github.com/Entarogan/AOE2-Campaign-Transfer/pkg/catalog"
	"github.com/Entarogan/AOE2-Campaign-Transfer/pkg/scenario"
	"github.com/Entarogan/AOE2-Campaign-Transfer/pkg/trigger"
)

// Options controls which part of a scenario a pass touches.
type Options struct {
	// TriggerIndex restricts the pass to one trigger; -1 means all.
	TriggerIndex int

	// UseDisplayOrder interprets TriggerIndex as the editor display
	// slot instead of creation order.
	UseDisplayOrder bool

	// IncludeConditions extends the pass to condition records.
	IncludeConditions bool

	// DryRun counts matches without writing anything.
	DryRun bool
}

// DefaultOptions is a full-scenario pass over effects and conditions.
func DefaultOptions() Options {
	return Options{TriggerIndex: -1, IncludeConditions: true}
}

// UnitTypes rewrites unit database IDs (object_list_unit_id, its
// second slot, and the condition-side object_list) per the mapping.
func UnitTypes(s *scenario.Scenario, m Mapping, opts Options) (*Report, error) {
	return rewriteRecords(s, m, opts, trigger.KindUnitType)
}

// Techs rewrites technology IDs (technology,
// force_research_technology, local_technology) per the mapping. Slots
// absent from the scenario's format version are skipped.
func Techs(s *scenario.Scenario, m Mapping, opts Options) (*Report, error) {
	return rewriteRecords(s, m, opts, trigger.KindTech)
}

func rewriteRecords(s *scenario.Scenario, m Mapping, opts Options, kind trigger.Kind) (*Report, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	indices, err := selectTriggers(s, opts)
	if err != nil {
		return nil, err
	}

	r := newReport()
	for _, ti := range indices {
		trg := &s.Triggers[ti]
		for ei := range trg.Effects {
			e := &trg.Effects[ei]
			for _, attr := range catalog.EffectAttrs(e.Type, s.Version) {
				if catalog.Classify(attr) != kind {
					continue
				}
				v, ok := e.Get(attr)
				if !ok || !trigger.ValidValue(v) {
					continue
				}
				newID, hit := m[v]
				if !hit {
					continue
				}
				if !opts.DryRun {
					e.Set(attr, newID)
				}
				r.hitEffect(v)
			}
		}
		if !opts.IncludeConditions {
			continue
		}
		for ci := range trg.Conditions {
			c := &trg.Conditions[ci]
			for _, attr := range catalog.ConditionAttrs(c.Type, s.Version) {
				if catalog.Classify(attr) != kind {
					continue
				}
				v, ok := c.Get(attr)
				if !ok || !trigger.ValidValue(v) {
					continue
				}
				newID, hit := m[v]
				if !hit {
					continue
				}
				if !opts.DryRun {
					c.Set(attr, newID)
				}
				r.hitCondition(v)
			}
		}
	}
	return r, nil
}

// MapUnits rewrites the UnitConst of placed units per the mapping.
// List order, reference IDs, positions and garrison links are
// preserved; only the type changes.
func MapUnits(s *scenario.Scenario, m Mapping, dryRun bool) (*Report, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	r := newReport()
	for pi := range s.Units {
		for ui := range s.Units[pi] {
			u := &s.Units[pi][ui]
			oldID := u.UnitConst
			newID, hit := m[oldID]
			if !hit {
				continue
			}
			if !dryRun {
				u.UnitConst = newID
			}
			r.hitUnit(oldID)
		}
	}
	return r, nil
}

func selectTriggers(s *scenario.Scenario, opts Options) ([]int, error) {
	if opts.TriggerIndex < 0 {
		indices := make([]int, len(s.Triggers))
		for i := range indices {
			indices[i] = i
		}
		return indices, nil
	}
	if opts.UseDisplayOrder {
		for ti := range s.Triggers {
			if s.Triggers[ti].DisplayIndex == opts.TriggerIndex {
				return []int{ti}, nil
			}
		}
		return nil, fmt.Errorf("no trigger at display index %d", opts.TriggerIndex)
	}
	if opts.TriggerIndex >= len(s.Triggers) {
		return nil, fmt.Errorf("trigger index %d out of range (have %d triggers)", opts.TriggerIndex, len(s.Triggers))
	}
	return []int{opts.TriggerIndex}, nil
}
