package rewrite

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Mapping maps old IDs to new IDs. One pass applies it: a slot already
// rewritten is never rewritten again, so chained entries (a->b, b->c)
// do not cascade.
type Mapping map[int]int

var ErrEmptyMapping = errors.New("mapping is empty")

// Single builds a one-pair mapping.
func Single(oldID, newID int) Mapping {
	return Mapping{oldID: newID}
}

// Validate rejects mappings that could never be legal rewrites.
func (m Mapping) Validate() error {
	if len(m) == 0 {
		return ErrEmptyMapping
	}
	for oldID, newID := range m {
		if oldID < 0 {
			return fmt.Errorf("mapping key %d: old IDs must be non-negative", oldID)
		}
		if newID < 0 {
			return fmt.Errorf("mapping %d -> %d: new IDs must be non-negative", oldID, newID)
		}
	}
	return nil
}

// OldIDs returns the mapped-from IDs in ascending order.
func (m Mapping) OldIDs() []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// LoadMapping reads a YAML file of `old: new` integer pairs.
func LoadMapping(path string) (Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file: %w", err)
	}
	var m Mapping
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse mapping file %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("mapping file %s: %w", path, err)
	}
	return m, nil
}
