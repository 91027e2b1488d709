package catalog

import (
	"earnsched/internal/domain"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StrategyDefinition carries the classification and day-offset rule
// for one strategy. Offsets are relative to the earnings anchor date:
// negative before, positive after.
type StrategyDefinition struct {
	Class           domain.StrategyClass
	EntryOffsetDays int
	ExitOffsetDays  int
}

// Catalog maps strategy ids to definitions. Built and optionally
// overridden at startup, read-only once the pipeline runs.
type Catalog struct {
	defs map[domain.Strategy]StrategyDefinition
}

// Default returns the built-in offset table. Pre-earnings entries
// open N days before the announcement and close at it; post-earnings
// entries open on the reaction and close a strategy-specific number
// of days later. Offsets are data, not code: adjusting a strategy
// means editing this table or supplying an override file.
// New builds a catalog from an explicit definition table.
func New(defs map[domain.Strategy]StrategyDefinition) *Catalog {
	return &Catalog{defs: defs}
}

func Default() *Catalog {
	return New(map[domain.Strategy]StrategyDefinition{
		domain.Call3dPreEarnings:        {Class: domain.PreEarnings, EntryOffsetDays: -3, ExitOffsetDays: 0},
		domain.Call7dPreEarnings:        {Class: domain.PreEarnings, EntryOffsetDays: -7, ExitOffsetDays: 0},
		domain.Call14dPreEarnings:       {Class: domain.PreEarnings, EntryOffsetDays: -14, ExitOffsetDays: 0},
		domain.Strangle4dPreEarnings:    {Class: domain.PreEarnings, EntryOffsetDays: -4, ExitOffsetDays: 0},
		domain.Strangle7dPreEarnings:    {Class: domain.PreEarnings, EntryOffsetDays: -7, ExitOffsetDays: 0},
		domain.Strangle14dPreEarnings:   {Class: domain.PreEarnings, EntryOffsetDays: -14, ExitOffsetDays: 0},
		domain.IronCondorPostEarnings:   {Class: domain.PostEarnings, EntryOffsetDays: 1, ExitOffsetDays: 30},
		domain.PutSpreadPostEarnings:    {Class: domain.PostEarnings, EntryOffsetDays: 1, ExitOffsetDays: 30},
		domain.LongStraddlePostEarnings: {Class: domain.PostEarnings, EntryOffsetDays: 0, ExitOffsetDays: 14},
		domain.LongCallPostEarnings:     {Class: domain.PostEarnings, EntryOffsetDays: 1, ExitOffsetDays: 21},
		domain.LongPutPostEarnings:      {Class: domain.PostEarnings, EntryOffsetDays: 1, ExitOffsetDays: 21},
	})
}

// Lookup returns the definition for id. Ids outside the fixed set are
// a hard error; downstream date math is meaningless without a
// definition.
func (c *Catalog) Lookup(id domain.Strategy) (StrategyDefinition, error) {
	def, ok := c.defs[id]
	if !ok {
		return StrategyDefinition{}, &domain.UnknownStrategyError{Strategy: id}
	}
	return def, nil
}

type offsetOverride struct {
	Entry int `yaml:"entry"`
	Exit  int `yaml:"exit"`
}

// ApplyOverrideFile replaces entry/exit offsets for known strategies
// from a YAML document of the form
//
//	call_7d_preearnings: {entry: -5, exit: 0}
//
// Classification is not overridable. Unknown ids and offset pairs
// implying entry after exit are rejected up front, before any row is
// resolved.
func (c *Catalog) ApplyOverrideFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read offsets file: %w", err)
	}

	overrides := map[string]offsetOverride{}
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return fmt.Errorf("failed to parse offsets file %s: %w", path, err)
	}

	for id, override := range overrides {
		def, ok := c.defs[domain.Strategy(id)]
		if !ok {
			return fmt.Errorf("offsets file %s: %w", path, &domain.UnknownStrategyError{Strategy: domain.Strategy(id)})
		}
		if override.Entry > override.Exit {
			return fmt.Errorf("offsets file %s: %w", path, &domain.CatalogInvariantError{
				Strategy:        domain.Strategy(id),
				EntryOffsetDays: override.Entry,
				ExitOffsetDays:  override.Exit,
			})
		}
		def.EntryOffsetDays = override.Entry
		def.ExitOffsetDays = override.Exit
		c.defs[domain.Strategy(id)] = def
	}

	return nil
}
