package internal

import (
	"earnsched/internal/catalog"
	"earnsched/internal/domain"
	"earnsched/internal/util"
	"fmt"
	"time"
)

// FilterCriteria holds the flag-driven row predicates. Each is
// optional; set criteria are AND-combined.
type FilterCriteria struct {
	// Strategies is the explicit allow-list. When non-empty it takes
	// precedence over Class.
	Strategies []domain.Strategy
	Class      *domain.StrategyClass
	// Start and End bound the earnings anchor date, inclusive.
	Start *time.Time
	End   *time.Time
}

// RowFilter applies FilterCriteria to records before resolution.
// Out-of-range rows are dropped here so resolution is never attempted
// on them.
type RowFilter struct {
	Catalog  *catalog.Catalog
	Criteria FilterCriteria
}

// Matches reports whether the record survives filtering. A strategy
// id outside the catalog is an error even for rows the criteria would
// drop: it signals a stale export, so the run must abort.
func (h RowFilter) Matches(record domain.InputRecord) (bool, error) {
	def, err := h.Catalog.Lookup(record.Strategy)
	if err != nil {
		return false, err
	}

	if len(h.Criteria.Strategies) > 0 {
		if !containsStrategy(h.Criteria.Strategies, record.Strategy) {
			return false, nil
		}
	} else if h.Criteria.Class != nil && def.Class != *h.Criteria.Class {
		return false, nil
	}

	if h.Criteria.Start != nil && !util.DateGte(record.NextEarnings, *h.Criteria.Start) {
		return false, nil
	}
	if h.Criteria.End != nil && !util.DateLte(record.NextEarnings, *h.Criteria.End) {
		return false, nil
	}

	return true, nil
}

func containsStrategy(list []domain.Strategy, s domain.Strategy) bool {
	for _, candidate := range list {
		if candidate == s {
			return true
		}
	}
	return false
}

// ResolveSelectionMode applies the mode defaulting rule: an explicit
// --all/--best wins; otherwise --post defaults to best and everything
// else defaults to all.
func ResolveSelectionMode(all, best, postActive bool) (domain.SelectionMode, error) {
	if all && best {
		return domain.SelectAll, fmt.Errorf("--all and --best are mutually exclusive")
	}
	if all {
		return domain.SelectAll, nil
	}
	if best {
		return domain.SelectBest, nil
	}
	if postActive {
		return domain.SelectBest, nil
	}
	return domain.SelectAll, nil
}
