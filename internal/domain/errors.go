package domain

import (
	"fmt"
	"time"
)

// UnknownStrategyError means a strategy id fell outside the fixed
// catalog set. A stale or misconfigured export, so the run aborts.
type UnknownStrategyError struct {
	Strategy Strategy
}

func (e *UnknownStrategyError) Error() string {
	return fmt.Sprintf("unknown strategy %q", string(e.Strategy))
}

// MissingEarningsResultError means a post-earnings row had no
// previous earnings outcome to key off.
type MissingEarningsResultError struct {
	Symbol   string
	Strategy Strategy
}

func (e *MissingEarningsResultError) Error() string {
	return fmt.Sprintf("%s: strategy %s requires a previous earnings result, none given", e.Symbol, e.Strategy)
}

// SchemaError is a malformed CSV row: wrong column count or a field
// that fails type/range validation.
type SchemaError struct {
	Line   int
	Reason string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Reason, e.Err)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// DateParseError is a malformed calendar date, in a row field or a
// CLI flag. Context names where it came from.
type DateParseError struct {
	Context string
	Value   string
	Err     error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("%s: invalid date %q: %v", e.Context, e.Value, e.Err)
}

func (e *DateParseError) Unwrap() error { return e.Err }

// CatalogInvariantError means the offset table put an entry after its
// exit, caught either at override load (offsets only) or when a row
// resolved to concrete dates. A configuration bug, never a data issue.
type CatalogInvariantError struct {
	Strategy        Strategy
	EntryOffsetDays int
	ExitOffsetDays  int
	// EntryDate and ExitDate are zero when the violation was caught
	// before any row resolved.
	EntryDate time.Time
	ExitDate  time.Time
}

func (e *CatalogInvariantError) Error() string {
	if e.EntryDate.IsZero() {
		return fmt.Sprintf(
			"catalog bug: strategy %s: entry offset %d is after exit offset %d",
			e.Strategy,
			e.EntryOffsetDays,
			e.ExitOffsetDays,
		)
	}
	return fmt.Sprintf(
		"catalog bug: strategy %s resolved entry %s after exit %s",
		e.Strategy,
		e.EntryDate.Format(time.DateOnly),
		e.ExitDate.Format(time.DateOnly),
	)
}
