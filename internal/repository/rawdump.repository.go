package repository

import (
	"earnsched/internal/domain"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

type RawDumpRepository interface {
	Save(path string, mode domain.SelectionMode, trades []domain.ScheduledTrade) error
}

type RawDumpRepositoryHandler struct{}

func NewRawDumpRepository() RawDumpRepository {
	return RawDumpRepositoryHandler{}
}

type rawDump struct {
	RunID         uuid.UUID               `json:"run_id"`
	GeneratedAt   time.Time               `json:"generated_at"`
	SelectionMode string                  `json:"selection_mode"`
	Trades        []domain.ScheduledTrade `json:"trades"`
}

// Save persists the full resolved, pre-aggregation trade set for
// downstream tooling. This is a side channel, not the report.
func (h RawDumpRepositoryHandler) Save(path string, mode domain.SelectionMode, trades []domain.ScheduledTrade) error {
	dump := rawDump{
		RunID:         uuid.New(),
		GeneratedAt:   time.Now().UTC(),
		SelectionMode: mode.String(),
		Trades:        trades,
	}

	payload, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize raw trades: %w", err)
	}

	if err := os.WriteFile(path, payload, 0644); err != nil {
		return fmt.Errorf("failed to write raw trades to %s: %w", path, err)
	}

	return nil
}
