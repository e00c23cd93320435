package app

import (
	"context"
	"fmt"

	"github.com/example/ticketmart/internal/models"
	"github.com/example/ticketmart/internal/ports/primary"
	"github.com/example/ticketmart/internal/ports/secondary"
)

// RunServiceImpl implements the RunService interface.
type RunServiceImpl struct {
	runs secondary.RunStore
}

// NewRunService creates a new run service.
func NewRunService(runs secondary.RunStore) *RunServiceImpl {
	return &RunServiceImpl{runs: runs}
}

// RecentRuns returns the most recent load runs, newest first.
func (s *RunServiceImpl) RecentRuns(ctx context.Context, limit int) ([]*models.LoadRun, error) {
	runs, err := s.runs.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list load runs: %w", err)
	}
	return runs, nil
}

// Compile-time check that RunServiceImpl implements the interface
var _ primary.RunService = (*RunServiceImpl)(nil)
