package app

import (
	"context"
	"fmt"

	"github.com/example/ticketmart/internal/models"
	"github.com/example/ticketmart/internal/ports/primary"
	"github.com/example/ticketmart/internal/ports/secondary"
)

// StatsServiceImpl implements the StatsService interface.
type StatsServiceImpl struct {
	stats secondary.StatsReader
}

// NewStatsService creates a new stats service.
func NewStatsService(stats secondary.StatsReader) *StatsServiceImpl {
	return &StatsServiceImpl{stats: stats}
}

// Stats reports row counts for every warehouse table. Tables missing from
// an uninitialized database are reported as unavailable, not errors.
func (s *StatsServiceImpl) Stats(ctx context.Context) ([]models.TableCount, error) {
	counts, err := s.stats.TableCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read statistics: %w", err)
	}
	return counts, nil
}

// Compile-time check that StatsServiceImpl implements the interface
var _ primary.StatsService = (*StatsServiceImpl)(nil)
