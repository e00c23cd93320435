package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/ticketmart/internal/models"
)

type mockStatsReader struct {
	counts []models.TableCount
	err    error
}

func (m *mockStatsReader) TableCounts(ctx context.Context) ([]models.TableCount, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.counts, nil
}

func TestStats_Success(t *testing.T) {
	reader := &mockStatsReader{counts: []models.TableCount{
		{Table: "dim_users", Label: "Users", Count: 12, Available: true},
		{Table: "fact_interactions", Label: "Interactions", Count: 340, Available: true},
	}}
	service := NewStatsService(reader)

	counts, err := service.Stats(context.Background())

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("expected 2 table counts, got %d", len(counts))
	}
	if counts[1].Count != 340 {
		t.Errorf("expected interaction count 340, got %d", counts[1].Count)
	}
}

func TestStats_ReaderError(t *testing.T) {
	reader := &mockStatsReader{err: errors.New("database is locked")}
	service := NewStatsService(reader)

	_, err := service.Stats(context.Background())

	if err == nil {
		t.Fatal("expected error from failing reader, got nil")
	}
}
