package services

import (
	"context"
	"fmt"
	"log/slog"

	"despesas/internal/core"
)

// ExpenseStore is the persistence collaborator batches are handed to.
type ExpenseStore interface {
	CreateExpenses(ctx context.Context, batch []core.Expense) ([]int64, error)
}

// SyncPublisher notifies the export worker about persisted expenses.
type SyncPublisher interface {
	PublishExpenseSync(ctx context.Context, id int64) error
}

// ExpenseService persists reviewed expense batches and queues them for
// spreadsheet export. Storage comes first; a publish failure never fails
// the request, the worker's pending-sync scan picks the row up later.
type ExpenseService struct {
	store     ExpenseStore
	publisher SyncPublisher
}

func NewExpenseService(store ExpenseStore, publisher SyncPublisher) *ExpenseService {
	return &ExpenseService{
		store:     store,
		publisher: publisher,
	}
}

// SaveBatch validates and persists a reviewed batch, returning the
// assigned ids in input order.
func (s *ExpenseService) SaveBatch(ctx context.Context, batch []core.Expense) ([]int64, error) {
	if len(batch) == 0 {
		return nil, nil
	}
	for i, e := range batch {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("expense %d: %w", i, err)
		}
	}

	ids, err := s.store.CreateExpenses(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("save batch: %w", err)
	}

	if s.publisher == nil {
		slog.WarnContext(ctx, "Sync publisher not available, export will rely on pending scan",
			"count", len(ids))
		return ids, nil
	}

	for _, id := range ids {
		if err := s.publisher.PublishExpenseSync(ctx, id); err != nil {
			slog.ErrorContext(ctx, "Failed to publish sync message",
				"id", id, "error", err)
		}
	}

	return ids, nil
}
