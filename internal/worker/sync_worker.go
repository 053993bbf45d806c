// Package worker exports persisted expenses to the configured spreadsheet.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"despesas/internal/amqp"
	"despesas/internal/sheets"
	"despesas/internal/storage"
)

// SyncWorker copies expenses from SQLite to the spreadsheet export target.
// It is driven by AMQP sync messages, with a periodic pending scan as a
// backup for lost messages.
type SyncWorker struct {
	storage   *storage.SQLiteRepository
	sheets    sheets.ExpenseWriter
	batchSize int
}

func NewSyncWorker(storage *storage.SQLiteRepository, sheets sheets.ExpenseWriter, batchSize int) *SyncWorker {
	return &SyncWorker{
		storage:   storage,
		sheets:    sheets,
		batchSize: batchSize,
	}
}

// HandleSyncMessage processes one expense sync message from AMQP.
func (w *SyncWorker) HandleSyncMessage(ctx context.Context, msg *amqp.ExpenseSyncMessage) error {
	slog.InfoContext(ctx, "Processing sync message", "id", msg.ID)

	stored, err := w.storage.GetExpense(ctx, msg.ID)
	if err != nil {
		return fmt.Errorf("get expense from storage: %w", err)
	}
	if stored.SyncStatus == storage.SyncDone {
		slog.InfoContext(ctx, "Expense already synced, skipping", "id", msg.ID)
		return nil
	}

	return w.export(ctx, stored)
}

// ProcessPendingExpenses exports any rows still waiting for sync. This is
// the backup path for lost or unacked AMQP messages.
func (w *SyncWorker) ProcessPendingExpenses(ctx context.Context) error {
	pending, err := w.storage.GetPendingSyncExpenses(ctx, w.batchSize)
	if err != nil {
		return fmt.Errorf("get pending expenses: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	slog.InfoContext(ctx, "Processing pending expenses", "count", len(pending))

	for _, stored := range pending {
		if err := w.export(ctx, stored); err != nil {
			slog.ErrorContext(ctx, "Failed to sync pending expense",
				"id", stored.ID, "error", err)
		}
	}
	return nil
}

// StartupSyncCheck drains a larger pending backlog once at worker start,
// recovering from downtime.
func (w *SyncWorker) StartupSyncCheck(ctx context.Context) error {
	pending, err := w.storage.GetPendingSyncExpenses(ctx, w.batchSize*5)
	if err != nil {
		return fmt.Errorf("get pending expenses for startup check: %w", err)
	}
	if len(pending) == 0 {
		slog.InfoContext(ctx, "No pending expenses found on startup")
		return nil
	}

	slog.InfoContext(ctx, "Found pending expenses on startup", "count", len(pending))

	synced := 0
	failed := 0
	for _, stored := range pending {
		if err := w.export(ctx, stored); err != nil {
			slog.ErrorContext(ctx, "Failed to sync expense during startup",
				"id", stored.ID, "error", err)
			failed++
			continue
		}
		synced++
	}

	slog.InfoContext(ctx, "Startup sync completed",
		"total", len(pending),
		"synced", synced,
		"errors", failed)

	return nil
}

func (w *SyncWorker) export(ctx context.Context, stored storage.StoredExpense) error {
	ref, err := w.sheets.Append(ctx, stored.Expense)
	if err != nil {
		if markErr := w.storage.MarkSyncError(ctx, stored.ID); markErr != nil {
			slog.ErrorContext(ctx, "Failed to mark sync error", "id", stored.ID, "error", markErr)
		}
		return fmt.Errorf("append expense %d to sheet: %w", stored.ID, err)
	}

	if err := w.storage.MarkSynced(ctx, stored.ID); err != nil {
		return fmt.Errorf("mark expense %d synced: %w", stored.ID, err)
	}

	slog.InfoContext(ctx, "Expense synced to sheet",
		"id", stored.ID,
		"ref", ref)

	return nil
}
