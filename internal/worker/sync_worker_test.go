package worker

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"despesas/internal/amqp"
	"despesas/internal/core"
	"despesas/internal/sheets/memory"
	"despesas/internal/storage"
)

func newTestStorage(t *testing.T) *storage.SQLiteRepository {
	t.Helper()
	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRepository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func seed(t *testing.T, repo *storage.SQLiteRepository, n int) []int64 {
	t.Helper()
	batch := make([]core.Expense, n)
	for i := range batch {
		batch[i] = core.Expense{
			Item:               "Despesa",
			Amount:             10.00,
			PurchaseDate:       core.NewDate(2024, 4, i+1),
			CurrentInstallment: 1,
			TotalInstallments:  1,
			Bank:               core.Nubank,
		}
	}
	ids, err := repo.CreateExpenses(context.Background(), batch)
	if err != nil {
		t.Fatalf("CreateExpenses: %v", err)
	}
	return ids
}

type failingWriter struct{}

func (failingWriter) Append(context.Context, core.Expense) (string, error) {
	return "", errors.New("sheet unavailable")
}

func TestProcessPendingExpenses(t *testing.T) {
	repo := newTestStorage(t)
	sheet := memory.New()
	w := NewSyncWorker(repo, sheet, 10)
	ctx := context.Background()

	seed(t, repo, 3)

	if err := w.ProcessPendingExpenses(ctx); err != nil {
		t.Fatalf("ProcessPendingExpenses: %v", err)
	}

	if got := len(sheet.Expenses()); got != 3 {
		t.Errorf("exported: got %d, want 3", got)
	}

	pending, err := repo.GetPendingSyncExpenses(ctx, 10)
	if err != nil {
		t.Fatalf("GetPendingSyncExpenses: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("pending after sync: got %d, want 0", len(pending))
	}
}

func TestHandleSyncMessageIdempotent(t *testing.T) {
	repo := newTestStorage(t)
	sheet := memory.New()
	w := NewSyncWorker(repo, sheet, 10)
	ctx := context.Background()

	ids := seed(t, repo, 1)

	if err := w.HandleSyncMessage(ctx, amqp.NewExpenseSyncMessage(ids[0])); err != nil {
		t.Fatalf("HandleSyncMessage: %v", err)
	}
	// Second delivery of the same message must not duplicate the row.
	if err := w.HandleSyncMessage(ctx, amqp.NewExpenseSyncMessage(ids[0])); err != nil {
		t.Fatalf("HandleSyncMessage redelivery: %v", err)
	}

	if got := len(sheet.Expenses()); got != 1 {
		t.Errorf("exported: got %d, want 1", got)
	}
}

func TestExportFailureMarksError(t *testing.T) {
	repo := newTestStorage(t)
	w := NewSyncWorker(repo, failingWriter{}, 10)
	ctx := context.Background()

	ids := seed(t, repo, 1)

	if err := w.HandleSyncMessage(ctx, amqp.NewExpenseSyncMessage(ids[0])); err == nil {
		t.Fatal("expected export error")
	}

	stored, err := repo.GetExpense(ctx, ids[0])
	if err != nil {
		t.Fatalf("GetExpense: %v", err)
	}
	if stored.SyncStatus != storage.SyncError {
		t.Errorf("sync status: got %s, want %s", stored.SyncStatus, storage.SyncError)
	}
}

func TestStartupSyncCheckEmpty(t *testing.T) {
	repo := newTestStorage(t)
	w := NewSyncWorker(repo, memory.New(), 10)

	if err := w.StartupSyncCheck(context.Background()); err != nil {
		t.Fatalf("StartupSyncCheck: %v", err)
	}
}
