package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"despesas/internal/core"

	_ "modernc.org/sqlite"
)

// Sync status values for the Google Sheets export queue.
const (
	SyncPending = "pending"
	SyncDone    = "synced"
	SyncError   = "error"
)

type SQLiteRepository struct {
	db *sql.DB
}

// StoredExpense is an expense row as persisted, with its assigned id and
// sync state.
type StoredExpense struct {
	ID         int64
	Expense    core.Expense
	SyncStatus string
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// CreateExpenses inserts a reviewed batch in one transaction and returns
// the assigned ids in input order. The batch is all-or-nothing: any insert
// failure rolls back every row.
func (r *SQLiteRepository) CreateExpenses(ctx context.Context, batch []core.Expense) ([]int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO expenses (item, amount_cents, purchase_date, current_installment,
			total_installments, is_fixed, responsible_party, bank, sync_status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	ids := make([]int64, 0, len(batch))
	for i, e := range batch {
		var party sql.NullString
		if e.ResponsibleParty != nil {
			party = sql.NullString{String: *e.ResponsibleParty, Valid: true}
		}
		res, err := stmt.ExecContext(ctx,
			e.Item,
			core.CentsFromAmount(e.Amount),
			e.PurchaseDate.String(),
			e.CurrentInstallment,
			e.TotalInstallments,
			e.IsFixed,
			party,
			string(e.Bank),
			SyncPending,
		)
		if err != nil {
			return nil, fmt.Errorf("insert expense %d: %w", i, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("last insert id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit batch: %w", err)
	}

	slog.InfoContext(ctx, "Expense batch saved",
		"count", len(ids))

	return ids, nil
}

// GetExpense loads one stored expense by id.
func (r *SQLiteRepository) GetExpense(ctx context.Context, id int64) (StoredExpense, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, item, amount_cents, purchase_date, current_installment,
			total_installments, is_fixed, responsible_party, bank, sync_status
		FROM expenses WHERE id = ?`, id)
	return scanStoredExpense(row)
}

// GetPendingSyncExpenses returns up to limit expenses waiting for export.
func (r *SQLiteRepository) GetPendingSyncExpenses(ctx context.Context, limit int) ([]StoredExpense, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, item, amount_cents, purchase_date, current_installment,
			total_installments, is_fixed, responsible_party, bank, sync_status
		FROM expenses WHERE sync_status = ? ORDER BY id LIMIT ?`, SyncPending, limit)
	if err != nil {
		return nil, fmt.Errorf("query pending expenses: %w", err)
	}
	defer rows.Close()

	var pending []StoredExpense
	for rows.Next() {
		se, err := scanStoredExpense(rows)
		if err != nil {
			return nil, err
		}
		pending = append(pending, se)
	}
	return pending, rows.Err()
}

// MarkSynced flags an expense as exported.
func (r *SQLiteRepository) MarkSynced(ctx context.Context, id int64) error {
	return r.setSyncStatus(ctx, id, SyncDone)
}

// MarkSyncError flags an expense whose export failed.
func (r *SQLiteRepository) MarkSyncError(ctx context.Context, id int64) error {
	return r.setSyncStatus(ctx, id, SyncError)
}

func (r *SQLiteRepository) setSyncStatus(ctx context.Context, id int64, status string) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE expenses SET sync_status = ? WHERE id = ?`, status, id); err != nil {
		return fmt.Errorf("set sync status %s for %d: %w", status, id, err)
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanStoredExpense(row scannable) (StoredExpense, error) {
	var (
		se      StoredExpense
		cents   int64
		dateStr string
		party   sql.NullString
		bank    string
	)
	err := row.Scan(&se.ID, &se.Expense.Item, &cents, &dateStr,
		&se.Expense.CurrentInstallment, &se.Expense.TotalInstallments,
		&se.Expense.IsFixed, &party, &bank, &se.SyncStatus)
	if err != nil {
		return StoredExpense{}, fmt.Errorf("scan expense: %w", err)
	}

	se.Expense.Amount = (core.Money{Cents: cents}).Float()
	se.Expense.Bank = core.Bank(bank)
	if party.Valid {
		se.Expense.ResponsibleParty = &party.String
	}
	date, err := core.ParseISODate(dateStr)
	if err != nil {
		return StoredExpense{}, fmt.Errorf("stored date %q: %w", dateStr, err)
	}
	se.Expense.PurchaseDate = date
	return se, nil
}
