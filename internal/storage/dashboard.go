package storage

import (
	"context"
	"database/sql"
	"fmt"

	"despesas/internal/core"
)

// Dashboard aggregate queries. Months are addressed by their YYYY-MM
// prefix of the ISO purchase date.

func monthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// MonthTotal returns the expense total for one calendar month.
func (r *SQLiteRepository) MonthTotal(ctx context.Context, year, month int) (float64, error) {
	var cents int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount_cents), 0) FROM expenses
		WHERE substr(purchase_date, 1, 7) = ?`, monthKey(year, month)).Scan(&cents)
	if err != nil {
		return 0, fmt.Errorf("month total: %w", err)
	}
	return (core.Money{Cents: cents}).Float(), nil
}

// MonthlyTrend returns per-month totals from the given month (inclusive)
// onward, in ascending month order.
func (r *SQLiteRepository) MonthlyTrend(ctx context.Context, fromYear, fromMonth int) ([]core.MonthTotal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT substr(purchase_date, 1, 7) AS month, SUM(amount_cents)
		FROM expenses
		WHERE substr(purchase_date, 1, 7) >= ?
		GROUP BY month
		ORDER BY month`, monthKey(fromYear, fromMonth))
	if err != nil {
		return nil, fmt.Errorf("monthly trend: %w", err)
	}
	defer rows.Close()

	var trend []core.MonthTotal
	for rows.Next() {
		var (
			month string
			cents int64
		)
		if err := rows.Scan(&month, &cents); err != nil {
			return nil, fmt.Errorf("scan trend row: %w", err)
		}
		trend = append(trend, core.MonthTotal{Month: month, Total: (core.Money{Cents: cents}).Float()})
	}
	return trend, rows.Err()
}

// FixedVsVariable splits one month's total by the user-assigned fixed
// flag.
func (r *SQLiteRepository) FixedVsVariable(ctx context.Context, year, month int) ([]core.NameValue, error) {
	var fixedCents, variableCents int64
	err := r.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN is_fixed = 1 THEN amount_cents ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN is_fixed = 0 THEN amount_cents ELSE 0 END), 0)
		FROM expenses
		WHERE substr(purchase_date, 1, 7) = ?`, monthKey(year, month)).
		Scan(&fixedCents, &variableCents)
	if err != nil {
		return nil, fmt.Errorf("fixed vs variable: %w", err)
	}

	return []core.NameValue{
		{Name: "Fixas", Value: (core.Money{Cents: fixedCents}).Float()},
		{Name: "Variáveis", Value: (core.Money{Cents: variableCents}).Float()},
	}, nil
}

// ExpensesByParty returns totals grouped by responsible party; rows with
// no party fall under the unassigned label.
func (r *SQLiteRepository) ExpensesByParty(ctx context.Context) ([]core.NameValue, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT responsible_party, SUM(amount_cents)
		FROM expenses
		GROUP BY responsible_party
		ORDER BY responsible_party IS NULL, responsible_party`)
	if err != nil {
		return nil, fmt.Errorf("expenses by party: %w", err)
	}
	defer rows.Close()

	var totals []core.NameValue
	for rows.Next() {
		var (
			party sql.NullString
			cents int64
		)
		if err := rows.Scan(&party, &cents); err != nil {
			return nil, fmt.Errorf("scan party row: %w", err)
		}
		name := core.Unassigned
		if party.Valid {
			name = party.String
		}
		totals = append(totals, core.NameValue{Name: name, Value: (core.Money{Cents: cents}).Float()})
	}
	return totals, rows.Err()
}

// FutureExpenses lists installment purchases that still have payments
// ahead, ordered by purchase date. The next payment falls one month after
// the purchase date.
func (r *SQLiteRepository) FutureExpenses(ctx context.Context) ([]core.FutureExpense, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, item, amount_cents, purchase_date, responsible_party,
			current_installment, total_installments
		FROM expenses
		WHERE current_installment < total_installments
		ORDER BY purchase_date`)
	if err != nil {
		return nil, fmt.Errorf("future expenses: %w", err)
	}
	defer rows.Close()

	var future []core.FutureExpense
	for rows.Next() {
		var (
			fe      core.FutureExpense
			cents   int64
			dateStr string
			party   sql.NullString
		)
		if err := rows.Scan(&fe.ID, &fe.Item, &cents, &dateStr, &party,
			&fe.CurrentInstallment, &fe.TotalInstallments); err != nil {
			return nil, fmt.Errorf("scan future expense: %w", err)
		}
		purchase, err := core.ParseISODate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("stored date %q: %w", dateStr, err)
		}
		fe.Amount = (core.Money{Cents: cents}).Float()
		fe.NextPaymentDate = purchase.AddMonths(1)
		fe.ResponsibleParty = core.Unassigned
		if party.Valid {
			fe.ResponsibleParty = party.String
		}
		future = append(future, fe)
	}
	return future, rows.Err()
}
