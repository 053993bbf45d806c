package importer

import (
	"fmt"
	"strings"

	"despesas/internal/core"
)

// normalizeRow builds one canonical expense from one data row using the
// format's column mapping. Shared across formats; only the mapping and the
// amount cleaner differ per bank.
func normalizeRow(f format, row Row) (core.Expense, error) {
	date, err := core.ParseISODate(reorderSlashDate(row[f.columns.date]))
	if err != nil {
		return core.Expense{}, err
	}

	amount, err := f.amount(row[f.columns.amount])
	if err != nil {
		return core.Expense{}, fmt.Errorf("parsing amount %q: %w", row[f.columns.amount], err)
	}

	current, total := extractInstallment(row[f.columns.installment])

	exp := core.Expense{
		Item:               row[f.columns.item],
		Amount:             amount,
		PurchaseDate:       date,
		CurrentInstallment: current,
		TotalInstallments:  total,
		Bank:               f.bank,
	}
	if err := exp.Validate(); err != nil {
		return core.Expense{}, err
	}
	return exp, nil
}

// reorderSlashDate turns DD/MM/YYYY into YYYY-MM-DD by positional
// reordering. A date without a slash is assumed to be ISO already and
// passes through untouched; calendar validity is checked later by
// core.ParseISODate, not here.
func reorderSlashDate(s string) string {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "/") {
		return s
	}
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return s
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}
