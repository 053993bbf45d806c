package sheets

import (
	"context"

	"despesas/internal/core"
)

// ExpenseWriter is the outbound port the sync worker exports through.
type ExpenseWriter interface {
	Append(ctx context.Context, e core.Expense) (rowRef string, err error)
}
