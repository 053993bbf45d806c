// Package http serves the JSON API: statement upload and preview, reviewed
// batch persistence and the dashboard aggregates.
package http

import (
	"context"
	"net/http"
	"time"

	"despesas/internal/core"
)

// DashboardReader provides the aggregate queries the dashboard renders.
type DashboardReader interface {
	MonthTotal(ctx context.Context, year, month int) (float64, error)
	MonthlyTrend(ctx context.Context, fromYear, fromMonth int) ([]core.MonthTotal, error)
	FixedVsVariable(ctx context.Context, year, month int) ([]core.NameValue, error)
	ExpensesByParty(ctx context.Context) ([]core.NameValue, error)
	FutureExpenses(ctx context.Context) ([]core.FutureExpense, error)
}

// ExpenseSaver persists a reviewed batch.
type ExpenseSaver interface {
	SaveBatch(ctx context.Context, batch []core.Expense) ([]int64, error)
}

type Server struct {
	http.Server

	saver          ExpenseSaver
	dash           DashboardReader
	maxUploadBytes int64

	// now is swapped in tests to pin the current month.
	now func() time.Time
}

func NewServer(addr string, saver ExpenseSaver, dash DashboardReader, maxUploadBytes int64) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		saver:          saver,
		dash:           dash,
		maxUploadBytes: maxUploadBytes,
		now:            time.Now,
	}

	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/api/import", s.handleImport)
	mux.HandleFunc("/api/expenses", s.handleSaveExpenses)
	mux.HandleFunc("/api/dashboard", s.handleDashboard)
	mux.HandleFunc("/api/dashboard/summary", s.handleSummary)
	mux.HandleFunc("/api/dashboard/monthly-trend", s.handleMonthlyTrend)
	mux.HandleFunc("/api/dashboard/fixed-vs-variable", s.handleFixedVsVariable)
	mux.HandleFunc("/api/dashboard/expenses-by-person", s.handleExpensesByPerson)
	mux.HandleFunc("/api/dashboard/future-expenses", s.handleFutureExpenses)

	return s
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
