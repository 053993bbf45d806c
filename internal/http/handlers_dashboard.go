package http

import (
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"despesas/internal/core"
)

// trendMonths is how far back the monthly trend looks, current month
// included.
const trendMonths = 6

func (s *Server) currentMonth() (year, month int) {
	now := s.now()
	return now.Year(), int(now.Month())
}

func (s *Server) trendStart() (year, month int) {
	now := s.now()
	// Shift months from day 1, not from now: AddDate on a day-31 now
	// normalizes into the following month and shortens the window.
	start := time.Date(now.Year(), now.Month()-(trendMonths-1), 1, 0, 0, 0, 0, now.Location())
	return start.Year(), int(start.Month())
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	year, month := s.currentMonth()
	total, err := s.dash.MonthTotal(r.Context(), year, month)
	if err != nil {
		slog.ErrorContext(r.Context(), "Summary query failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch summary")
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"total": total})
}

func (s *Server) handleMonthlyTrend(w http.ResponseWriter, r *http.Request) {
	year, month := s.trendStart()
	trend, err := s.dash.MonthlyTrend(r.Context(), year, month)
	if err != nil {
		slog.ErrorContext(r.Context(), "Monthly trend query failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch monthly trend")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": trend})
}

func (s *Server) handleFixedVsVariable(w http.ResponseWriter, r *http.Request) {
	year, month := s.currentMonth()
	split, err := s.dash.FixedVsVariable(r.Context(), year, month)
	if err != nil {
		slog.ErrorContext(r.Context(), "Fixed vs variable query failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch fixed vs variable data")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": split})
}

func (s *Server) handleExpensesByPerson(w http.ResponseWriter, r *http.Request) {
	totals, err := s.dash.ExpensesByParty(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Expenses by person query failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch expenses by person")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": totals})
}

func (s *Server) handleFutureExpenses(w http.ResponseWriter, r *http.Request) {
	future, err := s.dash.FutureExpenses(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Future expenses query failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch future expenses")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": future})
}

// handleDashboard returns every aggregate in one payload; the independent
// queries run concurrently.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	year, month := s.currentMonth()
	trendYear, trendMonth := s.trendStart()

	var dash core.Dashboard
	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		total, err := s.dash.MonthTotal(ctx, year, month)
		dash.MonthTotal = total
		return err
	})
	g.Go(func() error {
		trend, err := s.dash.MonthlyTrend(ctx, trendYear, trendMonth)
		dash.MonthlyTrend = trend
		return err
	})
	g.Go(func() error {
		split, err := s.dash.FixedVsVariable(ctx, year, month)
		dash.FixedVsVariable = split
		return err
	})
	g.Go(func() error {
		totals, err := s.dash.ExpensesByParty(ctx)
		dash.ExpensesByPerson = totals
		return err
	})
	g.Go(func() error {
		future, err := s.dash.FutureExpenses(ctx)
		dash.FutureExpenses = future
		return err
	})

	if err := g.Wait(); err != nil {
		slog.ErrorContext(r.Context(), "Dashboard queries failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch dashboard")
		return
	}

	writeJSON(w, http.StatusOK, dash)
}
