package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"despesas/internal/core"
)

type saveExpensesRequest struct {
	Expenses []core.Expense `json:"expenses"`
}

type saveExpensesResponse struct {
	Success bool    `json:"success"`
	Count   int     `json:"count"`
	IDs     []int64 `json:"ids"`
}

// handleSaveExpenses persists a reviewed batch. The client may have edited
// responsibleParty and isFixed since the import preview.
func (s *Server) handleSaveExpenses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}

	var req saveExpensesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.ErrorContext(r.Context(), "Decode save request error", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Expenses) == 0 {
		writeError(w, http.StatusBadRequest, "invalid expenses data")
		return
	}

	ids, err := s.saver.SaveBatch(r.Context(), req.Expenses)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to save expense batch",
			"error", err,
			"count", len(req.Expenses))
		writeError(w, http.StatusInternalServerError, "failed to save expenses")
		return
	}

	slog.InfoContext(r.Context(), "Expense batch saved",
		"count", len(ids))

	writeJSON(w, http.StatusOK, saveExpensesResponse{
		Success: true,
		Count:   len(ids),
		IDs:     ids,
	})
}
