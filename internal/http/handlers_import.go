package http

import (
	"errors"
	"log/slog"
	"net/http"

	"despesas/internal/core"
	"despesas/internal/importer"
)

type importResponse struct {
	Bank     core.Bank      `json:"bank"`
	Count    int            `json:"count"`
	Expenses []core.Expense `json:"expenses"`
}

// handleImport accepts a CSV statement upload and returns the normalized
// batch for review. Nothing is persisted here; the reviewed batch comes
// back through POST /api/expenses.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		slog.ErrorContext(r.Context(), "Parse multipart form error", "error", err)
		writeError(w, http.StatusBadRequest, "could not read upload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	st, err := importer.Parse(file)
	if err != nil {
		switch {
		case errors.Is(err, importer.ErrUnsupportedFormat):
			slog.WarnContext(r.Context(), "Unsupported statement format",
				"filename", header.Filename)
			writeError(w, http.StatusUnprocessableEntity,
				"Unknown CSV format. Please use Nubank or Inter Bank format.")
		default:
			slog.ErrorContext(r.Context(), "Unreadable statement upload",
				"filename", header.Filename, "error", err)
			writeError(w, http.StatusBadRequest, "failed to parse file")
		}
		return
	}

	records, err := st.Records()
	if err != nil {
		slog.WarnContext(r.Context(), "Malformed statement row",
			"filename", header.Filename, "bank", st.Bank, "error", err)
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	slog.InfoContext(r.Context(), "Statement parsed",
		"filename", header.Filename,
		"bank", st.Bank,
		"rows", len(records))

	writeJSON(w, http.StatusOK, importResponse{
		Bank:     st.Bank,
		Count:    len(records),
		Expenses: records,
	})
}
