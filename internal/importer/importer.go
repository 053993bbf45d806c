// Package importer turns bank-issued CSV statement exports into canonical
// expense records. It detects the bank format from the header row, maps each
// data row through the format's column mapping and amount cleaner, and
// reports per-row outcomes so a caller can choose between accepting a
// partial batch or rejecting the upload outright.
package importer

import (
	"errors"
	"fmt"
	"io"

	"despesas/internal/core"
)

var (
	// ErrUnsupportedFormat means the header set matches no known bank
	// signature. Not retryable; the user must pick a supported export.
	ErrUnsupportedFormat = errors.New("unsupported statement format")

	// ErrUnreadable means the CSV itself could not be decoded.
	ErrUnreadable = errors.New("failed to parse file")
)

// RowError reports a malformed data row. Row is 1-based over data rows
// (the header row is not counted).
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("invalid data in row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// RowResult is the outcome of normalizing one data row: either a record or
// a row-indexed error, never both.
type RowResult struct {
	Index   int // 1-based data row index
	Expense core.Expense
	Err     error
}

// Statement is one parsed upload.
type Statement struct {
	Bank    core.Bank
	Results []RowResult
}

// Parse reads a UTF-8 CSV statement, detects its bank format and
// normalizes every data row. The returned error is non-nil only when the
// file is unreadable or the format is unsupported; per-row failures are
// reported inside Results. A file with a header row and zero data rows is
// a valid, empty statement.
func Parse(r io.Reader) (*Statement, error) {
	headers, rows, err := readRows(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	bank, f := detect(headers)
	if bank == core.Unknown {
		return nil, ErrUnsupportedFormat
	}

	st := &Statement{Bank: bank, Results: make([]RowResult, 0, len(rows))}
	for i, row := range rows {
		res := RowResult{Index: i + 1}
		exp, err := normalizeRow(f, row)
		if err != nil {
			res.Err = &RowError{Row: i + 1, Err: err}
		} else {
			res.Expense = exp
		}
		st.Results = append(st.Results, res)
	}
	return st, nil
}

// Records collapses per-row outcomes into the all-or-nothing batch
// contract: the first malformed row fails the whole statement and no
// partial results are returned.
func (s *Statement) Records() ([]core.Expense, error) {
	records := make([]core.Expense, 0, len(s.Results))
	for _, res := range s.Results {
		if res.Err != nil {
			return nil, res.Err
		}
		records = append(records, res.Expense)
	}
	return records, nil
}

// Errs returns every row error in the statement, in row order.
func (s *Statement) Errs() []error {
	var errs []error
	for _, res := range s.Results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	return errs
}
