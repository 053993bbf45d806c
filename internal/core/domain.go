package core

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	Nubank  Bank = "Nubank"
	Inter   Bank = "Inter"
	Unknown Bank = "Unknown"
)

const isoDateLayout = "2006-01-02"

type (
	// Bank identifies the statement format an expense was imported from.
	Bank string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Expense is the canonical, format-agnostic record produced by the
	// statement importer. ResponsibleParty and IsFixed are assigned by the
	// user during review, never inferred from the statement.
	Expense struct {
		Item               string  `json:"item"`
		Amount             float64 `json:"amount"`
		PurchaseDate       Date    `json:"purchaseDate"`
		CurrentInstallment int     `json:"currentInstallment"`
		TotalInstallments  int     `json:"totalInstallments"`
		IsFixed            bool    `json:"isFixed"`
		ResponsibleParty   *string `json:"responsibleParty"`
		Bank               Bank    `json:"bank"`
	}
)

var (
	ErrInvalidDate         = errors.New("invalid date")
	ErrEmptyItem           = errors.New("empty item description")
	ErrInvalidInstallments = errors.New("invalid installment pair")
	ErrUnknownBank         = errors.New("unknown bank")
)

// ParseISODate parses a YYYY-MM-DD string into a Date. This is the single
// point where calendar validity is enforced.
func ParseISODate(s string) (Date, error) {
	t, err := time.Parse(isoDateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Time: t}, nil
}

// NewDate creates a Date from year, month and day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(isoDateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(isoDateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseISODate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// AddMonths returns the date shifted by n calendar months.
func (d Date) AddMonths(n int) Date {
	return Date{Time: d.AddDate(0, n, 0)}
}

// CentsFromAmount converts a float amount to cents for storage.
func CentsFromAmount(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// Float converts stored cents back to the API's float representation.
func (m Money) Float() float64 {
	return float64(m.Cents) / 100
}

func (e Expense) Validate() error {
	if len(strings.TrimSpace(e.Item)) == 0 {
		return ErrEmptyItem
	}
	if e.PurchaseDate.IsZero() {
		return ErrInvalidDate
	}
	if e.CurrentInstallment < 1 || e.TotalInstallments < 1 {
		return ErrInvalidInstallments
	}
	if e.CurrentInstallment > e.TotalInstallments {
		return fmt.Errorf("%w: %d/%d", ErrInvalidInstallments, e.CurrentInstallment, e.TotalInstallments)
	}
	if e.Bank != Nubank && e.Bank != Inter {
		return ErrUnknownBank
	}
	return nil
}
