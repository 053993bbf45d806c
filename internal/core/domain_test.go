package core

import (
	"encoding/json"
	"errors"
	"testing"
)

func strPtr(s string) *string { return &s }

func validExpense() Expense {
	return Expense{
		Item:               "Supermercado",
		Amount:             89.90,
		PurchaseDate:       NewDate(2024, 4, 1),
		CurrentInstallment: 1,
		TotalInstallments:  1,
		Bank:               Inter,
	}
}

func TestParseISODate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid", input: "2024-03-15", want: "2024-03-15"},
		{name: "padded", input: " 2024-03-15 ", want: "2024-03-15"},
		{name: "invalid month", input: "2024-13-31", wantErr: true},
		{name: "invalid day", input: "2024-02-30", wantErr: true},
		{name: "slash format rejected", input: "15/03/2024", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseISODate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseISODate(%q): expected error, got %v", tt.input, d)
				}
				if !errors.Is(err, ErrInvalidDate) {
					t.Errorf("error should wrap ErrInvalidDate, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseISODate(%q): %v", tt.input, err)
			}
			if d.String() != tt.want {
				t.Errorf("got %s, want %s", d, tt.want)
			}
		})
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, 3, 15)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2024-03-15"` {
		t.Fatalf("marshal: got %s", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Errorf("round trip: got %s, want %s", back, d)
	}
}

func TestDateAddMonths(t *testing.T) {
	d := NewDate(2024, 12, 15).AddMonths(1)
	if d.String() != "2025-01-15" {
		t.Errorf("year rollover: got %s", d)
	}
}

func TestExpenseValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Expense)
		wantErr error
	}{
		{name: "valid", mutate: func(e *Expense) {}},
		{name: "valid with party", mutate: func(e *Expense) { e.ResponsibleParty = strPtr("Ana") }},
		{name: "empty item", mutate: func(e *Expense) { e.Item = "  " }, wantErr: ErrEmptyItem},
		{name: "zero date", mutate: func(e *Expense) { e.PurchaseDate = Date{} }, wantErr: ErrInvalidDate},
		{name: "zero current", mutate: func(e *Expense) { e.CurrentInstallment = 0 }, wantErr: ErrInvalidInstallments},
		{name: "zero total", mutate: func(e *Expense) { e.TotalInstallments = 0 }, wantErr: ErrInvalidInstallments},
		{name: "current over total", mutate: func(e *Expense) { e.CurrentInstallment = 7; e.TotalInstallments = 6 }, wantErr: ErrInvalidInstallments},
		{name: "unknown bank", mutate: func(e *Expense) { e.Bank = Unknown }, wantErr: ErrUnknownBank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validExpense()
			tt.mutate(&e)
			err := e.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate: unexpected error %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate: got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCentsFromAmount(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{89.90, 8990},
		{150.00, 15000},
		{0.1 + 0.2, 30}, // float noise must not leak into cents
		{-12.34, -1234},
	}
	for _, tt := range tests {
		if got := CentsFromAmount(tt.amount); got != tt.want {
			t.Errorf("CentsFromAmount(%v) = %d, want %d", tt.amount, got, tt.want)
		}
	}

	if f := (Money{Cents: 8990}).Float(); f != 89.90 {
		t.Errorf("Float() = %v, want 89.90", f)
	}
}
