package memory

import (
	"context"
	"testing"

	"despesas/internal/core"
)

func TestAppendAndList(t *testing.T) {
	s := New()
	ctx := context.Background()

	e := core.Expense{
		Item:               "Padaria",
		Amount:             12.50,
		PurchaseDate:       core.NewDate(2024, 3, 10),
		CurrentInstallment: 1,
		TotalInstallments:  1,
		Bank:               core.Nubank,
	}

	ref, err := s.Append(ctx, e)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if ref != "mem:1" {
		t.Errorf("ref: got %q", ref)
	}

	got := s.Expenses()
	if len(got) != 1 || got[0].Item != "Padaria" {
		t.Errorf("Expenses: got %+v", got)
	}
}

func TestAppendRejectsInvalid(t *testing.T) {
	s := New()
	if _, err := s.Append(context.Background(), core.Expense{}); err == nil {
		t.Fatal("expected validation error")
	}
	if len(s.Expenses()) != 0 {
		t.Error("invalid expense must not be stored")
	}
}
