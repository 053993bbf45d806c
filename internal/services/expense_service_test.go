package services

import (
	"context"
	"errors"
	"testing"

	"despesas/internal/core"
)

type fakeStore struct {
	batches [][]core.Expense
	err     error
}

func (f *fakeStore) CreateExpenses(_ context.Context, batch []core.Expense) ([]int64, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.batches = append(f.batches, batch)
	ids := make([]int64, len(batch))
	for i := range batch {
		ids[i] = int64(i + 1)
	}
	return ids, nil
}

type fakePublisher struct {
	published []int64
	err       error
}

func (f *fakePublisher) PublishExpenseSync(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, id)
	return nil
}

func validBatch() []core.Expense {
	return []core.Expense{
		{
			Item:               "Supermercado",
			Amount:             89.90,
			PurchaseDate:       core.NewDate(2024, 4, 1),
			CurrentInstallment: 1,
			TotalInstallments:  1,
			Bank:               core.Inter,
		},
		{
			Item:               "Compra Parcela 2/6",
			Amount:             150.00,
			PurchaseDate:       core.NewDate(2024, 3, 15),
			CurrentInstallment: 2,
			TotalInstallments:  6,
			Bank:               core.Nubank,
		},
	}
}

func TestSaveBatch(t *testing.T) {
	store := &fakeStore{}
	pub := &fakePublisher{}
	svc := NewExpenseService(store, pub)

	ids, err := svc.SaveBatch(context.Background(), validBatch())
	if err != nil {
		t.Fatalf("SaveBatch: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("ids: got %d, want 2", len(ids))
	}
	if len(store.batches) != 1 {
		t.Fatalf("store batches: got %d, want 1", len(store.batches))
	}
	if len(pub.published) != 2 {
		t.Errorf("published: got %d, want 2", len(pub.published))
	}
}

func TestSaveBatchEmpty(t *testing.T) {
	store := &fakeStore{}
	svc := NewExpenseService(store, nil)

	ids, err := svc.SaveBatch(context.Background(), nil)
	if err != nil {
		t.Fatalf("SaveBatch: %v", err)
	}
	if ids != nil {
		t.Errorf("ids: got %v, want nil", ids)
	}
	if len(store.batches) != 0 {
		t.Error("empty batch must not hit the store")
	}
}

func TestSaveBatchRejectsInvalidExpense(t *testing.T) {
	store := &fakeStore{}
	svc := NewExpenseService(store, nil)

	batch := validBatch()
	batch[1].Item = "  "

	_, err := svc.SaveBatch(context.Background(), batch)
	if !errors.Is(err, core.ErrEmptyItem) {
		t.Fatalf("expected ErrEmptyItem, got %v", err)
	}
	if len(store.batches) != 0 {
		t.Error("invalid batch must not reach the store")
	}
}

func TestSaveBatchStoreError(t *testing.T) {
	storeErr := errors.New("disk full")
	svc := NewExpenseService(&fakeStore{err: storeErr}, nil)

	_, err := svc.SaveBatch(context.Background(), validBatch())
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}

// A publish failure must not fail the save: rows are already persisted and
// the worker's pending scan will recover them.
func TestSaveBatchPublishFailureIsNonFatal(t *testing.T) {
	store := &fakeStore{}
	pub := &fakePublisher{err: errors.New("broker down")}
	svc := NewExpenseService(store, pub)

	ids, err := svc.SaveBatch(context.Background(), validBatch())
	if err != nil {
		t.Fatalf("SaveBatch: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("ids: got %d, want 2", len(ids))
	}
}

func TestSaveBatchNilPublisher(t *testing.T) {
	svc := NewExpenseService(&fakeStore{}, nil)
	if _, err := svc.SaveBatch(context.Background(), validBatch()); err != nil {
		t.Fatalf("SaveBatch with nil publisher: %v", err)
	}
}
