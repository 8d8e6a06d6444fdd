package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-report/backend/internal/application/adapter"
	"github.com/expense-report/backend/internal/domain/entity"
	domainerror "github.com/expense-report/backend/internal/domain/error"
)

func newExpense(collaborator, project, amount string, registeredAt time.Time) *entity.Expense {
	return entity.NewExpense(
		collaborator,
		"São Paulo",
		"Posto Central",
		"",
		"",
		"Combustível",
		decimal.RequireFromString(amount),
		"",
		"abastecimento",
		"Construtora Alfa",
		project,
		"1234",
		registeredAt,
	)
}

func newReceiptFor(expense *entity.Expense) *entity.Receipt {
	return entity.NewReceipt(expense.ID, []byte{0x89, 0x50, 0x4E, 0x47}, "recibo.png", expense.RegisteredAt)
}

func TestExpenseRepository_CreateWithReceipt(t *testing.T) {
	repo := NewExpenseRepository(newTestDB(t))
	ctx := context.Background()

	expense := newExpense("Ana", "Obra Centro", "150.50", time.Now().UTC())
	receipt := newReceiptFor(expense)

	if err := repo.CreateWithReceipt(ctx, expense, receipt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByID(ctx, expense.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found.Amount.Equal(expense.Amount) {
		t.Errorf("expected amount %s, got %s", expense.Amount, found.Amount)
	}

	stored, err := repo.FindReceiptByID(ctx, receipt.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(stored.Content) != string(receipt.Content) {
		t.Error("receipt content round trip mismatch")
	}
	if stored.FileName != "recibo.png" {
		t.Errorf("expected filename recibo.png, got %q", stored.FileName)
	}
}

func TestExpenseRepository_FindAllNewestFirst(t *testing.T) {
	repo := NewExpenseRepository(newTestDB(t))
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, name := range []string{"Ana", "Bruno", "Carla"} {
		e := newExpense(name, "Obra", "10.00", base.AddDate(0, 0, i))
		if err := repo.CreateWithReceipt(ctx, e, newReceiptFor(e)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	expenses, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Carla", "Bruno", "Ana"}
	for i, name := range want {
		if expenses[i].CollaboratorName != name {
			t.Errorf("position %d: expected %s, got %s", i, name, expenses[i].CollaboratorName)
		}
	}
}

func TestExpenseRepository_FindByCollaboratorName(t *testing.T) {
	repo := NewExpenseRepository(newTestDB(t))
	ctx := context.Background()

	now := time.Now().UTC()
	for _, name := range []string{"Ana", "Bruno", "Ana"} {
		e := newExpense(name, "Obra", "10.00", now)
		if err := repo.CreateWithReceipt(ctx, e, newReceiptFor(e)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	expenses, err := repo.FindByCollaboratorName(ctx, "Ana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(expenses) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(expenses))
	}
	for _, e := range expenses {
		if e.CollaboratorName != "Ana" {
			t.Errorf("expected only Ana's expenses, got %s", e.CollaboratorName)
		}
	}
}

func TestExpenseRepository_FindForReport(t *testing.T) {
	repo := NewExpenseRepository(newTestDB(t))
	ctx := context.Background()

	base := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)
	seed := []struct {
		collaborator string
		project      string
		offsetDays   int
	}{
		{"Carla", "Obra B", 0},
		{"Ana", "Obra A", 1},
		{"Ana", "Obra B", 2},
		{"Bruno", "Obra A", 20},
	}
	for _, s := range seed {
		e := newExpense(s.collaborator, s.project, "10.00", base.AddDate(0, 0, s.offsetDays))
		if err := repo.CreateWithReceipt(ctx, e, newReceiptFor(e)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	t.Run("orders by dimension column then timestamp", func(t *testing.T) {
		expenses, err := repo.FindForReport(ctx, adapter.ExpenseFilter{}, entity.DimensionCollaborator)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"Ana", "Ana", "Bruno", "Carla"}
		if len(expenses) != len(want) {
			t.Fatalf("expected %d expenses, got %d", len(want), len(expenses))
		}
		for i, name := range want {
			if expenses[i].CollaboratorName != name {
				t.Errorf("position %d: expected %s, got %s", i, name, expenses[i].CollaboratorName)
			}
		}
		if expenses[0].RegisteredAt.After(expenses[1].RegisteredAt) {
			t.Error("expected ascending timestamps within the same collaborator")
		}
	})

	t.Run("date range is half open", func(t *testing.T) {
		start := base
		end := base.AddDate(0, 0, 3)
		expenses, err := repo.FindForReport(ctx, adapter.ExpenseFilter{StartDate: &start, EndDate: &end}, entity.DimensionProject)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Bruno's record falls past the end bound
		if len(expenses) != 3 {
			t.Errorf("expected 3 expenses inside the range, got %d", len(expenses))
		}
	})

	t.Run("collaborator filter", func(t *testing.T) {
		expenses, err := repo.FindForReport(ctx, adapter.ExpenseFilter{CollaboratorName: "Ana"}, entity.DimensionCollaborator)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(expenses) != 2 {
			t.Errorf("expected 2 expenses, got %d", len(expenses))
		}
	})

	t.Run("unknown dimension", func(t *testing.T) {
		_, err := repo.FindForReport(ctx, adapter.ExpenseFilter{}, entity.ReportDimension("categoria"))
		if !errors.Is(err, domainerror.ErrInvalidDimension) {
			t.Errorf("expected ErrInvalidDimension, got %v", err)
		}
	})
}

func TestExpenseRepository_DeleteCascadesReceipts(t *testing.T) {
	repo := NewExpenseRepository(newTestDB(t))
	ctx := context.Background()

	expense := newExpense("Ana", "Obra", "10.00", time.Now().UTC())
	receipt := newReceiptFor(expense)
	if err := repo.CreateWithReceipt(ctx, expense, receipt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := repo.Delete(ctx, expense.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := repo.FindByID(ctx, expense.ID); !errors.Is(err, domainerror.ErrExpenseNotFound) {
		t.Errorf("expected ErrExpenseNotFound, got %v", err)
	}
	if _, err := repo.FindReceiptByID(ctx, receipt.ID); !errors.Is(err, domainerror.ErrReceiptNotFound) {
		t.Errorf("expected ErrReceiptNotFound, got %v", err)
	}
}

func TestExpenseRepository_FindReceiptInfos(t *testing.T) {
	repo := NewExpenseRepository(newTestDB(t))
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	older := newExpense("Ana", "Obra", "10.00", base)
	newer := newExpense("Bruno", "Obra", "20.00", base.AddDate(0, 0, 1))

	for _, e := range []*entity.Expense{older, newer} {
		if err := repo.CreateWithReceipt(ctx, e, newReceiptFor(e)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	infos, err := repo.FindReceiptInfos(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("expected 2 receipt infos, got %d", len(infos))
	}

	// Newest upload first, joined with the owning expense
	if infos[0].CollaboratorName != "Bruno" {
		t.Errorf("expected newest receipt first, got %s", infos[0].CollaboratorName)
	}
	if !infos[0].ExpenseAmount.Equal(decimal.RequireFromString("20.00")) {
		t.Errorf("expected joined amount 20.00, got %s", infos[0].ExpenseAmount)
	}
}

func TestExpenseRepository_FindReceiptByID_Missing(t *testing.T) {
	repo := NewExpenseRepository(newTestDB(t))

	_, err := repo.FindReceiptByID(context.Background(), uuid.New())
	if !errors.Is(err, domainerror.ErrReceiptNotFound) {
		t.Errorf("expected ErrReceiptNotFound, got %v", err)
	}
}
