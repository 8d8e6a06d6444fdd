package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/expense-report/backend/internal/domain/entity"
	domainerror "github.com/expense-report/backend/internal/domain/error"
)

func TestCompanyRepository_CreateAndFind(t *testing.T) {
	repo := NewCompanyRepository(newTestDB(t))
	ctx := context.Background()

	company := entity.NewCompany("Construtora Alfa LTDA", "12.345.678/0001-90", "Rua A, 100")
	if err := repo.Create(ctx, company); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, company.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.LegalName != company.LegalName || found.CNPJ != company.CNPJ {
			t.Errorf("round trip mismatch: %+v", found)
		}
	})

	t.Run("by cnpj", func(t *testing.T) {
		found, err := repo.FindByCNPJ(ctx, "12.345.678/0001-90")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.ID != company.ID {
			t.Errorf("expected ID %s, got %s", company.ID, found.ID)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrCompanyNotFound) {
			t.Errorf("expected ErrCompanyNotFound, got %v", err)
		}
	})
}

func TestCompanyRepository_DuplicateCNPJ(t *testing.T) {
	repo := NewCompanyRepository(newTestDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, entity.NewCompany("Alfa", "12.345.678/0001-90", "")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := repo.Create(ctx, entity.NewCompany("Beta", "12.345.678/0001-90", ""))
	if !errors.Is(err, domainerror.ErrCNPJAlreadyExists) {
		t.Errorf("expected ErrCNPJAlreadyExists, got %v", err)
	}
}

func TestCompanyRepository_FindAllOrdersByLegalName(t *testing.T) {
	repo := NewCompanyRepository(newTestDB(t))
	ctx := context.Background()

	for _, c := range []struct{ name, cnpj string }{
		{"Zeta Engenharia", "11.111.111/0001-11"},
		{"Alfa Construções", "22.222.222/0001-22"},
		{"Metro Obras", "33.333.333/0001-33"},
	} {
		if err := repo.Create(ctx, entity.NewCompany(c.name, c.cnpj, "")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	companies, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Alfa Construções", "Metro Obras", "Zeta Engenharia"}
	if len(companies) != len(want) {
		t.Fatalf("expected %d companies, got %d", len(want), len(companies))
	}
	for i, name := range want {
		if companies[i].LegalName != name {
			t.Errorf("position %d: expected %s, got %s", i, name, companies[i].LegalName)
		}
	}
}

func TestCompanyRepository_Update(t *testing.T) {
	repo := NewCompanyRepository(newTestDB(t))
	ctx := context.Background()

	company := entity.NewCompany("Alfa", "12.345.678/0001-90", "Rua A")
	if err := repo.Create(ctx, company); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	company.Address = "Rua B, 200"
	if err := repo.Update(ctx, company); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByID(ctx, company.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Address != "Rua B, 200" {
		t.Errorf("expected updated address, got %q", found.Address)
	}
}
