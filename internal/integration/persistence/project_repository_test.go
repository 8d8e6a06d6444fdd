package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/expense-report/backend/internal/domain/entity"
	domainerror "github.com/expense-report/backend/internal/domain/error"
)

func TestProjectRepository_CreateAndFind(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))
	ctx := context.Background()

	project := entity.NewProject("Obra Centro", "São Paulo", "", uuid.New())
	if err := repo.Create(ctx, project); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByID(ctx, project.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Name != "Obra Centro" || found.Location != "São Paulo" {
		t.Errorf("round trip mismatch: %+v", found)
	}
	if found.Status != entity.ProjectStatusInProgress {
		t.Errorf("expected default status %q, got %q", entity.ProjectStatusInProgress, found.Status)
	}

	t.Run("missing id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrProjectNotFound) {
			t.Errorf("expected ErrProjectNotFound, got %v", err)
		}
	})
}

func TestProjectRepository_FindByIDs(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))
	ctx := context.Background()

	first := entity.NewProject("Obra A", "", "", uuid.Nil)
	second := entity.NewProject("Obra B", "", "", uuid.Nil)
	for _, p := range []*entity.Project{first, second} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	t.Run("missing ids are skipped", func(t *testing.T) {
		projects, err := repo.FindByIDs(ctx, []uuid.UUID{first.ID, uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(projects) != 1 {
			t.Fatalf("expected 1 project, got %d", len(projects))
		}
		if projects[0].ID != first.ID {
			t.Errorf("expected project %s, got %s", first.ID, projects[0].ID)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		projects, err := repo.FindByIDs(ctx, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(projects) != 0 {
			t.Errorf("expected no projects, got %d", len(projects))
		}
	})
}

func TestProjectRepository_FindAllOrdersByName(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"Obra Sul", "Obra Norte", "Obra Centro"} {
		if err := repo.Create(ctx, entity.NewProject(name, "", "", uuid.Nil)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	projects, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Obra Centro", "Obra Norte", "Obra Sul"}
	for i, name := range want {
		if projects[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, projects[i].Name)
		}
	}
}

func TestProjectRepository_UpdateAndDelete(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))
	ctx := context.Background()

	project := entity.NewProject("Obra Centro", "São Paulo", "", uuid.Nil)
	if err := repo.Create(ctx, project); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	project.Status = "CONCLUÍDA"
	if err := repo.Update(ctx, project); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByID(ctx, project.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Status != "CONCLUÍDA" {
		t.Errorf("expected status CONCLUÍDA, got %q", found.Status)
	}

	if err := repo.Delete(ctx, project.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.FindByID(ctx, project.ID); !errors.Is(err, domainerror.ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound after delete, got %v", err)
	}
}
