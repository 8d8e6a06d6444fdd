package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/expense-report/backend/internal/domain/entity"
	domainerror "github.com/expense-report/backend/internal/domain/error"
)

func TestCollaboratorRepository_CreateAndFind(t *testing.T) {
	repo := NewCollaboratorRepository(newTestDB(t))
	ctx := context.Background()

	projectIDs := []uuid.UUID{uuid.New(), uuid.New()}
	collaborator := entity.NewCollaborator("Ana Souza", "123.456.789-00", "hash", "1234", uuid.New(), projectIDs)

	if err := repo.Create(ctx, collaborator); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByCPF(ctx, "123.456.789-00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if found.Name != "Ana Souza" || found.CardNumber != "1234" {
		t.Errorf("round trip mismatch: %+v", found)
	}
	if !found.Active {
		t.Error("expected new collaborator to be active")
	}

	// Project assignments survive the array column round trip
	if len(found.ProjectIDs) != len(projectIDs) {
		t.Fatalf("expected %d project IDs, got %d", len(projectIDs), len(found.ProjectIDs))
	}
	for i, id := range projectIDs {
		if found.ProjectIDs[i] != id {
			t.Errorf("project ID %d: expected %s, got %s", i, id, found.ProjectIDs[i])
		}
	}
}

func TestCollaboratorRepository_DuplicateCPF(t *testing.T) {
	repo := NewCollaboratorRepository(newTestDB(t))
	ctx := context.Background()

	first := entity.NewCollaborator("Ana", "123.456.789-00", "hash", "1111", uuid.Nil, nil)
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := entity.NewCollaborator("Bruno", "123.456.789-00", "hash", "2222", uuid.Nil, nil)
	if err := repo.Create(ctx, second); !errors.Is(err, domainerror.ErrCPFAlreadyExists) {
		t.Errorf("expected ErrCPFAlreadyExists, got %v", err)
	}
}

func TestCollaboratorRepository_SetActive(t *testing.T) {
	repo := NewCollaboratorRepository(newTestDB(t))
	ctx := context.Background()

	collaborator := entity.NewCollaborator("Ana", "123.456.789-00", "hash", "1234", uuid.Nil, nil)
	if err := repo.Create(ctx, collaborator); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := repo.SetActive(ctx, collaborator.ID, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByID(ctx, collaborator.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Active {
		t.Error("expected collaborator to be inactive")
	}

	t.Run("missing collaborator", func(t *testing.T) {
		err := repo.SetActive(ctx, uuid.New(), true)
		if !errors.Is(err, domainerror.ErrCollaboratorNotFound) {
			t.Errorf("expected ErrCollaboratorNotFound, got %v", err)
		}
	})
}

func TestCollaboratorRepository_UpdateReplacesAssignments(t *testing.T) {
	repo := NewCollaboratorRepository(newTestDB(t))
	ctx := context.Background()

	collaborator := entity.NewCollaborator("Ana", "123.456.789-00", "hash", "1234", uuid.Nil, []uuid.UUID{uuid.New()})
	if err := repo.Create(ctx, collaborator); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	replacement := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	collaborator.ProjectIDs = replacement
	if err := repo.Update(ctx, collaborator); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByID(ctx, collaborator.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found.ProjectIDs) != 3 {
		t.Errorf("expected the whole assignment to be replaced, got %d IDs", len(found.ProjectIDs))
	}
}
