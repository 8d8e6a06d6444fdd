package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/expense-report/backend/internal/domain/entity"
	domainerror "github.com/expense-report/backend/internal/domain/error"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := entity.NewUser("Ana Souza", "123.456.789-00", "hash")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Name != "Ana Souza" || found.CPF != "123.456.789-00" {
			t.Errorf("round trip mismatch: %+v", found)
		}
		if !found.Active {
			t.Error("expected new user to be active")
		}
	})

	t.Run("by cpf", func(t *testing.T) {
		found, err := repo.FindByCPF(ctx, "123.456.789-00")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.ID != user.ID {
			t.Errorf("expected ID %s, got %s", user.ID, found.ID)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestUserRepository_DuplicateCPF(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, entity.NewUser("Ana", "123.456.789-00", "hash")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := repo.Create(ctx, entity.NewUser("Bruno", "123.456.789-00", "hash"))
	if !errors.Is(err, domainerror.ErrCPFAlreadyExists) {
		t.Errorf("expected ErrCPFAlreadyExists, got %v", err)
	}
}

func TestUserRepository_FindAllOrdersByName(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	for _, u := range []struct{ name, cpf string }{
		{"Carla", "111.111.111-11"},
		{"Ana", "222.222.222-22"},
		{"Bruno", "333.333.333-33"},
	} {
		if err := repo.Create(ctx, entity.NewUser(u.name, u.cpf, "hash")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	users, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Ana", "Bruno", "Carla"}
	if len(users) != len(want) {
		t.Fatalf("expected %d users, got %d", len(want), len(users))
	}
	for i, name := range want {
		if users[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, users[i].Name)
		}
	}
}

func TestUserRepository_UpdateAndDelete(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := entity.NewUser("Ana", "123.456.789-00", "hash")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user.Name = "Ana Pereira"
	if err := repo.Update(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Name != "Ana Pereira" {
		t.Errorf("expected updated name, got %q", found.Name)
	}

	if err := repo.Delete(ctx, user.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.FindByID(ctx, user.ID); !errors.Is(err, domainerror.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound after delete, got %v", err)
	}
}

func TestUserRepository_SetActive(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := entity.NewUser("Ana", "123.456.789-00", "hash")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := repo.SetActive(ctx, user.ID, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Active {
		t.Error("expected user to be inactive")
	}

	t.Run("missing user", func(t *testing.T) {
		err := repo.SetActive(ctx, uuid.New(), true)
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}
