package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenRepository_RefreshTokenLifecycle(t *testing.T) {
	repo := NewTokenRepository(newTestDB(t))
	ctx := context.Background()
	principalID := uuid.New()

	expiresAt := time.Now().Add(time.Hour)
	if err := repo.SaveRefreshToken(ctx, "token-1", principalID, expiresAt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	valid, err := repo.IsRefreshTokenValid(ctx, "token-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !valid {
		t.Error("expected a fresh token to be valid")
	}

	t.Run("unknown token is invalid", func(t *testing.T) {
		valid, err := repo.IsRefreshTokenValid(ctx, "unknown")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if valid {
			t.Error("expected an unknown token to be invalid")
		}
	})

	t.Run("invalidated token is rejected", func(t *testing.T) {
		if err := repo.InvalidateRefreshToken(ctx, "token-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		valid, err := repo.IsRefreshTokenValid(ctx, "token-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if valid {
			t.Error("expected an invalidated token to be rejected")
		}
	})
}

func TestTokenRepository_ExpiredTokenIsInvalid(t *testing.T) {
	repo := NewTokenRepository(newTestDB(t))
	ctx := context.Background()

	if err := repo.SaveRefreshToken(ctx, "stale", uuid.New(), time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	valid, err := repo.IsRefreshTokenValid(ctx, "stale")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if valid {
		t.Error("expected an expired token to be invalid")
	}
}

func TestTokenRepository_InvalidateAllPrincipalTokens(t *testing.T) {
	repo := NewTokenRepository(newTestDB(t))
	ctx := context.Background()

	principalID := uuid.New()
	otherID := uuid.New()
	expiresAt := time.Now().Add(time.Hour)

	for _, token := range []string{"a", "b"} {
		if err := repo.SaveRefreshToken(ctx, token, principalID, expiresAt); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := repo.SaveRefreshToken(ctx, "c", otherID, expiresAt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := repo.InvalidateAllPrincipalTokens(ctx, principalID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, token := range []string{"a", "b"} {
		valid, _ := repo.IsRefreshTokenValid(ctx, token)
		if valid {
			t.Errorf("expected token %q to be invalidated", token)
		}
	}

	valid, _ := repo.IsRefreshTokenValid(ctx, "c")
	if !valid {
		t.Error("expected the other principal's token to stay valid")
	}
}
