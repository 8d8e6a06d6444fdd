package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/expense-report/backend/internal/application/adapter"
	"github.com/expense-report/backend/internal/domain/entity"
	"github.com/expense-report/backend/internal/integration/persistence"
	"github.com/expense-report/backend/internal/integration/persistence/model"
)

func newTokenService(t *testing.T) adapter.TokenService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.RefreshTokenModel{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return NewTokenService("test-secret", 15*time.Minute, 24*time.Hour, persistence.NewTokenRepository(db))
}

func testPrincipal() entity.Principal {
	return entity.Principal{
		ID:   uuid.New(),
		Name: "Ana Souza",
		Role: entity.RoleAdmin,
	}
}

func TestTokenService_GenerateAndValidate(t *testing.T) {
	service := newTokenService(t)
	ctx := context.Background()
	principal := testPrincipal()

	pair, err := service.GenerateTokenPair(ctx, principal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens to be generated")
	}

	t.Run("access token carries the principal", func(t *testing.T) {
		claims, err := service.ValidateAccessToken(ctx, pair.AccessToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.Principal.ID != principal.ID {
			t.Errorf("expected principal ID %s, got %s", principal.ID, claims.Principal.ID)
		}
		if claims.Principal.Name != "Ana Souza" {
			t.Errorf("expected name Ana Souza, got %q", claims.Principal.Name)
		}
		if claims.Principal.Role != entity.RoleAdmin {
			t.Errorf("expected admin role, got %q", claims.Principal.Role)
		}
	})

	t.Run("refresh token validates against the store", func(t *testing.T) {
		claims, err := service.ValidateRefreshToken(ctx, pair.RefreshToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.Principal.ID != principal.ID {
			t.Errorf("expected principal ID %s, got %s", principal.ID, claims.Principal.ID)
		}
	})
}

func TestTokenService_RejectsWrongTokenType(t *testing.T) {
	service := newTokenService(t)
	ctx := context.Background()

	pair, err := service.GenerateTokenPair(ctx, testPrincipal())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.ValidateAccessToken(ctx, pair.RefreshToken); err == nil {
		t.Error("expected a refresh token to fail access validation")
	}
	if _, err := service.ValidateRefreshToken(ctx, pair.AccessToken); err == nil {
		t.Error("expected an access token to fail refresh validation")
	}
}

func TestTokenService_RevokedRefreshTokenFails(t *testing.T) {
	service := newTokenService(t)
	ctx := context.Background()

	pair, err := service.GenerateTokenPair(ctx, testPrincipal())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := service.RevokeRefreshToken(ctx, pair.RefreshToken); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.ValidateRefreshToken(ctx, pair.RefreshToken); err == nil {
		t.Error("expected a revoked refresh token to be rejected")
	}
}

func TestTokenService_RejectsTamperedToken(t *testing.T) {
	service := newTokenService(t)
	ctx := context.Background()

	pair, err := service.GenerateTokenPair(ctx, testPrincipal())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tampered := pair.AccessToken[:len(pair.AccessToken)-2] + "xx"
	if _, err := service.ValidateAccessToken(ctx, tampered); err == nil {
		t.Error("expected a tampered token to be rejected")
	}
}
