package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"torrealta-portal/internal/core/domain"
)

func activeSession(id, userID, tokenHash string) *domain.Session {
	return &domain.Session{
		ID:        id,
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
}

func TestSessionRepository_CreateAndLookup(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, activeSession("s1", "user001", "hash1")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByTokenHash(ctx, "hash1")
	if err != nil {
		t.Fatalf("GetByTokenHash: %v", err)
	}
	if got.ID != "s1" || got.UserID != "user001" {
		t.Errorf("session = %+v", got)
	}

	if _, err := repo.GetByTokenHash(ctx, "desconocido"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSessionRepository_Revoke(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	repo.Create(ctx, activeSession("s1", "user001", "hash1"))

	if err := repo.Revoke(ctx, "s1"); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	got, _ := repo.GetByTokenHash(ctx, "hash1")
	if !got.IsRevoked() {
		t.Error("session should be revoked")
	}

	if err := repo.Revoke(ctx, "s999"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSessionRepository_RevokeAllByUserID(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	repo.Create(ctx, activeSession("s1", "user001", "hash1"))
	repo.Create(ctx, activeSession("s2", "user001", "hash2"))
	repo.Create(ctx, activeSession("s3", "user002", "hash3"))

	if err := repo.RevokeAllByUserID(ctx, "user001"); err != nil {
		t.Fatalf("RevokeAllByUserID: %v", err)
	}

	mine, _ := repo.CountActiveByUserID(ctx, "user001")
	if mine != 0 {
		t.Errorf("user001 active = %d, want 0", mine)
	}
	theirs, _ := repo.CountActiveByUserID(ctx, "user002")
	if theirs != 1 {
		t.Errorf("user002 active = %d, want 1", theirs)
	}
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	expired := activeSession("s1", "user001", "hash1")
	expired.ExpiresAt = time.Now().Add(-time.Hour)
	repo.Create(ctx, expired)
	repo.Create(ctx, activeSession("s2", "user001", "hash2"))

	if err := repo.DeleteExpired(ctx); err != nil {
		t.Fatalf("DeleteExpired: %v", err)
	}

	if _, err := repo.GetByTokenHash(ctx, "hash1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expired session should be gone, got %v", err)
	}
	if _, err := repo.GetByTokenHash(ctx, "hash2"); err != nil {
		t.Errorf("live session should survive, got %v", err)
	}
}
