package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/taskhive/todo-api/internal/core/domain"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := openTestDB(t, "users_create")
	repo := NewUserRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.User{Username: "alice", PasswordHash: "$2a$10$digest"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == 0 {
		t.Error("Create returned zero id")
	}

	found, err := repo.FindByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("FindByUsername returned error: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("found ID = %d, want %d", found.ID, created.ID)
	}
	if found.Username != "alice" {
		t.Errorf("found Username = %q, want %q", found.Username, "alice")
	}
	if found.PasswordHash != "$2a$10$digest" {
		t.Errorf("found PasswordHash = %q, want stored digest", found.PasswordHash)
	}

	second, err := repo.Create(ctx, &domain.User{Username: "bob", PasswordHash: "x"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if second.ID == created.ID {
		t.Errorf("second user got id %d, same as first", second.ID)
	}
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	db := openTestDB(t, "users_duplicate")
	repo := NewUserRepository(db)
	ctx := context.Background()

	if _, err := repo.Create(ctx, &domain.User{Username: "alice", PasswordHash: "h1"}); err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}

	_, err := repo.Create(ctx, &domain.User{Username: "alice", PasswordHash: "h2"})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("duplicate Create error = %v, want ErrUserExists", err)
	}
}

func TestUserRepository_FindMissing(t *testing.T) {
	db := openTestDB(t, "users_missing")
	repo := NewUserRepository(db)

	_, err := repo.FindByUsername(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("FindByUsername error = %v, want ErrUserNotFound", err)
	}
}

func TestUserRepository_UsernamesAreCaseSensitive(t *testing.T) {
	db := openTestDB(t, "users_case")
	repo := NewUserRepository(db)
	ctx := context.Background()

	if _, err := repo.Create(ctx, &domain.User{Username: "alice", PasswordHash: "h"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := repo.Create(ctx, &domain.User{Username: "Alice", PasswordHash: "h"}); err != nil {
		t.Fatalf("Create with different case returned error: %v", err)
	}
	if _, err := repo.FindByUsername(ctx, "ALICE"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("FindByUsername(ALICE) error = %v, want ErrUserNotFound", err)
	}
}
