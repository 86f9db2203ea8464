package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskhive/todo-api/internal/auth"
	"github.com/taskhive/todo-api/internal/core/domain"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	stored := cloneUser(user)
	r.nextID++
	stored.ID = r.nextID
	r.users[stored.Username] = cloneUser(stored)
	return cloneUser(stored), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

const testSecret = "service-test-secret"

func newTestAuthService(repo *stubUserRepo) *AuthService {
	issuer := auth.NewIssuer(testSecret, "todo-api", "todo-clients", time.Hour)
	return NewAuthService(repo, auth.NewBcryptHasher(), issuer, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), "alice", "pw123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID != 1 {
		t.Errorf("ID = %d, want 1", user.ID)
	}
	if user.Username != "alice" {
		t.Errorf("Username = %q, want %q", user.Username, "alice")
	}
	if user.PasswordHash == "pw123" {
		t.Fatal("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_EmptyCredentials(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	cases := []struct{ username, password string }{
		{"", "pw123"},
		{"alice", ""},
		{"   ", "pw123"},
		{"alice", "   "},
	}
	for _, c := range cases {
		if _, err := svc.Register(context.Background(), c.username, c.password); err != domain.ErrEmptyCredentials {
			t.Errorf("Register(%q, %q) error = %v, want ErrEmptyCredentials", c.username, c.password, err)
		}
	}
}

func TestAuthService_Register_TrimsUsername(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	user, err := svc.Register(context.Background(), "  alice  ", "pw123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("Username = %q, want %q", user.Username, "alice")
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "bob", "pw1"); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "pw2"); err != domain.ErrUserExists {
		t.Fatalf("duplicate Register error = %v, want ErrUserExists", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	registered, err := svc.Register(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	token, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Fatal("expected token, got empty string")
	}

	claims := &auth.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Subject != "1" {
		t.Errorf("sub = %q, want %q", claims.Subject, "1")
	}
	if claims.Username != registered.Username {
		t.Errorf("username claim = %q, want %q", claims.Username, registered.Username)
	}
	if claims.Issuer != "todo-api" {
		t.Errorf("iss = %q, want %q", claims.Issuer, "todo-api")
	}
}

func TestAuthService_Login_FailuresAreUniform(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "dave", "goodpass"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	// A wrong password and an unknown username must be indistinguishable.
	_, wrongPass := svc.Login(context.Background(), "dave", "badpass")
	_, unknownUser := svc.Login(context.Background(), "ghost", "whatever")

	if wrongPass != domain.ErrInvalidCredentials {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", wrongPass)
	}
	if unknownUser != domain.ErrInvalidCredentials {
		t.Errorf("unknown user error = %v, want ErrInvalidCredentials", unknownUser)
	}
}

func TestAuthService_Login_PasswordNotTrimmed(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "erin", " padded "); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if _, err := svc.Login(context.Background(), "erin", " padded "); err != nil {
		t.Errorf("Login with exact password returned error: %v", err)
	}
	if _, err := svc.Login(context.Background(), "erin", "padded"); err != domain.ErrInvalidCredentials {
		t.Errorf("Login with stripped password error = %v, want ErrInvalidCredentials", err)
	}
}
