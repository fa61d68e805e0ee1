package services

import (
	"context"
	"testing"
	"time"

	"travelbooking/internal/domain"
	"travelbooking/internal/domain/models"

	"golang.org/x/crypto/bcrypt"
)

type memoryUsers struct {
	byEmail map[string]models.User
}

func (m *memoryUsers) Create(ctx context.Context, u models.User) (models.User, error) {
	if m.byEmail == nil {
		m.byEmail = map[string]models.User{}
	}
	if _, ok := m.byEmail[u.Email]; ok {
		return models.User{}, domain.ConflictError{Resource: "user"}
	}
	u.ID = "USR-" + u.Email
	m.byEmail[u.Email] = u
	return u, nil
}

func (m *memoryUsers) FindByEmail(ctx context.Context, email string) (models.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	return u, nil
}

func newAuth() AuthService {
	return AuthService{
		Users:    &memoryUsers{},
		Sessions: NewSessionService("test-secret", time.Hour),
		HashCost: bcrypt.MinCost,
	}
}

func TestRegisterThenLogin(t *testing.T) {
	svc := newAuth()
	ctx := context.Background()

	_, sess, err := svc.Register(ctx, RegisterInput{Name: " Asha  Rao ", Email: "a@x.com", Password: "s3cret", ConfirmPassword: "s3cret"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if sess.Email != "a@x.com" || sess.Name != "Asha Rao" {
		t.Fatalf("unexpected session: %+v", sess)
	}

	token, _, err := svc.Login(ctx, "a@x.com", "s3cret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	parsed, err := svc.Sessions.Parse(token)
	if err != nil {
		t.Fatalf("issued token did not parse: %v", err)
	}

	svc.Logout(parsed)
	if _, err := svc.Sessions.Parse(token); err == nil {
		t.Fatalf("token should be revoked after logout")
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuth()
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, RegisterInput{Email: "a@x.com", Password: "one", ConfirmPassword: "two"}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error on mismatch, got %v", err)
	}
	if _, _, err := svc.Register(ctx, RegisterInput{Password: "x", ConfirmPassword: "x"}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error without email, got %v", err)
	}

	in := RegisterInput{Email: "a@x.com", Password: "x", ConfirmPassword: "x"}
	if _, _, err := svc.Register(ctx, in); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if _, _, err := svc.Register(ctx, in); !domain.IsConflict(err) {
		t.Fatalf("expected conflict on second register, got %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuth()
	ctx := context.Background()
	if _, _, err := svc.Register(ctx, RegisterInput{Email: "a@x.com", Password: "right", ConfirmPassword: "right"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if _, _, err := svc.Login(ctx, "a@x.com", "wrong"); !domain.IsUnauthorized(err) {
		t.Fatalf("wrong password should be unauthorized, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "nobody@x.com", "right"); !domain.IsUnauthorized(err) {
		t.Fatalf("unknown email should be unauthorized, got %v", err)
	}
}
