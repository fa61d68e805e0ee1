package services

import (
	"testing"
	"time"

	"travelbooking/internal/domain"
	"travelbooking/internal/domain/models"
)

func TestSessionIssueParseRevoke(t *testing.T) {
	svc := NewSessionService("test-secret", time.Hour)
	token, sess, err := svc.Issue(models.User{ID: "USR-1", Name: "Asha", Email: "a@x.com"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	parsed, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if parsed.UserID != "USR-1" || parsed.Email != "a@x.com" || parsed.TokenID != sess.TokenID {
		t.Fatalf("unexpected session: %+v", parsed)
	}

	svc.Revoke(parsed)
	if _, err := svc.Parse(token); !domain.IsUnauthorized(err) {
		t.Fatalf("revoked token should be unauthorized, got %v", err)
	}
}

func TestSessionExpiredAndForeignTokens(t *testing.T) {
	svc := NewSessionService("test-secret", time.Minute)
	start := time.Now()
	svc.now = func() time.Time { return start }
	token, _, err := svc.Issue(models.User{ID: "USR-1", Email: "a@x.com"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	svc.now = func() time.Time { return start.Add(2 * time.Minute) }
	if _, err := svc.Parse(token); !domain.IsUnauthorized(err) {
		t.Fatalf("expired token should be unauthorized, got %v", err)
	}

	other := NewSessionService("another-secret", time.Hour)
	fresh, _, _ := other.Issue(models.User{ID: "USR-2"})
	if _, err := NewSessionService("test-secret", time.Hour).Parse(fresh); !domain.IsUnauthorized(err) {
		t.Fatalf("token signed with another secret should be unauthorized, got %v", err)
	}

	if _, err := svc.Parse(""); !domain.IsUnauthorized(err) {
		t.Fatalf("empty token should be unauthorized")
	}
}
