package services

import (
	"strings"
	"sync"
	"time"

	"travelbooking/internal/domain"
	"travelbooking/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type sessionClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// SessionService issues signed session tokens at login and revokes them at
// logout. Revocations live in memory until the token would have expired.
type SessionService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time

	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewSessionService(secret string, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if secret == "" {
		// per-process secret; sessions do not survive a restart
		secret = uuid.NewString() + uuid.NewString()
	}
	return &SessionService{
		secret:  []byte(secret),
		ttl:     ttl,
		now:     time.Now,
		revoked: map[string]time.Time{},
	}
}

// Issue starts a session for u and returns its bearer token.
func (s *SessionService) Issue(u models.User) (string, domain.Session, error) {
	now := s.now()
	sess := domain.Session{
		UserID:    u.ID,
		Name:      u.Name,
		Email:     u.Email,
		TokenID:   uuid.NewString(),
		ExpiresAt: now.Add(s.ttl),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Name:  sess.Name,
		Email: sess.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.TokenID,
			Subject:   sess.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", domain.Session{}, domain.InternalError{Msg: "failed to sign session token", Err: err}
	}
	return signed, sess, nil
}

// Parse validates signature, expiry and revocation.
func (s *SessionService) Parse(raw string) (*domain.Session, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, domain.UnauthorizedError{Msg: "missing session token"}
	}
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, domain.UnauthorizedError{Msg: "invalid session token", Err: err}
	}
	if s.isRevoked(claims.ID) {
		return nil, domain.UnauthorizedError{Msg: "session has been logged out"}
	}

	sess := &domain.Session{
		UserID:  claims.Subject,
		Name:    claims.Name,
		Email:   claims.Email,
		TokenID: claims.ID,
	}
	if claims.ExpiresAt != nil {
		sess.ExpiresAt = claims.ExpiresAt.Time
	}
	return sess, nil
}

// Revoke ends a session; later Parse calls on its token fail.
func (s *SessionService) Revoke(sess *domain.Session) {
	if sess == nil || sess.TokenID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, exp := range s.revoked {
		if now.After(exp) {
			delete(s.revoked, id)
		}
	}
	exp := sess.ExpiresAt
	if exp.IsZero() {
		exp = now.Add(s.ttl)
	}
	s.revoked[sess.TokenID] = exp
}

func (s *SessionService) isRevoked(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.revoked[id]
	return ok
}
