package services

import (
	"context"
	"errors"
	"strings"

	"travelbooking/internal/domain"
	"travelbooking/internal/domain/models"
	"travelbooking/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// UserStore is the user-record collaborator keyed by email.
type UserStore interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

type RegisterInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// AuthService registers users, verifies credentials and manages the session
// lifecycle on top of SessionService.
type AuthService struct {
	Users     UserStore
	Sessions  *SessionService
	HashCost  int
	RequestID string
}

func (s AuthService) cost() int {
	if s.HashCost >= bcrypt.MinCost && s.HashCost <= bcrypt.MaxCost {
		return s.HashCost
	}
	return bcrypt.DefaultCost
}

// Register creates the account and logs it in.
func (s AuthService) Register(ctx context.Context, in RegisterInput) (string, domain.Session, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.Name = utils.NormalizeSpace(in.Name)
	switch {
	case in.Email == "":
		return "", domain.Session{}, domain.ValidationError{Field: "email", Msg: "is required"}
	case in.Password == "":
		return "", domain.Session{}, domain.ValidationError{Field: "password", Msg: "is required"}
	case in.Password != in.ConfirmPassword:
		return "", domain.Session{}, domain.ValidationError{Field: "confirmPassword", Msg: "passwords do not match"}
	}

	if _, err := s.Users.FindByEmail(ctx, in.Email); err == nil {
		return "", domain.Session{}, domain.ConflictError{Resource: "user", Msg: "email already registered"}
	} else if !domain.IsNotFound(err) {
		return "", domain.Session{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost())
	if err != nil {
		return "", domain.Session{}, domain.InternalError{Msg: "failed to hash password", Err: err}
	}
	user, err := s.Users.Create(ctx, models.User{Name: in.Name, Email: in.Email, PasswordHash: string(hash)})
	if err != nil {
		return "", domain.Session{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "register", "user_id="+user.ID)
	return s.Sessions.Issue(user)
}

// Login verifies credentials and issues a session. Unknown email and wrong
// password are indistinguishable to the caller.
func (s AuthService) Login(ctx context.Context, email, password string) (string, domain.Session, error) {
	user, err := s.VerifyCredentials(ctx, email, password)
	if err != nil {
		return "", domain.Session{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "login", "user_id="+user.ID)
	return s.Sessions.Issue(user)
}

func (s AuthService) VerifyCredentials(ctx context.Context, email, password string) (models.User, error) {
	invalid := domain.UnauthorizedError{Msg: "invalid email or password"}
	user, err := s.Users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if domain.IsNotFound(err) {
			return models.User{}, invalid
		}
		return models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return models.User{}, invalid
		}
		return models.User{}, domain.UnauthorizedError{Msg: "invalid email or password", Err: err}
	}
	return user, nil
}

func (s AuthService) Logout(sess *domain.Session) {
	if sess == nil {
		return
	}
	s.Sessions.Revoke(sess)
	utils.LogEvent(s.RequestID, "auth", "logout", "user_id="+sess.UserID)
}
