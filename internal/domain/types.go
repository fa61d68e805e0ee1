package domain

import "time"

// Status represents a booking lifecycle state.
type Status string

const (
	StatusPendingPayment Status = "Pending Payment"
	StatusConfirmed      Status = "Confirmed"
)

// Sort defines sorting preference.
type Sort struct {
	Field     string `json:"field"`
	Direction string `json:"direction"` // asc / desc
}

// Session is the authenticated caller, issued at login and cleared at logout.
// A nil *Session means an anonymous (guest) caller.
type Session struct {
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	TokenID   string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// EmailOr returns the session email, or fallback when there is no session.
func (s *Session) EmailOr(fallback string) string {
	if s == nil || s.Email == "" {
		return fallback
	}
	return s.Email
}
