package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorHelpersSeeThroughWrapping(t *testing.T) {
	base := errors.New("boom")
	cases := []struct {
		err   error
		check func(error) bool
	}{
		{NotFoundError{Resource: "booking"}, IsNotFound},
		{ValidationError{Field: "package", Msg: "is required"}, IsValidation},
		{ConflictError{Resource: "user"}, IsConflict},
		{DuplicateKeyError{Resource: "booking", Key: "BK-1", Err: base}, IsDuplicateKey},
		{StorageError{Op: "list bookings", Err: base}, IsStorage},
		{PreconditionError{Msg: "no pending booking"}, IsPrecondition},
		{TimeoutError{Op: "payment settlement", Err: base}, IsTimeout},
		{DeclinedError{Reason: "card declined"}, IsDeclined},
		{UnauthorizedError{Msg: "login required"}, IsUnauthorized},
		{InternalError{Msg: "sign", Err: base}, IsInternal},
	}
	for _, tc := range cases {
		wrapped := fmt.Errorf("handler: %w", tc.err)
		if !tc.check(wrapped) {
			t.Fatalf("helper did not match wrapped %T", tc.err)
		}
		if tc.err.Error() == "" {
			t.Fatalf("%T has empty message", tc.err)
		}
	}
	if IsNotFound(StorageError{Err: base}) {
		t.Fatalf("storage error must not look like not found")
	}
}

func TestSessionEmailOr(t *testing.T) {
	var s *Session
	if got := s.EmailOr("form@x.com"); got != "form@x.com" {
		t.Fatalf("nil session should fall back, got %q", got)
	}
	s = &Session{Email: "acct@x.com"}
	if got := s.EmailOr("form@x.com"); got != "acct@x.com" {
		t.Fatalf("session email should win, got %q", got)
	}
}
