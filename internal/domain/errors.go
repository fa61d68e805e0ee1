package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// ValidationError reports malformed or missing input at a service or store boundary.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// DuplicateKeyError is a primary-key collision on insert. Retrying is only
// meaningful with a freshly generated key.
type DuplicateKeyError struct {
	Resource string
	Key      string
	Err      error
}

func (e DuplicateKeyError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s with id %q already exists", nonEmpty(e.Resource, "record"), e.Key)
	}
	return fmt.Sprintf("duplicate %s id", nonEmpty(e.Resource, "record"))
}

func (e DuplicateKeyError) Unwrap() error { return e.Err }

// StorageError wraps a lower-level database or I/O fault.
type StorageError struct {
	Op  string
	Err error
}

func (e StorageError) Error() string {
	if e.Op == "" {
		return "storage error"
	}
	if e.Err == nil {
		return fmt.Sprintf("storage error during %s", e.Op)
	}
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e StorageError) Unwrap() error { return e.Err }

// PreconditionError means the caller skipped a required earlier step,
// e.g. settling without a pending booking.
type PreconditionError struct {
	Msg string
}

func (e PreconditionError) Error() string {
	if e.Msg == "" {
		return "precondition failed"
	}
	return e.Msg
}

type TimeoutError struct {
	Op  string
	Err error
}

func (e TimeoutError) Error() string {
	if e.Op == "" {
		return "operation timed out"
	}
	return fmt.Sprintf("%s timed out", e.Op)
}

func (e TimeoutError) Unwrap() error { return e.Err }

type DeclinedError struct {
	Reason string
}

func (e DeclinedError) Error() string {
	if e.Reason == "" {
		return "payment declined"
	}
	return "payment declined: " + e.Reason
}

type UnauthorizedError struct {
	Msg string
	Err error
}

func (e UnauthorizedError) Error() string {
	if e.Msg == "" {
		return "unauthorized"
	}
	return e.Msg
}

func (e UnauthorizedError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func nonEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsDuplicateKey(err error) bool {
	var target DuplicateKeyError
	return errors.As(err, &target)
}

func IsStorage(err error) bool {
	var target StorageError
	return errors.As(err, &target)
}

func IsPrecondition(err error) bool {
	var target PreconditionError
	return errors.As(err, &target)
}

func IsTimeout(err error) bool {
	var target TimeoutError
	return errors.As(err, &target)
}

func IsDeclined(err error) bool {
	var target DeclinedError
	return errors.As(err, &target)
}

func IsUnauthorized(err error) bool {
	var target UnauthorizedError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
