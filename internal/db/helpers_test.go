package db

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func TestHasTable(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("bookings").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("bookings"))
	mock.ExpectQuery("information_schema\\.tables").WithArgs("users").
		WillReturnError(errors.New("denied"))

	if !HasTable(context.Background(), conn, "bookings") {
		t.Fatalf("expected bookings table to exist")
	}
	if HasTable(context.Background(), conn, "users") {
		t.Fatalf("query error should report missing table")
	}
}

func TestIsDuplicateKey(t *testing.T) {
	dup := fmt.Errorf("insert: %w", &mysql.MySQLError{Number: 1062})
	if !IsDuplicateKey(dup) {
		t.Fatalf("1062 should be a duplicate key")
	}
	if IsDuplicateKey(&mysql.MySQLError{Number: 1146}) || IsDuplicateKey(errors.New("x")) {
		t.Fatalf("other errors are not duplicate keys")
	}
	if NullIfEmpty("") != nil || NullIfEmpty("a") != "a" {
		t.Fatalf("NullIfEmpty mismatch")
	}
}
