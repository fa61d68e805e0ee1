package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	intconfig "travelbooking/internal/config"
	intdb "travelbooking/internal/db"
	"travelbooking/internal/domain"
	"travelbooking/internal/domain/models"

	"github.com/google/uuid"
)

const bookingsTable = "bookings"

var errNoDB = errors.New("database not connected")

// userEmail is compared byte-for-byte; the binary collation keeps the
// filter exact and case-sensitive.
const bookingsDDL = "CREATE TABLE IF NOT EXISTS bookings (" + `
	id VARCHAR(64) NOT NULL PRIMARY KEY,
	name TEXT NULL,
	email TEXT NULL,
	` + "`package`" + ` TEXT NULL,
	travelers INT NULL,
	total TEXT NULL,
	` + "`date`" + ` TEXT NULL,
	status TEXT NULL,
	userEmail VARCHAR(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NULL,
	paymentId TEXT NULL,
	method TEXT NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

const bookingSelect = "SELECT id, COALESCE(name,''), COALESCE(email,''), COALESCE(`package`,''), " +
	"COALESCE(travelers,0), COALESCE(total,''), COALESCE(`date`,''), COALESCE(status,''), " +
	"COALESCE(userEmail,''), COALESCE(paymentId,''), COALESCE(method,'') FROM " + bookingsTable

const bookingInsert = "INSERT INTO " + bookingsTable +
	" (id, name, email, `package`, travelers, total, `date`, status, userEmail, paymentId, method)" +
	" VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"

var bookingSortColumns = map[string]string{
	"id":      "id",
	"date":    "`date`",
	"package": "`package`",
}

// BookingRepository is the append-only store for confirmed bookings.
type BookingRepository struct {
	DB    *sql.DB
	NewID func() string
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r BookingRepository) newID() string {
	if r.NewID != nil {
		return r.NewID()
	}
	return uuid.NewString()
}

// EnsureSchema creates the bookings table when it does not exist yet.
func (r BookingRepository) EnsureSchema(ctx context.Context) error {
	db := r.db()
	if db == nil {
		return domain.StorageError{Op: "ensure bookings schema", Err: errNoDB}
	}
	if intdb.HasTable(ctx, db, bookingsTable) {
		return nil
	}
	if _, err := db.ExecContext(ctx, bookingsDDL); err != nil {
		return domain.StorageError{Op: "ensure bookings schema", Err: err}
	}
	return nil
}

// Create inserts one booking and returns its id. An empty ID is assigned here.
func (r BookingRepository) Create(ctx context.Context, b models.ConfirmedBooking) (string, error) {
	b.ID = strings.TrimSpace(b.ID)
	if err := validateStruct(b); err != nil {
		return "", err
	}
	if b.ID == "" {
		b.ID = r.newID()
	}

	db := r.db()
	if db == nil {
		return "", domain.StorageError{Op: "create booking", Err: errNoDB}
	}

	_, err := db.ExecContext(ctx, bookingInsert,
		b.ID,
		intdb.NullIfEmpty(b.Name),
		intdb.NullIfEmpty(b.Email),
		b.Package,
		b.Travelers,
		intdb.NullIfEmpty(b.Total),
		intdb.NullIfEmpty(b.Date),
		b.Status,
		intdb.NullIfEmpty(b.UserEmail),
		intdb.NullIfEmpty(b.PaymentID),
		intdb.NullIfEmpty(b.Method),
	)
	if err != nil {
		if intdb.IsDuplicateKey(err) {
			return "", domain.DuplicateKeyError{Resource: "booking", Key: b.ID, Err: err}
		}
		return "", domain.StorageError{Op: "create booking", Err: err}
	}
	return b.ID, nil
}

// List returns every booking, or only those whose userEmail matches exactly.
// Row order is whatever the engine yields unless f.Sort is set.
func (r BookingRepository) List(ctx context.Context, f models.BookingFilter) ([]models.ConfirmedBooking, error) {
	db := r.db()
	if db == nil {
		return nil, domain.StorageError{Op: "list bookings", Err: errNoDB}
	}

	query := bookingSelect
	args := []any{}
	if f.UserEmail != nil {
		query += " WHERE userEmail = ?"
		args = append(args, *f.UserEmail)
	}
	if f.Sort != nil {
		order, err := orderBy(*f.Sort)
		if err != nil {
			return nil, err
		}
		query += order
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.StorageError{Op: "list bookings", Err: err}
	}
	defer rows.Close()

	out := make([]models.ConfirmedBooking, 0)
	for rows.Next() {
		var b models.ConfirmedBooking
		if err := rows.Scan(
			&b.ID,
			&b.Name,
			&b.Email,
			&b.Package,
			&b.Travelers,
			&b.Total,
			&b.Date,
			&b.Status,
			&b.UserEmail,
			&b.PaymentID,
			&b.Method,
		); err != nil {
			return nil, domain.StorageError{Op: "scan booking", Err: err}
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageError{Op: "list bookings", Err: err}
	}
	return out, nil
}

func orderBy(s domain.Sort) (string, error) {
	col, ok := bookingSortColumns[strings.ToLower(strings.TrimSpace(s.Field))]
	if !ok {
		return "", domain.ValidationError{Field: "sort", Msg: "unsupported field " + s.Field}
	}
	dir := "ASC"
	if strings.EqualFold(strings.TrimSpace(s.Direction), "desc") {
		dir = "DESC"
	}
	return " ORDER BY " + col + " " + dir, nil
}
