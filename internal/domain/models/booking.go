package models

import "travelbooking/internal/domain"

// Contact is the booking holder as typed into the booking form.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PendingBooking is a finalized draft awaiting payment. It is never persisted.
type PendingBooking struct {
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Package   string        `json:"package"`
	Travelers int           `json:"travelers"`
	Total     string        `json:"total"`
	Date      string        `json:"date"`
	Status    domain.Status `json:"status"`
	UserEmail string        `json:"userEmail"`
}

// ConfirmedBooking is one row of the bookings table. Rows are append-only.
type ConfirmedBooking struct {
	ID        string `json:"id" validate:"max=64"`
	Name      string `json:"name" validate:"max=255"`
	Email     string `json:"email" validate:"max=255"`
	Package   string `json:"package" validate:"required,max=100"`
	Travelers int    `json:"travelers" validate:"gte=0"`
	Total     string `json:"total" validate:"max=64"`
	Date      string `json:"date" validate:"max=64"`
	Status    string `json:"status" validate:"required,max=32"`
	UserEmail string `json:"userEmail" validate:"max=255"`
	PaymentID string `json:"paymentId" validate:"max=64"`
	Method    string `json:"method" validate:"omitempty,oneof=Card UPI"`
}

// Confirm promotes a pending booking with the settlement details.
// ID is left empty; the store assigns it on insert.
func (p PendingBooking) Confirm(paymentID string, method PaymentMethod, date string) ConfirmedBooking {
	return ConfirmedBooking{
		Name:      p.Name,
		Email:     p.Email,
		Package:   p.Package,
		Travelers: p.Travelers,
		Total:     p.Total,
		Date:      date,
		Status:    string(domain.StatusConfirmed),
		UserEmail: p.UserEmail,
		PaymentID: paymentID,
		Method:    string(method),
	}
}

// BookingFilter narrows BookingRepository.List. A nil UserEmail lists every row.
type BookingFilter struct {
	UserEmail *string
	Sort      *domain.Sort
}

// ByUserEmail is shorthand for an exact userEmail filter.
func ByUserEmail(email string) BookingFilter {
	return BookingFilter{UserEmail: &email}
}
