package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"travelbooking/internal/domain"
	"travelbooking/internal/domain/models"
	"travelbooking/internal/utils"

	"github.com/gosimple/slug"
	"github.com/phpdave11/gofpdf"
)

// ReceiptService renders a PDF receipt for a confirmed booking.
type ReceiptService struct {
	Store     BookingStore
	RequestID string
	Now       func() time.Time
}

// GenerateReceipt looks the booking up among the rows owned by userEmail, so a
// receipt is only produced for someone who knows both the id and the email.
func (s ReceiptService) GenerateReceipt(ctx context.Context, bookingID, userEmail string) ([]byte, string, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return nil, "", domain.ValidationError{Field: "id", Msg: "is required"}
	}
	if strings.TrimSpace(userEmail) == "" {
		return nil, "", domain.ValidationError{Field: "email", Msg: "is required"}
	}

	rows, err := s.Store.List(ctx, models.ByUserEmail(userEmail))
	if err != nil {
		return nil, "", err
	}
	for _, b := range rows {
		if b.ID == bookingID {
			utils.LogEvent(s.RequestID, "docs", "generate_receipt", "booking_id="+b.ID)
			return buildReceiptPDF(b, s.now())
		}
	}
	return nil, "", domain.NotFoundError{Resource: "booking"}
}

func (s ReceiptService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func buildReceiptPDF(b models.ConfirmedBooking, issued time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking ID   : %s", safe(b.ID, "-")),
		fmt.Sprintf("Payment ID   : %s", safe(b.PaymentID, "-")),
		fmt.Sprintf("Name         : %s", safe(b.Name, "-")),
		fmt.Sprintf("Email        : %s", safe(b.Email, "-")),
		fmt.Sprintf("Package      : %s", safe(b.Package, "-")),
		fmt.Sprintf("Travelers    : %d", b.Travelers),
		fmt.Sprintf("Amount       : %s", safe(pdfAmount(b.Total), "-")),
		fmt.Sprintf("Method       : %s", safe(b.Method, "-")),
		fmt.Sprintf("Status       : %s", safe(b.Status, "-")),
		fmt.Sprintf("Paid on      : %s", safe(b.Date, "-")),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Issued "+utils.FormatDateTime(issued)+". Please keep this receipt for your trip.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_%s_%s.pdf", safe(slug.Make(b.Package), "booking"), shortID(b.ID))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

// pdfAmount swaps the rupee sign for a code; the core PDF fonts lack the glyph.
func pdfAmount(total string) string {
	return strings.ReplaceAll(total, "₹", "INR ")
}

func shortID(id string) string {
	id = strings.ReplaceAll(strings.TrimSpace(id), "-", "")
	if id == "" {
		return "NA"
	}
	if len(id) > 8 {
		id = id[:8]
	}
	return id
}
