package services

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"travelbooking/internal/domain"
	"travelbooking/internal/domain/models"
)

type memoryStore struct {
	mu   sync.Mutex
	rows []models.ConfirmedBooking
	err  error
	seq  int
}

func (m *memoryStore) Create(ctx context.Context, b models.ConfirmedBooking) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	b.ID = "BK-" + strconv.Itoa(m.seq)
	m.rows = append(m.rows, b)
	return b.ID, nil
}

func (m *memoryStore) List(ctx context.Context, f models.BookingFilter) ([]models.ConfirmedBooking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.ConfirmedBooking{}
	for _, b := range m.rows {
		if f.UserEmail == nil || b.UserEmail == *f.UserEmail {
			out = append(out, b)
		}
	}
	return out, nil
}

func pendingPremium() *models.PendingBooking {
	return &models.PendingBooking{
		Name:      "Asha",
		Email:     "a@x.com",
		Package:   "Premium Package",
		Travelers: 2,
		Total:     "₹20,000",
		Date:      "2026-10-15T09:30:00.000Z",
		Status:    domain.StatusPendingPayment,
		UserEmail: "a@x.com",
	}
}

func TestSettleConfirmsAndStores(t *testing.T) {
	store := &memoryStore{}
	svc := PaymentService{
		Store: store,
		Now:   func() time.Time { return time.Date(2026, 10, 16, 12, 0, 0, 0, time.Local) },
	}

	b, err := svc.Settle(context.Background(), pendingPremium(), "upi")
	if err != nil {
		t.Fatalf("Settle returned error: %v", err)
	}
	if b.Status != string(domain.StatusConfirmed) || b.Method != "UPI" {
		t.Fatalf("unexpected booking: %+v", b)
	}
	if b.Date != "2026-10-16" {
		t.Fatalf("Date = %q, want settlement date", b.Date)
	}
	if b.ID == "" || !strings.HasPrefix(b.PaymentID, "TXN-") {
		t.Fatalf("ids not assigned: %+v", b)
	}
	if b.Total != "₹20,000" || b.Travelers != 2 || b.UserEmail != "a@x.com" {
		t.Fatalf("pending fields not carried: %+v", b)
	}

	rows, _ := store.List(context.Background(), models.ByUserEmail("a@x.com"))
	if len(rows) != 1 {
		t.Fatalf("stored rows = %d, want 1", len(rows))
	}
}

func TestSettleTwiceCreatesTwoBookings(t *testing.T) {
	store := &memoryStore{}
	svc := PaymentService{Store: store}
	p := pendingPremium()

	first, err := svc.Settle(context.Background(), p, "Card")
	if err != nil {
		t.Fatalf("first Settle returned error: %v", err)
	}
	second, err := svc.Settle(context.Background(), p, "Card")
	if err != nil {
		t.Fatalf("second Settle returned error: %v", err)
	}
	if first.ID == second.ID || first.PaymentID == second.PaymentID {
		t.Fatalf("ids must differ: %+v / %+v", first, second)
	}
	if len(store.rows) != 2 {
		t.Fatalf("stored rows = %d, want 2", len(store.rows))
	}
}

func TestSettleWithoutPending(t *testing.T) {
	store := &memoryStore{}
	_, err := PaymentService{Store: store}.Settle(context.Background(), nil, "UPI")
	if !domain.IsPrecondition(err) {
		t.Fatalf("expected precondition error, got %v", err)
	}
	if len(store.rows) != 0 {
		t.Fatalf("nothing should be stored")
	}
}

func TestSettleRejectsUnknownMethod(t *testing.T) {
	_, err := PaymentService{Store: &memoryStore{}}.Settle(context.Background(), pendingPremium(), "Cash")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSettleDeclined(t *testing.T) {
	store := &memoryStore{}
	svc := PaymentService{
		Store: store,
		Decline: func(p models.PendingBooking, m models.PaymentMethod) string {
			if m == models.MethodCard {
				return "card issuer unavailable"
			}
			return ""
		},
	}
	_, err := svc.Settle(context.Background(), pendingPremium(), "Card")
	if !domain.IsDeclined(err) {
		t.Fatalf("expected declined error, got %v", err)
	}
	if len(store.rows) != 0 {
		t.Fatalf("declined settlement must not store")
	}
	if _, err := svc.Settle(context.Background(), pendingPremium(), "UPI"); err != nil {
		t.Fatalf("UPI settle returned error: %v", err)
	}
}

func TestSettleTimesOut(t *testing.T) {
	store := &memoryStore{}
	svc := PaymentService{Store: store, Delay: time.Second, Timeout: 20 * time.Millisecond}

	_, err := svc.Settle(context.Background(), pendingPremium(), "UPI")
	if !domain.IsTimeout(err) {
		t.Fatalf("expected timeout error, got %v", err)
	}
	if len(store.rows) != 0 {
		t.Fatalf("timed-out settlement must not store")
	}
}

func TestSettleStoreFailure(t *testing.T) {
	storeErr := domain.StorageError{Op: "create booking", Err: errors.New("disk full")}
	_, err := PaymentService{Store: &memoryStore{err: storeErr}}.Settle(context.Background(), pendingPremium(), "UPI")
	if !domain.IsStorage(err) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestRenderPaymentRequest(t *testing.T) {
	svc := PaymentService{
		UPIHandle:  "7038948696@upi",
		UPIName:    "MaharajaTravels",
		QREndpoint: "https://api.qrserver.com/v1/create-qr-code/",
	}
	req, err := svc.RenderPaymentRequest(*pendingPremium())
	if err != nil {
		t.Fatalf("RenderPaymentRequest returned error: %v", err)
	}
	want := "upi://pay?pa=7038948696@upi&pn=MaharajaTravels&am=20000&cu=INR"
	if req.URI != want {
		t.Fatalf("URI = %q, want %q", req.URI, want)
	}
	if !strings.HasPrefix(req.QRURL, "https://api.qrserver.com/v1/create-qr-code/?size=250x250&data=upi%3A%2F%2Fpay") {
		t.Fatalf("QRURL = %q", req.QRURL)
	}
	if req.Amount != 20000 || req.Currency != "INR" {
		t.Fatalf("unexpected request: %+v", req)
	}

	p := pendingPremium()
	p.Total = "TBD"
	if _, err := svc.RenderPaymentRequest(*p); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for total without amount, got %v", err)
	}
}

func TestRenderPaymentQR(t *testing.T) {
	svc := PaymentService{UPIHandle: "7038948696@upi", UPIName: "MaharajaTravels"}
	var buf bytes.Buffer
	if err := svc.RenderPaymentQR(*pendingPremium(), &buf); err != nil {
		t.Fatalf("RenderPaymentQR returned error: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected image bytes")
	}
}
