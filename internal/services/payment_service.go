package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"travelbooking/internal/domain"
	"travelbooking/internal/domain/models"
	"travelbooking/internal/utils"

	"github.com/google/uuid"
	"github.com/yeqown/go-qrcode"
)

// BookingStore is the durable side of settlement.
type BookingStore interface {
	Create(ctx context.Context, b models.ConfirmedBooking) (string, error)
	List(ctx context.Context, f models.BookingFilter) ([]models.ConfirmedBooking, error)
}

// DeclineFunc may reject a settlement; a non-empty reason declines it.
// Nil means every settlement succeeds.
type DeclineFunc func(p models.PendingBooking, method models.PaymentMethod) string

// PaymentService simulates the payment provider round trip and promotes a
// pending booking to a confirmed row.
type PaymentService struct {
	Store BookingStore

	// Delay is the simulated provider latency.
	Delay time.Duration
	// Timeout bounds the whole settlement including the store write; 0 disables it.
	Timeout time.Duration
	Decline DeclineFunc

	UPIHandle  string
	UPIName    string
	Currency   string
	QREndpoint string

	NewPaymentID func() string
	Now          func() time.Time
	RequestID    string
}

func (s PaymentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s PaymentService) paymentID() string {
	if s.NewPaymentID != nil {
		return s.NewPaymentID()
	}
	return "TXN-" + uuid.NewString()
}

// Settle confirms pending via method and writes it through the store.
// Calling it twice with the same pending booking creates two rows.
func (s PaymentService) Settle(ctx context.Context, pending *models.PendingBooking, method string) (models.ConfirmedBooking, error) {
	if pending == nil {
		return models.ConfirmedBooking{}, domain.PreconditionError{Msg: "no pending booking to settle; create a booking draft first"}
	}
	m, ok := models.ParsePaymentMethod(method)
	if !ok {
		return models.ConfirmedBooking{}, domain.ValidationError{Field: "method", Msg: "must be Card or UPI"}
	}
	if s.Store == nil {
		return models.ConfirmedBooking{}, domain.StorageError{Op: "settle", Err: errors.New("no booking store configured")}
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	if err := s.wait(ctx); err != nil {
		utils.LogWarn(s.RequestID, "payment", "settle", "provider wait aborted: "+err.Error())
		return models.ConfirmedBooking{}, domain.TimeoutError{Op: "payment settlement", Err: err}
	}

	if s.Decline != nil {
		if reason := s.Decline(*pending, m); reason != "" {
			utils.LogWarn(s.RequestID, "payment", "settle", "declined: "+reason)
			return models.ConfirmedBooking{}, domain.DeclinedError{Reason: reason}
		}
	}

	booking := pending.Confirm(s.paymentID(), m, utils.FormatDate(s.now()))
	id, err := s.Store.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return models.ConfirmedBooking{}, domain.TimeoutError{Op: "payment settlement", Err: err}
		}
		utils.LogWarn(s.RequestID, "payment", "settle", "store write failed: "+err.Error())
		return models.ConfirmedBooking{}, err
	}
	booking.ID = id

	utils.LogEvent(s.RequestID, "payment", "settle",
		fmt.Sprintf("booking_id=%s payment_id=%s method=%s", booking.ID, booking.PaymentID, booking.Method))
	return booking, nil
}

func (s PaymentService) wait(ctx context.Context) error {
	if s.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.Delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RenderPaymentRequest derives the UPI URI and the QR image URL for display.
func (s PaymentService) RenderPaymentRequest(pending models.PendingBooking) (models.PaymentRequest, error) {
	amount, err := utils.ParseAmount(pending.Total)
	if err != nil {
		return models.PaymentRequest{}, domain.ValidationError{Field: "total", Msg: "no amount in " + strconv.Quote(pending.Total), Err: err}
	}
	currency := nonEmptyOr(s.Currency, "INR")
	uri := fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%s&cu=%s",
		upiParam(s.UPIHandle), upiParam(s.UPIName), utils.FormatMoney(amount), upiParam(currency))

	qr := ""
	if endpoint := strings.TrimSpace(s.QREndpoint); endpoint != "" {
		sep := "?"
		if strings.Contains(endpoint, "?") {
			sep = "&"
		}
		qr = endpoint + sep + "size=250x250&data=" + url.QueryEscape(uri)
	}

	return models.PaymentRequest{URI: uri, QRURL: qr, Amount: amount, Currency: currency}, nil
}

// RenderPaymentQR writes the payment URI as a JPEG QR code.
func (s PaymentService) RenderPaymentQR(pending models.PendingBooking, w io.Writer) error {
	req, err := s.RenderPaymentRequest(pending)
	if err != nil {
		return err
	}
	qrc, err := qrcode.New(req.URI)
	if err != nil {
		return fmt.Errorf("encode qr: %w", err)
	}
	return qrc.SaveTo(w)
}

// upiParam query-escapes a URI value but keeps '@' readable in VPA handles.
func upiParam(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "%40", "@")
}

func nonEmptyOr(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
