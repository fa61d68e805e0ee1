package handlers

import (
	"bytes"
	"net/http"

	"travelbooking/internal/domain"
	"travelbooking/internal/domain/models"

	"github.com/gin-gonic/gin"
)

type paymentPayload struct {
	Booking *models.PendingBooking `json:"booking"`
	Method  string                 `json:"method"`
}

func bindPendingBooking(c *gin.Context) (paymentPayload, bool) {
	var p paymentPayload
	if !BindJSONOrError(c, &p) {
		return p, false
	}
	if p.Booking == nil {
		RespondDomainError(c, domain.PreconditionError{Msg: "no pending booking found; create a booking first"})
		return p, false
	}
	return p, true
}

// POST /api/payments/request
func PaymentRequest(c *gin.Context) {
	p, ok := bindPendingBooking(c)
	if !ok {
		return
	}
	req, err := paymentService(c).RenderPaymentRequest(*p.Booking)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// POST /api/payments/qr
func PaymentQR(c *gin.Context) {
	p, ok := bindPendingBooking(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := paymentService(c).RenderPaymentQR(*p.Booking, &buf); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/jpeg", buf.Bytes())
}

// POST /api/payments/settle
// Settlement is not idempotent: posting the same pending booking twice
// stores two bookings.
func SettlePayment(c *gin.Context) {
	var p paymentPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	booking, err := paymentService(c).Settle(c.Request.Context(), p.Booking, p.Method)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Payment successful via " + booking.Method + ". Your booking is confirmed.",
		"booking": booking,
	})
}
