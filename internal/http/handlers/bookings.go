package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"travelbooking/internal/domain"
	"travelbooking/internal/domain/models"
	"travelbooking/internal/http/middleware"
	"travelbooking/internal/repositories"
	"travelbooking/internal/services"
	"travelbooking/internal/utils"

	"github.com/gin-gonic/gin"
)

// bookingPayload accepts travelers as a number or a numeric string; the
// browser client posts form values verbatim.
type bookingPayload struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Package   string    `json:"package"`
	Travelers Stringish `json:"travelers"`
	Total     string    `json:"total"`
	Date      string    `json:"date"`
	Status    string    `json:"status"`
	UserEmail string    `json:"userEmail"`
	PaymentID string    `json:"paymentId"`
	Method    string    `json:"method"`
}

func (p bookingPayload) toModel() (models.ConfirmedBooking, error) {
	travelers := 0
	if raw := strings.TrimSpace(p.Travelers.String()); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return models.ConfirmedBooking{}, domain.ValidationError{Field: "travelers", Msg: "must be an integer", Err: err}
		}
		travelers = n
	}
	return models.ConfirmedBooking{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Package:   p.Package,
		Travelers: travelers,
		Total:     p.Total,
		Date:      p.Date,
		Status:    p.Status,
		UserEmail: p.UserEmail,
		PaymentID: p.PaymentID,
		Method:    p.Method,
	}, nil
}

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	raw, ok := readRawJSON(c)
	if !ok {
		return
	}
	var payload bookingPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_json", "invalid payload: "+err.Error(), nil)
		return
	}
	booking, err := payload.toModel()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	id, err := repositories.BookingRepository{}.Create(c.Request.Context(), booking)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "booking", "create", "booking_id="+id)
	c.JSON(http.StatusOK, gin.H{"message": "Booking saved", "id": id})
}

// GET /api/bookings?email=
// Optional sort/order request an explicit ordering; otherwise rows come back
// in storage order.
func ListBookings(c *gin.Context) {
	var f models.BookingFilter
	if email := c.Query("email"); email != "" {
		f.UserEmail = &email
	}
	if field := strings.TrimSpace(c.Query("sort")); field != "" {
		f.Sort = &domain.Sort{Field: field, Direction: c.Query("order")}
	}
	listBookings(c, f)
}

// GET /api/bookings/mine
func MyBookings(c *gin.Context) {
	sess := middleware.GetSession(c)
	if sess == nil {
		RespondDomainError(c, domain.UnauthorizedError{Msg: "login required"})
		return
	}
	listBookings(c, models.ByUserEmail(sess.Email))
}

func listBookings(c *gin.Context, f models.BookingFilter) {
	rows, err := repositories.BookingRepository{}.List(c.Request.Context(), f)
	if err != nil {
		if domain.IsStorage(err) {
			respondError(c, http.StatusBadRequest, "query_failed", err.Error(), nil)
			return
		}
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /api/bookings/:id/receipt?email=
// The email defaults to the session email.
func GetBookingReceipt(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		email = middleware.GetSession(c).EmailOr("")
	}
	svc := services.ReceiptService{
		Store:     repositories.BookingRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.GenerateReceipt(c.Request.Context(), c.Param("id"), email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
