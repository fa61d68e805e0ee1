package models

import "strings"

// PaymentMethod is how a booking was settled.
type PaymentMethod string

const (
	MethodCard PaymentMethod = "Card"
	MethodUPI  PaymentMethod = "UPI"
)

// ParsePaymentMethod accepts "Card"/"UPI" case-insensitively.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "card":
		return MethodCard, true
	case "upi":
		return MethodUPI, true
	default:
		return "", false
	}
}

// PaymentRequest describes what the payer should pay. It is display-only and
// has no effect on settlement.
type PaymentRequest struct {
	URI      string  `json:"uri"`
	QRURL    string  `json:"qrUrl"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}
