package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"travelbooking/internal/domain"
)

func TestReceiptGenerate(t *testing.T) {
	store := &memoryStore{}
	booking, err := PaymentService{Store: store}.Settle(context.Background(), pendingPremium(), "UPI")
	if err != nil {
		t.Fatalf("Settle returned error: %v", err)
	}

	svc := ReceiptService{Store: store, Now: fixedClock}
	pdf, filename, err := svc.GenerateReceipt(context.Background(), booking.ID, "a@x.com")
	if err != nil {
		t.Fatalf("GenerateReceipt returned error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("expected PDF bytes")
	}
	if !strings.HasPrefix(filename, "RECEIPT_premium-package_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("filename = %q", filename)
	}
}

func TestReceiptRequiresOwner(t *testing.T) {
	store := &memoryStore{}
	booking, err := PaymentService{Store: store}.Settle(context.Background(), pendingPremium(), "Card")
	if err != nil {
		t.Fatalf("Settle returned error: %v", err)
	}
	svc := ReceiptService{Store: store}

	if _, _, err := svc.GenerateReceipt(context.Background(), booking.ID, "someone@x.com"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found for other email, got %v", err)
	}
	if _, _, err := svc.GenerateReceipt(context.Background(), booking.ID, ""); !domain.IsValidation(err) {
		t.Fatalf("expected validation error without email, got %v", err)
	}
}

func TestPdfAmount(t *testing.T) {
	if got := pdfAmount("₹20,000"); got != "INR 20,000" {
		t.Fatalf("pdfAmount = %q", got)
	}
	if got := shortID("3f2a9c1e-aaaa-bbbb"); got != "3f2a9c1e" {
		t.Fatalf("shortID = %q", got)
	}
}
