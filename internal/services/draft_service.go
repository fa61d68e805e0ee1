package services

import (
	"fmt"
	"strings"
	"time"

	"travelbooking/internal/domain"
	"travelbooking/internal/domain/models"
	"travelbooking/internal/utils"
)

// DefaultDiscountRate is the promotional offer applied by ApplyDiscount.
const DefaultDiscountRate = 0.20

// Draft is an in-progress booking. It holds no contact data until Finalize.
type Draft struct {
	catalog models.Catalog
	rate    float64

	Package         string
	Travelers       int
	DiscountApplied bool
}

// SelectPackage sets the active package. Unknown names are ignored and
// report false.
func (d *Draft) SelectPackage(name string) bool {
	p, ok := d.catalog.Lookup(name)
	if !ok {
		return false
	}
	d.Package = p.Name
	return true
}

// SetTravelers coerces raw form input to a traveler count. Non-numeric or
// missing input is 0 travelers; the caller guards against that at submit.
func (d *Draft) SetTravelers(raw string) {
	d.SetTravelerCount(utils.ParseLeadingInt(raw))
}

func (d *Draft) SetTravelerCount(n int) {
	if n < 0 {
		n = 0
	}
	d.Travelers = n
}

// ApplyDiscount does not check eligibility; any draft may take the offer.
func (d *Draft) ApplyDiscount() { d.DiscountApplied = true }

func (d *Draft) CancelDiscount() { d.DiscountApplied = false }

func (d *Draft) ComputeTotal() models.PriceQuote {
	unit := d.catalog.UnitPrice(d.Package)
	q := models.PriceQuote{
		Package:   d.Package,
		UnitPrice: unit,
		Travelers: d.Travelers,
		Original:  unit * int64(d.Travelers),
	}
	if d.DiscountApplied {
		discounted := float64(q.Original) * (1 - d.rate)
		q.Discounted = &discounted
	}
	return q
}

// DraftService builds drafts and turns them into pending bookings.
type DraftService struct {
	Catalog      models.Catalog
	DiscountRate float64
	Now          func() time.Time
	RequestID    string
}

func (s DraftService) catalog() models.Catalog {
	if len(s.Catalog) > 0 {
		return s.Catalog
	}
	return models.DefaultCatalog()
}

func (s DraftService) rate() float64 {
	if s.DiscountRate > 0 && s.DiscountRate < 1 {
		return s.DiscountRate
	}
	return DefaultDiscountRate
}

func (s DraftService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Packages lists the catalog in display order.
func (s DraftService) Packages() models.Catalog {
	return s.catalog()
}

func (s DraftService) NewDraft() *Draft {
	return &Draft{catalog: s.catalog(), rate: s.rate()}
}

// Finalize materializes the pending booking handed to settlement. The account
// email comes from the session when one is active, else from the form. Blank
// contact fields are prefilled from the session.
func (s DraftService) Finalize(d *Draft, contact models.Contact, sess *domain.Session) models.PendingBooking {
	if d == nil {
		d = s.NewDraft()
	}
	name := contact.Name
	email := contact.Email
	if sess != nil {
		if strings.TrimSpace(name) == "" {
			name = sess.Name
		}
		if strings.TrimSpace(email) == "" {
			email = sess.Email
		}
	}

	quote := d.ComputeTotal()
	pending := models.PendingBooking{
		Name:      name,
		Email:     email,
		Package:   d.Package,
		Travelers: d.Travelers,
		Total:     quote.Display(),
		Date:      utils.FormatInstant(s.now()),
		Status:    domain.StatusPendingPayment,
		UserEmail: sess.EmailOr(email),
	}

	utils.LogEvent(s.RequestID, "draft", "finalize",
		fmt.Sprintf("package=%q travelers=%d total=%s discount=%t", pending.Package, pending.Travelers, pending.Total, d.DiscountApplied))
	return pending
}
