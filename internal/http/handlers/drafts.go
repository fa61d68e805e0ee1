package handlers

import (
	"net/http"

	"travelbooking/internal/domain/models"
	"travelbooking/internal/http/middleware"
	"travelbooking/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
)

// GET /api/packages
func ListPackages(c *gin.Context) {
	c.JSON(http.StatusOK, draftService(c).Packages())
}

// draftFromJSON replays a booking form onto a fresh draft. travelers may be
// any JSON type and is coerced like a form field.
func draftFromJSON(svc services.DraftService, raw []byte) (*services.Draft, bool) {
	d := svc.NewDraft()
	known := d.SelectPackage(gjson.GetBytes(raw, "package").String())
	d.SetTravelers(gjson.GetBytes(raw, "travelers").String())
	if gjson.GetBytes(raw, "discount").Bool() || gjson.GetBytes(raw, "discountApplied").Bool() {
		d.ApplyDiscount()
	}
	return d, known
}

func readDraftJSON(c *gin.Context) ([]byte, bool) {
	raw, ok := readRawJSON(c)
	if !ok {
		return nil, false
	}
	if !gjson.ParseBytes(raw).IsObject() {
		respondError(c, http.StatusBadRequest, "invalid_json", "payload must be an object", nil)
		return nil, false
	}
	return raw, true
}

// POST /api/drafts/quote
func QuoteDraft(c *gin.Context) {
	raw, ok := readDraftJSON(c)
	if !ok {
		return
	}
	d, known := draftFromJSON(draftService(c), raw)
	quote := d.ComputeTotal()
	c.JSON(http.StatusOK, gin.H{
		"quote":        quote,
		"total":        quote.Display(),
		"packageKnown": known,
	})
}

// POST /api/drafts
// Returns the pending booking; the client hands it back to /api/payments/settle.
func CreateDraft(c *gin.Context) {
	raw, ok := readDraftJSON(c)
	if !ok {
		return
	}
	svc := draftService(c)
	d, _ := draftFromJSON(svc, raw)
	contact := models.Contact{
		Name:  gjson.GetBytes(raw, "name").String(),
		Email: gjson.GetBytes(raw, "email").String(),
	}
	pending := svc.Finalize(d, contact, middleware.GetSession(c))
	c.JSON(http.StatusOK, gin.H{
		"booking": pending,
		"quote":   d.ComputeTotal(),
	})
}
