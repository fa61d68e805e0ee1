package models

import "travelbooking/internal/utils"

// PriceQuote is the derived price of a draft; it is never stored.
type PriceQuote struct {
	Package   string `json:"package"`
	UnitPrice int64  `json:"unitPrice"`
	Travelers int    `json:"travelers"`
	Original  int64  `json:"original"`
	// Discounted is nil unless a discount is applied to the draft.
	Discounted *float64 `json:"discounted"`
}

// Payable is the amount due: the discounted total if any, else the original.
func (q PriceQuote) Payable() float64 {
	if q.Discounted != nil {
		return *q.Discounted
	}
	return float64(q.Original)
}

// Display renders Payable as a currency string, e.g. "₹20,000".
func (q PriceQuote) Display() string {
	return utils.FormatRupee(q.Payable())
}
