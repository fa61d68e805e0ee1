package models

import (
	"strings"

	"github.com/gosimple/slug"
)

// TourPackage is one entry of the fixed package catalog. A zero UnitPrice
// means the price is negotiated out-of-band (custom packages).
type TourPackage struct {
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	UnitPrice int64  `json:"unitPrice"`
}

// Catalog is an ordered list of bookable packages.
type Catalog []TourPackage

// DefaultCatalog returns the packages sold on the site.
func DefaultCatalog() Catalog {
	return Catalog{
		newPackage("Standard Package", 8500),
		newPackage("Premium Package", 12500),
		newPackage("Luxury Package", 18000),
		newPackage("Custom Package", 0),
	}
}

func newPackage(name string, price int64) TourPackage {
	return TourPackage{Name: name, Slug: slug.Make(name), UnitPrice: price}
}

// Lookup finds a package by exact display name or by slug.
func (c Catalog) Lookup(name string) (TourPackage, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return TourPackage{}, false
	}
	for _, p := range c {
		if p.Name == name {
			return p, true
		}
	}
	s := slug.Make(name)
	for _, p := range c {
		if p.Slug == s {
			return p, true
		}
	}
	return TourPackage{}, false
}

// UnitPrice resolves the per-traveler price; unknown packages price at 0.
func (c Catalog) UnitPrice(name string) int64 {
	p, ok := c.Lookup(name)
	if !ok {
		return 0
	}
	return p.UnitPrice
}
