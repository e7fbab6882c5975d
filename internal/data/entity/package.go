package entity

import "strconv"

type ItineraryDay struct {
	Day        int      `json:"day" db:"day"`
	Title      string   `json:"title" db:"title"`
	Activities []string `json:"activities" db:"activities"`
}

// Package is a travel package shown in the public catalog.
type Package struct {
	ID            int            `json:"id" db:"id"`
	Title         string         `json:"title" db:"title"`
	Destination   string         `json:"destination" db:"destination"`
	Duration      string         `json:"duration" db:"duration"`
	Price         float64        `json:"price" db:"price"`
	OriginalPrice *float64       `json:"originalPrice,omitempty" db:"original_price"`
	Rating        float64        `json:"rating" db:"rating"`
	ReviewCount   int            `json:"reviewCount" db:"review_count"`
	Category      string         `json:"category" db:"category"`
	Image         string         `json:"image,omitempty" db:"image"`
	Highlights    []string       `json:"highlights" db:"highlights"`
	Included      []string       `json:"included" db:"included"`
	Itinerary     []ItineraryDay `json:"itinerary" db:"itinerary"`
	Gallery       []string       `json:"gallery" db:"gallery"`
}

func (p Package) CategoryName() string { return p.Category }

func (p Package) RecordID() string {
	if p.ID == 0 {
		return ""
	}
	return strconv.Itoa(p.ID)
}

// NaturalKey is empty: packages carry no uniqueness constraint besides the id.
func (p Package) NaturalKey() string { return "" }

// Discount returns how much cheaper the current price is than the original one.
func (p Package) Discount() float64 {
	if p.OriginalPrice == nil || *p.OriginalPrice <= p.Price {
		return 0
	}
	return *p.OriginalPrice - p.Price
}
