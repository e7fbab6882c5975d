package response

import (
	"time"

	"travel-agency/internal/booking"
	"travel-agency/internal/data/entity"
)

type BookingPackage struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Destination string  `json:"destination"`
	Duration    string  `json:"duration"`
	Price       float64 `json:"price"`
}

type BookingSessionResponse struct {
	ID           string                 `json:"id"`
	Step         string                 `json:"step"`
	StepNumber   int                    `json:"stepNumber"`
	Package      BookingPackage         `json:"package"`
	Draft        booking.Draft          `json:"draft"`
	Price        booking.PriceBreakdown `json:"price"`
	Confirmation *booking.Confirmation  `json:"confirmation,omitempty"`
	ExpiresAt    time.Time              `json:"expiresAt"`
}

func BookingPackageFrom(p entity.Package) BookingPackage {
	return BookingPackage{
		ID:          p.ID,
		Title:       p.Title,
		Destination: p.Destination,
		Duration:    p.Duration,
		Price:       p.Price,
	}
}
