package request

import (
	"strings"

	"travel-agency/internal/data/entity"
)

type ItineraryDayRequest struct {
	Day        int      `json:"day" validate:"min=1"`
	Title      string   `json:"title" validate:"required,max=200"`
	Activities []string `json:"activities" validate:"dive,required"`
}

type PackageRequest struct {
	Title         string                `json:"title" validate:"required,max=200"`
	Destination   string                `json:"destination" validate:"required,max=200"`
	Duration      string                `json:"duration" validate:"required,max=50"`
	Price         float64               `json:"price" validate:"gt=0"`
	OriginalPrice *float64              `json:"originalPrice,omitempty" validate:"omitempty,gt=0"`
	Rating        float64               `json:"rating" validate:"min=0,max=5"`
	ReviewCount   int                   `json:"reviewCount" validate:"min=0"`
	Category      string                `json:"category" validate:"required,max=50"`
	Image         string                `json:"image"`
	Highlights    []string              `json:"highlights" validate:"dive,required"`
	Included      []string              `json:"included" validate:"dive,required"`
	Itinerary     []ItineraryDayRequest `json:"itinerary" validate:"dive"`
	Gallery       []string              `json:"gallery"`
}

func (r PackageRequest) ToEntity(id int) entity.Package {
	itinerary := make([]entity.ItineraryDay, len(r.Itinerary))
	for i, day := range r.Itinerary {
		itinerary[i] = entity.ItineraryDay{
			Day:        day.Day,
			Title:      strings.TrimSpace(day.Title),
			Activities: day.Activities,
		}
	}

	return entity.Package{
		ID:            id,
		Title:         strings.TrimSpace(r.Title),
		Destination:   strings.TrimSpace(r.Destination),
		Duration:      strings.TrimSpace(r.Duration),
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Rating:        r.Rating,
		ReviewCount:   r.ReviewCount,
		Category:      strings.TrimSpace(r.Category),
		Image:         r.Image,
		Highlights:    r.Highlights,
		Included:      r.Included,
		Itinerary:     itinerary,
		Gallery:       r.Gallery,
	}
}
