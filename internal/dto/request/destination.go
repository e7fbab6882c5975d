package request

import (
	"strings"

	"travel-agency/internal/data/entity"
)

type DestinationRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Country string `json:"country" validate:"required,max=100"`
}

// ToEntity trims the form input before it is checked for duplicates and sent.
func (r DestinationRequest) ToEntity(id string) entity.Destination {
	return entity.Destination{
		ID:      id,
		Name:    strings.TrimSpace(r.Name),
		Country: strings.TrimSpace(r.Country),
	}
}
