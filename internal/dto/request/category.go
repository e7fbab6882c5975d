package request

import (
	"strings"

	"travel-agency/internal/data/entity"
)

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description" validate:"max=300"`
	Color       string `json:"color" validate:"required,palette"`
	Icon        string `json:"icon" validate:"required,icon"`
}

func (r CategoryRequest) ToEntity(id string) entity.Category {
	return entity.Category{
		ID:          id,
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Color:       entity.Color(r.Color),
		Icon:        entity.Icon(r.Icon),
	}
}
