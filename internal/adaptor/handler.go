package adaptor

import (
	"travel-agency/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Catalog      *CatalogHandler
	Homepage     *HomepageHandler
	Destination  *DestinationHandler
	Category     *CategoryHandler
	PackageAdmin *PackageAdminHandler
	Booking      *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Catalog:      NewCatalogHandler(service.Catalog, log),
		Homepage:     NewHomepageHandler(service.Homepage, log),
		Destination:  NewDestinationHandler(service.Destination, log),
		Category:     NewCategoryHandler(service.Category, log),
		PackageAdmin: NewPackageAdminHandler(service.PackageAdmin, log),
		Booking:      NewBookingHandler(service.Booking, log),
	}
}
