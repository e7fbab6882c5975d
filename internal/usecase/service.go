package usecase

import (
	"context"
	"time"

	"travel-agency/internal/booking"
	"travel-agency/internal/catalog"
	"travel-agency/internal/data/entity"
	"travel-agency/internal/remote"
	"travel-agency/pkg/utils"

	"go.uber.org/zap"
)

// Proxy is the CRUD surface of a remote collection with a local cache.
type Proxy[T remote.Record] interface {
	Items() []T
	Find(id string) (T, bool)
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, rec T) (T, error)
	Delete(ctx context.Context, id string) error
}

// HomepageStore reads and writes the homepage document on the backend.
type HomepageStore interface {
	Get(ctx context.Context) (entity.Homepage, error)
	Put(ctx context.Context, doc entity.Homepage) (entity.Homepage, error)
}

// Deps is everything the services are built from.
type Deps struct {
	Store        *catalog.Store
	Source       catalog.Source
	Packages     Proxy[entity.Package]
	Destinations Proxy[entity.Destination]
	Categories   Proxy[entity.Category]
	Homepage     HomepageStore
	Submitter    booking.Submitter
}

type Service struct {
	Catalog      CatalogService
	Destination  DestinationService
	Category     CategoryService
	PackageAdmin PackageAdminService
	Homepage     HomepageService
	Booking      BookingService
}

func NewService(deps Deps, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Catalog:      NewCatalogService(deps.Store, deps.Source, log),
		Destination:  NewDestinationService(deps.Destinations, deps.Store, config.App.HomeCountry, log),
		Category:     NewCategoryService(deps.Categories, deps.Store, log),
		PackageAdmin: NewPackageAdminService(deps.Packages, deps.Store, log),
		Homepage:     NewHomepageService(deps.Homepage, deps.Store, log),
		Booking:      NewBookingService(deps.Store, deps.Submitter, config.Booking.SessionTTL, log),
	}
}

// Init runs the fetch-and-populate step of every remote-backed holder.
// Failures are logged and leave the holder with its initial contents.
func (s *Service) Init(ctx context.Context, log *zap.Logger) {
	steps := []struct {
		name string
		run  func(context.Context) error
	}{
		{"catalog", func(ctx context.Context) error {
			_, err := s.Catalog.Refresh(ctx)
			return err
		}},
		{"destinations", func(ctx context.Context) error {
			_, err := s.Destination.List(ctx)
			return err
		}},
		{"categories", func(ctx context.Context) error {
			_, err := s.Category.List(ctx)
			return err
		}},
		{"homepage", s.Homepage.Load},
	}

	for _, step := range steps {
		stepCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
		if err := step.run(stepCtx); err != nil {
			log.Warn("Initial load failed", zap.String("holder", step.name), zap.Error(err))
		}
		cancel()
	}
}
