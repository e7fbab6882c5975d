package usecase

import (
	"context"
	"fmt"

	"travel-agency/internal/catalog"
	"travel-agency/internal/data/entity"
	"travel-agency/internal/dto/request"
	"travel-agency/internal/dto/response"

	"go.uber.org/zap"
)

type DestinationService interface {
	List(ctx context.Context) ([]response.DestinationResponse, error)
	Create(ctx context.Context, req *request.DestinationRequest) (*response.DestinationResponse, error)
	Update(ctx context.Context, destinationID string, req *request.DestinationRequest) (*response.DestinationResponse, error)
	Delete(ctx context.Context, destinationID string) error
}

type destinationService struct {
	proxy       Proxy[entity.Destination]
	store       *catalog.Store
	homeCountry string
	log         *zap.Logger
}

func NewDestinationService(proxy Proxy[entity.Destination], store *catalog.Store, homeCountry string, log *zap.Logger) DestinationService {
	return &destinationService{
		proxy:       proxy,
		store:       store,
		homeCountry: homeCountry,
		log:         log.With(zap.String("service", "destination")),
	}
}

// List fetches the collection from the backend and replaces the cache.
func (s *destinationService) List(ctx context.Context) ([]response.DestinationResponse, error) {
	items, err := s.proxy.List(ctx)
	if err != nil {
		s.log.Error("Failed to list destinations", zap.Error(err))
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	return s.toResponses(items), nil
}

func (s *destinationService) Create(ctx context.Context, req *request.DestinationRequest) (*response.DestinationResponse, error) {
	created, err := s.proxy.Create(ctx, req.ToEntity(""))
	if err != nil {
		s.log.Warn("Failed to create destination",
			zap.Error(err),
			zap.String("name", req.Name),
			zap.String("country", req.Country),
		)
		return nil, fmt.Errorf("create destination: %w", err)
	}

	s.log.Info("Destination created", zap.String("destination_id", created.ID))
	res := s.toResponse(created, s.store.Packages())
	return &res, nil
}

func (s *destinationService) Update(ctx context.Context, destinationID string, req *request.DestinationRequest) (*response.DestinationResponse, error) {
	if _, err := s.find(ctx, destinationID); err != nil {
		return nil, err
	}

	updated, err := s.proxy.Update(ctx, req.ToEntity(destinationID))
	if err != nil {
		s.log.Warn("Failed to update destination",
			zap.Error(err),
			zap.String("destination_id", destinationID),
		)
		return nil, fmt.Errorf("update destination %s: %w", destinationID, err)
	}

	s.log.Info("Destination updated", zap.String("destination_id", destinationID))
	res := s.toResponse(updated, s.store.Packages())
	return &res, nil
}

// Delete is refused while any catalog package still points at the
// destination.
func (s *destinationService) Delete(ctx context.Context, destinationID string) error {
	dest, err := s.find(ctx, destinationID)
	if err != nil {
		return err
	}

	if n := countReferences(dest, s.store.Packages()); n > 0 {
		s.log.Info("Destination delete refused",
			zap.String("destination_id", destinationID),
			zap.Int("packages", n),
		)
		return fmt.Errorf("delete destination %s (%d packages): %w", dest.Name, n, ErrDestinationInUse)
	}

	if err := s.proxy.Delete(ctx, destinationID); err != nil {
		s.log.Error("Failed to delete destination",
			zap.Error(err),
			zap.String("destination_id", destinationID),
		)
		return fmt.Errorf("delete destination %s: %w", destinationID, err)
	}

	s.log.Info("Destination deleted", zap.String("destination_id", destinationID))
	return nil
}

// find looks the id up in the cache, refreshing it once on a miss.
func (s *destinationService) find(ctx context.Context, destinationID string) (entity.Destination, error) {
	if dest, ok := s.proxy.Find(destinationID); ok {
		return dest, nil
	}
	if _, err := s.proxy.List(ctx); err != nil {
		return entity.Destination{}, fmt.Errorf("find destination %s: %w", destinationID, err)
	}
	if dest, ok := s.proxy.Find(destinationID); ok {
		return dest, nil
	}
	return entity.Destination{}, fmt.Errorf("destination %s: %w", destinationID, ErrDestinationNotFound)
}

func (s *destinationService) toResponses(items []entity.Destination) []response.DestinationResponse {
	pkgs := s.store.Packages()
	out := make([]response.DestinationResponse, len(items))
	for i, d := range items {
		out[i] = s.toResponse(d, pkgs)
	}
	return out
}

func (s *destinationService) toResponse(d entity.Destination, pkgs []entity.Package) response.DestinationResponse {
	return response.DestinationResponse{
		ID:            d.ID,
		Name:          d.Name,
		Country:       d.Country,
		Scope:         d.Scope(s.homeCountry),
		PackagesCount: countReferences(d, pkgs),
	}
}

func countReferences(d entity.Destination, pkgs []entity.Package) int {
	n := 0
	for _, p := range pkgs {
		if d.ReferencedBy(p) {
			n++
		}
	}
	return n
}
