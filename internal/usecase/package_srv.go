package usecase

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"

	"travel-agency/internal/catalog"
	"travel-agency/internal/data/entity"
	"travel-agency/internal/dto/request"
	"travel-agency/internal/dto/response"

	"go.uber.org/zap"
)

type PackageAdminService interface {
	List(ctx context.Context) ([]response.PackageResponse, error)
	Create(ctx context.Context, req *request.PackageRequest) (*response.PackageResponse, error)
	Update(ctx context.Context, packageID string, req *request.PackageRequest) (*response.PackageResponse, error)
	Delete(ctx context.Context, packageID string) error
}

type packageAdminService struct {
	proxy  Proxy[entity.Package]
	store  *catalog.Store
	log    *zap.Logger
	loaded atomic.Bool
}

func NewPackageAdminService(proxy Proxy[entity.Package], store *catalog.Store, log *zap.Logger) PackageAdminService {
	return &packageAdminService{
		proxy: proxy,
		store: store,
		log:   log.With(zap.String("service", "package_admin")),
	}
}

func (s *packageAdminService) List(ctx context.Context) ([]response.PackageResponse, error) {
	items, err := s.proxy.List(ctx)
	if err != nil {
		s.log.Error("Failed to list packages", zap.Error(err))
		return nil, fmt.Errorf("list packages: %w", err)
	}
	s.loaded.Store(true)
	return response.PackagesToResponse(items), nil
}

func (s *packageAdminService) Create(ctx context.Context, req *request.PackageRequest) (*response.PackageResponse, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	created, err := s.proxy.Create(ctx, req.ToEntity(0))
	if err != nil {
		s.log.Warn("Failed to create package", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("create package: %w", err)
	}

	s.publish()
	s.log.Info("Package created", zap.Int("package_id", created.ID))
	res := response.PackageToResponse(created)
	return &res, nil
}

func (s *packageAdminService) Update(ctx context.Context, packageID string, req *request.PackageRequest) (*response.PackageResponse, error) {
	id, err := s.findID(ctx, packageID)
	if err != nil {
		return nil, err
	}

	updated, err := s.proxy.Update(ctx, req.ToEntity(id))
	if err != nil {
		s.log.Warn("Failed to update package", zap.Error(err), zap.Int("package_id", id))
		return nil, fmt.Errorf("update package %d: %w", id, err)
	}

	s.publish()
	s.log.Info("Package updated", zap.Int("package_id", id))
	res := response.PackageToResponse(updated)
	return &res, nil
}

func (s *packageAdminService) Delete(ctx context.Context, packageID string) error {
	id, err := s.findID(ctx, packageID)
	if err != nil {
		return err
	}

	if err := s.proxy.Delete(ctx, strconv.Itoa(id)); err != nil {
		s.log.Error("Failed to delete package", zap.Error(err), zap.Int("package_id", id))
		return fmt.Errorf("delete package %d: %w", id, err)
	}

	s.publish()
	s.log.Info("Package deleted", zap.Int("package_id", id))
	return nil
}

// ensureLoaded fills the proxy cache once so that publishing it never
// replaces the catalog with a partial collection.
func (s *packageAdminService) ensureLoaded(ctx context.Context) error {
	if s.loaded.Load() {
		return nil
	}
	if _, err := s.proxy.List(ctx); err != nil {
		return fmt.Errorf("load packages: %w", err)
	}
	s.loaded.Store(true)
	return nil
}

func (s *packageAdminService) findID(ctx context.Context, packageID string) (int, error) {
	id, err := strconv.Atoi(packageID)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("package %q: %w", packageID, ErrPackageNotFound)
	}
	if err := s.ensureLoaded(ctx); err != nil {
		return 0, err
	}
	if _, ok := s.proxy.Find(strconv.Itoa(id)); !ok {
		return 0, fmt.Errorf("package %d: %w", id, ErrPackageNotFound)
	}
	return id, nil
}

// publish replaces the public catalog's packages with the proxy cache.
func (s *packageAdminService) publish() {
	s.store.ReplacePackages(s.proxy.Items())
}
