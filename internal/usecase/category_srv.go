package usecase

import (
	"context"
	"fmt"

	"travel-agency/internal/catalog"
	"travel-agency/internal/data/entity"
	"travel-agency/internal/dto/request"

	"go.uber.org/zap"
)

type CategoryService interface {
	List(ctx context.Context) ([]entity.Category, error)
	Create(ctx context.Context, req *request.CategoryRequest) (*entity.Category, error)
	Update(ctx context.Context, categoryID string, req *request.CategoryRequest) (*entity.Category, error)
	Delete(ctx context.Context, categoryID string) error
}

type categoryService struct {
	proxy Proxy[entity.Category]
	store *catalog.Store
	log   *zap.Logger
}

func NewCategoryService(proxy Proxy[entity.Category], store *catalog.Store, log *zap.Logger) CategoryService {
	return &categoryService{
		proxy: proxy,
		store: store,
		log:   log.With(zap.String("service", "category")),
	}
}

func (s *categoryService) List(ctx context.Context) ([]entity.Category, error) {
	items, err := s.proxy.List(ctx)
	if err != nil {
		s.log.Error("Failed to list categories", zap.Error(err))
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return s.withCounts(items), nil
}

func (s *categoryService) Create(ctx context.Context, req *request.CategoryRequest) (*entity.Category, error) {
	created, err := s.proxy.Create(ctx, req.ToEntity(""))
	if err != nil {
		s.log.Warn("Failed to create category", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.Info("Category created", zap.String("category_id", created.ID))
	created.PackagesCount = s.packagesCount(created.Name)
	return &created, nil
}

func (s *categoryService) Update(ctx context.Context, categoryID string, req *request.CategoryRequest) (*entity.Category, error) {
	if _, err := s.find(ctx, categoryID); err != nil {
		return nil, err
	}

	updated, err := s.proxy.Update(ctx, req.ToEntity(categoryID))
	if err != nil {
		s.log.Warn("Failed to update category", zap.Error(err), zap.String("category_id", categoryID))
		return nil, fmt.Errorf("update category %s: %w", categoryID, err)
	}

	s.log.Info("Category updated", zap.String("category_id", categoryID))
	updated.PackagesCount = s.packagesCount(updated.Name)
	return &updated, nil
}

// Delete is refused while the category still has packages.
func (s *categoryService) Delete(ctx context.Context, categoryID string) error {
	category, err := s.find(ctx, categoryID)
	if err != nil {
		return err
	}

	if n := s.packagesCount(category.Name); n > 0 {
		return fmt.Errorf("delete category %s (%d packages): %w", category.Name, n, ErrCategoryInUse)
	}

	if err := s.proxy.Delete(ctx, categoryID); err != nil {
		s.log.Error("Failed to delete category", zap.Error(err), zap.String("category_id", categoryID))
		return fmt.Errorf("delete category %s: %w", categoryID, err)
	}

	s.log.Info("Category deleted", zap.String("category_id", categoryID))
	return nil
}

func (s *categoryService) find(ctx context.Context, categoryID string) (entity.Category, error) {
	if c, ok := s.proxy.Find(categoryID); ok {
		return c, nil
	}
	if _, err := s.proxy.List(ctx); err != nil {
		return entity.Category{}, fmt.Errorf("find category %s: %w", categoryID, err)
	}
	if c, ok := s.proxy.Find(categoryID); ok {
		return c, nil
	}
	return entity.Category{}, fmt.Errorf("category %s: %w", categoryID, ErrCategoryNotFound)
}

// packagesCount is derived from the live catalog on every call.
func (s *categoryService) packagesCount(name string) int {
	return catalog.CountByCategory(s.store.Packages(), name)
}

func (s *categoryService) withCounts(items []entity.Category) []entity.Category {
	pkgs := s.store.Packages()
	for i := range items {
		items[i].PackagesCount = catalog.CountByCategory(pkgs, items[i].Name)
	}
	return items
}
