package usecase

import (
	"context"
	"fmt"
	"strconv"

	"travel-agency/internal/catalog"
	"travel-agency/internal/data/entity"
	"travel-agency/internal/dto/request"
	"travel-agency/internal/dto/response"
	"travel-agency/pkg/utils"

	"go.uber.org/zap"
)

const relatedLimit = 3

type CatalogService interface {
	ListPackages(ctx context.Context, req *request.CatalogQuery) (*response.PaginatedResponse[response.PackageResponse], error)
	GetPackage(ctx context.Context, packageID string) (*response.PackageDetailResponse, error)
	PackageFacets(ctx context.Context) *response.PackageFacets

	ListBlogPosts(ctx context.Context, req *request.CatalogQuery) (*response.PaginatedResponse[entity.BlogPost], error)
	GetBlogPost(ctx context.Context, postID string) (*response.BlogPostDetailResponse, error)
	BlogFacets(ctx context.Context) *response.BlogFacets

	Refresh(ctx context.Context) (*response.RefreshResponse, error)
}

type catalogService struct {
	store  *catalog.Store
	source catalog.Source
	log    *zap.Logger
}

func NewCatalogService(store *catalog.Store, source catalog.Source, log *zap.Logger) CatalogService {
	return &catalogService{
		store:  store,
		source: source,
		log:    log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListPackages(ctx context.Context, req *request.CatalogQuery) (*response.PaginatedResponse[response.PackageResponse], error) {
	results := catalog.QueryPackages(s.store.Packages(), req.Filters())

	page, perPage := req.CurrentPage(), req.Limit()
	start, end := utils.PageBounds(len(results), page, perPage)

	s.log.Debug("Packages queried",
		zap.String("search", req.Search),
		zap.String("category", req.Category),
		zap.String("price", req.Price),
		zap.String("sort", req.Sort),
		zap.Int("matches", len(results)),
	)

	return response.NewPaginatedResponse(response.PackagesToResponse(results[start:end]), page, perPage, int64(len(results))), nil
}

func (s *catalogService) GetPackage(ctx context.Context, packageID string) (*response.PackageDetailResponse, error) {
	id, err := strconv.Atoi(packageID)
	if err != nil {
		return nil, fmt.Errorf("package %q: %w", packageID, ErrPackageNotFound)
	}

	pkg, ok := s.store.Package(id)
	if !ok {
		return nil, fmt.Errorf("package %d: %w", id, ErrPackageNotFound)
	}

	related := make([]response.PackageResponse, 0, relatedLimit)
	sameCategory := catalog.QueryPackages(s.store.Packages(), catalog.Filters{
		Category: pkg.Category,
		Sort:     catalog.SortRating,
	})
	for _, p := range sameCategory {
		if len(related) == relatedLimit {
			break
		}
		if p.ID != pkg.ID {
			related = append(related, response.PackageToResponse(p))
		}
	}

	return &response.PackageDetailResponse{
		PackageResponse: response.PackageToResponse(pkg),
		Related:         related,
	}, nil
}

func (s *catalogService) PackageFacets(ctx context.Context) *response.PackageFacets {
	pkgs := s.store.Packages()
	return &response.PackageFacets{
		Total:       len(pkgs),
		Categories:  catalog.CategoryCounts(pkgs),
		PriceRanges: []catalog.PriceRange{catalog.PriceAll, catalog.PriceUnder1500, catalog.Price1500To2500, catalog.PriceOver2500},
		SortKeys:    []catalog.SortKey{catalog.SortFeatured, catalog.SortPriceLow, catalog.SortPriceHigh, catalog.SortRating},
	}
}

func (s *catalogService) ListBlogPosts(ctx context.Context, req *request.CatalogQuery) (*response.PaginatedResponse[entity.BlogPost], error) {
	results := catalog.QueryBlogPosts(s.store.BlogPosts(), req.Filters())

	page, perPage := req.CurrentPage(), req.Limit()
	start, end := utils.PageBounds(len(results), page, perPage)

	return response.NewPaginatedResponse(response.BlogPostSummaries(results[start:end]), page, perPage, int64(len(results))), nil
}

func (s *catalogService) GetBlogPost(ctx context.Context, postID string) (*response.BlogPostDetailResponse, error) {
	id, err := strconv.Atoi(postID)
	if err != nil {
		return nil, fmt.Errorf("blog post %q: %w", postID, ErrBlogPostNotFound)
	}

	post, ok := s.store.BlogPost(id)
	if !ok {
		return nil, fmt.Errorf("blog post %d: %w", id, ErrBlogPostNotFound)
	}

	related := make([]entity.BlogPost, 0, relatedLimit)
	sameCategory := catalog.QueryBlogPosts(s.store.BlogPosts(), catalog.Filters{
		Category: post.Category,
		Sort:     catalog.SortLatest,
	})
	for _, p := range sameCategory {
		if len(related) == relatedLimit {
			break
		}
		if p.ID != post.ID {
			related = append(related, response.BlogPostSummary(p))
		}
	}

	return &response.BlogPostDetailResponse{BlogPost: post, Related: related}, nil
}

func (s *catalogService) BlogFacets(ctx context.Context) *response.BlogFacets {
	posts := s.store.BlogPosts()
	return &response.BlogFacets{
		Total:      len(posts),
		Categories: catalog.CategoryCounts(posts),
		Tags:       catalog.DistinctTags(posts),
	}
}

// Refresh reloads both collections from the configured source. The store is
// left as it was when either load fails.
func (s *catalogService) Refresh(ctx context.Context) (*response.RefreshResponse, error) {
	if err := catalog.Load(ctx, s.store, s.source, s.log); err != nil {
		return nil, fmt.Errorf("refresh catalog: %w", err)
	}

	return &response.RefreshResponse{
		Packages:  len(s.store.Packages()),
		BlogPosts: len(s.store.BlogPosts()),
	}, nil
}
