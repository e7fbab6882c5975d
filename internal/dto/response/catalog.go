package response

import (
	"travel-agency/internal/catalog"
	"travel-agency/internal/data/entity"
)

type PackageResponse struct {
	entity.Package
	Discount float64 `json:"discount,omitempty"`
}

type PackageDetailResponse struct {
	PackageResponse
	Related []PackageResponse `json:"related"`
}

type PackageFacets struct {
	Total       int                     `json:"total"`
	Categories  []catalog.CategoryCount `json:"categories"`
	PriceRanges []catalog.PriceRange    `json:"priceRanges"`
	SortKeys    []catalog.SortKey       `json:"sortKeys"`
}

type BlogPostDetailResponse struct {
	entity.BlogPost
	Related []entity.BlogPost `json:"related"`
}

type BlogFacets struct {
	Total      int                     `json:"total"`
	Categories []catalog.CategoryCount `json:"categories"`
	Tags       []string                `json:"tags"`
}

func PackageToResponse(p entity.Package) PackageResponse {
	return PackageResponse{Package: p, Discount: p.Discount()}
}

func PackagesToResponse(pkgs []entity.Package) []PackageResponse {
	out := make([]PackageResponse, len(pkgs))
	for i, p := range pkgs {
		out[i] = PackageToResponse(p)
	}
	return out
}

// BlogPostSummary drops the article body for listings.
func BlogPostSummary(post entity.BlogPost) entity.BlogPost {
	post.Content = ""
	return post
}

func BlogPostSummaries(posts []entity.BlogPost) []entity.BlogPost {
	out := make([]entity.BlogPost, len(posts))
	for i, p := range posts {
		out[i] = BlogPostSummary(p)
	}
	return out
}
