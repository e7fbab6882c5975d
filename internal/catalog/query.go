package catalog

import (
	"cmp"
	"slices"
	"strings"

	"travel-agency/internal/data/entity"
)

// AllCategories is the category filter value that matches every item.
const AllCategories = "all"

type PriceRange string

const (
	PriceAll        PriceRange = "all"
	PriceUnder1500  PriceRange = "under-1500"
	Price1500To2500 PriceRange = "1500-2500"
	PriceOver2500   PriceRange = "over-2500"
)

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortLatest    SortKey = "latest"
	SortOldest    SortKey = "oldest"
	SortTitle     SortKey = "title"
)

// Filters are the list parameters of a catalog view. Zero values and
// unrecognised values impose no constraint.
type Filters struct {
	SearchTerm string
	Category   string
	PriceRange PriceRange
	Sort       SortKey
}

// QueryPackages returns the packages matching f in f.Sort order. The input
// slice is never modified.
func QueryPackages(packages []entity.Package, f Filters) []entity.Package {
	return query(packages, func(p entity.Package) bool {
		return matchesSearch(f.SearchTerm, p.Title, p.Destination) &&
			matchesCategory(f.Category, p.Category) &&
			f.PriceRange.Contains(p.Price)
	}, packageOrder(f.Sort))
}

// QueryBlogPosts returns the posts matching f in f.Sort order. Price ranges
// do not apply to posts.
func QueryBlogPosts(posts []entity.BlogPost, f Filters) []entity.BlogPost {
	return query(posts, func(b entity.BlogPost) bool {
		return matchesSearch(f.SearchTerm, b.Title, b.Excerpt, b.Author) &&
			matchesCategory(f.Category, b.Category)
	}, blogOrder(f.Sort))
}

func query[T any](items []T, keep func(T) bool, order func(a, b T) int) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	if order != nil {
		slices.SortStableFunc(out, order)
	}
	return out
}

func packageOrder(key SortKey) func(a, b entity.Package) int {
	switch key {
	case SortPriceLow:
		return func(a, b entity.Package) int { return cmp.Compare(a.Price, b.Price) }
	case SortPriceHigh:
		return func(a, b entity.Package) int { return cmp.Compare(b.Price, a.Price) }
	case SortRating:
		return func(a, b entity.Package) int { return cmp.Compare(b.Rating, a.Rating) }
	default:
		return nil
	}
}

func blogOrder(key SortKey) func(a, b entity.BlogPost) int {
	switch key {
	case SortLatest:
		return func(a, b entity.BlogPost) int { return b.PublishDate.Compare(a.PublishDate.Time) }
	case SortOldest:
		return func(a, b entity.BlogPost) int { return a.PublishDate.Compare(b.PublishDate.Time) }
	case SortTitle:
		return func(a, b entity.BlogPost) int { return strings.Compare(a.Title, b.Title) }
	default:
		return nil
	}
}

func matchesSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func matchesCategory(filter, category string) bool {
	return filter == "" || filter == AllCategories || filter == category
}

// Contains reports whether price falls in the bucket. Unknown buckets
// contain every price.
func (r PriceRange) Contains(price float64) bool {
	switch r {
	case PriceUnder1500:
		return price < 1500
	case Price1500To2500:
		return price >= 1500 && price <= 2500
	case PriceOver2500:
		return price > 2500
	default:
		return true
	}
}
