package request

import "travel-agency/internal/catalog"

// CatalogQuery is the listing query for packages and blog posts. Empty or
// unrecognised filter values place no constraint on the result.
type CatalogQuery struct {
	PaginatedRequest
	Search   string
	Category string
	Price    string
	Sort     string
}

func (q CatalogQuery) Filters() catalog.Filters {
	return catalog.Filters{
		SearchTerm: q.Search,
		Category:   q.Category,
		PriceRange: catalog.PriceRange(q.Price),
		Sort:       catalog.SortKey(q.Sort),
	}
}
