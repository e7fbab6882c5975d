package catalog

import (
	"testing"
	"time"

	"travel-agency/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePackages() []entity.Package {
	return []entity.Package{
		{ID: 1, Title: "Bali Escape", Destination: "Bali, Indonesia", Price: 1200, Rating: 4.5, Category: "Beach"},
		{ID: 2, Title: "Alps Trek", Destination: "Interlaken", Price: 2000, Rating: 4.9, Category: "Adventure"},
		{ID: 3, Title: "Maldives Retreat", Destination: "Maldives", Price: 3000, Rating: 4.7, Category: "Beach"},
		{ID: 4, Title: "Goa Weekend", Destination: "Goa, India", Price: 1500, Rating: 4.1, Category: "Beach"},
		{ID: 5, Title: "Jaipur Heritage", Destination: "Jaipur", Price: 2500, Rating: 4.7, Category: "Cultural"},
	}
}

func packageIDs(pkgs []entity.Package) []int {
	ids := make([]int, len(pkgs))
	for i, p := range pkgs {
		ids[i] = p.ID
	}
	return ids
}

func TestQueryPackages_CategoryAndSort(t *testing.T) {
	packages := []entity.Package{
		{ID: 1, Price: 1200, Category: "Beach"},
		{ID: 2, Price: 2000, Category: "Adventure"},
		{ID: 3, Price: 3000, Category: "Beach"},
	}

	got := QueryPackages(packages, Filters{Category: "Beach", PriceRange: PriceAll, Sort: SortPriceLow})

	assert.Equal(t, []int{1, 3}, packageIDs(got))
}

func TestQueryPackages_NoConstraintsKeepsInputOrder(t *testing.T) {
	packages := samplePackages()

	got := QueryPackages(packages, Filters{Category: AllCategories, PriceRange: PriceAll})

	assert.Equal(t, packages, got)
}

func TestQueryPackages_Search(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []int
	}{
		{name: "matches title case-insensitively", term: "ALPS", want: []int{2}},
		{name: "matches destination", term: "india", want: []int{4}},
		{name: "matches several", term: "a", want: []int{1, 2, 3, 4, 5}},
		{name: "no match", term: "tokyo", want: []int{}},
		{name: "empty term matches all", term: "", want: []int{1, 2, 3, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QueryPackages(samplePackages(), Filters{SearchTerm: tt.term})
			assert.Equal(t, tt.want, packageIDs(got))
		})
	}
}

func TestQueryPackages_PriceRange(t *testing.T) {
	tests := []struct {
		rng  PriceRange
		want []int
	}{
		{rng: PriceUnder1500, want: []int{1}},
		{rng: Price1500To2500, want: []int{2, 4, 5}},
		{rng: PriceOver2500, want: []int{3}},
		{rng: PriceAll, want: []int{1, 2, 3, 4, 5}},
		{rng: "bogus", want: []int{1, 2, 3, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(string(tt.rng), func(t *testing.T) {
			got := QueryPackages(samplePackages(), Filters{PriceRange: tt.rng})
			assert.Equal(t, tt.want, packageIDs(got))
		})
	}
}

func TestQueryPackages_FiltersCombineWithAnd(t *testing.T) {
	got := QueryPackages(samplePackages(), Filters{
		SearchTerm: "i",
		Category:   "Beach",
		PriceRange: Price1500To2500,
	})

	assert.Equal(t, []int{4}, packageIDs(got))
}

func TestQueryPackages_SortReversesWithoutTies(t *testing.T) {
	packages := []entity.Package{
		{ID: 1, Price: 900}, {ID: 2, Price: 3000}, {ID: 3, Price: 1700}, {ID: 4, Price: 1200},
	}

	low := QueryPackages(packages, Filters{Sort: SortPriceLow})
	high := QueryPackages(packages, Filters{Sort: SortPriceHigh})

	require.Len(t, high, len(low))
	for i := range low {
		assert.Equal(t, low[i].ID, high[len(high)-1-i].ID)
	}
}

func TestQueryPackages_SortIsStable(t *testing.T) {
	packages := []entity.Package{
		{ID: 1, Price: 1000, Rating: 4.5},
		{ID: 2, Price: 2000, Rating: 4.8},
		{ID: 3, Price: 1000, Rating: 4.8},
		{ID: 4, Price: 2000, Rating: 4.5},
	}

	assert.Equal(t, []int{1, 3, 2, 4}, packageIDs(QueryPackages(packages, Filters{Sort: SortPriceLow})))
	assert.Equal(t, []int{2, 4, 1, 3}, packageIDs(QueryPackages(packages, Filters{Sort: SortPriceHigh})))
	assert.Equal(t, []int{2, 3, 1, 4}, packageIDs(QueryPackages(packages, Filters{Sort: SortRating})))
}

func TestQueryPackages_UnknownSortFallsBackToInputOrder(t *testing.T) {
	packages := samplePackages()

	for _, key := range []SortKey{"", SortFeatured, "random", SortLatest} {
		got := QueryPackages(packages, Filters{Sort: key})
		assert.Equal(t, packageIDs(packages), packageIDs(got), "sort key %q", key)
	}
}

func TestQueryPackages_IsPureAndIdempotent(t *testing.T) {
	packages := samplePackages()
	before := samplePackages()
	f := Filters{SearchTerm: "a", Category: "Beach", Sort: SortPriceHigh}

	first := QueryPackages(packages, f)
	second := QueryPackages(packages, f)

	assert.Equal(t, first, second)
	assert.Equal(t, before, packages, "input must not be reordered")
	for _, p := range first {
		assert.Contains(t, packages, p)
	}
}

func samplePosts() []entity.BlogPost {
	return []entity.BlogPost{
		{ID: 1, Title: "Bali Gems", Excerpt: "Quiet beaches", Author: "Sarah", Category: "Destinations", PublishDate: entity.NewDate(2024, time.January, 15)},
		{ID: 2, Title: "Packing Light", Excerpt: "One bag", Author: "Michael", Category: "Tips", PublishDate: entity.NewDate(2024, time.January, 5)},
		{ID: 3, Title: "Alps Seasons", Excerpt: "When to go", Author: "Sarah", Category: "Destinations", PublishDate: entity.NewDate(2024, time.February, 2)},
	}
}

func postIDs(posts []entity.BlogPost) []int {
	ids := make([]int, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	return ids
}

func TestQueryBlogPosts_DateSorts(t *testing.T) {
	posts := []entity.BlogPost{
		{ID: 10, PublishDate: entity.NewDate(2024, time.January, 15)},
		{ID: 20, PublishDate: entity.NewDate(2024, time.January, 5)},
	}

	oldest := QueryBlogPosts(posts, Filters{Sort: SortOldest})
	latest := QueryBlogPosts(posts, Filters{Sort: SortLatest})

	assert.Equal(t, []int{20, 10}, postIDs(oldest))
	assert.Equal(t, []int{10, 20}, postIDs(latest))
}

func TestQueryBlogPosts_TitleSortAndSearch(t *testing.T) {
	assert.Equal(t, []int{3, 1, 2}, postIDs(QueryBlogPosts(samplePosts(), Filters{Sort: SortTitle})))
	assert.Equal(t, []int{1, 3}, postIDs(QueryBlogPosts(samplePosts(), Filters{SearchTerm: "sarah"})))
	assert.Equal(t, []int{2}, postIDs(QueryBlogPosts(samplePosts(), Filters{SearchTerm: "ONE BAG"})))
}

func TestQueryBlogPosts_IgnoresPriceRangeAndUnknownSort(t *testing.T) {
	got := QueryBlogPosts(samplePosts(), Filters{Category: "Destinations", PriceRange: PriceOver2500, Sort: SortPriceLow})

	assert.Equal(t, []int{1, 3}, postIDs(got))
}
