package catalog

import "travel-agency/internal/data/entity"

// Categorized is an item that belongs to one catalog category.
type Categorized interface {
	CategoryName() string
}

// DistinctCategories lists the categories of items in first-seen order.
// The "all" sentinel is not part of the result.
func DistinctCategories[T Categorized](items []T) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0)
	for _, item := range items {
		c := item.CategoryName()
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// DistinctTags flattens the tags of posts, dropping repeats.
func DistinctTags(posts []entity.BlogPost) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, post := range posts {
		for _, tag := range post.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}

func CountByCategory[T Categorized](items []T, category string) int {
	n := 0
	for _, item := range items {
		if item.CategoryName() == category {
			n++
		}
	}
	return n
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CategoryCounts pairs every distinct category with its item count.
func CategoryCounts[T Categorized](items []T) []CategoryCount {
	categories := DistinctCategories(items)
	out := make([]CategoryCount, len(categories))
	for i, c := range categories {
		out[i] = CategoryCount{Category: c, Count: CountByCategory(items, c)}
	}
	return out
}
