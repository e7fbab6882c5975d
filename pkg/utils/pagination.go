package utils

import (
	"math"
	"strconv"
)

func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

func CalculateOffset(page, perPage int) int {
	if page < 1 || perPage <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/perPage {
		return math.MaxInt
	}
	return (page - 1) * perPage
}

// PageBounds clamps the [start, end) window of a page to a collection of size total.
// Pages past the end yield an empty window at total.
func PageBounds(total, page, perPage int) (int, int) {
	if perPage <= 0 {
		return 0, 0
	}
	if page > 1 && page-1 > total/perPage {
		return total, total
	}
	start := CalculateOffset(page, perPage)
	if start > total {
		start = total
	}
	end := total
	if perPage < total-start {
		end = start + perPage
	}
	return start, end
}

// ParseInt reads a query value, falling back to def when it is empty or
// malformed.
func ParseInt(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
