package mockapi

import "cardvault/internal/core"

// paginate slices one page out of the filtered set and describes the
// window. A page beyond the end yields an empty page, not an error.
func paginate[T any](items []T, page, limit int) ([]T, core.Pagination) {
	total := len(items)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	out := make([]T, end-start)
	copy(out, items[start:end])

	return out, core.Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
	}
}
