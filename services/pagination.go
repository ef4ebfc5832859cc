package services

import "mocksocial/models"

const (
	DefaultLimit = 10
	DefaultPage  = 1
)

type Page[T any] struct {
	Data     []T
	Metadata models.Metadata
}

// Paginate slices items to the requested page. A page past the end yields an
// empty, non-nil Data.
func Paginate[T any](items []T, limit, page int) Page[T] {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if page <= 0 {
		page = DefaultPage
	}

	total := len(items)
	lastPage := total / limit
	if total%limit != 0 {
		lastPage++
	}

	// page-1 < lastPage keeps (page-1)*limit below total.
	start := total
	if page-1 < lastPage {
		start = (page - 1) * limit
	}
	end := start + min(limit, total-start)

	data := make([]T, end-start)
	copy(data, items[start:end])

	return Page[T]{
		Data: data,
		Metadata: models.Metadata{
			CurrentPage: page,
			LastPage:    lastPage,
			Limit:       limit,
			Total:       total,
		},
	}
}
