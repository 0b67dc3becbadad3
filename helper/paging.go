package helper

import (
	"math"

	"admin-panel-server/models"
)

const maxPageLimit = 100

// ClampPaging normalizes page and limit: page at least 1, limit within [1,100].
func ClampPaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

// NewPagination builds the pagination block. Pages is ceiling division with a
// floor of 1 so an empty result still reports one page.
func NewPagination(page, limit int, total int64) models.Pagination {
	pages := int(math.Ceil(float64(total) / float64(limit)))
	if pages < 1 {
		pages = 1
	}
	return models.Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}
