package pagination

import (
	"math"
	"strconv"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

type Pagination struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"pageSize"`
	Count     int64 `json:"count"`
	PageCount int   `json:"pageCount"`
}

// FromQuery coerces raw query parameters, falling back to the defaults on
// anything non-numeric or out of range.
func FromQuery(pageStr, pageSizeStr string) (page, pageSize int) {
	page = DefaultPage
	if n, err := strconv.Atoi(pageStr); err == nil && n >= 1 {
		page = n
	}
	pageSize = DefaultPageSize
	if n, err := strconv.Atoi(pageSizeStr); err == nil && n >= 1 {
		pageSize = n
	}
	return page, pageSize
}

func Offset(page, pageSize int) int {
	return (page - 1) * pageSize
}

// Build computes pagination metadata. PageCount is at least 1 even for an
// empty result set.
func Build(page, pageSize int, count int64) Pagination {
	pageCount := int(math.Ceil(float64(count) / float64(pageSize)))
	if pageCount < 1 {
		pageCount = 1
	}
	return Pagination{
		Page:      page,
		PageSize:  pageSize,
		Count:     count,
		PageCount: pageCount,
	}
}
