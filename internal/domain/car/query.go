package car

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/bcrservices/car-rental-api/internal/pagination"
)

// ListParams are the raw, already-parsed query parameters of a car listing
// request.
type ListParams struct {
	Page        string
	PageSize    string
	Size        string
	AvailableAt string
}

// ListQuery is a declarative filter + pagination descriptor. Building it
// performs no I/O; malformed input degrades to the defaults instead of
// failing.
type ListQuery struct {
	Size        string
	AvailableAt *time.Time
	Page        int
	PageSize    int
	Limit       int
	Offset      int
}

func BuildListQuery(p ListParams) ListQuery {
	page, pageSize := pagination.FromQuery(p.Page, p.PageSize)

	q := ListQuery{
		Page:     page,
		PageSize: pageSize,
		Limit:    pageSize,
		Offset:   pagination.Offset(page, pageSize),
	}

	if size := strings.ToLower(strings.TrimSpace(p.Size)); size != "" {
		q.Size = size
	}

	if p.AvailableAt != "" {
		if t, err := parseDate(p.AvailableAt); err == nil {
			q.AvailableAt = &t
		}
	}

	return q
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// ApplyFilter adds the equality predicates only. Used for counting.
func (q ListQuery) ApplyFilter(db *gorm.DB) *gorm.DB {
	if q.Size != "" {
		db = db.Where("size = ?", q.Size)
	}
	return db
}

// Apply composes the full statement: filters, the optional rentals include
// and pagination. The include is advisory: cars with no matching rental
// still qualify, matching rentals are merely attached to the row.
func (q ListQuery) Apply(db *gorm.DB) *gorm.DB {
	db = q.ApplyFilter(db)
	if q.AvailableAt != nil {
		db = db.Preload("Rentals", "rent_ended_at >= ?", *q.AvailableAt)
	}
	return db.Limit(q.Limit).Offset(q.Offset)
}
