package entities

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

type SortField string

const (
	SortByTravelDate SortField = "travelDate"
	SortByCreatedAt  SortField = "created_at"
	SortByName       SortField = "name"
	SortByPrice      SortField = "price"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	travelDateLayout = "02/01/2006"
)

// ParseSortField falls back to travelDate for empty or unknown values.
func ParseSortField(v string) SortField {
	switch SortField(strings.TrimSpace(v)) {
	case SortByCreatedAt:
		return SortByCreatedAt
	case SortByName:
		return SortByName
	case SortByPrice:
		return SortByPrice
	default:
		return SortByTravelDate
	}
}

// ParseSortOrder falls back to ascending for empty or unknown values.
func ParseSortOrder(v string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(v), string(SortDesc)) {
		return SortDesc
	}
	return SortAsc
}

// PackageQuery is the month-filtered, paginated, sorted listing request.
type PackageQuery struct {
	Month     string
	Page      int
	Limit     int
	SortBy    SortField
	SortOrder SortOrder
}

// Normalized returns the query with page/limit clamped and sort defaults applied.
func (q PackageQuery) Normalized() PackageQuery {
	q.Page, q.Limit = NormalizePage(q.Page, q.Limit)
	q.SortBy = ParseSortField(string(q.SortBy))
	q.SortOrder = ParseSortOrder(string(q.SortOrder))
	q.Month = NormalizeMonthFilter(q.Month)
	return q
}

// Offset is the number of records skipped before the requested page.
func (q PackageQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// PackagePage is one page of a package listing. Total is counted over the filter,
// independently of the page slice.
type PackagePage struct {
	Data  []TravelPackage
	Total int
	Pages int
}

// PaginationMeta is the pagination block returned to HTTP clients.
type PaginationMeta struct {
	CurrentPage     int  `json:"currentPage"`
	ItemsPerPage    int  `json:"itemsPerPage"`
	TotalItems      int  `json:"totalItems"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

func NewPaginationMeta(page, limit, total, pages int) PaginationMeta {
	return PaginationMeta{
		CurrentPage:     page,
		ItemsPerPage:    limit,
		TotalItems:      total,
		TotalPages:      pages,
		HasNextPage:     page < pages,
		HasPreviousPage: page > 1,
	}
}

// NormalizePage never rejects: page<1 becomes 1, limit above MaxLimit is clamped
// to MaxLimit and limit below 1 falls back to DefaultLimit.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	switch {
	case limit > MaxLimit:
		limit = MaxLimit
	case limit < 1:
		limit = DefaultLimit
	}
	return page, limit
}

// TotalPages is ceil(total/limit).
func TotalPages(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// Paginate returns the page slice of an already sorted list.
func Paginate[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start < 0 || start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// NormalizeMonthFilter drops the "/yyyy" suffix some clients send ("Janeiro/2026")
// and lower-cases the month name.
func NormalizeMonthFilter(month string) string {
	month = strings.TrimSpace(month)
	if i := strings.Index(month, "/"); i >= 0 {
		month = month[:i]
	}
	return MonthKey(month)
}

// MonthKey is the stored, case-folded form of a travel month.
func MonthKey(month string) string {
	return strings.ToLower(strings.TrimSpace(month))
}

// MatchesMonth is a case-insensitive prefix match, so "março" matches both "Março"
// and "Março/2026". An empty filter matches everything.
func MatchesMonth(travelMonth, filter string) bool {
	filter = NormalizeMonthFilter(filter)
	if filter == "" {
		return true
	}
	return strings.HasPrefix(MonthKey(travelMonth), filter)
}

// ParseTravelDate parses the stored "dd/mm/yyyy" string. ok is false for empty or
// invalid calendar dates.
func ParseTravelDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(travelDateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// SortTravelPackages sorts pkgs in place.
//
// For travelDate the key is derived from the dd/mm/yyyy string. Packages without a
// valid date always come after dated ones, whatever the order; that placement and every
// tie-break (created_at ascending) are not inverted by desc.
func SortTravelPackages(pkgs []TravelPackage, by SortField, order SortOrder) {
	desc := order == SortDesc
	slices.SortStableFunc(pkgs, func(a, b TravelPackage) int {
		if by == SortByTravelDate {
			da, okA := ParseTravelDate(a.TravelDate)
			db, okB := ParseTravelDate(b.TravelDate)
			switch {
			case okA && !okB:
				return -1
			case !okA && okB:
				return 1
			case !okA && !okB:
				return a.CreatedAt.Compare(b.CreatedAt)
			}
			if c := directed(da.Compare(db), desc); c != 0 {
				return c
			}
			return a.CreatedAt.Compare(b.CreatedAt)
		}

		var c int
		switch by {
		case SortByName:
			c = strings.Compare(a.Name, b.Name)
		case SortByPrice:
			c = cmp.Compare(a.Price, b.Price)
		default:
			c = a.CreatedAt.Compare(b.CreatedAt)
		}
		if c = directed(c, desc); c != 0 {
			return c
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
}

func directed(c int, desc bool) int {
	if desc {
		return -c
	}
	return c
}
