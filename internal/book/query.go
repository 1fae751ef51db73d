package book

import (
	"fmt"
	"sort"
	"strings"
)

// Filters narrows a catalog snapshot. Zero-valued fields impose no constraint;
// all present filters are combined with AND.
type Filters struct {
	Genre     string
	Author    string
	Available *bool
	YearFrom  *int
	YearTo    *int
	MinRating *float64
}

// Matches reports whether the book satisfies every present filter. Genre is an
// exact case-insensitive match, author a case-insensitive substring match. The
// rating filter excludes unrated books.
func (f Filters) Matches(b Book) bool {
	if f.Genre != "" && !strings.EqualFold(b.Genre, f.Genre) {
		return false
	}
	if f.Author != "" && !strings.Contains(strings.ToLower(b.Author), strings.ToLower(f.Author)) {
		return false
	}
	if f.Available != nil && b.Available != *f.Available {
		return false
	}
	if f.YearFrom != nil && b.PublishedYear < *f.YearFrom {
		return false
	}
	if f.YearTo != nil && b.PublishedYear > *f.YearTo {
		return false
	}
	if f.MinRating != nil && (b.Rating == nil || *b.Rating < *f.MinRating) {
		return false
	}
	return true
}

// SortField enumerates the fields a catalog snapshot can be sorted by.
type SortField string

const (
	SortByTitle         SortField = "title"
	SortByAuthor        SortField = "author"
	SortByPublishedYear SortField = "published_year"
	SortByGenre         SortField = "genre"
	SortByRating        SortField = "rating"
	SortByAvailable     SortField = "available"
	SortByBorrowedDate  SortField = "borrowed_date"
)

// ParseSortField maps a caller-supplied name onto the closed set of sortable
// fields.
func ParseSortField(name string) (SortField, error) {
	switch SortField(name) {
	case SortByTitle, SortByAuthor, SortByPublishedYear, SortByGenre,
		SortByRating, SortByAvailable, SortByBorrowedDate:
		return SortField(name), nil
	}
	return "", &ValidationError{Message: fmt.Sprintf("unknown sort field %q", name)}
}

// SortSpec names a sortable field and a direction.
type SortSpec struct {
	Field SortField
	Desc  bool
}

// compareField three-way compares two books on a single field. Missing values
// (no rating, no borrow date) on either side compare as equal so that the
// pre-sort order is retained.
func compareField(a, b Book, field SortField) int {
	switch field {
	case SortByTitle:
		return strings.Compare(a.Title, b.Title)
	case SortByAuthor:
		return strings.Compare(a.Author, b.Author)
	case SortByGenre:
		return strings.Compare(a.Genre, b.Genre)
	case SortByPublishedYear:
		return compareInt(a.PublishedYear, b.PublishedYear)
	case SortByRating:
		if a.Rating == nil || b.Rating == nil {
			return 0
		}
		return compareFloat(*a.Rating, *b.Rating)
	case SortByAvailable:
		return compareBool(a.Available, b.Available)
	case SortByBorrowedDate:
		if a.BorrowedDate == nil || b.BorrowedDate == nil {
			return 0
		}
		return a.BorrowedDate.Compare(*b.BorrowedDate)
	}
	return 0
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareBool(a, b bool) int {
	switch {
	case !a && b:
		return -1
	case a && !b:
		return 1
	}
	return 0
}

// SortBooks orders the slice in place according to spec. The sort is stable:
// entries that compare equal keep their relative order.
func SortBooks(books []Book, spec SortSpec) {
	sort.SliceStable(books, func(i, j int) bool {
		c := compareField(books[i], books[j], spec.Field)
		if spec.Desc {
			return c > 0
		}
		return c < 0
	})
}

// PageSpec is a 1-based pagination request.
type PageSpec struct {
	Page  int
	Limit int
}

// Paginate slices out one page. A page past the end yields an empty slice
// while total and totalPages still describe the whole input.
func Paginate(books []Book, p PageSpec) (page []Book, total, totalPages int) {
	total = len(books)
	totalPages = (total + p.Limit - 1) / p.Limit
	start := (p.Page - 1) * p.Limit
	if start >= total {
		return []Book{}, total, totalPages
	}
	end := start + p.Limit
	if end > total {
		end = total
	}
	return books[start:end], total, totalPages
}

// SearchResult is the envelope returned by the catalog search operation.
type SearchResult struct {
	Books      []Book `json:"books"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	TotalPages int    `json:"total_pages"`
}

// Stats summarizes the catalog at a point in time.
type Stats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Borrowed  int `json:"borrowed"`
	Overdue   int `json:"overdue"`
}
