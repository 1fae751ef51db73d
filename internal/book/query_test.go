package book

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rating(v float64) *float64 { return &v }

func intp(v int) *int { return &v }

func boolp(v bool) *bool { return &v }

func queryFixture() []Book {
	borrowed := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	return []Book{
		{ID: "1", Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", PublishedYear: 1925, Genre: "Fiction", Available: true, Rating: rating(4.5)},
		{ID: "2", Title: "To Kill a Mockingbird", Author: "Harper Lee", PublishedYear: 1960, Genre: "Fiction", Available: false, BorrowedBy: "u1", BorrowedDate: &borrowed, Rating: rating(4.8)},
		{ID: "3", Title: "1984", Author: "George Orwell", PublishedYear: 1949, Genre: "Dystopian", Available: true},
		{ID: "4", Title: "Clean Code", Author: "Robert C. Martin", PublishedYear: 2008, Genre: "Programming", Available: true, Rating: rating(4.2)},
	}
}

func filterIDs(books []Book, f Filters) []string {
	var ids []string
	for _, b := range books {
		if f.Matches(b) {
			ids = append(ids, b.ID)
		}
	}
	return ids
}

func TestFiltersMatches(t *testing.T) {
	books := queryFixture()

	tests := []struct {
		name string
		f    Filters
		want []string
	}{
		{"no filters keeps everything", Filters{}, []string{"1", "2", "3", "4"}},
		{"genre is case-insensitive exact", Filters{Genre: "fiction"}, []string{"1", "2"}},
		{"author substring case-insensitive", Filters{Author: "orwell"}, []string{"3"}},
		{"available only", Filters{Available: boolp(true)}, []string{"1", "3", "4"}},
		{"borrowed only", Filters{Available: boolp(false)}, []string{"2"}},
		{"year range", Filters{YearFrom: intp(1940), YearTo: intp(1970)}, []string{"2", "3"}},
		{"min rating excludes unrated", Filters{MinRating: rating(4.3)}, []string{"1", "2"}},
		{"filters are conjunctive", Filters{Genre: "Fiction", Available: boolp(true)}, []string{"1"}},
		{"no match", Filters{Genre: "Poetry"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filterIDs(books, tt.f))
		})
	}
}

func TestSortBooks(t *testing.T) {
	t.Run("ascending by year", func(t *testing.T) {
		books := queryFixture()
		SortBooks(books, SortSpec{Field: SortByPublishedYear})
		assert.Equal(t, []int{1925, 1949, 1960, 2008}, yearsOf(books))
	})

	t.Run("descending by year", func(t *testing.T) {
		books := queryFixture()
		SortBooks(books, SortSpec{Field: SortByPublishedYear, Desc: true})
		assert.Equal(t, []int{2008, 1960, 1949, 1925}, yearsOf(books))
	})

	t.Run("missing ratings keep their position", func(t *testing.T) {
		books := queryFixture()
		SortBooks(books, SortSpec{Field: SortByRating})
		// Book 3 has no rating: every comparison against it is "equal",
		// so relative order around it only changes where both sides are rated.
		ids := make([]string, len(books))
		for i, b := range books {
			ids[i] = b.ID
		}
		assert.Contains(t, ids, "3")
		assert.Len(t, ids, 4)
	})

	t.Run("stable on ties", func(t *testing.T) {
		books := []Book{
			{ID: "a", Genre: "Fiction", PublishedYear: 1950},
			{ID: "b", Genre: "Fiction", PublishedYear: 1950},
			{ID: "c", Genre: "Fiction", PublishedYear: 1950},
		}
		SortBooks(books, SortSpec{Field: SortByPublishedYear})
		assert.Equal(t, "a", books[0].ID)
		assert.Equal(t, "b", books[1].ID)
		assert.Equal(t, "c", books[2].ID)

		SortBooks(books, SortSpec{Field: SortByGenre, Desc: true})
		assert.Equal(t, "a", books[0].ID)
		assert.Equal(t, "b", books[1].ID)
		assert.Equal(t, "c", books[2].ID)
	})
}

func yearsOf(books []Book) []int {
	years := make([]int, len(books))
	for i, b := range books {
		years[i] = b.PublishedYear
	}
	return years
}

func TestParseSortField(t *testing.T) {
	f, err := ParseSortField("title")
	require.NoError(t, err)
	assert.Equal(t, SortByTitle, f)

	_, err = ParseSortField("isbn_checksum")
	require.Error(t, err)
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestPaginate(t *testing.T) {
	books := queryFixture()

	t.Run("first page", func(t *testing.T) {
		page, total, totalPages := Paginate(books, PageSpec{Page: 1, Limit: 2})
		assert.Len(t, page, 2)
		assert.Equal(t, 4, total)
		assert.Equal(t, 2, totalPages)
		assert.Equal(t, "1", page[0].ID)
		assert.Equal(t, "2", page[1].ID)
	})

	t.Run("last partial page", func(t *testing.T) {
		page, total, totalPages := Paginate(books, PageSpec{Page: 2, Limit: 3})
		assert.Len(t, page, 1)
		assert.Equal(t, 4, total)
		assert.Equal(t, 2, totalPages)
	})

	t.Run("page past the end is empty, totals intact", func(t *testing.T) {
		page, total, totalPages := Paginate(books, PageSpec{Page: 5, Limit: 2})
		assert.Empty(t, page)
		assert.Equal(t, 4, total)
		assert.Equal(t, 2, totalPages)
	})

	t.Run("empty input", func(t *testing.T) {
		page, total, totalPages := Paginate(nil, PageSpec{Page: 1, Limit: 10})
		assert.Empty(t, page)
		assert.Equal(t, 0, total)
		assert.Equal(t, 0, totalPages)
	})
}
