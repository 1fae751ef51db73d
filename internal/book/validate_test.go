package book

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTitle(t *testing.T) {
	assert.NoError(t, ValidateTitle("The Great Gatsby"))

	err := ValidateTitle("")
	require.Error(t, err)
	assert.Equal(t, "Title is required", err.Error())

	assert.Error(t, ValidateTitle("   "))
	assert.NoError(t, ValidateTitle(strings.Repeat("a", 200)))
	assert.Error(t, ValidateTitle(strings.Repeat("a", 201)))
}

func TestValidateAuthor(t *testing.T) {
	assert.NoError(t, ValidateAuthor("George Orwell"))
	assert.Error(t, ValidateAuthor(""))
	assert.NoError(t, ValidateAuthor(strings.Repeat("a", 100)))
	assert.Error(t, ValidateAuthor(strings.Repeat("a", 101)))
}

func TestValidateISBN(t *testing.T) {
	tests := []struct {
		name  string
		isbn  string
		valid bool
	}{
		{"ten digits", "0451524935", true},
		{"thirteen digits", "9780451524935", true},
		{"hyphenated", "978-0-451-52493-5", true},
		{"with spaces", "978 0451 524935", true},
		{"empty", "", false},
		{"too short", "045152493", false},
		{"eleven digits", "04515249350", false},
		{"letters", "97804515249ab", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateISBN(tt.isbn)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCleanISBN(t *testing.T) {
	assert.Equal(t, "9780451524935", CleanISBN("978-0-451-52493-5"))
	assert.Equal(t, "9780451524935", CleanISBN("978 0451 524935"))
	assert.Equal(t, "9780451524935", CleanISBN("9780451524935"))
}

func TestValidateYear(t *testing.T) {
	currentYear := time.Now().Year()

	assert.NoError(t, ValidateYear(1000))
	assert.NoError(t, ValidateYear(1925))
	assert.NoError(t, ValidateYear(currentYear+1))
	assert.Error(t, ValidateYear(999))
	assert.Error(t, ValidateYear(currentYear+2))
	assert.Error(t, ValidateYear(0))
}

func TestValidateGenre(t *testing.T) {
	assert.NoError(t, ValidateGenre("Dystopian"))
	assert.Error(t, ValidateGenre(""))
	assert.NoError(t, ValidateGenre(strings.Repeat("a", 50)))
	assert.Error(t, ValidateGenre(strings.Repeat("a", 51)))
}

func TestValidateRating(t *testing.T) {
	rating := func(v float64) *float64 { return &v }

	assert.NoError(t, ValidateRating(nil))
	assert.NoError(t, ValidateRating(rating(1)))
	assert.NoError(t, ValidateRating(rating(5)))
	assert.NoError(t, ValidateRating(rating(3.5)))
	assert.Error(t, ValidateRating(rating(0.9)))
	assert.Error(t, ValidateRating(rating(5.1)))

	err := ValidateRating(rating(6))
	require.Error(t, err)
	assert.Equal(t, "Rating must be between 1 and 5", err.Error())
}

func TestValidatePagination(t *testing.T) {
	assert.NoError(t, ValidatePagination(PageSpec{Page: 1, Limit: 1}))
	assert.NoError(t, ValidatePagination(PageSpec{Page: 3, Limit: 100}))
	assert.Error(t, ValidatePagination(PageSpec{Page: 0, Limit: 10}))
	assert.Error(t, ValidatePagination(PageSpec{Page: 1, Limit: 0}))
	assert.Error(t, ValidatePagination(PageSpec{Page: 1, Limit: 101}))
}
