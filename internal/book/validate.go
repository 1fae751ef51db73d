package book

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var isbnPattern = regexp.MustCompile(`^\d{10}(\d{3})?$`)

// CleanISBN strips hyphens and whitespace so that formatting differences do
// not matter for validation or uniqueness checks.
func CleanISBN(isbn string) string {
	var sb strings.Builder
	for _, r := range isbn {
		switch {
		case r == '-':
		case r == ' ', r == '\t':
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// ValidateTitle checks that the title is non-empty and at most 200 characters.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Message: "Title is required"}
	}
	if len(title) > 200 {
		return &ValidationError{Message: "Title must be less than 200 characters"}
	}
	return nil
}

// ValidateAuthor checks that the author is non-empty and at most 100 characters.
func ValidateAuthor(author string) error {
	if strings.TrimSpace(author) == "" {
		return &ValidationError{Message: "Author is required"}
	}
	if len(author) > 100 {
		return &ValidationError{Message: "Author name must be less than 100 characters"}
	}
	return nil
}

// ValidateISBN checks that the ISBN is 10 or 13 digits after cleaning.
func ValidateISBN(isbn string) error {
	if strings.TrimSpace(isbn) == "" {
		return &ValidationError{Message: "ISBN is required"}
	}
	if !isbnPattern.MatchString(CleanISBN(isbn)) {
		return &ValidationError{Message: "Invalid ISBN format"}
	}
	return nil
}

// ValidateYear checks that the published year falls within [1000, current year + 1].
func ValidateYear(year int) error {
	maxYear := time.Now().Year() + 1
	if year < 1000 || year > maxYear {
		return &ValidationError{Message: fmt.Sprintf("Year must be between 1000 and %d", maxYear)}
	}
	return nil
}

// ValidateGenre checks that the genre is non-empty and at most 50 characters.
func ValidateGenre(genre string) error {
	if strings.TrimSpace(genre) == "" {
		return &ValidationError{Message: "Genre is required"}
	}
	if len(genre) > 50 {
		return &ValidationError{Message: "Genre must be less than 50 characters"}
	}
	return nil
}

// ValidateRating checks that a rating, when given, falls within [1, 5].
func ValidateRating(rating *float64) error {
	if rating != nil && (*rating < 1 || *rating > 5) {
		return &ValidationError{Message: "Rating must be between 1 and 5"}
	}
	return nil
}

// ValidatePagination checks that the page is at least 1 and the limit within [1, 100].
func ValidatePagination(p PageSpec) error {
	if p.Page < 1 {
		return &ValidationError{Message: "Page must be greater than 0"}
	}
	if p.Limit < 1 || p.Limit > 100 {
		return &ValidationError{Message: "Limit must be between 1 and 100"}
	}
	return nil
}
