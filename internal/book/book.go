package book

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GracePeriodDays is how long a borrowed book can be held before it starts
// accruing overdue days.
const GracePeriodDays = 14

// Book represents a catalog item together with its borrowing and rating state.
type Book struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Author        string     `json:"author"`
	ISBN          string     `json:"isbn"`
	PublishedYear int        `json:"published_year"`
	Genre         string     `json:"genre"`
	Available     bool       `json:"available"`
	BorrowedBy    string     `json:"borrowed_by,omitempty"`
	BorrowedDate  *time.Time `json:"borrowed_date,omitempty"`
	Rating        *float64   `json:"rating,omitempty"`
	Description   string     `json:"description,omitempty"`
}

// New constructs a Book with a fresh identifier and default availability.
// Field validation is the caller's job; see the Validate functions in this package.
func New(title, author, isbn string, publishedYear int, genre, description string, rating *float64) *Book {
	return &Book{
		ID:            uuid.NewString(),
		Title:         title,
		Author:        author,
		ISBN:          isbn,
		PublishedYear: publishedYear,
		Genre:         genre,
		Available:     true,
		Rating:        rating,
		Description:   description,
	}
}

// Borrow transitions the book to borrowed state. It reports false and leaves
// the current holder untouched when the book is already borrowed.
func (b *Book) Borrow(holderID string, now time.Time) bool {
	if !b.Available {
		return false
	}
	b.Available = false
	b.BorrowedBy = holderID
	b.BorrowedDate = &now
	return true
}

// Return clears the borrow state. It reports false when the book was not
// borrowed in the first place.
func (b *Book) Return() bool {
	if b.Available {
		return false
	}
	b.Available = true
	b.BorrowedBy = ""
	b.BorrowedDate = nil
	return true
}

// SetRating stores the rating only when it falls within [1, 5]. Out-of-range
// values are silently ignored; the previous rating stays in place.
func (b *Book) SetRating(rating float64) {
	if rating >= 1 && rating <= 5 {
		b.Rating = &rating
	}
}

// DaysOverdue reports how many whole days past the grace period the book has
// been held. Available books and books without a borrow date are never overdue.
func (b *Book) DaysOverdue(now time.Time) int {
	if b.Available || b.BorrowedDate == nil {
		return 0
	}
	daysBorrowed := int(now.Sub(*b.BorrowedDate).Hours() / 24)
	if daysBorrowed <= GracePeriodDays {
		return 0
	}
	return daysBorrowed - GracePeriodDays
}

// BriefInfo renders the one-line "title by author (year)" summary.
func (b *Book) BriefInfo() string {
	return fmt.Sprintf("%s by %s (%d)", b.Title, b.Author, b.PublishedYear)
}

// DetailedInfo extends BriefInfo with genre, rating when present, and the
// description truncated to 50 characters.
func (b *Book) DetailedInfo() string {
	info := b.BriefInfo()
	info += fmt.Sprintf(" | Genre: %s", b.Genre)
	if b.Rating != nil {
		info += fmt.Sprintf(" | Rating: %g/5", *b.Rating)
	}
	if b.Description != "" {
		desc := b.Description
		if len(desc) > 50 {
			desc = desc[:50]
		}
		info += fmt.Sprintf(" | %s...", desc)
	}
	return info
}
