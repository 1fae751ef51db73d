package book

import "time"

//go:generate mockgen -source=ports.go -destination=mocks/repository_mock.go -package=mocks

// UpdateFields carries a partial update. Only non-nil fields are written.
type UpdateFields struct {
	Title         *string
	Author        *string
	ISBN          *string
	PublishedYear *int
	Genre         *string
	Description   *string
	Rating        *float64
}

// Repository defines the contract for catalog storage and its query surface.
// All returned books are snapshots; mutating them does not touch the catalog.
type Repository interface {
	Save(b *Book) Book
	FindByID(id string) (Book, error)
	FindAll() []Book
	Update(id string, fields UpdateFields) (Book, error)
	Delete(id string) bool

	Borrow(id, holderID string, now time.Time) (Book, error)
	Return(id string) (Book, error)
	SetRating(id string, rating float64) (Book, error)

	FindWithFilters(f Filters) []Book
	FindByTitle(title string) []Book
	FindByAuthor(author string) []Book
	FindByGenre(genre string) []Book
	FindAvailable() []Book
	FindBorrowed() []Book
	FindOverdue(now time.Time) []Book
	HasISBN(isbn string) bool
	Genres() []string
	Authors() []string
	Stats(now time.Time) Stats
}
