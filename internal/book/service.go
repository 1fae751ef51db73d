package book

import (
	"strings"
	"time"
)

const defaultViewLimit = 10

// CreateParams carries the fields for a new catalog entry.
type CreateParams struct {
	Title         string
	Author        string
	ISBN          string
	PublishedYear int
	Genre         string
	Description   string
	Rating        *float64
}

// Service orchestrates validation, the catalog store, and the query surface
// into the book lifecycle operations. Capability checks (who may borrow or
// manage) are the caller's responsibility; the service trusts that they ran.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a catalog service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create validates every field, rejects duplicate ISBNs, and stores the book.
func (s *Service) Create(p CreateParams) (Book, error) {
	if err := ValidateTitle(p.Title); err != nil {
		return Book{}, err
	}
	if err := ValidateAuthor(p.Author); err != nil {
		return Book{}, err
	}
	if err := ValidateISBN(p.ISBN); err != nil {
		return Book{}, err
	}
	if err := ValidateYear(p.PublishedYear); err != nil {
		return Book{}, err
	}
	if err := ValidateGenre(p.Genre); err != nil {
		return Book{}, err
	}
	if err := ValidateRating(p.Rating); err != nil {
		return Book{}, err
	}
	if s.repo.HasISBN(p.ISBN) {
		return Book{}, &ConflictError{Message: "A book with this ISBN already exists"}
	}
	b := New(p.Title, p.Author, p.ISBN, p.PublishedYear, p.Genre, p.Description, p.Rating)
	return s.repo.Save(b), nil
}

// Update validates only the fields present in the partial update and applies
// them. ISBN uniqueness is checked at creation only; an update can introduce a
// duplicate ISBN. That matches the original contract and is kept on purpose.
func (s *Service) Update(id string, fields UpdateFields) (Book, error) {
	if err := requireID(id); err != nil {
		return Book{}, err
	}
	if fields.Title != nil {
		if err := ValidateTitle(*fields.Title); err != nil {
			return Book{}, err
		}
	}
	if fields.Author != nil {
		if err := ValidateAuthor(*fields.Author); err != nil {
			return Book{}, err
		}
	}
	if fields.ISBN != nil {
		if err := ValidateISBN(*fields.ISBN); err != nil {
			return Book{}, err
		}
	}
	if fields.PublishedYear != nil {
		if err := ValidateYear(*fields.PublishedYear); err != nil {
			return Book{}, err
		}
	}
	if fields.Genre != nil {
		if err := ValidateGenre(*fields.Genre); err != nil {
			return Book{}, err
		}
	}
	if fields.Rating != nil {
		if err := ValidateRating(fields.Rating); err != nil {
			return Book{}, err
		}
	}
	return s.repo.Update(id, fields)
}

// Delete removes the book and reports whether anything was removed.
func (s *Service) Delete(id string) (bool, error) {
	if err := requireID(id); err != nil {
		return false, err
	}
	return s.repo.Delete(id), nil
}

// Borrow hands the book to the holder. Fails with ErrNotFound for unknown ids
// and ErrNotAvailable when the book is already out.
func (s *Service) Borrow(id, holderID string) (Book, error) {
	if err := requireID(id); err != nil {
		return Book{}, err
	}
	return s.repo.Borrow(id, holderID, s.now())
}

// Return puts the book back on the shelf. Fails with ErrNotBorrowed when the
// book was not out.
func (s *Service) Return(id string) (Book, error) {
	if err := requireID(id); err != nil {
		return Book{}, err
	}
	return s.repo.Return(id)
}

// Rate validates the rating range strictly before applying it. This is the
// hard counterpart of the entity's lenient SetRating.
func (s *Service) Rate(id string, rating float64) (Book, error) {
	if err := ValidateRating(&rating); err != nil {
		return Book{}, err
	}
	if err := requireID(id); err != nil {
		return Book{}, err
	}
	return s.repo.SetRating(id, rating)
}

// GetByID returns the book snapshot or ErrNotFound.
func (s *Service) GetByID(id string) (Book, error) {
	if err := requireID(id); err != nil {
		return Book{}, err
	}
	return s.repo.FindByID(id)
}

// GetAll returns a snapshot of the whole catalog.
func (s *Service) GetAll() []Book {
	return s.repo.FindAll()
}

// GetByTitle searches by title substring; the term is required.
func (s *Service) GetByTitle(title string) ([]Book, error) {
	if err := requireTerm(title, "Title is required for search"); err != nil {
		return nil, err
	}
	return s.repo.FindByTitle(title), nil
}

// GetByAuthor searches by author substring; the term is required.
func (s *Service) GetByAuthor(author string) ([]Book, error) {
	if err := requireTerm(author, "Author is required for search"); err != nil {
		return nil, err
	}
	return s.repo.FindByAuthor(author), nil
}

// GetByGenre returns the books in the given genre, ignoring case.
func (s *Service) GetByGenre(genre string) []Book {
	return s.repo.FindByGenre(genre)
}

// Search filters the catalog, then optionally sorts and paginates the result.
// Without pagination the whole filtered set comes back as page 1 of 1.
func (s *Service) Search(f Filters, sortSpec *SortSpec, page *PageSpec) (SearchResult, error) {
	books := s.repo.FindWithFilters(f)

	if sortSpec != nil {
		SortBooks(books, *sortSpec)
	}

	if page != nil {
		if err := ValidatePagination(*page); err != nil {
			return SearchResult{}, err
		}
		pageBooks, total, totalPages := Paginate(books, *page)
		return SearchResult{
			Books:      pageBooks,
			Total:      total,
			Page:       page.Page,
			TotalPages: totalPages,
		}, nil
	}

	return SearchResult{
		Books:      books,
		Total:      len(books),
		Page:       1,
		TotalPages: 1,
	}, nil
}

// AvailableBooks returns the books currently on the shelf.
func (s *Service) AvailableBooks() []Book {
	return s.repo.FindAvailable()
}

// BorrowedBooks returns the books currently out.
func (s *Service) BorrowedBooks() []Book {
	return s.repo.FindBorrowed()
}

// OverdueBooks returns the borrowed books held past the grace period.
func (s *Service) OverdueBooks() []Book {
	return s.repo.FindOverdue(s.now())
}

// Genres returns the distinct genres, sorted.
func (s *Service) Genres() []string {
	return s.repo.Genres()
}

// Authors returns the distinct authors, sorted.
func (s *Service) Authors() []string {
	return s.repo.Authors()
}

// Statistics aggregates catalog counts.
func (s *Service) Statistics() Stats {
	return s.repo.Stats(s.now())
}

// PopularBooks returns the best-rated books (rating 4 and up), highest first,
// capped at limit. A non-positive limit falls back to the default of 10.
func (s *Service) PopularBooks(limit int) []Book {
	if limit <= 0 {
		limit = defaultViewLimit
	}
	books := s.repo.FindAll()
	popular := books[:0:0]
	for _, b := range books {
		if b.Rating != nil && *b.Rating >= 4 {
			popular = append(popular, b)
		}
	}
	SortBooks(popular, SortSpec{Field: SortByRating, Desc: true})
	if len(popular) > limit {
		popular = popular[:limit]
	}
	return popular
}

// RecentBooks returns the most recently published books, newest first, capped
// at limit. A non-positive limit falls back to the default of 10.
func (s *Service) RecentBooks(limit int) []Book {
	if limit <= 0 {
		limit = defaultViewLimit
	}
	books := s.repo.FindAll()
	SortBooks(books, SortSpec{Field: SortByPublishedYear, Desc: true})
	if len(books) > limit {
		books = books[:limit]
	}
	return books
}

func requireID(id string) error {
	return requireTerm(id, "Book ID is required")
}

func requireTerm(term, message string) error {
	if strings.TrimSpace(term) == "" {
		return &ValidationError{Message: message}
	}
	return nil
}
