package book

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryRepository owns the catalog for the lifetime of the process. A single
// mutex guards every mutation; reads take value snapshots under the same lock
// so callers never observe a half-applied change. Pointer fields inside Book
// are replaced, never written through, so snapshots stay stable after the
// lock is released.
type MemoryRepository struct {
	mu    sync.RWMutex
	books []*Book
}

// NewMemoryRepository creates an empty catalog store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Save appends the book to the catalog and returns its snapshot. Identifiers
// are generated internally, so no duplicate-ID guard is needed.
func (r *MemoryRepository) Save(b *Book) Book {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.books = append(r.books, b)
	return *b
}

// findLocked returns the stored entity. Callers must hold the lock.
func (r *MemoryRepository) findLocked(id string) *Book {
	for _, b := range r.books {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// FindByID returns a snapshot of the matching book or ErrNotFound.
func (r *MemoryRepository) FindByID(id string) (Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b := r.findLocked(id)
	if b == nil {
		return Book{}, ErrNotFound
	}
	return *b, nil
}

// FindAll returns a defensive copy of the whole catalog in insertion order.
func (r *MemoryRepository) FindAll() []Book {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked(nil)
}

// snapshotLocked copies every book matching keep (nil keeps everything).
// Callers must hold at least the read lock.
func (r *MemoryRepository) snapshotLocked(keep func(*Book) bool) []Book {
	out := make([]Book, 0, len(r.books))
	for _, b := range r.books {
		if keep == nil || keep(b) {
			out = append(out, *b)
		}
	}
	return out
}

// Update overwrites only the supplied fields and returns the updated snapshot.
// ISBN uniqueness is deliberately not re-checked here; see Service.Update.
func (r *MemoryRepository) Update(id string, fields UpdateFields) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := r.findLocked(id)
	if b == nil {
		return Book{}, ErrNotFound
	}
	if fields.Title != nil {
		b.Title = *fields.Title
	}
	if fields.Author != nil {
		b.Author = *fields.Author
	}
	if fields.ISBN != nil {
		b.ISBN = *fields.ISBN
	}
	if fields.PublishedYear != nil {
		b.PublishedYear = *fields.PublishedYear
	}
	if fields.Genre != nil {
		b.Genre = *fields.Genre
	}
	if fields.Description != nil {
		b.Description = *fields.Description
	}
	if fields.Rating != nil {
		rating := *fields.Rating
		b.Rating = &rating
	}
	return *b, nil
}

// Delete removes the book and reports whether a removal occurred.
func (r *MemoryRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.books {
		if b.ID == id {
			r.books = append(r.books[:i], r.books[i+1:]...)
			return true
		}
	}
	return false
}

// Borrow transitions the book to borrowed under the store lock. Returns
// ErrNotFound for unknown ids and ErrNotAvailable when the book is out.
func (r *MemoryRepository) Borrow(id, holderID string, now time.Time) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := r.findLocked(id)
	if b == nil {
		return Book{}, ErrNotFound
	}
	if !b.Borrow(holderID, now) {
		return Book{}, ErrNotAvailable
	}
	return *b, nil
}

// Return clears the borrow state under the store lock.
func (r *MemoryRepository) Return(id string) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := r.findLocked(id)
	if b == nil {
		return Book{}, ErrNotFound
	}
	if !b.Return() {
		return Book{}, ErrNotBorrowed
	}
	return *b, nil
}

// SetRating applies the entity's lenient rating rule under the store lock.
func (r *MemoryRepository) SetRating(id string, rating float64) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := r.findLocked(id)
	if b == nil {
		return Book{}, ErrNotFound
	}
	b.SetRating(rating)
	return *b, nil
}

// FindWithFilters returns the books matching every present filter.
func (r *MemoryRepository) FindWithFilters(f Filters) []Book {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked(func(b *Book) bool { return f.Matches(*b) })
}

// FindByTitle matches on a case-insensitive title substring.
func (r *MemoryRepository) FindByTitle(title string) []Book {
	needle := strings.ToLower(title)
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked(func(b *Book) bool {
		return strings.Contains(strings.ToLower(b.Title), needle)
	})
}

// FindByAuthor matches on a case-insensitive author substring.
func (r *MemoryRepository) FindByAuthor(author string) []Book {
	needle := strings.ToLower(author)
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked(func(b *Book) bool {
		return strings.Contains(strings.ToLower(b.Author), needle)
	})
}

// FindByGenre matches the genre exactly, ignoring case.
func (r *MemoryRepository) FindByGenre(genre string) []Book {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked(func(b *Book) bool {
		return strings.EqualFold(b.Genre, genre)
	})
}

// FindAvailable returns the books currently on the shelf.
func (r *MemoryRepository) FindAvailable() []Book {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked(func(b *Book) bool { return b.Available })
}

// FindBorrowed returns the books currently out.
func (r *MemoryRepository) FindBorrowed() []Book {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked(func(b *Book) bool { return !b.Available })
}

// FindOverdue returns the borrowed books held past the grace period.
func (r *MemoryRepository) FindOverdue(now time.Time) []Book {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked(func(b *Book) bool {
		return !b.Available && b.DaysOverdue(now) > 0
	})
}

// HasISBN reports whether any book carries the same ISBN, ignoring hyphen and
// whitespace differences.
func (r *MemoryRepository) HasISBN(isbn string) bool {
	cleaned := CleanISBN(isbn)
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.books {
		if CleanISBN(b.ISBN) == cleaned {
			return true
		}
	}
	return false
}

// Genres returns the distinct genres in ascending lexical order.
func (r *MemoryRepository) Genres() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.distinctLocked(func(b *Book) string { return b.Genre })
}

// Authors returns the distinct authors in ascending lexical order.
func (r *MemoryRepository) Authors() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.distinctLocked(func(b *Book) string { return b.Author })
}

// distinctLocked collects unique values case-sensitively and sorts them.
// Callers must hold at least the read lock.
func (r *MemoryRepository) distinctLocked(key func(*Book) string) []string {
	seen := make(map[string]struct{}, len(r.books))
	out := make([]string, 0, len(r.books))
	for _, b := range r.books {
		k := key(b)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Stats aggregates catalog counts at the given instant.
func (r *MemoryRepository) Stats(now time.Time) Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s := Stats{Total: len(r.books)}
	for _, b := range r.books {
		if b.Available {
			s.Available++
		} else if b.DaysOverdue(now) > 0 {
			s.Overdue++
		}
	}
	s.Borrowed = s.Total - s.Available
	return s
}
