package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryapi/internal/book"
)

func writeSeedFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "books.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestSeedCatalog(t *testing.T) {
	svc := book.NewService(book.NewMemoryRepository())
	path := writeSeedFile(t, `
- title: The Great Gatsby
  author: F. Scott Fitzgerald
  isbn: "9780743273565"
  published_year: 1925
  genre: Fiction
  rating: 4.5
- title: "1984"
  author: George Orwell
  isbn: "9780451524935"
  published_year: 1949
  genre: Dystopian
`)

	n, err := seedCatalog(svc, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	books := svc.GetAll()
	require.Len(t, books, 2)
	assert.Equal(t, "The Great Gatsby", books[0].Title)
	require.NotNil(t, books[0].Rating)
	assert.Equal(t, 4.5, *books[0].Rating)
	assert.Nil(t, books[1].Rating)
}

func TestSeedCatalogRejectsInvalidBook(t *testing.T) {
	svc := book.NewService(book.NewMemoryRepository())
	path := writeSeedFile(t, `
- title: Broken Entry
  author: Nobody
  isbn: not-an-isbn
  published_year: 2001
  genre: Fiction
`)

	_, err := seedCatalog(svc, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken Entry")
	assert.Empty(t, svc.GetAll())
}

func TestSeedCatalogMissingFile(t *testing.T) {
	svc := book.NewService(book.NewMemoryRepository())

	_, err := seedCatalog(svc, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
