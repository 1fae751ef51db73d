package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"libraryapi/internal/book"
)

type seedBook struct {
	Title         string   `yaml:"title"`
	Author        string   `yaml:"author"`
	ISBN          string   `yaml:"isbn"`
	PublishedYear int      `yaml:"published_year"`
	Genre         string   `yaml:"genre"`
	Description   string   `yaml:"description"`
	Rating        *float64 `yaml:"rating"`
}

// seedCatalog loads a YAML fixture through the regular create path so seeded
// books go through the same validation as everything else.
func seedCatalog(svc *book.Service, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var seeds []seedBook
	if err := yaml.Unmarshal(data, &seeds); err != nil {
		return 0, fmt.Errorf("parse seed file: %w", err)
	}

	for i, s := range seeds {
		_, err := svc.Create(book.CreateParams{
			Title:         s.Title,
			Author:        s.Author,
			ISBN:          s.ISBN,
			PublishedYear: s.PublishedYear,
			Genre:         s.Genre,
			Description:   s.Description,
			Rating:        s.Rating,
		})
		if err != nil {
			return i, fmt.Errorf("seed book %d (%s): %w", i, s.Title, err)
		}
	}
	return len(seeds), nil
}
